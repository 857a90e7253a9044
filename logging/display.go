package logging

import (
	"bindcore/common"
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// PrintErrorMessage prints a standard Go error to the console
func PrintErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// PrintWarningMessage prints a warning message to the console
func PrintWarningMessage(tag, msg string) {
	WarnStyleBG.Print(tag)
	WarnColorFG.Println(" " + msg)
}

// PrintInfoMessage prints an informational message to the user
func PrintInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// -----------------------------------------------------------------------------
// This section contains the display functions for the different kinds of
// messages that can be logged

func (cm *CycleMessage) display() {
	displayBanner("Dependency Cycle Error", ErrorStyleBG)
	fmt.Println(cm.Diagnostic)
	fmt.Println()
}

const limitationPostlude = `
This is a limitation of bindcore, not a problem with your API.
The declaration must be excluded until this type shape is supported.`

func (lm *LimitationMessage) display() {
	displayBanner("Unsupported Type Error", ErrorStyleBG)
	fmt.Printf("in `%s`: %s\n", lm.ApiName, lm.Message)
	InfoColorFG.Println(limitationPostlude)
	fmt.Println()
}

func (mm *ManifestMessage) display() {
	if mm.IsError {
		PrintErrorMessage("Manifest Error", fmt.Errorf("[%s] %s", mm.ModName, mm.Message))
	} else {
		PrintWarningMessage("Manifest Warning", fmt.Sprintf("[%s] %s", mm.ModName, mm.Message))
	}
}

// displayBanner displays the banner on top of multi-line messages
func displayBanner(title string, style *pterm.Style) {
	fmt.Print("\n\n-- ")
	style.Print(title)

	bannerLen := pterm.GetTerminalWidth() / 2
	if bannerLen > 50 {
		bannerLen = 50
	}

	if dashCount := bannerLen - len(title) - 1; dashCount > 0 {
		fmt.Print(" " + strings.Repeat("-", dashCount))
	}

	fmt.Println()
}

// -----------------------------------------------------------------------------

// displayAnalysisHeader displays the analysis information before it begins
func displayAnalysisHeader(modName string, apiCount int) {
	fmt.Print("bindcore ")
	InfoColorFG.Print("v" + common.BindcoreVersion)
	fmt.Print(" -- batch: ")
	InfoColorFG.Print(modName)
	fmt.Printf(" (%d APIs)\n", apiCount)
}

// phaseSpinner stores the current phase spinner
var phaseSpinner *pterm.SpinnerPrinter
var currentPhase string
var phaseStartTime time.Time

const maxPhaseLength = len("Classifying")

// displayBeginPhase displays the beginning of an analysis phase
func displayBeginPhase(phase string) {
	currentPhase = phase
	phaseText := phase + "..." + strings.Repeat(" ", maxPhaseLength-len(phase)+2)
	phaseSpinner = pterm.DefaultSpinner.WithStyle(pterm.NewStyle(InfoColorFG))

	phaseSpinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: SuccessStyleBG,
			Text:  "Done",
		},
	}

	phaseSpinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: ErrorStyleBG,
			Text:  "Fail",
		},
	}

	phaseSpinner.Start(phaseText)
	phaseStartTime = time.Now()
}

// displayEndPhase displays the end of an analysis phase
func displayEndPhase(success bool) {
	if phaseSpinner != nil {
		if success {
			phaseSpinner.Success(
				currentPhase+strings.Repeat(" ", maxPhaseLength-len(currentPhase)+2),
				fmt.Sprintf("(%.3fs)", time.Since(phaseStartTime).Seconds()),
			)
		} else {
			phaseSpinner.Fail(currentPhase + strings.Repeat(" ", maxPhaseLength-len(currentPhase)+2))
		}

		phaseSpinner = nil
	}
}

// displayAnalysisFinished displays an analysis finished message
func displayAnalysisFinished(success bool, errorCount, warningCount int) {
	fmt.Print("\n")

	if success {
		SuccessColorFG.Print("All done! ")
	} else {
		ErrorColorFG.Print("Oh no! ")
	}

	fmt.Print("(")

	switch errorCount {
	case 0:
		SuccessColorFG.Print(0)
		fmt.Print(" errors, ")
	case 1:
		ErrorColorFG.Print(1)
		fmt.Print(" error, ")
	default:
		ErrorColorFG.Print(errorCount)
		fmt.Print(" errors, ")
	}

	switch warningCount {
	case 0:
		SuccessColorFG.Print(0)
		fmt.Println(" warnings)")
	case 1:
		WarnColorFG.Print(1)
		fmt.Println(" warning)")
	default:
		WarnColorFG.Print(warningCount)
		fmt.Println(" warnings)")
	}
}
