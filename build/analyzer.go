package build

import (
	"bindcore/deps"
	"bindcore/logging"
	"bindcore/mods"
	"bindcore/typing"
	"errors"
	"fmt"

	"github.com/llir/llvm/ir/types"
)

// Analyzer is the data structure responsible for running the analysis of one
// batch of API declarations
type Analyzer struct {
	// mod is the batch being analyzed
	mod *mods.BindModule
}

// Analysis is everything the code emitters need to know about a batch
type Analysis struct {
	// Order is the list of APIs in the order they must be emitted: every API
	// comes after all the APIs of the batch it depends on
	Order []*deps.Api

	// Prelude is the C++ text to hand to the header parser before the headers
	Prelude string

	// PodSafe indicates for every known type and every type referenced by
	// the batch whether it may be passed by value
	PodSafe map[typing.TypeName]bool

	// Layouts is the LLVM layout of every type referenced by the batch
	Layouts map[typing.TypeName]types.Type

	// CppTypes is the C++ spelling of every type expression of every API
	CppTypes map[deps.QualifiedName][]string

	// Methods groups the functions whose name is prefixed by the name of a
	// record of the batch under that record's type name
	Methods map[typing.TypeName][]MethodBinding
}

// MethodBinding is a free function attached to a record as a method
type MethodBinding struct {
	Func *deps.Api

	// MethodName is the function name with the type name prefix removed
	MethodName string
}

// NewAnalyzer creates a new analyzer for a batch
func NewAnalyzer(mod *mods.BindModule) *Analyzer {
	return &Analyzer{mod: mod}
}

// Analyze runs the full analysis.  It reports all errors through the logger
// and also returns them: a dependency cycle matches deps.ErrDependencyCycle
// and an unsupported type shape matches typing.ErrUnsupportedType.  No partial
// analysis is returned on failure.
func (a *Analyzer) Analyze() (*Analysis, error) {
	logging.ReportAnalysisHeader(a.mod.Name, len(a.mod.Apis))

	an := &Analysis{
		PodSafe:  make(map[typing.TypeName]bool),
		Layouts:  make(map[typing.TypeName]types.Type),
		CppTypes: make(map[deps.QualifiedName][]string),
		Methods:  make(map[typing.TypeName][]MethodBinding),
	}

	logging.BeginPhase("Ordering")
	order, err := deps.DepthFirst(a.mod.Apis).Collect()
	if err != nil {
		var ce *deps.CycleError
		if errors.As(err, &ce) {
			logging.ReportCycle(ce)
		}

		logging.EndPhase(false)
		return nil, fmt.Errorf("ordering APIs of module %s: %w", a.mod.Name, err)
	}
	an.Order = order
	logging.EndPhase(true)

	logging.BeginPhase("Classifying")
	if err := a.classify(an); err != nil {
		logging.EndPhase(false)
		return nil, fmt.Errorf("classifying types of module %s: %w", a.mod.Name, err)
	}
	a.bindMethods(an)
	logging.EndPhase(true)

	attachPrelude(an)

	return an, nil
}

// classify determines the by-value safety, layout and C++ spellings of all
// the types referenced by the batch
func (a *Analyzer) classify(an *Analysis) error {
	for _, ps := range typing.PodSafeTypes() {
		an.PodSafe[ps.Name] = ps.ByValueSafe
	}

	for _, api := range an.Order {
		for _, tn := range api.TypeNames() {
			// types that aren't known are records of the user's API which are
			// always handled through an opaque pointer
			if _, ok := an.PodSafe[tn]; !ok {
				an.PodSafe[tn] = false
			}

			if _, ok := an.Layouts[tn]; !ok {
				an.Layouts[tn] = typing.IRType(tn)
			}
		}

		cppTypes := make([]string, len(api.Types))
		for i, typ := range api.Types {
			cppName, err := typing.ToCppName(typ)
			if err != nil {
				logging.ReportUnsupportedType(api.QualName, err)
				return fmt.Errorf("API `%s`: %w", api.QualName, err)
			}

			cppTypes[i] = cppName
		}
		an.CppTypes[api.QualName] = cppTypes
	}

	return nil
}

// bindMethods attaches every function of the batch to the record whose name
// prefixes the function's name
func (a *Analyzer) bindMethods(an *Analysis) {
	var records []typing.TypeName
	for _, api := range an.Order {
		if api.Kind == deps.ApiKindRecord {
			records = append(records, typing.NewTypeName(api.QualName.Ident()))
		}
	}

	for _, api := range an.Order {
		if api.Kind != deps.ApiKindFunction {
			continue
		}

		for _, record := range records {
			if methodName, ok := record.Prefixes(api.QualName.Ident()); ok {
				an.Methods[record] = append(an.Methods[record], MethodBinding{Func: api, MethodName: methodName})
				break
			}
		}
	}
}

// AnalyzeDir loads the manifest in the given directory and analyzes it.  If
// the manifest requests a log level, the logger is switched to it.
func AnalyzeDir(path string) (*Analysis, error) {
	mod, err := mods.LoadModule(path)
	if err != nil {
		logging.ReportManifestError(path, err)
		return nil, err
	}

	if mod.LogLevel != "" {
		logging.SetLogLevel(mod.LogLevel)
	}

	an, err := NewAnalyzer(mod).Analyze()
	logging.ReportAnalysisFinished()

	return an, err
}
