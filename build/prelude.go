package build

import (
	"bindcore/common"
	"bindcore/typing"
	"fmt"
)

// preludeHeader opens every prelude handed to the header parser
const preludeHeader = "// prelude generated by bindcore v%s\n\n"

// attachPrelude adds the stand-in declarations of the known library types to
// an analysis
func attachPrelude(an *Analysis) {
	an.Prelude = fmt.Sprintf(preludeHeader, common.BindcoreVersion) + typing.Prelude()
}
