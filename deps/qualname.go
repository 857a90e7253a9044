package deps

import (
	"bindcore/common"
	"strings"
)

// QualifiedName is the identity of an API item.  All qualified names of a run
// share one flat namespace: two items with the same qualified name are the
// same item as far as ordering is concerned.
type QualifiedName string

// NewQualifiedNameFromCppName creates a qualified name from its C++ spelling
// (eg. `ns::inner::Thing`)
func NewQualifiedNameFromCppName(cppName string) QualifiedName {
	return QualifiedName(cppName)
}

// Namespace returns the enclosing namespace segments of the name.  It is empty
// for names declared at the top level.
func (qn QualifiedName) Namespace() []string {
	segs := strings.Split(string(qn), common.CppNamespaceSep)
	return segs[:len(segs)-1]
}

// Ident returns the innermost, unqualified identifier of the name
func (qn QualifiedName) Ident() string {
	s := string(qn)
	if i := strings.LastIndex(s, common.CppNamespaceSep); i >= 0 {
		return s[i+len(common.CppNamespaceSep):]
	}

	return s
}

func (qn QualifiedName) String() string {
	return string(qn)
}
