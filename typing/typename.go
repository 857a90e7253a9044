package typing

// TypeName is the name of a type as it is stored everywhere in the analysis:
// it always holds the canonical safe-language spelling (eg. `u32` or
// `CxxString`), never the C++ spelling (`uint32_t`) nor the dead name the
// header parser produced for it (`std_string`).  The only way to make one is
// to go through normalization.
type TypeName struct {
	name string
}

// NewTypeName normalizes a raw type name: dead names of known types are
// mapped back to their canonical name and every other name is assumed to
// already be canonical.
func NewTypeName(id string) TypeName {
	if canonical, ok := knownTypes().byDeadName[id]; ok {
		return newUnchecked(canonical)
	}

	return newUnchecked(id)
}

func newUnchecked(id string) TypeName {
	return TypeName{name: id}
}

// FromTypePath derives a type name from a path type by taking its last
// segment.  Generic arguments and the outer segments are dropped, so two
// types that only differ by namespace get the same name.
func FromTypePath(p *PathType) TypeName {
	return NewTypeName(p.Segments[len(p.Segments)-1])
}

// FromType derives a type name from a type expression.  Only path types have
// a name: every other shape returns an *UnsupportedTypeError.
func FromType(typ TypeExpr) (TypeName, error) {
	if pt, ok := typ.(*PathType); ok {
		return FromTypePath(pt), nil
	}

	return TypeName{}, &UnsupportedTypeError{Op: "naming", Expr: typ}
}

// CppName returns the C++ spelling of the type.  Types that aren't known are
// spelled the same way in both languages.
func (tn TypeName) CppName() string {
	if td, ok := knownTypes().byCanonName[tn]; ok {
		return td.CppName
	}

	return tn.name
}

// Prefixes returns whether the given function name is prefixed by this type
// name and an underscore.  If so, it also returns the suffix after that point.
func (tn TypeName) Prefixes(funcName string) (string, bool) {
	prefix := tn.name + "_"
	if tn.name != "" && len(funcName) > len(prefix) && funcName[:len(prefix)] == prefix {
		return funcName[len(prefix):], true
	}

	return "", false
}

func (tn TypeName) String() string {
	return tn.name
}
