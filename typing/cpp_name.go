package typing

import (
	"errors"
	"fmt"
)

// ErrUnsupportedType is matched (via errors.Is) by every *UnsupportedTypeError
var ErrUnsupportedType = errors.New("unsupported type expression")

// UnsupportedTypeError is returned when a type expression has a shape that
// the analysis doesn't know how to handle yet.  This is a limitation of the
// analysis, not a problem with the user's API.
type UnsupportedTypeError struct {
	// Op is what was being done with the type (eg. "naming")
	Op string

	Expr TypeExpr
}

func (ute *UnsupportedTypeError) Error() string {
	repr := "<nil>"
	if ute.Expr != nil {
		repr = ute.Expr.Repr()
	}

	return fmt.Sprintf("%s of type `%s` is not yet supported", ute.Op, repr)
}

func (ute *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// ToCppName renders the C++ spelling of a type expression.  Path types map to
// the C++ name of their type, and references to const or non-const C++
// references.  Any other shape returns an *UnsupportedTypeError.
func ToCppName(typ TypeExpr) (string, error) {
	switch v := typ.(type) {
	case *PathType:
		return FromTypePath(v).CppName(), nil
	case *RefType:
		constBit := "const "
		if v.Mutable {
			constBit = ""
		}

		elemName, err := FromType(v.Elem)
		if err != nil {
			return "", err
		}

		return constBit + elemName.CppName() + "&", nil
	}

	return "", &UnsupportedTypeError{Op: "C++ rendering", Expr: typ}
}
