package typing

import (
	"bindcore/common"
	"fmt"
	"strings"
)

// TypeExpr is a safe-language type expression as written in a declaration
type TypeExpr interface {
	// Repr returns the expression as it would be written in source
	Repr() string
}

// PathType is a (possibly qualified) named type: `i32`, `ffi::ns::Widget`
type PathType struct {
	Segments []string
}

// NewPathType creates a path type from a `::` separated path
func NewPathType(path string) *PathType {
	return &PathType{Segments: strings.Split(path, common.CppNamespaceSep)}
}

// CppPath returns the full path joined with C++ namespace separators
func (pt *PathType) CppPath() string {
	return strings.Join(pt.Segments, common.CppNamespaceSep)
}

func (pt *PathType) Repr() string {
	return pt.CppPath()
}

// RefType is a reference: `&T` or `&mut T`
type RefType struct {
	Mutable bool
	Elem    TypeExpr
}

func (rt *RefType) Repr() string {
	if rt.Mutable {
		return "&mut " + rt.Elem.Repr()
	}

	return "&" + rt.Elem.Repr()
}

// PtrType is a raw pointer: `*const T` or `*mut T`
type PtrType struct {
	Mutable bool
	Elem    TypeExpr
}

func (pt *PtrType) Repr() string {
	if pt.Mutable {
		return "*mut " + pt.Elem.Repr()
	}

	return "*const " + pt.Elem.Repr()
}

// SliceType is a slice: `[T]`
type SliceType struct {
	Elem TypeExpr
}

func (st *SliceType) Repr() string {
	return "[" + st.Elem.Repr() + "]"
}

// PathsOf returns all the path types contained in a type expression
func PathsOf(typ TypeExpr) []*PathType {
	switch v := typ.(type) {
	case *PathType:
		return []*PathType{v}
	case *RefType:
		return PathsOf(v.Elem)
	case *PtrType:
		return PathsOf(v.Elem)
	case *SliceType:
		return PathsOf(v.Elem)
	}

	return nil
}

// -----------------------------------------------------------------------------

// ParseTypeExpr parses a type expression written in the manifest syntax:
//
//	path     = ident { "::" ident }
//	expr     = path | "&" [ "mut" ] expr | "*" ( "const" | "mut" ) expr | "[" expr "]"
func ParseTypeExpr(src string) (TypeExpr, error) {
	s := strings.TrimSpace(src)
	if s == "" {
		return nil, fmt.Errorf("empty type expression")
	}

	switch {
	case strings.HasPrefix(s, "&"):
		rest := strings.TrimSpace(s[1:])
		mutable := false
		if after, ok := cutKeyword(rest, "mut"); ok {
			rest, mutable = after, true
		}

		elem, err := ParseTypeExpr(rest)
		if err != nil {
			return nil, err
		}

		return &RefType{Mutable: mutable, Elem: elem}, nil
	case strings.HasPrefix(s, "*"):
		rest := strings.TrimSpace(s[1:])

		var mutable bool
		if after, ok := cutKeyword(rest, "mut"); ok {
			rest, mutable = after, true
		} else if after, ok := cutKeyword(rest, "const"); ok {
			rest = after
		} else {
			return nil, fmt.Errorf("pointer type `%s` must be `*const` or `*mut`", src)
		}

		elem, err := ParseTypeExpr(rest)
		if err != nil {
			return nil, err
		}

		return &PtrType{Mutable: mutable, Elem: elem}, nil
	case strings.HasPrefix(s, "["):
		if !strings.HasSuffix(s, "]") {
			return nil, fmt.Errorf("unclosed slice type `%s`", src)
		}

		elem, err := ParseTypeExpr(s[1 : len(s)-1])
		if err != nil {
			return nil, err
		}

		return &SliceType{Elem: elem}, nil
	}

	pt := NewPathType(s)
	for _, seg := range pt.Segments {
		if !common.IsValidIdentifier(seg) {
			return nil, fmt.Errorf("invalid path segment `%s` in type `%s`", seg, src)
		}
	}

	return pt, nil
}

// cutKeyword removes a leading keyword followed by whitespace from s
func cutKeyword(s, kw string) (string, bool) {
	if len(s) > len(kw) && strings.HasPrefix(s, kw) && (s[len(kw)] == ' ' || s[len(kw)] == '\t') {
		return strings.TrimSpace(s[len(kw):]), true
	}

	return s, false
}
