package typing

import "github.com/llir/llvm/ir/types"

// IRType returns the LLVM layout used to carry a value of the given type
// across the language boundary.  Fixed-width integers are passed as integers
// of the same width, owning pointers as plain pointers, and everything else
// is held behind a pointer to an opaque struct named after the type.
func IRType(tn TypeName) types.Type {
	if td, ok := LookupDetails(tn); ok {
		if td.bitSize > 0 {
			return types.NewInt(td.bitSize)
		}

		if td.ByValueSafe {
			return types.NewPointer(types.I8)
		}
	}

	opaque := types.NewStruct()
	opaque.SetName(tn.String())
	opaque.Opaque = true

	return types.NewPointer(opaque)
}

// IsOpaque returns whether values of the type must be handled through an
// opaque pointer rather than by value
func IsOpaque(tn TypeName) bool {
	td, ok := LookupDetails(tn)
	return !ok || !td.ByValueSafe
}
