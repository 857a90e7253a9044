package typing

import (
	"bindcore/common"
	"fmt"
	"strings"
	"sync"
)

// PreludePolicy determines whether and how a known type is included in the
// prelude handed to the header parser
type PreludePolicy int

// Enumeration of prelude policies
const (
	PreludeExclude          PreludePolicy = iota // not in the prelude at all
	PreludeIncludeNormal                         // plain stand-in class
	PreludeIncludeTemplated                      // stand-in class template with one parameter
)

// TypeDetails is the record of a C++ library or primitive type that needs
// special handling
type TypeDetails struct {
	// Canonical is the name used for this type by the generated safe code
	Canonical string

	// CppName is the C++ equivalent spelling of the type
	CppName string

	// ByValueSafe indicates whether this type can be safely represented by
	// value
	ByValueSafe bool

	// PreludePolicy is whether and how to include this type in the prelude
	PreludePolicy PreludePolicy

	// bitSize is the width of fixed-width integer types and 0 for all others
	bitSize uint64
}

// preludeEntry renders the stand-in declaration for this type.  It returns
// false if the type is excluded from the prelude.
func (td *TypeDetails) preludeEntry() (string, bool) {
	var templating, payload string
	switch td.PreludePolicy {
	case PreludeIncludeNormal:
		templating, payload = "", "char* ptr"
	case PreludeIncludeTemplated:
		templating, payload = "template<typename T> ", "T* ptr"
	default:
		return "", false
	}

	return fmt.Sprintf(
		"/**\n* <div rustbindgen=\"true\" replaces=\"%s\">\n*/\n%sclass %s {\n    %s;\n};\n\n",
		td.CppName, templating, td.Canonical, payload,
	), true
}

// typeDatabase is the table of known types.  It is built once and never
// mutated afterward so it can be read concurrently without locking.
type typeDatabase struct {
	// byCanonName maps canonical names to their records
	byCanonName map[TypeName]*TypeDetails

	// byDeadName maps the flattened spelling of a C++ name to the canonical
	// name of the type it stands for
	byDeadName map[string]string
}

var (
	knownTypesOnce sync.Once
	knownTypesDB   *typeDatabase
)

// knownTypes returns the shared type database, building it on first use
func knownTypes() *typeDatabase {
	knownTypesOnce.Do(func() {
		knownTypesDB = createTypeDatabase()
	})

	return knownTypesDB
}

func createTypeDatabase() *typeDatabase {
	byCanonName := make(map[TypeName]*TypeDetails)
	insert := func(td *TypeDetails) {
		byCanonName[newUnchecked(td.Canonical)] = td
	}

	insert(&TypeDetails{
		Canonical:     "UniquePtr",
		CppName:       "std::unique_ptr",
		ByValueSafe:   true,
		PreludePolicy: PreludeIncludeTemplated,
	})
	insert(&TypeDetails{
		Canonical:     "CxxString",
		CppName:       "std::string",
		ByValueSafe:   false,
		PreludePolicy: PreludeIncludeNormal,
	})

	for _, bits := range []uint64{8, 16, 32, 64} {
		insert(&TypeDetails{
			Canonical:     fmt.Sprintf("u%d", bits),
			CppName:       fmt.Sprintf("uint%d_t", bits),
			ByValueSafe:   true,
			PreludePolicy: PreludeExclude,
			bitSize:       bits,
		})
		insert(&TypeDetails{
			Canonical:     fmt.Sprintf("i%d", bits),
			CppName:       fmt.Sprintf("int%d_t", bits),
			ByValueSafe:   true,
			PreludePolicy: PreludeExclude,
			bitSize:       bits,
		})
	}

	byDeadName := make(map[string]string)
	for _, td := range byCanonName {
		deadName := strings.ReplaceAll(td.CppName, common.CppNamespaceSep, common.DeadNameSep)
		if deadName != td.CppName {
			byDeadName[deadName] = td.Canonical
		}
	}

	return &typeDatabase{
		byCanonName: byCanonName,
		byDeadName:  byDeadName,
	}
}

// -----------------------------------------------------------------------------

// Prelude returns the C++ prelude to hand to the header parser before the
// real headers.  It declares simple stand-in classes that replace the library
// types the parser can't cope with: without them, the parser would give us
// `std_unique_ptr` for `std::unique_ptr<T>` and drop the template parameter.
// The order of the entries is unspecified.
func Prelude() string {
	var entries []string
	for _, td := range knownTypes().byCanonName {
		if entry, ok := td.preludeEntry(); ok {
			entries = append(entries, entry)
		}
	}

	return strings.Join(entries, "\n")
}

// PodSafety pairs a known type with whether it may be passed by value
type PodSafety struct {
	Name        TypeName
	ByValueSafe bool
}

// PodSafeTypes returns the by-value safety of every known type
func PodSafeTypes() []PodSafety {
	db := knownTypes()

	table := make([]PodSafety, 0, len(db.byCanonName))
	for tn, td := range db.byCanonName {
		table = append(table, PodSafety{Name: tn, ByValueSafe: td.ByValueSafe})
	}

	return table
}

// LookupDetails returns a copy of the record of a known type
func LookupDetails(tn TypeName) (TypeDetails, bool) {
	if td, ok := knownTypes().byCanonName[tn]; ok {
		return *td, true
	}

	return TypeDetails{}, false
}

// IsKnownType returns whether the type has a record in the database
func IsKnownType(tn TypeName) bool {
	_, ok := knownTypes().byCanonName[tn]
	return ok
}
