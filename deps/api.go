package deps

import "bindcore/typing"

// Api represents a single declaration extracted from a C++ header: a type,
// a record, or a function.  It is the item the analysis pipeline orders.
type Api struct {
	// QualName is the fully qualified C++ name of the declaration
	QualName QualifiedName

	// Kind is the kind of declaration.  This must be one of the enumerated API
	// kinds below
	Kind int

	// Types are the type expressions referenced by the declaration: fields for
	// records, parameters for functions, the aliased type for aliases
	Types []typing.TypeExpr

	// deps is the full list of dependencies: the explicit ones followed by
	// every referenced type that isn't one of the known library types
	deps []QualifiedName
}

// Enumeration of API kinds
const (
	ApiKindTypeAlias = iota // `using` and `typedef` declarations
	ApiKindRecord           // Structs and classes
	ApiKindFunction         // Free functions
	ApiKindEnum             // Enumerations
)

// NewApi creates a new API item.  The dependencies of the item are computed
// once here from the explicit dependencies and the referenced types.
func NewApi(name QualifiedName, kind int, types []typing.TypeExpr, explicitDeps []QualifiedName) *Api {
	api := &Api{
		QualName: name,
		Kind:     kind,
		Types:    types,
	}

	seen := make(map[QualifiedName]struct{})
	addDep := func(dep QualifiedName) {
		if _, ok := seen[dep]; !ok {
			seen[dep] = struct{}{}
			api.deps = append(api.deps, dep)
		}
	}

	for _, dep := range explicitDeps {
		addDep(dep)
	}

	for _, typ := range types {
		for _, path := range typing.PathsOf(typ) {
			if !typing.IsKnownType(typing.FromTypePath(path)) {
				addDep(NewQualifiedNameFromCppName(path.CppPath()))
			}
		}
	}

	return api
}

func (api *Api) Name() QualifiedName {
	return api.QualName
}

func (api *Api) Deps() []QualifiedName {
	return api.deps
}

// TypeNames returns the canonical names of all the types referenced by this
// API, in order of first reference
func (api *Api) TypeNames() []typing.TypeName {
	var names []typing.TypeName
	seen := make(map[typing.TypeName]struct{})

	for _, typ := range api.Types {
		for _, path := range typing.PathsOf(typ) {
			tn := typing.FromTypePath(path)
			if _, ok := seen[tn]; !ok {
				seen[tn] = struct{}{}
				names = append(names, tn)
			}
		}
	}

	return names
}

var apiKindNames = map[int]string{
	ApiKindTypeAlias: "alias",
	ApiKindRecord:    "record",
	ApiKindFunction:  "function",
	ApiKindEnum:      "enum",
}

// ApiKindByName returns the API kind with the given manifest name
func ApiKindByName(name string) (int, bool) {
	for kind, kindName := range apiKindNames {
		if kindName == name {
			return kind, true
		}
	}

	return 0, false
}

// KindName returns the manifest name of the API's kind
func (api *Api) KindName() string {
	return apiKindNames[api.Kind]
}
