package deps

// HasDependencies is implemented by anything the orderer can sort: it must
// report its own unique name and the names of the items it requires to be
// emitted first.  Names that don't belong to any item being ordered are
// assumed to be satisfied elsewhere.
type HasDependencies interface {
	Name() QualifiedName
	Deps() []QualifiedName
}
