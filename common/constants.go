package common

const (
	ManifestFileName = "bind-mod.toml"
	BindcoreVersion  = "0.1.0"

	// CppNamespaceSep separates namespace segments in C++ spellings
	CppNamespaceSep = "::"

	// DeadNameSep is what the upstream header parser flattens namespace
	// separators into when it cannot resolve a templated library type
	DeadNameSep = "_"
)
