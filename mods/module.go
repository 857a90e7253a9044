package mods

import "bindcore/deps"

// BindModule represents one batch of API declarations to analyze, as
// described by its manifest file
type BindModule struct {
	// ID is a unique identifier for the batch based on its manifest path
	ID uint

	// Name is the name of the batch
	Name string

	// ModuleRoot is the path to the directory containing the manifest
	ModuleRoot string

	// LogLevel is the name of the log level requested by the manifest.  It may
	// be empty in which case the caller's choice applies.
	LogLevel string

	// Apis is the list of declarations in manifest order.  All type names in
	// them have already been normalized.
	Apis []*deps.Api
}
