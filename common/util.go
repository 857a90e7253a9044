package common

import "hash/fnv"

// GenerateIDFromPath takes an absolute path and converts it into a numeric ID;
// this is used by manifests to tag the batches they produce
func GenerateIDFromPath(abspath string) uint {
	h := fnv.New32a()
	h.Write([]byte(abspath))
	return uint(h.Sum32())
}

// IsValidIdentifier returns whether or not a given string would be a valid
// identifier (module name, type name segment, etc.)
func IsValidIdentifier(idstr string) bool {
	if idstr == "" {
		return false
	}

	if idstr[0] == '_' || ('a' <= idstr[0] && idstr[0] <= 'z') || ('A' <= idstr[0] && idstr[0] <= 'Z') {
		for _, c := range idstr[1:] {
			if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
				continue
			}

			return false
		}

		return true
	}

	return false
}
