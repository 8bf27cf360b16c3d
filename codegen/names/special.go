package names

import "strings"

var (
	retainedNames = []string{"new", "alloc", "copy", "mutableCopy"}
	initNames     = []string{"init"}
	createNames   = []string{"Create", "Copy"}
)

// isSpecialNamePrefix reports whether name starts with one of the given
// method name fragments on a word boundary: the byte after the fragment, if
// any, must not be lowercase (newton is not "new", newTon and new_ton are).
func isSpecialNamePrefix(name string, specialNames []string) bool {
	for _, special := range specialNames {
		if !strings.HasPrefix(name, special) {
			continue
		}
		if len(name) > len(special) {
			return !isLower(name[len(special)])
		}
		return true
	}
	return false
}

// IsRetainedName reports whether a method with this name returns a retained
// object under the Cocoa memory management naming conventions.
func IsRetainedName(name string) bool {
	return isSpecialNamePrefix(name, retainedNames)
}

// IsInitName reports whether the name belongs to the init method family.
func IsInitName(name string) bool {
	return isSpecialNamePrefix(name, initNames)
}

// IsCreateName reports whether name falls under the Core Foundation Create
// Rule. Only the first occurrence of a rule word decides: when the byte
// after it is lowercase the name does not qualify and later occurrences or
// words are not consulted. Names where the word ends the string qualify, so
// annotation-driven callers stay on the conservative side.
func IsCreateName(name string) bool {
	for _, pattern := range createNames {
		pos := strings.Index(name, pattern)
		if pos < 0 {
			continue
		}
		if len(name) > pos+len(pattern) {
			return !isLower(name[pos+len(pattern)])
		}
		return true
	}
	return false
}
