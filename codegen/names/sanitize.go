package names

import "strings"

// wordSet builds the lookup form of the compiled-in name tables.
func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// isReservedCIdentifier reports whether ident has a shape the C standard
// reserves for the implementation: longer than two bytes with a leading
// underscore followed by an uppercase letter or a second underscore. Inputs
// normally arrive already CamelCased, the check still guards direct callers.
func isReservedCIdentifier(ident string) bool {
	if len(ident) > 2 && ident[0] == '_' {
		if isUpper(ident[1]) || ident[1] == '_' {
			return true
		}
	}
	return false
}

// Sanitize returns input carrying prefix and renamed away from anything the
// generated code cannot declare, along with the collision suffix it appended
// ("" when input came through untouched).
//
// input counts as already prefixed only when it starts with prefix and
// either ends there or continues with an uppercase letter. Any other textual
// match is treated as coincidence and prefix is prepended verbatim, even
// when that duplicates it; a digit or lowercase letter right after the
// prefix therefore re-prefixes.
//
// The prefixed candidate collides when it has the reserved C identifier
// shape or appears in the reserved word or NSObject method tables, in which
// case suffix is appended.
func Sanitize(prefix, input, suffix string) (string, string) {
	var sanitized string
	if strings.HasPrefix(input, prefix) &&
		(len(input) == len(prefix) || isUpper(input[len(prefix)])) {
		sanitized = input
	} else {
		sanitized = prefix + input
	}
	if isReservedCIdentifier(sanitized) || reservedWords[sanitized] || nsObjectMethods[sanitized] {
		return sanitized + suffix, suffix
	}
	return sanitized, ""
}
