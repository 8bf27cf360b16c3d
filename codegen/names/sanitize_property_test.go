package names

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestSanitizeProperties verifies the sanitizer invariants over generated
// identifiers: a non-empty input never sanitizes to an empty identifier, the
// result is stable across calls, and re-sanitizing an identifier that
// follows the CamelCase convention (uppercase letter after any non-empty
// prefix) is a no-op.
func TestSanitizeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("non-empty input never sanitizes to empty", prop.ForAll(
		func(prefix, input, suffix string) bool {
			result, _ := Sanitize(prefix, input, suffix)
			return result != ""
		},
		genPrefix(),
		gen.Identifier(),
		genSuffix(),
	))

	properties.Property("sanitize is deterministic", prop.ForAll(
		func(prefix, input, suffix string) bool {
			first, firstSuffix := Sanitize(prefix, input, suffix)
			second, secondSuffix := Sanitize(prefix, input, suffix)
			return first == second && firstSuffix == secondSuffix
		},
		genPrefix(),
		gen.Identifier(),
		genSuffix(),
	))

	properties.Property("sanitize is idempotent for camel case inputs", prop.ForAll(
		func(prefix, input, suffix string) bool {
			first, _ := Sanitize(prefix, input, suffix)
			second, _ := Sanitize(prefix, first, suffix)
			return first == second
		},
		genPrefix(),
		genCapitalizedName(),
		genSuffix(),
	))

	properties.Property("result always carries the input", prop.ForAll(
		func(prefix, input, suffix string) bool {
			result, _ := Sanitize(prefix, input, suffix)
			return strings.Contains(result, input)
		},
		genPrefix(),
		gen.Identifier(),
		genSuffix(),
	))

	properties.TestingRun(t)
}

// genPrefix yields class prefixes in the shapes resolution produces: empty,
// or short runs of uppercase letters.
func genPrefix() gopter.Gen {
	return gen.OneConstOf("", "GPB", "ABC", "FOO", "ZAP")
}

// genSuffix yields the collision suffixes element namers pass in.
func genSuffix() gopter.Gen {
	return gen.OneConstOf("_Class", "_Enum", "_Value", "_p", "_X")
}

// genCapitalizedName yields identifiers following the CamelCase convention
// the element namers feed the sanitizer: a leading uppercase letter.
func genCapitalizedName() gopter.Gen {
	return gen.AlphaString().
		SuchThat(func(s string) bool { return len(s) > 0 }).
		Map(func(s string) string { return strings.ToUpper(s[:1]) + s[1:] })
}
