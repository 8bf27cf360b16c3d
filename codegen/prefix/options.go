package prefix

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
)

type (
	// ResolverOptions configures how class prefixes are resolved for files
	// that do not declare one. The zero value resolves every such file to
	// the empty prefix.
	ResolverOptions struct {
		// UsePackageAsDefault derives a prefix from the proto package when
		// no explicit option or mapping applies.
		UsePackageAsDefault bool `env:"GPB_OBJC_USE_PACKAGE_AS_PREFIX"`
		// ExceptionPath is a file listing packages excluded from package
		// derived prefixing, one per line.
		ExceptionPath string `env:"GPB_OBJC_PACKAGE_PREFIX_EXCEPTIONS_PATH"`
		// ForcedPrefix is prepended to every package derived prefix.
		ForcedPrefix string `env:"GPB_OBJC_USE_PACKAGE_AS_PREFIX_PREFIX"`
		// MappingsPath is a "package = prefix" file consulted before any
		// package derivation. It has no environment variable; hosts set it
		// through the generator parameter.
		MappingsPath string `env:"-"`
		// Diag receives warnings when the mappings or exception file fails
		// to load. Defaults to os.Stderr.
		Diag io.Writer `env:"-"`
	}

	// ValidatorOptions configures the cross-file prefix validation pass.
	ValidatorOptions struct {
		// ExpectedPrefixesPath is the registry of expected package to
		// prefix pairs. "-" disables validation entirely.
		ExpectedPrefixesPath string `env:"GPB_OBJC_EXPECTED_PACKAGE_PREFIXES"`
		// Suppressions lists proto file paths validation skips.
		Suppressions []string `env:"GPB_OBJC_EXPECTED_PACKAGE_PREFIXES_SUPPRESSIONS" envSeparator:";"`
		// PrefixesMustBeRegistered escalates a prefix missing from the
		// registry from a suggestion to an error.
		PrefixesMustBeRegistered bool `env:"GPB_OBJC_PREFIXES_MUST_BE_REGISTERED"`
		// RequirePrefixes makes files carrying no objc_class_prefix option
		// and no registry entry an error.
		RequirePrefixes bool `env:"GPB_OBJC_REQUIRE_PREFIXES"`
		// Diag receives non-fatal warnings. Defaults to os.Stderr.
		Diag io.Writer `env:"-"`
	}
)

// ResolverOptionsFromEnv reads the GPB_OBJC_* resolution settings. The
// environment is a bootstrap: hosts layer generator parameters on top of the
// returned options.
func ResolverOptionsFromEnv() (ResolverOptions, error) {
	var opts ResolverOptions
	if err := parseEnv(&opts); err != nil {
		return ResolverOptions{}, fmt.Errorf("parse prefix resolver environment: %w", err)
	}
	return opts, nil
}

// ValidatorOptionsFromEnv reads the GPB_OBJC_* validation settings.
func ValidatorOptionsFromEnv() (ValidatorOptions, error) {
	var opts ValidatorOptions
	if err := parseEnv(&opts); err != nil {
		return ValidatorOptions{}, fmt.Errorf("parse prefix validator environment: %w", err)
	}
	kept := make([]string, 0, len(opts.Suppressions))
	for _, path := range opts.Suppressions {
		if path != "" {
			kept = append(kept, path)
		}
	}
	opts.Suppressions = kept
	return opts, nil
}

// parseEnv fills cfg from the environment. Booleans keep the historical
// contract of these variables: true means a value that uppercases to exactly
// "YES", anything else is false.
func parseEnv(cfg any) error {
	return env.ParseWithOptions(cfg, env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(false): func(value string) (any, error) {
				return strings.ToUpper(value) == "YES", nil
			},
		},
	})
}
