package prefix

import (
	"fmt"
	"strings"
)

type (
	// MismatchError reports a file whose prefix does not agree with the
	// registry entry for its package: the file declared a different value,
	// or declared none while the registry expects one.
	MismatchError struct {
		// File is the proto file path being validated.
		File string
		// Package is the file's proto package, empty when it has none.
		Package string
		// Expected is the prefix the registry maps the file's key to.
		Expected string
		// Found is the prefix the file declared, meaningful only when
		// HasPrefix is set.
		Found string
		// HasPrefix records whether the file declared any objc_class_prefix.
		HasPrefix bool
	}

	// MissingPrefixError reports a file that declares no objc_class_prefix
	// while RequirePrefixes is on.
	MissingPrefixError struct {
		// File is the proto file path being validated.
		File string
	}

	// CollisionError reports a prefix that another registry entry already
	// claims, without the validated file being registered for it.
	CollisionError struct {
		// File is the proto file path being validated.
		File string
		// Prefix is the colliding prefix the file declared.
		Prefix string
		// OtherKey is the registry key holding Prefix: a package, or a
		// "no_package:" file entry.
		OtherKey string
		// LookupKey is the key the file would register under.
		LookupKey string
		// RegistryPath is the expected prefixes file consulted.
		RegistryPath string
	}

	// UnregisteredError reports an explicit prefix absent from the registry
	// while PrefixesMustBeRegistered is on.
	UnregisteredError struct {
		// File is the proto file path being validated.
		File string
		// Prefix is the unregistered prefix, possibly empty.
		Prefix string
		// LookupKey is the key the file would register under.
		LookupKey string
		// RegistryPath is the expected prefixes file consulted.
		RegistryPath string
	}
)

func (e *MismatchError) Error() string {
	var msg strings.Builder
	fmt.Fprintf(&msg, "error: Expected 'option objc_class_prefix = \"%s\";'", e.Expected)
	if e.Package != "" {
		fmt.Fprintf(&msg, " for package '%s'", e.Package)
	}
	fmt.Fprintf(&msg, " in '%s'", e.File)
	if e.HasPrefix {
		fmt.Fprintf(&msg, "; but found '%s' instead", e.Found)
	}
	msg.WriteString(".")
	return msg.String()
}

func (e *MissingPrefixError) Error() string {
	return fmt.Sprintf("error: '%s' does not have a required 'option objc_class_prefix'.", e.File)
}

func (e *CollisionError) Error() string {
	var msg strings.Builder
	fmt.Fprintf(&msg, "error: Found 'option objc_class_prefix = \"%s\";' in '%s'; that prefix is already used for ",
		e.Prefix, e.File)
	if file, ok := strings.CutPrefix(e.OtherKey, noPackagePrefix); ok {
		fmt.Fprintf(&msg, "file '%s'.", file)
	} else {
		fmt.Fprintf(&msg, "'package %s;'.", e.OtherKey)
	}
	fmt.Fprintf(&msg, " It can only be reused by adding '%s = %s' to the expected prefixes file (%s).",
		e.LookupKey, e.Prefix, e.RegistryPath)
	return msg.String()
}

func (e *UnregisteredError) Error() string {
	return fmt.Sprintf("error: '%s' has 'option objc_class_prefix = \"%s\";', but it is not registered. Add '%s = %s' to the expected prefixes file (%s).",
		e.File, e.Prefix, e.LookupKey, renderedPrefix(e.Prefix), e.RegistryPath)
}

// renderedPrefix spells a prefix the way a registry entry would have to,
// quoting only the empty value.
func renderedPrefix(prefix string) string {
	if prefix == "" {
		return `""`
	}
	return prefix
}
