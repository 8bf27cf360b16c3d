// Package prefix resolves and validates the Objective-C class prefix of
// proto files.
//
// Objective-C has no namespaces, so generated types lean on a per-file
// prefix to stay collision free. A file can declare one explicitly with the
// objc_class_prefix option; everything else is policy, configured through
// generator parameters or GPB_OBJC_* environment variables: an explicit
// package to prefix mappings file, deriving prefixes from the proto package,
// an exemption list, and a forced prefix prepended to derived ones.
//
// Resolver answers "what prefix does this file get" for the element namers.
// Validate cross-checks a whole invocation against an expected prefixes
// registry and reports drift, either as hard errors or as warnings on a
// diagnostics stream, depending on how strict the host wants to be.
package prefix
