package prefix

import (
	"io"
	"os"
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/DeputyApp/protoc-gen-objc/codegen/names"
)

// Usage strings naming config file roles in parse errors. The registry and
// the mappings file share one format, only the role differs.
const (
	expectedPrefixesUsage = "Expected prefixes"
	mappingsUsage         = "Package to prefixes"
)

// noPackagePrefix keys files that declare no package in config files.
const noPackagePrefix = "no_package:"

// Resolver computes the Objective-C class prefix of proto files. It owns the
// lazily loaded mappings and exemption caches, so resolution is deterministic
// for a given configuration and file set.
//
// A Resolver is not safe for concurrent use. Hosts build one per generation
// run and discard it afterwards; nothing is shared between instances.
type Resolver struct {
	usePackage   bool
	forcedPrefix string
	diag         io.Writer

	mappings   configMap
	exceptions configSet
}

// NewResolver returns a Resolver for the given options.
func NewResolver(opts ResolverOptions) *Resolver {
	diag := opts.Diag
	if diag == nil {
		diag = os.Stderr
	}
	return &Resolver{
		usePackage:   opts.UsePackageAsDefault,
		forcedPrefix: opts.ForcedPrefix,
		diag:         diag,
		mappings:     configMap{path: opts.MappingsPath, usage: mappingsUsage},
		exceptions:   configSet{path: opts.ExceptionPath},
	}
}

// SetMappingsPath points the resolver at a different mappings file and drops
// the cached entries so the next resolution reloads.
func (r *Resolver) SetMappingsPath(path string) {
	r.mappings = configMap{path: path, usage: mappingsUsage}
}

// SetExceptionPath points the resolver at a different exemption file and
// drops the cached entries.
func (r *Resolver) SetExceptionPath(path string) {
	r.exceptions = configSet{path: path}
}

// SetUsePackageAsDefault toggles package derived prefixing.
func (r *Resolver) SetUsePackageAsDefault(enabled bool) {
	r.usePackage = enabled
}

// SetForcedPrefix replaces the prefix prepended to package derived prefixes.
func (r *Resolver) SetForcedPrefix(prefix string) {
	r.forcedPrefix = prefix
}

// ClassPrefix returns the class prefix for fd.
//
// The file's own objc_class_prefix option always wins, an explicit empty
// value included; that is how a file opts out when package derived prefixing
// is on. After that a non-empty entry in the mappings file applies. With
// package derivation enabled and the package not exempted, the prefix is
// built from the dot separated package segments, each CamelCased and joined
// with underscores plus a trailing underscore, behind the forced prefix.
// Everything else resolves to "".
func (r *Resolver) ClassPrefix(fd protoreflect.FileDescriptor) string {
	if prefix, ok := explicitPrefix(fd); ok {
		return prefix
	}

	// A key mapped to the empty string reads the same as an absent key, so
	// it falls through to derivation rather than forcing an empty prefix.
	if mapped, ok := r.mappings.lookup(LookupKey(fd), r.diag); ok && mapped != "" {
		return mapped
	}

	if !r.usePackage {
		return ""
	}
	if r.exceptions.contains(string(fd.Package()), r.diag) {
		return ""
	}

	var result string
	for _, segment := range strings.Split(string(fd.Package()), ".") {
		part := names.ToCamelCase(segment, true)
		if part == "" {
			continue
		}
		if result != "" {
			result += "_"
		}
		result += part
	}
	if result != "" {
		result += "_"
	}
	return r.forcedPrefix + result
}

// LookupKey returns the key a file is registered under in prefix config
// files: its package, or "no_package:" plus its path when it has none.
func LookupKey(fd protoreflect.FileDescriptor) string {
	if pkg := string(fd.Package()); pkg != "" {
		return pkg
	}
	return noPackagePrefix + fd.Path()
}

// explicitPrefix returns the objc_class_prefix file option and whether the
// file declares one; a declared empty value is distinct from no option.
func explicitPrefix(fd protoreflect.FileDescriptor) (string, bool) {
	opts, ok := fd.Options().(*descriptorpb.FileOptions)
	if !ok || opts == nil || opts.ObjcClassPrefix == nil {
		return "", false
	}
	return opts.GetObjcClassPrefix(), true
}
