package objc

import (
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/DeputyApp/protoc-gen-objc/codegen/names"
)

// DefaultFrameworkName is the name the runtime library ships under in
// CocoaPods. Generating for a differently named framework is a generator
// option since it requires the imports in the generated sources to change.
const DefaultFrameworkName = "Protobuf"

// FrameworkImportSymbol returns the preprocessor symbol that switches the
// generated imports of a framework's types from paths to framework form.
func FrameworkImportSymbol(frameworkName string) string {
	return "GPB_USE_" + strings.ToUpper(frameworkName) + "_FRAMEWORK_IMPORTS"
}

// BaseFileName returns the file's name with any directory part removed.
func BaseFileName(fd protoreflect.FileDescriptor) string {
	_, base := pathSplit(fd.Path())
	return base
}

// FilePath returns the path generated files for fd are written under: the
// proto's directory with a CamelCased basename, extension stripped.
func FilePath(fd protoreflect.FileDescriptor) string {
	dir, base := pathSplit(fd.Path())
	base = names.ToCamelCase(stripProto(base), true)
	if dir != "" {
		return dir + "/" + base
	}
	return base
}

// FilePathBasename returns just the generated basename for fd.
func FilePathBasename(fd protoreflect.FileDescriptor) string {
	_, base := pathSplit(fd.Path())
	return names.ToCamelCase(stripProto(base), true)
}

// IsBundledProtoFile reports whether fd is one of the well known types the
// runtime library ships generated sources for. The name is checked rather
// than the proto package because some files under the google.protobuf
// package, descriptor.proto for one, are not shipped with the library.
func IsBundledProtoFile(fd protoreflect.FileDescriptor) bool {
	return bundledProtoFiles[fd.Path()]
}

var bundledProtoFiles = map[string]bool{
	"google/protobuf/any.proto":            true,
	"google/protobuf/api.proto":            true,
	"google/protobuf/duration.proto":       true,
	"google/protobuf/empty.proto":          true,
	"google/protobuf/field_mask.proto":     true,
	"google/protobuf/source_context.proto": true,
	"google/protobuf/struct.proto":         true,
	"google/protobuf/timestamp.proto":      true,
	"google/protobuf/type.proto":           true,
	"google/protobuf/wrappers.proto":       true,
}

func pathSplit(path string) (dir, base string) {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[:i], path[i+1:]
	}
	return "", path
}

func stripProto(name string) string {
	if strings.HasSuffix(name, ".protodevel") {
		return strings.TrimSuffix(name, ".protodevel")
	}
	return strings.TrimSuffix(name, ".proto")
}
