// Package testhelpers provides shared test utilities for codegen packages.
package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// BuildFile materializes a FileDescriptorProto into a resolved descriptor,
// failing the test when it does not validate.
func BuildFile(t *testing.T, fdp *descriptorpb.FileDescriptorProto) protoreflect.FileDescriptor {
	t.Helper()
	fd, err := protodesc.NewFile(fdp, nil)
	require.NoError(t, err)
	return fd
}

// FileProto returns the minimal proto3 FileDescriptorProto tests start from,
// with pkg omitted entirely when empty.
func FileProto(path, pkg string) *descriptorpb.FileDescriptorProto {
	fdp := &descriptorpb.FileDescriptorProto{
		Name:   proto.String(path),
		Syntax: proto.String("proto3"),
	}
	if pkg != "" {
		fdp.Package = proto.String(pkg)
	}
	return fdp
}

// File builds a file descriptor with the given path and package and no
// file options.
func File(t *testing.T, path, pkg string) protoreflect.FileDescriptor {
	t.Helper()
	return BuildFile(t, FileProto(path, pkg))
}

// FileWithPrefix builds a file descriptor declaring an explicit
// objc_class_prefix option, which may be the empty string.
func FileWithPrefix(t *testing.T, path, pkg, prefix string) protoreflect.FileDescriptor {
	t.Helper()
	fdp := FileProto(path, pkg)
	fdp.Options = &descriptorpb.FileOptions{ObjcClassPrefix: proto.String(prefix)}
	return BuildFile(t, fdp)
}
