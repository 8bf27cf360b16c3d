package objc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DeputyApp/protoc-gen-objc/codegen/objc"
	"github.com/DeputyApp/protoc-gen-objc/codegen/testhelpers"
)

func TestFilePaths(t *testing.T) {
	cases := []struct {
		name         string
		protoPath    string
		wantPath     string
		wantBasename string
		wantBaseFile string
	}{
		{"nested directory", "some/dir/my_file.proto", "some/dir/MyFile", "MyFile", "my_file.proto"},
		{"bare file", "my_file.proto", "MyFile", "MyFile", "my_file.proto"},
		{"protodevel extension", "dev/thing.protodevel", "dev/Thing", "Thing", "thing.protodevel"},
		{"digits and acronyms", "v2/url_service.proto", "v2/URLService", "URLService", "url_service.proto"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fd := testhelpers.File(t, tc.protoPath, "testing.paths")
			assert.Equal(t, tc.wantPath, objc.FilePath(fd))
			assert.Equal(t, tc.wantBasename, objc.FilePathBasename(fd))
			assert.Equal(t, tc.wantBaseFile, objc.BaseFileName(fd))
		})
	}
}

func TestFrameworkImportSymbol(t *testing.T) {
	assert.Equal(t, "GPB_USE_PROTOBUF_FRAMEWORK_IMPORTS",
		objc.FrameworkImportSymbol(objc.DefaultFrameworkName))
	assert.Equal(t, "GPB_USE_MYLIB_FRAMEWORK_IMPORTS",
		objc.FrameworkImportSymbol("MyLib"))
}

func TestIsBundledProtoFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"google/protobuf/timestamp.proto", true},
		{"google/protobuf/any.proto", true},
		{"google/protobuf/wrappers.proto", true},
		// descriptor.proto generates through the plugin, the library does
		// not ship it.
		{"google/protobuf/descriptor.proto", false},
		{"google/protobuf/timestamp2.proto", false},
		{"my/app/timestamp.proto", false},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			fd := testhelpers.File(t, tc.path, "google.protobuf")
			assert.Equal(t, tc.want, objc.IsBundledProtoFile(fd))
		})
	}
}
