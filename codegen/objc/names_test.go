package objc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/DeputyApp/protoc-gen-objc/codegen/objc"
	"github.com/DeputyApp/protoc-gen-objc/codegen/prefix"
	"github.com/DeputyApp/protoc-gen-objc/codegen/testhelpers"
)

func TestFieldName(t *testing.T) {
	md := fieldsFixture(t)
	cases := []struct {
		field string
		want  string
	}{
		{"url", "URL"},
		{"url_maps", "URLMapsArray"},
		{"some_array", "someArray_p"},
		{"id", "id_p"},
		{"clear", "clear_p"},
		{"description", "description_p"},
		{"tags", "tags"},
		{"values", "valuesArray"},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			fd := md.Fields().ByName(protoreflect.Name(tc.field))
			assert.Equal(t, tc.want, objc.FieldName(fd))
		})
	}
}

func TestFieldNameCapitalized(t *testing.T) {
	md := fieldsFixture(t)
	cases := []struct {
		field string
		want  string
	}{
		{"url", "URL"},
		{"some_array", "SomeArray_p"},
		{"id", "Id_p"},
		{"values", "ValuesArray"},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			fd := md.Fields().ByName(protoreflect.Name(tc.field))
			assert.Equal(t, tc.want, objc.FieldNameCapitalized(fd))
		})
	}
}

func TestFieldName_Group(t *testing.T) {
	fd := legacyFixture(t)
	group := fd.Messages().ByName("Legacy").Fields().ByName("mygroup")

	// Groups take their name from the group message, not the field.
	assert.Equal(t, "myGroup", objc.FieldName(group))
	assert.Equal(t, "MyGroup", objc.FieldNameCapitalized(group))
}

func TestUnCamelCaseFieldName(t *testing.T) {
	md := fieldsFixture(t)
	group := legacyFixture(t).Messages().ByName("Legacy").Fields().ByName("mygroup")

	cases := []struct {
		name  string
		given string
		field protoreflect.FieldDescriptor
		want  string
	}{
		{"plain", "someField", md.Fields().ByName("id"), "some_field"},
		{"pushed aside suffix comes off", "someArray_p", md.Fields().ByName("some_array"), "some_array"},
		{"repeated loses Array", "valuesArray", md.Fields().ByName("values"), "values"},
		{"scalar keeps Array", "someArray", md.Fields().ByName("some_array"), "some_array"},
		{"group recapitalizes", "myGroup", group, "MyGroup"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, objc.UnCamelCaseFieldName(tc.given, tc.field))
		})
	}
}

func TestOneofNames(t *testing.T) {
	md := prefixedFixture(t).Messages().ByName("Msg")
	od := md.Oneofs().ByName("kind")

	assert.Equal(t, "kind", objc.OneofName(od))
	assert.Equal(t, "Kind", objc.OneofNameCapitalized(od))

	namer := objc.NewNamer(prefix.NewResolver(prefix.ResolverOptions{}))
	assert.Equal(t, "ABCMsg_Kind_OneOfCase", namer.OneofEnumName(od))
}

func TestExtensionMethodName(t *testing.T) {
	fd := legacyFixture(t)

	// "descriptor" is a GPBMessage method, so the extension moves aside.
	ext := fd.Extensions().ByName("descriptor")
	assert.Equal(t, "descriptor_Extension", objc.ExtensionMethodName(ext))

	ext = fd.Extensions().ByName("fancy_name")
	assert.Equal(t, "fancyName", objc.ExtensionMethodName(ext))
}

func TestNamerClassName(t *testing.T) {
	namer := objc.NewNamer(prefix.NewResolver(prefix.ResolverOptions{}))

	plain := plainFixture(t)
	assert.Equal(t, "Plain", namer.ClassName(plain.Messages().ByName("Plain")))

	// The runtime defines a Category typedef, so the class gets suffixed.
	name, suffix := namer.ClassNameAndSuffix(plain.Messages().ByName("Category"))
	assert.Equal(t, "Category_Class", name)
	assert.Equal(t, "_Class", suffix)

	prefixed := prefixedFixture(t)
	msg := prefixed.Messages().ByName("Msg")
	assert.Equal(t, "ABCMsg", namer.ClassName(msg))
	assert.Equal(t, "ABCMsg_Inner", namer.ClassName(msg.Messages().ByName("Inner")))
}

func TestNamerEnumNames(t *testing.T) {
	namer := objc.NewNamer(prefix.NewResolver(prefix.ResolverOptions{}))
	plain := plainFixture(t)

	// MacTypes claims Fixed; the suffix then flows into every value name so
	// switches over the enum type stay exhaustive.
	fixed := plain.Enums().ByName("Fixed")
	assert.Equal(t, "Fixed_Enum", namer.EnumName(fixed))
	assert.Equal(t, "Fixed_Enum_Foo", namer.EnumValueName(fixed.Values().ByName("FOO")))
	assert.Equal(t, "Foo", namer.EnumValueShortName(fixed.Values().ByName("FOO")))

	// "retain" would be renamed on its own; stripping the enum name off the
	// full constant is what keeps the short name intact.
	modes := plain.Enums().ByName("StorageModes")
	assert.Equal(t, "StorageModes", namer.EnumName(modes))
	assert.Equal(t, "StorageModes_Retain", namer.EnumValueName(modes.Values().ByName("retain")))
	assert.Equal(t, "Retain", namer.EnumValueShortName(modes.Values().ByName("retain")))

	nested := prefixedFixture(t).Messages().ByName("Msg").Enums().ByName("Mode")
	assert.Equal(t, "ABCMsg_Mode", namer.EnumName(nested))
	assert.Equal(t, "ABCMsg_Mode_ModeA", namer.EnumValueName(nested.Values().ByName("MODE_A")))
	assert.Equal(t, "ModeA", namer.EnumValueShortName(nested.Values().ByName("MODE_A")))
}

func TestNamerFileClassName(t *testing.T) {
	namer := objc.NewNamer(prefix.NewResolver(prefix.ResolverOptions{}))
	assert.Equal(t, "ABCMyFileRoot", namer.FileClassName(prefixedFixture(t)))
	assert.Equal(t, "PlainRoot", namer.FileClassName(plainFixture(t)))
}

func TestNamerPackageDerivedPrefix(t *testing.T) {
	namer := objc.NewNamer(prefix.NewResolver(prefix.ResolverOptions{
		UsePackageAsDefault: true,
	}))

	fdp := testhelpers.FileProto("naming/derived.proto", "foo.bar")
	fdp.MessageType = []*descriptorpb.DescriptorProto{{Name: proto.String("Baz")}}
	fd := testhelpers.BuildFile(t, fdp)

	assert.Equal(t, "Foo_Bar_Baz", namer.ClassName(fd.Messages().ByName("Baz")))
	assert.Equal(t, "Foo_Bar_DerivedRoot", namer.FileClassName(fd))
}

// fieldsFixture builds a message exercising every field naming rule.
func fieldsFixture(t *testing.T) protoreflect.MessageDescriptor {
	t.Helper()
	fdp := testhelpers.FileProto("naming/fields.proto", "naming.fields")
	fdp.MessageType = []*descriptorpb.DescriptorProto{{
		Name: proto.String("Scrap"),
		Field: []*descriptorpb.FieldDescriptorProto{
			stringField("url", 1),
			repeatedField(stringField("url_maps", 2)),
			stringField("some_array", 3),
			stringField("id", 4),
			stringField("clear", 5),
			stringField("description", 6),
			mapField("tags", 7, ".naming.fields.Scrap.TagsEntry"),
			repeatedField(int32Field("values", 8)),
			oneofField(stringField("name", 9), 0),
			oneofField(int32Field("number", 10), 0),
		},
		NestedType: []*descriptorpb.DescriptorProto{mapEntry("TagsEntry")},
		OneofDecl:  []*descriptorpb.OneofDescriptorProto{{Name: proto.String("kind")}},
	}}
	return testhelpers.BuildFile(t, fdp).Messages().ByName("Scrap")
}

// plainFixture builds an unprefixed file with reserved word hazards.
func plainFixture(t *testing.T) protoreflect.FileDescriptor {
	t.Helper()
	fdp := testhelpers.FileProto("naming/plain.proto", "naming.plain")
	fdp.MessageType = []*descriptorpb.DescriptorProto{
		{Name: proto.String("Plain")},
		{Name: proto.String("Category")},
	}
	fdp.EnumType = []*descriptorpb.EnumDescriptorProto{
		{
			Name: proto.String("Fixed"),
			Value: []*descriptorpb.EnumValueDescriptorProto{
				enumValue("FOO", 0),
			},
		},
		{
			Name: proto.String("StorageModes"),
			Value: []*descriptorpb.EnumValueDescriptorProto{
				enumValue("unknown", 0),
				enumValue("retain", 1),
			},
		},
	}
	return testhelpers.BuildFile(t, fdp)
}

// prefixedFixture builds a file declaring an explicit ABC class prefix.
func prefixedFixture(t *testing.T) protoreflect.FileDescriptor {
	t.Helper()
	fdp := testhelpers.FileProto("objc/my_file.proto", "objc.prefixed")
	fdp.Options = &descriptorpb.FileOptions{ObjcClassPrefix: proto.String("ABC")}
	fdp.MessageType = []*descriptorpb.DescriptorProto{{
		Name: proto.String("Msg"),
		Field: []*descriptorpb.FieldDescriptorProto{
			oneofField(stringField("a", 1), 0),
			oneofField(int32Field("b", 2), 0),
		},
		OneofDecl:  []*descriptorpb.OneofDescriptorProto{{Name: proto.String("kind")}},
		NestedType: []*descriptorpb.DescriptorProto{{Name: proto.String("Inner")}},
		EnumType: []*descriptorpb.EnumDescriptorProto{{
			Name: proto.String("Mode"),
			Value: []*descriptorpb.EnumValueDescriptorProto{
				enumValue("MODE_A", 0),
			},
		}},
	}}
	return testhelpers.BuildFile(t, fdp)
}

// legacyFixture builds a proto2 file with a group field and extensions.
func legacyFixture(t *testing.T) protoreflect.FileDescriptor {
	t.Helper()
	fdp := testhelpers.FileProto("naming/legacy.proto", "naming.legacy")
	fdp.Syntax = proto.String("proto2")
	fdp.MessageType = []*descriptorpb.DescriptorProto{
		{
			Name: proto.String("Legacy"),
			Field: []*descriptorpb.FieldDescriptorProto{
				groupField("mygroup", 1, ".naming.legacy.Legacy.MyGroup"),
			},
			NestedType: []*descriptorpb.DescriptorProto{{
				Name: proto.String("MyGroup"),
				Field: []*descriptorpb.FieldDescriptorProto{
					int32Field("num", 2),
				},
			}},
		},
		{
			Name: proto.String("Extendable"),
			ExtensionRange: []*descriptorpb.DescriptorProto_ExtensionRange{{
				Start: proto.Int32(100),
				End:   proto.Int32(200),
			}},
		},
	}
	fdp.Extension = []*descriptorpb.FieldDescriptorProto{
		extensionField("descriptor", 100, ".naming.legacy.Extendable"),
		extensionField("fancy_name", 101, ".naming.legacy.Extendable"),
	}
	return testhelpers.BuildFile(t, fdp)
}

func stringField(name string, number int32) *descriptorpb.FieldDescriptorProto {
	return scalarField(name, number, descriptorpb.FieldDescriptorProto_TYPE_STRING)
}

func int32Field(name string, number int32) *descriptorpb.FieldDescriptorProto {
	return scalarField(name, number, descriptorpb.FieldDescriptorProto_TYPE_INT32)
}

func scalarField(name string, number int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(number),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   typ.Enum(),
	}
}

func repeatedField(f *descriptorpb.FieldDescriptorProto) *descriptorpb.FieldDescriptorProto {
	f.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	return f
}

func oneofField(f *descriptorpb.FieldDescriptorProto, index int32) *descriptorpb.FieldDescriptorProto {
	f.OneofIndex = proto.Int32(index)
	return f
}

func mapField(name string, number int32, entry string) *descriptorpb.FieldDescriptorProto {
	f := scalarField(name, number, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE)
	f.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	f.TypeName = proto.String(entry)
	return f
}

func mapEntry(name string) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{
		Name:    proto.String(name),
		Options: &descriptorpb.MessageOptions{MapEntry: proto.Bool(true)},
		Field: []*descriptorpb.FieldDescriptorProto{
			stringField("key", 1),
			int32Field("value", 2),
		},
	}
}

func groupField(name string, number int32, typeName string) *descriptorpb.FieldDescriptorProto {
	f := scalarField(name, number, descriptorpb.FieldDescriptorProto_TYPE_GROUP)
	f.TypeName = proto.String(typeName)
	return f
}

func extensionField(name string, number int32, extendee string) *descriptorpb.FieldDescriptorProto {
	f := stringField(name, number)
	f.Extendee = proto.String(extendee)
	return f
}

func enumValue(name string, number int32) *descriptorpb.EnumValueDescriptorProto {
	return &descriptorpb.EnumValueDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(number),
	}
}
