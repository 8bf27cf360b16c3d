package objc

import (
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/DeputyApp/protoc-gen-objc/codegen/names"
	"github.com/DeputyApp/protoc-gen-objc/codegen/prefix"
)

// Namer names the descriptor elements whose identifiers carry a class
// prefix. It is as safe for concurrent use as the Resolver it wraps.
type Namer struct {
	prefixes *prefix.Resolver
}

// NewNamer returns a Namer resolving class prefixes through r.
func NewNamer(r *prefix.Resolver) *Namer {
	return &Namer{prefixes: r}
}

// ClassName returns the Objective-C class generated for a message.
func (n *Namer) ClassName(md protoreflect.MessageDescriptor) string {
	name, _ := n.ClassNameAndSuffix(md)
	return name
}

// ClassNameAndSuffix returns the class name together with any suffix
// sanitization appended, so callers emitting forward declarations can tell
// the original message name apart from the rename.
func (n *Namer) ClassNameAndSuffix(md protoreflect.MessageDescriptor) (string, string) {
	// Message names are used as is; proto style already calls for
	// CamelCase. Only the fully qualified result gets reserved checks.
	classPrefix := n.prefixes.ClassPrefix(md.ParentFile())
	return names.Sanitize(classPrefix, nestedTypeName(md), "_Class")
}

// EnumName returns the Objective-C enum type generated for an enum. An enum
// nested in messages takes their names as leading segments, so
//
//	message Fixed {
//	  enum Mumble {...}
//	}
//
// yields Fixed_Class for the message and Fixed_Mumble for the enum.
func (n *Namer) EnumName(ed protoreflect.EnumDescriptor) string {
	classPrefix := n.prefixes.ClassPrefix(ed.ParentFile())
	name, _ := names.Sanitize(classPrefix, nestedTypeName(ed), "_Enum")
	return name
}

// EnumValueName returns the constant generated for an enum value. The enum
// name keeps its sanitization suffix here, which is what allows switch
// statements over the enum type to stay exhaustive:
//
//	enum Fixed { FOO = 1; }
//
// yields Fixed_Enum and Fixed_Enum_Foo, not Fixed_Foo.
func (n *Namer) EnumValueName(vd protoreflect.EnumValueDescriptor) string {
	ed := vd.Parent().(protoreflect.EnumDescriptor)
	value := names.ToCamelCase(string(vd.Name()), true)
	name, _ := names.Sanitize("", n.EnumName(ed)+"_"+value, "_Value")
	return name
}

// EnumValueShortName returns the leaf part of an enum value's constant. It
// is derived by stripping the enum name off the full constant rather than
// sanitizing the bare value: enum StorageModes value "retain" must yield
// "Retain", even though "retain" alone would have been renamed.
func (n *Namer) EnumValueShortName(vd protoreflect.EnumValueDescriptor) string {
	ed := vd.Parent().(protoreflect.EnumDescriptor)
	return strings.TrimPrefix(n.EnumValueName(vd), n.EnumName(ed)+"_")
}

// OneofEnumName returns the case enum generated for a oneof. Nothing in the
// SDKs ends in _OneOfCase, so the result needs no reserved checks.
func (n *Namer) OneofEnumName(od protoreflect.OneofDescriptor) string {
	md := od.Parent().(protoreflect.MessageDescriptor)
	return n.ClassName(md) + "_" + names.ToCamelCase(string(od.Name()), true) + "_OneOfCase"
}

// FileClassName returns the name of the file's root class, the one holding
// the file's extension registry.
func (n *Namer) FileClassName(fd protoreflect.FileDescriptor) string {
	classPrefix := n.prefixes.ClassPrefix(fd)
	name := names.ToCamelCase(stripProto(BaseFileName(fd)), true) + "Root"
	result, _ := names.Sanitize(classPrefix, name, "_RootClass")
	return result
}

// nestedTypeName joins a message or enum name to the names of the messages
// it nests in, outermost first.
func nestedTypeName(d protoreflect.Descriptor) string {
	if md, ok := d.Parent().(protoreflect.MessageDescriptor); ok {
		return nestedTypeName(md) + "_" + string(d.Name())
	}
	return string(d.Name())
}

// FieldName returns the accessor name generated for a field. Repeated
// fields (maps excluded) get an Array suffix before reserved checks, and a
// scalar field that happens to end in Array is pushed out of the way so the
// two can never collide.
func FieldName(fd protoreflect.FieldDescriptor) string {
	name := names.ToCamelCase(fieldBaseName(fd), false)
	if fd.IsList() {
		name += "Array"
	} else if strings.HasSuffix(name, "Array") {
		name += "_p"
	}
	result, _ := names.Sanitize("", name, "_p")
	return result
}

// FieldNameCapitalized returns the field name as it appears inside other
// identifiers, has/set accessors mostly. Upcasing FieldName keeps the two
// spellings' suffix handling identical.
func FieldNameCapitalized(fd protoreflect.FieldDescriptor) string {
	return capitalized(FieldName(fd))
}

// OneofName returns the accessor name generated for a oneof. Oneof names
// only ever appear with OneOfCase attached, so no reserved checks apply.
func OneofName(od protoreflect.OneofDescriptor) string {
	return names.ToCamelCase(string(od.Name()), false)
}

// OneofNameCapitalized returns the oneof name as used inside other
// identifiers.
func OneofNameCapitalized(od protoreflect.OneofDescriptor) string {
	return capitalized(OneofName(od))
}

// ExtensionMethodName returns the accessor generated for an extension
// field on its scoping class.
func ExtensionMethodName(fd protoreflect.FieldDescriptor) string {
	name := names.ToCamelCase(fieldBaseName(fd), false)
	result, _ := names.Sanitize("", name, "_Extension")
	return result
}

// UnCamelCaseFieldName undoes FieldName for error text that wants to talk
// about the field as the .proto file spells it. Groups report their message
// name, every other field its lowercase underscored name.
func UnCamelCaseFieldName(name string, fd protoreflect.FieldDescriptor) string {
	worker := strings.TrimSuffix(name, "_p")
	if fd.Cardinality() == protoreflect.Repeated {
		worker = strings.TrimSuffix(worker, "Array")
	}
	if fd.Kind() == protoreflect.GroupKind {
		return capitalized(worker)
	}
	var result []byte
	for i := 0; i < len(worker); i++ {
		c := worker[i]
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				result = append(result, '_')
			}
			result = append(result, c-'A'+'a')
		} else {
			result = append(result, c)
		}
	}
	return string(result)
}

// fieldBaseName returns the proto name identifiers derive from: the
// message name for groups, the field name otherwise.
func fieldBaseName(fd protoreflect.FieldDescriptor) string {
	if fd.Kind() == protoreflect.GroupKind {
		return string(fd.Message().Name())
	}
	return string(fd.Name())
}

func capitalized(name string) string {
	if name == "" || name[0] < 'a' || name[0] > 'z' {
		return name
	}
	return string(name[0]-'a'+'A') + name[1:]
}
