// Package objcgen is the protoc plugin entry point tying the naming
// subsystem together: it parses generator parameters, validates class
// prefixes across the files being generated, and optionally dumps the
// Objective-C name of every schema element to a manifest per file.
package objcgen

import (
	"flag"
	"fmt"
	"strings"

	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/pluginpb"

	"github.com/DeputyApp/protoc-gen-objc/codegen/objc"
	"github.com/DeputyApp/protoc-gen-objc/codegen/prefix"
)

// Generator holds the effective configuration of one plugin run. The
// environment seeds it through New, generator parameters bound by BindFlags
// then override individual settings.
type Generator struct {
	// Resolver configures class prefix resolution.
	Resolver prefix.ResolverOptions
	// Validator configures the prefix validation pass.
	Validator prefix.ValidatorOptions
	// DumpNames makes generation emit a name manifest next to where the
	// generated sources for each file would go.
	DumpNames bool
}

// New returns a Generator bootstrapped from the GPB_OBJC_* environment
// variables. Build systems that cannot thread generator parameters through
// to protoc set these instead.
func New() (*Generator, error) {
	resolver, err := prefix.ResolverOptionsFromEnv()
	if err != nil {
		return nil, err
	}
	validator, err := prefix.ValidatorOptionsFromEnv()
	if err != nil {
		return nil, err
	}
	return &Generator{Resolver: resolver, Validator: validator}, nil
}

// BindFlags registers the generator parameters on fs. Parameter names and
// value conventions are shared with the other protobuf generators: booleans
// only accept yes or no, and expected_prefixes_suppressions accumulates
// across repeats.
func (g *Generator) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&g.Validator.ExpectedPrefixesPath, "expected_prefixes_path",
		g.Validator.ExpectedPrefixesPath,
		`path to the expected prefixes file, "-" to disable prefix validation`)
	fs.Var(suppressionsFlag{&g.Validator.Suppressions}, "expected_prefixes_suppressions",
		"semicolon delimited proto file paths to skip during prefix validation")
	fs.Var(yesNoFlag{&g.Validator.PrefixesMustBeRegistered, "prefixes_must_be_registered"},
		"prefixes_must_be_registered",
		"error on prefixes missing from the expected prefixes file")
	fs.Var(yesNoFlag{&g.Validator.RequirePrefixes, "require_prefixes"},
		"require_prefixes",
		"error on files without an objc_class_prefix option")
	fs.Var(yesNoFlag{&g.Resolver.UsePackageAsDefault, "use_package_as_prefix"},
		"use_package_as_prefix",
		"derive class prefixes from proto packages for files without one")
	fs.StringVar(&g.Resolver.ExceptionPath, "proto_package_prefix_exceptions_path",
		g.Resolver.ExceptionPath,
		"path to a file listing packages exempt from package derived prefixes")
	fs.StringVar(&g.Resolver.ForcedPrefix, "package_as_prefix_forced_prefix",
		g.Resolver.ForcedPrefix,
		"prefix prepended to every package derived prefix")
	fs.StringVar(&g.Resolver.MappingsPath, "package_to_prefix_mappings_path",
		g.Resolver.MappingsPath,
		"path to a package to prefix mappings file")
	fs.Var(yesNoFlag{&g.DumpNames, "dump_names"},
		"dump_names",
		"write a manifest of the Objective-C names per generated file")
}

// Generate is the protogen entry point. It validates the class prefixes of
// the files protoc asked to generate (their dependencies are resolvable but
// not this run's responsibility) and, when dump_names is on, writes one
// name manifest per file.
func (g *Generator) Generate(gen *protogen.Plugin) error {
	gen.SupportedFeatures = uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL |
		pluginpb.CodeGeneratorResponse_FEATURE_SUPPORTS_EDITIONS)
	gen.SupportedEditionsMinimum = descriptorpb.Edition_EDITION_PROTO2
	gen.SupportedEditionsMaximum = descriptorpb.Edition_EDITION_2023

	var targets []protoreflect.FileDescriptor
	for _, f := range gen.Files {
		if f.Generate {
			targets = append(targets, f.Desc)
		}
	}
	if err := prefix.Validate(targets, g.Validator); err != nil {
		return err
	}

	if !g.DumpNames {
		return nil
	}
	namer := objc.NewNamer(prefix.NewResolver(g.Resolver))
	for _, f := range gen.Files {
		// The runtime library already ships sources for its bundled files.
		if !f.Generate || objc.IsBundledProtoFile(f.Desc) {
			continue
		}
		writeNameManifest(gen, namer, f.Desc)
	}
	return nil
}

func writeNameManifest(gen *protogen.Plugin, namer *objc.Namer, fd protoreflect.FileDescriptor) {
	out := gen.NewGeneratedFile(objc.FilePath(fd)+".objcnames.txt", "")
	out.P("# Objective-C names for ", fd.Path())
	out.P("file_class: ", namer.FileClassName(fd))
	writeMessageNames(out, namer, fd.Messages())
	writeEnumNames(out, namer, fd.Enums())
	for i, xds := 0, fd.Extensions(); i < xds.Len(); i++ {
		out.P("extension: ", objc.ExtensionMethodName(xds.Get(i)))
	}
}

func writeMessageNames(out *protogen.GeneratedFile, namer *objc.Namer, mds protoreflect.MessageDescriptors) {
	for i := 0; i < mds.Len(); i++ {
		md := mds.Get(i)
		// Map entries are synthetic and never become classes.
		if md.IsMapEntry() {
			continue
		}
		out.P("class: ", namer.ClassName(md))
		for j, fields := 0, md.Fields(); j < fields.Len(); j++ {
			out.P("  field: ", objc.FieldName(fields.Get(j)))
		}
		for j, oneofs := 0, md.Oneofs(); j < oneofs.Len(); j++ {
			od := oneofs.Get(j)
			if od.IsSynthetic() {
				continue
			}
			out.P("  oneof: ", objc.OneofName(od), " case_enum: ", namer.OneofEnumName(od))
		}
		for j, xds := 0, md.Extensions(); j < xds.Len(); j++ {
			out.P("  extension: ", objc.ExtensionMethodName(xds.Get(j)))
		}
		writeEnumNames(out, namer, md.Enums())
		writeMessageNames(out, namer, md.Messages())
	}
}

func writeEnumNames(out *protogen.GeneratedFile, namer *objc.Namer, eds protoreflect.EnumDescriptors) {
	for i := 0; i < eds.Len(); i++ {
		ed := eds.Get(i)
		out.P("enum: ", namer.EnumName(ed))
		for j, values := 0, ed.Values(); j < values.Len(); j++ {
			out.P("  value: ", namer.EnumValueName(values.Get(j)))
		}
	}
}

// yesNoFlag adapts a bool to the yes/no only convention of the generator's
// boolean parameters.
type yesNoFlag struct {
	target *bool
	name   string
}

func (f yesNoFlag) String() string {
	if f.target != nil && *f.target {
		return "yes"
	}
	return "no"
}

func (f yesNoFlag) Set(value string) error {
	switch strings.ToUpper(value) {
	case "YES":
		*f.target = true
	case "NO":
		*f.target = false
	default:
		return fmt.Errorf("unknown value for %s: %q, want yes or no", f.name, value)
	}
	return nil
}

// suppressionsFlag splits each occurrence on semicolons and accumulates the
// parts, so repeated parameters extend rather than replace the list.
type suppressionsFlag struct {
	target *[]string
}

func (f suppressionsFlag) String() string {
	if f.target == nil {
		return ""
	}
	return strings.Join(*f.target, ";")
}

func (f suppressionsFlag) Set(value string) error {
	for _, part := range strings.Split(value, ";") {
		if part != "" {
			*f.target = append(*f.target, part)
		}
	}
	return nil
}
