package prefix

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/DeputyApp/protoc-gen-objc/codegen/lineparser"
)

// Validate checks the class prefix of every file against the expected
// prefixes registry and the options' policy knobs. Files are checked in
// order and the first hard error stops the pass; warnings written to the
// diagnostics stream before that stay written.
//
// An ExpectedPrefixesPath of "-" disables the whole pass. A registry that
// fails to load is a hard error: silently validating against nothing would
// defeat the point of registering prefixes.
func Validate(files []protoreflect.FileDescriptor, opts ValidatorOptions) error {
	if opts.ExpectedPrefixesPath == "-" {
		return nil
	}

	diag := opts.Diag
	if diag == nil {
		diag = os.Stderr
	}

	expected := map[string]string{}
	if opts.ExpectedPrefixesPath != "" {
		var err error
		expected, err = lineparser.ParseKeyValueFile(opts.ExpectedPrefixesPath, expectedPrefixesUsage)
		if err != nil {
			return err
		}
	}

	suppressed := make(map[string]bool, len(opts.Suppressions))
	for _, path := range opts.Suppressions {
		suppressed[path] = true
	}

	for _, fd := range files {
		if suppressed[fd.Path()] {
			continue
		}
		if err := validateFile(fd, expected, opts, diag); err != nil {
			return err
		}
	}
	return nil
}

func validateFile(fd protoreflect.FileDescriptor, expected map[string]string, opts ValidatorOptions, diag io.Writer) error {
	// An explicit prefix of "" is a valid declaration: with package derived
	// prefixing on, it is how a file requests no prefix at all.
	prefix, hasPrefix := explicitPrefix(fd)
	haveRegistry := opts.ExpectedPrefixesPath != ""
	key := LookupKey(fd)

	// A registry entry for the file's key is authoritative in both
	// directions: the file must declare exactly that prefix.
	if want, ok := expected[key]; ok {
		if hasPrefix && want == prefix {
			return nil
		}
		return &MismatchError{
			File:      fd.Path(),
			Package:   string(fd.Package()),
			Expected:  want,
			Found:     prefix,
			HasPrefix: hasPrefix,
		}
	}

	if !hasPrefix {
		if opts.RequirePrefixes {
			return &MissingPrefixError{File: fd.Path()}
		}
		return nil
	}

	if prefix != "" && haveRegistry {
		// Overlap with another entry's prefix must itself be registered.
		// Scan keys in sorted order: a no_package file entry only counts
		// until a real package claims the prefix, so keep looking for one.
		var otherKey string
		keys := make([]string, 0, len(expected))
		for k := range expected {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if expected[k] != prefix {
				continue
			}
			otherKey = k
			if !strings.HasPrefix(otherKey, noPackagePrefix) {
				break
			}
		}
		if otherKey != "" {
			return &CollisionError{
				File:         fd.Path(),
				Prefix:       prefix,
				OtherKey:     otherKey,
				LookupKey:    key,
				RegistryPath: opts.ExpectedPrefixesPath,
			}
		}
	}

	// Style advisories per Apple's prefix conventions. The registry checks
	// above implicitly accept whatever was registered, these only fire for
	// unregistered non-empty prefixes.
	if prefix != "" && !(prefix[0] >= 'A' && prefix[0] <= 'Z') {
		fmt.Fprintf(diag,
			"protoc:0: warning: Invalid 'option objc_class_prefix = \"%s\";' in '%s'; it should start with a capital letter.\n",
			prefix, fd.Path())
	}
	if prefix != "" && len(prefix) < 3 {
		// Apple reserves two character prefixes for itself.
		fmt.Fprintf(diag,
			"protoc:0: warning: Invalid 'option objc_class_prefix = \"%s\";' in '%s'; Apple recommends they should be at least 3 characters long.\n",
			prefix, fd.Path())
	}

	if haveRegistry {
		if opts.PrefixesMustBeRegistered {
			return &UnregisteredError{
				File:         fd.Path(),
				Prefix:       prefix,
				LookupKey:    key,
				RegistryPath: opts.ExpectedPrefixesPath,
			}
		}
		fmt.Fprintf(diag,
			"protoc:0: warning: Found unexpected 'option objc_class_prefix = \"%s\";' in '%s'; consider adding '%s = %s' to the expected prefixes file (%s).\n",
			prefix, fd.Path(), key, renderedPrefix(prefix), opts.ExpectedPrefixesPath)
	}
	return nil
}
