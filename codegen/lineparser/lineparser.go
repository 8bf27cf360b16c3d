// Package lineparser reads the line-oriented text files that configure
// prefix handling: the expected prefixes registry, the package to prefix
// mappings and the package exemption list all share one format.
//
// A '#' starts a comment anywhere on a line. Lines are trimmed of
// surrounding whitespace and blank results are skipped. What remains is
// either a bare entry or a "key = value" pair depending on the file's role.
package lineparser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ConsumeLine receives every surviving line of a parsed file in order, after
// comment stripping and trimming. Returning an error aborts the parse.
type ConsumeLine func(line string) error

// ParseFile reads the file at path and feeds each non-blank line to consume.
// Open failures and consumer errors are returned with the path (and line
// number) they occurred at.
func ParseFile(path string, consume ConsumeLine) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error: Unable to open %q, %s", path, reason(err))
	}
	for i, raw := range strings.Split(string(data), "\n") {
		line := raw
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := consume(line); err != nil {
			return fmt.Errorf("error: %s Line %d, %v", path, i+1, err)
		}
	}
	return nil
}

// ParseKeyValueFile parses path into a map of "key = value" entries. Keys
// and values are trimmed and one layer of matching single or double quotes
// is stripped from the value; later entries overwrite earlier ones. usage
// names the file's role in parse errors. A line without '=' fails the whole
// parse.
func ParseKeyValueFile(path, usage string) (map[string]string, error) {
	entries := make(map[string]string)
	err := ParseFile(path, func(line string) error {
		idx := strings.IndexByte(line, '=')
		if idx < 0 {
			return fmt.Errorf("%s file line without equal sign: '%s'.", usage, line)
		}
		key := strings.TrimSpace(line[:idx])
		value := maybeUnquote(strings.TrimSpace(line[idx+1:]))
		entries[key] = value
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ParseSetFile parses path into a set of bare line entries.
func ParseSetFile(path string) (map[string]struct{}, error) {
	set := make(map[string]struct{})
	err := ParseFile(path, func(line string) error {
		set[line] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// maybeUnquote strips one symmetric layer of single or double quotes.
func maybeUnquote(value string) string {
	if len(value) >= 2 &&
		(value[0] == '\'' || value[0] == '"') &&
		value[len(value)-1] == value[0] {
		return value[1 : len(value)-1]
	}
	return value
}

// reason extracts the OS-level cause of a file error so messages do not
// repeat the path the caller already reports.
func reason(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}
