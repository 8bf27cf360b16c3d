package prefix

import (
	"fmt"
	"io"

	"github.com/DeputyApp/protoc-gen-objc/codegen/lineparser"
)

// sentinelEntry marks a config file as loaded even when it produced no
// entries, so emptiness is distinguishable from not-yet-loaded and failed or
// empty files are not re-read on every lookup. No real proto package can
// spell it.
const sentinelEntry = "<not a real package>"

// configMap is a lazily loaded "key = value" config file. The first lookup
// loads the file; a load failure is reported once to diag and degrades to an
// empty map.
type configMap struct {
	path    string
	usage   string
	entries map[string]string
}

func (m *configMap) lookup(key string, diag io.Writer) (string, bool) {
	if len(m.entries) == 0 && m.path != "" {
		entries, err := lineparser.ParseKeyValueFile(m.path, m.usage)
		if err != nil {
			fmt.Fprintln(diag, err)
		}
		m.entries = entries
		if len(m.entries) == 0 {
			m.entries = map[string]string{sentinelEntry: ""}
		}
	}
	value, ok := m.entries[key]
	return value, ok
}

// configSet is a lazily loaded file of bare entries with the same load and
// degradation behavior as configMap.
type configSet struct {
	path    string
	entries map[string]struct{}
}

func (s *configSet) contains(key string, diag io.Writer) bool {
	if len(s.entries) == 0 && s.path != "" {
		entries, err := lineparser.ParseSetFile(s.path)
		if err != nil {
			fmt.Fprintln(diag, err)
		}
		s.entries = entries
		if len(s.entries) == 0 {
			s.entries = map[string]struct{}{sentinelEntry: {}}
		}
	}
	_, ok := s.entries[key]
	return ok
}
