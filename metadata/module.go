// Package metadata defines the module-metadata record later compilation
// stages attach to a lexed unit: the source file's name, path, JavaScript
// package path, and whether it uses Ren's FFI escape hatch. This lexer
// does not produce a Module; it lives here with its JSON codec because
// downstream stages marshal it alongside this package's token output.
package metadata

import (
	"encoding/json"
	"fmt"
)

// Module is an external record consumed by later compilation stages.
type Module struct {
	Name    string
	Path    string
	PkgPath string
	UsesFFI bool
}

// jsonModule mirrors Module's four canonical JSON keys. It is decoded into
// first so UnmarshalJSON can tell a present-but-zero-valued field apart
// from a missing one.
type jsonModule struct {
	Name    *string `json:"name"`
	Path    *string `json:"path"`
	PkgPath *string `json:"pkgPath"`
	UsesFFI *bool   `json:"usesFFI"`
}

// MarshalJSON encodes m as the canonical {name, path, pkgPath, usesFFI}
// object. Encoding a Module never fails.
func (m Module) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name    string `json:"name"`
		Path    string `json:"path"`
		PkgPath string `json:"pkgPath"`
		UsesFFI bool   `json:"usesFFI"`
	}{m.Name, m.Path, m.PkgPath, m.UsesFFI})
}

// UnmarshalJSON decodes the canonical object into m, rejecting any object
// missing one of the four keys. Fields present with their zero value
// (e.g. "usesFFI": false) are accepted; fields absent entirely are not.
func (m *Module) UnmarshalJSON(data []byte) error {
	var jm jsonModule
	if err := json.Unmarshal(data, &jm); err != nil {
		return fmt.Errorf("metadata: decode module: %w", err)
	}
	missing := make([]string, 0, 4)
	if jm.Name == nil {
		missing = append(missing, "name")
	}
	if jm.Path == nil {
		missing = append(missing, "path")
	}
	if jm.PkgPath == nil {
		missing = append(missing, "pkgPath")
	}
	if jm.UsesFFI == nil {
		missing = append(missing, "usesFFI")
	}
	if len(missing) > 0 {
		return fmt.Errorf("metadata: module object missing field(s): %v", missing)
	}
	m.Name = *jm.Name
	m.Path = *jm.Path
	m.PkgPath = *jm.PkgPath
	m.UsesFFI = *jm.UsesFFI
	return nil
}
