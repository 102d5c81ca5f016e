// Package metadata exposes the packaged CLI manifest.
package metadata

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

// Manifest is the raw package.json shipped with the binary.
//
//go:embed package.json
var Manifest []byte

// Package is the subset of package.json the CLI reads.
type Package struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
	AIKey       string `json:"aiKey"`
}

// Load decodes the embedded manifest.
func Load() (Package, error) {
	return Parse(Manifest)
}

// Parse decodes a package.json document. Name and version are required.
func Parse(data []byte) (Package, error) {
	var pkg Package
	if err := json.Unmarshal(data, &pkg); err != nil {
		return Package{}, fmt.Errorf("failed to parse package manifest: %w", err)
	}
	if pkg.Name == "" || pkg.Version == "" {
		return Package{}, fmt.Errorf("package manifest missing name or version")
	}
	return pkg, nil
}

// WithVersion returns a copy with Version replaced when v is not empty.
func (p Package) WithVersion(v string) Package {
	if v != "" && v != "dev" {
		p.Version = v
	}
	return p
}
