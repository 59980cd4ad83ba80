package domain

import (
	"strconv"
	"strings"
)

// Profile is a build profile of the static cache.
type Profile int

const (
	// Debug is the unoptimised profile.
	Debug Profile = iota
	// Release is the optimised profile.
	Release
)

// Profiles lists every profile in build order.
var Profiles = []Profile{Debug, Release}

// String returns the cargo directory name of the profile.
func (p Profile) String() string {
	if p == Release {
		return "release"
	}
	return "debug"
}

// DependencyRecord is the metadata recorded for one crate of the static cache.
type DependencyRecord struct {
	Name            string   `json:"name"`
	Version         string   `json:"version,omitzero"`
	SourcePath      string   `json:"source_path,omitzero"`
	Features        []string `json:"features,omitempty"`
	DebugArtifact   string   `json:"debug_artifact,omitzero"`
	ReleaseArtifact string   `json:"release_artifact,omitzero"`
}

// Artifact returns the artifact filename recorded for a profile.
func (r *DependencyRecord) Artifact(p Profile) string {
	if p == Release {
		return r.ReleaseArtifact
	}
	return r.DebugArtifact
}

// Artifact is a compiled library reported by the build tool.
type Artifact struct {
	Name       string
	Version    string
	SourcePath string
	Features   []string
	Filename   string
}

// CrateName normalises a crate name to the form used by extern declarations.
func CrateName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// CrateSpec is a dependency requested for the static cache.
type CrateSpec struct {
	Name    string
	Version string
	Path    string
}

// ManifestLine renders the dependency line appended to the static cache manifest.
func (c CrateSpec) ManifestLine() string {
	switch {
	case c.Path != "":
		return c.Name + "={path=" + strconv.Quote(c.Path) + "}"
	case c.Version != "":
		return c.Name + "=" + strconv.Quote(c.Version)
	default:
		return c.Name + `="*"`
	}
}

// KitchenSinkName is the pseudo crate that expands to the configured kitchen sink.
const KitchenSinkName = "kitchen-sink"

// DefaultKitchenSink is the set of crates added by `cache add kitchen-sink`.
var DefaultKitchenSink = []string{"chrono", "regex", "serde_json", "serde_yaml"}
