// Package metadata records the artifacts reported by cargo into a metadata cache.
package metadata

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/runner/internal/core/domain"
)

const (
	reasonArtifact = "compiler-artifact"
	reasonMessage  = "compiler-message"
)

// message is one line of `cargo build --message-format json`.
type message struct {
	Reason       string   `json:"reason"`
	PackageID    string   `json:"package_id"`
	ManifestPath string   `json:"manifest_path"`
	Target       target   `json:"target"`
	Features     []string `json:"features"`
	Filenames    []string `json:"filenames"`
	Message      *struct {
		Rendered string `json:"rendered"`
	} `json:"message"`
}

type target struct {
	Kind    []string `json:"kind"`
	Name    string   `json:"name"`
	SrcPath string   `json:"src_path"`
}

var libraryKinds = []string{"lib", "rlib", "dylib", "proc-macro"}

// isLibrary reports whether the target can be named by an extern declaration.
func (t target) isLibrary() bool {
	for _, k := range t.Kind {
		if slices.Contains(libraryKinds, k) {
			return true
		}
	}
	return false
}

// artifact converts a compiler-artifact message. ok is false for anything that is not a linkable library.
func (m *message) artifact() (domain.Artifact, bool) {
	if !m.Target.isLibrary() {
		return domain.Artifact{}, false
	}
	file := pickFilename(m.Filenames)
	if file == "" {
		return domain.Artifact{}, false
	}

	return domain.Artifact{
		Name:       m.Target.Name,
		Version:    parseVersion(m.PackageID),
		SourcePath: m.sourceDir(),
		Features:   m.Features,
		Filename:   filepath.Base(file),
	}, true
}

func (m *message) sourceDir() string {
	if m.ManifestPath != "" {
		return filepath.Dir(m.ManifestPath)
	}
	if m.Target.SrcPath != "" {
		return filepath.Dir(filepath.Dir(m.Target.SrcPath))
	}
	return ""
}

// pickFilename prefers the rlib and never returns the metadata-only rmeta.
func pickFilename(files []string) string {
	var fallback string
	for _, f := range files {
		switch {
		case strings.HasSuffix(f, ".rlib"):
			return f
		case strings.HasSuffix(f, ".rmeta"):
			continue
		case fallback == "":
			fallback = f
		}
	}
	return fallback
}

// parseVersion extracts the version from both package id formats:
// "name 1.2.3 (source)" and "source#name@1.2.3" or "source#1.2.3".
func parseVersion(id string) string {
	if _, frag, ok := strings.Cut(id, "#"); ok {
		if _, v, ok := strings.Cut(frag, "@"); ok {
			return v
		}
		return frag
	}
	fields := strings.Fields(id)
	if len(fields) >= 2 {
		return fields[1]
	}
	return ""
}
