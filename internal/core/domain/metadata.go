package domain

import (
	"encoding/json"
	"fmt"

	"go.trai.ch/zerr"
)

// MetadataCache maps crate names to their recorded artifacts.
// Records keep the order in which the build tool first reported them.
type MetadataCache struct {
	records []*DependencyRecord
	index   map[string]int
}

// NewMetadataCache returns an empty cache.
func NewMetadataCache() *MetadataCache {
	return &MetadataCache{index: make(map[string]int)}
}

// Record upserts the artifact for a profile.
// The artifact filename for that profile is replaced; the other profile is kept.
func (m *MetadataCache) Record(p Profile, a Artifact) {
	name := CrateName(a.Name)
	rec, ok := m.lookup(name)
	if !ok {
		rec = &DependencyRecord{Name: name}
		m.index[name] = len(m.records)
		m.records = append(m.records, rec)
	}

	if a.Version != "" {
		rec.Version = a.Version
	}
	if a.SourcePath != "" {
		rec.SourcePath = a.SourcePath
	}
	if a.Features != nil {
		rec.Features = append([]string(nil), a.Features...)
	}

	if p == Release {
		rec.ReleaseArtifact = a.Filename
	} else {
		rec.DebugArtifact = a.Filename
	}
}

// Lookup returns a copy of the record for a crate.
func (m *MetadataCache) Lookup(name string) (DependencyRecord, bool) {
	rec, ok := m.lookup(CrateName(name))
	if !ok {
		return DependencyRecord{}, false
	}
	return *rec, true
}

// Has reports whether a crate is recorded.
func (m *MetadataCache) Has(name string) bool {
	_, ok := m.lookup(CrateName(name))
	return ok
}

// ResolveArtifact returns the artifact filename of a crate for a profile.
func (m *MetadataCache) ResolveArtifact(name string, p Profile) (string, error) {
	rec, ok := m.lookup(CrateName(name))
	if !ok || rec.Artifact(p) == "" {
		err := zerr.Wrap(ErrUnresolvedDependency, fmt.Sprintf("unresolved crate %q", name))
		return "", zerr.With(err, "profile", p.String())
	}
	return rec.Artifact(p), nil
}

// Records returns copies of all records in insertion order.
func (m *MetadataCache) Records() []DependencyRecord {
	if m == nil {
		return nil
	}
	out := make([]DependencyRecord, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, *rec)
	}
	return out
}

// Len returns the number of recorded crates.
func (m *MetadataCache) Len() int {
	if m == nil {
		return 0
	}
	return len(m.records)
}

func (m *MetadataCache) lookup(name string) (*DependencyRecord, bool) {
	if m == nil || m.index == nil {
		return nil, false
	}
	i, ok := m.index[name]
	if !ok {
		return nil, false
	}
	return m.records[i], true
}

type metadataFile struct {
	Records []*DependencyRecord `json:"records"`
}

// MarshalJSON encodes the cache as an ordered list of records.
func (m *MetadataCache) MarshalJSON() ([]byte, error) {
	recs := m.records
	if recs == nil {
		recs = []*DependencyRecord{}
	}
	return json.Marshal(metadataFile{Records: recs})
}

// UnmarshalJSON decodes a cache written by MarshalJSON.
func (m *MetadataCache) UnmarshalJSON(data []byte) error {
	var f metadataFile
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	m.records = nil
	m.index = make(map[string]int, len(f.Records))
	for _, rec := range f.Records {
		if rec == nil {
			continue
		}
		rec.Name = CrateName(rec.Name)
		if i, dup := m.index[rec.Name]; dup {
			m.records[i] = rec
			continue
		}
		m.index[rec.Name] = len(m.records)
		m.records = append(m.records, rec)
	}
	return nil
}
