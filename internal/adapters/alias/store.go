// Package alias persists the crate alias table.
package alias

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/runner/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.AliasStore on a line-oriented alias=target file.
type Store struct {
	path string
}

// NewStore returns a store for the alias file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the table. Later lines override earlier ones for the same alias.
func (s *Store) Load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrAliasReadFailed.Error()), "path", s.path)
	}

	table := make(map[string]string)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		name, target, err := parse(line)
		if err != nil {
			err = zerr.With(err, "path", s.path)
			return nil, zerr.With(err, "line", n)
		}
		table[name] = target
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrAliasReadFailed.Error()), "path", s.path)
	}

	return table, nil
}

// Append validates entries and adds them to the end of the file.
// Nothing is written when any entry is malformed.
func (s *Store) Append(entries []string) error {
	if len(entries) == 0 {
		return nil
	}

	var buf bytes.Buffer
	for _, entry := range entries {
		name, target, err := parse(strings.TrimSpace(entry))
		if err != nil {
			return err
		}
		buf.WriteString(name + "=" + target + "\n")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrAliasWriteFailed.Error()), "path", s.path)
	}

	//nolint:gosec // Path is below the runner root
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrAliasWriteFailed.Error()), "path", s.path)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrAliasWriteFailed.Error()), "path", s.path)
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrAliasWriteFailed.Error()), "path", s.path)
	}
	return nil
}

func parse(entry string) (name, target string, err error) {
	name, target, ok := strings.Cut(entry, "=")
	name, target = strings.TrimSpace(name), strings.TrimSpace(target)
	if !ok || name == "" || target == "" {
		return "", "", zerr.With(zerr.Wrap(domain.ErrMalformedAlias, "invalid alias entry"), "entry", entry)
	}
	return name, target, nil
}
