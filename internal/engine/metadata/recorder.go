package metadata

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"go.trai.ch/runner/internal/core/domain"
)

// Recorder is a line-buffered writer that decodes cargo messages as they arrive.
// Artifacts are recorded into the cache, diagnostics and undecodable lines go to the passthrough.
type Recorder struct {
	cache       *domain.MetadataCache
	profile     domain.Profile
	passthrough io.Writer
	buf         []byte
}

// NewRecorder returns a recorder filling cache for profile.
func NewRecorder(cache *domain.MetadataCache, profile domain.Profile, passthrough io.Writer) *Recorder {
	if passthrough == nil {
		passthrough = io.Discard
	}
	return &Recorder{
		cache:       cache,
		profile:     profile,
		passthrough: passthrough,
	}
}

// Write buffers p and handles every complete line.
func (r *Recorder) Write(p []byte) (int, error) {
	r.buf = append(r.buf, p...)

	for {
		i := bytes.IndexByte(r.buf, '\n')
		if i < 0 {
			break
		}
		r.handle(r.buf[:i])
		r.buf = r.buf[i+1:]
	}

	return len(p), nil
}

// Close handles a trailing line without newline.
func (r *Recorder) Close() error {
	if len(r.buf) > 0 {
		r.handle(r.buf)
		r.buf = nil
	}
	return nil
}

func (r *Recorder) handle(line []byte) {
	line = bytes.TrimSuffix(line, []byte("\r"))
	if len(bytes.TrimSpace(line)) == 0 {
		return
	}

	var msg message
	if line[0] != '{' || json.Unmarshal(line, &msg) != nil {
		r.echo(string(line))
		return
	}

	switch msg.Reason {
	case reasonArtifact:
		if a, ok := msg.artifact(); ok {
			r.cache.Record(r.profile, a)
		}
	case reasonMessage:
		if msg.Message != nil && msg.Message.Rendered != "" {
			r.echo(strings.TrimSuffix(msg.Message.Rendered, "\n"))
		}
	}
}

func (r *Recorder) echo(s string) {
	_, _ = io.WriteString(r.passthrough, s+"\n")
}

// RecordBuild consumes a whole message stream into cache.
func RecordBuild(cache *domain.MetadataCache, profile domain.Profile, src io.Reader, passthrough io.Writer) error {
	rec := NewRecorder(cache, profile, passthrough)
	if _, err := io.Copy(rec, src); err != nil {
		return err
	}
	return rec.Close()
}
