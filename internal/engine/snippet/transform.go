// Package snippet turns Rust snippets into complete programs.
package snippet

import (
	"slices"
	"strings"

	"go.trai.ch/runner/internal/core/domain"
)

// Request describes one snippet transformation.
type Request struct {
	// Source is the snippet text.
	Source string
	// Externs are crates declared with a plain extern crate.
	Externs []string
	// Wildcards are crates declared and glob-imported.
	Wildcards []string
	// Macros are crates declared with #[macro_use].
	Macros []string
	// Prepend is code placed before the snippet body.
	Prepend string
	// Prelude is the text placed before every declaration.
	Prelude string
	// Aliases maps requested names to the crates they stand for.
	Aliases map[string]string
}

// Result is a complete program and the crates it links against.
type Result struct {
	Program string
	// Externs are the canonical crate names, sorted and unique.
	Externs []string
}

const indent = "    "

const entryRoutine = `fn main() {
    if let Err(e) = run() {
        eprintln!("error: {:?}", e);
        std::process::exit(1);
    }
}

fn run() -> std::result::Result<(), Box<dyn std::error::Error + Send + Sync>> {`

type state int

const (
	stateLeading state = iota
	stateHeader
	stateBody
)

// scanner classifies snippet lines into attributes, hoisted header lines and body.
type scanner struct {
	state   state
	attrs   []string
	header  []string
	body    []string
	externs map[string]struct{}
	// bound holds names introduced by hoisted extern crate lines.
	bound map[string]struct{}
	// pending is a lone #[macro_use] line waiting for its extern crate.
	pending string
	pendOK  bool
}

func newScanner() *scanner {
	return &scanner{
		externs: make(map[string]struct{}),
		bound:   make(map[string]struct{}),
	}
}

func (s *scanner) feed(line string) {
	line = strings.TrimSuffix(line, "\r")

	if s.state == stateLeading {
		s.state = stateHeader
		if isShebang(line) {
			return
		}
	}

	if s.state == stateBody {
		// Inner attributes are only legal at the top of the crate.
		if trimmed := strings.TrimSpace(line); strings.HasPrefix(trimmed, "#![") {
			s.attrs = append(s.attrs, trimmed)
			return
		}
		s.body = append(s.body, line)
		return
	}

	s.classify(line)
}

// classify handles one line while still in the header.
func (s *scanner) classify(line string) {
	trimmed := strings.TrimSpace(line)

	if s.pendOK {
		s.pendOK = false
		if crate, bound, ok := externCrate(trimmed); ok {
			s.hoistExtern(s.pending+"\n"+trimmed, crate, bound)
			return
		}
		s.startBody(s.pending)
		s.feed(line)
		return
	}

	switch {
	case trimmed == "":
		return
	case strings.HasPrefix(trimmed, "#!["):
		s.attrs = append(s.attrs, trimmed)
	case strings.HasPrefix(trimmed, "#[macro_use]"):
		rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "#[macro_use]"))
		if rest == "" {
			s.pending = trimmed
			s.pendOK = true
			return
		}
		if crate, bound, ok := externCrate(rest); ok {
			s.hoistExtern(trimmed, crate, bound)
			return
		}
		s.startBody(line)
	case isExternLine(trimmed):
		crate, bound, _ := externCrate(trimmed)
		s.hoistExtern(trimmed, crate, bound)
	case isUseLine(trimmed), strings.HasPrefix(trimmed, "//"):
		s.header = append(s.header, trimmed)
	default:
		s.startBody(line)
	}
}

func (s *scanner) hoistExtern(text, crate, bound string) {
	s.header = append(s.header, text)
	s.externs[crate] = struct{}{}
	s.bound[bound] = struct{}{}
}

func (s *scanner) startBody(line string) {
	s.state = stateBody
	s.body = append(s.body, line)
}

// finish flushes a #[macro_use] line left pending at the end of input.
func (s *scanner) finish() {
	if s.pendOK {
		s.pendOK = false
		s.startBody(s.pending)
	}
}

// Transform turns a snippet into a complete program.
func Transform(req Request) Result {
	s := newScanner()
	for line := range strings.SplitSeq(req.Source, "\n") {
		s.feed(line)
	}
	s.finish()

	var prelude []string
	if text := strings.Trim(req.Prelude, "\n"); strings.TrimSpace(text) != "" {
		for line := range strings.SplitSeq(text, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "#![") {
				s.attrs = append(s.attrs, strings.TrimSpace(line))
				continue
			}
			prelude = append(prelude, line)
		}
	}

	decls := declarations(req, s)

	var b strings.Builder
	writeSegment(&b, dedupe(s.attrs))
	writeSegment(&b, prelude)
	writeSegment(&b, decls)
	writeSegment(&b, s.header)
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(entryRoutine)
	b.WriteString("\n")
	writeIndented(&b, strings.Split(strings.Trim(req.Prepend, "\n"), "\n"))
	writeIndented(&b, trimBlankTail(s.body))
	b.WriteString(indent + "Ok(())\n}\n")

	return Result{
		Program: b.String(),
		Externs: sortedKeys(s.externs),
	}
}

// declarations renders the extern crate lines for the requested crates.
// A name requested several times is declared once.
func declarations(req Request, s *scanner) []string {
	type flavour struct {
		wild  bool
		macro bool
	}

	var order []string
	wanted := make(map[string]*flavour)
	add := func(names []string, mark func(*flavour)) {
		for _, n := range names {
			n = domain.CrateName(strings.TrimSpace(n))
			if n == "" {
				continue
			}
			f, ok := wanted[n]
			if !ok {
				f = &flavour{}
				wanted[n] = f
				order = append(order, n)
			}
			mark(f)
		}
	}
	add(req.Externs, func(*flavour) {})
	add(req.Wildcards, func(f *flavour) { f.wild = true })
	add(req.Macros, func(f *flavour) { f.macro = true })

	var out []string
	for _, name := range order {
		f := wanted[name]
		target := name
		if t, ok := req.Aliases[name]; ok && t != "" {
			target = domain.CrateName(t)
		}
		s.externs[target] = struct{}{}

		if _, declared := s.bound[name]; !declared {
			decl := "extern crate " + target + ";"
			if target != name {
				decl = "extern crate " + target + " as " + name + ";"
			}
			if f.macro {
				decl = "#[macro_use] " + decl
			}
			out = append(out, decl)
		}
		if f.wild {
			out = append(out, "use "+name+"::*;")
		}
	}
	return out
}

func writeSegment(b *strings.Builder, lines []string) {
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\n")
	}
}

func writeIndented(b *strings.Builder, lines []string) {
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			if len(lines) > 1 {
				b.WriteString("\n")
			}
			continue
		}
		b.WriteString(indent + l + "\n")
	}
}

func trimBlankTail(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func dedupe(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	out := lines[:0:0]
	for _, l := range lines {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func isShebang(line string) bool {
	return strings.HasPrefix(line, "#!") && !strings.HasPrefix(line, "#![")
}

func isUseLine(trimmed string) bool {
	return (strings.HasPrefix(trimmed, "use ") || strings.HasPrefix(trimmed, "pub use ")) &&
		strings.HasSuffix(trimmed, ";")
}

func isExternLine(trimmed string) bool {
	_, _, ok := externCrate(trimmed)
	return ok
}

// externCrate parses `extern crate X;` and `extern crate X as Y;`.
// It returns the crate and the name it is bound to.
func externCrate(trimmed string) (crate, bound string, ok bool) {
	rest, found := strings.CutPrefix(trimmed, "extern crate ")
	if !found || !strings.HasSuffix(rest, ";") {
		return "", "", false
	}
	fields := strings.Fields(strings.TrimSuffix(rest, ";"))
	switch {
	case len(fields) == 1:
		return fields[0], fields[0], true
	case len(fields) == 3 && fields[1] == "as":
		return fields[0], fields[2], true
	default:
		return "", "", false
	}
}
