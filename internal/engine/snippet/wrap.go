package snippet

import (
	"regexp"
	"strings"
)

// ArgPrefix starts a comment line carrying default command line flags.
const ArgPrefix = "//:"

var mainFn = regexp.MustCompile(`(?m)^\s*(pub\s+)?fn\s+main\s*\(`)

// Expression wraps an expression so its debug representation is printed.
func Expression(code string) string {
	return `println!("{:?}", ` + strings.TrimSpace(code) + `);`
}

// Iterate wraps an iterable expression so each item is printed.
func Iterate(code string) string {
	return "for val in " + strings.TrimSpace(code) + " {\n    println!(\"{:?}\", val);\n}"
}

// Lines wraps code evaluated once per line of standard input, bound to `line`.
// Code ending in a block is run as a statement, anything else is printed.
func Lines(code string) string {
	code = strings.TrimSpace(code)

	var b strings.Builder
	b.WriteString("let stdin = std::io::stdin();\n")
	b.WriteString("for line in std::io::BufRead::lines(stdin.lock()) {\n")
	b.WriteString("    let line = line?;\n")
	if strings.HasSuffix(code, "}") {
		b.WriteString("    " + code + ";\n")
	} else {
		b.WriteString("    let val = " + code + ";\n")
		b.WriteString("    println!(\"{:?}\", val);\n")
	}
	b.WriteString("}")
	return b.String()
}

// IsProgram reports whether code already declares a main function.
func IsProgram(code string) bool {
	return mainFn.MatchString(code)
}

// ProgramExterns returns the crates named by extern crate lines of a complete program.
func ProgramExterns(code string) []string {
	found := make(map[string]struct{})
	for line := range strings.SplitSeq(code, "\n") {
		trimmed := strings.TrimSpace(line)
		trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "#[macro_use]"))
		if crate, _, ok := externCrate(trimmed); ok {
			found[crate] = struct{}{}
		}
	}
	return sortedKeys(found)
}

// ArgComment returns the flags of a leading //: comment.
// The comment must be the first line, or the second after a shebang.
func ArgComment(source string) (string, bool) {
	for i, line := range strings.SplitN(source, "\n", 3) {
		line = strings.TrimSuffix(line, "\r")
		if i == 0 && isShebang(line) {
			continue
		}
		rest, ok := strings.CutPrefix(line, ArgPrefix)
		if !ok {
			return "", false
		}
		return strings.TrimSpace(rest), true
	}
	return "", false
}

// ExtractBody returns the code placed inside the generated run function, unindented.
func ExtractBody(program string) (string, bool) {
	_, after, ok := strings.Cut(program, entryRoutine+"\n")
	if !ok {
		return "", false
	}
	body, ok := strings.CutSuffix(after, indent+"Ok(())\n}\n")
	if !ok {
		return "", false
	}

	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimPrefix(l, indent)
	}
	return strings.Join(lines, "\n"), true
}
