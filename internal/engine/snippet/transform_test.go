package snippet_test

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/runner/internal/engine/snippet"
)

func TestTransform_Golden(t *testing.T) {
	tests := []struct {
		name        string
		req         snippet.Request
		goldenName  string
		wantExterns []string
	}{
		{
			name:        "expression",
			req:         snippet.Request{Source: snippet.Expression("1 + 2")},
			goldenName:  "expression",
			wantExterns: []string{},
		},
		{
			name: "full snippet",
			req: snippet.Request{
				Source: "#!/usr/bin/env runner\n" +
					"#![allow(unused)]\n" +
					"extern crate regex;\n" +
					"use std::collections::BTreeMap;\n" +
					"\n" +
					"let re = regex::Regex::new(\"a+\")?;\n" +
					"\n" +
					"println!(\"{}\", re.is_match(\"aaa\"));\n",
				Externs:   []string{"json"},
				Wildcards: []string{"itertools"},
				Macros:    []string{"lazy_static"},
				Aliases:   map[string]string{"json": "serde_json"},
				Prepend:   "let verbose = true;",
				Prelude:   "\n#![allow(dead_code)]\nuse std::fs;\n",
			},
			goldenName:  "full_snippet",
			wantExterns: []string{"itertools", "lazy_static", "regex", "serde_json"},
		},
		{
			name: "macro_use on its own line",
			req: snippet.Request{
				Source: "#[macro_use]\nextern crate serde_derive;\n#[macro_use]\nfn helper() {}",
			},
			goldenName:  "macro_use_lookahead",
			wantExterns: []string{"serde_derive"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := snippet.Transform(tt.req)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, []byte(res.Program))
			assert.Equal(t, tt.wantExterns, res.Externs)
		})
	}
}

func TestTransform_AttributesPrecedeDeclarations(t *testing.T) {
	res := snippet.Transform(snippet.Request{
		Source:  "use std::io;\n#![allow(unused_mut)]\nlet mut x = 1;",
		Externs: []string{"regex"},
		Prelude: "use std::fs;\n#![allow(unused_imports)]",
	})

	lines := strings.Split(res.Program, "\n")
	lastAttr, firstDecl := -1, len(lines)
	for i, l := range lines {
		if strings.HasPrefix(l, "#![") {
			lastAttr = i
		}
		if (strings.HasPrefix(l, "use ") || strings.HasPrefix(l, "extern crate ")) && i < firstDecl {
			firstDecl = i
		}
	}
	require.NotEqual(t, -1, lastAttr)
	assert.Less(t, lastAttr, firstDecl)
}

func TestTransform_AttributesHoistedFromAnyPosition(t *testing.T) {
	parts := []string{"#![allow(unused_variables)]", "use std::io;", "let x = 1;"}
	orders := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}

	for _, order := range orders {
		lines := make([]string, 0, len(order))
		for _, i := range order {
			lines = append(lines, parts[i])
		}
		source := strings.Join(lines, "\n")

		t.Run(source, func(t *testing.T) {
			res := snippet.Transform(snippet.Request{Source: source, Prelude: "use std::fs;"})

			out := strings.Split(res.Program, "\n")
			attr, firstUse := -1, len(out)
			for i, l := range out {
				if strings.Contains(l, "#![allow(unused_variables)]") {
					attr = i
				}
				if strings.HasPrefix(l, "use ") && i < firstUse {
					firstUse = i
				}
			}
			require.NotEqual(t, -1, attr)
			assert.Less(t, attr, firstUse)
			assert.Equal(t, 1, strings.Count(res.Program, "#![allow(unused_variables)]"))
			assert.True(t, strings.HasPrefix(out[attr], "#!["), "attribute must not be indented into the body")
		})
	}
}

func TestTransform_DeduplicatesRequestedCrates(t *testing.T) {
	res := snippet.Transform(snippet.Request{
		Source:    "let x = 1;",
		Externs:   []string{"regex", "regex", "serde-json"},
		Wildcards: []string{"regex"},
		Macros:    []string{"serde_json"},
	})

	assert.Equal(t, 1, strings.Count(res.Program, "extern crate regex;"))
	assert.Contains(t, res.Program, "use regex::*;")
	assert.Contains(t, res.Program, "#[macro_use] extern crate serde_json;")
	assert.NotContains(t, res.Program, "serde-json")
	assert.Equal(t, []string{"regex", "serde_json"}, res.Externs)
}

func TestTransform_SkipsDeclarationAlreadyInSource(t *testing.T) {
	res := snippet.Transform(snippet.Request{
		Source:  "extern crate regex;\nlet x = 1;",
		Externs: []string{"regex"},
	})

	assert.Equal(t, 1, strings.Count(res.Program, "extern crate regex;"))
	assert.Equal(t, []string{"regex"}, res.Externs)
}

func TestTransform_ExternAsKeepsCrateName(t *testing.T) {
	res := snippet.Transform(snippet.Request{
		Source: "extern crate serde_json as json;\nlet v = json::Value::Null;",
	})

	assert.Equal(t, []string{"serde_json"}, res.Externs)
	assert.Contains(t, res.Program, "extern crate serde_json as json;\n")
}

func TestTransform_EmptySourceIsValidProgram(t *testing.T) {
	res := snippet.Transform(snippet.Request{})

	body, ok := snippet.ExtractBody(res.Program)
	require.True(t, ok)
	assert.Empty(t, body)
	assert.True(t, snippet.IsProgram(res.Program))
	assert.Empty(t, res.Externs)
}

func TestTransform_ShebangOnlyOnFirstLine(t *testing.T) {
	res := snippet.Transform(snippet.Request{Source: "let a = 1;\n#!not a shebang"})

	body, ok := snippet.ExtractBody(res.Program)
	require.True(t, ok)
	assert.Equal(t, "let a = 1;\n#!not a shebang", body)
}

func TestTransform_BodyIsStable(t *testing.T) {
	src := "let v = vec![1, 2, 3];\n\nfor x in &v {\n    println!(\"{}\", x);\n}"

	first := snippet.Transform(snippet.Request{Source: src})
	body, ok := snippet.ExtractBody(first.Program)
	require.True(t, ok)
	assert.Equal(t, src, body)

	second := snippet.Transform(snippet.Request{Source: body})
	assert.Equal(t, first.Program, second.Program)
}

func TestTransform_CRLFInput(t *testing.T) {
	res := snippet.Transform(snippet.Request{Source: "use std::fs;\r\nlet x = 1;\r\n"})

	assert.NotContains(t, res.Program, "\r")
	assert.Contains(t, res.Program, "use std::fs;\n")
	assert.Contains(t, res.Program, "    let x = 1;\n")
}
