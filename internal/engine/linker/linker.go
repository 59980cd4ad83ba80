// Package linker builds compiler invocations for every linking mode.
package linker

import (
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/runner/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver maps a crate name to the artifact filename of a profile.
// *domain.MetadataCache implements it.
type Resolver interface {
	ResolveArtifact(name string, p domain.Profile) (string, error)
}

// Request describes one compilation.
type Request struct {
	Mode domain.Mode
	Kind domain.OutputKind
	// Program is the source file to compile.
	Program string
	// CrateName names a library build.
	CrateName string
	Externs   []string
	// SearchPaths are extra library directories.
	SearchPaths []string
	CfgVars     []string
	Features    []string
	// Output is the executable path, or the output directory of a library.
	Output  string
	Edition string
}

// Linker turns requests into compiler argument vectors.
type Linker struct {
	compiler string
	layout   domain.Layout
	goos     string
}

// New returns a linker for the compiler binary and cache layout.
func New(compiler string, layout domain.Layout) *Linker {
	if compiler == "" {
		compiler = "rustc"
	}
	return &Linker{
		compiler: compiler,
		layout:   layout,
		goos:     runtime.GOOS,
	}
}

// BuildCommand returns the argument vector compiling req.
// In static modes every extern must resolve through res; nothing falls back to the dynamic cache.
func (l *Linker) BuildCommand(req Request, res Resolver) ([]string, error) {
	argv := []string{l.compiler}
	if req.Edition != "" {
		argv = append(argv, "--edition", req.Edition)
	}

	var dir string
	switch req.Mode {
	case domain.DynamicEphemeral, domain.DynamicLinked:
		dir = l.layout.DynamicDir()
		argv = append(argv, "-C", "prefer-dynamic", "-C", "debuginfo=0")
	case domain.StaticDebug:
		dir = l.layout.DepsDir(domain.Debug)
		argv = append(argv, "-g")
	case domain.StaticRelease:
		dir = l.layout.DepsDir(domain.Release)
		argv = append(argv, "-O", "-C", "debuginfo=0")
	}
	argv = append(argv, "-L", dir)

	if req.Mode.Static() && isNilResolver(res) && len(req.Externs) > 0 {
		return nil, domain.ErrMetadataMissing
	}

	for _, name := range req.Externs {
		crate := domain.CrateName(name)
		var file string
		if req.Mode.Static() {
			artifact, err := res.ResolveArtifact(crate, req.Mode.Profile())
			if err != nil {
				return nil, err
			}
			file = filepath.Join(dir, artifact)
		} else {
			file = filepath.Join(dir, l.dylibName(crate))
		}
		argv = append(argv, "--extern", crate+"="+file)
	}

	for _, p := range req.SearchPaths {
		argv = append(argv, "-L", p)
	}
	for _, v := range req.CfgVars {
		argv = append(argv, "--cfg", v)
	}
	for _, f := range req.Features {
		argv = append(argv, "--cfg", `feature="`+f+`"`)
	}

	switch req.Kind {
	case domain.Library:
		if req.CrateName == "" {
			return nil, zerr.Wrap(domain.ErrInvalidCrateSpec, "library build without crate name")
		}
		crate := domain.CrateName(req.CrateName)
		argv = append(argv,
			"--crate-type", "dylib",
			"--crate-name", crate,
			"-o", filepath.Join(req.Output, l.dylibName(crate)),
		)
	default:
		argv = append(argv, "-o", req.Output)
	}

	return append(argv, req.Program), nil
}

func (l *Linker) dylibName(crate string) string {
	return domain.DylibPrefix(l.goos) + crate + domain.DylibSuffix(l.goos)
}

func isNilResolver(res Resolver) bool {
	if res == nil {
		return true
	}
	c, ok := res.(*domain.MetadataCache)
	return ok && c == nil
}

// RuntimeEnv returns the loader variables a dynamically linked program needs.
// sysrootLib is the toolchain library directory holding the standard library dylib.
func RuntimeEnv(mode domain.Mode, layout domain.Layout, sysrootLib string, environ func(string) string) []string {
	return runtimeEnv(runtime.GOOS, mode, layout, sysrootLib, environ)
}

func runtimeEnv(goos string, mode domain.Mode, layout domain.Layout, sysrootLib string, environ func(string) string) []string {
	if mode.Static() {
		return nil
	}

	dirs := []string{layout.DynamicDir()}
	if sysrootLib != "" {
		dirs = append(dirs, sysrootLib)
	}
	joined := strings.Join(dirs, string(filepath.ListSeparator))

	extend := func(key string) string {
		if prev := environ(key); prev != "" {
			return key + "=" + joined + string(filepath.ListSeparator) + prev
		}
		return key + "=" + joined
	}

	switch goos {
	case "windows":
		return []string{extend("PATH")}
	case "darwin":
		return []string{extend("DYLD_FALLBACK_LIBRARY_PATH")}
	default:
		return []string{extend("LD_LIBRARY_PATH")}
	}
}
