package app_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/runner/internal/app"
	"go.trai.ch/runner/internal/core/domain"
	"go.uber.org/mock/gomock"
)

const memchrArtifact = `{"reason":"compiler-artifact","package_id":"registry+https://github.com/rust-lang/crates.io-index#memchr@2.7.1",` +
	`"manifest_path":"/registry/memchr-2.7.1/Cargo.toml","target":{"kind":["lib"],"crate_types":["lib"],"name":"memchr",` +
	`"src_path":"/registry/memchr-2.7.1/src/lib.rs"},"features":["std"],` +
	`"filenames":["/cache/target/deps/libmemchr-1f2e.rlib"],"executable":null,"fresh":true}` + "\n"

func emitArtifact(_ context.Context, _ domain.Profile, messages io.Writer) error {
	_, err := io.WriteString(messages, memchrArtifact)
	return err
}

func TestAddCrates_InitialisesAndBuilds(t *testing.T) {
	f := newFixture(t)
	manifest := f.layout.ManifestPath()

	f.cache.EXPECT().EnsureLayout().Return(nil)
	gomock.InOrder(
		f.verifier.EXPECT().Exists(manifest).Return(false, nil),
		f.buildTool.EXPECT().Init(gomock.Any()).Return(nil),
		f.manifests.EXPECT().Append(manifest, []string{`memchr="*"`, `regex="1.10"`}).
			Return(func() error { return nil }, nil),
		f.verifier.EXPECT().Exists(manifest).Return(true, nil),
		f.buildTool.EXPECT().Build(gomock.Any(), domain.Debug, gomock.Any()).DoAndReturn(emitArtifact),
		f.buildTool.EXPECT().Build(gomock.Any(), domain.Release, gomock.Any()).DoAndReturn(emitArtifact),
		f.metadata.EXPECT().Save(gomock.Any()).DoAndReturn(func(cache *domain.MetadataCache) error {
			rec, ok := cache.Lookup("memchr")
			require.True(t, ok)
			assert.Equal(t, "2.7.1", rec.Version)
			assert.NotEmpty(t, rec.DebugArtifact)
			assert.NotEmpty(t, rec.ReleaseArtifact)
			return nil
		}),
		f.buildTool.EXPECT().Doc(gomock.Any()).Return(errors.New("rustdoc missing")),
		f.logger.EXPECT().Warn(gomock.Any()),
	)

	require.NoError(t, f.app.AddCrates(context.Background(), []string{"memchr", "regex=1.10"}))
}

func TestAddCrates_RestoresManifestOnFailure(t *testing.T) {
	f := newFixture(t)
	manifest := f.layout.ManifestPath()
	restored := false

	f.cache.EXPECT().EnsureLayout().Return(nil)
	f.verifier.EXPECT().Exists(manifest).Return(true, nil).Times(2)
	f.manifests.EXPECT().Dependencies(manifest).Return([]string{"serde"}, nil)
	f.manifests.EXPECT().Append(manifest, []string{`nosuchcrate="*"`}).
		Return(func() error { restored = true; return nil }, nil)
	f.buildTool.EXPECT().Build(gomock.Any(), domain.Debug, gomock.Any()).Return(domain.ErrBuildToolFailed)
	f.logger.EXPECT().Warn(gomock.Any())

	err := f.app.AddCrates(context.Background(), []string{"nosuchcrate"})
	require.ErrorIs(t, err, domain.ErrBuildToolFailed)
	assert.True(t, restored)
}

func TestAddCrates_ReportsFailedRestore(t *testing.T) {
	f := newFixture(t)
	manifest := f.layout.ManifestPath()

	f.cache.EXPECT().EnsureLayout().Return(nil)
	f.verifier.EXPECT().Exists(manifest).Return(true, nil).Times(2)
	f.manifests.EXPECT().Dependencies(manifest).Return(nil, nil)
	f.manifests.EXPECT().Append(manifest, gomock.Any()).
		Return(func() error { return errors.New("read-only") }, nil)
	f.buildTool.EXPECT().Build(gomock.Any(), domain.Debug, gomock.Any()).Return(domain.ErrBuildToolFailed)
	f.logger.EXPECT().Warn(gomock.Any())

	err := f.app.AddCrates(context.Background(), []string{"regex"})
	require.ErrorIs(t, err, domain.ErrBuildToolFailed)
	assert.ErrorContains(t, err, domain.ErrManifestRestoreFailed.Error())
}

func TestAddCrates_SkipsPresentCrates(t *testing.T) {
	f := newFixture(t)
	manifest := f.layout.ManifestPath()

	f.cache.EXPECT().EnsureLayout().Return(nil)
	f.verifier.EXPECT().Exists(manifest).Return(true, nil)
	f.manifests.EXPECT().Dependencies(manifest).Return([]string{"regex"}, nil)

	require.NoError(t, f.app.AddCrates(context.Background(), []string{"regex"}))
}

func TestAddCrates_ExpandsKitchenSinkAndLocalCrates(t *testing.T) {
	f := newFixture(t)
	manifest := f.layout.ManifestPath()
	local := t.TempDir()

	f.cache.EXPECT().EnsureLayout().Return(nil)
	f.inspector.EXPECT().Inspect(local).Return(domain.CrateManifest{Name: "my-lib", Dir: local}, nil)
	f.verifier.EXPECT().Exists(manifest).Return(true, nil).Times(2)
	f.manifests.EXPECT().Dependencies(manifest).Return(nil, nil)
	f.manifests.EXPECT().Append(manifest, []string{
		`chrono="*"`, `regex="*"`, `serde_json="*"`, `serde_yaml="*"`,
		`my-lib={path="` + local + `"}`,
	}).Return(func() error { return nil }, nil)
	f.buildTool.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.metadata.EXPECT().Save(gomock.Any()).Return(nil)
	f.buildTool.EXPECT().Doc(gomock.Any()).Return(nil)

	require.NoError(t, f.app.AddCrates(context.Background(), []string{"kitchen-sink", local}))
}

func TestAddCrates_InvalidSpec(t *testing.T) {
	for _, arg := range []string{"=1.0", "regex=", "./missing-dir", "two words"} {
		t.Run(arg, func(t *testing.T) {
			f := newFixture(t)
			f.cache.EXPECT().EnsureLayout().Return(nil)

			err := f.app.AddCrates(context.Background(), []string{arg})
			require.ErrorIs(t, err, domain.ErrInvalidCrateSpec)
		})
	}
}

func TestRebuild_RequiresStaticCache(t *testing.T) {
	f := newFixture(t)
	f.verifier.EXPECT().Exists(f.layout.ManifestPath()).Return(false, nil)

	err := f.app.Rebuild(context.Background())
	require.ErrorIs(t, err, domain.ErrStaticCacheMissing)
}

func TestRebuild_SkipsDocsWhenDisabled(t *testing.T) {
	f := newFixture(t)
	f.app.Settings.BuildDocs = false

	f.verifier.EXPECT().Exists(f.layout.ManifestPath()).Return(true, nil)
	f.buildTool.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(emitArtifact).Times(2)
	f.metadata.EXPECT().Save(gomock.Any()).Return(nil)

	require.NoError(t, f.app.Rebuild(context.Background()))
}

func TestUpdateAndCleanup(t *testing.T) {
	f := newFixture(t)
	f.verifier.EXPECT().Exists(f.layout.ManifestPath()).Return(true, nil).Times(2)
	f.buildTool.EXPECT().Update(gomock.Any(), "regex").Return(nil)
	f.buildTool.EXPECT().Clean(gomock.Any()).Return(nil)

	require.NoError(t, f.app.Update(context.Background(), "regex"))
	require.NoError(t, f.app.Cleanup(context.Background()))
}

func recordedCache() *domain.MetadataCache {
	cache := domain.NewMetadataCache()
	cache.Record(domain.Debug, domain.Artifact{
		Name:       "regex",
		Version:    "1.10.2",
		SourcePath: "/registry/regex-1.10.2",
		Features:   []string{"std", "unicode"},
		Filename:   "libregex-aa.rlib",
	})
	cache.Record(domain.Debug, domain.Artifact{Name: "memchr", Version: "2.7.1", Filename: "libmemchr-bb.rlib"})
	return cache
}

func TestCrates(t *testing.T) {
	f := newFixture(t)
	f.metadata.EXPECT().Load().Return(recordedCache(), nil).Times(3)

	require.NoError(t, f.app.Crates(nil, false))
	assert.Contains(t, f.stdout.String(), "regex")
	assert.Contains(t, f.stdout.String(), "memchr")

	f.stdout.Reset()
	require.NoError(t, f.app.Crates([]string{"regex"}, true))
	assert.Contains(t, f.stdout.String(), "/registry/regex-1.10.2")
	assert.NotContains(t, f.stdout.String(), "memchr")

	err := f.app.Crates([]string{"tokio"}, false)
	require.ErrorIs(t, err, domain.ErrCrateNotFound)
}

func TestDocPath(t *testing.T) {
	f := newFixture(t)
	manifest := f.layout.ManifestPath()
	cacheIndex := filepath.Join(f.layout.DocDir(), "static_cache", "index.html")
	serdeIndex := filepath.Join(f.layout.DocDir(), "serde_json", "index.html")

	f.verifier.EXPECT().Exists(manifest).Return(true, nil).Times(2)
	f.verifier.EXPECT().Exists(cacheIndex).Return(true, nil)
	f.verifier.EXPECT().Exists(serdeIndex).Return(false, nil)

	path, err := f.app.DocPath("")
	require.NoError(t, err)
	assert.Equal(t, cacheIndex, path)

	_, err = f.app.DocPath("serde-json")
	require.ErrorIs(t, err, domain.ErrDocNotFound)
}

func TestCratePath(t *testing.T) {
	f := newFixture(t)
	f.metadata.EXPECT().Load().Return(recordedCache(), nil).Times(3)

	path, err := f.app.CratePath("regex")
	require.NoError(t, err)
	assert.Equal(t, "/registry/regex-1.10.2", path)

	_, err = f.app.CratePath("memchr")
	require.ErrorIs(t, err, domain.ErrMetadataMissing)

	_, err = f.app.CratePath("tokio")
	require.ErrorIs(t, err, domain.ErrCrateNotFound)
}

func TestAddAliases(t *testing.T) {
	f := newFixture(t)
	f.cache.EXPECT().EnsureLayout().Return(nil)
	f.aliases.EXPECT().Append([]string{"re=regex"}).Return(nil)

	require.NoError(t, f.app.AddAliases([]string{"re=regex"}))
}

func TestCompileCrate_FromStaticCache(t *testing.T) {
	f := newFixture(t)
	f.cache.EXPECT().EnsureLayout().Return(nil)
	f.metadata.EXPECT().Load().Return(recordedCache(), nil)
	f.inspector.EXPECT().Inspect("/registry/regex-1.10.2").Return(domain.CrateManifest{
		Name:    "regex",
		Edition: "2018",
		LibPath: "/registry/regex-1.10.2/src/lib.rs",
	}, nil)
	dylib := filepath.Join(f.layout.DynamicDir(), domain.DylibFileName("regex"))
	f.hasher.EXPECT().ComputeInputHash(gomock.Any(), []string{"/registry/regex-1.10.2"}).Return("c1", nil)
	f.builds.EXPECT().Get(dylib).Return(nil, nil)
	f.builds.EXPECT().Put(gomock.Any()).DoAndReturn(func(info domain.BuildInfo) error {
		assert.Equal(t, dylib, info.Program)
		assert.Equal(t, "c1", info.InputHash)
		return nil
	})
	cmds := f.commands(nil)

	err := f.app.CompileCrate(context.Background(), "regex", app.CompileOptions{Features: []string{"perf"}})
	require.NoError(t, err)

	require.Len(t, *cmds, 1)
	args := (*cmds)[0].Args
	assert.Equal(t, []string{"2018"}, argAfter(args, "--edition"))
	assert.Equal(t, []string{"dylib"}, argAfter(args, "--crate-type"))
	assert.Equal(t, []string{"regex"}, argAfter(args, "--crate-name"))
	assert.Equal(t, []string{`feature="std"`, `feature="unicode"`, `feature="perf"`}, argAfter(args, "--cfg"))
	assert.Equal(t, "/registry/regex-1.10.2/src/lib.rs", args[len(args)-1])
}

func TestCompileCrate_SourceFile(t *testing.T) {
	f := newFixture(t)
	lib := filepath.Join(t.TempDir(), "helpers.rs")
	require.NoError(t, os.WriteFile(lib, []byte("pub fn answer() -> u32 { 42 }\n"), 0o600))

	f.cache.EXPECT().EnsureLayout().Return(nil)
	f.hasher.EXPECT().ComputeInputHash(gomock.Any(), []string{lib}).Return("c1", nil)
	f.builds.EXPECT().Get(gomock.Any()).Return(nil, nil)
	f.builds.EXPECT().Put(gomock.Any()).Return(nil)
	cmds := f.commands(nil)

	require.NoError(t, f.app.CompileCrate(context.Background(), lib, app.CompileOptions{Edition: "2015"}))

	args := (*cmds)[0].Args
	assert.Equal(t, []string{"helpers"}, argAfter(args, "--crate-name"))
	assert.Equal(t, []string{"2015"}, argAfter(args, "--edition"))
}

func TestCompileCrate_Failures(t *testing.T) {
	t.Run("unknown crate", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().EnsureLayout().Return(nil)
		f.metadata.EXPECT().Load().Return(recordedCache(), nil)

		err := f.app.CompileCrate(context.Background(), "tokio", app.CompileOptions{})
		require.ErrorIs(t, err, domain.ErrCrateNotFound)
	})

	t.Run("not a crate", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().EnsureLayout().Return(nil)

		err := f.app.CompileCrate(context.Background(), "./notes.txt", app.CompileOptions{})
		require.ErrorIs(t, err, domain.ErrInvalidCrateSpec)
	})

	t.Run("compiler error", func(t *testing.T) {
		f := newFixture(t)
		lib := filepath.Join(t.TempDir(), "broken.rs")
		require.NoError(t, os.WriteFile(lib, []byte("pub fn"), 0o600))

		f.cache.EXPECT().EnsureLayout().Return(nil)
		f.hasher.EXPECT().ComputeInputHash(gomock.Any(), gomock.Any()).Return("c1", nil)
		f.builds.EXPECT().Get(gomock.Any()).Return(nil, nil)
		f.commands(func(cmd *domain.Command, _ io.Writer) error {
			return &domain.ExitError{Program: cmd.Name(), Code: 1}
		})

		err := f.app.CompileCrate(context.Background(), lib, app.CompileOptions{})
		require.ErrorIs(t, err, domain.ErrCompileFailed)
		assert.NotErrorIs(t, err, domain.ErrProgramFailed)
	})
}

func TestCompileCrate_SkipsUnchangedCrate(t *testing.T) {
	f := newFixture(t)
	dir := t.TempDir()
	f.cache.EXPECT().EnsureLayout().Return(nil)
	f.inspector.EXPECT().Inspect(dir).Return(domain.CrateManifest{
		Name:    "my-lib",
		Edition: "2021",
		LibPath: filepath.Join(dir, "src", "lib.rs"),
	}, nil)
	dylib := filepath.Join(f.layout.DynamicDir(), domain.DylibFileName("my-lib"))
	f.hasher.EXPECT().ComputeInputHash(gomock.Any(), []string{dir}).Return("c1", nil)
	f.builds.EXPECT().Get(dylib).Return(&domain.BuildInfo{Program: dylib, InputHash: "c1"}, nil)
	f.verifier.EXPECT().Exists(dylib).Return(true, nil)
	cmds := f.commands(nil)

	require.NoError(t, f.app.CompileCrate(context.Background(), dir, app.CompileOptions{}))
	assert.Empty(t, *cmds)
}
