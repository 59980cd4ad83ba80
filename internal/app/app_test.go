package app_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/runner/internal/adapters/telemetry"
	"go.trai.ch/runner/internal/app"
	"go.trai.ch/runner/internal/core/domain"
	"go.trai.ch/runner/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	layout    domain.Layout
	workDir   string
	logger    *mocks.MockLogger
	executor  *mocks.MockExecutor
	buildTool *mocks.MockBuildTool
	manifests *mocks.MockManifestEditor
	inspector *mocks.MockCrateInspector
	builds    *mocks.MockBuildInfoStore
	metadata  *mocks.MockMetadataStore
	aliases   *mocks.MockAliasStore
	cache     *mocks.MockCacheManager
	hasher    *mocks.MockHasher
	verifier  *mocks.MockVerifier
	watcher   *mocks.MockWatcher

	stdout bytes.Buffer
	stderr bytes.Buffer
	app    *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	root := t.TempDir()
	layout := domain.NewLayout(root)
	require.NoError(t, os.MkdirAll(layout.BinDir(), 0o750))

	f := &fixture{
		layout:    layout,
		workDir:   t.TempDir(),
		logger:    mocks.NewMockLogger(ctrl),
		executor:  mocks.NewMockExecutor(ctrl),
		buildTool: mocks.NewMockBuildTool(ctrl),
		manifests: mocks.NewMockManifestEditor(ctrl),
		inspector: mocks.NewMockCrateInspector(ctrl),
		builds:    mocks.NewMockBuildInfoStore(ctrl),
		metadata:  mocks.NewMockMetadataStore(ctrl),
		aliases:   mocks.NewMockAliasStore(ctrl),
		cache:     mocks.NewMockCacheManager(ctrl),
		hasher:    mocks.NewMockHasher(ctrl),
		verifier:  mocks.NewMockVerifier(ctrl),
		watcher:   mocks.NewMockWatcher(ctrl),
	}

	f.cache.EXPECT().Layout().Return(layout).AnyTimes()
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	f.app = app.New(app.Deps{
		Settings:  domain.DefaultSettings(root),
		Logger:    f.logger,
		Executor:  f.executor,
		BuildTool: f.buildTool,
		Manifests: f.manifests,
		Inspector: f.inspector,
		Builds:    f.builds,
		Metadata:  f.metadata,
		Aliases:   f.aliases,
		Cache:     f.cache,
		Hasher:    f.hasher,
		Verifier:  f.verifier,
		Tracer:    telemetry.NewNoOpTracer(),
		Watcher:   f.watcher,
	}).
		WithOutput(&f.stdout, &f.stderr).
		WithEnv(func(string) string { return "" }).
		WithWorkDir(f.workDir)

	return f
}

// commands records every executed command and answers them with respond.
func (f *fixture) commands(respond func(cmd *domain.Command, stdout io.Writer) error) *[]*domain.Command {
	var seen []*domain.Command
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd *domain.Command, stdout, _ io.Writer) error {
			seen = append(seen, cmd)
			if respond == nil {
				return nil
			}
			return respond(cmd, stdout)
		}).AnyTimes()
	return &seen
}

func (f *fixture) writeProgram(t *testing.T, name, code string) string {
	t.Helper()
	path := filepath.Join(f.workDir, name)
	require.NoError(t, os.WriteFile(path, []byte(code), 0o600))
	return path
}

// sysroot answers the compiler's sysroot query.
func sysroot(cmd *domain.Command, stdout io.Writer) error {
	if slices.Contains(cmd.Args, "sysroot") {
		_, _ = io.WriteString(stdout, "/toolchain\n")
	}
	return nil
}

func argAfter(args []string, flag string) []string {
	var out []string
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			out = append(out, args[i+1])
		}
	}
	return out
}
