package domain

import "go.trai.ch/zerr"

var (
	// ErrMetadataMissing is returned when static mode is requested but no metadata cache exists.
	ErrMetadataMissing = zerr.New("static cache metadata not found, build it with `runner cache build`")

	// ErrStaticCacheMissing is returned when an operation needs the static cache project and it does not exist.
	ErrStaticCacheMissing = zerr.New("static cache not initialised, add a crate with `runner cache add`")

	// ErrUnresolvedDependency is returned when a static extern has no artifact for the active profile.
	ErrUnresolvedDependency = zerr.New("crate not found in static cache, rebuild with `runner cache build`")

	// ErrMalformedAlias is returned when an alias entry is not of the form alias=target.
	ErrMalformedAlias = zerr.New("malformed alias, expected alias=crate")

	// ErrInvalidCrateSpec is returned when a crate argument cannot be interpreted.
	ErrInvalidCrateSpec = zerr.New("invalid crate specification")

	// ErrCrateNotFound is returned when a crate is not present in the static cache.
	ErrCrateNotFound = zerr.New("crate not found in static cache")

	// ErrDocNotFound is returned when no generated documentation exists for a crate.
	ErrDocNotFound = zerr.New("no documentation generated for crate")

	// ErrBuildToolFailed is returned when the build tool exits with a failure status.
	ErrBuildToolFailed = zerr.New("build tool failed")

	// ErrCompileFailed is returned when the compiler rejects a program.
	ErrCompileFailed = zerr.New("compilation failed")

	// ErrProgramFailed is returned when a compiled program exits with a non-zero status.
	// The CLI propagates the exit code without printing the error.
	ErrProgramFailed = zerr.New("program failed")

	// ErrManifestBackupFailed is returned when the manifest cannot be backed up before editing.
	ErrManifestBackupFailed = zerr.New("failed to back up manifest")

	// ErrManifestRestoreFailed is returned when the manifest backup cannot be restored.
	ErrManifestRestoreFailed = zerr.New("failed to restore manifest")

	// ErrManifestWriteFailed is returned when the manifest cannot be edited.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")

	// ErrManifestParseFailed is returned when a crate manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse crate manifest")

	// ErrNoCrateManifest is returned when no Cargo.toml is found for a crate directory.
	ErrNoCrateManifest = zerr.New("no Cargo.toml found")

	// ErrNoProgram is returned when run is invoked without a program or expression.
	ErrNoProgram = zerr.New("no program or expression given")

	// ErrProgramReadFailed is returned when the program source cannot be read.
	ErrProgramReadFailed = zerr.New("failed to read program")

	// ErrConflictingFlags is returned when mutually exclusive run options are combined.
	ErrConflictingFlags = zerr.New("conflicting options")

	// ErrInvalidArgComment is returned when a //: comment cannot be split into arguments.
	ErrInvalidArgComment = zerr.New("invalid argument comment")

	// ErrLayoutCreateFailed is returned when the cache layout cannot be created.
	ErrLayoutCreateFailed = zerr.New("failed to create cache layout")

	// ErrPreludeReadFailed is returned when the prelude cannot be read.
	ErrPreludeReadFailed = zerr.New("failed to read prelude")

	// ErrAliasReadFailed is returned when the alias table cannot be read.
	ErrAliasReadFailed = zerr.New("failed to read alias table")

	// ErrAliasWriteFailed is returned when the alias table cannot be written.
	ErrAliasWriteFailed = zerr.New("failed to write alias table")

	// ErrStoreCreateFailed is returned when a store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create store directory")

	// ErrStoreReadFailed is returned when a stored record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read stored record")

	// ErrStoreUnmarshalFailed is returned when a stored record cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal stored record")

	// ErrStoreMarshalFailed is returned when a record cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal record")

	// ErrStoreWriteFailed is returned when a record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write record")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrCopyFailed is returned when a compiled program cannot be copied to its output directory.
	ErrCopyFailed = zerr.New("failed to copy executable")

	// ErrWatchFailed is returned when the program file cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch program")
)
