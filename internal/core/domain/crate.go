package domain

// CrateManifest is what runner needs from the Cargo.toml of a local crate.
type CrateManifest struct {
	Name    string
	Version string
	Edition string
	// Dir is the directory holding the manifest.
	Dir string
	// LibPath is the library root source file.
	LibPath string
}
