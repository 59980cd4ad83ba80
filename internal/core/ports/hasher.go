package ports

// Hasher defines the interface for computing hashes.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// ComputeInputHash computes a hash of a compiler invocation and the files it reads.
	// Directories in inputs are walked.
	ComputeInputHash(argv []string, inputs []string) (string, error)
}

// Verifier checks that outputs recorded by an earlier build still exist.
type Verifier interface {
	// Exists reports whether every path exists.
	Exists(paths ...string) (bool, error)
}
