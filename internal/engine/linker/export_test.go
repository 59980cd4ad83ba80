// export_test.go exports private helpers for white-box testing.
package linker

// RuntimeEnvFor exposes runtimeEnv with an explicit target OS.
var RuntimeEnvFor = runtimeEnv

// SetGOOS overrides the target OS used for library file names.
func (l *Linker) SetGOOS(goos string) {
	l.goos = goos
}
