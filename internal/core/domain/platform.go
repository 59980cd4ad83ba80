package domain

import "runtime"

// DylibPrefix returns the platform prefix of dynamic library filenames.
func DylibPrefix(goos string) string {
	if goos == "windows" {
		return ""
	}
	return "lib"
}

// DylibSuffix returns the platform extension of dynamic library filenames.
func DylibSuffix(goos string) string {
	switch goos {
	case "windows":
		return ".dll"
	case "darwin", "ios":
		return ".dylib"
	default:
		return ".so"
	}
}

// DylibFileName returns the decorated dynamic library filename of a crate.
func DylibFileName(name string) string {
	return DylibPrefix(runtime.GOOS) + CrateName(name) + DylibSuffix(runtime.GOOS)
}

// ExeName returns the executable filename for a program name.
func ExeName(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".exe"
	}
	return name
}
