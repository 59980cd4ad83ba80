package domain

// Mode is the linking strategy of one invocation.
type Mode int

const (
	// DynamicEphemeral compiles a throwaway program against dynamic libraries.
	DynamicEphemeral Mode = iota
	// DynamicLinked compiles a crate into a dynamic library in the dynamic cache.
	DynamicLinked
	// StaticDebug links against the debug artifacts of the static cache.
	StaticDebug
	// StaticRelease links against the release artifacts of the static cache.
	StaticRelease
)

// SelectMode picks the mode for an invocation.
// Library builds are always dynamic.
func SelectMode(static, optimize, library bool) Mode {
	switch {
	case library:
		return DynamicLinked
	case !static:
		return DynamicEphemeral
	case optimize:
		return StaticRelease
	default:
		return StaticDebug
	}
}

// Static reports whether the mode links against the static cache.
func (m Mode) Static() bool {
	return m == StaticDebug || m == StaticRelease
}

// Profile returns the static cache profile of the mode.
func (m Mode) Profile() Profile {
	if m == StaticRelease {
		return Release
	}
	return Debug
}

func (m Mode) String() string {
	switch m {
	case DynamicEphemeral:
		return "dynamic"
	case DynamicLinked:
		return "dynamic-library"
	case StaticDebug:
		return "static-debug"
	case StaticRelease:
		return "static-release"
	default:
		return "unknown"
	}
}

// OutputKind is what the compiler produces.
type OutputKind int

const (
	// Executable is a runnable program.
	Executable OutputKind = iota
	// Library is a dynamic library.
	Library
)
