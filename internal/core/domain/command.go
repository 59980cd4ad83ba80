package domain

// Command is an external process invocation.
type Command struct {
	// Args holds the program name followed by its arguments.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env holds KEY=VALUE overrides applied on top of the inherited environment.
	Env []string
	// Stdin connects the process to the standard input of runner.
	Stdin bool
}

// Name returns the program name of the command.
func (c *Command) Name() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}
