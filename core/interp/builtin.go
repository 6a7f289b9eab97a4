package interp

// Builtin is a command run inside the interpreter process.
type Builtin interface {
	// Main runs the command. name is the name it was invoked with and args
	// excludes it. Failures are reported on the context's stderr and through
	// the returned status; the error is reserved for failures that must
	// abort the script, such as a sourced file that doesn't compile.
	Main(c *Context, name string, args []string) (Result, error)
}

// BuiltinFunc adapts a function to the Builtin interface.
type BuiltinFunc func(c *Context, name string, args []string) (Result, error)

var _ Builtin = (BuiltinFunc)(nil)

// Main implements Builtin.
func (f BuiltinFunc) Main(c *Context, name string, args []string) (Result, error) {
	return f(c, name, args)
}

// Builtins maps command names to their implementation.
type Builtins map[string]Builtin

// Names returns the registered command names.
func (b Builtins) Names() []string {
	out := make([]string, 0, len(b))
	for name := range b {
		out = append(out, name)
	}
	return out
}
