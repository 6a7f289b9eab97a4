// Package interp runs juokse scripts.
package interp

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/josephlewis42/juokse/core/ast"
	"github.com/josephlewis42/juokse/core/diag"
	"github.com/josephlewis42/juokse/core/vos"
	"github.com/spf13/afero"
)

const (
	EnvHome   = "HOME"
	EnvOldPWD = "OLDPWD"
	EnvPath   = "PATH"
	EnvPWD    = "PWD"

	// VarStatus holds the status of the last command.
	VarStatus = "?"
	// VarArgCount holds the number of positional arguments.
	VarArgCount = "#"
	// VarArgs holds the positional arguments joined with spaces.
	VarArgs = "*"
)

// ProcessEvent describes a command being started or finished.
type ProcessEvent struct {
	Executable string
	Args       []string
	// Status, Pid and Signal are only set once the command has finished.
	Status int
	Pid    int
	Signal string
}

// ProcessListener is notified of ProcessEvents.
type ProcessListener func(ProcessEvent)

// Context is the mutable state of a script run. Nested runs such as command
// substitution and sourced scripts share the same Context.
type Context struct {
	// Fs is the file system used for directory checks, globbing and
	// executable lookup.
	Fs afero.Fs
	// Env holds the environment passed to spawned processes.
	Env *vos.MapEnv
	// Variables holds script variables, including positional parameters and
	// the last exit status.
	Variables *vos.MapEnv
	// Builtins is the table of in-process commands.
	Builtins Builtins

	functions map[string]ast.Statement

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	startListeners  []ProcessListener
	finishListeners []ProcessListener
}

// NewContext creates a Context. A nil fsys uses the host file system and nil
// files discard all output.
func NewContext(fsys afero.Fs, builtins Builtins, files vos.VIO) *Context {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if files == nil {
		files = vos.NewNullIO()
	}
	if builtins == nil {
		builtins = Builtins{}
	}

	return &Context{
		Fs:        fsys,
		Env:       vos.NewMapEnv(),
		Variables: vos.NewMapEnv(),
		Builtins:  builtins,
		functions: make(map[string]ast.Statement),
		stdin:     files.Stdin(),
		stdout:    files.Stdout(),
		stderr:    files.Stderr(),
	}
}

func (c *Context) Stdin() io.Reader {
	return c.stdin
}

func (c *Context) Stdout() io.Writer {
	return c.stdout
}

func (c *Context) Stderr() io.Writer {
	return c.stderr
}

// RedirectStdout sends the standard output to w while fn runs. The previous
// output is restored when fn returns or panics.
func (c *Context) RedirectStdout(w io.Writer, fn func() error) error {
	previous := c.stdout
	c.stdout = w
	defer func() {
		c.stdout = previous
	}()

	return fn()
}

// Cwd returns the current working directory, which is stored in the PWD
// environment variable. The working directory of the process is used if PWD
// is empty.
func (c *Context) Cwd() string {
	if pwd := c.Env.Getenv(EnvPWD); pwd != "" {
		return pwd
	}
	wd, err := os.Getwd()
	if err != nil {
		return string(filepath.Separator)
	}
	return wd
}

// SetCwd changes the working directory. Relative paths are resolved against
// the current one and "-" swaps to OLDPWD, doing nothing if that isn't set.
// Nothing changes if dir isn't a directory.
func (c *Context) SetCwd(dir string) error {
	if dir == "-" {
		dir = c.Env.Getenv(EnvOldPWD)
		if dir == "" {
			return nil
		}
	}

	dir = c.resolvePath(dir)
	if ok, err := afero.IsDir(c.Fs, dir); err != nil || !ok {
		return diag.Errorf(nil, "'%s' is not a valid directory.", dir)
	}

	c.Env.Setenv(EnvOldPWD, c.Cwd())
	c.Env.Setenv(EnvPWD, dir)
	return nil
}

// Home returns the home directory from HOME, falling back to the home
// directory of the user running the process.
func (c *Context) Home() string {
	if home := c.Env.Getenv(EnvHome); home != "" {
		return home
	}
	home, _ := os.UserHomeDir()
	return home
}

// SetHome changes the home directory, which must exist.
func (c *Context) SetHome(dir string) error {
	dir = c.resolvePath(dir)
	if ok, err := afero.IsDir(c.Fs, dir); err != nil || !ok {
		return diag.Errorf(nil, "'%s' is not a valid directory.", dir)
	}

	c.Env.Setenv(EnvHome, dir)
	return nil
}

// Path returns the directories listed in PATH.
func (c *Context) Path() []string {
	value := c.Env.Getenv(EnvPath)
	if value == "" {
		return nil
	}
	return filepath.SplitList(value)
}

// SetPath replaces PATH with the given directories.
func (c *Context) SetPath(dirs []string) {
	c.Env.Setenv(EnvPath, strings.Join(dirs, string(os.PathListSeparator)))
}

// SetPathString replaces PATH with a list of directories already joined with
// the host path list separator.
func (c *Context) SetPathString(value string) {
	c.Env.Setenv(EnvPath, value)
}

func (c *Context) resolvePath(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.Cwd(), path)
	}
	return filepath.Clean(path)
}

// SetArgs binds the positional parameters: 0 to name, 1..N to args, # to
// the count and * to the arguments joined with spaces. Previous positional
// parameters are removed.
func (c *Context) SetArgs(name string, args []string) {
	for _, key := range c.Variables.Keys() {
		if isPositional(key) {
			c.Variables.Unsetenv(key)
		}
	}

	c.Variables.Setenv("0", name)
	for i, arg := range args {
		c.Variables.Setenv(strconv.Itoa(i+1), arg)
	}
	c.Variables.Setenv(VarArgCount, strconv.Itoa(len(args)))
	c.Variables.Setenv(VarArgs, strings.Join(args, " "))
}

// positionalSnapshot captures the positional parameters so they can be
// restored after a function call.
func (c *Context) positionalSnapshot() map[string]string {
	out := make(map[string]string)
	for _, key := range c.Variables.Keys() {
		if isPositional(key) {
			out[key] = c.Variables.Getenv(key)
		}
	}
	return out
}

func (c *Context) restorePositional(snapshot map[string]string) {
	for _, key := range c.Variables.Keys() {
		if isPositional(key) {
			c.Variables.Unsetenv(key)
		}
	}
	for key, value := range snapshot {
		c.Variables.Setenv(key, value)
	}
}

func isPositional(key string) bool {
	if key == VarArgCount || key == VarArgs {
		return true
	}
	_, err := strconv.Atoi(key)
	return err == nil
}

// DefineFunction binds body to name, replacing any earlier definition.
func (c *Context) DefineFunction(name string, body ast.Statement) {
	c.functions[name] = body
}

// Function looks up a user defined function.
func (c *Context) Function(name string) (ast.Statement, bool) {
	body, ok := c.functions[name]
	return body, ok
}

// OnProcessStart registers a listener called before a command runs.
func (c *Context) OnProcessStart(listener ProcessListener) {
	c.startListeners = append(c.startListeners, listener)
}

// OnProcessFinish registers a listener called after a command finished.
func (c *Context) OnProcessFinish(listener ProcessListener) {
	c.finishListeners = append(c.finishListeners, listener)
}

func (c *Context) emit(listeners []ProcessListener, event ProcessEvent) {
	for _, listener := range listeners {
		listener(event)
	}
}
