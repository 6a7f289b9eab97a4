package interp

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/josephlewis42/juokse/core/vos"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// testBuiltins is a minimal command table so the interpreter can be tested
// without the commands package.
func testBuiltins() Builtins {
	signal := func(kind SignalKind) BuiltinFunc {
		return func(c *Context, name string, args []string) (Result, error) {
			n := 1
			if len(args) > 0 {
				var err error
				if n, err = strconv.Atoi(args[0]); err != nil {
					return Completed(StatusError), nil
				}
			}
			return Unwinding(kind, n), nil
		}
	}

	return Builtins{
		"true": BuiltinFunc(func(*Context, string, []string) (Result, error) {
			return Completed(StatusOK), nil
		}),
		"false": BuiltinFunc(func(*Context, string, []string) (Result, error) {
			return Completed(StatusError), nil
		}),
		"echo": BuiltinFunc(func(c *Context, name string, args []string) (Result, error) {
			fmt.Fprintln(c.Stdout(), strings.Join(args, " "))
			return Completed(StatusOK), nil
		}),
		"eq": BuiltinFunc(func(c *Context, name string, args []string) (Result, error) {
			if len(args) == 2 && args[0] == args[1] {
				return Completed(StatusOK), nil
			}
			return Completed(StatusError), nil
		}),
		"quit": BuiltinFunc(func(c *Context, name string, args []string) (Result, error) {
			status, _ := strconv.Atoi(args[0])
			return Completed(status), &ExitError{Status: status}
		}),
		"break":    signal(SignalBreak),
		"continue": signal(SignalContinue),
		"return":   signal(SignalReturn),
	}
}

type testEnv struct {
	ctx    *Context
	fs     afero.Fs
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv creates a context over an in-memory file system whose working
// directory is /work.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/work", 0755))

	var stdout, stderr bytes.Buffer
	ctx := NewContext(fs, testBuiltins(), vos.NewVIOAdapter(nil, &stdout, &stderr))
	ctx.Env.Setenv(EnvPWD, "/work")

	return &testEnv{ctx: ctx, fs: fs, stdout: &stdout, stderr: &stderr}
}

func (e *testEnv) run(t *testing.T, source string) error {
	t.Helper()

	statements, err := Compile("test", source)
	require.NoError(t, err)
	return e.ctx.Run(statements)
}

func (e *testEnv) touch(t *testing.T, paths ...string) {
	t.Helper()

	for _, path := range paths {
		require.NoError(t, afero.WriteFile(e.fs, path, nil, 0644))
	}
}
