package interp

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/josephlewis42/juokse/core/ast"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_SetCwd(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.fs.MkdirAll("/work/sub", 0755))
	require.NoError(t, env.fs.MkdirAll("/other", 0755))
	env.touch(t, "/work/file")

	t.Run("dash without OLDPWD", func(t *testing.T) {
		require.NoError(t, env.ctx.SetCwd("-"))
		assert.Equal(t, "/work", env.ctx.Cwd())
	})

	t.Run("relative", func(t *testing.T) {
		require.NoError(t, env.ctx.SetCwd("sub"))
		assert.Equal(t, "/work/sub", env.ctx.Cwd())
		assert.Equal(t, "/work", env.ctx.Env.Getenv(EnvOldPWD))
	})

	t.Run("dash swaps", func(t *testing.T) {
		require.NoError(t, env.ctx.SetCwd("-"))
		assert.Equal(t, "/work", env.ctx.Cwd())
		assert.Equal(t, "/work/sub", env.ctx.Env.Getenv(EnvOldPWD))

		require.NoError(t, env.ctx.SetCwd("-"))
		assert.Equal(t, "/work/sub", env.ctx.Cwd())
	})

	t.Run("absolute", func(t *testing.T) {
		require.NoError(t, env.ctx.SetCwd("/other"))
		assert.Equal(t, "/other", env.ctx.Cwd())
		assert.Equal(t, "/other", env.ctx.Env.Getenv(EnvPWD))
	})

	t.Run("missing directory", func(t *testing.T) {
		err := env.ctx.SetCwd("/nowhere")
		assert.EqualError(t, err, "'/nowhere' is not a valid directory.")
		assert.Equal(t, "/other", env.ctx.Cwd())
	})

	t.Run("file", func(t *testing.T) {
		assert.Error(t, env.ctx.SetCwd("/work/file"))
		assert.Equal(t, "/other", env.ctx.Cwd())
	})
}

func TestContext_SetHome(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.fs.MkdirAll("/home/juokse", 0755))

	require.NoError(t, env.ctx.SetHome("/home/juokse"))
	assert.Equal(t, "/home/juokse", env.ctx.Home())

	assert.Error(t, env.ctx.SetHome("/home/nobody"))
	assert.Equal(t, "/home/juokse", env.ctx.Home())
}

func TestContext_Path(t *testing.T) {
	env := newTestEnv(t)
	assert.Empty(t, env.ctx.Path())

	env.ctx.SetPath([]string{"/bin", "/usr/bin"})
	assert.Equal(t, []string{"/bin", "/usr/bin"}, env.ctx.Path())

	env.ctx.SetPathString("/opt/bin")
	assert.Equal(t, []string{"/opt/bin"}, env.ctx.Path())
}

func TestContext_SetArgs(t *testing.T) {
	env := newTestEnv(t)
	env.ctx.SetArgs("script", []string{"a", "b", "c"})
	env.ctx.SetArgs("other", []string{"x"})

	vars := env.ctx.Variables
	assert.Equal(t, "other", vars.Getenv("0"))
	assert.Equal(t, "x", vars.Getenv("1"))
	assert.Equal(t, "1", vars.Getenv("#"))
	assert.Equal(t, "x", vars.Getenv("*"))

	_, ok := vars.LookupEnv("2")
	assert.False(t, ok)
}

func TestContext_RedirectStdout(t *testing.T) {
	env := newTestEnv(t)

	var buf bytes.Buffer
	err := env.ctx.RedirectStdout(&buf, func() error {
		_, err := env.ctx.Stdout().Write([]byte("captured"))
		require.NoError(t, err)
		return errors.New("failed")
	})

	assert.EqualError(t, err, "failed")
	assert.Equal(t, "captured", buf.String())
	assert.Same(t, env.stdout, env.ctx.Stdout())

	assert.Panics(t, func() {
		_ = env.ctx.RedirectStdout(&buf, func() error {
			panic("boom")
		})
	})
	assert.Same(t, env.stdout, env.ctx.Stdout())
}

func TestContext_ResolveExecutable(t *testing.T) {
	env := newTestEnv(t)
	fs := env.fs
	for _, path := range []string{"/bin/echo", "/bin/ls", "/bin/tool", "/usr/bin/tool"} {
		require.NoError(t, afero.WriteFile(fs, path, []byte("#!/bin/sh"), 0755))
	}
	require.NoError(t, afero.WriteFile(fs, "/bin/notes", nil, 0644))
	env.ctx.SetPath([]string{"/bin", "/usr/bin"})
	env.ctx.DefineFunction("ls", &ast.Pass{})
	env.ctx.DefineFunction("echo", &ast.Pass{})

	t.Run("builtin shadows PATH and functions", func(t *testing.T) {
		exe, ok := env.ctx.ResolveExecutable("echo")
		require.True(t, ok)
		assert.NotNil(t, exe.Builtin)
		assert.Nil(t, exe.Function)
		assert.Empty(t, exe.Path)
	})

	t.Run("function shadows PATH", func(t *testing.T) {
		exe, ok := env.ctx.ResolveExecutable("ls")
		require.True(t, ok)
		assert.NotNil(t, exe.Function)
		assert.Empty(t, exe.Path)
	})

	t.Run("first PATH entry wins", func(t *testing.T) {
		exe, ok := env.ctx.ResolveExecutable("tool")
		require.True(t, ok)
		assert.Equal(t, "/bin/tool", exe.Path)
	})

	t.Run("absolute path", func(t *testing.T) {
		exe, ok := env.ctx.ResolveExecutable("/usr/bin/tool")
		require.True(t, ok)
		assert.Equal(t, "/usr/bin/tool", exe.Path)
	})

	t.Run("absolute path skips builtins", func(t *testing.T) {
		_, ok := env.ctx.ResolveExecutable("/usr/bin/echo")
		assert.False(t, ok)
	})

	t.Run("not executable", func(t *testing.T) {
		_, ok := env.ctx.ResolveExecutable("notes")
		assert.False(t, ok)
	})

	t.Run("missing", func(t *testing.T) {
		_, ok := env.ctx.ResolveExecutable("missing")
		assert.False(t, ok)
	})
}

func TestContext_Execute(t *testing.T) {
	env := newTestEnv(t)
	env.ctx.Builtins["status"] = BuiltinFunc(func(c *Context, name string, args []string) (Result, error) {
		return Completed(len(args)), nil
	})

	var started, finished []ProcessEvent
	env.ctx.OnProcessStart(func(e ProcessEvent) { started = append(started, e) })
	env.ctx.OnProcessFinish(func(e ProcessEvent) { finished = append(finished, e) })

	result, err := env.ctx.Execute("status", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Status)
	assert.Equal(t, "2", env.ctx.Variables.Getenv(VarStatus))

	assert.Equal(t, []ProcessEvent{{Executable: "status", Args: []string{"a", "b"}}}, started)
	assert.Equal(t, []ProcessEvent{{Executable: "status", Args: []string{"a", "b"}, Status: 2}}, finished)

	t.Run("not found", func(t *testing.T) {
		_, err := env.ctx.Execute("missing")

		var notFound *NotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "missing", notFound.Name)
		assert.Len(t, started, 1)
	})
}

func TestContext_ExecuteFunction(t *testing.T) {
	env := newTestEnv(t)
	statements, err := Compile("test", "def show:\n  echo $0 $*\n")
	require.NoError(t, err)
	require.NoError(t, env.ctx.Run(statements))

	result, err := env.ctx.Execute("show", "x", "y")
	require.NoError(t, err)
	assert.Equal(t, StatusOK, result.Status)
	assert.Equal(t, "show x y", strings.TrimSpace(env.stdout.String()))
	assert.Equal(t, "0", env.ctx.Variables.Getenv(VarStatus))
}
