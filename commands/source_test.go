package commands

import (
	"testing"

	"github.com/josephlewis42/juokse/core/interp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource(t *testing.T) {
	env := newTestContext(t)
	require.NoError(t, afero.WriteFile(env.fs, "/home/juokse/lib.jk", []byte(
		"greeting = hello\n"+
			"def greet:\n"+
			"  echo $greeting $1\n"), 0644))

	out := env.run(t, "source", "lib.jk")
	assert.Equal(t, interp.StatusOK, out.status)
	assert.Equal(t, "hello", env.ctx.Variables.Getenv("greeting"))

	out = env.run(t, "greet", "world")
	assert.Equal(t, "hello world\n", out.stdout)

	out = env.run(t, ".", "/home/juokse/lib.jk")
	assert.Equal(t, interp.StatusOK, out.status)
}

func TestSource_errors(t *testing.T) {
	env := newTestContext(t)
	require.NoError(t, afero.WriteFile(env.fs, "/tmp/bad.jk", []byte("echo 'open\n"), 0644))
	require.NoError(t, afero.WriteFile(env.fs, "/tmp/fails.jk", []byte("echo one\nfalse\necho two\n"), 0644))

	out := env.run(t, "source", "missing.jk")
	assert.Equal(t, interp.StatusError, out.status)
	assert.Contains(t, out.stderr, "missing.jk: ")

	_, err := env.ctx.Execute("source", "/tmp/bad.jk")
	assert.EqualError(t, err, "/tmp/bad.jk:1: Unexpected end of input inside string literal: Missing `''.")

	env.stdout.Reset()
	_, err = env.ctx.Execute(".", "/tmp/fails.jk")
	assert.EqualError(t, err, "/tmp/fails.jk:2: 'false' exited with status 1")
	assert.Equal(t, "one\n", env.stdout.String())

	out = env.run(t, "source")
	assert.Equal(t, interp.StatusInvalidArgs, out.status)
}

func TestSource_propagatesSignals(t *testing.T) {
	env := newTestContext(t)
	require.NoError(t, afero.WriteFile(env.fs, "/tmp/stop.jk", []byte("echo stopping\nbreak\necho unreachable\n"), 0644))

	statements, err := interp.Compile("test", "for x in a b:\n  . /tmp/stop.jk\necho done\n")
	require.NoError(t, err)
	require.NoError(t, env.ctx.Run(statements))
	assert.Equal(t, "stopping\ndone\n", env.stdout.String())
}
