package commands

import (
	"testing"

	"github.com/josephlewis42/juokse/core/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPwd(t *testing.T) {
	out := runBuiltin(t, "pwd")
	assert.Equal(t, interp.StatusOK, out.status)
	assert.Equal(t, "/home/juokse\n", out.stdout)

	out = runBuiltin(t, "pwd", "-L")
	assert.Equal(t, interp.StatusInvalidArgs, out.status)
	assert.Equal(t, "pwd: Too many arguments\n", out.stderr)
}

func TestCd(t *testing.T) {
	env := newTestContext(t)
	require.NoError(t, env.fs.MkdirAll("/tmp/nested", 0755))

	steps := []struct {
		args       []string
		wantStatus int
		wantCwd    string
		wantStderr string
	}{
		{[]string{"-"}, interp.StatusOK, "/home/juokse", ""},
		{[]string{"/tmp"}, interp.StatusOK, "/tmp", ""},
		{[]string{"nested"}, interp.StatusOK, "/tmp/nested", ""},
		{[]string{".."}, interp.StatusOK, "/tmp", ""},
		{[]string{"-"}, interp.StatusOK, "/tmp/nested", ""},
		{nil, interp.StatusOK, "/home/juokse", ""},
		{[]string{"/missing"}, interp.StatusError, "/home/juokse", "Directory '/missing' does not exist\n"},
		{[]string{"a", "b"}, interp.StatusInvalidArgs, "/home/juokse", "cd: Too many arguments\n"},
	}

	for _, step := range steps {
		out := env.run(t, "cd", step.args...)
		assert.Equal(t, step.wantStatus, out.status, "cd %v", step.args)
		assert.Equal(t, step.wantCwd, env.ctx.Cwd(), "cd %v", step.args)
		assert.Equal(t, step.wantStderr, out.stderr, "cd %v", step.args)
	}
}
