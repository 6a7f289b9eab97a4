package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/josephlewis42/juokse/commands"
	"github.com/josephlewis42/juokse/core/config"
	"github.com/josephlewis42/juokse/core/interp"
	"github.com/josephlewis42/juokse/core/logger"
	"github.com/josephlewis42/juokse/core/vos"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// session is an interpreter context wired to the terminal of a command.
type session struct {
	ctx       *interp.Context
	formatter *logger.Formatter
	closers   []io.Closer
}

func newSession(cmd *cobra.Command, cfg *config.Configuration) (*session, error) {
	out := cmd.OutOrStdout()

	formatter := logger.NewFormatter(logger.FormatterOptions{
		TimeStampFormat: cfg.TimeStampFormat,
		StripANSI:       cfg.StripANSI,
		Color:           colorEnabled(cfg.Color, out),
	})

	files := vos.NewVIOAdapter(cmd.InOrStdin(), formatter.Stdout(out), formatter.Stderr(cmd.ErrOrStderr()))
	ctx := interp.NewContext(afero.NewOsFs(), commands.Builtins(), files)

	if err := vos.CopyEnv(ctx.Env, os.Environ()); err != nil {
		return nil, err
	}
	if wd, err := os.Getwd(); err == nil {
		ctx.Env.Setenv(interp.EnvPWD, wd)
	}
	for key, value := range cfg.Environment {
		ctx.Env.Setenv(key, value)
	}
	if len(cfg.Path) > 0 {
		ctx.SetPath(append(append([]string{}, cfg.Path...), ctx.Path()...))
	}

	ctx.OnProcessStart(func(pe interp.ProcessEvent) {
		formatter.Command(out, strings.Join(append([]string{pe.Executable}, pe.Args...), " "))
	})

	sess := &session{ctx: ctx, formatter: formatter}

	if path := cfg.EventLogPath(); path != "" {
		fd, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return nil, err
		}
		sess.closers = append(sess.closers, fd)
		logger.NewJSONLinesLogRecorder(fd).NewSession().Attach(ctx)
	}

	return sess, nil
}

// Close releases the files opened for the session.
func (s *session) Close() error {
	var firstErr error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// colorEnabled reports whether output to w should be colored.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	fd, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(fd.Fd()) || isatty.IsCygwinTerminal(fd.Fd())
}
