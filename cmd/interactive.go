package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/juokse/core/history"
	"github.com/josephlewis42/juokse/core/interp"
	"github.com/josephlewis42/juokse/core/logger"
	"github.com/spf13/cobra"
)

// historyLimit is the number of stored lines offered for recall.
const historyLimit = 500

// repl reads and runs one line at a time.
type repl struct {
	ctx       *interp.Context
	formatter *logger.Formatter
	history   *history.Store
	errOut    io.Writer

	line   int
	quit   bool
	status int
}

func newREPL(ctx *interp.Context, formatter *logger.Formatter, store *history.Store, errOut io.Writer) *repl {
	return &repl{
		ctx:       ctx,
		formatter: formatter,
		history:   store,
		errOut:    errOut,
		line:      1,
	}
}

func (r *repl) prompt() string {
	return fmt.Sprintf("juokse:%d> ", r.line)
}

// eval runs a single line of input. Errors are reported and don't end the
// session, exit does.
func (r *repl) eval(source string) {
	lineNumber := r.line
	r.line++

	if strings.TrimSpace(source) == "" {
		return
	}
	r.remember(source)

	statements, err := interp.CompileAt("<stdin>", lineNumber, source)
	if err != nil {
		fmt.Fprintln(r.errOut, err)
		return
	}

	err = r.ctx.Run(statements)

	var exitErr *interp.ExitError
	switch {
	case errors.As(err, &exitErr):
		r.quit = true
		r.status = exitErr.Status
	case err != nil:
		r.formatter.Error(r.errOut, err)
	}
}

func (r *repl) remember(line string) {
	if r.history == nil {
		return
	}
	if _, err := r.history.AddCmd(line); err != nil {
		log.Printf("Couldn't save history: %v", err)
	}
}

func (r *repl) run(rl *readline.Instance) int {
	for !r.quit {
		rl.SetPrompt(r.prompt())
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			return r.status // Input closed, quit.

		case err == readline.ErrInterrupt:
			// Interrupt clears line.
			continue

		case err != nil:
			log.Printf("Error readline: %v", err)
			continue

		default:
			if strings.TrimSpace(line) != "" {
				rl.SaveHistory(line)
			}
			r.eval(line)
		}
	}
	return r.status
}

func openHistory(path string) (*history.Store, []string) {
	if path == "" {
		return nil, nil
	}

	store, err := history.Open(path)
	if err != nil {
		log.Printf("Couldn't open history, it won't be saved: %v", err)
		return nil, nil
	}

	cmds, err := store.Last(historyLimit)
	if err != nil {
		log.Printf("Couldn't read history: %v", err)
	}

	var lines []string
	for _, c := range cmds {
		lines = append(lines, c.Text)
	}
	return store, lines
}

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"repl"},
	Short:   "Run juokse statements line by line.",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		sess, err := newSession(cmd, cfg)
		if err != nil {
			return err
		}
		defer sess.Close()

		store, lines := openHistory(cfg.HistoryPath())
		if store != nil {
			defer store.Close()
		}

		rl, err := readline.NewEx(&readline.Config{
			Stdin:                  readline.NewCancelableStdin(cmd.InOrStdin()),
			Stdout:                 cmd.OutOrStdout(),
			Stderr:                 cmd.ErrOrStderr(),
			HistoryLimit:           historyLimit,
			DisableAutoSaveHistory: true,
		})
		if err != nil {
			return err
		}
		defer rl.Close()

		for _, line := range lines {
			rl.SaveHistory(line)
		}

		status := newREPL(sess.ctx, sess.formatter, store, cmd.ErrOrStderr()).run(rl)
		if status != interp.StatusOK {
			return &exitStatusError{status: status}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
