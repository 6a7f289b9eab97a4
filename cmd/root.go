package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	shlex "github.com/anmitsu/go-shlex"
	"github.com/josephlewis42/juokse/core/config"
	"github.com/josephlewis42/juokse/core/interp"
	"github.com/spf13/cobra"
)

var (
	cfgPath         string
	stripANSI       bool
	timeStampFormat string
	noColor         bool
	eventLogPath    string
	command         string
)

// exitStatusError ends the program with the given status. The reason was
// already reported to the user.
type exitStatusError struct {
	status int
}

func (e *exitStatusError) Error() string {
	return fmt.Sprintf("exit status %d", e.status)
}

// loadConfig reads the configuration and applies the command line overrides.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	configuration, err := config.LoadOrDefault(cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Couldn't load config: did you run init?")
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("strip-ansi") {
		configuration.StripANSI = stripANSI
	}
	if flags.Changed("time-stamp-format") {
		configuration.TimeStampFormat = timeStampFormat
	}
	if flags.Changed("event-log") {
		configuration.EventLog = eventLogPath
	}
	if noColor {
		configuration.Color = config.ColorNever
	}

	return configuration, nil
}

// rootCmd runs a script, read from a file or stdin.
var rootCmd = &cobra.Command{
	Use:   "juokse [flags] [file|-] [args...]",
	Short: "Indentation based shell scripting",
	Long: `Runs a juokse script from the given file, or stdin if the file is
omitted or "-". Remaining arguments are available to the script as $1, $2...`,
	Version:       version,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		name, source, scriptArgs, err := readScript(cmd, args)
		if err != nil {
			return err
		}

		statements, err := interp.Compile(name, source)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			return &exitStatusError{status: interp.StatusError}
		}

		sess, err := newSession(cmd, cfg)
		if err != nil {
			return err
		}
		defer sess.Close()

		sess.ctx.SetArgs(name, scriptArgs)
		err = sess.ctx.Run(statements)

		var exitErr *interp.ExitError
		switch {
		case errors.As(err, &exitErr) && exitErr.Status == interp.StatusOK:
			return nil
		case errors.As(err, &exitErr):
			return &exitStatusError{status: exitErr.Status}
		case err != nil:
			sess.formatter.Error(cmd.ErrOrStderr(), err)
			return &exitStatusError{status: interp.StatusError}
		}
		return nil
	},
}

// readScript returns the name, source and arguments of the script to run.
func readScript(cmd *cobra.Command, args []string) (string, string, []string, error) {
	switch {
	case cmd.Flags().Changed("command"):
		return "<command>", command, args, nil

	case len(args) == 0 || args[0] == "-":
		source, err := io.ReadAll(cmd.InOrStdin())
		if len(args) > 0 {
			args = args[1:]
		}
		return "<stdin>", string(source), args, err

	default:
		source, err := os.ReadFile(args[0])
		return args[0], string(source), args[1:], err
	}
}

// splitShebangArgs splits the options of an interpreter line such as
// "#!/usr/bin/juokse -s -t HH:mm", which the kernel passes as a single
// argument.
func splitShebangArgs(args []string) []string {
	if len(args) == 0 || !strings.HasPrefix(args[0], "-") || !strings.ContainsAny(args[0], " \t") {
		return args
	}

	options, err := shlex.Split(args[0], true)
	if err != nil {
		return args
	}
	return append(options, args[1:]...)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	log.SetPrefix("[juokse] ")
	log.SetFlags(0)

	rootCmd.SetArgs(splitShebangArgs(os.Args[1:]))
	err := rootCmd.Execute()

	var exitErr *exitStatusError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.status)
	}
	cobra.CheckErr(err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config file, or a directory holding "+config.ConfigurationName)
	rootCmd.PersistentFlags().BoolVarP(&stripANSI, "strip-ansi", "s", false, "Strip ANSI escape codes from process outputs.")
	rootCmd.PersistentFlags().StringVarP(&timeStampFormat, "time-stamp-format", "t", "", "Format of the time stamps, empty to disable. (e.g. HH:mm:ss)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output.")
	rootCmd.PersistentFlags().StringVar(&eventLogPath, "event-log", "", "Append process events to this JSON lines file.")

	rootCmd.Flags().StringVarP(&command, "command", "c", "", "Run the given script instead of reading a file.")
	// Options after the script name belong to the script.
	rootCmd.Flags().SetInterspersed(false)
}
