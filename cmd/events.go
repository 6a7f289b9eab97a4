package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/josephlewis42/juokse/core/logger"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Explore the process event log.",
}

// openEventLog opens the log given as an argument or the configured one.
func openEventLog(cmd *cobra.Command, args []string) (*os.File, error) {
	if len(args) > 0 {
		return os.Open(args[0])
	}

	config, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	path := config.EventLogPath()
	if path == "" {
		return nil, errors.New("no event log configured, pass a file or set --event-log")
	}
	return os.Open(path)
}

var reportCommand = &cobra.Command{
	Use:   "report [FILE]",
	Short: "Show a report of events.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		fd, err := openEventLog(cmd, args)
		if err != nil {
			return err
		}
		defer fd.Close()

		var report logger.Report
		if err := logger.ReadJSONLinesLog(fd, report.Update); err != nil {
			return err
		}

		out, err := yaml.Marshal(report)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		return nil
	},
}

var listCommand = &cobra.Command{
	Use:   "list [FILE]",
	Short: "Print the events one per line.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		fd, err := openEventLog(cmd, args)
		if err != nil {
			return err
		}
		defer fd.Close()

		return logger.ReadJSONLinesLog(fd, func(le *logger.LogEntry) {
			fmt.Fprintln(cmd.OutOrStdout(), formatEvent(le))
		})
	},
}

func formatEvent(le *logger.LogEntry) string {
	fields := []string{
		time.UnixMicro(le.TimestampMicros).UTC().Format(time.RFC3339),
		le.Event,
		strings.Join(append([]string{le.Executable}, le.Args...), " "),
	}

	if le.Event == logger.EventProcessFinish {
		fields = append(fields, fmt.Sprintf("status=%d", le.Status))
		if le.Signal != "" {
			fields = append(fields, "signal="+le.Signal)
		}
	}
	return strings.Join(fields, "\t")
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(reportCommand)
	eventsCmd.AddCommand(listCommand)
}
