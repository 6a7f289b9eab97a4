package cmd

import (
	"errors"
	"fmt"

	"github.com/josephlewis42/juokse/core/history"
	"github.com/spf13/cobra"
)

var historyCount int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the lines entered in interactive sessions.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.HistoryPath() == "" {
			return errors.New("history is disabled in the configuration")
		}

		store, err := history.Open(cfg.HistoryPath())
		if err != nil {
			return err
		}
		defer store.Close()

		cmds, err := store.Last(historyCount)
		if err != nil {
			return err
		}
		for _, c := range cmds {
			fmt.Fprintf(cmd.OutOrStdout(), "%5d  %s\n", c.Seq, c.Text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyCount, "lines", "n", historyLimit, "Number of lines to show.")
}
