package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/openpaws/synthfeedback/internal/ledger"
)

var (
	ledgerStatus string
	ledgerLimit  int
	ledgerJSON   bool
)

// ledgerCmd represents the ledger command
var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Inspect which input objects have been processed",
	Long: `The ledger records the outcome of every task the worker attempted. Written
tasks are never evaluated again; skipped ones are retried until they reach
consume.max_attempts and are parked.`,
}

var ledgerStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count ledger entries per status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger.SQLite) error {
			stats, err := l.Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "written: %d\nskipped: %d\nparked:  %d\n", stats.Written, stats.Skipped, stats.Parked)
			return nil
		})
	},
}

var ledgerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ledger entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger.SQLite) error {
			entries, err := l.Entries(cmd.Context(), ledger.Status(ledgerStatus), ledgerLimit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if ledgerJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSTATUS\tATTEMPTS\tUPDATED\tLAST ERROR")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", e.Name, e.Status, e.Attempts, e.UpdatedAt.Format("2006-01-02 15:04:05"), e.LastError)
			}
			return w.Flush()
		})
	},
}

var ledgerResetCmd = &cobra.Command{
	Use:   "reset <object>",
	Short: "Forget an object so the next poll processes it again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLedger(func(l *ledger.SQLite) error {
			found, err := l.Reset(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("no ledger entry for %s", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Reset %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(ledgerCmd)
	ledgerCmd.AddCommand(ledgerStatsCmd)
	ledgerCmd.AddCommand(ledgerListCmd)
	ledgerCmd.AddCommand(ledgerResetCmd)

	ledgerListCmd.Flags().StringVar(&ledgerStatus, "status", "", "only entries with this status (written, skipped, parked)")
	ledgerListCmd.Flags().IntVar(&ledgerLimit, "limit", 50, "maximum entries to list, 0 for all")
	ledgerListCmd.Flags().BoolVar(&ledgerJSON, "json", false, "print JSON")
}

func withLedger(fn func(*ledger.SQLite) error) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	l, err := ledger.OpenSQLite(cfg.Consume.LedgerPath, cfg.Consume.MaxAttempts, nil)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := l.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return fn(l)
}
