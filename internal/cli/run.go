package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/openpaws/synthfeedback/internal/persona"
	"github.com/openpaws/synthfeedback/internal/worker"
)

var runOnce bool

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Poll the input bucket and evaluate new tasks",
	Long: `Run generates a persona pool, then polls the input bucket forever. Every
pending .json task is evaluated by the next persona in turn and the resulting
annotation record is written to the output bucket under the same name.

Buckets may be gs://bucket/prefix, a bare bucket name, or a local directory
(file:///path or any path containing a slash).

Example:
  synthfeedback run
  synthfeedback run --dry-run --once
  SYNTHFEEDBACK_INPUT_BUCKET=gs://tasks SYNTHFEEDBACK_OUTPUT_BUCKET=gs://labels synthfeedback run`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("dry-run", false, "print records to stdout instead of writing them")
	runCmd.Flags().Int("personas", 5, "number of personas to generate")
	runCmd.Flags().String("input", "", "input bucket or directory")
	runCmd.Flags().String("output", "", "output bucket or directory")
	runCmd.Flags().BoolVar(&runOnce, "once", false, "poll a single time and exit")

	_ = viper.BindPFlag("dry_run", runCmd.Flags().Lookup("dry-run"))
	_ = viper.BindPFlag("personas.count", runCmd.Flags().Lookup("personas"))
	_ = viper.BindPFlag("input_bucket", runCmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("output_bucket", runCmd.Flags().Lookup("output"))
}

func runRun(cmd *cobra.Command, args []string) (err error) {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.InputBucket == "" {
		return fmt.Errorf("no input bucket configured (set input_bucket or SYNTHFEEDBACK_INPUT_BUCKET)")
	}
	if cfg.OutputBucket == "" && !cfg.DryRun {
		return fmt.Errorf("no output bucket configured (set output_bucket or use --dry-run)")
	}
	if cfg.Personas.Count < 1 {
		return fmt.Errorf("personas must be at least 1, got %d", cfg.Personas.Count)
	}

	a, err := newApp(ctx, cfg, nil, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := a.close(); closeErr != nil && err == nil {
			err = fmt.Errorf("shutdown: %w", closeErr)
		}
	}()

	source, err := a.openStore(ctx, cfg.InputBucket)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	led, err := a.openLedger()
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}

	pool := persona.NewGenerator(nil).Generate(cfg.Personas.Count)
	for _, p := range pool {
		a.logger.Debug("Generated persona",
			zap.Int("persona_id", p.ID),
			zap.String("species", p.Species),
			zap.String("role", p.Role),
		)
	}

	opts := worker.Options{
		Suffix:        cfg.Poll.Suffix,
		IdleInterval:  cfg.Poll.IdleInterval,
		BatchInterval: cfg.Poll.BatchInterval,
		Once:          runOnce,
	}
	if cfg.DryRun {
		opts.Limit = cfg.DryRunMaxFiles
	}

	poller := worker.NewPoller(worker.Deps{
		Processor: a.processor,
		Source:    source,
		Ledger:    led,
		Personas:  persona.NewRoundRobin(pool),
		Logger:    a.logger,
		Metrics:   a.telemetry.Metrics,
	}, opts)

	return poller.Run(ctx)
}
