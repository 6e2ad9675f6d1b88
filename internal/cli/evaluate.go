package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openpaws/synthfeedback/internal/model"
	"github.com/openpaws/synthfeedback/internal/persona"
	"github.com/openpaws/synthfeedback/internal/pipeline"
	"github.com/openpaws/synthfeedback/internal/storage"
)

var evaluateOutDir string

// evaluateCmd represents the evaluate command
var evaluateCmd = &cobra.Command{
	Use:   "evaluate <task.json>",
	Short: "Evaluate one local task file",
	Long: `Evaluate runs a single local task file through the full pipeline with a
freshly generated persona and prints the annotation record. Nothing is read
from or written to a bucket unless --out-dir is given.

Example:
  synthfeedback evaluate task.json
  synthfeedback evaluate task.json --out-dir ./records`,
	Args: cobra.ExactArgs(1),
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringVar(&evaluateOutDir, "out-dir", "", "also write the record into this directory")
}

func runEvaluate(cmd *cobra.Command, args []string) (err error) {
	ctx := cmd.Context()
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read task: %w", err)
	}
	task, err := model.DecodeTask(filepath.Base(path), data)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var sink storage.Sink = discard{}
	if evaluateOutDir != "" {
		dir, err := storage.NewDir(evaluateOutDir)
		if err != nil {
			return err
		}
		sink = dir
	}

	a, err := newApp(ctx, cfg, sink, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := a.close(); closeErr != nil && err == nil {
			err = fmt.Errorf("shutdown: %w", closeErr)
		}
	}()

	who, seq := persona.NewRoundRobin(persona.NewGenerator(nil).Generate(1)).Next()
	task.Seq = seq

	out := a.processor.Process(ctx, task, who)
	if !out.Written() {
		return fmt.Errorf("task skipped at %s (%s): %w", out.Stage, out.Reason, out.Err)
	}

	rendered, err := pipeline.EncodeRecord(*out.Record)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(rendered))
	return nil
}

// discard is a Sink that keeps nothing.
type discard struct{}

func (discard) Write(context.Context, string, []byte) error { return nil }
