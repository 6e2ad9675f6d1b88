package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/openpaws/synthfeedback/internal/annotation"
	"github.com/openpaws/synthfeedback/internal/cache"
	"github.com/openpaws/synthfeedback/internal/evaluator"
	"github.com/openpaws/synthfeedback/internal/ledger"
	"github.com/openpaws/synthfeedback/internal/llm"
	"github.com/openpaws/synthfeedback/internal/logging"
	"github.com/openpaws/synthfeedback/internal/model"
	"github.com/openpaws/synthfeedback/internal/pipeline"
	"github.com/openpaws/synthfeedback/internal/storage"
	"github.com/openpaws/synthfeedback/internal/telemetry"
	"github.com/openpaws/synthfeedback/internal/worker"
)

// app holds the long-lived collaborators shared by commands.
type app struct {
	cfg       *model.Config
	logger    *zap.Logger
	telemetry *telemetry.Telemetry
	provider  llm.Provider
	pages     cache.Cache
	processor *pipeline.Processor
	closers   []func() error
}

// newApp builds the processing pipeline. Records go to sink when it is
// non-nil, to stdout in dry-run mode, and to the output bucket otherwise.
func newApp(ctx context.Context, cfg *model.Config, sink storage.Sink, stdout io.Writer) (_ *app, err error) {
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger}
	defer func() {
		if err != nil {
			a.close()
		}
	}()

	tel, err := telemetry.Init(ctx, cfg.Telemetry)
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}
	a.telemetry = tel

	policy, err := evaluator.ParseRatingPolicy(cfg.Validation.RatingPolicy)
	if err != nil {
		return nil, err
	}

	provider, err := llm.NewProvider(ctx, llm.ConfigFromModel(cfg))
	if err != nil {
		return nil, fmt.Errorf("create provider: %w", err)
	}
	name := provider.Name()
	provider = llm.WithRateLimit(provider, cfg.LLM.RequestsPerMinute)
	provider = llm.WithRetry(provider, cfg.Retry, func(err error, wait time.Duration) {
		logger.Warn("Model call failed, retrying",
			zap.String("provider", name),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
		tel.Metrics.RecordRetry(ctx, name)
	})
	a.provider = provider

	limiter := worker.NewLimiter(cfg.Web.RequestsPerSecond, cfg.Web.Burst)
	fetcher := pipeline.NewFetcher(cfg.Web, limiter)
	a.pages = cache.New(cfg.Cache)
	pages := pipeline.NewWebExtractor(fetcher, a.pages, 0, logger, tel.Metrics)

	if sink == nil {
		if cfg.DryRun {
			sink = storage.NewConsole(stdout)
		} else {
			out, err := a.openStore(ctx, cfg.OutputBucket)
			if err != nil {
				return nil, fmt.Errorf("open output: %w", err)
			}
			sink = out
		}
	}

	a.processor = pipeline.NewProcessor(
		pipeline.NewNormalizer(pages, cfg.Web.MaxChars, logger),
		evaluator.NewClient(provider, cfg.LLM.MaxTokens, logger, tel.Metrics),
		evaluator.NewInterpreter(policy),
		annotation.NewAssembler(cfg.Annotation),
		sink,
		logger,
		tel.Metrics,
	)

	logger.Info("Pipeline ready",
		zap.String("provider", provider.Name()),
		zap.String("model", provider.Model()),
		zap.Bool("dry_run", cfg.DryRun),
		zap.String("rating_policy", string(policy)),
	)
	return a, nil
}

// openStore opens a bucket or directory and closes it with the app.
func (a *app) openStore(ctx context.Context, location string) (storage.Store, error) {
	var opts []option.ClientOption
	if a.cfg.ProjectID != "" {
		opts = append(opts, option.WithQuotaProject(a.cfg.ProjectID))
	}
	store, err := storage.Open(ctx, location, opts...)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, store.Close)
	return store, nil
}

// openLedger picks the consumption ledger. Dry runs never mark objects.
func (a *app) openLedger() (ledger.Ledger, error) {
	if a.cfg.DryRun {
		return ledger.Nop{}, nil
	}
	switch strings.ToLower(a.cfg.Consume.Mode) {
	case "none":
		return ledger.Nop{}, nil
	case "", "ledger":
		l, err := ledger.OpenSQLite(a.cfg.Consume.LedgerPath, a.cfg.Consume.MaxAttempts, a.logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, l.Close)
		return l, nil
	default:
		return nil, fmt.Errorf("unknown consume mode %q (want ledger or none)", a.cfg.Consume.Mode)
	}
}

// close releases resources in reverse order of acquisition.
func (a *app) close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil

	if layered, ok := a.pages.(*cache.LayeredCache); ok {
		stats := layered.Stats()
		a.logger.Info("Page cache",
			zap.Int64("memory_hits", stats.MemoryHits),
			zap.Int64("disk_hits", stats.DiskHits),
			zap.Int64("misses", stats.Misses),
		)
	}
	if a.telemetry != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		errs = append(errs, a.telemetry.Shutdown(ctx))
	}
	_ = a.logger.Sync()
	return errors.Join(errs...)
}
