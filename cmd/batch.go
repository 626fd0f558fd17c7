package main

import (
	"context"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/scholar-cli/internal/model"
	"github.com/sells-group/scholar-cli/internal/pipeline"
)

var batchLimit int

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Analyze every document in a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		paths, err := listDocumentFiles(args[0])
		if err != nil {
			return err
		}

		evaluator, err := initEvaluator()
		if err != nil {
			return err
		}
		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		p := pipeline.New(cfg, st, evaluator)
		return processBatch(ctx, paths, batchLimit, cfg.Batch.MaxConcurrentDocuments, func(ctx context.Context, doc model.Document) (*model.Analysis, error) {
			return p.Run(ctx, doc)
		})
	},
}

func init() {
	batchCmd.Flags().IntVar(&batchLimit, "limit", 0, "max number of files to process (0 = all)")
	rootCmd.AddCommand(batchCmd)
}

// analyzeFunc is the callback signature for analyzing one document.
type analyzeFunc func(ctx context.Context, doc model.Document) (*model.Analysis, error)

// processBatch applies limit, then analyzes files concurrently. A failed
// file is logged and counted; it does not abort the batch.
func processBatch(ctx context.Context, paths []string, limit, concurrency int, analyze analyzeFunc) error {
	if len(paths) == 0 {
		zap.L().Info("no documents found")
		return nil
	}

	if limit > 0 && len(paths) > limit {
		paths = paths[:limit]
	}

	zap.L().Info("processing batch",
		zap.Int("documents", len(paths)),
		zap.Int("concurrency", concurrency),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var succeeded, failed atomic.Int64

	for _, path := range paths {
		g.Go(func() error {
			log := zap.L().With(zap.String("source", path))

			doc, err := loadDocument(path)
			if err != nil {
				failed.Add(1)
				log.Error("load failed", zap.Error(err))
				return nil
			}

			a, err := analyze(gctx, doc)
			if err != nil {
				failed.Add(1)
				log.Error("analysis failed", zap.Error(err))
				return nil // don't abort batch on individual failure
			}

			succeeded.Add(1)
			log.Info("analysis complete",
				zap.String("run", a.RunID),
				zap.Int("citations", len(a.Citations)),
				zap.Int("measures", len(a.Measures)),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return eris.Wrap(err, "batch processing")
	}

	zap.L().Info("batch complete",
		zap.Int64("succeeded", succeeded.Load()),
		zap.Int64("failed", failed.Load()),
	)
	return nil
}
