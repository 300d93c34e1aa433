package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/grachmannico95/ledger-engine/internal/codec"
	"github.com/grachmannico95/ledger-engine/internal/domain"
	"github.com/grachmannico95/ledger-engine/internal/ledger"
	"github.com/grachmannico95/ledger-engine/internal/metrics"
	"github.com/grachmannico95/ledger-engine/pkg/logger"
)

type CSVProcessorInterface interface {
	ProcessStream(ctx context.Context, runID string, reader io.Reader) error
}

type ProcessorConfig struct {
	DecodePolicy codec.DecodePolicy
	ErrorPolicy  ledger.ErrorPolicy
	RoundPlaces  int32
}

func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		DecodePolicy: codec.DecodeIgnore,
		ErrorPolicy:  ledger.PolicySkip,
		RoundPlaces:  ledger.DefaultRoundPlaces,
	}
}

// CSVProcessor replays one uploaded action log into a fresh ledger and
// stores the resulting snapshot under the run.
type CSVProcessor struct {
	repo    domain.Repository
	cfg     ProcessorConfig
	metrics metrics.Recorder
	logger  *logger.Logger
}

func NewCSVProcessor(repo domain.Repository, cfg ProcessorConfig, rec metrics.Recorder, log *logger.Logger) *CSVProcessor {
	if rec == nil {
		rec = metrics.NoOpRecorder{}
	}
	return &CSVProcessor{
		repo:    repo,
		cfg:     cfg,
		metrics: rec,
		logger:  log,
	}
}

func (p *CSVProcessor) ProcessStream(ctx context.Context, runID string, reader io.Reader) error {
	ctx = logger.WithRunID(ctx, runID)
	start := time.Now()

	p.logger.Info(ctx, "Starting CSV processing",
		"decode_policy", p.cfg.DecodePolicy,
		"error_policy", p.cfg.ErrorPolicy,
	)

	actions := codec.NewActionReader(reader, p.cfg.DecodePolicy,
		codec.WithReaderLogger(p.logger),
		codec.WithReaderMetrics(p.metrics),
	)
	engine := ledger.NewSequentialEngine(
		ledger.WithErrorPolicy(p.cfg.ErrorPolicy),
		ledger.WithRoundPlaces(p.cfg.RoundPlaces),
		ledger.WithLogger(p.logger),
		ledger.WithMetrics(p.metrics),
	)

	err := engine.ProcessAll(ctx, actions.Actions(ctx))
	if err == nil {
		err = actions.Err()
	}

	p.recordRows(ctx, runID, actions.Decoded(), actions.Skipped())

	if err != nil {
		p.fail(ctx, runID, start, err)
		return fmt.Errorf("%w: %w", domain.ErrProcessingFailed, err)
	}

	accounts := engine.Accounts()
	failed := engine.FailedTransactions()
	issues := make([]domain.Issue, 0, len(failed))
	for _, tx := range failed {
		issues = append(issues, domain.NewIssue(tx))
	}

	err = p.repo.SaveSnapshot(ctx, runID, domain.Snapshot{Accounts: accounts, Issues: issues})
	if err != nil {
		p.fail(ctx, runID, start, err)
		return fmt.Errorf("save snapshot: %w", err)
	}

	p.metrics.RecordRun(string(domain.RunStatusCompleted), time.Since(start))
	err = p.repo.UpdateRunStatus(ctx, runID, domain.RunStatusCompleted, "")
	if err != nil {
		p.logger.Error(ctx, "Failed to update run status to completed",
			"error", err,
		)
	}

	p.logger.Info(ctx, "CSV processing completed",
		"applied", actions.Decoded(),
		"rejected", actions.Skipped(),
		"accounts", len(accounts),
		"issues", len(issues),
	)

	return nil
}

func (p *CSVProcessor) recordRows(ctx context.Context, runID string, processed, rejected int) {
	if err := p.repo.IncrementProcessedRows(ctx, runID, processed); err != nil {
		p.logger.Error(ctx, "Failed to record processed rows",
			"error", err,
		)
	}
	if rejected == 0 {
		return
	}
	if err := p.repo.IncrementRejectedRows(ctx, runID, rejected); err != nil {
		p.logger.Error(ctx, "Failed to record rejected rows",
			"error", err,
		)
	}
}

func (p *CSVProcessor) fail(ctx context.Context, runID string, start time.Time, cause error) {
	p.logger.Error(ctx, "CSV processing failed",
		"error", cause,
	)

	p.metrics.RecordRun(string(domain.RunStatusFailed), time.Since(start))
	err := p.repo.UpdateRunStatus(ctx, runID, domain.RunStatusFailed, cause.Error())
	if err != nil {
		p.logger.Error(ctx, "Failed to update run status to failed",
			"error", err,
		)
	}
}
