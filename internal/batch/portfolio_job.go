package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"credit-engine/internal/domain/credit"
	"credit-engine/internal/infrastructure/monitoring"
)

type StatusCounter interface {
	CountByStatus(ctx context.Context) (map[credit.Status]int64, error)
}

// PortfolioSnapshotJob publishes the number of stored credits per status as
// Prometheus gauges.
type PortfolioSnapshotJob struct {
	credits  StatusCounter
	setGauge func(status string, count float64)
	logger   *slog.Logger
}

func NewPortfolioSnapshotJob(credits StatusCounter, logger *slog.Logger) *PortfolioSnapshotJob {
	if credits == nil || logger == nil {
		panic("PortfolioSnapshotJob dependencies cannot be nil")
	}
	return &PortfolioSnapshotJob{
		credits:  credits,
		setGauge: monitoring.SetCreditsByStatus,
		logger:   logger.With("job", "PortfolioSnapshot"),
	}
}

func (j *PortfolioSnapshotJob) Run(ctx context.Context) error {
	startTime := time.Now()
	j.logger.InfoContext(ctx, "Starting credit portfolio snapshot job.")

	counts, err := j.credits.CountByStatus(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to count credits by status, aborting job.", slog.Any("error", err))
		return fmt.Errorf("cannot run job, failed to count credits: %w", err)
	}

	var total int64
	for status, count := range counts {
		j.setGauge(string(status), float64(count))
		total += count
	}

	j.logger.InfoContext(ctx, "Credit portfolio snapshot job finished.",
		slog.Duration("duration", time.Since(startTime)),
		slog.Int64("total_credits", total),
		slog.Int64("in_progress", counts[credit.StatusInProgress]),
		slog.Int64("approved", counts[credit.StatusApproved]),
		slog.Int64("rejected", counts[credit.StatusRejected]),
	)
	return nil
}
