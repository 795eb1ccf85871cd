package services

import (
	"context"
	"fmt"

	"github.com/renato0307/galho/internal/domain"
	"github.com/renato0307/galho/internal/logging"
	"github.com/renato0307/galho/internal/ports"
)

// StatsService computes commit and line statistics of a head relative to a base
type StatsService struct {
	stats ports.StatsProvider
}

// NewStatsService creates a new StatsService
func NewStatsService(stats ports.StatsProvider) *StatsService {
	return &StatsService{
		stats: stats,
	}
}

// Compute returns ahead/behind counts and line totals of head relative to
// base. With no base both are the zero value and git is not queried.
func (s *StatsService) Compute(ctx context.Context, dir string, base *string, head string) (domain.AheadBehind, domain.DiffTotals, error) {
	if base == nil || *base == "" {
		return domain.AheadBehind{}, domain.DiffTotals{}, nil
	}

	counts, err := s.stats.AheadBehind(ctx, dir, *base, head)
	if err != nil {
		return domain.AheadBehind{}, domain.DiffTotals{}, fmt.Errorf("counting commits of %s against %s: %w", head, *base, err)
	}

	totals, err := s.stats.DiffTotals(ctx, dir, *base, head)
	if err != nil {
		return domain.AheadBehind{}, domain.DiffTotals{}, fmt.Errorf("diffing %s against %s: %w", head, *base, err)
	}

	logging.Logger.Debug("Computed branch stats",
		"base", *base,
		"head", head,
		"ahead", counts.Ahead,
		"behind", counts.Behind,
		"added", totals.Added,
		"deleted", totals.Deleted)

	return counts, totals, nil
}
