package services

import (
	"context"

	"github.com/renato0307/galho/internal/domain"
	"github.com/renato0307/galho/internal/logging"
	"github.com/renato0307/galho/internal/ports"
)

// upstreamGit is the subset of git queries the tracker needs
type upstreamGit interface {
	ports.RefInspector
	ports.StatsProvider
}

// UpstreamService relates branches to their remote-tracking branches
type UpstreamService struct {
	git upstreamGit
}

// NewUpstreamService creates a new UpstreamService
func NewUpstreamService(git upstreamGit) *UpstreamService {
	return &UpstreamService{
		git: git,
	}
}

// Track returns the upstream status of branch, comparing head against it.
// Any failure degrades to the empty status; it is never an error.
func (s *UpstreamService) Track(ctx context.Context, dir, branch, head string) domain.UpstreamStatus {
	if branch == "" {
		return domain.UpstreamStatus{}
	}

	ref, err := s.git.Upstream(ctx, dir, branch)
	if err != nil {
		logging.Logger.Debug("Upstream resolution failed", "branch", branch, "error", err)
		return domain.UpstreamStatus{}
	}
	if ref == "" {
		return domain.UpstreamStatus{}
	}

	if head == "" {
		head = branch
	}
	counts, err := s.git.AheadBehind(ctx, dir, ref, head)
	if err != nil {
		logging.Logger.Debug("Upstream counts failed", "branch", branch, "upstream", ref, "error", err)
		return domain.UpstreamStatus{}
	}

	return domain.NewUpstreamStatus(ref, counts)
}
