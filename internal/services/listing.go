package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/galho/internal/domain"
	"github.com/renato0307/galho/internal/logging"
	"github.com/renato0307/galho/internal/ports"
)

// DefaultConcurrency bounds the number of worktrees enriched at once
const DefaultConcurrency = 8

// ListOptions configures a listing
type ListOptions struct {
	Dir             string // Any directory inside the repository
	IncludeBranches bool   // Also list local branches without a worktree
}

// ListResult holds the sorted items and any non-fatal warnings
type ListResult struct {
	Base     string // Reference branch for ahead/behind, empty when none
	Items    []domain.ListItem
	Warnings []string
}

// ListSummary aggregates counts over a listing
type ListSummary struct {
	Ahead     int // Items with commits ahead of the base
	Behind    int // Items behind the base
	Branches  int
	Dirty     int // Worktrees with uncommitted changes
	Worktrees int
}

// Summary aggregates the listing
func (r *ListResult) Summary() ListSummary {
	var s ListSummary
	for _, item := range r.Items {
		switch it := item.(type) {
		case *domain.WorktreeInfo:
			s.Worktrees++
			if it.Dirty() {
				s.Dirty++
			}
		case *domain.BranchInfo:
			s.Branches++
		}
		if item.Counts().Ahead > 0 {
			s.Ahead++
		}
		if item.Counts().Behind > 0 {
			s.Behind++
		}
	}
	return s
}

// ListingService enriches every worktree (and optionally branch) of a
// repository with commit, diff and upstream state
type ListingService struct {
	concurrency   int
	defaultBranch string
	git           ports.GitRepository
	stats         *StatsService
	upstream      *UpstreamService
}

// NewListingService creates a new ListingService. defaultBranch is used as
// the base when the primary worktree has no branch; empty means detect.
func NewListingService(
	git ports.GitRepository,
	stats *StatsService,
	upstream *UpstreamService,
	concurrency int,
	defaultBranch string,
) *ListingService {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &ListingService{
		concurrency:   concurrency,
		defaultBranch: defaultBranch,
		git:           git,
		stats:         stats,
		upstream:      upstream,
	}
}

// List enumerates and enriches worktrees concurrently. A failure enriching
// any worktree fails the whole listing; a failure enriching a branch only
// produces a partial record and a warning. Items are ordered newest commit
// first.
func (s *ListingService) List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	logging.Logger.Info("Listing worktrees", "dir", opts.Dir, "include_branches", opts.IncludeBranches)

	worktrees, err := s.git.ListWorktrees(ctx, opts.Dir)
	if err != nil {
		return nil, err
	}

	currentRoot, err := s.git.TopLevel(ctx, opts.Dir)
	if err != nil {
		// e.g. running from inside a bare repository
		logging.Logger.Debug("No current worktree", "dir", opts.Dir, "error", err)
		currentRoot = ""
	}

	repoDir := opts.Dir
	primary, hasPrimary := domain.FindPrimary(worktrees)
	if hasPrimary {
		repoDir = primary.Path
	}

	base, err := resolveBase(ctx, s.git, repoDir, primary, s.defaultBranch)
	if err != nil {
		return nil, err
	}
	logging.Logger.Debug("Listing base resolved", "base", base)

	var visible []domain.Worktree
	for _, wt := range worktrees {
		if wt.Bare {
			continue
		}
		visible = append(visible, wt)
	}

	// Each task writes only its own index
	worktreeInfos := make([]*domain.WorktreeInfo, len(visible))
	var wg errgroup.Group
	wg.SetLimit(s.concurrency)
	for i, wt := range visible {
		wg.Go(func() error {
			info, err := s.enrichWorktree(ctx, repoDir, wt, base, wt.Path == currentRoot)
			if err != nil {
				return fmt.Errorf("worktree %s: %w", wt.Path, err)
			}
			worktreeInfos[i] = info
			return nil
		})
	}

	var branchInfos []*domain.BranchInfo
	var warnings []string
	if opts.IncludeBranches {
		branchInfos, warnings = s.enrichBranches(ctx, repoDir, worktrees, base)
	}

	if err := wg.Wait(); err != nil {
		logging.Logger.Error("Worktree enrichment failed", "error", err)
		return nil, err
	}

	items := make([]domain.ListItem, 0, len(worktreeInfos)+len(branchInfos))
	for _, info := range worktreeInfos {
		items = append(items, info)
	}
	for _, info := range branchInfos {
		items = append(items, info)
	}
	SortByRecency(items)

	logging.Logger.Info("Listing complete", "items", len(items), "warnings", len(warnings))
	return &ListResult{Base: base, Items: items, Warnings: warnings}, nil
}

// SortByRecency orders items by commit timestamp, newest first. Equal
// timestamps keep their relative order.
func SortByRecency(items []domain.ListItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Commit().Timestamp > items[j].Commit().Timestamp
	})
}

// enrichWorktree gathers everything displayed for one worktree. Ref
// queries run from the repository so prunable worktrees still resolve.
func (s *ListingService) enrichWorktree(ctx context.Context, repoDir string, wt domain.Worktree, base string, current bool) (*domain.WorktreeInfo, error) {
	head := wt.Head
	if head == "" {
		head = wt.Branch
	}

	commit, err := s.git.CommitDetails(ctx, repoDir, head)
	if err != nil {
		return nil, err
	}

	var counts domain.AheadBehind
	var branchDiff domain.DiffTotals
	if !wt.IsPrimary {
		var basePtr *string
		if base != "" {
			basePtr = &base
		}
		counts, branchDiff, err = s.stats.Compute(ctx, repoDir, basePtr, head)
		if err != nil {
			return nil, err
		}
	}

	var workingDiff domain.DiffTotals
	state := domain.WorktreeStateClean
	if !wt.Prunable {
		workingDiff, err = s.git.WorkingTreeDiff(ctx, wt.Path)
		if err != nil {
			return nil, err
		}
		state, err = s.git.WorktreeState(ctx, wt.Path)
		if err != nil {
			return nil, err
		}
	}

	return &domain.WorktreeInfo{
		AheadBehind:     counts,
		BranchDiff:      branchDiff,
		CommitDetails:   commit,
		IsCurrent:       current,
		State:           state,
		UpstreamStatus:  s.upstream.Track(ctx, repoDir, wt.Branch, head),
		Worktree:        wt,
		WorkingTreeDiff: workingDiff,
	}, nil
}

// enrichBranches enriches local branches that no worktree has checked out.
// Failures never abort: the branch is kept with whatever was resolved.
func (s *ListingService) enrichBranches(ctx context.Context, repoDir string, worktrees []domain.Worktree, base string) ([]*domain.BranchInfo, []string) {
	branches, err := s.git.ListBranches(ctx, repoDir)
	if err != nil {
		logging.Logger.Warn("Failed to list branches", "error", err)
		return nil, []string{fmt.Sprintf("branches: %v", err)}
	}

	checkedOut := make(map[string]bool, len(worktrees))
	for _, wt := range worktrees {
		if wt.Branch != "" {
			checkedOut[wt.Branch] = true
		}
	}

	var pending []domain.Branch
	for _, b := range branches {
		if !checkedOut[b.Name] {
			pending = append(pending, b)
		}
	}

	infos := make([]*domain.BranchInfo, len(pending))
	var wg errgroup.Group
	wg.SetLimit(s.concurrency)
	for i, b := range pending {
		wg.Go(func() error {
			infos[i] = s.enrichBranch(ctx, repoDir, b, base)
			return nil
		})
	}
	_ = wg.Wait()

	var warnings []string
	for _, info := range infos {
		if info.Warning != "" {
			warnings = append(warnings, fmt.Sprintf("branch %s: %s", info.Branch.Name, info.Warning))
		}
	}
	return infos, warnings
}

func (s *ListingService) enrichBranch(ctx context.Context, repoDir string, b domain.Branch, base string) *domain.BranchInfo {
	info := &domain.BranchInfo{Branch: b}
	var errs []error

	commit, err := s.git.CommitDetails(ctx, repoDir, b.Name)
	if err != nil {
		errs = append(errs, err)
	} else {
		info.CommitDetails = commit
	}

	var basePtr *string
	if base != "" && base != b.Name {
		basePtr = &base
	}
	counts, diff, err := s.stats.Compute(ctx, repoDir, basePtr, b.Name)
	if err != nil {
		errs = append(errs, err)
	} else {
		info.AheadBehind = counts
		info.BranchDiff = diff
	}

	info.UpstreamStatus = s.upstream.Track(ctx, repoDir, b.Name, b.Name)

	if len(errs) > 0 {
		info.Warning = firstLine(errors.Join(errs...).Error())
		logging.Logger.Warn("Partial branch record", "branch", b.Name, "error", errors.Join(errs...))
	}
	return info
}

// resolveBase picks the reference branch: the primary worktree's branch,
// else the configured default, else the detected default. An empty result
// means no base is available.
func resolveBase(ctx context.Context, git ports.RefInspector, repoDir string, primary domain.Worktree, configured string) (string, error) {
	if primary.Branch != "" {
		return primary.Branch, nil
	}
	if configured != "" {
		exists, err := git.BranchExists(ctx, repoDir, configured)
		if err != nil {
			return "", err
		}
		if exists {
			return configured, nil
		}
		logging.Logger.Warn("Configured default branch does not exist", "branch", configured)
	}
	return git.DefaultBranch(ctx, repoDir)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
