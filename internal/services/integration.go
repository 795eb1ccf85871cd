package services

import (
	"context"
	"fmt"

	"github.com/renato0307/galho/internal/domain"
	"github.com/renato0307/galho/internal/logging"
	"github.com/renato0307/galho/internal/ports"
)

// integrationGit is the subset of git queries the classifier needs
type integrationGit interface {
	ports.MergeSimulator
	ports.RefInspector
}

// IntegrationService decides whether a branch's changes are already
// present in a target branch
type IntegrationService struct {
	git integrationGit
}

// NewIntegrationService creates a new IntegrationService
func NewIntegrationService(git integrationGit) *IntegrationService {
	return &IntegrationService{
		git: git,
	}
}

// classification carries the pair under test and values resolved by
// earlier checks
type classification struct {
	branch     string
	dir        string
	targetTree string
	target     string
}

// integrationCheck returns decided=false when it cannot settle the question
// and the next check should run
type integrationCheck func(ctx context.Context, c *classification) (status domain.IntegrationStatus, decided bool, err error)

// Classify runs the checks in order of cost. The first decided check wins;
// any query failure yields IntegrationUnknown with the diagnostic.
// Results are computed fresh on every call.
func (s *IntegrationService) Classify(ctx context.Context, dir, branch, target string) domain.Integration {
	result := domain.Integration{Branch: branch, Target: target}
	c := &classification{branch: branch, dir: dir, target: target}

	checks := []struct {
		name  string
		check integrationCheck
	}{
		{"same-commit", s.checkSameCommit},
		{"ancestor", s.checkAncestor},
		{"tree-match", s.checkTreeMatch},
		{"merge-simulation", s.checkMergeSimulation},
	}

	for _, ch := range checks {
		status, decided, err := ch.check(ctx, c)
		if err != nil {
			logging.Logger.Warn("Integration check failed",
				"check", ch.name, "branch", branch, "target", target, "error", err)
			result.Status = domain.IntegrationUnknown
			result.Detail = fmt.Sprintf("%s check: %v", ch.name, err)
			return result
		}
		if decided {
			logging.Logger.Debug("Branch classified",
				"check", ch.name, "branch", branch, "target", target, "status", status)
			result.Status = status
			return result
		}
	}

	result.Status = domain.IntegrationNotIntegrated
	return result
}

// checkSameCommit treats a branch compared with itself as integrated
func (s *IntegrationService) checkSameCommit(ctx context.Context, c *classification) (domain.IntegrationStatus, bool, error) {
	if c.branch == c.target {
		return domain.IntegrationAncestor, true, nil
	}

	branchCommit, err := s.git.ResolveCommit(ctx, c.dir, c.branch)
	if err != nil {
		return "", false, err
	}
	targetCommit, err := s.git.ResolveCommit(ctx, c.dir, c.target)
	if err != nil {
		return "", false, err
	}
	if branchCommit == targetCommit {
		return domain.IntegrationAncestor, true, nil
	}
	return "", false, nil
}

// checkAncestor: every commit of the branch is reachable from the target
func (s *IntegrationService) checkAncestor(ctx context.Context, c *classification) (domain.IntegrationStatus, bool, error) {
	ok, err := s.git.IsAncestor(ctx, c.dir, c.branch, c.target)
	if err != nil {
		return "", false, err
	}
	if ok {
		return domain.IntegrationAncestor, true, nil
	}
	return "", false, nil
}

// checkTreeMatch: the branch's content is byte-identical to the target's,
// e.g. after a rebase or squash merge with no later target commits
func (s *IntegrationService) checkTreeMatch(ctx context.Context, c *classification) (domain.IntegrationStatus, bool, error) {
	branchTree, err := s.git.ResolveTree(ctx, c.dir, c.branch)
	if err != nil {
		return "", false, err
	}
	targetTree, err := s.git.ResolveTree(ctx, c.dir, c.target)
	if err != nil {
		return "", false, err
	}
	c.targetTree = targetTree

	if branchTree == targetTree {
		return domain.IntegrationTreeMatch, true, nil
	}
	return "", false, nil
}

// checkMergeSimulation: merging the branch into the target would change
// nothing. Without merge-tree support the branch is reported as not
// integrated rather than guessed safe.
func (s *IntegrationService) checkMergeSimulation(ctx context.Context, c *classification) (domain.IntegrationStatus, bool, error) {
	if !s.git.SupportsMergeTree(ctx) {
		logging.Logger.Warn("Skipping merge simulation", "reason", domain.ErrMergeTreeUnsupported.Error())
		return domain.IntegrationNotIntegrated, true, nil
	}

	tree, clean, err := s.git.MergeTree(ctx, c.dir, c.target, c.branch)
	if err != nil {
		return "", false, err
	}
	if !clean {
		return domain.IntegrationNotIntegrated, true, nil
	}
	if tree == c.targetTree {
		return domain.IntegrationMergeNoOp, true, nil
	}
	return domain.IntegrationNotIntegrated, true, nil
}
