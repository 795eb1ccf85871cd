package git

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/renato0307/galho/internal/domain"
	"github.com/renato0307/galho/internal/logging"
	"github.com/renato0307/galho/internal/ports"
)

// mergeTreeConstraint is the first release with merge-tree --write-tree
var mergeTreeConstraint = mustConstraint(">= 2.38.0")

// versionNumber extracts the dotted release from "git version 2.39.2 (Apple Git-143)"
// or "git version 2.41.0.windows.1"
var versionNumber = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

// gitVersion returns the version of the git binary
func gitVersion(ctx context.Context, runner ports.GitRunner) (*semver.Version, error) {
	output, err := runner.Run(ctx, "", "--version")
	if err != nil {
		return nil, fmt.Errorf("failed to get git version: %w", err)
	}
	return parseGitVersion(output)
}

func parseGitVersion(output string) (*semver.Version, error) {
	m := versionNumber.FindStringSubmatch(output)
	if m == nil {
		return nil, fmt.Errorf("unrecognised git version output: %q", output)
	}
	patch := m[3]
	if patch == "" {
		patch = "0"
	}
	return semver.NewVersion(fmt.Sprintf("%s.%s.%s", m[1], m[2], patch))
}

// supportsMergeTree reports whether the git binary can simulate merges
func supportsMergeTree(ctx context.Context, runner ports.GitRunner) bool {
	v, err := gitVersion(ctx, runner)
	if err != nil {
		logging.Logger.Warn("Could not determine git version", "error", err)
		return false
	}
	ok := mergeTreeConstraint.Check(v)
	logging.Logger.Debug("Git version detected", "version", v.String(), "merge_tree", ok)
	return ok
}

// mergeTree merges branch into target in memory. Exit status 0 is a clean
// merge whose first output line is the resulting tree; exit status 1 means
// conflicts.
func mergeTree(ctx context.Context, runner ports.GitRunner, dir, target, branch string) (string, bool, error) {
	output, err := runner.Run(ctx, dir, "merge-tree", "--write-tree", target, branch)
	if err != nil {
		if domain.HasExitCode(err, 1) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("git merge-tree failed: %w", err)
	}

	tree, _, _ := strings.Cut(output, "\n")
	tree = strings.TrimSpace(tree)
	if tree == "" {
		return "", false, fmt.Errorf("git merge-tree produced no tree")
	}
	return tree, true, nil
}
