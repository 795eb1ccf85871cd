package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/renato0307/galho/internal/domain"
	"github.com/renato0307/galho/internal/ports"
)

// aheadBehind counts commits of head relative to base using the
// symmetric difference: left side is base-only (behind), right side is
// head-only (ahead)
func aheadBehind(ctx context.Context, runner ports.GitRunner, dir, base, head string) (domain.AheadBehind, error) {
	output, err := runner.Run(ctx, dir, "rev-list", "--left-right", "--count", base+"..."+head)
	if err != nil {
		return domain.AheadBehind{}, fmt.Errorf("git rev-list failed: %w", err)
	}
	return parseLeftRightCount(output)
}

// parseLeftRightCount parses "BEHIND\tAHEAD" from rev-list --left-right --count
func parseLeftRightCount(output string) (domain.AheadBehind, error) {
	parts := strings.Fields(output)
	if len(parts) != 2 {
		return domain.AheadBehind{}, fmt.Errorf("unexpected rev-list output: %q", output)
	}

	behind, err := strconv.Atoi(parts[0])
	if err != nil {
		return domain.AheadBehind{}, fmt.Errorf("failed to parse behind count: %w", err)
	}
	ahead, err := strconv.Atoi(parts[1])
	if err != nil {
		return domain.AheadBehind{}, fmt.Errorf("failed to parse ahead count: %w", err)
	}

	return domain.AheadBehind{Ahead: ahead, Behind: behind}, nil
}

// diffTotals sums line changes between base and head
func diffTotals(ctx context.Context, runner ports.GitRunner, dir, base, head string) (domain.DiffTotals, error) {
	output, err := runner.Run(ctx, dir, "diff", "--numstat", base, head, "--")
	if err != nil {
		return domain.DiffTotals{}, fmt.Errorf("git diff failed: %w", err)
	}
	return parseNumstat(output), nil
}

// workingTreeDiff sums uncommitted line changes (staged and unstaged)
// against HEAD
func workingTreeDiff(ctx context.Context, runner ports.GitRunner, dir string) (domain.DiffTotals, error) {
	output, err := runner.Run(ctx, dir, "diff", "--numstat", "HEAD", "--")
	if err != nil {
		return domain.DiffTotals{}, fmt.Errorf("git diff failed: %w", err)
	}
	return parseNumstat(output), nil
}

// parseNumstat sums "ADDED\tDELETED\tpath" lines. Binary files report "-"
// and count as zero.
func parseNumstat(output string) domain.DiffTotals {
	var totals domain.DiffTotals
	for _, line := range strings.Split(output, "\n") {
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		if added, err := strconv.Atoi(parts[0]); err == nil {
			totals.Added += added
		}
		if deleted, err := strconv.Atoi(parts[1]); err == nil {
			totals.Deleted += deleted
		}
	}
	return totals
}

// commitDetails returns the committer timestamp and subject of ref
func commitDetails(ctx context.Context, runner ports.GitRunner, dir, ref string) (domain.CommitDetails, error) {
	output, err := runner.Run(ctx, dir, "log", "-1", "--format=%ct%x00%s", ref, "--")
	if err != nil {
		return domain.CommitDetails{}, fmt.Errorf("git log failed: %w", err)
	}
	return parseCommitDetails(output)
}

func parseCommitDetails(output string) (domain.CommitDetails, error) {
	if output == "" {
		return domain.CommitDetails{}, fmt.Errorf("no commits found")
	}

	ts, subject, _ := strings.Cut(output, "\x00")
	timestamp, err := strconv.ParseInt(strings.TrimSpace(ts), 10, 64)
	if err != nil {
		return domain.CommitDetails{}, fmt.Errorf("failed to parse commit timestamp: %w", err)
	}

	return domain.CommitDetails{Message: subject, Timestamp: timestamp}, nil
}
