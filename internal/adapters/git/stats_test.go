package git

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/galho/internal/domain"
)

func TestParseLeftRightCount(t *testing.T) {
	counts, err := parseLeftRightCount("3\t7")
	require.NoError(t, err)
	assert.Equal(t, domain.AheadBehind{Ahead: 7, Behind: 3}, counts)

	_, err = parseLeftRightCount("garbage")
	assert.Error(t, err)

	_, err = parseLeftRightCount("x\t1")
	assert.Error(t, err)
}

func TestParseNumstat(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected domain.DiffTotals
	}{
		{"empty", "", domain.DiffTotals{}},
		{"single file", "10\t2\tmain.go", domain.DiffTotals{Added: 10, Deleted: 2}},
		{"multiple files", "1\t0\ta.go\n4\t5\tdir/b.go\n", domain.DiffTotals{Added: 5, Deleted: 5}},
		{"binary counts as zero", "-\t-\timage.png\n2\t1\ta.go", domain.DiffTotals{Added: 2, Deleted: 1}},
		{"path with spaces", "3\t1\tsome file.txt", domain.DiffTotals{Added: 3, Deleted: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseNumstat(tt.output))
		})
	}
}

func TestParseCommitDetails(t *testing.T) {
	details, err := parseCommitDetails("1700000000\x00Fix the thing: with colon")
	require.NoError(t, err)
	assert.Equal(t, domain.CommitDetails{Timestamp: 1700000000, Message: "Fix the thing: with colon"}, details)

	_, err = parseCommitDetails("")
	assert.Error(t, err)

	_, err = parseCommitDetails("yesterday\x00msg")
	assert.Error(t, err)
}

func TestParseGitVersion(t *testing.T) {
	tests := []struct {
		output    string
		expected  string
		mergeTree bool
	}{
		{"git version 2.39.2", "2.39.2", true},
		{"git version 2.37.1 (Apple Git-137.1)", "2.37.1", false},
		{"git version 2.41.0.windows.1", "2.41.0", true},
		{"git version 2.38", "2.38.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			v, err := parseGitVersion(tt.output)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v.String())
			assert.Equal(t, tt.mergeTree, mergeTreeConstraint.Check(v))
		})
	}

	_, err := parseGitVersion("not git")
	assert.Error(t, err)
}

func TestParseBranchList(t *testing.T) {
	branches := parseBranchList("aaa main\nbbb feature/x\n\nmalformed\n")

	assert.Equal(t, []domain.Branch{
		{Head: "aaa", Name: "main"},
		{Head: "bbb", Name: "feature/x"},
	}, branches)
}

func TestCLIRunner_QueryError(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := NewCLIRunner().Run(context.Background(), repo, "rev-parse", "--verify", "no-such-ref")

	require.Error(t, err)
	var qe *domain.QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, 128, qe.ExitCode)
	assert.Equal(t, repo, qe.Dir)
	assert.NotEmpty(t, qe.Stderr)
}

func TestCLIRunner_TrimsOutput(t *testing.T) {
	repo := setupTestRepo(t)

	out, err := NewCLIRunner().Run(context.Background(), repo, "rev-parse", "--abbrev-ref", "HEAD")

	require.NoError(t, err)
	assert.Equal(t, "main", out)
}
