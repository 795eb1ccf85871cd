package domain

// ItemKind tags the concrete type of a ListItem
type ItemKind string

const (
	ItemKindBranch   ItemKind = "branch"
	ItemKindWorktree ItemKind = "worktree"
)

// ListItem is one displayable row: either a worktree or a bare branch.
// The set of implementations is closed.
type ListItem interface {
	BranchName() string
	Commit() CommitDetails
	Counts() AheadBehind
	Kind() ItemKind
	Upstream() UpstreamStatus
	listItem()
}

// WorktreeInfo is a fully enriched worktree
type WorktreeInfo struct {
	AheadBehind     AheadBehind
	BranchDiff      DiffTotals
	CommitDetails   CommitDetails
	IsCurrent       bool
	State           WorktreeState
	UpstreamStatus  UpstreamStatus
	Worktree        Worktree
	WorkingTreeDiff DiffTotals
}

var _ ListItem = (*WorktreeInfo)(nil)

func (w *WorktreeInfo) BranchName() string       { return w.Worktree.Branch }
func (w *WorktreeInfo) Commit() CommitDetails    { return w.CommitDetails }
func (w *WorktreeInfo) Counts() AheadBehind      { return w.AheadBehind }
func (w *WorktreeInfo) Kind() ItemKind           { return ItemKindWorktree }
func (w *WorktreeInfo) Upstream() UpstreamStatus { return w.UpstreamStatus }
func (w *WorktreeInfo) listItem()                {}

// Dirty reports whether the working tree has uncommitted line changes
func (w *WorktreeInfo) Dirty() bool {
	return !w.WorkingTreeDiff.IsZero()
}

// BranchInfo is a local branch with no worktree. Warning is set when
// enrichment failed part way and the record is partial.
type BranchInfo struct {
	AheadBehind    AheadBehind
	Branch         Branch
	BranchDiff     DiffTotals
	CommitDetails  CommitDetails
	UpstreamStatus UpstreamStatus
	Warning        string
}

var _ ListItem = (*BranchInfo)(nil)

func (b *BranchInfo) BranchName() string       { return b.Branch.Name }
func (b *BranchInfo) Commit() CommitDetails    { return b.CommitDetails }
func (b *BranchInfo) Counts() AheadBehind      { return b.AheadBehind }
func (b *BranchInfo) Kind() ItemKind           { return ItemKindBranch }
func (b *BranchInfo) Upstream() UpstreamStatus { return b.UpstreamStatus }
func (b *BranchInfo) listItem()                {}
