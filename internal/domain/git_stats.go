package domain

import "strings"

// DefaultRemote is used when an upstream ref carries no remote prefix
const DefaultRemote = "origin"

// AheadBehind holds commit counts of a head relative to a base
type AheadBehind struct {
	Ahead  int `json:"ahead" yaml:"ahead"`   // Commits reachable from head but not base
	Behind int `json:"behind" yaml:"behind"` // Commits reachable from base but not head
}

// DiffTotals holds line totals of a diff summed over all files
type DiffTotals struct {
	Added   int `json:"added" yaml:"added"`
	Deleted int `json:"deleted" yaml:"deleted"`
}

// IsZero reports whether the diff has no changed lines
func (d DiffTotals) IsZero() bool {
	return d.Added == 0 && d.Deleted == 0
}

// CommitDetails holds the head commit metadata used for ordering and display
type CommitDetails struct {
	Message   string // Subject line
	Timestamp int64  // Committer time, unix seconds
}

// UpstreamStatus describes a branch's relationship to its remote-tracking branch.
// The zero value means "no upstream".
type UpstreamStatus struct {
	Ahead  int
	Behind int
	Remote string
}

// NewUpstreamStatus builds an UpstreamStatus from an upstream ref like "origin/main"
func NewUpstreamStatus(upstreamRef string, counts AheadBehind) UpstreamStatus {
	remote := DefaultRemote
	if idx := strings.Index(upstreamRef, "/"); idx > 0 {
		remote = upstreamRef[:idx]
	}
	return UpstreamStatus{
		Ahead:  counts.Ahead,
		Behind: counts.Behind,
		Remote: remote,
	}
}

// HasUpstream reports whether an upstream was resolved
func (u UpstreamStatus) HasUpstream() bool {
	return u.Remote != ""
}

// Active reports whether the branch has diverged from its upstream
func (u UpstreamStatus) Active() bool {
	return u.Ahead > 0 || u.Behind > 0
}
