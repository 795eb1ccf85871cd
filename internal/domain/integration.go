package domain

// IntegrationStatus is the outcome of checking whether a branch's changes
// are already present in a target branch
type IntegrationStatus string

const (
	IntegrationAncestor      IntegrationStatus = "ancestor"
	IntegrationMergeNoOp     IntegrationStatus = "merge-no-op"
	IntegrationNotIntegrated IntegrationStatus = "not-integrated"
	IntegrationTreeMatch     IntegrationStatus = "tree-match"
	IntegrationUnknown       IntegrationStatus = "unknown"
)

// Integrated reports whether the status makes branch deletion safe
func (s IntegrationStatus) Integrated() bool {
	switch s {
	case IntegrationAncestor, IntegrationMergeNoOp, IntegrationTreeMatch:
		return true
	}
	return false
}

// Integration is a classification result for one (branch, target) pair
type Integration struct {
	Branch string
	Detail string // Diagnostic text, set when Status is unknown
	Status IntegrationStatus
	Target string
}
