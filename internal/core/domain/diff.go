package domain

type FailurePolicy string

const (
	FailFast   FailurePolicy = "fail-fast"
	BestEffort FailurePolicy = "best-effort"
)

type DiffMode string

const (
	// DiffModeFull compares full descriptors, so an attribute change shows up
	// as one removal plus one addition.
	DiffModeFull DiffMode = "full"
	// DiffModeIdentity compares descriptor identities and reports attribute
	// changes separately as modifications.
	DiffModeIdentity DiffMode = "identity"
)

// Modification is a resource whose identity exists on both sides but whose
// descriptors differ.
type Modification struct {
	Identity string
	Before   []Descriptor
	After    []Descriptor
}

// DiffReport is the result of comparing a before and an after inventory.
// Removed and Added are disjoint and sorted.
type DiffReport struct {
	Mode     DiffMode
	Removed  []Descriptor
	Added    []Descriptor
	Modified []Modification
}

// Clean reports a teardown that left nothing behind and created nothing.
// Modifications are informational and do not make a report unclean.
func (r DiffReport) Clean() bool {
	return len(r.Removed) == 0 && len(r.Added) == 0
}
