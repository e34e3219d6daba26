package domain

import "sort"

// Inventory is an immutable, deduplicated set of descriptors captured at one
// point in time. The zero value is an empty inventory.
type Inventory struct {
	set map[Descriptor]struct{}
}

func NewInventory(descriptors ...Descriptor) Inventory {
	set := make(map[Descriptor]struct{}, len(descriptors))
	for _, d := range descriptors {
		set[d] = struct{}{}
	}
	return Inventory{set: set}
}

func (i Inventory) Len() int {
	return len(i.set)
}

func (i Inventory) Contains(d Descriptor) bool {
	_, ok := i.set[d]
	return ok
}

// Descriptors returns a sorted copy of the inventory contents.
func (i Inventory) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(i.set))
	for d := range i.set {
		out = append(out, d)
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
	return out
}

// Strings is Descriptors as plain strings, the persisted representation.
func (i Inventory) Strings() []string {
	ds := i.Descriptors()
	out := make([]string, len(ds))
	for n, d := range ds {
		out[n] = string(d)
	}
	return out
}

// Equal reports whether both inventories hold the same descriptors.
func (i Inventory) Equal(other Inventory) bool {
	if i.Len() != other.Len() {
		return false
	}
	for d := range i.set {
		if !other.Contains(d) {
			return false
		}
	}
	return true
}

// CategoryFailure records a provider that could not be enumerated during a
// best-effort capture.
type CategoryFailure struct {
	Category Category
	Err      error
}

type CaptureResult struct {
	Inventory Inventory
	Failures  []CategoryFailure
}

// Partial reports whether at least one category is missing from the inventory.
func (r CaptureResult) Partial() bool {
	return len(r.Failures) > 0
}

func (r CaptureResult) FailedCategoryKeys() []string {
	keys := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		keys[i] = f.Category.Key
	}
	return keys
}
