package service

import (
	"sort"

	"github.com/olusolaa/teardown-verifier/internal/core/domain"
)

// Differ computes set differences between two inventories. It is stateless
// and safe for concurrent use.
type Differ struct {
	mode domain.DiffMode
}

func NewDiffer(mode domain.DiffMode) *Differ {
	if mode == "" {
		mode = domain.DiffModeFull
	}
	return &Differ{mode: mode}
}

func (d *Differ) Mode() domain.DiffMode {
	return d.mode
}

// Compare returns removed = before - after and added = after - before.
func (d *Differ) Compare(before, after domain.Inventory) domain.DiffReport {
	if d.mode == domain.DiffModeIdentity {
		return compareByIdentity(before, after)
	}
	return domain.DiffReport{
		Mode:    domain.DiffModeFull,
		Removed: subtract(before, after),
		Added:   subtract(after, before),
	}
}

func subtract(a, b domain.Inventory) []domain.Descriptor {
	var out []domain.Descriptor
	for _, d := range a.Descriptors() {
		if !b.Contains(d) {
			out = append(out, d)
		}
	}
	return out
}

// compareByIdentity groups descriptors by identity. An identity present on
// only one side is removed or added as a whole; an identity present on both
// sides with different descriptor sets is a modification.
func compareByIdentity(before, after domain.Inventory) domain.DiffReport {
	beforeByID := groupByIdentity(before)
	afterByID := groupByIdentity(after)

	report := domain.DiffReport{Mode: domain.DiffModeIdentity}
	for _, id := range sortedKeys(beforeByID) {
		b := beforeByID[id]
		a, ok := afterByID[id]
		if !ok {
			report.Removed = append(report.Removed, b...)
			continue
		}
		if !sameDescriptors(b, a) {
			report.Modified = append(report.Modified, domain.Modification{Identity: id, Before: b, After: a})
		}
	}
	for _, id := range sortedKeys(afterByID) {
		if _, ok := beforeByID[id]; !ok {
			report.Added = append(report.Added, afterByID[id]...)
		}
	}
	return report
}

// groupByIdentity relies on Descriptors being sorted, so every group is sorted.
func groupByIdentity(inv domain.Inventory) map[string][]domain.Descriptor {
	groups := make(map[string][]domain.Descriptor, inv.Len())
	for _, d := range inv.Descriptors() {
		id := d.Identity()
		groups[id] = append(groups[id], d)
	}
	return groups
}

func sortedKeys(m map[string][]domain.Descriptor) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sameDescriptors(a, b []domain.Descriptor) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
