package domain

import "strings"

// AttributeSeparator joins the identity part of a descriptor and each of its
// display attributes.
const AttributeSeparator = " - "

// Attribute is one labelled display value of a resource.
type Attribute struct {
	Label string
	Value string
}

// Record is what a provider yields for one discovered resource.
type Record struct {
	ID         string
	Attributes []Attribute
}

// NewRecord is a convenience constructor for providers.
func NewRecord(id string, attrs ...Attribute) Record {
	return Record{ID: id, Attributes: attrs}
}

// Descriptor is the normalized, human readable representation of one resource,
// e.g. "VPC ID: vpc-1 - State: available". Two descriptors denote the same
// resource only if they are byte-identical.
type Descriptor string

// Describe normalizes a record of the given category into a descriptor.
func Describe(c Category, r Record) Descriptor {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteByte(' ')
	b.WriteString(c.IDLabel)
	b.WriteString(": ")
	b.WriteString(r.ID)
	for _, a := range r.Attributes {
		b.WriteString(AttributeSeparator)
		b.WriteString(a.Label)
		b.WriteString(": ")
		b.WriteString(a.Value)
	}
	return Descriptor(b.String())
}

// Identity returns the stable part of the descriptor: everything before the
// first attribute separator. Descriptors without attributes are their own
// identity.
func (d Descriptor) Identity() string {
	s := string(d)
	if i := strings.Index(s, AttributeSeparator); i >= 0 {
		return s[:i]
	}
	return s
}

func (d Descriptor) String() string {
	return string(d)
}
