package models

import "sort"

// Owner identifies who a package belongs to: a single client, or a shared
// group of clients pooling the quota. The zero value owns nothing.
type Owner struct {
	names []string
}

// SingleOwner creates an owner for one client.
func SingleOwner(name string) Owner {
	return Owner{names: []string{name}}
}

// SharedOwner creates an owner for a group of clients. Group order is kept;
// the first name is the primary member.
func SharedOwner(names []string) Owner {
	copied := make([]string, len(names))
	copy(copied, names)
	return Owner{names: copied}
}

// Shared reports whether the quota is pooled across more than one client.
func (o Owner) Shared() bool {
	return len(o.names) > 1
}

// Names returns the member names in group order.
func (o Owner) Names() []string {
	copied := make([]string, len(o.names))
	copy(copied, o.names)
	return copied
}

// Primary returns the first member name, or "" for an empty owner.
func (o Owner) Primary() string {
	if len(o.names) == 0 {
		return ""
	}
	return o.names[0]
}

// Has reports whether name is a member.
func (o Owner) Has(name string) bool {
	for _, n := range o.names {
		if n == name {
			return true
		}
	}
	return false
}

// SameGroup reports whether both owners name the same set of clients,
// ignoring group order.
func (o Owner) SameGroup(other Owner) bool {
	if len(o.names) != len(other.names) {
		return false
	}
	a := o.Names()
	b := other.Names()
	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
