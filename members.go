package club

import (
	"fmt"
	"slices"
	"strings"
)

// MemberRegistry is the fixed, ordered list of club members. It is supplied
// at startup and never mutated at runtime; the order is the display order
// used by every report.
type MemberRegistry struct {
	names []string
}

// NewMemberRegistry builds a registry from an ordered list of member names.
// Names are trimmed; empty or duplicate names are rejected.
func NewMemberRegistry(names ...string) (*MemberRegistry, error) {
	r := &MemberRegistry{names: make([]string, 0, len(names))}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("member name cannot be empty")
		}
		if slices.Contains(r.names, name) {
			return nil, fmt.Errorf("duplicate member %q", name)
		}
		r.names = append(r.names, name)
	}
	if len(r.names) == 0 {
		return nil, fmt.Errorf("registry needs at least one member")
	}
	return r, nil
}

// Contains reports whether name is a registered member.
func (r *MemberRegistry) Contains(name string) bool {
	return slices.Contains(r.names, name)
}

// Names returns the members in registry order.
func (r *MemberRegistry) Names() []string {
	return slices.Clone(r.names)
}

// Len returns the number of members.
func (r *MemberRegistry) Len() int { return len(r.names) }
