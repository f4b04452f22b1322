package room

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRole indicates a role name that UnmarshalText does not recognise.
var ErrUnknownRole = errors.New("room: unknown role")

// Role is the navigational role of a room, derived from its name.
type Role int

const (
	// RoleRegular is an ordinary destination room (office, lab, shop).
	RoleRegular Role = iota

	// RoleCorridor is circulation space; the graph prefers travelling through it.
	RoleCorridor

	// RoleStairs is a stairwell; it may bridge adjacent floors.
	RoleStairs

	// RoleElevator is an elevator shaft; it may bridge adjacent floors.
	RoleElevator

	// RoleStructural is a non-navigable structural element.
	RoleStructural
)

// Keyword tables, matched against the lower-cased room name.
var (
	structuralPrefixes = []string{"floor", "structur", "void", "exterior"}
	elevatorKeywords   = []string{"elevator", "elevador", "lift"}
	stairsKeywords     = []string{"stair", "escada", "escalera"}
	corridorKeywords   = []string{
		"hall", "corridor", "lobby", "passage",
		"corredor", "pasillo", "atrium", "foyer", "circulation",
	}
)

// String returns the lower-case role name.
func (r Role) String() string {
	switch r {
	case RoleRegular:
		return "regular"
	case RoleCorridor:
		return "corridor"
	case RoleStairs:
		return "stairs"
	case RoleElevator:
		return "elevator"
	case RoleStructural:
		return "structural"
	default:
		return "unknown"
	}
}

// MarshalText renders the role by name.
func (r Role) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText parses a name produced by MarshalText.
func (r *Role) UnmarshalText(b []byte) error {
	for c := RoleRegular; c <= RoleStructural; c++ {
		if c.String() == string(b) {
			*r = c
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownRole, b)
}

// IsCorridor reports whether the role is circulation space.
func (r Role) IsCorridor() bool { return r == RoleCorridor }

// IsVerticalConnector reports whether the role may link adjacent floors.
func (r Role) IsVerticalConnector() bool { return r == RoleStairs || r == RoleElevator }

// Navigable reports whether rooms of this role may become graph nodes.
func (r Role) Navigable() bool { return r != RoleStructural }

// Classify derives the Role of a room from its name and the producer's
// type hint (the type/tipo property). A hint that names a role ("corridor",
// "stairs", "elevador", ...) wins; a hint such as "room" or "lab" defers to
// the name.
//
// Precedence within one text: structural, elevator, stairs, corridor,
// regular. Structural matching is prefix-based so that "Floor slab" is
// structural while "Lobby floor 2" is a corridor.
func Classify(name, kind string) Role {
	if r := classifyText(kind); r != RoleRegular {
		return r
	}
	return classifyText(name)
}

func classifyText(s string) Role {
	n := strings.ToLower(strings.TrimSpace(s))
	if n == "" {
		return RoleRegular
	}
	for _, p := range structuralPrefixes {
		if strings.HasPrefix(n, p) {
			return RoleStructural
		}
	}
	if containsAny(n, elevatorKeywords) {
		return RoleElevator
	}
	if containsAny(n, stairsKeywords) {
		return RoleStairs
	}
	if containsAny(n, corridorKeywords) {
		return RoleCorridor
	}

	return RoleRegular
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
