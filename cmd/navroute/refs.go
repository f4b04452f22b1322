package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/indoornav/navigation"
	"github.com/katalvlaran/indoornav/room"
)

var errAmbiguous = errors.New("room name is ambiguous")

// parseRef splits "Name@Floor". A missing or non-numeric suffix leaves the
// floor unset and the whole text as name.
func parseRef(ref string) (name string, floor int, hasFloor bool) {
	ref = strings.TrimSpace(ref)
	i := strings.LastIndex(ref, "@")
	if i < 0 {
		return ref, 0, false
	}
	f, err := strconv.Atoi(strings.TrimSpace(ref[i+1:]))
	if err != nil {
		return ref, 0, false
	}
	return strings.TrimSpace(ref[:i]), f, true
}

// resolveRef turns a reference into a key. A bare name must match exactly one room.
func resolveRef(ix *room.Index, ref string) (room.Key, error) {
	name, floor, hasFloor := parseRef(ref)
	if name == "" {
		return room.Key{}, navigation.ErrEmptyRoomName
	}
	if hasFloor {
		return room.Key{Name: name, Floor: floor}, nil
	}

	keys := ix.Find(name)
	switch len(keys) {
	case 0:
		return room.Key{}, fmt.Errorf("%w: %s", navigation.ErrRoomNotFound, name)
	case 1:
		return keys[0], nil
	}
	refs := make([]string, len(keys))
	for i, k := range keys {
		refs[i] = fmt.Sprintf("%s@%d", k.Name, k.Floor)
	}
	return room.Key{}, fmt.Errorf("%w: %q matches %s", errAmbiguous, name, strings.Join(refs, ", "))
}
