package editor

import (
	"slices"
	"strings"
)

// Identified is implemented by every list entry of the resume record.
type Identified interface {
	GetID() string
}

// The helpers below never write into the slice they are given. Callers may
// keep the old slice as a snapshot.

func indexOf[T Identified](list []T, id string) int {
	for i := range list {
		if list[i].GetID() == id {
			return i
		}
	}
	return -1
}

func appendEntry[T any](list []T, entry T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, list...)
	return append(out, entry)
}

// updateEntry replaces the entry matching id with fn's result.
// A missing id returns list unchanged.
func updateEntry[T Identified](list []T, id string, fn func(T) (T, error)) ([]T, error) {
	i := indexOf(list, id)
	if i < 0 {
		return list, nil
	}
	updated, err := fn(list[i])
	if err != nil {
		return list, err
	}
	out := slices.Clone(list)
	out[i] = updated
	return out, nil
}

// removeEntry drops every entry matching id. A missing id returns list unchanged.
func removeEntry[T Identified](list []T, id string) []T {
	if indexOf(list, id) < 0 {
		return list
	}
	return slices.DeleteFunc(slices.Clone(list), func(e T) bool { return e.GetID() == id })
}

// AddItem appends the trimmed value unless it is empty or already present.
func AddItem(list []string, value string) []string {
	v := strings.TrimSpace(value)
	if v == "" || slices.Contains(list, v) {
		return list
	}
	out := make([]string, 0, len(list)+1)
	out = append(out, list...)
	return append(out, v)
}

// RemoveItem removes the exact match of value, if any.
func RemoveItem(list []string, value string) []string {
	i := slices.Index(list, value)
	if i < 0 {
		return list
	}
	out := make([]string, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}
