package store

import (
	"slices"

	"github.com/dmitrijs2005/founderstack/internal/models"
)

func indexOf[T models.Record](items []T, id string) int {
	return slices.IndexFunc(items, func(it T) bool { return it.RecordID() == id })
}

// appended returns items plus v without touching items' spare capacity.
func appended[T any](items []T, v ...T) []T {
	return append(slices.Clip(items), v...)
}

func replaced[T any](items []T, i int, v T) []T {
	out := slices.Clone(items)
	out[i] = v
	return out
}

// without returns items minus every element matching drop. The second result
// reports whether anything was dropped; when false, items is returned as is.
func without[T any](items []T, drop func(T) bool) ([]T, bool) {
	if !slices.ContainsFunc(items, drop) {
		return items, false
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if !drop(it) {
			out = append(out, it)
		}
	}
	return out, true
}

// mapped applies fn to every element matching match, copying only when
// there is at least one match.
func mapped[T any](items []T, match func(T) bool, fn func(T) T) []T {
	if !slices.ContainsFunc(items, match) {
		return items
	}
	out := slices.Clone(items)
	for i, it := range out {
		if match(it) {
			out[i] = fn(it)
		}
	}
	return out
}

func ownedBy[T models.Record](companyID string) func(T) bool {
	return func(it T) bool { return it.OwnerID() == companyID }
}
