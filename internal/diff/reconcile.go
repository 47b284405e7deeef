package diff

import (
	"fmt"
	"sort"
)

// reconcile runs the id-keyed array reconciliation shared by every content
// shape. Items present only in the new list are reported as added, items
// present only in the old list as removed, and items present in both are
// handed to diffItem for field-level comparison. Output order is
// deterministic: added, then removed, then modified, each sorted by id.
func reconcile[T any](
	arrayName string,
	oldItems, newItems []T,
	idOf func(T) string,
	labelOf func(T) string,
	diffItem func(prefix string, before, after T) []Change,
) []Change {
	oldByID := make(map[string]T, len(oldItems))
	for _, item := range oldItems {
		oldByID[idOf(item)] = item
	}
	newByID := make(map[string]T, len(newItems))
	for _, item := range newItems {
		newByID[idOf(item)] = item
	}

	var changes []Change

	for _, id := range sortedIDs(newByID) {
		if _, ok := oldByID[id]; ok {
			continue
		}
		item := newByID[id]
		changes = append(changes, Change{
			Type:        Added,
			Path:        arrayName + "." + id,
			NewValue:    item,
			Description: fmt.Sprintf("Added %s", labelOf(item)),
		})
	}

	for _, id := range sortedIDs(oldByID) {
		if _, ok := newByID[id]; ok {
			continue
		}
		item := oldByID[id]
		changes = append(changes, Change{
			Type:        Removed,
			Path:        arrayName + "." + id,
			OldValue:    item,
			Description: fmt.Sprintf("Removed %s", labelOf(item)),
		})
	}

	for _, id := range sortedIDs(oldByID) {
		after, ok := newByID[id]
		if !ok {
			continue
		}
		changes = append(changes, diffItem(arrayName+"."+id, oldByID[id], after)...)
	}

	return changes
}

func sortedIDs[T any](m map[string]T) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
