package entities

import "slices"

// Selection holds the ids of cards the user locked in the current kingdom.
// Supply locks and addon locks are kept apart. All methods return a new
// Selection and leave the receiver untouched.
type Selection struct {
	SelectedSupplyIDs []string `json:"selected_supply_ids,omitempty"`
	SelectedAddonIDs  []string `json:"selected_addon_ids,omitempty"`
}

// Contains reports whether id is locked in either partition
func (s Selection) Contains(id string) bool {
	return slices.Contains(s.SelectedSupplyIDs, id) || slices.Contains(s.SelectedAddonIDs, id)
}

// IsEmpty reports whether nothing is locked
func (s Selection) IsEmpty() bool {
	return len(s.SelectedSupplyIDs) == 0 && len(s.SelectedAddonIDs) == 0
}

// WithAdded locks id, routing it to the partition matching card's variant.
// Adding an id that is already locked returns an equivalent selection.
func (s Selection) WithAdded(id string, card AnyCard) Selection {
	if s.Contains(id) {
		return s.copy()
	}

	next := s.copy()
	switch card.(type) {
	case *SupplyCard:
		next.SelectedSupplyIDs = append(next.SelectedSupplyIDs, id)
	case *Addon:
		next.SelectedAddonIDs = append(next.SelectedAddonIDs, id)
	}
	return next
}

// WithRemoved unlocks id. Removing an id that is not locked is a no-op.
func (s Selection) WithRemoved(id string) Selection {
	keep := func(existing string) bool { return existing != id }
	return Selection{
		SelectedSupplyIDs: filterIDs(s.SelectedSupplyIDs, keep),
		SelectedAddonIDs:  filterIDs(s.SelectedAddonIDs, keep),
	}
}

// Cleared returns a selection with both partitions empty
func (s Selection) Cleared() Selection {
	return Selection{}
}

func (s Selection) copy() Selection {
	return Selection{
		SelectedSupplyIDs: slices.Clone(s.SelectedSupplyIDs),
		SelectedAddonIDs:  slices.Clone(s.SelectedAddonIDs),
	}
}

func filterIDs(ids []string, keep func(string) bool) []string {
	var out []string
	for _, id := range ids {
		if keep(id) {
			out = append(out, id)
		}
	}
	return out
}
