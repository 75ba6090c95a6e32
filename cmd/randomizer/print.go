package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/KirkDiggler/kingdom-randomizer/internal/entities"
	kingdomsession "github.com/KirkDiggler/kingdom-randomizer/internal/repositories/kingdom_session"
	"github.com/KirkDiggler/kingdom-randomizer/internal/serializer"
)

func printKingdom(w io.Writer, k *entities.Kingdom) error {
	return printKingdomWithLocks(w, k, entities.Selection{})
}

// printKingdomWithLocks prints the supply by cost, then the addons. Locked
// cards are starred.
func printKingdomWithLocks(w io.Writer, k *entities.Kingdom, selection entities.Selection) error {
	if jsonOutput {
		data, err := json.MarshalIndent(map[string]interface{}{
			"kingdom": k,
			"query":   serializer.Encode(k),
		}, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	if k == nil {
		_, err := fmt.Fprintln(w, "(no kingdom yet)")
		return err
	}

	fmt.Fprintf(w, "Kingdom %s\n", k.ID)

	cards := slices.Clone(k.Supply.Cards)
	slices.SortStableFunc(cards, func(a, b *entities.SupplyCard) int {
		return a.Cost.Tier() - b.Cost.Tier()
	})
	for _, card := range cards {
		fmt.Fprintf(w, " %s %-20s %-6s %-12s %s\n",
			lockMark(selection, card.ID), card.Name, formatCost(card.Cost), card.SetID, formatTypes(card.Types))
	}

	for _, addon := range k.Addons().All() {
		fmt.Fprintf(w, " %s %-20s %-6s %-12s %s\n",
			lockMark(selection, addon.ID), addon.Name, formatCost(addon.Cost), addon.SetID, addon.Kind)
	}

	_, err := fmt.Fprintf(w, "share: ?%s\n", serializer.Encode(k))
	return err
}

func printSession(w io.Writer, session *kingdomsession.Session) error {
	if !jsonOutput {
		s := session.Settings
		fmt.Fprintf(w, "Session %s (updated %s)\n", session.ID, session.UpdatedAt.Format("2006-01-02 15:04"))
		fmt.Fprintf(w, "sets: %v  addons: %d  attacks: %t\n", s.SelectedSets, s.AddonCount, s.AllowAttacks)
	}
	return printKingdomWithLocks(w, session.Kingdom, session.Selection)
}

func lockMark(selection entities.Selection, id string) string {
	if selection.Contains(id) {
		return "*"
	}
	return " "
}

func formatCost(cost entities.Cost) string {
	var parts []string
	if cost.Treasure > 0 || (cost.Potion == 0 && cost.Debt == 0) {
		parts = append(parts, fmt.Sprintf("$%d", cost.Treasure))
	}
	if cost.Potion > 0 {
		parts = append(parts, fmt.Sprintf("%dP", cost.Potion))
	}
	if cost.Debt > 0 {
		parts = append(parts, fmt.Sprintf("%dD", cost.Debt))
	}
	return strings.Join(parts, "+")
}

func formatTypes(types []entities.CardType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, "-")
}
