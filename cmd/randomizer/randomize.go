package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/kingdom-randomizer/internal/orchestrators/kingdom"
	"github.com/KirkDiggler/kingdom-randomizer/internal/randomizer"
)

var (
	oneShotSettings settingsFlags
	includeCards    []string
	excludeCards    []string
)

var randomizeCmd = &cobra.Command{
	Use:   "randomize",
	Short: "Draw a single kingdom",
	Long:  `Draw a kingdom without keeping a session and print it with its share link query.`,
	Args:  cobra.NoArgs,
	RunE:  runRandomize,
}

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List the sets in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		cat, err := loadCatalog(cfg.CatalogPath)
		if err != nil {
			return err
		}

		sets, err := cat.Sets(ctx)
		if err != nil {
			return err
		}
		for _, set := range sets {
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s %-20s %3d cards %3d addons\n",
				set.ID, set.Name, len(set.SupplyCards), len(set.Addons))
		}
		return nil
	},
}

func init() {
	oneShotSettings.register(randomizeCmd.Flags())
	randomizeCmd.Flags().StringSliceVar(&includeCards, "include", nil, "cards that must be in the supply (ids or short ids)")
	randomizeCmd.Flags().StringSliceVar(&excludeCards, "exclude", nil, "cards that must not be in the supply")
}

func runRandomize(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	settings := oneShotSettings.settings(cfg.DefaultSets)
	opts := randomizer.NewOptionsBuilderFromSettings(settings, randomizer.FeaturesFor(settings)).
		SetSetIDs(settings.SelectedSets...).
		SetExcludeTypes(randomizer.ExcludeTypesFor(settings)...).
		SetIncludeCardIDs(includeCards...).
		SetExcludeCardIDs(excludeCards...).
		Build()

	output, err := a.service.BuildFullKingdom(ctx, &kingdom.BuildFullKingdomInput{Options: opts})
	if err != nil {
		return err
	}

	return printKingdom(cmd.OutOrStdout(), output.Kingdom)
}
