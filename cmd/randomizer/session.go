package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/kingdom-randomizer/internal/orchestrators/kingdom"
)

var (
	sessionSettings settingsFlags
	listLimit       int
	listLong        bool
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage randomizer sessions",
	Long: `Sessions keep a kingdom, its locked cards and the randomizer settings
between commands. They need --redis (or RANDOMIZER_REDIS_ADDR); without it
a session only lives for one command. Use "play" for an interactive session.`,
}

var sessionCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Start a session and draw its first kingdom",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
		ctx := cmd.Context()

		created, err := a.service.CreateSession(ctx, &kingdom.CreateSessionInput{
			Settings: sessionSettings.settings(cfg.DefaultSets),
		})
		if err != nil {
			return err
		}

		output, err := a.service.RandomizeFullKingdom(ctx, &kingdom.RandomizeInput{SessionID: created.Session.ID})
		if err != nil {
			return err
		}
		return printSession(cmd.OutOrStdout(), output.Session)
	}),
}

var sessionShowCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Show a session's kingdom and locks",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		output, err := a.service.GetSession(cmd.Context(), &kingdom.GetSessionInput{SessionID: args[0]})
		if err != nil {
			return err
		}
		return printSession(cmd.OutOrStdout(), output.Session)
	}),
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recently used sessions",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
		output, err := a.service.ListSessions(cmd.Context(), &kingdom.ListSessionsInput{
			Limit:    listLimit,
			Detailed: listLong,
		})
		if err != nil {
			return err
		}

		if !listLong {
			for _, id := range output.SessionIDs {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		}
		for _, session := range output.Sessions {
			kingdomID := "-"
			if session.Kingdom != nil {
				kingdomID = session.Kingdom.ID
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %v  kingdom %s\n",
				session.ID, session.UpdatedAt.Format("2006-01-02 15:04"), session.Settings.SelectedSets, kingdomID)
		}
		return nil
	}),
}

var sessionFullCmd = &cobra.Command{
	Use:   "full [session-id]",
	Short: "Replace the whole kingdom, ignoring locks",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		output, err := a.service.RandomizeFullKingdom(cmd.Context(), &kingdom.RandomizeInput{SessionID: args[0]})
		if err != nil {
			return err
		}
		return printSession(cmd.OutOrStdout(), output.Session)
	}),
}

var sessionRerollCmd = &cobra.Command{
	Use:   "reroll [session-id]",
	Short: "Redraw every unlocked card",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		output, err := a.service.Randomize(cmd.Context(), &kingdom.RandomizeInput{SessionID: args[0]})
		if err != nil {
			return err
		}
		return printSession(cmd.OutOrStdout(), output.Session)
	}),
}

var sessionLockCmd = &cobra.Command{
	Use:   "lock [session-id] [card...]",
	Short: "Lock cards so a reroll keeps them",
	Args:  cobra.MinimumNArgs(2),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		var output *kingdom.SelectCardOutput
		for _, cardID := range args[1:] {
			var err error
			output, err = a.service.SelectCard(cmd.Context(), &kingdom.SelectCardInput{SessionID: args[0], CardID: cardID})
			if err != nil {
				return err
			}
		}
		return printSession(cmd.OutOrStdout(), output.Session)
	}),
}

var sessionUnlockCmd = &cobra.Command{
	Use:   "unlock [session-id] [card...]",
	Short: "Unlock cards",
	Args:  cobra.MinimumNArgs(2),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		var output *kingdom.UnselectCardOutput
		for _, cardID := range args[1:] {
			var err error
			output, err = a.service.UnselectCard(cmd.Context(), &kingdom.UnselectCardInput{SessionID: args[0], CardID: cardID})
			if err != nil {
				return err
			}
		}
		return printSession(cmd.OutOrStdout(), output.Session)
	}),
}

var sessionLoadCmd = &cobra.Command{
	Use:   "load [session-id] [query]",
	Short: "Load a kingdom from a share link query",
	Long: `Load a kingdom from a share link query such as
"supply=village,market&events=alms". A query naming fewer than ten supply
cards is completed from the session's sets.`,
	Args: cobra.ExactArgs(2),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		output, err := a.service.LoadInitialKingdom(cmd.Context(), &kingdom.LoadInitialKingdomInput{
			SessionID: args[0],
			Query:     args[1],
		})
		if err != nil {
			return err
		}
		return printSession(cmd.OutOrStdout(), output.Session)
	}),
}

var sessionSettingsCmd = &cobra.Command{
	Use:   "settings [session-id]",
	Short: "Change a session's settings; only the flags given are changed",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		ctx := cmd.Context()

		current, err := a.service.GetSession(ctx, &kingdom.GetSessionInput{SessionID: args[0]})
		if err != nil {
			return err
		}

		output, err := a.service.UpdateSettings(ctx, &kingdom.UpdateSettingsInput{
			SessionID: args[0],
			Settings:  sessionSettings.apply(cmd.Flags(), current.Session.Settings),
		})
		if err != nil {
			return err
		}
		return printSession(cmd.OutOrStdout(), output.Session)
	}),
}

func init() {
	sessionSettings.register(sessionCreateCmd.Flags())
	sessionSettings.register(sessionSettingsCmd.Flags())
	sessionListCmd.Flags().IntVar(&listLimit, "limit", 20, "maximum number of sessions")
	sessionListCmd.Flags().BoolVarP(&listLong, "long", "l", false, "show each session's sets and kingdom")

	sessionCmd.AddCommand(sessionCreateCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionFullCmd)
	sessionCmd.AddCommand(sessionRerollCmd)
	sessionCmd.AddCommand(sessionLockCmd)
	sessionCmd.AddCommand(sessionUnlockCmd)
	sessionCmd.AddCommand(sessionLoadCmd)
	sessionCmd.AddCommand(sessionSettingsCmd)
}

// withApp wires the dependencies for a command and closes them afterwards
func withApp(run func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer a.Close()
		return run(cmd, a, args)
	}
}
