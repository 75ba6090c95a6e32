package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/kingdom-randomizer/internal/errors"
	"github.com/KirkDiggler/kingdom-randomizer/internal/notify"
	"github.com/KirkDiggler/kingdom-randomizer/internal/orchestrators/kingdom"
	kingdomsession "github.com/KirkDiggler/kingdom-randomizer/internal/repositories/kingdom_session"
)

var (
	playSettings settingsFlags
	playQuery    string
	playVerbose  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive session: lock cards and reroll",
	Long: `Starts a session and reads commands from stdin:

  reroll            redraw every unlocked card
  full              draw a whole new kingdom
  lock CARD...      lock cards (ids or short ids)
  unlock CARD...    unlock cards
  load QUERY        load a share link query
  show              print the kingdom
  help              list commands
  quit              leave`,
	Args: cobra.NoArgs,
	RunE: withApp(runPlay),
}

func init() {
	playSettings.register(playCmd.Flags())
	playCmd.Flags().StringVar(&playQuery, "load", "", "start from a share link query")
	playCmd.Flags().BoolVarP(&playVerbose, "verbose", "v", false, "print every notification")
}

func runPlay(cmd *cobra.Command, a *app, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if playVerbose {
		ids := watchNotifications(a.notifier, out)
		defer func() { _ = a.notifier.Unsubscribe(ids...) }()
	}

	created, err := a.service.CreateSession(ctx, &kingdom.CreateSessionInput{
		Settings: playSettings.settings(cfg.DefaultSets),
	})
	if err != nil {
		return err
	}
	sessionID := created.Session.ID

	loaded, err := a.service.LoadInitialKingdom(ctx, &kingdom.LoadInitialKingdomInput{
		SessionID: sessionID,
		Query:     playQuery,
	})
	if err != nil {
		return err
	}
	if err := printSession(out, loaded.Session); err != nil {
		return err
	}

	p := &player{service: a.service, sessionID: sessionID, out: out}
	return p.run(ctx, cmd.InOrStdin())
}

// watchNotifications prints every notification the orchestrator publishes
func watchNotifications(notifier *notify.BusNotifier, out io.Writer) []string {
	show := func(_ context.Context, e events.Event) error {
		line := "event: " + e.Type()
		if msg, ok := e.Context().Get(notify.ContextError); ok {
			line += fmt.Sprintf(" (%v)", msg)
		}
		fmt.Fprintln(out, line)
		return nil
	}

	var ids []string
	for _, eventType := range []notify.EventType{
		notify.EventRandomizeKingdom,
		notify.EventRandomizePartial,
		notify.EventRandomizeSupply,
		notify.EventRandomizeAddons,
		notify.EventLoadFullKingdom,
		notify.EventLoadPartialKingdom,
	} {
		ids = append(ids, notifier.Subscribe(eventType, show)...)
	}
	return ids
}

// player runs the interactive command loop against one session
type player struct {
	service   kingdom.Service
	sessionID string
	out       io.Writer
}

func (p *player) run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(p.out, "> ")
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) > 0 {
			if fields[0] == "quit" || fields[0] == "exit" {
				return nil
			}
			if err := p.exec(ctx, fields[0], fields[1:]); err != nil {
				// A failed draw keeps the previous kingdom, so the loop goes on
				fmt.Fprintf(p.out, "error: %s\n", describe(err))
			}
		}
		fmt.Fprint(p.out, "> ")
	}
	return scanner.Err()
}

func (p *player) exec(ctx context.Context, command string, args []string) error {
	var (
		session *kingdomsession.Session
		err     error
	)

	switch command {
	case "reroll", "r":
		var output *kingdom.RandomizeOutput
		output, err = p.service.Randomize(ctx, &kingdom.RandomizeInput{SessionID: p.sessionID})
		if output != nil {
			session = output.Session
		}
	case "full", "f":
		var output *kingdom.RandomizeOutput
		output, err = p.service.RandomizeFullKingdom(ctx, &kingdom.RandomizeInput{SessionID: p.sessionID})
		if output != nil {
			session = output.Session
		}
	case "lock", "l":
		for _, cardID := range args {
			var output *kingdom.SelectCardOutput
			output, err = p.service.SelectCard(ctx, &kingdom.SelectCardInput{SessionID: p.sessionID, CardID: cardID})
			if err != nil {
				break
			}
			session = output.Session
		}
	case "unlock", "u":
		for _, cardID := range args {
			var output *kingdom.UnselectCardOutput
			output, err = p.service.UnselectCard(ctx, &kingdom.UnselectCardInput{SessionID: p.sessionID, CardID: cardID})
			if err != nil {
				break
			}
			session = output.Session
		}
	case "load":
		if len(args) != 1 {
			return errors.InvalidArgument("usage: load QUERY")
		}
		var output *kingdom.RandomizeOutput
		output, err = p.service.LoadInitialKingdom(ctx, &kingdom.LoadInitialKingdomInput{SessionID: p.sessionID, Query: args[0]})
		if output != nil {
			session = output.Session
		}
	case "show", "s":
		var output *kingdom.GetSessionOutput
		output, err = p.service.GetSession(ctx, &kingdom.GetSessionInput{SessionID: p.sessionID})
		if output != nil {
			session = output.Session
		}
	case "help", "h", "?":
		fmt.Fprintln(p.out, "commands: reroll, full, lock CARD..., unlock CARD..., load QUERY, show, quit")
		return nil
	default:
		return errors.InvalidArgumentf("unknown command %q, try help", command)
	}

	if err != nil {
		return err
	}
	if session == nil {
		return nil
	}
	return printSession(p.out, session)
}

// describe turns an error into a message for the prompt
func describe(err error) string {
	msg := errors.GetMessage(err)
	if unmet, ok := errors.GetMeta(err)["unmet_requirements"]; ok {
		msg += fmt.Sprintf(" (unmet: %v)", unmet)
	}
	return msg
}
