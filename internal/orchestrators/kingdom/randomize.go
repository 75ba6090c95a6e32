package kingdom

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/kingdom-randomizer/internal/entities"
	"github.com/KirkDiggler/kingdom-randomizer/internal/errors"
	"github.com/KirkDiggler/kingdom-randomizer/internal/notify"
	"github.com/KirkDiggler/kingdom-randomizer/internal/randomizer"
	kingdomsession "github.com/KirkDiggler/kingdom-randomizer/internal/repositories/kingdom_session"
	"github.com/KirkDiggler/kingdom-randomizer/internal/serializer"
)

// RandomizeFullKingdom replaces the session's kingdom with a new one and
// clears its locks
func (o *orchestrator) RandomizeFullKingdom(ctx context.Context, input *RandomizeInput) (*RandomizeOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return o.randomizeFull(ctx, session)
}

func (o *orchestrator) randomizeFull(ctx context.Context, session *kingdomsession.Session) (*RandomizeOutput, error) {
	const event = notify.EventRandomizeKingdom

	settings := session.Settings
	if len(settings.SelectedSets) == 0 {
		err := errors.InvalidArgument("select at least one set before randomizing")
		o.fail(ctx, event, session, err)
		return nil, err
	}

	builder := optionsFor(settings)

	// With enough sets to choose from, a new kingdom should not repeat the
	// one on display
	var displayed []string
	if session.Kingdom != nil && len(settings.SelectedSets) >= excludeDisplayedMinSets && settings.PrioritizeSet == "" {
		displayed = session.Kingdom.Supply.IDs()
	}

	buildOutput, err := o.BuildFullKingdom(ctx, &BuildFullKingdomInput{
		Options: builder.SetExcludeCardIDs(displayed...).Build(),
	})
	if err != nil && len(displayed) > 0 && randomizer.IsUnsatisfiable(err) {
		slog.Debug("Retrying full randomize with the displayed supply allowed", "session_id", session.ID)
		buildOutput, err = o.BuildFullKingdom(ctx, &BuildFullKingdomInput{
			Options: builder.SetExcludeCardIDs().Build(),
		})
	}
	if err != nil {
		o.fail(ctx, event, session, err)
		return nil, err
	}

	return o.commit(ctx, event, session, buildOutput.Kingdom)
}

// Randomize redraws every unlocked card of the session's kingdom. Without
// a kingdom or any lock it is a full randomize.
func (o *orchestrator) Randomize(ctx context.Context, input *RandomizeInput) (*RandomizeOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if session.Kingdom == nil || session.Selection.IsEmpty() {
		return o.randomizeFull(ctx, session)
	}

	builder := optionsFor(session.Settings)
	l := locksFor(session.Kingdom, session.Selection)
	event := partialEventFor(l, builder.Build().AddonCount)

	// Redrawn slots should change, so the unlocked cards on display are
	// excluded unless that leaves no valid supply
	var unlocked []string
	for _, id := range session.Kingdom.Supply.IDs() {
		if !session.Selection.Contains(id) {
			unlocked = append(unlocked, id)
		}
	}

	buildOutput, err := o.BuildPartialKingdom(ctx, &BuildPartialKingdomInput{
		Current:   session.Kingdom,
		Selection: session.Selection,
		Options:   builder.SetExcludeCardIDs(unlocked...).Build(),
	})
	if err != nil && len(unlocked) > 0 && randomizer.IsUnsatisfiable(err) {
		slog.Debug("Retrying partial randomize with the displayed supply allowed", "session_id", session.ID)
		buildOutput, err = o.BuildPartialKingdom(ctx, &BuildPartialKingdomInput{
			Current:   session.Kingdom,
			Selection: session.Selection,
			Options:   builder.SetExcludeCardIDs().Build(),
		})
	}
	if err != nil {
		o.fail(ctx, event, session, err)
		return nil, err
	}

	return o.commit(ctx, event, session, buildOutput.Kingdom)
}

// partialEventFor names a partial redraw by what it replaces
func partialEventFor(l locks, requestedAddons int) notify.EventType {
	if l.allLocked() {
		return notify.EventRandomizePartial
	}
	supply := !l.supplyLocked()
	addons := l.addonRedrawCount(requestedAddons) > 0 || len(l.addons) < l.addonTotal

	switch {
	case supply && !addons:
		return notify.EventRandomizeSupply
	case addons && !supply:
		return notify.EventRandomizeAddons
	default:
		return notify.EventRandomizePartial
	}
}

// LoadInitialKingdom loads a kingdom from a share-link query. A complete
// supply is used as is; a short one is filled around the cards it names.
// An empty or unusable query falls back to a full randomize.
func (o *orchestrator) LoadInitialKingdom(ctx context.Context, input *LoadInitialKingdomInput) (*RandomizeOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, err := o.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if input.Query == "" {
		return o.randomizeFull(ctx, session)
	}

	decoded, err := serializer.Decode(ctx, o.catalog, input.Query)
	if err != nil {
		slog.Warn("Could not load kingdom from query, randomizing instead",
			"session_id", session.ID,
			"error", err,
		)
		return o.randomizeFull(ctx, session)
	}

	if decoded.Supply.IsComplete() {
		kingdom := decoded.WithIdentity(o.idGen.Generate(), o.clock.Now())
		return o.commit(ctx, notify.EventLoadFullKingdom, session, kingdom)
	}

	const event = notify.EventLoadPartialKingdom
	setIDs := session.Settings.SelectedSets
	if len(setIDs) == 0 {
		setIDs = setsOf(decoded)
	}

	opts := optionsFor(session.Settings).
		SetSetIDs(setIDs...).
		SetIncludeCardIDs(decoded.Supply.IDs()...).
		Build()

	supply, err := o.engine.SampleSupply(ctx, o.catalog, opts)
	if err != nil {
		o.fail(ctx, event, session, err)
		return o.randomizeFull(ctx, session)
	}

	kingdom := decoded.WithSupply(supply).WithIdentity(o.idGen.Generate(), o.clock.Now())
	return o.commit(ctx, event, session, kingdom)
}

// setsOf lists the sets a kingdom's cards come from, in first-seen order
func setsOf(kingdom *entities.Kingdom) []entities.SetID {
	var sets []entities.SetID
	seen := make(map[entities.SetID]bool)
	for _, id := range kingdom.CardIDs() {
		card, _ := kingdom.FindCard(id)
		setID := card.Base().SetID
		if !seen[setID] {
			seen[setID] = true
			sets = append(sets, setID)
		}
	}
	return sets
}

// commit stores kingdom as the session's current kingdom, clears the locks
// and reports success
func (o *orchestrator) commit(ctx context.Context, event notify.EventType, session *kingdomsession.Session, kingdom *entities.Kingdom) (*RandomizeOutput, error) {
	next := *session
	next.Kingdom = kingdom
	next.Selection = session.Selection.Cleared()

	saved, err := o.saveSession(ctx, &next)
	if err != nil {
		o.fail(ctx, event, session, err)
		return nil, err
	}

	slog.Info("Kingdom randomized",
		"session_id", saved.ID,
		"kingdom_id", kingdom.ID,
		"event", event,
		"supply", kingdom.Supply.IDs(),
	)

	o.notifier.Notify(ctx, notify.Notification{
		Type:      event,
		SessionID: saved.ID,
		Kingdom:   kingdom,
	})

	return &RandomizeOutput{
		Session: saved,
		Kingdom: kingdom,
		Event:   event,
	}, nil
}

// fail logs and reports a failed operation. The stored session is never
// touched here.
func (o *orchestrator) fail(ctx context.Context, event notify.EventType, session *kingdomsession.Session, err error) {
	switch {
	case randomizer.IsUnsatisfiable(err):
		slog.Warn("Kingdom constraints could not be satisfied",
			"session_id", session.ID,
			"event", event,
			"error", err,
			"meta", errors.GetMeta(err),
		)
	default:
		slog.Error("Kingdom randomization failed",
			"session_id", session.ID,
			"event", event,
			"code", errors.GetCode(err),
			"error", err,
		)
	}

	o.notifier.Notify(ctx, notify.Notification{
		Type:      event,
		Failed:    true,
		SessionID: session.ID,
		Kingdom:   session.Kingdom,
		Err:       err,
	})
}
