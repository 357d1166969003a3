package clan

import (
	"fmt"
	"log/slog"
)

// SimulateInteraction picks two distinct dragons at random and lets the
// first interact with the second.
func (c *Clan) SimulateInteraction() (InteractionEvent, error) {
	c.mu.Lock()
	defer c.unlockAndDispatch()
	return c.simulateLocked()
}

// SimulateInteractions runs n random interactions and returns them in order.
func (c *Clan) SimulateInteractions(n int) ([]InteractionEvent, error) {
	c.mu.Lock()
	defer c.unlockAndDispatch()
	out := make([]InteractionEvent, 0, n)
	for i := 0; i < n; i++ {
		ev, err := c.simulateLocked()
		if err != nil {
			return out, err
		}
		out = append(out, ev)
	}
	return out, nil
}

// InteractBetween runs one interaction initiated by dragon i toward dragon j.
func (c *Clan) InteractBetween(i, j int) (InteractionEvent, error) {
	c.mu.Lock()
	defer c.unlockAndDispatch()
	return c.interactLocked(i, j)
}

func (c *Clan) simulateLocked() (InteractionEvent, error) {
	n := len(c.dragons)
	if n < 2 {
		err := fmt.Errorf("%w: have %d", ErrNotEnoughDragons, n)
		c.logger.Warn("cannot simulate interaction", slog.Int("dragons", n))
		c.emit(Event{Type: EventError, ClanName: c.name, DragonCount: n, Err: err})
		return InteractionEvent{}, err
	}
	i := c.rng.Intn(n)
	j := c.rng.Intn(n - 1)
	if j >= i {
		j++
	}
	return c.interactLocked(i, j)
}

// interactLocked resolves from i's side, then lets j react to the same event.
func (c *Clan) interactLocked(i, j int) (InteractionEvent, error) {
	a, b, err := c.pairLocked(i, j)
	if err != nil {
		return InteractionEvent{}, err
	}
	out, err := a.InteractWith(b, c.rng)
	if err != nil {
		return InteractionEvent{}, fmt.Errorf("interact %s with %s: %w", a.Name, b.Name, err)
	}
	reciprocal, err := b.ApplyReciprocal(a, out.Description, out.OpinionChange, c.rng)
	if err != nil {
		return InteractionEvent{}, fmt.Errorf("reciprocal %s to %s: %w", b.Name, a.Name, err)
	}

	c.seq++
	ev := InteractionEvent{
		Seq:              c.seq,
		DragonIndex:      i,
		OtherIndex:       j,
		Dragon:           a.Name,
		Other:            b.Name,
		Description:      out.Description,
		OpinionChange:    out.OpinionChange,
		ReciprocalChange: reciprocal,
		Kind:             out.Kind,
	}
	c.metrics.recordInteraction(&ev)
	c.logger.Debug("interaction",
		slog.Int("seq", ev.Seq),
		slog.String("dragon", a.Name),
		slog.String("other", b.Name),
		slog.String("kind", out.Kind.String()),
		slog.Int("opinion_change", out.OpinionChange),
		slog.Float64("reciprocal_change", reciprocal),
	)
	c.emit(Event{Type: EventInteractionSimulated, ClanName: c.name, DragonCount: len(c.dragons), Interaction: &ev})
	return ev, nil
}
