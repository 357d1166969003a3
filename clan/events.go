package clan

import (
	"fmt"
	"log/slog"
)

// EventType classifies clan notifications.
type EventType byte

const (
	EventClanCreated EventType = iota + 1
	EventDragonAdded
	EventDragonRemoved
	EventInteractionSimulated
	EventClanReset
	EventError
)

var EventTypeDictionary = map[EventType]string{
	EventClanCreated:          "clan-created",
	EventDragonAdded:          "dragon-added",
	EventDragonRemoved:        "dragon-removed",
	EventInteractionSimulated: "interaction-simulated",
	EventClanReset:            "clan-reset",
	EventError:                "error",
}

func (t EventType) String() string {
	if name, ok := EventTypeDictionary[t]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", byte(t))
}

// Event is delivered to listeners after the clan operation that caused it
// has finished. Only the fields relevant to Type are set.
type Event struct {
	Type        EventType
	ClanName    string
	DragonCount int
	Dragon      *DragonInfo
	Interaction *InteractionEvent
	Err         error
}

type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}

// Subscribe registers fn for events of type t. The returned func removes it.
func (c *Clan) Subscribe(t EventType, fn Listener) (unsubscribe func()) {
	c.lmu.Lock()
	defer c.lmu.Unlock()
	c.nextSubID++
	id := c.nextSubID
	c.listeners[t] = append(c.listeners[t], subscription{id: id, fn: fn})
	return func() {
		c.lmu.Lock()
		defer c.lmu.Unlock()
		subs := c.listeners[t]
		for i, s := range subs {
			if s.id == id {
				c.listeners[t] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// emit queues an event; it is delivered when the current operation unlocks.
// Callers hold c.mu.
func (c *Clan) emit(ev Event) {
	c.pending = append(c.pending, ev)
}

// unlockAndDispatch releases c.mu and then delivers queued events, so
// listeners may call back into the clan.
func (c *Clan) unlockAndDispatch() {
	events := c.pending
	c.pending = nil
	c.mu.Unlock()
	for _, ev := range events {
		c.dispatch(ev)
	}
}

func (c *Clan) snapshotListeners(t EventType) []subscription {
	c.lmu.Lock()
	defer c.lmu.Unlock()
	return append([]subscription(nil), c.listeners[t]...)
}

func (c *Clan) dispatch(ev Event) {
	for _, s := range c.snapshotListeners(ev.Type) {
		if err := c.call(s.fn, ev); err != nil {
			c.logger.Error("listener panicked", slog.String("event", ev.Type.String()), slog.Any("err", err))
			if ev.Type != EventError {
				c.dispatch(Event{Type: EventError, ClanName: ev.ClanName, Err: err})
			}
		}
	}
}

func (c *Clan) call(fn Listener, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("listener for %s: %v", ev.Type, r)
		}
	}()
	fn(ev)
	return nil
}
