package main

import (
	"errors"
	"fmt"
	"sync"

	"dragon-clan/clan"
	"dragon-clan/dragon"
	"dragon-clan/element"
	"dragon-clan/names"
)

var errNoClan = errors.New("no clan has been created")

// result is the JSON shape every live binding returns.
type result struct {
	OK    bool   `json:"ok"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

func resultOf(data any, err error) string {
	if err != nil {
		return mustJSON(result{Error: err.Error()})
	}
	return mustJSON(result{OK: true, Data: data})
}

type eventPayload struct {
	Type        string                 `json:"type"`
	ClanName    string                 `json:"clanName"`
	DragonCount int                    `json:"dragonCount"`
	Dragon      *clan.DragonInfo       `json:"dragon,omitempty"`
	Interaction *clan.InteractionEvent `json:"interaction,omitempty"`
	Error       string                 `json:"error,omitempty"`
}

func payloadOf(ev clan.Event) eventPayload {
	p := eventPayload{
		Type:        ev.Type.String(),
		ClanName:    ev.ClanName,
		DragonCount: ev.DragonCount,
		Dragon:      ev.Dragon,
		Interaction: ev.Interaction,
	}
	if ev.Err != nil {
		p.Error = ev.Err.Error()
	}
	return p
}

type listener struct {
	t  clan.EventType
	fn func(string)
}

// service holds the clan driven from JavaScript. Listeners live on the
// service and carry over to each new clan.
type service struct {
	mu        sync.Mutex
	c         *clan.Clan
	listeners map[int]listener
	nextID    int
}

func newService() *service {
	return &service{listeners: make(map[int]listener)}
}

func parseEventType(raw string) (clan.EventType, error) {
	for t, name := range clan.EventTypeDictionary {
		if name == raw {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown event type %q", raw)
}

func (s *service) current() (*clan.Clan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.c == nil {
		return nil, errNoClan
	}
	return s.c, nil
}

func (s *service) fanOut(ev clan.Event) {
	s.mu.Lock()
	var fns []func(string)
	for id := 1; id <= s.nextID; id++ {
		if l, ok := s.listeners[id]; ok && l.t == ev.Type {
			fns = append(fns, l.fn)
		}
	}
	s.mu.Unlock()
	if len(fns) == 0 {
		return
	}
	raw := mustJSON(payloadOf(ev))
	for _, fn := range fns {
		fn(raw)
	}
}

// createClan replaces the current clan. s.mu must not be held here: the
// creation events reach fanOut before clan.New returns.
func (s *service) createClan(dragons int, seed int64) (clan.Stats, error) {
	cfg := clan.DefaultConfig()
	cfg.InitialDragons = dragons
	cfg.Seed = seed

	opts := make([]clan.Option, 0, len(clan.EventTypeDictionary))
	for t := range clan.EventTypeDictionary {
		opts = append(opts, clan.WithListener(t, s.fanOut))
	}
	c, err := clan.New(cfg, opts...)
	if err != nil {
		return clan.Stats{}, err
	}

	s.mu.Lock()
	s.c = c
	s.mu.Unlock()
	return c.Stats(), nil
}

func (s *service) stats() (clan.Stats, error) {
	c, err := s.current()
	if err != nil {
		return clan.Stats{}, err
	}
	return c.Stats(), nil
}

func (s *service) dragons() ([]clan.DragonInfo, error) {
	c, err := s.current()
	if err != nil {
		return nil, err
	}
	return c.Dragons(), nil
}

func (s *service) addRandomDragon() (clan.DragonInfo, error) {
	c, err := s.current()
	if err != nil {
		return clan.DragonInfo{}, err
	}
	return c.AddRandomDragon()
}

func (s *service) addDragon(name, elem string, age int) (clan.DragonInfo, error) {
	c, err := s.current()
	if err != nil {
		return clan.DragonInfo{}, err
	}
	e, err := element.Parse(elem)
	if err != nil {
		return clan.DragonInfo{}, err
	}
	return c.AddDragon(name, e, age)
}

func (s *service) removeDragon(index int) (clan.DragonInfo, error) {
	c, err := s.current()
	if err != nil {
		return clan.DragonInfo{}, err
	}
	return c.Remove(index)
}

func (s *service) simulate(n int) ([]clan.InteractionEvent, error) {
	c, err := s.current()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("interaction count must be >= 0, got %d", n)
	}
	return c.SimulateInteractions(n)
}

func (s *service) relationship(i, j int) (string, error) {
	c, err := s.current()
	if err != nil {
		return "", err
	}
	return c.RelationshipInfo(i, j)
}

func (s *service) subscribe(raw string, fn func(string)) (int, error) {
	t, err := parseEventType(raw)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.listeners[s.nextID] = listener{t: t, fn: fn}
	return s.nextID, nil
}

func (s *service) unsubscribe(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.listeners[id]; !ok {
		return false
	}
	delete(s.listeners, id)
	return true
}

func generateDragonName(elem string, seed int64) (string, error) {
	var e element.Element
	if elem != "" {
		parsed, err := element.Parse(elem)
		if err != nil {
			return "", err
		}
		e = parsed
	}
	return names.NewGenerator(dragon.NewRand(seed)).DragonName(e), nil
}

func generateClanName(seed int64) string {
	return names.NewGenerator(dragon.NewRand(seed)).ClanName()
}
