// Package clan manages a population of dragons and drives their
// interactions.
package clan

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"dragon-clan/dragon"
	"dragon-clan/element"
	"dragon-clan/names"
)

// DragonInfo is a read-only snapshot of one clan member.
type DragonInfo struct {
	Index   int             `json:"index"`
	ID      uuid.UUID       `json:"id"`
	Name    string          `json:"name"`
	Element element.Element `json:"element"`
	Age     int             `json:"age"`
	Energy  int             `json:"energy"`
	Mood    dragon.Mood     `json:"mood"`
	Style   string          `json:"style"`
}

func infoOf(index int, d *dragon.Dragon) DragonInfo {
	return DragonInfo{
		Index:   index,
		ID:      d.ID,
		Name:    d.Name,
		Element: d.Element,
		Age:     d.Age,
		Energy:  d.Energy,
		Mood:    d.Mood,
		Style:   d.Style().String(),
	}
}

// InteractionEvent is one resolved interaction and its reciprocal update.
type InteractionEvent struct {
	Seq              int         `json:"seq"`
	DragonIndex      int         `json:"dragonIndex"`
	OtherIndex       int         `json:"otherIndex"`
	Dragon           string      `json:"dragon"`
	Other            string      `json:"other"`
	Description      string      `json:"description"`
	OpinionChange    int         `json:"opinionChange"`
	ReciprocalChange float64     `json:"reciprocalChange"`
	Kind             dragon.Kind `json:"kind"`
}

// Stats summarizes the clan.
type Stats struct {
	Name         string `json:"name"`
	DragonCount  int    `json:"dragonCount"`
	Interactions int    `json:"interactions"`
}

type Option func(*Clan)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Clan) {
		if l != nil {
			c.logger = l.With(slog.String("component", "clan"))
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(c *Clan) { c.metrics = m }
}

// WithListener subscribes fn before the clan is populated, so it also sees
// the creation events.
func WithListener(t EventType, fn Listener) Option {
	return func(c *Clan) { c.Subscribe(t, fn) }
}

// Clan owns its dragons and the random source every interaction draws from.
type Clan struct {
	cfg     Config
	name    string
	dragons []*dragon.Dragon
	seq     int

	rng     *rand.Rand
	names   *names.Generator
	logger  *slog.Logger
	metrics *Metrics

	mu      sync.Mutex
	pending []Event

	lmu       sync.Mutex
	listeners map[EventType][]subscription
	nextSubID int
}

// New creates a clan and populates it with cfg.InitialDragons random dragons.
func New(cfg Config, opts ...Option) (*Clan, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	rng := dragon.NewRand(cfg.Seed)
	c := &Clan{
		cfg:       cfg,
		rng:       rng,
		names:     names.NewGenerator(rng),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		listeners: make(map[EventType][]subscription),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.metrics.init()

	c.mu.Lock()
	defer c.unlockAndDispatch()

	c.name = cfg.Name
	if c.name == "" {
		c.name = c.names.ClanName()
	}
	for i := 0; i < cfg.InitialDragons; i++ {
		if _, err := c.addRandomLocked(false); err != nil {
			return nil, err
		}
	}
	c.metrics.setPopulation(c.name, len(c.dragons))
	c.logger.Info("clan created", slog.String("clan", c.name), slog.Int("dragons", len(c.dragons)))
	c.emit(Event{Type: EventClanCreated, ClanName: c.name, DragonCount: len(c.dragons)})
	return c, nil
}

func (c *Clan) Name() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.name
}

func (c *Clan) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.dragons)
}

func (c *Clan) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Name: c.name, DragonCount: len(c.dragons), Interactions: c.seq}
}

func (c *Clan) takenNames() map[string]struct{} {
	taken := make(map[string]struct{}, len(c.dragons))
	for _, d := range c.dragons {
		taken[d.Name] = struct{}{}
	}
	return taken
}

func (c *Clan) randomAge() int {
	return c.cfg.MinAge + c.rng.Intn(c.cfg.MaxAge-c.cfg.MinAge+1)
}

func (c *Clan) addRandomLocked(notify bool) (DragonInfo, error) {
	e := element.All()[c.rng.Intn(len(element.All()))]
	var name string
	if c.cfg.UniqueNames {
		var err error
		if name, err = c.names.UniqueFrom(c.takenNames(), e); err != nil {
			return DragonInfo{}, fmt.Errorf("name %s dragon: %w", e, err)
		}
	} else {
		name = c.names.DragonName(e)
	}
	d, err := dragon.New(dragon.Options{Name: name, Element: e, Age: c.randomAge()}, c.rng)
	if err != nil {
		return DragonInfo{}, err
	}
	return c.addLocked(d, notify)
}

func (c *Clan) addLocked(d *dragon.Dragon, notify bool) (DragonInfo, error) {
	for _, existing := range c.dragons {
		if existing.ID == d.ID {
			return DragonInfo{}, fmt.Errorf("%w: %s", ErrDuplicateDragon, d.ID)
		}
	}
	c.dragons = append(c.dragons, d)
	info := infoOf(len(c.dragons)-1, d)
	if notify {
		c.metrics.setPopulation(c.name, len(c.dragons))
		c.logger.Info("dragon added", slog.String("dragon", d.Name), slog.String("element", d.Element.String()))
		c.emit(Event{Type: EventDragonAdded, ClanName: c.name, DragonCount: len(c.dragons), Dragon: &info})
	}
	return info, nil
}

// AddRandomDragon adds a dragon with a random element, name and age.
func (c *Clan) AddRandomDragon() (DragonInfo, error) {
	c.mu.Lock()
	defer c.unlockAndDispatch()
	return c.addRandomLocked(true)
}

// AddDragon adds a dragon with the given identity and a random profile
// biased by its element.
func (c *Clan) AddDragon(name string, e element.Element, age int) (DragonInfo, error) {
	c.mu.Lock()
	defer c.unlockAndDispatch()
	d, err := dragon.New(dragon.Options{Name: name, Element: e, Age: age}, c.rng)
	if err != nil {
		return DragonInfo{}, err
	}
	return c.addLocked(d, true)
}

// Add adds a dragon built elsewhere.
func (c *Clan) Add(d *dragon.Dragon) (DragonInfo, error) {
	c.mu.Lock()
	defer c.unlockAndDispatch()
	return c.addLocked(d, true)
}

// Populate adds n random dragons.
func (c *Clan) Populate(n int) ([]DragonInfo, error) {
	c.mu.Lock()
	defer c.unlockAndDispatch()
	out := make([]DragonInfo, 0, n)
	for i := 0; i < n; i++ {
		info, err := c.addRandomLocked(true)
		if err != nil {
			return out, err
		}
		out = append(out, info)
	}
	return out, nil
}

// Remove drops the dragon at index. Every other dragon forgets it.
func (c *Clan) Remove(index int) (DragonInfo, error) {
	c.mu.Lock()
	defer c.unlockAndDispatch()
	d, err := c.dragonLocked(index)
	if err != nil {
		return DragonInfo{}, err
	}
	info := infoOf(index, d)
	c.dragons = append(c.dragons[:index:index], c.dragons[index+1:]...)
	for _, other := range c.dragons {
		other.Forget(d.ID)
	}
	c.metrics.setPopulation(c.name, len(c.dragons))
	c.logger.Info("dragon removed", slog.String("dragon", d.Name))
	c.emit(Event{Type: EventDragonRemoved, ClanName: c.name, DragonCount: len(c.dragons), Dragon: &info})
	return info, nil
}

// Reset clears the clan, draws a new name and repopulates with n dragons.
func (c *Clan) Reset(n int) error {
	c.mu.Lock()
	defer c.unlockAndDispatch()
	c.metrics.dropClan(c.name)
	c.dragons = nil
	c.seq = 0
	c.name = c.names.ClanName()
	for i := 0; i < n; i++ {
		if _, err := c.addRandomLocked(false); err != nil {
			return err
		}
	}
	c.metrics.setPopulation(c.name, len(c.dragons))
	c.logger.Info("clan reset", slog.String("clan", c.name), slog.Int("dragons", n))
	c.emit(Event{Type: EventClanReset, ClanName: c.name, DragonCount: len(c.dragons)})
	return nil
}

func (c *Clan) dragonLocked(index int) (*dragon.Dragon, error) {
	if index < 0 || index >= len(c.dragons) {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrDragonIndex, index, len(c.dragons))
	}
	return c.dragons[index], nil
}

// Dragon returns the live dragon at index. The pointer is shared with the
// clan; callers must not mutate it while other goroutines use the clan.
func (c *Clan) Dragon(index int) (*dragon.Dragon, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dragonLocked(index)
}

// Dragons returns a snapshot of every member in clan order.
func (c *Clan) Dragons() []DragonInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]DragonInfo, len(c.dragons))
	for i, d := range c.dragons {
		out[i] = infoOf(i, d)
	}
	return out
}

// IndexOf finds the first dragon with the given name.
func (c *Clan) IndexOf(name string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, d := range c.dragons {
		if d.Name == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownDragon, name)
}

func (c *Clan) pairLocked(i, j int) (*dragon.Dragon, *dragon.Dragon, error) {
	a, err := c.dragonLocked(i)
	if err != nil {
		return nil, nil, err
	}
	b, err := c.dragonLocked(j)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// Opinion is dragon i's opinion of dragon j.
func (c *Clan) Opinion(i, j int) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	a, b, err := c.pairLocked(i, j)
	if err != nil {
		return 0, err
	}
	return a.Opinion(b), nil
}

func (c *Clan) Summary(i, j int) (dragon.Summary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	a, b, err := c.pairLocked(i, j)
	if err != nil {
		return dragon.Summary{}, err
	}
	return a.Summary(b), nil
}

func (c *Clan) RelationshipInfo(i, j int) (string, error) {
	s, err := c.Summary(i, j)
	if err != nil {
		return "", err
	}
	return s.String(), nil
}

func (c *Clan) CharacterSheet(index int) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, err := c.dragonLocked(index)
	if err != nil {
		return "", err
	}
	return d.CharacterSheet(), nil
}

// Rest lets the dragon at index recover energy.
func (c *Clan) Rest(index int) (DragonInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, err := c.dragonLocked(index)
	if err != nil {
		return DragonInfo{}, err
	}
	d.Rest()
	return infoOf(index, d), nil
}

// Matrix returns every dragon's opinion of every other, in clan order.
// The diagonal is zero.
func (c *Clan) Matrix() [][]float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([][]float64, len(c.dragons))
	for i, a := range c.dragons {
		row := make([]float64, len(c.dragons))
		for j, b := range c.dragons {
			if i != j {
				row[j] = a.Opinion(b)
			}
		}
		out[i] = row
	}
	return out
}
