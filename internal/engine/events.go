package engine

import (
	"sort"
	"sync"
	"time"
)

type EventKind string

const (
	EventScheduleCreated   EventKind = "schedule_created"
	EventBlockAdded        EventKind = "block_added"
	EventBlockUpdated      EventKind = "block_updated"
	EventBlockRemoved      EventKind = "block_removed"
	EventBlockToggled      EventKind = "block_toggled"
	EventReviewSaved       EventKind = "review_saved"
	EventExperienceAwarded EventKind = "experience_awarded"
	EventLevelUp           EventKind = "level_up"
	EventDimensionUpdated  EventKind = "dimension_updated"
)

// Event describes a committed state change. Only the fields relevant to Kind
// are set.
type Event struct {
	Kind      EventKind
	Day       time.Time
	BlockID   string
	Dimension DimensionType
	Score     float64
	XP        int
	Level     int
}

// Events is a synchronous observer list. Handlers run on the goroutine that
// committed the change, after the emitting store released its lock, so they
// may read that store.
type Events struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(Event)
}

func NewEvents() *Events {
	return &Events{subs: make(map[int]func(Event))}
}

// Subscribe registers fn and returns a function that removes it.
func (e *Events) Subscribe(fn func(Event)) (unsubscribe func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.subs[id] = fn
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.subs, id)
	}
}

func (e *Events) emit(ev Event) {
	if e == nil {
		return
	}
	e.mu.Lock()
	ids := make([]int, 0, len(e.subs))
	for id := range e.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	handlers := make([]func(Event), 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, e.subs[id])
	}
	e.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}
