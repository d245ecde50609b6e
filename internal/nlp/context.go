package nlp

import "time"

// Context is an immutable snapshot of the accumulated dialogue state.
type Context struct {
	CurrentTopic      string
	Entities          []Entity
	RecentIntents     []Classification
	TurnCount         int
	ConfirmedEntities []Entity
	PendingQuestions  []string
}

const (
	recentIntentCap = 5
	entityTTL       = 5 * time.Minute
)

// trackedEntity pairs an entity with the wall-clock time it entered the
// context, so eviction compares durations to durations.
type trackedEntity struct {
	Entity
	seenAt time.Time
}

// ContextManager accumulates entities and intents across turns. Entities
// expire after a fixed time-to-live; the recent-intents list is capped with
// the most recent first.
type ContextManager struct {
	currentTopic      string
	entities          []trackedEntity
	recentIntents     []Classification
	turnCount         int
	confirmedEntities []Entity
	pendingQuestions  []string

	now func() time.Time
}

// NewContextManager returns an empty context manager using wall-clock time.
func NewContextManager() *ContextManager {
	return &ContextManager{now: time.Now}
}

// NewContextManagerAt returns a context manager with an injected clock, for
// deterministic eviction in tests.
func NewContextManagerAt(now func() time.Time) *ContextManager {
	return &ContextManager{now: now}
}

// Update appends the turn's entities, pushes the intent to the front of the
// capped recent-intents list, bumps the turn counter, and evicts entities
// older than the time-to-live.
func (m *ContextManager) Update(entities []Entity, intent Classification) {
	seen := m.now()
	for _, e := range entities {
		m.entities = append(m.entities, trackedEntity{Entity: e, seenAt: seen})
	}

	m.recentIntents = append([]Classification{intent}, m.recentIntents...)
	if len(m.recentIntents) > recentIntentCap {
		m.recentIntents = m.recentIntents[:recentIntentCap]
	}

	m.turnCount++
	m.evictStale()
}

// AddPendingQuestion queues a question awaiting an answer.
func (m *ContextManager) AddPendingQuestion(question string) {
	m.pendingQuestions = append(m.pendingQuestions, question)
}

// ConfirmEntity moves an entity into the confirmed list and drops every
// pending entity sharing its start offset.
func (m *ContextManager) ConfirmEntity(entity Entity) {
	m.confirmedEntities = append(m.confirmedEntities, entity)

	kept := m.entities[:0]
	for _, e := range m.entities {
		if e.Start != entity.Start {
			kept = append(kept, e)
		}
	}
	m.entities = kept
}

// Snapshot returns a copy of the current context.
func (m *ContextManager) Snapshot() Context {
	entities := make([]Entity, len(m.entities))
	for i, e := range m.entities {
		entities[i] = e.Entity
	}

	return Context{
		CurrentTopic:      m.currentTopic,
		Entities:          entities,
		RecentIntents:     append([]Classification(nil), m.recentIntents...),
		TurnCount:         m.turnCount,
		ConfirmedEntities: append([]Entity(nil), m.confirmedEntities...),
		PendingQuestions:  append([]string(nil), m.pendingQuestions...),
	}
}

// Reset restores empty state.
func (m *ContextManager) Reset() {
	now := m.now
	*m = ContextManager{now: now}
}

func (m *ContextManager) evictStale() {
	cutoff := m.now().Add(-entityTTL)
	kept := m.entities[:0]
	for _, e := range m.entities {
		if e.seenAt.After(cutoff) {
			kept = append(kept, e)
		}
	}
	m.entities = kept
}
