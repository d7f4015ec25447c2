package world

import "github.com/younwookim/skyquest/internal/application/progress"

// EventKind identifies a HUD notification
type EventKind int

const (
	EventScoreChanged EventKind = iota
	EventHealthChanged
	EventAchievementUnlocked
	EventLevelStarted
	EventLevelComplete
	EventGameOver
	EventGameWon
)

// String returns the string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventScoreChanged:
		return "ScoreChanged"
	case EventHealthChanged:
		return "HealthChanged"
	case EventAchievementUnlocked:
		return "AchievementUnlocked"
	case EventLevelStarted:
		return "LevelStarted"
	case EventLevelComplete:
		return "LevelComplete"
	case EventGameOver:
		return "GameOver"
	case EventGameWon:
		return "GameWon"
	default:
		return "Unknown"
	}
}

// Event is a notification for the presentation layer. Only the fields
// relevant to Kind are set.
type Event struct {
	Kind EventKind

	Score  int
	Health int
	Level  int

	// LevelComplete
	LevelScore int
	Stars      int

	// AchievementUnlocked
	Achievement progress.AchievementID

	// GameWon
	Achievements int
}

// EventQueue is a FIFO of pending notifications
type EventQueue struct {
	items []Event
}

// Push adds an event
func (q *EventQueue) Push(evt Event) {
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue. It returns nil when empty.
func (q *EventQueue) Drain() []Event {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of pending events
func (q *EventQueue) Len() int {
	return len(q.items)
}
