package domain

import "time"

type EventType string

const (
	EventArtistCreated     EventType = "artist.created"
	EventCreationGenerated EventType = "creation.generated"
	EventCritiqueExchanged EventType = "critique.exchanged"
	EventFeedbackReceived  EventType = "feedback.received"
	EventRoundCompleted    EventType = "round.completed"
)

type Event struct {
	Type      EventType `json:"type"`
	Artist    string    `json:"artist,omitempty"`
	Payload   any       `json:"payload,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func NewEvent(t EventType, artist string, payload any) Event {
	return Event{Type: t, Artist: artist, Payload: payload, Timestamp: time.Now().UTC()}
}
