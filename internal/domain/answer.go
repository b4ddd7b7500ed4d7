package domain

// Answer is the terminal output of one query.
type Answer struct {
	text           string
	conversationID string
	sources        []SourceAttribution
}

// NewAnswer creates an answer result.
func NewAnswer(text, conversationID string, sources []SourceAttribution) Answer {
	return Answer{text: text, conversationID: conversationID, sources: sources}
}

// Text returns the generated answer text.
func (a *Answer) Text() string { return a.text }

// ConversationID returns the opaque conversation identifier.
func (a *Answer) ConversationID() string { return a.conversationID }

// Sources returns the validated source attributions, ranking order preserved.
func (a *Answer) Sources() []SourceAttribution { return a.sources }
