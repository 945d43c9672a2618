package session

import "fmt"

// State is a learning session's lifecycle state.
type State string

const (
	StateTeaching      State = "teaching"
	StatePractice      State = "practice"
	StateHintRequested State = "hint_requested"
	StateStruggling    State = "struggling"
	StateCelebrating   State = "celebrating"
	StateCompleted     State = "completed"
)

// EventType is a session state-machine event.
type EventType string

const (
	EventSubmitAnswer     EventType = "submit_answer"
	EventRequestHint      EventType = "request_hint"
	EventReturnToPractice EventType = "return_to_practice"
	// EventMasteryAchieved is raised internally by the engine when the
	// mastery gate recommends advancing, never by the client.
	EventMasteryAchieved  EventType = "mastery_achieved"
	EventStruggleDetected EventType = "struggle_detected"
	EventEndSession       EventType = "end_session"
)

// ErrInvalidTransition reports an event that has no rule from the
// session's current state. Callers can distinguish it from "nothing
// changed": an illegal operation is an error, not a no-op.
type ErrInvalidTransition struct {
	From  State
	Event EventType
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("invalid session transition: event %q from state %q", e.Event, e.From)
}

type transitionKey struct {
	from  State
	event EventType
}

// transitions is the explicit rule table. SubmitAnswer lands in PRACTICE
// by default; the service raises MasteryAchieved or StruggleDetected as
// follow-on events when the gate or struggle detector fires.
var transitions = map[transitionKey]State{
	{StateTeaching, EventSubmitAnswer}: StatePractice,
	{StatePractice, EventSubmitAnswer}: StatePractice,

	{StatePractice, EventRequestHint}: StateHintRequested,

	{StateHintRequested, EventReturnToPractice}: StatePractice,
	{StateStruggling, EventReturnToPractice}:    StatePractice,

	{StateTeaching, EventMasteryAchieved}: StateCelebrating,
	{StatePractice, EventMasteryAchieved}: StateCelebrating,

	{StatePractice, EventStruggleDetected}: StateStruggling,

	{StateTeaching, EventEndSession}:      StateCompleted,
	{StatePractice, EventEndSession}:      StateCompleted,
	{StateHintRequested, EventEndSession}: StateCompleted,
	{StateStruggling, EventEndSession}:    StateCompleted,
	{StateCelebrating, EventEndSession}:   StateCompleted,
}

// Next resolves the destination state for an event, or returns
// *ErrInvalidTransition when no rule exists.
func Next(from State, event EventType) (State, error) {
	to, ok := transitions[transitionKey{from, event}]
	if !ok {
		return "", &ErrInvalidTransition{From: from, Event: event}
	}
	return to, nil
}

// Terminal reports whether a state accepts no further events.
func Terminal(s State) bool {
	return s == StateCompleted
}
