package session

import (
	"errors"
	"testing"
)

func TestNext_ValidTransitions(t *testing.T) {
	tests := []struct {
		from  State
		event EventType
		want  State
	}{
		{StateTeaching, EventSubmitAnswer, StatePractice},
		{StatePractice, EventSubmitAnswer, StatePractice},
		{StatePractice, EventRequestHint, StateHintRequested},
		{StateHintRequested, EventReturnToPractice, StatePractice},
		{StateStruggling, EventReturnToPractice, StatePractice},
		{StateTeaching, EventMasteryAchieved, StateCelebrating},
		{StatePractice, EventMasteryAchieved, StateCelebrating},
		{StatePractice, EventStruggleDetected, StateStruggling},
		{StateTeaching, EventEndSession, StateCompleted},
		{StatePractice, EventEndSession, StateCompleted},
		{StateHintRequested, EventEndSession, StateCompleted},
		{StateStruggling, EventEndSession, StateCompleted},
		{StateCelebrating, EventEndSession, StateCompleted},
	}

	for _, tt := range tests {
		got, err := Next(tt.from, tt.event)
		if err != nil {
			t.Errorf("Next(%s, %s): unexpected error: %v", tt.from, tt.event, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Next(%s, %s) = %s, want %s", tt.from, tt.event, got, tt.want)
		}
	}
}

func TestNext_InvalidTransitions(t *testing.T) {
	tests := []struct {
		from  State
		event EventType
	}{
		{StateHintRequested, EventSubmitAnswer},
		{StateStruggling, EventSubmitAnswer},
		{StateCelebrating, EventSubmitAnswer},
		{StateCompleted, EventSubmitAnswer},
		{StateTeaching, EventRequestHint},
		{StateStruggling, EventRequestHint},
		{StatePractice, EventReturnToPractice},
		{StateCompleted, EventEndSession},
		{StateStruggling, EventMasteryAchieved},
	}

	for _, tt := range tests {
		_, err := Next(tt.from, tt.event)
		if err == nil {
			t.Errorf("Next(%s, %s): expected error", tt.from, tt.event)
			continue
		}
		var invalid *ErrInvalidTransition
		if !errors.As(err, &invalid) {
			t.Errorf("Next(%s, %s): expected ErrInvalidTransition, got %T", tt.from, tt.event, err)
			continue
		}
		if invalid.From != tt.from || invalid.Event != tt.event {
			t.Errorf("error fields = (%s, %s), want (%s, %s)", invalid.From, invalid.Event, tt.from, tt.event)
		}
	}
}

func TestTerminal(t *testing.T) {
	if !Terminal(StateCompleted) {
		t.Error("expected completed to be terminal")
	}
	for _, s := range []State{StateTeaching, StatePractice, StateHintRequested, StateStruggling, StateCelebrating} {
		if Terminal(s) {
			t.Errorf("expected %s to be non-terminal", s)
		}
	}
}
