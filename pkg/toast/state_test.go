package toast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextState(t *testing.T) {
	tests := []struct {
		from   State
		via    trigger
		want   State
		wantOK bool
	}{
		{StateCreated, triggerShow, StateEntering, true},
		{StateEntering, triggerEntered, StateSteady, true},
		{StateEntering, triggerEvict, StateDismissing, true},
		{StateSteady, triggerExpire, StateDismissing, true},
		{StateSteady, triggerEvict, StateDismissing, true},
		{StateDismissing, triggerExited, StateRemoved, true},

		{StateCreated, triggerExpire, "", false},
		{StateSteady, triggerEntered, "", false},
		{StateDismissing, triggerExpire, "", false},
		{StateDismissing, triggerEvict, "", false},
		{StateRemoved, triggerExited, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.via), func(t *testing.T) {
			got, ok := nextState(tt.from, tt.via)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventForState(t *testing.T) {
	for state, want := range map[State]EventType{
		StateEntering:   EventToastAdded,
		StateSteady:     EventToastSteady,
		StateDismissing: EventToastDismissing,
		StateRemoved:    EventToastRemoved,
	} {
		got, ok := eventForState(state)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := eventForState(StateCreated)
	assert.False(t, ok)
}
