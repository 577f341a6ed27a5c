package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"OPEN", "IN_PROGRESS", "COMPLETED", "CANCELLED"} {
		status, err := ParseStatus(valid)
		assert.NoError(t, err)
		assert.Equal(t, Status(valid), status)
	}

	for _, invalid := range []string{"", "open", "DONE", "Completed", " OPEN"} {
		_, err := ParseStatus(invalid)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	}
}

func TestTransition(t *testing.T) {
	cases := []struct {
		old   Status
		next  Status
		event Event
	}{
		{StatusOpen, StatusCompleted, EventCompleted},
		{StatusInProgress, StatusCompleted, EventCompleted},
		{StatusCancelled, StatusCompleted, EventCompleted},
		{StatusCompleted, StatusCompleted, EventNone},
		{StatusCompleted, StatusOpen, EventNone},
		{StatusOpen, StatusInProgress, EventNone},
		{StatusOpen, StatusCancelled, EventNone},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.event, Transition(tc.old, tc.next), "%s -> %s", tc.old, tc.next)
	}
}
