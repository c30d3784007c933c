package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slotTestRound = Round{
	ID:                  "screen",
	Label:               "Screening",
	Type:                "individual",
	DurationMinutes:     30,
	GroupSize:           1,
	InterviewersPerRoom: 1,
}

func TestGenerateRoomSlots(t *testing.T) {
	slots := generateRoomSlots(
		[]string{"A", "B"},
		[]Round{slotTestRound},
		[]SessionWindow{{Date: "2026-09-01", StartTime: "09:00", EndTime: "10:00"}},
		0,
		0,
	)

	// Two 30-minute steps in the window, one slot per room per step.
	require.Len(t, slots, 4)
	assert.Equal(t, "2026-09-01/A/screen/0", slots[0].id)
	assert.Equal(t, "2026-09-01/B/screen/0", slots[1].id)
	assert.Equal(t, "09:30", slots[2].startTime)
	assert.Equal(t, "10:00", slots[2].endTime)
}

func TestGenerateRoomSlotsBlockBreak(t *testing.T) {
	slots := generateRoomSlots(
		[]string{"A"},
		[]Round{slotTestRound},
		[]SessionWindow{{Date: "2026-09-01", StartTime: "09:00", EndTime: "10:00"}},
		0,
		5,
	)

	// Step is duration+break=35; the second step would end past the window.
	require.Len(t, slots, 1)
	assert.Equal(t, "09:00", slots[0].startTime)
}

func TestGenerateRoomSlotsSnapToStep(t *testing.T) {
	slots := generateRoomSlots(
		[]string{"A"},
		[]Round{slotTestRound},
		[]SessionWindow{{Date: "2026-09-01", StartTime: "09:00", EndTime: "11:00"}},
		15,
		5,
	)

	// The 09:35 and 10:20 cursors snap up to the quarter-hour grid.
	require.Len(t, slots, 3)
	assert.Equal(t, "09:00", slots[0].startTime)
	assert.Equal(t, "09:45", slots[1].startTime)
	assert.Equal(t, "10:30", slots[2].startTime)
}

func TestGenerateRoomSlotsDeterministicIdentity(t *testing.T) {
	build := func() []string {
		slots := generateRoomSlots(
			[]string{"A", "B"},
			[]Round{slotTestRound},
			[]SessionWindow{{Date: "2026-09-01", StartTime: "09:00", EndTime: "11:00"}},
			0,
			5,
		)
		ids := make([]string, len(slots))
		for i, s := range slots {
			ids[i] = s.id
		}
		return ids
	}

	assert.Equal(t, build(), build())
}

func TestAvailableAt(t *testing.T) {
	ranges := []TimeRange{{Date: "2026-09-01", Start: "09:00", End: "12:00"}}

	assert.True(t, availableAt(ranges, "2026-09-01", 540, 570))
	assert.False(t, availableAt(ranges, "2026-09-01", 530, 570), "window must be fully covered")
	assert.False(t, availableAt(ranges, "2026-09-02", 540, 570))
	assert.False(t, availableAt(nil, "2026-09-01", 540, 570))
}

func TestInterviewerFreeAt(t *testing.T) {
	slots := generateRoomSlots(
		[]string{"A"},
		[]Round{slotTestRound},
		[]SessionWindow{{Date: "2026-09-01", StartTime: "09:00", EndTime: "10:00"}},
		0,
		0,
	)
	slots[0].assignedInterviewers = []string{"iv@org.test"}

	assert.False(t, interviewerFreeAt("iv@org.test", "2026-09-01", 540, 570, slots))
	assert.True(t, interviewerFreeAt("iv@org.test", "2026-09-01", 570, 600, slots))
	assert.True(t, interviewerFreeAt("other@org.test", "2026-09-01", 540, 570, slots))
}
