package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignInterviewersPrefersAvailableAndFree(t *testing.T) {
	slots := generateRoomSlots(
		[]string{"A", "B"},
		[]Round{slotTestRound},
		[]SessionWindow{{Date: "2026-09-01", StartTime: "09:00", EndTime: "09:30"}},
		0,
		0,
	)
	interviewers := []Interviewer{
		{Email: "iv1@org.test", Availability: []TimeRange{{Date: "2026-09-01", Start: "09:00", End: "12:00"}}},
		{Email: "iv2@org.test", Availability: []TimeRange{{Date: "2026-09-01", Start: "09:00", End: "12:00"}}},
	}

	warnings := assignInterviewers(slots, interviewers)

	require.Len(t, slots, 2)
	assert.Equal(t, []string{"iv1@org.test"}, slots[0].assignedInterviewers)
	assert.Equal(t, []string{"iv2@org.test"}, slots[1].assignedInterviewers,
		"an interviewer already committed at this time is skipped")
	assert.Empty(t, warnings)
}

func TestAssignInterviewersEmptyAvailabilityMeansAlwaysAvailable(t *testing.T) {
	slots := generateRoomSlots(
		[]string{"A"},
		[]Round{slotTestRound},
		[]SessionWindow{{Date: "2026-09-01", StartTime: "09:00", EndTime: "09:30"}},
		0,
		0,
	)
	interviewers := []Interviewer{{Email: "floater@org.test"}}

	warnings := assignInterviewers(slots, interviewers)

	assert.Equal(t, []string{"floater@org.test"}, slots[0].assignedInterviewers)
	assert.Empty(t, warnings)
}

func TestAssignInterviewersRoundRobinFallbackWarns(t *testing.T) {
	// Two parallel rooms, one interviewer: the second slot at the same time
	// can only be staffed by double-booking via rotation.
	slots := generateRoomSlots(
		[]string{"A", "B"},
		[]Round{slotTestRound},
		[]SessionWindow{{Date: "2026-09-01", StartTime: "09:00", EndTime: "09:30"}},
		0,
		0,
	)
	interviewers := []Interviewer{{Email: "only@org.test"}}

	warnings := assignInterviewers(slots, interviewers)

	assert.Equal(t, []string{"only@org.test"}, slots[0].assignedInterviewers)
	assert.Equal(t, []string{"only@org.test"}, slots[1].assignedInterviewers)
	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], slots[1].id)
}

func TestAssignInterviewersShortfallWarns(t *testing.T) {
	round := slotTestRound
	round.InterviewersPerRoom = 3
	slots := generateRoomSlots(
		[]string{"A"},
		[]Round{round},
		[]SessionWindow{{Date: "2026-09-01", StartTime: "09:00", EndTime: "09:30"}},
		0,
		0,
	)
	interviewers := []Interviewer{{Email: "only@org.test"}}

	warnings := assignInterviewers(slots, interviewers)

	assert.Len(t, slots[0].assignedInterviewers, 1, "rotation never assigns the same person twice to one slot")
	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], "needed 3 interviewer(s)")
}
