package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasConflictDetectsExistingOverlap(t *testing.T) {
	existing := []ExistingInterview{{
		StartTime:   "2026-09-01T09:00:00",
		EndTime:     "2026-09-01T09:30:00",
		Interviewer: "iv@org.test",
		Applicant:   "app@org.test",
	}}

	assert.True(t, hasConflict("2026-09-01", "09:15", "09:45", "app@org.test", existing, nil, 0))
	assert.True(t, hasConflict("2026-09-01", "09:15", "09:45", "iv@org.test", existing, nil, 0),
		"conflict check is symmetric for both sides")
	assert.False(t, hasConflict("2026-09-01", "09:15", "09:45", "other@org.test", existing, nil, 0))
	assert.False(t, hasConflict("2026-09-02", "09:15", "09:45", "app@org.test", existing, nil, 0))
	assert.False(t, hasConflict("2026-09-01", "09:30", "10:00", "app@org.test", existing, nil, 0),
		"back-to-back windows do not overlap without a buffer")
}

func TestHasConflictBuffer(t *testing.T) {
	existing := []ExistingInterview{{
		StartTime:   "2026-09-01T10:00:00",
		EndTime:     "2026-09-01T10:30:00",
		Interviewer: "iv@org.test",
		Applicant:   "app@org.test",
	}}

	// [09:30, 10:00+buffer) intersects [10:00, 10:30) once buffered.
	assert.False(t, hasConflict("2026-09-01", "09:30", "10:00", "app@org.test", existing, nil, 0))
	assert.True(t, hasConflict("2026-09-01", "09:30", "10:00", "app@org.test", existing, nil, 5))
}

func TestHasConflictScansProposed(t *testing.T) {
	proposed := []ProposedInterview{{
		StartTime:   "2026-09-01T11:00:00",
		EndTime:     "2026-09-01T11:30:00",
		Applicant:   "app@org.test",
		Interviewer: "iv@org.test",
	}}

	assert.True(t, hasConflict("2026-09-01", "11:00", "11:30", "iv@org.test", nil, proposed, 0))
	assert.False(t, hasConflict("2026-09-01", "12:00", "12:30", "iv@org.test", nil, proposed, 0))
}
