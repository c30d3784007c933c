package scheduling

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchInput(applicants []Applicant, interviewers []Interviewer, cfg *BatchConfig) Input {
	return Input{
		Applicants:   applicants,
		Interviewers: interviewers,
		Config:       Config{InterviewType: "individual", Location: "HQ", Batch: cfg},
	}
}

func dayRange(start, end string) []TimeRange {
	return []TimeRange{{Date: "2026-09-01", Start: start, End: end}}
}

func screeningRound() Round {
	return Round{
		ID:                  "r1",
		Label:               "Screening",
		Type:                "individual",
		DurationMinutes:     30,
		GroupSize:           1,
		InterviewersPerRoom: 1,
	}
}

func morningWindow() []SessionWindow {
	return []SessionWindow{{Date: "2026-09-01", StartTime: "09:00", EndTime: "10:00"}}
}

func TestBatchSchedulerSchedulesAllApplicants(t *testing.T) {
	input := batchInput(
		[]Applicant{
			{Email: "a1@org.test", Name: "A1", JobID: 7, Availability: dayRange("09:00", "10:00")},
			{Email: "a2@org.test", Name: "A2", JobID: 7, Availability: dayRange("09:00", "10:00")},
		},
		[]Interviewer{
			{Email: "iv1@org.test", Availability: dayRange("09:00", "10:00")},
			{Email: "iv2@org.test", Availability: dayRange("09:00", "10:00")},
		},
		&BatchConfig{
			Rooms:          []string{"A", "B"},
			Rounds:         []Round{screeningRound()},
			SessionWindows: morningWindow(),
		},
	)

	out := batchScheduler{}.Run(input)

	require.Len(t, out.Interviews, 2)
	assert.Empty(t, out.Unmatched)
	assert.Empty(t, out.UnmatchedDetails)
	assert.Empty(t, out.Warnings)
	assert.Equal(t, int64(7), out.Interviews[0].JobID)
	assert.Equal(t, "individual", out.Interviews[0].Type)

	require.Len(t, out.Stats, 1)
	assert.Equal(t, RoundStat{
		RoundID: "r1", RoundLabel: "Screening",
		Scheduled: 2, Missed: 0, TotalSlots: 4, FilledSlots: 2,
	}, out.Stats[0])
}

func TestBatchSchedulerReportsOverflowApplicant(t *testing.T) {
	input := batchInput(
		[]Applicant{
			{Email: "a1@org.test", Name: "A1", Availability: dayRange("09:00", "10:00")},
			{Email: "a2@org.test", Name: "A2", Availability: dayRange("09:00", "10:00")},
			{Email: "a3@org.test", Name: "A3", Availability: dayRange("09:00", "10:00")},
		},
		[]Interviewer{
			{Email: "iv1@org.test"},
			{Email: "iv2@org.test"},
		},
		&BatchConfig{
			Rooms:             []string{"A", "B"},
			Rounds:            []Round{screeningRound()},
			SessionWindows:    morningWindow(),
			BlockBreakMinutes: 5, // one 30+5 step fits the hour, so two slots total
		},
	)

	out := batchScheduler{}.Run(input)

	assert.Len(t, out.Interviews, 2)
	require.Len(t, out.UnmatchedDetails, 1)
	detail := out.UnmatchedDetails[0]
	assert.Equal(t, "a3@org.test", detail.Email)
	assert.Equal(t, []string{"r1"}, detail.MissedRounds)
	require.Len(t, detail.SuggestedSlots, 2)
	for _, s := range detail.SuggestedSlots {
		assert.True(t, s.IsFull, "every compatible slot was at capacity")
	}
	assert.Equal(t, []string{"a3@org.test"}, out.Unmatched)
	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "1 applicant(s) could not be fully scheduled")
}

func TestBatchSchedulerNoOverlapNoSuggestions(t *testing.T) {
	input := batchInput(
		[]Applicant{{Email: "a1@org.test", Name: "A1", Availability: []TimeRange{
			{Date: "2026-09-02", Start: "09:00", End: "10:00"},
		}}},
		[]Interviewer{{Email: "iv1@org.test"}},
		&BatchConfig{
			Rooms:          []string{"A"},
			Rounds:         []Round{screeningRound()},
			SessionWindows: morningWindow(),
		},
	)

	out := batchScheduler{}.Run(input)

	assert.Empty(t, out.Interviews)
	require.Len(t, out.UnmatchedDetails, 1)
	assert.Empty(t, out.UnmatchedDetails[0].SuggestedSlots)
	assert.Equal(t, []string{"a1@org.test"}, out.Unmatched)
}

func TestBatchSchedulerRelaxedFallback(t *testing.T) {
	input := batchInput(
		[]Applicant{
			{Email: "fits@org.test", Name: "Fits", Availability: dayRange("09:00", "10:00")},
			{Email: "outside@org.test", Name: "Outside", Availability: []TimeRange{
				{Date: "2026-09-02", Start: "09:00", End: "10:00"},
			}},
		},
		[]Interviewer{{Email: "iv1@org.test"}},
		&BatchConfig{
			Rooms:           []string{"A"},
			Rounds:          []Round{screeningRound()},
			SessionWindows:  morningWindow(),
			RelaxedFallback: true,
		},
	)

	out := batchScheduler{}.Run(input)

	require.Len(t, out.Interviews, 2)
	assert.Empty(t, out.UnmatchedDetails)
	assert.Equal(t, 1, out.RelaxedCount)
	require.Len(t, out.Stats, 1)
	assert.Equal(t, 1, out.Stats[0].RelaxedCount)

	byApplicant := map[string]ProposedInterview{}
	for _, row := range out.Interviews {
		byApplicant[row.Applicant] = row
	}
	assert.Empty(t, byApplicant["fits@org.test"].Violations,
		"a strict placement carries no violations")
	require.Len(t, byApplicant["outside@org.test"].Violations, 1)
	assert.Equal(t, ViolationAvailability, byApplicant["outside@org.test"].Violations[0].Type)
}

func TestBatchSchedulerStrictBeforeRelaxed(t *testing.T) {
	// The applicant has one in-availability slot; even with the relaxed pass
	// enabled they must land there, violation-free.
	input := batchInput(
		[]Applicant{{Email: "a1@org.test", Name: "A1", Availability: dayRange("09:00", "09:30")}},
		[]Interviewer{{Email: "iv1@org.test"}},
		&BatchConfig{
			Rooms:           []string{"A"},
			Rounds:          []Round{screeningRound()},
			SessionWindows:  morningWindow(),
			RelaxedFallback: true,
		},
	)

	out := batchScheduler{}.Run(input)

	require.Len(t, out.Interviews, 1)
	assert.Equal(t, "2026-09-01T09:00:00", out.Interviews[0].StartTime)
	assert.Empty(t, out.Interviews[0].Violations)
	assert.Zero(t, out.RelaxedCount)
}

func TestBatchSchedulerRequireAllRoundsRetraction(t *testing.T) {
	secondRound := screeningRound()
	secondRound.ID = "r2"
	secondRound.Label = "Technical"

	input := batchInput(
		[]Applicant{
			{Email: "full@org.test", Name: "Full", Availability: dayRange("09:00", "10:00")},
			{Email: "partial@org.test", Name: "Partial", Availability: dayRange("09:00", "09:30")},
		},
		[]Interviewer{
			{Email: "iv1@org.test"},
			{Email: "iv2@org.test"},
		},
		&BatchConfig{
			Rooms:            []string{"R1"},
			Rounds:           []Round{screeningRound(), secondRound},
			SessionWindows:   morningWindow(),
			RequireAllRounds: true,
		},
	)

	out := batchScheduler{}.Run(input)

	require.Len(t, out.Interviews, 2, "partial's single placement is retracted")
	for _, row := range out.Interviews {
		assert.Equal(t, "full@org.test", row.Applicant)
	}

	require.Len(t, out.UnmatchedDetails, 1)
	detail := out.UnmatchedDetails[0]
	assert.Equal(t, "partial@org.test", detail.Email)
	assert.Equal(t, []string{"r1", "r2"}, detail.MissedRounds)

	suggestionsByRound := map[string][]SuggestedSlot{}
	for _, s := range detail.SuggestedSlots {
		suggestionsByRound[s.RoundID] = append(suggestionsByRound[s.RoundID], s)
	}
	require.Len(t, suggestionsByRound["r1"], 1)
	assert.False(t, suggestionsByRound["r1"][0].IsFull, "retraction freed the 09:00 screening slot")
	require.Len(t, suggestionsByRound["r2"], 1)
	assert.True(t, suggestionsByRound["r2"][0].IsFull)

	require.Len(t, out.Stats, 2)
	assert.Equal(t, 1, out.Stats[0].Scheduled)
	assert.Equal(t, 1, out.Stats[0].Missed)
}

func TestBatchSchedulerHardRulePicksMatchingSlot(t *testing.T) {
	input := batchInput(
		[]Applicant{{
			Email: "a1@org.test", Name: "A1",
			Availability: dayRange("09:00", "10:00"),
			Attributes: map[string][]string{
				"language": {"english"},
				"skills":   {"go"},
			},
		}},
		[]Interviewer{
			{Email: "iv1@org.test", Attributes: map[string][]string{"language": {"spanish"}, "skills": {"go"}}},
			{Email: "iv2@org.test", Attributes: map[string][]string{"language": {"english"}}},
		},
		&BatchConfig{
			Rooms:             []string{"A", "B"},
			Rounds:            []Round{screeningRound()},
			SessionWindows:    morningWindow(),
			BlockBreakMinutes: 5,
			AttributeMatching: AttributeMatching{
				Enabled: true,
				Rules: []AttributeMatchRule{
					{ApplicantQuestionID: "language", InterviewerAttributeKey: "language", Weight: 5, Hard: true},
					{ApplicantQuestionID: "skills", InterviewerAttributeKey: "skills", Weight: 50},
				},
			},
		},
	)

	out := batchScheduler{}.Run(input)

	require.Len(t, out.Interviews, 1)
	row := out.Interviews[0]
	assert.Equal(t, "B", row.Location,
		"the hard rule outranks a higher-scoring soft match elsewhere")
	assert.Equal(t, "iv2@org.test", row.Interviewer)
	assert.Empty(t, out.UnmatchedDetails)
}

func TestBatchSchedulerHardRuleFailsOpenWithWarning(t *testing.T) {
	input := batchInput(
		[]Applicant{{
			Email: "a1@org.test", Name: "A1",
			Availability: dayRange("09:00", "10:00"),
			Attributes:   map[string][]string{"language": {"french"}, "skills": {"go"}},
		}},
		[]Interviewer{
			{Email: "iv1@org.test", Attributes: map[string][]string{"language": {"spanish"}, "skills": {"go"}}},
			{Email: "iv2@org.test", Attributes: map[string][]string{"language": {"english"}}},
		},
		&BatchConfig{
			Rooms:             []string{"A", "B"},
			Rounds:            []Round{screeningRound()},
			SessionWindows:    morningWindow(),
			BlockBreakMinutes: 5,
			AttributeMatching: AttributeMatching{
				Enabled: true,
				Rules: []AttributeMatchRule{
					{ApplicantQuestionID: "language", InterviewerAttributeKey: "language", Weight: 5, Hard: true},
					{ApplicantQuestionID: "skills", InterviewerAttributeKey: "skills", Weight: 50},
				},
			},
		},
	)

	out := batchScheduler{}.Run(input)

	require.Len(t, out.Interviews, 1)
	assert.Equal(t, "A", out.Interviews[0].Location,
		"with hard rules ignored the soft skill match decides")

	found := false
	for _, w := range out.Warnings {
		if strings.Contains(w, "hard rules ignored") {
			found = true
		}
	}
	assert.True(t, found, "fail-open fallback surfaces a warning: %v", out.Warnings)
}

func TestBatchSchedulerPriorityFirst(t *testing.T) {
	input := batchInput(
		[]Applicant{
			{Email: "normal@org.test", Name: "Normal", Availability: dayRange("09:00", "10:00")},
			{Email: "vip@org.test", Name: "VIP", Availability: dayRange("09:00", "10:00"), Priority: 1},
		},
		[]Interviewer{{Email: "iv1@org.test"}},
		&BatchConfig{
			Rooms:             []string{"A"},
			Rounds:            []Round{screeningRound()},
			SessionWindows:    []SessionWindow{{Date: "2026-09-01", StartTime: "09:00", EndTime: "09:30"}},
			BlockBreakMinutes: 0,
		},
	)

	out := batchScheduler{}.Run(input)

	require.Len(t, out.Interviews, 1)
	assert.Equal(t, "vip@org.test", out.Interviews[0].Applicant)
	assert.Equal(t, []string{"normal@org.test"}, out.Unmatched)
}

func TestBatchSchedulerGroupRoundEmitsRowPerPair(t *testing.T) {
	group := Round{
		ID:                  "g1",
		Label:               "Group Exercise",
		Type:                "group",
		DurationMinutes:     30,
		GroupSize:           3,
		InterviewersPerRoom: 2,
	}
	input := batchInput(
		[]Applicant{
			{Email: "a1@org.test", Name: "A1", Availability: dayRange("09:00", "09:30")},
			{Email: "a2@org.test", Name: "A2", Availability: dayRange("09:00", "09:30")},
			{Email: "a3@org.test", Name: "A3", Availability: dayRange("09:00", "09:30")},
		},
		[]Interviewer{
			{Email: "iv1@org.test"},
			{Email: "iv2@org.test"},
		},
		&BatchConfig{
			Rooms:          []string{"Hall"},
			Rounds:         []Round{group},
			SessionWindows: []SessionWindow{{Date: "2026-09-01", StartTime: "09:00", EndTime: "09:30"}},
		},
	)

	out := batchScheduler{}.Run(input)

	// 3 applicants x 2 interviewers in one group slot.
	require.Len(t, out.Interviews, 6)
	perApplicant := map[string]int{}
	for _, row := range out.Interviews {
		perApplicant[row.Applicant]++
		assert.Equal(t, "group", row.Type)
		assert.Equal(t, "Hall", row.Location)
	}
	assert.Equal(t, map[string]int{"a1@org.test": 2, "a2@org.test": 2, "a3@org.test": 2}, perApplicant)
	assert.Empty(t, out.UnmatchedDetails)
}

func TestBatchSchedulerSlotStepShiftsPlacements(t *testing.T) {
	build := func(stepMins int) Input {
		return batchInput(
			[]Applicant{
				{Email: "a1@org.test", Name: "A1", Availability: dayRange("09:00", "10:30")},
				{Email: "a2@org.test", Name: "A2", Availability: dayRange("09:00", "10:30")},
			},
			[]Interviewer{{Email: "iv1@org.test"}},
			&BatchConfig{
				Rooms:             []string{"A"},
				Rounds:            []Round{screeningRound()},
				SessionWindows:    []SessionWindow{{Date: "2026-09-01", StartTime: "09:00", EndTime: "10:30"}},
				SlotStepMinutes:   stepMins,
				BlockBreakMinutes: 5,
			},
		)
	}

	aligned := batchScheduler{}.Run(build(10))
	raw := batchScheduler{}.Run(build(0))

	require.Len(t, aligned.Interviews, 2)
	require.Len(t, raw.Interviews, 2)
	assert.Equal(t, "2026-09-01T09:40:00", aligned.Interviews[1].StartTime,
		"the 09:35 cursor snaps up to the 10-minute grid")
	assert.Equal(t, "2026-09-01T09:35:00", raw.Interviews[1].StartTime)
	assert.NotEqual(t, raw, aligned)
}

func TestBatchSchedulerMissingConfig(t *testing.T) {
	applicants := []Applicant{{Email: "a1@org.test", Name: "A1"}}

	cases := []struct {
		name    string
		cfg     *BatchConfig
		warning string
	}{
		{"no rooms", &BatchConfig{Rounds: []Round{screeningRound()}, SessionWindows: morningWindow()}, "No rooms configured."},
		{"no rounds", &BatchConfig{Rooms: []string{"A"}, SessionWindows: morningWindow()}, "No rounds configured."},
		{"no windows", &BatchConfig{Rooms: []string{"A"}, Rounds: []Round{screeningRound()}}, "No session windows configured."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := batchScheduler{}.Run(batchInput(applicants, nil, tc.cfg))
			assert.Empty(t, out.Interviews)
			assert.Equal(t, []string{"a1@org.test"}, out.Unmatched)
			assert.Equal(t, []string{tc.warning}, out.Warnings)
		})
	}
}

func TestBatchSchedulerHonoursExistingInterviews(t *testing.T) {
	input := batchInput(
		[]Applicant{{Email: "a1@org.test", Name: "A1", Availability: dayRange("09:00", "10:00")}},
		[]Interviewer{{Email: "iv1@org.test"}},
		&BatchConfig{
			Rooms:          []string{"A"},
			Rounds:         []Round{screeningRound()},
			SessionWindows: morningWindow(),
		},
	)
	input.ExistingInterviews = []ExistingInterview{{
		StartTime:   "2026-09-01T09:00:00",
		EndTime:     "2026-09-01T09:30:00",
		Interviewer: "someone@org.test",
		Applicant:   "a1@org.test",
	}}

	out := batchScheduler{}.Run(input)

	require.Len(t, out.Interviews, 1)
	assert.Equal(t, "2026-09-01T09:30:00", out.Interviews[0].StartTime,
		"the committed 09:00 interview pushes the placement to the next step")
}

func TestBatchSchedulerNoDoubleBooking(t *testing.T) {
	input := batchInput(
		[]Applicant{
			{Email: "a1@org.test", Name: "A1", Availability: dayRange("09:00", "10:00")},
			{Email: "a2@org.test", Name: "A2", Availability: dayRange("09:00", "10:00")},
			{Email: "a3@org.test", Name: "A3", Availability: dayRange("09:00", "10:00")},
			{Email: "a4@org.test", Name: "A4", Availability: dayRange("09:00", "10:00")},
		},
		[]Interviewer{
			{Email: "iv1@org.test"},
			{Email: "iv2@org.test"},
		},
		&BatchConfig{
			Rooms:          []string{"A", "B"},
			Rounds:         []Round{screeningRound()},
			SessionWindows: morningWindow(),
		},
	)

	out := batchScheduler{}.Run(input)

	require.Len(t, out.Interviews, 4)
	assert.Empty(t, out.Warnings, "enough staff means no degraded fill")

	for i, a := range out.Interviews {
		for _, b := range out.Interviews[i+1:] {
			if a.Applicant != b.Applicant && a.Interviewer != b.Interviewer {
				continue
			}
			overlap := a.StartTime < b.EndTime && b.StartTime < a.EndTime
			assert.False(t, overlap, "rows %v and %v overlap for the same person", a, b)
		}
	}
}

func TestBatchSchedulerDeterministic(t *testing.T) {
	input := batchInput(
		[]Applicant{
			{Email: "a1@org.test", Name: "A1", Availability: dayRange("09:00", "09:30"), Priority: 1},
			{Email: "a2@org.test", Name: "A2", Availability: dayRange("09:00", "10:00")},
			{Email: "a3@org.test", Name: "A3", Availability: []TimeRange{{Date: "2026-09-02", Start: "09:00", End: "10:00"}}},
			{Email: "a4@org.test", Name: "A4", Availability: dayRange("09:30", "10:00")},
		},
		[]Interviewer{
			{Email: "iv1@org.test", Attributes: map[string][]string{"skills": {"go,sql"}}},
			{Email: "iv2@org.test"},
		},
		&BatchConfig{
			Rooms:           []string{"A", "B"},
			Rounds:          []Round{screeningRound()},
			SessionWindows:  morningWindow(),
			RelaxedFallback: true,
			AttributeMatching: AttributeMatching{
				Enabled: true,
				Rules:   []AttributeMatchRule{{ApplicantQuestionID: "skills", InterviewerAttributeKey: "skills", Weight: 10}},
			},
		},
	)

	first := batchScheduler{}.Run(input)
	second := batchScheduler{}.Run(input)

	require.Equal(t, first, second, "identical input must yield byte-identical output")
}
