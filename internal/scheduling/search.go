package scheduling

// candidateSlot is a concrete bookable window found inside an overlap of two
// availability sets.
type candidateSlot struct {
	date  string
	start string
	end   string
}

// findFirstAvailableSlot walks the overlap windows advancing by stepMins and
// returns the first window of durationMins where neither party has a
// conflicting commitment.
func findFirstAvailableSlot(
	applicantEmail, interviewerEmail string,
	overlaps []OverlapWindow,
	durationMins, breakMins, stepMins int,
	existing []ExistingInterview,
	proposed []ProposedInterview,
) (candidateSlot, bool) {
	if stepMins <= 0 {
		stepMins = 15
	}
	for _, overlap := range overlaps {
		cursor := ToMinutes(overlap.Start)
		windowEnd := ToMinutes(overlap.End)

		for cursor+durationMins <= windowEnd {
			start := FromMinutes(cursor)
			end := FromMinutes(cursor + durationMins)

			interviewerBusy := hasConflict(overlap.Date, start, end, interviewerEmail, existing, proposed, breakMins)
			applicantBusy := hasConflict(overlap.Date, start, end, applicantEmail, existing, proposed, breakMins)

			if !interviewerBusy && !applicantBusy {
				return candidateSlot{date: overlap.Date, start: start, end: end}, true
			}
			cursor += stepMins
		}
	}
	return candidateSlot{}, false
}

// countAssignments tallies existing plus proposed interviews per interviewer.
func countAssignments(email string, existing []ExistingInterview, proposed []ProposedInterview) int {
	count := 0
	for _, iv := range existing {
		if iv.Interviewer == email {
			count++
		}
	}
	for _, p := range proposed {
		if p.Interviewer == email {
			count++
		}
	}
	return count
}
