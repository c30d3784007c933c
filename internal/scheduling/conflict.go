package scheduling

// hasConflict reports whether the person (by email, as interviewer or
// applicant) already has an overlapping commitment on the given date among the
// existing rows and the run's in-progress proposals. The candidate window is
// widened by bufferMins at the end. Linear over the combined list, which is
// fine for the cohort sizes this engine targets.
func hasConflict(
	date, startTime, endTime, personEmail string,
	existing []ExistingInterview,
	proposed []ProposedInterview,
	bufferMins int,
) bool {
	slotStart := ToMinutes(startTime)
	slotEnd := ToMinutes(endTime) + bufferMins

	check := func(start, end, interviewer, applicant string) bool {
		if interviewer != personEmail && applicant != personEmail {
			return false
		}
		iDate, iStart, ok := splitStamp(start)
		if !ok || iDate != date {
			return false
		}
		iEnd := iStart
		if end != "" {
			if _, mins, ok := splitStamp(end); ok {
				iEnd = mins
			}
		}
		return slotStart < iEnd && slotEnd > iStart
	}

	for _, iv := range existing {
		if check(iv.StartTime, iv.EndTime, iv.Interviewer, iv.Applicant) {
			return true
		}
	}
	for _, p := range proposed {
		if check(p.StartTime, p.EndTime, p.Interviewer, p.Applicant) {
			return true
		}
	}
	return false
}
