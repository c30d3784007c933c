package scheduling

import "fmt"

// roundRobin cycles through the interviewer roster so consecutive applicants
// land on different interviewers regardless of current load.
type roundRobin struct{}

func (roundRobin) ID() string   { return "round-robin" }
func (roundRobin) Name() string { return "Round Robin" }

func (roundRobin) Description() string {
	return "Rotates through interviewers in roster order, assigning each applicant to the next interviewer with a workable slot."
}

func (roundRobin) ConfigSchema() []ConfigField { return nil }

func (roundRobin) Run(in Input) Output {
	cfg := in.Config
	proposed := []ProposedInterview{}
	unmatched := []string{}
	var warnings []string

	if len(in.Interviewers) == 0 {
		warnings = append(warnings, "No interviewers with availability found.")
		for _, a := range in.Applicants {
			unmatched = append(unmatched, a.Email)
		}
		return Output{Interviews: proposed, Unmatched: unmatched, Warnings: warnings}
	}

	cursor := 0
	for _, applicant := range in.Applicants {
		matched := false

		for attempt := 0; attempt < len(in.Interviewers); attempt++ {
			interviewer := in.Interviewers[(cursor+attempt)%len(in.Interviewers)]

			if cfg.MaxInterviewsPerInterviewer > 0 &&
				countAssignments(interviewer.Email, in.ExistingInterviews, proposed) >= cfg.MaxInterviewsPerInterviewer {
				continue
			}

			overlaps := FindOverlappingWindows(applicant.Availability, interviewer.Availability, cfg.SlotDurationMinutes)
			slot, ok := findFirstAvailableSlot(
				applicant.Email, interviewer.Email, overlaps,
				cfg.SlotDurationMinutes, cfg.BreakBetweenMinutes, 0,
				in.ExistingInterviews, proposed)
			if !ok {
				continue
			}

			proposed = append(proposed, ProposedInterview{
				StartTime:   ToISO(slot.date, slot.start),
				EndTime:     ToISO(slot.date, slot.end),
				Applicant:   applicant.Email,
				Interviewer: interviewer.Email,
				Location:    cfg.Location,
				Type:        cfg.InterviewType,
				JobID:       applicant.JobID,
			})
			cursor = (cursor + attempt + 1) % len(in.Interviewers)
			matched = true
			break
		}

		if !matched {
			unmatched = append(unmatched, applicant.Email)
		}
	}

	if len(unmatched) > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"%d applicant(s) could not be scheduled due to no overlapping availability.", len(unmatched)))
	}

	return Output{Interviews: proposed, Unmatched: unmatched, Warnings: warnings}
}
