package scheduling

import "fmt"

// greedyFirstAvailable assigns each applicant to the first interviewer with an
// overlapping, conflict-free window.
type greedyFirstAvailable struct{}

func (greedyFirstAvailable) ID() string   { return "greedy-first-available" }
func (greedyFirstAvailable) Name() string { return "Greedy First Available" }

func (greedyFirstAvailable) Description() string {
	return "Assigns each applicant to the first available interviewer with an overlapping time slot. Simple and fast."
}

func (greedyFirstAvailable) ConfigSchema() []ConfigField { return nil }

func (greedyFirstAvailable) Run(in Input) Output {
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

	for _, applicant := range in.Applicants {
		matched := false

		for _, interviewer := range in.Interviewers {
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
