package scheduling

import (
	"fmt"
	"sort"
)

// balancedLoad distributes interviews evenly by always trying the interviewer
// with the fewest assignments first.
type balancedLoad struct{}

func (balancedLoad) ID() string   { return "balanced-load" }
func (balancedLoad) Name() string { return "Balanced Load" }

func (balancedLoad) Description() string {
	return "Distributes interviews evenly across interviewers by always picking the one with the fewest assignments."
}

func (balancedLoad) ConfigSchema() []ConfigField { return nil }

func (balancedLoad) Run(in Input) Output {
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
		sorted := make([]Interviewer, len(in.Interviewers))
		copy(sorted, in.Interviewers)
		sort.SliceStable(sorted, func(i, j int) bool {
			return countAssignments(sorted[i].Email, in.ExistingInterviews, proposed) <
				countAssignments(sorted[j].Email, in.ExistingInterviews, proposed)
		})

		matched := false
		for _, interviewer := range sorted {
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
