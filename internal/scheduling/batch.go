package scheduling

import (
	"fmt"
	"sort"
)

type placementPass int

const (
	passStrict placementPass = iota
	passRelaxed
)

// batchScheduler schedules large cohorts through multiple rounds across many
// rooms in parallel. Each round runs a strict pass restricted to stated
// availability and, when enabled, a relaxed pass that tolerates availability
// violations at a score penalty. Unmatched applicants receive suggested
// alternate slots for manual placement.
type batchScheduler struct{}

func (batchScheduler) ID() string   { return "batch-scheduler" }
func (batchScheduler) Name() string { return "Batch Scheduler" }

func (batchScheduler) Description() string {
	return "Schedules large cohorts through multiple rounds (individual and/or group) across many rooms in parallel. " +
		"Applicants are matched to slots based on their availability. " +
		"Unmatched applicants receive suggested alternate slots for manual placement."
}

func (batchScheduler) ConfigSchema() []ConfigField {
	return []ConfigField{
		{Key: "rooms", Label: "Room list (one per line)", Type: "string", Default: "MCB230\nMCB231\nMCB232"},
		{Key: "slotStepMinutes", Label: "Minutes between slot start times", Type: "number", Default: 15},
		{Key: "blockBreakMinutes", Label: "Break between consecutive slots (minutes)", Type: "number", Default: 5},
		{Key: "requireAllRounds", Label: "Require all rounds", Type: "boolean", Default: false},
		{Key: "relaxedFallback", Label: "Relaxed fallback pass", Type: "boolean", Default: false},
		{Key: "relaxedAvailabilityPenalty", Label: "Score penalty per availability violation", Type: "number", Default: 10},
	}
}

// batchState is the explicit arena shared by the placement passes. Slots are
// addressed through the slice and mutated only here, never aliased elsewhere.
type batchState struct {
	input    Input
	cfg      *BatchConfig
	rules    []AttributeMatchRule
	penalty  float64
	slots    []*roomSlot
	proposed []ProposedInterview
	warnings []string

	assignedPerRound map[string]map[string]bool // roundId -> email set
	relaxedPerRound  map[string]map[string]bool
}

func (batchScheduler) Run(in Input) Output {
	cfg := in.Config.Batch

	allUnmatched := func(warning string) Output {
		emails := make([]string, 0, len(in.Applicants))
		for _, a := range in.Applicants {
			emails = append(emails, a.Email)
		}
		return Output{Interviews: []ProposedInterview{}, Unmatched: emails, Warnings: []string{warning}}
	}

	if cfg == nil || len(cfg.Rooms) == 0 {
		return allUnmatched("No rooms configured.")
	}
	if len(cfg.Rounds) == 0 {
		return allUnmatched("No rounds configured.")
	}
	if len(cfg.SessionWindows) == 0 {
		return allUnmatched("No session windows configured.")
	}

	st := &batchState{
		input:            in,
		cfg:              cfg,
		penalty:          resolveRelaxedPenalty(cfg.RelaxedAvailabilityPenalty),
		slots:            generateRoomSlots(cfg.Rooms, cfg.Rounds, cfg.SessionWindows, cfg.SlotStepMinutes, cfg.BlockBreakMinutes),
		assignedPerRound: make(map[string]map[string]bool),
		relaxedPerRound:  make(map[string]map[string]bool),
	}
	if cfg.AttributeMatching.Enabled {
		st.rules = cfg.AttributeMatching.Rules
	}
	for _, round := range cfg.Rounds {
		st.assignedPerRound[round.ID] = make(map[string]bool)
		st.relaxedPerRound[round.ID] = make(map[string]bool)
	}

	st.warnings = assignInterviewers(st.slots, in.Interviewers)

	for _, round := range cfg.Rounds {
		roundSlots := st.slotsForRound(round.ID)
		st.placeRound(round, roundSlots, passStrict)
		if cfg.RelaxedFallback {
			st.placeRound(round, roundSlots, passRelaxed)
		}
	}

	unmatchedEmails := st.applyRequireAllRounds()
	details := st.buildUnmatchedDetails(unmatchedEmails)

	if len(details) > 0 {
		st.warnings = append(st.warnings, fmt.Sprintf(
			"%d applicant(s) could not be fully scheduled. See unmatchedDetails for suggested alternate slots.", len(details)))
	}

	unmatched := make([]string, 0, len(details))
	for _, d := range details {
		unmatched = append(unmatched, d.Email)
	}

	stats, relaxedTotal := st.buildStats()

	return Output{
		Interviews:       st.proposed,
		Unmatched:        unmatched,
		Warnings:         st.warnings,
		UnmatchedDetails: details,
		Stats:            stats,
		RelaxedCount:     relaxedTotal,
	}
}

func (st *batchState) slotsForRound(roundID string) []*roomSlot {
	var out []*roomSlot
	for _, slot := range st.slots {
		if slot.round.ID == roundID {
			out = append(out, slot)
		}
	}
	return out
}

// orderApplicants sorts by descending priority, ties broken by ascending count
// of round slots the applicant is available for: most constrained first, so a
// low-constraint applicant does not consume the only option of a highly
// constrained one. The sort is stable; input order decides remaining ties.
func (st *batchState) orderApplicants(roundSlots []*roomSlot) []Applicant {
	counts := make(map[string]int, len(st.input.Applicants))
	for _, a := range st.input.Applicants {
		n := 0
		for _, slot := range roundSlots {
			if availableAt(a.Availability, slot.date, slot.startMins, slot.endMins) {
				n++
			}
		}
		counts[a.Email] = n
	}

	sorted := make([]Applicant, len(st.input.Applicants))
	copy(sorted, st.input.Applicants)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority > sorted[j].Priority
		}
		return counts[sorted[i].Email] < counts[sorted[j].Email]
	})
	return sorted
}

func (st *batchState) placeRound(round Round, roundSlots []*roomSlot, pass placementPass) {
	for _, applicant := range st.orderApplicants(roundSlots) {
		if st.assignedPerRound[round.ID][applicant.Email] {
			continue
		}
		st.placeApplicant(round, roundSlots, applicant, pass)
	}
}

func (st *batchState) placeApplicant(round Round, roundSlots []*roomSlot, applicant Applicant, pass placementPass) {
	var candidates []*roomSlot
	for _, slot := range roundSlots {
		if len(slot.assignedApplicants) >= round.GroupSize {
			continue
		}
		available := availableAt(applicant.Availability, slot.date, slot.startMins, slot.endMins)
		if pass == passStrict && !available {
			continue
		}
		if hasConflict(slot.date, slot.startTime, slot.endTime, applicant.Email,
			st.input.ExistingInterviews, st.proposed, st.cfg.BlockBreakMinutes) {
			continue
		}
		candidates = append(candidates, slot)
	}
	if len(candidates) == 0 {
		return
	}

	if len(st.rules) > 0 {
		filtered, failedOpen := filterHardRules(applicant, candidates, st.input.Interviewers, st.rules)
		if failedOpen {
			st.warnings = append(st.warnings, fmt.Sprintf(
				"Round %s: no slot satisfies the hard attribute rules for %s; hard rules ignored for this applicant.",
				round.ID, applicant.Email))
		}
		candidates = filtered
	}

	var best *roomSlot
	var bestScore float64
	var bestViolations []Violation
	for _, slot := range candidates {
		available := availableAt(applicant.Availability, slot.date, slot.startMins, slot.endMins)
		score, violations := scoreSlot(applicant, slot, st.input.Interviewers, st.rules, available, st.penalty)
		if best == nil || score > bestScore {
			best = slot
			bestScore = score
			bestViolations = violations
		}
	}

	best.assignedApplicants = append(best.assignedApplicants, applicant.Email)
	st.assignedPerRound[round.ID][applicant.Email] = true
	if pass == passRelaxed && !availableAt(applicant.Availability, best.date, best.startMins, best.endMins) {
		st.relaxedPerRound[round.ID][applicant.Email] = true
	}

	// One row per assigned interviewer, matching the persistence model.
	for _, ivEmail := range best.assignedInterviewers {
		if ivEmail == "" {
			ivEmail = "tbd"
		}
		st.proposed = append(st.proposed, ProposedInterview{
			StartTime:   ToISO(best.date, best.startTime),
			EndTime:     ToISO(best.date, best.endTime),
			Applicant:   applicant.Email,
			Interviewer: ivEmail,
			Location:    best.room,
			Type:        round.Type,
			JobID:       applicant.JobID,
			Violations:  bestViolations,
		})
	}
}

// applyRequireAllRounds retracts every placement of applicants missing at
// least one round when the all-or-nothing policy is set. It runs once, after
// every round has had both passes. The returned set holds the emails of
// applicants missing at least one round regardless of the policy.
func (st *batchState) applyRequireAllRounds() map[string]bool {
	unmatched := make(map[string]bool)
	for _, applicant := range st.input.Applicants {
		for _, round := range st.cfg.Rounds {
			if !st.assignedPerRound[round.ID][applicant.Email] {
				unmatched[applicant.Email] = true
				break
			}
		}
	}

	if !st.cfg.RequireAllRounds || len(unmatched) == 0 {
		return unmatched
	}

	kept := st.proposed[:0:0]
	for _, p := range st.proposed {
		if !unmatched[p.Applicant] {
			kept = append(kept, p)
		}
	}
	st.proposed = kept

	for _, slot := range st.slots {
		remaining := slot.assignedApplicants[:0:0]
		for _, email := range slot.assignedApplicants {
			if !unmatched[email] {
				remaining = append(remaining, email)
			}
		}
		slot.assignedApplicants = remaining
	}

	for _, round := range st.cfg.Rounds {
		for email := range unmatched {
			delete(st.assignedPerRound[round.ID], email)
			delete(st.relaxedPerRound[round.ID], email)
		}
	}

	return unmatched
}

// buildUnmatchedDetails emits, for every applicant still missing a round, the
// slots in that round matching their stated availability, tagged isFull when
// the slot had already reached capacity. Guidance for manual placement only.
func (st *batchState) buildUnmatchedDetails(unmatchedEmails map[string]bool) []UnmatchedApplicant {
	var details []UnmatchedApplicant

	for _, applicant := range st.input.Applicants {
		var missedRounds []string
		suggested := []SuggestedSlot{}

		for _, round := range st.cfg.Rounds {
			assigned := false
			if !unmatchedEmails[applicant.Email] {
				assigned = st.assignedPerRound[round.ID][applicant.Email]
			}
			if assigned {
				continue
			}
			missedRounds = append(missedRounds, round.ID)

			for _, slot := range st.slotsForRound(round.ID) {
				if !availableAt(applicant.Availability, slot.date, slot.startMins, slot.endMins) {
					continue
				}
				suggested = append(suggested, SuggestedSlot{
					RoundID:   round.ID,
					Date:      slot.date,
					StartTime: slot.startTime,
					EndTime:   slot.endTime,
					Room:      slot.room,
					IsFull:    len(slot.assignedApplicants) >= round.GroupSize,
				})
			}
		}

		if len(missedRounds) > 0 {
			details = append(details, UnmatchedApplicant{
				Email:          applicant.Email,
				Name:           applicant.Name,
				MissedRounds:   missedRounds,
				SuggestedSlots: suggested,
			})
		}
	}

	return details
}

func (st *batchState) buildStats() ([]RoundStat, int) {
	stats := make([]RoundStat, 0, len(st.cfg.Rounds))
	relaxedTotal := 0

	for _, round := range st.cfg.Rounds {
		roundSlots := st.slotsForRound(round.ID)
		filled := 0
		for _, slot := range roundSlots {
			if len(slot.assignedApplicants) > 0 {
				filled++
			}
		}
		scheduled := len(st.assignedPerRound[round.ID])
		relaxed := len(st.relaxedPerRound[round.ID])
		relaxedTotal += relaxed

		stats = append(stats, RoundStat{
			RoundID:      round.ID,
			RoundLabel:   round.Label,
			Scheduled:    scheduled,
			Missed:       len(st.input.Applicants) - scheduled,
			TotalSlots:   len(roundSlots),
			FilledSlots:  filled,
			RelaxedCount: relaxed,
		})
	}

	return stats, relaxedTotal
}
