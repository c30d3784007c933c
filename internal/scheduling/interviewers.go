package scheduling

import "fmt"

// assignInterviewers staffs every generated slot, in generation order. The
// preferred pool is interviewers whose availability covers the slot window (an
// empty availability list means always available) and who hold no overlapping
// slot assignment. When the pool runs short the remaining seats are filled
// round-robin from the full roster even if that double-books someone: the
// engine always proposes something a human can adjust rather than dropping a
// whole round for lack of staff. Each shortfall emits a warning.
func assignInterviewers(slots []*roomSlot, interviewers []Interviewer) []string {
	var warnings []string

	for slotIndex, slot := range slots {
		needed := slot.round.InterviewersPerRoom

		var available []Interviewer
		for _, iv := range interviewers {
			if len(iv.Availability) == 0 || availableAt(iv.Availability, slot.date, slot.startMins, slot.endMins) {
				available = append(available, iv)
			}
		}

		var picked []string
		for _, iv := range available {
			if len(picked) >= needed {
				break
			}
			if interviewerFreeAt(iv.Email, slot.date, slot.startMins, slot.endMins, slots) {
				picked = append(picked, iv.Email)
			}
		}

		fellBack := false
		if len(picked) < needed && len(interviewers) > 0 {
			for i := len(picked); i < needed; i++ {
				iv := interviewers[(slotIndex+i)%len(interviewers)]
				if !containsString(picked, iv.Email) {
					picked = append(picked, iv.Email)
					fellBack = true
				}
			}
		}

		slot.assignedInterviewers = picked

		if len(picked) < needed {
			warnings = append(warnings, fmt.Sprintf(
				"Slot %s: needed %d interviewer(s), only %d available.", slot.id, needed, len(picked)))
		} else if fellBack {
			warnings = append(warnings, fmt.Sprintf(
				"Slot %s: filled %d interviewer seat(s) by rotation; double-booking possible.", slot.id, needed))
		}
	}

	return warnings
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
