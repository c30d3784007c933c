package scheduling

import "fmt"

// roomSlot is one bookable (room, round, date, time-window) unit. Slots are
// generated fresh each run, mutated in place by the assignment passes and
// discarded afterwards; only the resulting proposed rows leave the engine.
type roomSlot struct {
	id        string // (date, room, roundId, stepIndex) - stable across runs
	room      string
	round     Round
	date      string
	startTime string
	endTime   string
	startMins int
	endMins   int

	assignedApplicants   []string
	assignedInterviewers []string
}

// generateRoomSlots expands sessionWindows x rounds x rooms into the full slot
// lattice. Within a window the cursor starts at the window's start minute and
// advances by the round's duration plus blockBreak; a positive slotStep then
// snaps each start to the next multiple of slotStep from the window start, so
// all slots in a window land on a common time grid. Rooms at the same step are
// independent parallel slots.
func generateRoomSlots(rooms []string, rounds []Round, windows []SessionWindow, slotStep, blockBreak int) []*roomSlot {
	var slots []*roomSlot
	for _, window := range windows {
		windowStart := ToMinutes(window.StartTime)
		windowEnd := ToMinutes(window.EndTime)
		for _, round := range rounds {
			if round.DurationMinutes <= 0 {
				continue
			}
			stepIndex := 0
			for cursor := windowStart; cursor+round.DurationMinutes <= windowEnd; {
				for _, room := range rooms {
					slots = append(slots, &roomSlot{
						id:        fmt.Sprintf("%s/%s/%s/%d", window.Date, room, round.ID, stepIndex),
						room:      room,
						round:     round,
						date:      window.Date,
						startTime: FromMinutes(cursor),
						endTime:   FromMinutes(cursor + round.DurationMinutes),
						startMins: cursor,
						endMins:   cursor + round.DurationMinutes,
					})
				}
				stepIndex++
				cursor += round.DurationMinutes + blockBreak
				if slotStep > 0 {
					if rem := (cursor - windowStart) % slotStep; rem != 0 {
						cursor += slotStep - rem
					}
				}
			}
		}
	}
	return slots
}

// availableAt reports whether any of the ranges fully covers the window on the
// given date.
func availableAt(ranges []TimeRange, date string, startMins, endMins int) bool {
	for _, r := range ranges {
		if r.Date != date {
			continue
		}
		if ToMinutes(r.Start) <= startMins && ToMinutes(r.End) >= endMins {
			return true
		}
	}
	return false
}

// interviewerFreeAt reports whether the interviewer holds no other slot
// assignment overlapping the window. It scans all slots rather than a running
// total so that out-of-order assignment stays correct.
func interviewerFreeAt(email, date string, startMins, endMins int, slots []*roomSlot) bool {
	for _, slot := range slots {
		if slot.date != date {
			continue
		}
		if slot.startMins >= endMins || slot.endMins <= startMins {
			continue
		}
		for _, assigned := range slot.assignedInterviewers {
			if assigned == email {
				return false
			}
		}
	}
	return true
}
