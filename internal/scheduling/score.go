package scheduling

import (
	"fmt"
	"strings"
)

const baseScore = 100.0

// defaultRelaxedPenalty is subtracted per availability violation in the
// relaxed pass when no penalty is configured.
const defaultRelaxedPenalty = 10.0

// resolveRelaxedPenalty maps the configured penalty to the effective one. Nil
// and negative values fall back to the default; an explicit zero disables the
// penalty.
func resolveRelaxedPenalty(p *float64) float64 {
	if p != nil && *p >= 0 {
		return *p
	}
	return defaultRelaxedPenalty
}

// normalizeValues lower-cases, trims and comma-splits stored attribute values
// into a set for intersection purposes.
func normalizeValues(values []string) map[string]bool {
	set := make(map[string]bool)
	for _, raw := range values {
		for _, part := range strings.Split(raw, ",") {
			v := strings.ToLower(strings.TrimSpace(part))
			if v != "" {
				set[v] = true
			}
		}
	}
	return set
}

func setsIntersect(a, b map[string]bool) bool {
	for v := range a {
		if b[v] {
			return true
		}
	}
	return false
}

// slotAttributeValues unions the normalized values stored under key across the
// interviewers already assigned to the slot.
func slotAttributeValues(slot *roomSlot, interviewers []Interviewer, key string) map[string]bool {
	set := make(map[string]bool)
	for _, email := range slot.assignedInterviewers {
		for _, iv := range interviewers {
			if iv.Email != email {
				continue
			}
			for v := range normalizeValues(iv.Attributes[key]) {
				set[v] = true
			}
		}
	}
	return set
}

// ruleSatisfied reports whether the applicant's normalized answer set for the
// rule intersects the slot's interviewer values.
func ruleSatisfied(rule AttributeMatchRule, applicant Applicant, slot *roomSlot, interviewers []Interviewer) bool {
	answers := normalizeValues(applicant.Attributes[rule.ApplicantQuestionID])
	if len(answers) == 0 {
		return false
	}
	return setsIntersect(answers, slotAttributeValues(slot, interviewers, rule.InterviewerAttributeKey))
}

// hasStatedAnswer reports whether the applicant has an opinion on the rule's
// question.
func hasStatedAnswer(rule AttributeMatchRule, applicant Applicant) bool {
	return len(normalizeValues(applicant.Attributes[rule.ApplicantQuestionID])) > 0
}

// scoreSlot rates a candidate slot for an applicant. The baseline is 100; a
// relaxed placement outside the applicant's availability costs the configured
// penalty and records an availability violation; every satisfied attribute
// rule adds its weight. If soft rules exist, the applicant stated a preference
// and none matched, an attribute_mismatch violation is recorded without
// affecting the score.
func scoreSlot(
	applicant Applicant,
	slot *roomSlot,
	interviewers []Interviewer,
	rules []AttributeMatchRule,
	available bool,
	relaxedPenalty float64,
) (float64, []Violation) {
	score := baseScore
	var violations []Violation

	if !available {
		score -= relaxedPenalty
		violations = append(violations, Violation{
			Type:   ViolationAvailability,
			Detail: fmt.Sprintf("outside stated availability: %s %s-%s", slot.date, slot.startTime, slot.endTime),
		})
	}

	softStated := false
	softMatched := false
	for _, rule := range rules {
		matched := ruleSatisfied(rule, applicant, slot, interviewers)
		if matched {
			score += rule.Weight
		}
		if !rule.Hard && hasStatedAnswer(rule, applicant) {
			softStated = true
			if matched {
				softMatched = true
			}
		}
	}
	if softStated && !softMatched {
		violations = append(violations, Violation{
			Type:   ViolationAttributeMismatch,
			Detail: "no assigned interviewer matches the applicant's stated preference",
		})
	}

	return score, violations
}

// filterHardRules restricts candidates to slots whose interviewers satisfy
// every hard rule the applicant has an opinion on. When the filter eliminates
// all candidates it fails open: hard rules are ignored for that applicant so
// they are not left entirely unplaced. The second return value reports that
// the fallback triggered so the caller can surface a warning.
func filterHardRules(
	applicant Applicant,
	candidates []*roomSlot,
	interviewers []Interviewer,
	rules []AttributeMatchRule,
) ([]*roomSlot, bool) {
	var hard []AttributeMatchRule
	for _, rule := range rules {
		if rule.Hard && hasStatedAnswer(rule, applicant) {
			hard = append(hard, rule)
		}
	}
	if len(hard) == 0 {
		return candidates, false
	}

	var filtered []*roomSlot
	for _, slot := range candidates {
		ok := true
		for _, rule := range hard {
			if !ruleSatisfied(rule, applicant, slot, interviewers) {
				ok = false
				break
			}
		}
		if ok {
			filtered = append(filtered, slot)
		}
	}
	if len(filtered) == 0 {
		return candidates, true
	}
	return filtered, false
}
