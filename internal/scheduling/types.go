package scheduling

// TimeRange is one availability window for a person on a single calendar date.
// Times are local wall-clock "HH:mm"; no timezone handling happens anywhere in
// this package.
type TimeRange struct {
	Date  string `json:"date"`  // YYYY-MM-DD
	Start string `json:"start"` // HH:mm
	End   string `json:"end"`   // HH:mm
}

// Applicant is an immutable snapshot of a candidate for one scheduling run.
type Applicant struct {
	Email        string              `json:"email"`
	Name         string              `json:"name"`
	JobID        int64               `json:"jobId"`
	Availability []TimeRange         `json:"availability"`
	Attributes   map[string][]string `json:"attributes,omitempty"` // keyed by question id
	Priority     int                 `json:"priority,omitempty"`   // higher schedules first
}

// Interviewer is a staff member who can host interviews. An empty availability
// list means always available.
type Interviewer struct {
	Email        string              `json:"email"`
	Availability []TimeRange         `json:"availability"`
	Attributes   map[string][]string `json:"attributes,omitempty"` // e.g. skill tags
}

// ExistingInterview is a previously committed assignment, read only for
// conflict checks. Timestamps are ISO datetime strings.
type ExistingInterview struct {
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Interviewer string `json:"interviewer"`
	Applicant   string `json:"applicant"`
}

// Input is the full immutable snapshot one run consumes.
type Input struct {
	Applicants         []Applicant         `json:"applicants"`
	Interviewers       []Interviewer       `json:"interviewers"`
	ExistingInterviews []ExistingInterview `json:"existingInterviews"`
	Config             Config              `json:"config"`
}

// Config carries the fields shared by every strategy plus the batch block
// consumed only by the batch engine.
type Config struct {
	SlotDurationMinutes         int    `json:"slotDurationMinutes"`
	BreakBetweenMinutes         int    `json:"breakBetweenMinutes"`
	MaxInterviewsPerInterviewer int    `json:"maxInterviewsPerInterviewer"`
	InterviewType               string `json:"interviewType"` // individual | group
	Location                    string `json:"location"`

	Batch *BatchConfig `json:"batch,omitempty"`
}

// Round is a named phase of the interview process.
type Round struct {
	ID                  string `json:"id"`
	Label               string `json:"label"`
	Type                string `json:"type"` // individual | group
	DurationMinutes     int    `json:"durationMinutes"`
	BreakBeforeMinutes  int    `json:"breakBeforeMinutes"`
	GroupSize           int    `json:"groupSize"`           // applicants per slot, 1 for individual
	InterviewersPerRoom int    `json:"interviewersPerRoom"` // interviewers assigned per slot
}

// SessionWindow is a calendar block during which slots may be generated.
type SessionWindow struct {
	Date      string `json:"date"`      // YYYY-MM-DD
	StartTime string `json:"startTime"` // HH:mm
	EndTime   string `json:"endTime"`   // HH:mm
}

// AttributeMatchRule declares a correspondence between an applicant answer and
// an interviewer attribute. Hard rules filter candidate slots when
// satisfiable; soft rules only affect scoring.
type AttributeMatchRule struct {
	ApplicantQuestionID     string  `json:"applicantQuestionId"`
	InterviewerAttributeKey string  `json:"interviewerAttributeKey"`
	Weight                  float64 `json:"weight"`
	Hard                    bool    `json:"hard"`
}

// AttributeMatching toggles rule-based matching for the batch engine.
type AttributeMatching struct {
	Enabled bool                 `json:"enabled"`
	Rules   []AttributeMatchRule `json:"rules"`
}

// BatchConfig drives the multi-round batch engine.
type BatchConfig struct {
	Rooms                      []string          `json:"rooms"`
	Rounds                     []Round           `json:"rounds"`
	SessionWindows             []SessionWindow   `json:"sessionWindows"`
	SlotStepMinutes            int               `json:"slotStepMinutes"`   // start-time grid for generated slots; <=0 disables snapping
	BlockBreakMinutes          int               `json:"blockBreakMinutes"` // gap between sequential slots in the same room
	RequireAllRounds           bool              `json:"requireAllRounds"`
	RelaxedFallback            bool              `json:"relaxedFallback"`
	RelaxedAvailabilityPenalty *float64          `json:"relaxedAvailabilityPenalty,omitempty"` // nil or negative falls back to the default; zero is honored
	AttributeMatching          AttributeMatching `json:"attributeMatching"`
}

// ViolationType enumerates constraint violations tolerated by the engine.
type ViolationType string

const (
	ViolationAvailability      ViolationType = "availability"
	ViolationAttributeMismatch ViolationType = "attribute_mismatch"
)

// Violation is attached to a proposed interview that resulted from the relaxed
// pass or an unsatisfied soft preference.
type Violation struct {
	Type   ViolationType `json:"type"`
	Detail string        `json:"detail"`
}

// ProposedInterview is the engine's sole durable output unit. Group slots emit
// one row per (applicant, interviewer) pair.
type ProposedInterview struct {
	StartTime   string      `json:"startTime"`
	EndTime     string      `json:"endTime"`
	Applicant   string      `json:"applicant"`
	Interviewer string      `json:"interviewer"`
	Location    string      `json:"location"`
	Type        string      `json:"type"`
	JobID       int64       `json:"jobId"`
	Violations  []Violation `json:"violations,omitempty"`
}

// SuggestedSlot is manual-placement guidance for an unmatched applicant.
type SuggestedSlot struct {
	RoundID   string `json:"roundId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Room      string `json:"room"`
	IsFull    bool   `json:"isFull"` // slot exists but was at capacity
}

// UnmatchedApplicant details why an applicant could not be fully placed.
type UnmatchedApplicant struct {
	Email          string          `json:"email"`
	Name           string          `json:"name"`
	MissedRounds   []string        `json:"missedRounds"`
	SuggestedSlots []SuggestedSlot `json:"suggestedSlots"`
}

// RoundStat summarises one round after placement.
type RoundStat struct {
	RoundID      string `json:"roundId"`
	RoundLabel   string `json:"roundLabel"`
	Scheduled    int    `json:"scheduled"`
	Missed       int    `json:"missed"`
	TotalSlots   int    `json:"totalSlots"`
	FilledSlots  int    `json:"filledSlots"`
	RelaxedCount int    `json:"relaxedCount"`
}

// Output is the result of one run. Unscheduled applicants are an expected,
// first-class outcome reported via Unmatched/Warnings, never an error.
type Output struct {
	Interviews       []ProposedInterview  `json:"interviews"`
	Unmatched        []string             `json:"unmatched"` // email list (backward compat)
	Warnings         []string             `json:"warnings"`
	UnmatchedDetails []UnmatchedApplicant `json:"unmatchedDetails,omitempty"`
	Stats            []RoundStat          `json:"stats,omitempty"`
	RelaxedCount     int                  `json:"relaxedCount,omitempty"`
}

// ConfigField describes one accepted configuration field so a generic form can
// be rendered by the calling layer without per-strategy UI code.
type ConfigField struct {
	Key     string        `json:"key"`
	Label   string        `json:"label"`
	Type    string        `json:"type"` // number | string | boolean | select
	Default interface{}   `json:"default"`
	Options []FieldOption `json:"options,omitempty"`
}

// FieldOption is one choice of a select field.
type FieldOption struct {
	Label string      `json:"label"`
	Value interface{} `json:"value"`
}

// Algorithm is the contract every interchangeable strategy satisfies. Run is a
// pure function of its input: no I/O, no shared state, deterministic output.
type Algorithm interface {
	ID() string
	Name() string
	Description() string
	ConfigSchema() []ConfigField
	Run(Input) Output
}
