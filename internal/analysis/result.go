package analysis

// ExtractedData is the pre-filled event form produced from a poster.
type ExtractedData struct {
	Title                string `json:"title"`
	Category             string `json:"category"`
	School               string `json:"school"`
	Date                 string `json:"date"`
	Time                 string `json:"time"`
	Location             string `json:"location"`
	Organizer            string `json:"organizer"`
	RegistrationDeadline string `json:"registrationDeadline"`
	Description          string `json:"description"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
}

// Confidence carries classifier scores, per-field scores, and the overall
// mean used by the review gate.
type Confidence struct {
	Category float32            `json:"category"`
	School   float32            `json:"school"`
	Fields   map[string]float32 `json:"fields"`
	Overall  float32            `json:"overall"`
}

// Result is the terminal artifact of one poster analysis. It is built once
// and never mutated; the caller decides whether to persist or discard it.
type Result struct {
	Success       bool          `json:"success"`
	Error         string        `json:"error,omitempty"`
	ExtractedData ExtractedData `json:"extractedData"`
	Confidence    Confidence    `json:"confidence"`
	RawText       string        `json:"rawText"`
	NeedsReview   bool          `json:"needsReview"`
	Suggestions   []string      `json:"suggestions"`
}

// EntitySet maps field names to optionally-present values. Nil means the
// field was never found, which the confidence model treats differently
// from an empty match.
type EntitySet struct {
	Date      *string
	Time      *string
	Location  *string
	Organizer *string
	Deadline  *string
	Email     *string
	Phone     *string
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
