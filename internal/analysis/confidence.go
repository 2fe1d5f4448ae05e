package analysis

import (
	"fmt"
	"strings"
)

// ReviewThreshold is the cutoff below which a result (or individual field)
// is flagged for human review.
const ReviewThreshold = 0.7

// overallFields are the per-field scores folded into the overall mean.
// Organizer, deadline, email and phone are deliberately excluded: the
// review gate weights core scheduling fields over secondary metadata.
// Changing this set changes review behavior; keep it in sync with
// FieldConfidence.
var overallFields = []string{"title", "date", "time", "location"}

// FieldConfidence assigns the fixed per-field scores.
func FieldConfidence(title string, entities EntitySet) map[string]float32 {
	fc := map[string]float32{
		"title":     0.5,
		"date":      0.0,
		"time":      0.0,
		"location":  0.0,
		"organizer": 0.0,
		"deadline":  0.0,
	}
	if len(title) > 5 {
		fc["title"] = 0.9
	}
	if entities.Date != nil {
		fc["date"] = 0.9
	}
	if entities.Time != nil {
		fc["time"] = 0.9
	}
	if entities.Location != nil {
		fc["location"] = 0.85
	}
	if entities.Organizer != nil {
		fc["organizer"] = 0.8
	}
	if entities.Deadline != nil {
		fc["deadline"] = 0.85
	}
	return fc
}

// OverallConfidence is the arithmetic mean of exactly six scores: the two
// classifier scores plus title, date, time and location.
func OverallConfidence(categoryScore, schoolScore float32, fields map[string]float32) float32 {
	sum := categoryScore + schoolScore
	for _, f := range overallFields {
		sum += fields[f]
	}
	return sum / float32(len(overallFields)+2)
}

// NeedsReview is a pure function of the overall confidence; it must never
// be set independently of it.
func NeedsReview(overall float32) bool {
	return overall < ReviewThreshold
}

// Suggestions lists the review-gate fields scoring below the threshold,
// derived purely from the per-field confidence map.
func Suggestions(categoryScore, schoolScore float32, fields map[string]float32) []string {
	var low []string
	if categoryScore < ReviewThreshold {
		low = append(low, "category")
	}
	if schoolScore < ReviewThreshold {
		low = append(low, "school")
	}
	for _, f := range overallFields {
		if fields[f] < ReviewThreshold {
			low = append(low, f)
		}
	}
	if len(low) == 0 {
		return nil
	}
	return []string{fmt.Sprintf("Please review: %s", strings.Join(low, ", "))}
}
