package analysis

import (
	"regexp"
	"strings"
)

// fieldRule is one tier in a field's ordered pattern chain. Tiers run in
// sequence and the first hit wins: labeled context always beats bare shape
// matches, so a phone number can never shadow a "Date:" line. Do not
// reorder.
type fieldRule struct {
	re         *regexp.Regexp
	wholeMatch bool // use the full match instead of group 1
	normalize  func(string) string
}

func (r fieldRule) apply(text string) (string, bool) {
	m := r.re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	val := ""
	if r.wholeMatch || len(m) < 2 {
		val = m[0]
	} else {
		val = m[1]
	}
	val = strings.TrimSpace(val)
	if val == "" {
		return "", false
	}
	if r.normalize != nil {
		val = r.normalize(val)
	}
	return val, true
}

var dateRules = []fieldRule{
	// "Date: March 15, 2026" / "On: March 15-16, 2026"
	{re: regexp.MustCompile(`(?i)(?:Date|On|Event Date):\s*([A-Za-z]+\s+\d{1,2}(?:-\d{1,2})?,?\s+\d{4})`), normalize: NormalizeDate},
	// "15 March 2026" / "15-16 March 2026"
	{re: regexp.MustCompile(`(?i)(\d{1,2}(?:-\d{1,2})?\s+[A-Za-z]+\s+\d{4})`), normalize: NormalizeDate},
	// "March 15-16, 2026"
	{re: regexp.MustCompile(`(?i)([A-Za-z]+\s+\d{1,2}(?:-\d{1,2})?,?\s+\d{4})`), normalize: NormalizeDate},
	// "15/03/2026" / "15-03-2026"
	{re: regexp.MustCompile(`(\d{1,2}[-/]\d{1,2}[-/]\d{4})`), normalize: NormalizeDate},
	// "2026-03-15" ISO
	{re: regexp.MustCompile(`(\d{4}[-/]\d{1,2}[-/]\d{1,2})`), normalize: NormalizeDate},
}

var timeRules = []fieldRule{
	// "Time: 9:00 AM - 6:00 PM" / "At: 9:00 AM"
	{re: regexp.MustCompile(`(?i)(?:Time|At|Timing):\s*(\d{1,2}:\d{2}\s*(?:AM|PM)?(?:\s*[-to]+\s*\d{1,2}:\d{2}\s*(?:AM|PM)?)?)`), normalize: normalizeTime},
	// "9:00 AM - 6:00 PM" standalone
	{re: regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s*(?:AM|PM)\s*[-to]+\s*\d{1,2}:\d{2}\s*(?:AM|PM))`), normalize: normalizeTime},
	// "09:00 - 18:00" 24-hour
	{re: regexp.MustCompile(`(\d{1,2}:\d{2}\s*[-to]+\s*\d{1,2}:\d{2})`), normalize: normalizeTime},
	// "10 AM - 5 PM" without minutes
	{re: regexp.MustCompile(`(?i)(\d{1,2}\s*(?:AM|PM)\s*[-to]+\s*\d{1,2}\s*(?:AM|PM))`), normalize: normalizeTime},
	// single bare time "10:00 AM" / "10 AM"
	{re: regexp.MustCompile(`(?i)(?:^|\s)(\d{1,2}(?::\d{2})?\s*(?:AM|PM))\b`), normalize: normalizeTime},
}

var locationRules = []fieldRule{
	// "Venue: Main Auditorium Block-A"
	{re: regexp.MustCompile(`(?i)(?:Venue|Location|Place):\s*([A-Za-z0-9\s,\-&()]+?)(?:\n|Date|Time|Register|Contact|Organized|$)`)},
	// "@ Main Auditorium"
	{re: regexp.MustCompile(`(?i)@\s*([A-Za-z0-9\s,\-&()]+?)(?:\n|Date|Time|$)`)},
	// bare "Hall 1, Block A" shapes
	{re: regexp.MustCompile(`(?i)(?:Hall|Room|Auditorium|Block|Building)\s+[A-Za-z0-9\-]+[^.!?\n]*`), wholeMatch: true},
}

var organizerRules = []fieldRule{
	{re: regexp.MustCompile(`(?i)(?:Organized|Organised)[^\n]*?by:\s*([A-Za-z0-9\s,&\-()]+?)(?:\n|Sponsored|Contact|Date|Time|$)`), normalize: cleanOrganizer},
	{re: regexp.MustCompile(`(?i)(?:Organized|Organised)[^\n]*?by\s+([A-Za-z0-9\s,&\-()]+?)(?:\n|Sponsored|Contact|Date|Time|$)`), normalize: cleanOrganizer},
	{re: regexp.MustCompile(`(?i)(?:By|Presented by|Conducted by)[:\s]+([A-Za-z0-9\s,&\-()]+?)(?:\n|Contact|Date|Time|$)`), normalize: cleanOrganizer},
	{re: regexp.MustCompile(`(?i)(?:Organizer|Organiser):\s*([A-Za-z0-9\s,&\-()]+?)(?:\n|Contact|Date|$)`), normalize: cleanOrganizer},
}

var deadlineRules = []fieldRule{
	{re: regexp.MustCompile(`(?i)(?:Register|Registration|Registration by|Register by|Deadline):\s*([A-Za-z]+\s+\d{1,2},?\s+\d{4})`), normalize: NormalizeDate},
	{re: regexp.MustCompile(`(?i)(?:Register|Registration|Registration by|Register by|Deadline):\s*(\d{1,2}[-/]\d{1,2}[-/]\d{4})`), normalize: NormalizeDate},
	{re: regexp.MustCompile(`(?i)(?:Last date|Last Date):\s*([A-Za-z]+\s+\d{1,2},?\s+\d{4}|\d{1,2}[-/]\d{1,2}[-/]\d{4})`), normalize: NormalizeDate},
}

var emailRules = []fieldRule{
	{re: regexp.MustCompile(`([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)},
}

var phoneRules = []fieldRule{
	{re: regexp.MustCompile(`(?i)(?:Contact|Ph|Phone|Call):\s*([\d\s\-+()]{10,})`)},
}

var (
	reLowerAM     = regexp.MustCompile(`(?i)\bam\b`)
	reLowerPM     = regexp.MustCompile(`(?i)\bpm\b`)
	reTimeTo      = regexp.MustCompile(`(?i)\s*to\s*`)
	reCollabTail  = regexp.MustCompile(`\s+(?:in|with|and|&)\s+[Cc]ollaboration.*$`)
	reSponsorTail = regexp.MustCompile(`\s+[Ss]ponsored.*$`)
)

func normalizeTime(t string) string {
	t = reLowerAM.ReplaceAllString(t, "AM")
	t = reLowerPM.ReplaceAllString(t, "PM")
	t = reTimeTo.ReplaceAllString(t, " - ")
	return strings.TrimSpace(t)
}

func cleanOrganizer(org string) string {
	org = reCollabTail.ReplaceAllString(org, "")
	org = reSponsorTail.ReplaceAllString(org, "")
	return strings.TrimSpace(org)
}

func firstMatch(rules []fieldRule, text string) *string {
	for _, rule := range rules {
		if val, ok := rule.apply(text); ok {
			return &val
		}
	}
	return nil
}

// ExtractEntities runs every field's rule chain over the normalized text.
// Fields with no matching tier stay nil.
func ExtractEntities(text string) EntitySet {
	return EntitySet{
		Date:      firstMatch(dateRules, text),
		Time:      firstMatch(timeRules, text),
		Location:  firstMatch(locationRules, text),
		Organizer: firstMatch(organizerRules, text),
		Deadline:  firstMatch(deadlineRules, text),
		Email:     firstMatch(emailRules, text),
		Phone:     firstMatch(phoneRules, text),
	}
}
