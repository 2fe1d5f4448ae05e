package constants

import "strings"

type School string

const (
	EngineeringTechnology School = "Amity School of Engineering & Technology"
	Business              School = "Amity School of Business"
	Communication         School = "Amity School of Communication"
	ComputerScience       School = "Amity School of Computer Science"
	ArchitecturePlanning  School = "Amity School of Architecture & Planning"
	FineArts              School = "Amity School of Fine Arts"
	Law                   School = "Amity School of Law"
	AppliedSciences       School = "Amity School of Applied Sciences"
	Biotechnology         School = "Amity School of Biotechnology"
	Hospitality           School = "Amity School of Hospitality"
	LiberalArts           School = "Amity School of Liberal Arts"
	Design                School = "Amity School of Design"
)

// allSchools mirrors the ordering of the campus directory; the first entry
// is the rule-based classifier's no-signal fallback.
var allSchools = []School{
	EngineeringTechnology,
	Business,
	Communication,
	ComputerScience,
	ArchitecturePlanning,
	FineArts,
	Law,
	AppliedSciences,
	Biotechnology,
	Hospitality,
	LiberalArts,
	Design,
}

func Schools() []string {
	result := make([]string, len(allSchools))
	for i, s := range allSchools {
		result[i] = string(s)
	}
	return result
}

// DefaultSchool is the no-signal fallback label. Known bias: it always
// favors the engineering school.
func DefaultSchool() School {
	return allSchools[0]
}

func CanonicalizeSchool(input string) (School, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return DefaultSchool(), false
	}
	for _, s := range allSchools {
		if normalized == strings.ToLower(string(s)) {
			return s, true
		}
	}
	return DefaultSchool(), false
}
