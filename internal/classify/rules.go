package classify

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/campusmemory/campus-events/constants"
)

// categoryNorm and schoolNorm scale keyword counts into confidences. The
// school constant is lower because school keyword lists are shorter.
const (
	categoryNorm = 10.0
	schoolNorm   = 5.0
	maxRuleScore = 0.95
)

// LabelKeywords binds one label to its trigger words. Table order matters:
// ties go to the earlier label, and the first entry is the no-signal
// default.
type LabelKeywords struct {
	Label    string   `yaml:"label"`
	Keywords []string `yaml:"keywords"`
}

// KeywordTables holds both rule tables, loadable from YAML to let a deploy
// tune trigger words without a rebuild.
type KeywordTables struct {
	Categories []LabelKeywords `yaml:"categories"`
	Schools    []LabelKeywords `yaml:"schools"`
}

func defaultCategoryTable() []LabelKeywords {
	return []LabelKeywords{
		{Label: string(constants.Technical), Keywords: []string{"hackathon", "coding", "tech", "programming", "ai", "ml", "software", "hardware"}},
		{Label: string(constants.Workshop), Keywords: []string{"workshop", "training", "seminar", "tutorial", "hands-on", "session"}},
		{Label: string(constants.Cultural), Keywords: []string{"cultural", "music", "dance", "drama", "fest", "performance", "art"}},
		{Label: string(constants.Sports), Keywords: []string{"sports", "tournament", "match", "athletic", "game", "competition"}},
		{Label: string(constants.Career), Keywords: []string{"career", "placement", "job", "internship", "recruitment", "interview"}},
		{Label: string(constants.Awareness), Keywords: []string{"awareness", "campaign", "social", "environment", "health", "safety"}},
		{Label: string(constants.Webinar), Keywords: []string{"webinar", "online", "virtual", "zoom", "meet", "session"}},
	}
}

func defaultSchoolTable() []LabelKeywords {
	return []LabelKeywords{
		{Label: string(constants.EngineeringTechnology), Keywords: []string{"engineering", "technology", "aset"}},
		{Label: string(constants.Business), Keywords: []string{"business", "mba", "management", "asb"}},
		{Label: string(constants.Communication), Keywords: []string{"communication", "media", "journalism", "asc"}},
		{Label: string(constants.ComputerScience), Keywords: []string{"computer science", "cs", "it", "ascs"}},
		{Label: string(constants.ArchitecturePlanning), Keywords: []string{"architecture", "planning", "design"}},
		{Label: string(constants.FineArts), Keywords: []string{"fine arts", "art", "painting"}},
		{Label: string(constants.Law), Keywords: []string{"law", "legal", "judiciary"}},
		{Label: string(constants.AppliedSciences), Keywords: []string{"applied sciences", "science", "physics", "chemistry"}},
		{Label: string(constants.Biotechnology), Keywords: []string{"biotechnology", "bio", "genetics"}},
		{Label: string(constants.Hospitality), Keywords: []string{"hospitality", "hotel", "tourism"}},
		{Label: string(constants.LiberalArts), Keywords: []string{"liberal arts", "humanities"}},
		{Label: string(constants.Design), Keywords: []string{"design", "graphic", "ux", "ui"}},
	}
}

// DefaultKeywordTables returns the compiled-in rule tables.
func DefaultKeywordTables() KeywordTables {
	return KeywordTables{
		Categories: defaultCategoryTable(),
		Schools:    defaultSchoolTable(),
	}
}

// LoadKeywordTables reads YAML overrides; empty sections keep the defaults.
func LoadKeywordTables(path string) (KeywordTables, error) {
	tables := DefaultKeywordTables()
	raw, err := os.ReadFile(path)
	if err != nil {
		return tables, fmt.Errorf("read keyword tables: %w", err)
	}
	var loaded KeywordTables
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return tables, fmt.Errorf("parse keyword tables: %w", err)
	}
	if len(loaded.Categories) > 0 {
		tables.Categories = loaded.Categories
	}
	if len(loaded.Schools) > 0 {
		tables.Schools = loaded.Schools
	}
	return tables, nil
}

// ruleScore counts distinct keywords occurring in the lowered text. Each
// keyword counts once no matter how often it appears.
func ruleScore(textLower string, keywords []string) int {
	score := 0
	for _, kw := range keywords {
		if strings.Contains(textLower, kw) {
			score++
		}
	}
	return score
}

// classifyByRules scans the table in order and keeps the first strictly
// best label. With no signal at all it returns the table's first label at
// 0.5 confidence; that default bias toward the first entry is preserved
// from the event form's behavior rather than hidden.
func classifyByRules(text string, table []LabelKeywords, norm float32) Label {
	textLower := strings.ToLower(text)

	best := Label{}
	bestCount := 0
	for i, entry := range table {
		count := ruleScore(textLower, entry.Keywords)
		if i == 0 || count > bestCount {
			best = Label{Name: entry.Label}
			bestCount = count
		}
	}

	if bestCount == 0 {
		return Label{Name: table[0].Label, Score: 0.5}
	}

	score := float32(bestCount) / norm
	if score > maxRuleScore {
		score = maxRuleScore
	}
	best.Score = score
	return best
}
