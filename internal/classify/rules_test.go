package classify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyByRules_KeywordCountScaling(t *testing.T) {
	got := classifyByRules("hackathon coding competition", defaultCategoryTable(), categoryNorm)
	assert.Equal(t, "Technical", got.Name)
	assert.InDelta(t, 0.2, got.Score, 1e-6)
}

func TestClassifyByRules_NoSignalDefaultsToFirstLabel(t *testing.T) {
	got := classifyByRules("zzz qqq", defaultCategoryTable(), categoryNorm)
	assert.Equal(t, "Technical", got.Name)
	assert.InDelta(t, 0.5, got.Score, 1e-6)

	got = classifyByRules("zzz qqq", defaultSchoolTable(), schoolNorm)
	assert.Equal(t, "Amity School of Engineering & Technology", got.Name)
	assert.InDelta(t, 0.5, got.Score, 1e-6)
}

func TestClassifyByRules_TieGoesToEarlierLabel(t *testing.T) {
	got := classifyByRules("workshop fest", defaultCategoryTable(), categoryNorm)
	assert.Equal(t, "Workshop", got.Name)
	assert.InDelta(t, 0.1, got.Score, 1e-6)
}

func TestClassifyByRules_ScoreCapped(t *testing.T) {
	table := []LabelKeywords{{
		Label:    "Everything",
		Keywords: []string{"a1", "b2", "c3", "d4", "e5", "f6", "g7", "h8", "i9", "j0", "k1", "l2"},
	}}
	got := classifyByRules("a1 b2 c3 d4 e5 f6 g7 h8 i9 j0 k1 l2", table, categoryNorm)
	assert.InDelta(t, 0.95, got.Score, 1e-6)
}

func TestClassifyByRules_KeywordCountsOnce(t *testing.T) {
	got := classifyByRules("hackathon hackathon hackathon", defaultCategoryTable(), categoryNorm)
	assert.Equal(t, "Technical", got.Name)
	assert.InDelta(t, 0.1, got.Score, 1e-6)
}

func TestLoadKeywordTables_PartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keywords.yaml")
	yaml := "categories:\n" +
		"  - label: Robotics\n" +
		"    keywords: [robot, arduino]\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	tables, err := LoadKeywordTables(path)
	require.NoError(t, err)
	require.Len(t, tables.Categories, 1)
	assert.Equal(t, "Robotics", tables.Categories[0].Label)
	assert.Len(t, tables.Schools, len(defaultSchoolTable()))
}

func TestLoadKeywordTables_MissingFile(t *testing.T) {
	_, err := LoadKeywordTables(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
