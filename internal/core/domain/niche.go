package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GeneralNiche is returned when no keyword matches.
const GeneralNiche = "General"

// nicheKeywords is ordered: the first category with a matching keyword wins.
var nicheKeywords = []struct {
	niche    string
	keywords []string
}{
	{"tech", []string{"tech", "technology", "coding", "programming", "software", "developer"}},
	{"gaming", []string{"gaming", "game", "gamer", "esports", "gameplay", "streamer"}},
	{"fitness", []string{"fitness", "workout", "gym", "health", "exercise", "bodybuilding"}},
	{"fashion", []string{"fashion", "style", "beauty", "makeup", "clothing"}},
	{"business", []string{"business", "entrepreneur", "startup", "marketing", "finance"}},
	{"food", []string{"food", "cooking", "recipe", "chef", "kitchen"}},
	{"travel", []string{"travel", "adventure", "tourism", "explore"}},
	{"education", []string{"education", "learning", "tutorial", "course", "teach"}},
}

// ClassifyNiche derives a category label from a creator's title and
// description by substring keyword match.
func ClassifyNiche(title, description string) string {
	text := strings.ToLower(title + " " + description)
	for _, n := range nicheKeywords {
		for _, kw := range n.keywords {
			if strings.Contains(text, kw) {
				return cases.Title(language.English).String(n.niche)
			}
		}
	}
	return GeneralNiche
}
