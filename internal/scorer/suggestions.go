package scorer

import "github.com/titleboost/titleboost/internal/models"

// Suggestion templates are evaluated in a fixed order so that output is
// deterministic for a given breakdown.
var improvementOrder = []struct {
	category string
	text     string
}{
	{models.CategoryLength, "Aim for 50-60 characters; titles in that range get the most clicks"},
	{models.CategoryKeywords, "Add a searchable phrase like \"how to\", \"best\" or \"tutorial\""},
	{models.CategoryEngagement, "Add a number, a question mark or a power word to spark curiosity"},
	{models.CategoryClarity, "Reduce punctuation and capitalization so the title reads cleanly"},
	{models.CategoryTrending, "Reference the current year or a trending format like \"vs\" or \"challenge\""},
}

var strengthOrder = []struct {
	category string
	text     string
}{
	{models.CategoryLength, "Title length is in the high-performing range"},
	{models.CategoryKeywords, "Strong searchable keywords"},
	{models.CategoryEngagement, "Good engagement hooks"},
	{models.CategoryClarity, "Clean, readable title"},
	{models.CategoryTrending, "Taps into a trending format"},
}

const (
	maxImprovements = 4
	maxStrengths    = 3

	improvementThreshold = 70
	strengthThreshold    = 80
)

func generateImprovements(breakdown map[string]int) []string {
	improvements := []string{}
	for _, tpl := range improvementOrder {
		if breakdown[tpl.category] < improvementThreshold {
			improvements = append(improvements, tpl.text)
		}
		if len(improvements) == maxImprovements {
			break
		}
	}
	return improvements
}

func generateStrengths(breakdown map[string]int) []string {
	strengths := []string{}
	for _, tpl := range strengthOrder {
		if breakdown[tpl.category] > strengthThreshold {
			strengths = append(strengths, tpl.text)
		}
		if len(strengths) == maxStrengths {
			break
		}
	}
	return strengths
}
