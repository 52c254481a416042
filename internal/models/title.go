package models

// TitleScore is the composite engagement score for a single title.
type TitleScore struct {
	Overall      int            `json:"overall"`
	Breakdown    map[string]int `json:"breakdown"`
	Improvements []string       `json:"improvements"`
	Strengths    []string       `json:"strengths"`
}

// Breakdown category names. The scorer always emits exactly these five keys.
const (
	CategoryLength     = "length"
	CategoryKeywords   = "keywords"
	CategoryEngagement = "engagement"
	CategoryClarity    = "clarity"
	CategoryTrending   = "trending"
)

// TitleAnalysis is the response for the analyze endpoint.
type TitleAnalysis struct {
	RelatedTitles []string `json:"relatedTitles"`
	Hashtags      []string `json:"hashtags"`
	Suggestions   []string `json:"suggestions"`
}

// VideoIdea is one AI-generated content idea.
type VideoIdea struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Hashtags    []string `json:"hashtags"`
}
