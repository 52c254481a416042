// Package export serializes keyword research results into the CSV layout
// downstream spreadsheets expect: text columns quoted, numeric columns bare.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/titleboost/titleboost/internal/models"
)

const header = `"Keyword","Search Volume","Competition Score","Trend Direction","Video Count","Avg Views"`

// CSV renders the keyword list. encoding/csv is deliberately not used: it
// only quotes fields that need quoting, and the consumers of this file
// require the keyword and trend-direction columns quoted unconditionally.
func CSV(keywords []models.KeywordAnalysis) string {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n")
	for _, k := range keywords {
		sb.WriteString(fmt.Sprintf("%s,%d,%d,%s,%d,%d\n",
			quote(k.Keyword), k.SearchVolume, k.CompetitionScore, quote(k.TrendDirection), k.VideoCount, k.AvgViews))
	}
	return sb.String()
}

// quote wraps a field in double quotes, doubling any embedded quote per
// RFC 4180.
func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// Filename builds the download name: youtube-keywords-<slug>-<date>.csv.
func Filename(term string, now time.Time) string {
	return fmt.Sprintf("youtube-keywords-%s-%s.csv", Slugify(term), now.Format("2006-01-02"))
}

// Slugify lowercases a term and collapses every non-alphanumeric run into
// a single hyphen.
func Slugify(term string) string {
	var sb strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(term) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			sb.WriteRune('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}
