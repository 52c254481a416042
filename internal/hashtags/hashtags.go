// Package hashtags holds the static hashtag vocabulary and the generators
// that turn titles and categories into candidate hashtag lists.
package hashtags

import (
	"strings"
	"unicode"
)

// YouTube video category IDs, as used by the Data API.
const (
	CategoryAll           = "all"
	CategoryFilmAnimation = "1"
	CategoryMusic         = "10"
	CategoryGaming        = "20"
	CategoryNews          = "25"
	CategoryHowtoStyle    = "26"
	CategoryEducation     = "27"
	CategoryScienceTech   = "28"
	CategoryEntertainment = "24"
	CategoryComedy        = "23"
	CategoryPeopleBlogs   = "22"
	CategorySports        = "17"
)

// byCategory maps a platform category ID to its hashtag set. The tables are
// immutable configuration data; generators never mutate them.
var byCategory = map[string][]string{
	CategoryFilmAnimation: {"#shorts", "#film", "#animation", "#movie", "#cinema"},
	CategoryMusic:         {"#music", "#song", "#newsong", "#trending", "#bollywood"},
	CategorySports:        {"#cricket", "#sports", "#ipl", "#highlights", "#football"},
	CategoryGaming:        {"#gaming", "#gamer", "#bgmi", "#freefire", "#minecraft"},
	CategoryPeopleBlogs:   {"#vlog", "#dailyvlog", "#lifestyle", "#minivlog", "#family"},
	CategoryComedy:        {"#comedy", "#funny", "#memes", "#fun", "#lol"},
	CategoryEntertainment: {"#entertainment", "#viral", "#trending", "#shorts", "#fun"},
	CategoryNews:          {"#news", "#breakingnews", "#india", "#politics", "#currentaffairs"},
	CategoryHowtoStyle:    {"#howto", "#diy", "#fashion", "#beauty", "#style"},
	CategoryEducation:     {"#education", "#learning", "#study", "#exam", "#motivation"},
	CategoryScienceTech:   {"#tech", "#technology", "#science", "#gadgets", "#ai"},
}

// generalTags are appended when a category has no dedicated table or to pad
// title-derived suggestions.
var generalTags = []string{"#viral", "#trending", "#youtube", "#shorts", "#india", "#subscribe"}

// stopwords excluded from title-derived hashtags and trending keywords.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "this": true,
	"that": true, "you": true, "your": true, "how": true, "what": true,
	"why": true, "are": true, "can": true, "will": true, "from": true,
	"new": true, "video": true, "official": true,
}

const maxTitleHashtags = 12

// ForCategory returns the hashtag suggestions for a category ID. Unknown or
// unfiltered categories get the general set.
func ForCategory(categoryID string) []string {
	if tags, ok := byCategory[categoryID]; ok {
		out := make([]string, len(tags))
		copy(out, tags)
		return out
	}
	out := make([]string, len(generalTags))
	copy(out, generalTags)
	return out
}

// FromTitle derives hashtags from the significant words of a title, padded
// with the general set, deduplicated, at most 12.
func FromTitle(title string) []string {
	seen := make(map[string]bool)
	hashtags := []string{}

	add := func(tag string) {
		if len(hashtags) >= maxTitleHashtags {
			return
		}
		if tag == "#" || seen[tag] {
			return
		}
		seen[tag] = true
		hashtags = append(hashtags, tag)
	}

	for _, word := range SignificantWords(title) {
		add("#" + word)
	}
	for _, tag := range generalTags {
		add(tag)
	}
	return hashtags
}

// SignificantWords lowercases a title and returns its words longer than two
// characters that are not stopwords, stripped of non-alphanumeric runes.
func SignificantWords(title string) []string {
	words := []string{}
	for _, raw := range strings.Fields(strings.ToLower(title)) {
		word := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return -1
		}, raw)
		if len(word) <= 2 || stopwords[word] {
			continue
		}
		words = append(words, word)
	}
	return words
}
