package validator

import (
	"strings"

	"sales/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

var categoryMatcher = closestmatch.New(models.AllCategorySlugs(), []int{2, 3})

// normalizeCategoryInput đưa chuỗi người dùng nhập về dạng gần với slug
func normalizeCategoryInput(input string) string {
	s := strings.ToLower(unidecode.Unidecode(strings.TrimSpace(input)))
	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return strings.Join(strings.Fields(s), "_")
}

// SuggestCategory trả về slug gần nhất với input, hoặc "" nếu không đủ giống
func SuggestCategory(input string) string {
	normalized := normalizeCategoryInput(input)
	if normalized == "" {
		return ""
	}
	if c, ok := models.CategoryFromSlug(normalized); ok {
		return c.Slug()
	}

	candidate := categoryMatcher.Closest(normalized)
	if candidate == "" {
		return ""
	}

	distance := levenshtein.DistanceForStrings([]rune(normalized), []rune(candidate), levenshtein.DefaultOptionsWithSub)
	if distance > maxSuggestionDistance(candidate) {
		return ""
	}
	return candidate
}

func maxSuggestionDistance(candidate string) int {
	if d := len(candidate) / 3; d > 2 {
		return d
	}
	return 2
}
