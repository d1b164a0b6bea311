package feed

import (
	"regexp"
	"sort"
	"strings"
)

var hashtagRegexp = regexp.MustCompile(`#(\w+)`)

type Trend struct {
	Tag   string `json:"tag"`
	Posts int    `json:"posts"`
}

// Trends counts the posts mentioning each hashtag, ignoring case. The most
// mentioned tags come first, ties in alphabetical order. A limit <= 0
// returns every tag.
func (s *Store) Trends(limit int) []Trend {
	counts := map[string]int{}
	for _, p := range s.Posts() {
		seen := map[string]bool{}
		for _, m := range hashtagRegexp.FindAllStringSubmatch(p.Content, -1) {
			tag := strings.ToLower(m[1])
			if !seen[tag] {
				seen[tag] = true
				counts[tag]++
			}
		}
	}

	trends := make([]Trend, 0, len(counts))
	for tag, n := range counts {
		trends = append(trends, Trend{Tag: tag, Posts: n})
	}

	sort.Slice(trends, func(i, j int) bool {
		if trends[i].Posts != trends[j].Posts {
			return trends[i].Posts > trends[j].Posts
		}
		return trends[i].Tag < trends[j].Tag
	})

	if limit > 0 && len(trends) > limit {
		trends = trends[:limit]
	}
	return trends
}
