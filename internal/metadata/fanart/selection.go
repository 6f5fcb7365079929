package fanart

import (
	"sort"
	"strconv"
)

// BestArt picks one candidate from a category's list.
//
// Selection is three-tiered: the candidate tagged with the preferred
// language wins, with ties broken by the LOWEST likes count, matching
// upstream consumers of this feed. If no candidate matches the
// preferred language, the first language-less candidate is used, then
// the first "en" candidate, in the list's original order. Returns nil
// when nothing qualifies.
func BestArt(items []Art, preferredLang string) *Art {
	if len(items) == 0 {
		return nil
	}

	byLikes := make([]Art, len(items))
	copy(byLikes, items)
	sort.SliceStable(byLikes, func(i, j int) bool {
		return likes(byLikes[i]) < likes(byLikes[j])
	})

	for i := range byLikes {
		if byLikes[i].Lang == preferredLang {
			return &byLikes[i]
		}
	}

	for i := range items {
		if items[i].Lang == "" {
			return &items[i]
		}
	}

	for i := range items {
		if items[i].Lang == "en" {
			return &items[i]
		}
	}

	return nil
}

func likes(a Art) int {
	n, _ := strconv.Atoi(a.Likes)
	return n
}
