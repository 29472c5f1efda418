package invoice

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"encore.app/billing/model"
)

// FilterLineItems narrows items to those fuzzily matching query, ordered by
// ascending match distance (best match first, ties keeping input order).
//
// Matching is case-insensitive and tolerates non-contiguous characters, so a
// query like "bld" matches "blood test". A blank query is the identity: the
// input is returned unchanged, with no ranking applied. An empty result is a
// valid outcome ("no matching items"), not an error.
func FilterLineItems(items []model.LineItem, query string) []model.LineItem {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}

	type rankedItem struct {
		item model.LineItem
		rank int
	}

	ranked := make([]rankedItem, 0, len(items))
	for _, item := range items {
		rank := fuzzy.RankMatchNormalizedFold(query, item.SearchKey())
		if rank < 0 {
			continue
		}
		ranked = append(ranked, rankedItem{item: item, rank: rank})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].rank < ranked[j].rank
	})

	filtered := make([]model.LineItem, len(ranked))
	for i, r := range ranked {
		filtered[i] = r.item
	}
	return filtered
}
