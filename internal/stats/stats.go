// Package stats implements the fixed catalog of descriptive queries over a
// loaded dataset. Every topic is a pure function: group, aggregate, sort,
// top-N. Nothing here mutates the dataset.
package stats

import "sort"

// Group is one aggregated row: a key plus its value and backing row count.
type Group struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// sortGroupsDesc orders groups by value descending, ties broken by key so
// rankings are deterministic.
func sortGroupsDesc(groups []Group) {
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Value != groups[j].Value {
			return groups[i].Value > groups[j].Value
		}
		return groups[i].Key < groups[j].Key
	})
}

// topN truncates a sorted group list. n <= 0 means all.
func topN(groups []Group, n int) []Group {
	if n > 0 && len(groups) > n {
		return groups[:n]
	}
	return groups
}

// countGroups turns a key→count map into a descending ranking.
func countGroups(counts map[string]int) []Group {
	groups := make([]Group, 0, len(counts))
	for k, c := range counts {
		if k == "" {
			continue
		}
		groups = append(groups, Group{Key: k, Value: float64(c), Count: c})
	}
	sortGroupsDesc(groups)
	return groups
}
