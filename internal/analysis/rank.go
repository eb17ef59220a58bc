package analysis

import "sort"

type RankedRun struct {
	Name string
	SaleSummary
}

// RankByProceeds sorts named run summaries descending by total proceeds.
func RankByProceeds(runs []RankedRun) []RankedRun {
	out := make([]RankedRun, len(runs))
	copy(out, runs)
	sort.Slice(out, func(i, j int) bool {
		return out[i].TotalProceedsTokenB > out[j].TotalProceedsTokenB
	})
	return out
}
