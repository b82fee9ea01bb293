package suggest

import (
	"math"
	"sort"
)

// Rank folds every attribution record into a per-contributor tally and
// returns the ranked stats plus the grand total of tallied lines. The
// excluded identity (normally the invoking user) is left out entirely.
// Order is count descending, ties broken by identity ascending, so output
// is stable across runs and worker counts.
func Rank(files []FileResult, exclude string, norm Normalizer) ([]ReviewerStat, int) {
	tally := make(map[string]int)
	excluded := norm.Normalize(exclude)
	total := 0

	for _, fr := range files {
		for _, rec := range fr.Records {
			id := norm.Normalize(rec.Author)
			if id == "" {
				continue
			}
			if excluded != "" && id == excluded {
				continue
			}
			tally[id]++
			total++
		}
	}

	stats := make([]ReviewerStat, 0, len(tally))
	for id, n := range tally {
		stats = append(stats, ReviewerStat{Identity: id, Lines: n})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Lines != stats[j].Lines {
			return stats[i].Lines > stats[j].Lines
		}
		return stats[i].Identity < stats[j].Identity
	})

	for i := range stats {
		stats[i].Percent = roundPercent(float64(stats[i].Lines) / float64(total) * 100)
	}
	return stats, total
}

func roundPercent(p float64) float64 {
	return math.Round(p*100) / 100
}
