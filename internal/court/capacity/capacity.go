// Package capacity implements the skill-weighted fair-share judge-capacity
// estimator used when building flow graphs (spec §4.3): a judge with fewer
// skills is scarcer for the case types they cover, so is weighted more
// heavily for those types.
package capacity

import (
	"math"

	"github.com/FrederikvSvane/bachelor-projekt/internal/court/model"
)

// Estimate returns, for every judge, the rounded expected share of
// meetings they should receive as a source capacity in the flow graph:
//
//	W(t)   = sum over judges j with t in skills(j) of (m - k(j) + 1)
//	load(j) = sum over t in skills(j) of [(m - k(j) + 1) / W(t)] * n(t)
//
// where m is the size of the case-type universe, k(j) = |skills(j)|, and
// n(t) is the number of meetings of type t. The result is rounded to the
// nearest integer and clamped to at least 1 for any judge with at least
// one skill.
func Estimate(meetings []model.Meeting, judges []model.Judge) map[int]int {
	const m = model.NumCaseTypes

	counts := make(map[model.CaseType]int, m)
	for _, mt := range meetings {
		counts[mt.CaseType]++
	}

	weight := make(map[model.CaseType]int, m)
	for t := model.CaseType(0); t < m; t++ {
		for _, j := range judges {
			if j.HasSkill(t) {
				weight[t] += m - len(j.Skills) + 1
			}
		}
	}

	result := make(map[int]int, len(judges))
	for _, j := range judges {
		k := len(j.Skills)
		var load float64
		for t := model.CaseType(0); t < m; t++ {
			if !j.HasSkill(t) {
				continue
			}
			w := weight[t]
			if w == 0 {
				continue
			}
			share := float64(m-k+1) / float64(w)
			load += share * float64(counts[t])
		}
		share := int(math.Round(load))
		if k >= 1 && share < 1 {
			share = 1
		}
		result[j.ID] = share
	}
	return result
}
