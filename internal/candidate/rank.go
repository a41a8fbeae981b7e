package candidate

import (
	"sort"

	"jobboard-backend/internal/model"
)

// RankPolicy decide where candidates with an unknown tier go
type RankPolicy int

const (
	// UnknownFirst put unknown tiers before A, an unknown tier has priority -1
	UnknownFirst RankPolicy = iota
	// UnknownLast put unknown tiers after C
	UnknownLast
)

// TierOrder is the fixed priority of recommendation tiers
var TierOrder = []model.Tier{model.TierA, model.TierB, model.TierC}

func tierIndex(t model.Tier, policy RankPolicy) int {
	for i, known := range TierOrder {
		if known == t {
			return i
		}
	}
	if policy == UnknownLast {
		return len(TierOrder)
	}
	return -1
}

// Rank return candidates ordered by tier. Equal tiers keep their input order.
func Rank(candidates []model.CandidateProfile, policy RankPolicy) []model.CandidateProfile {
	out := make([]model.CandidateProfile, len(candidates))
	copy(out, candidates)
	sort.SliceStable(out, func(i, j int) bool {
		return tierIndex(out[i].Tier, policy) < tierIndex(out[j].Tier, policy)
	})
	return out
}
