package portfolio

import (
	"cmp"
	"slices"
)

// RankExperiences returns a copy of records ordered by effective relevance,
// highest first. Records with equal relevance keep their input order. The
// input slice is left untouched.
func RankExperiences(records []ExperienceRecord) []ExperienceRecord {
	ranked := make([]ExperienceRecord, len(records))
	copy(ranked, records)
	slices.SortStableFunc(ranked, func(a, b ExperienceRecord) int {
		return cmp.Compare(b.EffectiveRelevance(), a.EffectiveRelevance())
	})
	return ranked
}
