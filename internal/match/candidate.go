package match

import "sort"

// Candidate is a known name scored against a requested one.
type Candidate struct {
	Name string

	// Score is the normalized Levenshtein similarity (0-1), the better of the
	// plain and qualifier-stripped comparisons.
	Score float64

	Normalized string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Rank scores every name against want and returns them best first.
func Rank(want string, names []string) CandidateList {
	candidates := make(CandidateList, 0, len(names))

	for _, name := range names {
		candidates = append(candidates, Candidate{Name: name, Score: Score(want, name), Normalized: NormalizeIdent(name)})
	}

	sort.Sort(candidates)

	return candidates
}

// Score is the similarity of name to want: the better of the plain and
// qualifier-stripped normalized Levenshtein scores.
func Score(want, name string) float64 {
	return max(
		LevenshteinNormalized(NormalizeIdent(name), NormalizeIdent(want)),
		LevenshteinNormalized(StripQualifier(name), StripQualifier(want)),
	)
}

// Suggest returns up to n names scoring at least DefaultMinScore against want.
func Suggest(want string, names []string, n int) []string {
	var out []string
	for _, c := range Rank(want, names).AboveThreshold(DefaultMinScore).Top(n) {
		out = append(out, c.Name)
	}

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// DefaultMinScore is the similarity below which a name is not worth suggesting.
const DefaultMinScore = 0.6
