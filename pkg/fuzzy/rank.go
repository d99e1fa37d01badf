// CLAUDE:SUMMARY Parallel similarity scoring of candidate lists and string pairs using errgroup.
package fuzzy

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Candidate is one scored entry returned by RankCandidates.
type Candidate struct {
	Value string  `json:"value"`
	Index int     `json:"index"`
	Score float64 `json:"score"`
}

// RankOptions control RankCandidates. The zero value keeps every candidate,
// compares transliterated forms, and returns them all.
type RankOptions struct {
	MinScore  float64
	Limit     int
	Normalize string
}

// Pair is a source/target couple for ScorePairs.
type Pair struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// ScorePairs computes Similarity for every pair in parallel. Results are in
// input order. The only error is ctx cancellation.
func ScorePairs(ctx context.Context, pairs []Pair) ([]float64, error) {
	scores := make([]float64, len(pairs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range pairs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scores[i] = Similarity(p.Source, p.Target)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}

// RankCandidates scores every candidate against query after normalization and
// returns those at or above opts.MinScore, best first. Ties keep input order.
func RankCandidates(ctx context.Context, query string, candidates []string, opts RankOptions) ([]Candidate, error) {
	normalize := GetNormalizer(opts.Normalize)
	q := normalize(query)

	pairs := make([]Pair, len(candidates))
	for i, c := range candidates {
		pairs[i] = Pair{Source: q, Target: normalize(c)}
	}
	scores, err := ScorePairs(ctx, pairs)
	if err != nil {
		return nil, err
	}

	ranked := make([]Candidate, 0, len(candidates))
	for i, c := range candidates {
		if scores[i] < opts.MinScore {
			continue
		}
		ranked = append(ranked, Candidate{Value: c, Index: i, Score: scores[i]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })

	if opts.Limit > 0 && len(ranked) > opts.Limit {
		ranked = ranked[:opts.Limit]
	}
	return ranked, nil
}
