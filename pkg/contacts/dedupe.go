// CLAUDE:SUMMARY Pairwise duplicate detection over stored contacts: same subscriber phone or similar normalized names.
package contacts

import (
	"context"
	"log/slog"

	"github.com/hazyhaar/fuzzmask/pkg/fuzzy"
	"github.com/hazyhaar/fuzzmask/pkg/policy"
)

// Reasons a pair is reported.
const (
	ReasonPhone = "phone"
	ReasonName  = "name"
)

// Duplicate is a pair of contacts that look like the same person.
type Duplicate struct {
	A         Contact  `json:"a"`
	B         Contact  `json:"b"`
	NameScore float64  `json:"name_score"`
	Reasons   []string `json:"reasons"`
}

// Deduper finds duplicates among stored contacts.
type Deduper struct {
	store     *Store
	policies  *policy.Store
	normalize fuzzy.Normalizer
	logger    *slog.Logger
}

// NewDeduper builds a Deduper comparing names folded with the given
// normalizer mode (see fuzzy.GetNormalizer).
func NewDeduper(store *Store, policies *policy.Store, mode string, logger *slog.Logger) *Deduper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Deduper{
		store:     store,
		policies:  policies,
		normalize: fuzzy.GetNormalizer(mode),
		logger:    logger,
	}
}

// Find compares every pair of contacts. A pair is reported when the phones
// are the same subscriber number or the normalized names score at least
// threshold. Pairs come out in list order.
func (d *Deduper) Find(ctx context.Context, threshold float64) ([]Duplicate, error) {
	all, err := d.store.List(ctx)
	if err != nil {
		return nil, err
	}
	phone := d.policies.Current().Phone

	names := make([]string, len(all))
	for i, c := range all {
		names[i] = d.normalize(c.Name)
	}

	var pairs []fuzzy.Pair
	var index [][2]int
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			pairs = append(pairs, fuzzy.Pair{Source: names[i], Target: names[j]})
			index = append(index, [2]int{i, j})
		}
	}
	scores, err := fuzzy.ScorePairs(ctx, pairs)
	if err != nil {
		return nil, err
	}

	var dupes []Duplicate
	for k, ij := range index {
		a, b := all[ij[0]], all[ij[1]]
		var reasons []string
		if phone.Same(a.Phone, b.Phone) {
			reasons = append(reasons, ReasonPhone)
		}
		if scores[k] >= threshold {
			reasons = append(reasons, ReasonName)
		}
		if len(reasons) == 0 {
			continue
		}
		dupes = append(dupes, Duplicate{A: a, B: b, NameScore: scores[k], Reasons: reasons})
	}

	d.logger.Info("duplicate scan complete", "contacts", len(all), "pairs", len(pairs), "duplicates", len(dupes))
	return dupes, nil
}

// Censored returns a copy of c with its phone masked by the active policy.
func (d *Deduper) Censored(c Contact) Contact {
	c.Phone = d.policies.Current().Phone.Censor(c.Phone)
	return c
}
