// Package hints manages the tiered, monotonic hint-reveal ledger.
// Tier numbers come from the catalog at load time; this package only
// decides which tier is next and records the reveal.
package hints

import (
	"context"
	"fmt"

	"github.com/halvard/paperchase/internal/catalog"
	"github.com/halvard/paperchase/internal/store"
)

// Service reveals hints against the active chapter run.
type Service struct {
	cat   *catalog.Catalog
	runs  store.RunRepo
	hints store.HintRepo
}

// New creates a hint Service.
func New(cat *catalog.Catalog, runs store.RunRepo, hintRepo store.HintRepo) *Service {
	return &Service{cat: cat, runs: runs, hints: hintRepo}
}

// Reveal is the outcome of RevealNext. AllRevealed means no new tier was
// inserted; Tier then carries the step's last (already revealed) tier.
type Reveal struct {
	Tier          int
	QuestionIndex int
	Text          string
	AllRevealed   bool
}

// RevealNext reveals the lowest tier not yet recorded for the step in
// the track's active run. Calling again after every tier is revealed is
// a no-op that returns the final tier with AllRevealed set.
func (s *Service) RevealNext(ctx context.Context, track store.Track, stepID string) (*Reveal, error) {
	run, err := s.runs.Active(ctx, track)
	if err != nil {
		return nil, err
	}
	ch := s.cat.ChapterOf(stepID)
	if ch == nil || ch.ID != run.ChapterID {
		return nil, fmt.Errorf("step %s: not part of active chapter %s", stepID, run.ChapterID)
	}

	step := s.cat.Step(stepID)
	tiers := catalog.HintTiers(step)
	if len(tiers) == 0 {
		return nil, fmt.Errorf("step %s: no hints", stepID)
	}

	revealed, err := s.hints.Tiers(ctx, run.ID, stepID)
	if err != nil {
		return nil, err
	}
	have := make(map[int]bool, len(revealed))
	for _, t := range revealed {
		have[t] = true
	}

	for _, t := range tiers {
		if have[t.Tier] {
			continue
		}
		if _, err := s.hints.Insert(ctx, track, run.ID, stepID, t.Tier); err != nil {
			if store.IsDuplicate(err) {
				// Raced with an identical reveal; the tier is on the
				// ledger either way.
				return &Reveal{Tier: t.Tier, QuestionIndex: t.QuestionIndex, Text: t.Text}, nil
			}
			return nil, err
		}
		return &Reveal{Tier: t.Tier, QuestionIndex: t.QuestionIndex, Text: t.Text}, nil
	}

	last := tiers[len(tiers)-1]
	return &Reveal{Tier: last.Tier, QuestionIndex: last.QuestionIndex, Text: last.Text, AllRevealed: true}, nil
}

// Revealed returns the step's already-revealed tiers with their text, in
// tier order.
func (s *Service) Revealed(ctx context.Context, track store.Track, stepID string) ([]Reveal, error) {
	run, err := s.runs.Active(ctx, track)
	if err != nil {
		return nil, err
	}
	revealed, err := s.hints.Tiers(ctx, run.ID, stepID)
	if err != nil {
		return nil, err
	}
	step := s.cat.Step(stepID)
	if step == nil {
		return nil, fmt.Errorf("unknown step %q", stepID)
	}
	out := make([]Reveal, 0, len(revealed))
	for _, tier := range revealed {
		if t := catalog.HintByTier(step, tier); t != nil {
			out = append(out, Reveal{Tier: t.Tier, QuestionIndex: t.QuestionIndex, Text: t.Text})
		}
	}
	return out, nil
}
