// Package content resolves the next question for a turn, choosing
// between the curated question bank and generation by mode.
package content

import (
	"context"
	"fmt"

	"github.com/tutorloop/tutorloop/internal/agents"
	"github.com/tutorloop/tutorloop/internal/plan"
	"github.com/tutorloop/tutorloop/internal/store"
)

// Selector resolves questions. In exam mode the curated bank is
// consulted first at the asked-count index; diagnostic mode always
// generates so the probe adapts freely.
type Selector struct {
	bank      store.BankRepo
	generator agents.QuestionGenerator
}

// NewSelector creates a Selector over the given bank and generator.
func NewSelector(bank store.BankRepo, generator agents.QuestionGenerator) *Selector {
	return &Selector{bank: bank, generator: generator}
}

// Next returns the question for the turn. idx is the number of
// questions already asked, used as the 0-based curated-bank position.
// Bank exhaustion and uncurated topics fall through to generation;
// only a storage failure is an error.
func (s *Selector) Next(ctx context.Context, mode plan.Mode, idx int, input agents.GenerateInput) (string, error) {
	if mode == plan.ModeExam {
		text, ok, err := s.bank.QuestionAt(ctx, input.Topic, idx)
		if err != nil {
			return "", fmt.Errorf("curated bank lookup: %w", err)
		}
		if ok {
			return text, nil
		}
	}
	return s.generator.Generate(ctx, input), nil
}
