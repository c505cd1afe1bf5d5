package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutorloop/tutorloop/internal/agents"
	"github.com/tutorloop/tutorloop/internal/assess"
	"github.com/tutorloop/tutorloop/internal/content"
	"github.com/tutorloop/tutorloop/internal/llm"
	"github.com/tutorloop/tutorloop/internal/orchestrator"
	"github.com/tutorloop/tutorloop/internal/plan"
	"github.com/tutorloop/tutorloop/internal/rag"
	"github.com/tutorloop/tutorloop/internal/tui"
)

// runSession opens the store, wires the collaborators, starts a
// session, and hands it to the TUI.
func runSession(cmd *cobra.Command) error {
	ctx := cmd.Context()

	topic, _ := cmd.Flags().GetString("topic")
	if topic == "" {
		return fmt.Errorf("--topic is required")
	}
	modeFlag, _ := cmd.Flags().GetString("mode")
	if modeFlag != string(plan.ModeExam) && modeFlag != string(plan.ModeDiagnostic) {
		return fmt.Errorf("unknown mode %q: use exam or diagnostic", modeFlag)
	}
	mode := plan.ParseMode(modeFlag)

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	retriever := rag.New(provider, st.ContentRepo())
	selector := content.NewSelector(st.BankRepo(), agents.NewGenerator(provider, retriever))

	orch := orchestrator.New(orchestrator.Deps{
		Sessions:    st.SessionRepo(),
		Messages:    st.MessageRepo(),
		Estimator:   assess.NewEstimator(st.SkillRepo()),
		Scorer:      agents.NewScorer(provider),
		BloomTagger: agents.NewBloomTagger(provider),
		SoloTagger:  agents.NewSoloTagger(provider),
		Summarizer:  agents.NewSummarizer(provider),
		Selector:    selector,
	})

	sess, first, err := orch.Start(ctx, mode, topic)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	return tui.Run(orch, sess, first)
}
