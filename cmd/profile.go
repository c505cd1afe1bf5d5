package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tutorloop/tutorloop/internal/assess"
)

var profileCmd = &cobra.Command{
	Use:   "profile <session-id>",
	Short: "Show a session's skill proficiency profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		sess, err := st.SessionRepo().Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}
		if sess == nil {
			return fmt.Errorf("session %s not found", args[0])
		}

		estimator := assess.NewEstimator(st.SkillRepo())
		profile, err := estimator.Profile(ctx, sess.ID)
		if err != nil {
			return fmt.Errorf("aggregate profile: %w", err)
		}
		if len(profile) == 0 {
			fmt.Println("No skills recorded yet.")
			return nil
		}

		mean, err := st.MessageRepo().MeanScore(ctx, sess.ID)
		if err != nil {
			return fmt.Errorf("mean score: %w", err)
		}

		fmt.Printf("Session %s · %s · mean score %.2f\n\n", sess.ID, sess.Topic, mean)
		fmt.Printf("%-24s  %-8s  %s\n", "Skill", "EMA", "θ")
		fmt.Println(strings.Repeat("─", 44))

		recs, err := st.SkillRepo().BySession(ctx, sess.ID)
		if err != nil {
			return fmt.Errorf("list skills: %w", err)
		}
		for _, rec := range recs {
			fmt.Printf("%-24s  %-8.2f  %+.2f\n", rec.Skill, rec.EMAScore, rec.Theta)
		}
		return nil
	},
}
