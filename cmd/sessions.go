package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tutorloop/tutorloop/internal/store"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Inspect past assessment sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sessions, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		sessions, err := st.SessionRepo().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions yet.")
			return nil
		}

		fmt.Printf("%-36s  %-10s  %-20s  %-9s  %s\n", "ID", "Mode", "Topic", "Status", "Started")
		fmt.Println(strings.Repeat("─", 100))
		for _, s := range sessions {
			topic := s.Topic
			if len(topic) > 20 {
				topic = topic[:20]
			}
			fmt.Printf("%-36s  %-10s  %-20s  %-9s  %s\n",
				s.ID, s.Mode, topic, s.Status,
				s.StartedAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Print a session's full transcript",
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

		msgs, err := st.MessageRepo().History(ctx, sess.ID, 0)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		fmt.Printf("Session %s (%s, %s, %s)\n\n", sess.ID, sess.Mode, sess.Topic, sess.Status)
		for _, m := range msgs {
			fmt.Printf("[%s]", m.Role)
			if m.Role == store.RoleUser && m.Score != nil {
				fmt.Printf(" score=%.2f bloom=%s solo=%s", *m.Score, m.BloomLevel, m.SoloLevel)
			}
			if m.Role == store.RoleAssistant && m.BloomLevel != "" {
				fmt.Printf(" level=%s difficulty=%s", m.BloomLevel, m.Difficulty)
			}
			fmt.Printf("\n%s\n\n", m.Content)
		}
		return nil
	},
}

func init() {
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsShowCmd)
}
