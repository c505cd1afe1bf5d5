package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tutorloop/tutorloop/internal/store"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Manage the curated question bank",
}

var bankAddTopicCmd = &cobra.Command{
	Use:   "add-topic <name>",
	Short: "Register a curated topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.BankRepo().EnsureTopic(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("add topic: %w", err)
		}
		fmt.Printf("Topic %q registered.\n", args[0])
		return nil
	},
}

var bankAddQuestionCmd = &cobra.Command{
	Use:   "add-question <topic> <text>",
	Short: "Append a question to a topic's bank",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ideal, _ := cmd.Flags().GetString("ideal")
		bloom, _ := cmd.Flags().GetString("bloom")
		difficulty, _ := cmd.Flags().GetString("difficulty")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		if err := st.BankRepo().EnsureTopic(ctx, args[0]); err != nil {
			return fmt.Errorf("ensure topic: %w", err)
		}
		entry := &store.BankEntry{
			Topic:       args[0],
			Text:        args[1],
			IdealAnswer: ideal,
			BloomHint:   bloom,
			Difficulty:  difficulty,
		}
		if err := st.BankRepo().AddQuestion(ctx, entry); err != nil {
			return fmt.Errorf("add question: %w", err)
		}
		fmt.Printf("Question added to %q at position %d.\n", entry.Topic, entry.Position)
		return nil
	},
}

var bankListCmd = &cobra.Command{
	Use:   "list [topic]",
	Short: "List curated topics, or a topic's questions",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		if len(args) == 0 {
			topics, err := st.BankRepo().Topics(ctx)
			if err != nil {
				return fmt.Errorf("list topics: %w", err)
			}
			if len(topics) == 0 {
				fmt.Println("No curated topics.")
				return nil
			}
			for _, t := range topics {
				fmt.Println(t)
			}
			return nil
		}

		questions, err := st.BankRepo().Questions(ctx, args[0])
		if err != nil {
			return fmt.Errorf("list questions: %w", err)
		}
		if len(questions) == 0 {
			fmt.Printf("Topic %q has no questions.\n", args[0])
			return nil
		}
		for _, q := range questions {
			meta := []string{}
			if q.BloomHint != "" {
				meta = append(meta, q.BloomHint)
			}
			if q.Difficulty != "" {
				meta = append(meta, q.Difficulty)
			}
			suffix := ""
			if len(meta) > 0 {
				suffix = " (" + strings.Join(meta, ", ") + ")"
			}
			fmt.Printf("%2d. %s%s\n", q.Position, q.Text, suffix)
		}
		return nil
	},
}

// bankSeedEntry mirrors one object in a bank seed file.
type bankSeedEntry struct {
	Topic       string `json:"topic"`
	Text        string `json:"text"`
	IdealAnswer string `json:"ideal_answer"`
	BloomHint   string `json:"bloom_hint"`
	Difficulty  string `json:"difficulty"`
}

var bankSeedCmd = &cobra.Command{
	Use:   "seed <file.json>",
	Short: "Load questions from a JSON file into the bank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read seed file: %w", err)
		}
		var entries []bankSeedEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("parse seed file: %w", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		for i, e := range entries {
			if e.Topic == "" || e.Text == "" {
				return fmt.Errorf("seed entry %d: topic and text are required", i)
			}
			if err := st.BankRepo().EnsureTopic(ctx, e.Topic); err != nil {
				return fmt.Errorf("ensure topic %q: %w", e.Topic, err)
			}
			if err := st.BankRepo().AddQuestion(ctx, &store.BankEntry{
				Topic:       e.Topic,
				Text:        e.Text,
				IdealAnswer: e.IdealAnswer,
				BloomHint:   e.BloomHint,
				Difficulty:  e.Difficulty,
			}); err != nil {
				return fmt.Errorf("add question %d: %w", i, err)
			}
		}
		fmt.Printf("Seeded %d questions.\n", len(entries))
		return nil
	},
}

func init() {
	bankAddQuestionCmd.Flags().String("ideal", "", "Ideal answer for the question")
	bankAddQuestionCmd.Flags().String("bloom", "", "Bloom level hint")
	bankAddQuestionCmd.Flags().String("difficulty", "", "Difficulty tier hint")

	bankCmd.AddCommand(bankAddTopicCmd)
	bankCmd.AddCommand(bankAddQuestionCmd)
	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankSeedCmd)
}
