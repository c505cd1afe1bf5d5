package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutorloop/tutorloop/internal/llm"
	"github.com/tutorloop/tutorloop/internal/rag"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Manage retrieval documents for question grounding",
}

var contentSeedCmd = &cobra.Command{
	Use:   "seed <file.json>",
	Short: "Embed and store documents from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		retriever := rag.New(provider, st.ContentRepo())
		n, err := retriever.SeedFromFile(ctx, args[0])
		if err != nil {
			return fmt.Errorf("seed content: %w", err)
		}
		fmt.Printf("Seeded %d documents.\n", n)
		return nil
	},
}

var contentListCmd = &cobra.Command{
	Use:   "list <topic>",
	Short: "List stored documents for a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		docs, err := st.ContentRepo().DocsByTopic(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("list documents: %w", err)
		}
		if len(docs) == 0 {
			fmt.Printf("No documents for topic %q.\n", args[0])
			return nil
		}
		for i, d := range docs {
			embedded := "embedded"
			if len(d.Embedding) == 0 {
				embedded = "no vector"
			}
			fmt.Printf("%2d. [%s/%s, %s] %s\n", i, d.Skill, d.Level, embedded, d.Text)
		}
		return nil
	},
}

func init() {
	contentCmd.AddCommand(contentSeedCmd)
	contentCmd.AddCommand(contentListCmd)
}
