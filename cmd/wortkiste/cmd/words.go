package cmd

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"wortkiste/internal/application/commands"
	"wortkiste/internal/domain"
)

var (
	wordArticle string
	wordQuery   string
	wordLimit   int
	reviewScore int
	reviewIn    time.Duration
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage saved words",
	Long: `Add, list, review, and delete flashcards.

Examples:
  wortkiste words add Hund dog --article der
  wortkiste words add Katze --article die
  wortkiste words list --query hund
  wortkiste words due
  wortkiste words review 3 --score 4 --in 72h
  wortkiste words copy 3`,
}

var wordsAddCmd = &cobra.Command{
	Use:   "add <original> [translation]",
	Short: "Save a new word",
	Long: `Save a new word. Without a translation the configured translation
server is asked for one.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := GetApp()
		repo, err := a.Words(cmd.Context())
		if err != nil {
			return err
		}
		var translation string
		if len(args) == 2 {
			translation = args[1]
		}
		result, err := a.AddWordCommand(repo, args[0], translation, wordArticle).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var wordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved words",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := GetApp().Words(cmd.Context())
		if err != nil {
			return err
		}
		words, err := commands.NewListWordsCommand(repo, domain.WordFilter{Query: wordQuery, Limit: wordLimit}).Execute(cmd.Context())
		if err != nil {
			return err
		}
		printWords(cmd.OutOrStdout(), words)
		return nil
	},
}

var wordsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy search saved words",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := GetApp().Words(cmd.Context())
		if err != nil {
			return err
		}
		matches, err := commands.NewSearchWordsCommand(repo, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		words := make([]domain.Word, len(matches))
		for i, m := range matches {
			words[i] = m.Word
		}
		printWords(cmd.OutOrStdout(), words)
		return nil
	},
}

var wordsDueCmd = &cobra.Command{
	Use:   "due",
	Short: "List words due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := GetApp().Words(cmd.Context())
		if err != nil {
			return err
		}
		words, err := commands.NewDueWordsCommand(repo, time.Now(), wordLimit).Execute(cmd.Context())
		if err != nil {
			return err
		}
		printWords(cmd.OutOrStdout(), words)
		return nil
	},
}

var wordsReviewCmd = &cobra.Command{
	Use:   "review <id>",
	Short: "Record a review with its next due time",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		repo, err := GetApp().Words(cmd.Context())
		if err != nil {
			return err
		}

		now := time.Now()
		word, err := commands.NewRecordReviewCommand(repo, id, domain.Review{
			Score:        reviewScore,
			ReviewedAt:   now.UnixMilli(),
			NextReviewAt: now.Add(reviewIn).UnixMilli(),
		}).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: score %d, next review %s\n",
			word.Label(), word.Score, formatMillis(word.NextReviewAt))
		return nil
	},
}

var wordsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		repo, err := GetApp().Words(cmd.Context())
		if err != nil {
			return err
		}
		result, err := commands.NewDeleteWordCommand(repo, id).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var wordsCopyCmd = &cobra.Command{
	Use:   "copy <id>",
	Short: "Copy a word's translation to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		repo, err := GetApp().Words(cmd.Context())
		if err != nil {
			return err
		}
		word, err := repo.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		if err := clipboard.WriteAll(word.Translation); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Copied %q\n", word.Translation)
		return nil
	},
}

func printWords(w io.Writer, words []domain.Word) {
	if len(words) == 0 {
		fmt.Fprintln(w, "No words.")
		return
	}

	header := color.New(color.FgGreen, color.Underline).SprintfFunc()
	first := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("ID", "Word", "Translation", "Score", "Next review")
	tbl.WithWriter(w).
		WithHeaderFormatter(header).
		WithFirstColumnFormatter(first)
	for _, word := range words {
		tbl.AddRow(word.ID, word.Label(), word.Translation, word.Score, formatMillis(word.NextReviewAt))
	}
	tbl.Print()
}

func formatMillis(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).Format("2006-01-02 15:04")
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid word ID %q", s)
	}
	return id, nil
}

func init() {
	wordsAddCmd.Flags().StringVarP(&wordArticle, "article", "a", "", "article, e.g. der, die, das")
	wordsListCmd.Flags().StringVarP(&wordQuery, "query", "q", "", "filter by word or translation")
	wordsListCmd.Flags().IntVarP(&wordLimit, "limit", "n", 0, "maximum number of words")
	wordsDueCmd.Flags().IntVarP(&wordLimit, "limit", "n", 0, "maximum number of words")
	wordsReviewCmd.Flags().IntVarP(&reviewScore, "score", "s", 0, "score after this review")
	wordsReviewCmd.Flags().DurationVar(&reviewIn, "in", 24*time.Hour, "time until the next review")

	rootCmd.AddCommand(wordsCmd)
	wordsCmd.AddCommand(wordsAddCmd)
	wordsCmd.AddCommand(wordsListCmd)
	wordsCmd.AddCommand(wordsSearchCmd)
	wordsCmd.AddCommand(wordsDueCmd)
	wordsCmd.AddCommand(wordsReviewCmd)
	wordsCmd.AddCommand(wordsDeleteCmd)
	wordsCmd.AddCommand(wordsCopyCmd)
}
