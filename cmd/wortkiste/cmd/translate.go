package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	translateFrom string
	translateTo   string
)

var translateCmd = &cobra.Command{
	Use:   "translate <text>...",
	Short: "Translate a word or phrase",
	Long: `Translate text with the configured LibreTranslate server
(translate.base_url). Languages default to translate.source and
translate.target.

Examples:
  wortkiste translate Hund
  wortkiste translate --from fr --to de "le chat"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		result, err := GetApp().TranslateCommand(text, translateFrom, translateTo).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) -> ", result.Text, result.Source)
		color.New(color.FgGreen, color.Bold).Fprintf(cmd.OutOrStdout(), "%s", result.Translation)
		fmt.Fprintf(cmd.OutOrStdout(), " (%s)\n", result.Target)
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the data directory and materialized dictionaries",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := GetApp().Status()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		dictionaries := "none"
		if len(st.Dictionaries) > 0 {
			dictionaries = strings.Join(st.Dictionaries, ", ")
		}
		fmt.Fprintf(w, "Dictionary version: %s\n", st.DictionaryVersion)
		fmt.Fprintf(w, "Data directory:     %s\n", st.DataDir)
		fmt.Fprintf(w, "Words database:     %s\n", st.WordsDB)
		fmt.Fprintf(w, "Dictionaries:       %s\n", dictionaries)
		fmt.Fprintf(w, "Downloads:          %s\n", enabled(st.CanDownload))
		fmt.Fprintf(w, "Translation:        %s\n", enabled(st.CanTranslate))
		return nil
	},
}

func enabled(ok bool) string {
	if ok {
		return color.GreenString("configured")
	}
	return color.YellowString("not configured")
}

func init() {
	translateCmd.Flags().StringVarP(&translateFrom, "from", "f", "", "source language (default translate.source, or auto)")
	translateCmd.Flags().StringVarP(&translateTo, "to", "t", "", "target language (default translate.target)")
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(statusCmd)
}
