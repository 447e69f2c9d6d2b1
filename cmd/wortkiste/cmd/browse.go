package cmd

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"wortkiste/internal/adapters/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse saved words in the terminal",
	Long: `Open an interactive word list. Type / to filter, enter copies the
selected translation to the clipboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := GetApp().Words(cmd.Context())
		if err != nil {
			return err
		}

		p := tea.NewProgram(tui.NewApp(repo, clipboard.WriteAll), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
