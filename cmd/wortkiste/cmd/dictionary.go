package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"wortkiste/internal/adapters/filesystem"
	"wortkiste/internal/application"
	"wortkiste/internal/application/commands"
	"wortkiste/internal/domain"
)

var (
	ensureDownload bool
	lookupLimit    int
)

var ensureCmd = &cobra.Command{
	Use:   "ensure <language>",
	Short: "Make sure a dictionary database exists",
	Long: `Locate or decompress dictionary_<language>.db in the data directory.

A missing dictionary is not an error: the command reports it and exits
successfully, unless --download is given and the blob can be fetched.

Examples:
  wortkiste ensure de
  wortkiste ensure fr --download`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := GetApp()
		var (
			status *domain.DictionaryStatus
			err    error
		)
		if ensureDownload {
			status, err = commands.EnsureOrFetch(cmd.Context(), a.Materializer, a.FetchCommand(args[0]))
		} else {
			status, err = a.Materializer.Ensure(cmd.Context(), args[0])
		}
		if err != nil {
			printFailure(cmd.OutOrStdout(), err)
			return err
		}

		printTrace(cmd.OutOrStdout(), status.Logs)
		if status.Exists {
			color.New(color.FgGreen, color.Bold).Fprintf(cmd.OutOrStdout(), "%s (version %s)\n", status.Path, status.Version)
		} else {
			color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "No dictionary available for %q\n", args[0])
		}
		return nil
	},
}

var fetchCmd = &cobra.Command{
	Use:   "fetch <language>",
	Short: "Download a compressed dictionary into the data directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := GetApp().FetchCommand(args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var packCmd = &cobra.Command{
	Use:   "pack <database> [output]",
	Short: "Compress a dictionary database into a blob",
	Long: `Compress a SQLite dictionary database into the dictzip format, which
every gzip reader accepts. The output defaults to <database>.gz.

Examples:
  wortkiste pack dictionary_de.db
  wortkiste pack build/de.db public/dictionary_de.db.gz`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := args[0]
		dst := src + ".gz"
		if len(args) == 2 {
			dst = args[1]
		}
		n, err := filesystem.Pack(src, dst)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Packed %s into %s (%d bytes read)\n", src, dst, n)
		return nil
	},
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <language> <word>",
	Short: "Look up a word in a dictionary",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := GetApp()
		result, err := commands.NewLookupCommand(a.Materializer, a.Lookup, args[0], args[1], lookupLimit).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if len(result.Entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No results found.")
			return nil
		}
		for _, e := range result.Entries {
			fmt.Fprintln(cmd.OutOrStdout(), commands.FormatEntry(e))
		}
		return nil
	},
}

// printTrace prints materializer trace lines, highlighting the outcome
func printTrace(w io.Writer, logs []string) {
	found := color.New(color.FgGreen)
	missing := color.New(color.FgYellow)
	failed := color.New(color.FgRed)

	for _, line := range logs {
		switch {
		case strings.HasPrefix(line, "ERROR"):
			failed.Fprintln(w, "  ✗ "+line)
		case strings.HasPrefix(line, "Found via"), strings.HasPrefix(line, "Dictionary ready"),
			strings.HasPrefix(line, "Dictionary already exists"):
			found.Fprintln(w, "  ✓ "+line)
		case strings.HasPrefix(line, "Not found"), strings.HasSuffix(line, "not found in any location"):
			missing.Fprintln(w, "  · "+line)
		default:
			fmt.Fprintln(w, "    "+line)
		}
	}
}

func printFailure(w io.Writer, err error) {
	var me *application.MaterializeError
	if errors.As(err, &me) {
		printTrace(w, me.Logs)
	}
}

func init() {
	ensureCmd.Flags().BoolVarP(&ensureDownload, "download", "d", false, "download the blob when no local copy exists")
	lookupCmd.Flags().IntVarP(&lookupLimit, "limit", "n", 10, "maximum number of entries")

	rootCmd.AddCommand(ensureCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(lookupCmd)
}
