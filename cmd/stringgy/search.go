package main

import (
	"github.com/spf13/cobra"

	"github.com/honeybugserial/stringgeryhtiger/pkg/stringgy"
)

// scanFlags are the search options shared by every command that scans.
type scanFlags struct {
	ignoreCase bool
	utf16be    bool
	limit      int
}

func (f *scanFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.ignoreCase, "ignore-case", "i", false, "Case-insensitive search (ASCII letters only)")
	cmd.Flags().BoolVar(&f.utf16be, "utf16be", false, "Also search UTF-16BE")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "Keep only the first N matches by offset (0 = all)")
}

func (f *scanFlags) options() *stringgy.SearchOptions {
	return &stringgy.SearchOptions{
		IgnoreCase:     f.ignoreCase,
		IncludeUTF16BE: f.utf16be,
		Limit:          f.limit,
		Logger:         newLogger(),
	}
}

var searchFlags scanFlags

func init() {
	cmd := newSearchCmd()
	searchFlags.register(cmd)
	rootCmd.AddCommand(cmd)
}

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <file> <term>",
		Short: "List every occurrence of a string with its context",
		Long: `The search command scans a file for a string encoded as UTF-8 and
UTF-16LE (and UTF-16BE with --utf16be). Each match is listed with its offset,
encoding, exact bytes and the readable text around it. The file is never
modified.

Example:
  stringgy search program.exe "example.com"
  stringgy search program.exe "Example" --ignore-case --utf16be
  stringgy search program.exe "http" --limit 10 --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(args)
		},
	}
	return cmd
}

func runSearch(args []string) error {
	path, term := args[0], args[1]

	printVerbose("Scanning: %s\n", path)
	printVerbose("Encodings: %v\n", searchFlags.options().Encodings())

	res, err := stringgy.Search(path, term, searchFlags.options())
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(res)
	}

	printInfo("\nSearching for %q in %s...\n\n", term, path)
	printMatches(res)
	printInfo("Total: %d match(es)\n", res.Total)
	return nil
}
