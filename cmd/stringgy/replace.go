package main

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/honeybugserial/stringgeryhtiger/pkg/stringgy"
	"github.com/honeybugserial/stringgeryhtiger/pkg/types"
)

var (
	replaceFlags   scanFlags
	replaceMode    string
	replacePadChar string
	replaceAll     bool
	replaceSelect  string
	replaceYes     bool
	replaceForce   bool
)

func init() {
	cmd := newReplaceCmd()
	replaceFlags.register(cmd)
	cmd.Flags().StringVar(&replaceMode, "mode", "", "Length policy: exact, padnul, padspace or truncate")
	cmd.Flags().StringVar(&replacePadChar, "pad-char", types.DefaultPadChar, "Pad character for padspace (single character)")
	cmd.Flags().BoolVar(&replaceAll, "all", false, "Replace every match")
	cmd.Flags().StringVar(&replaceSelect, "select", "", "Match indices to replace, e.g. 1,3-5")
	cmd.Flags().BoolVarP(&replaceYes, "yes", "y", false, "Skip the replace-all confirmation")
	cmd.Flags().BoolVar(&replaceForce, "force", false, "Write without reviewing each change")
	_ = cmd.MarkFlagRequired("mode")
	rootCmd.AddCommand(cmd)
}

func newReplaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replace <file> <term> <new>",
		Short: "Overwrite selected occurrences of a string in place",
		Long: `The replace command searches like "search" and then overwrites the
selected matches with a new string. The file length never changes, so the
new string must fit the matched span under the chosen mode:

  exact     lengths must be equal
  padnul    shorter strings are padded with null units
  padspace  shorter strings are padded with --pad-char (default space)
  truncate  longer strings are cut to the matched length

A timestamped backup is written before the first change. Every change is
reviewed and confirmed unless --force is given.

Example:
  stringgy replace program.exe example.com example.org --mode exact --all
  stringgy replace program.exe example.com example.io --mode padspace --select 1,3-5
  stringgy replace program.exe example.io example.network --mode truncate --all --yes --force`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplace(args)
		},
	}
	return cmd
}

func runReplace(args []string) error {
	path, term, newText := args[0], args[1], args[2]

	mode, err := stringgy.ParseMode(replaceMode)
	if err != nil {
		return fmt.Errorf("specify --mode exact|padnul|padspace|truncate: %w", err)
	}
	if mode == types.ModePadChar && utf8.RuneCountInString(replacePadChar) != 1 {
		return fmt.Errorf("--pad-char must be a single character, got %q", replacePadChar)
	}

	res, err := stringgy.Search(path, term, replaceFlags.options())
	if err != nil {
		return err
	}
	printMatches(res)
	if res.Len() == 0 {
		if jsonOut {
			return printJSON(summaryJSON(types.Summary{Outcomes: []types.WriteOutcome{}}))
		}
		return nil
	}

	p := newPrompter()
	indices, err := selectIndices(p, res, newText, mode)
	if err != nil {
		return ignoreEOF(err)
	}
	if len(indices) == 0 {
		return nil
	}

	var confirm stringgy.Confirmer = p
	if replaceForce {
		confirm = stringgy.AlwaysConfirm
	}
	s := stringgy.OpenSession(path, &stringgy.SessionOptions{Confirm: confirm, Logger: newLogger()})
	printVerbose("Session: %s\n", s.ID())

	sum, runErr := s.Replace(res, indices, newText, stringgy.ReplaceOptions{Mode: mode, PadChar: replacePadChar})
	if err := reportSummary(sum); err != nil {
		return errors.Join(runErr, err)
	}
	return ignoreEOF(runErr)
}

// selectIndices resolves which matches to write. An empty result means the
// user aborted or selected nothing.
func selectIndices(p *prompter, res *types.SearchResult, newText string, mode types.Mode) ([]int, error) {
	switch {
	case replaceAll:
		if !replaceYes {
			ok, err := p.yes(paint(warnStyle, fmt.Sprintf(
				"Replace ALL %d matches with %q using [%s]? [y/N]: ", res.Len(), newText, mode)))
			if err != nil {
				return nil, err
			}
			if !ok {
				printInfo("Aborted.\n")
				return nil, nil
			}
		}
		return stringgy.All(res), nil

	case replaceSelect != "":
		idx := parseSelection(replaceSelect, res.Len())
		if len(idx) == 0 {
			printInfo("No valid selection. Aborted.\n")
		}
		return idx, nil

	case replaceYes:
		return nil, errors.New("--yes without --all or --select selects nothing; pass indices with --select")
	}

	ans, err := p.ask(paint(headerStyle, "Select match indices to replace (e.g., 1,3-5 or 'all'): "))
	if err != nil {
		return nil, err
	}
	idx := parseSelection(ans, res.Len())
	if len(idx) == 0 {
		printInfo("No valid selection. Aborted.\n")
	}
	return idx, nil
}

type outcomeJSON struct {
	types.WriteOutcome
	Error string `json:"error,omitempty"`
}

type summaryJSONView struct {
	types.Summary
	Outcomes []outcomeJSON `json:"outcomes"`
}

// summaryJSON adds error text, which WriteOutcome does not serialize.
func summaryJSON(sum types.Summary) summaryJSONView {
	view := summaryJSONView{Summary: sum, Outcomes: make([]outcomeJSON, 0, len(sum.Outcomes))}
	for _, o := range sum.Outcomes {
		oj := outcomeJSON{WriteOutcome: o}
		if o.Err != nil {
			oj.Error = o.Err.Error()
		}
		view.Outcomes = append(view.Outcomes, oj)
	}
	return view
}

func reportSummary(sum types.Summary) error {
	if jsonOut {
		return printJSON(summaryJSON(sum))
	}
	if sum.Backup != "" {
		printInfo("Backup created: %s\n", sum.Backup)
	}
	for _, o := range sum.Outcomes {
		printInfo("[%d] ", o.Index)
		printOutcome(o)
	}
	printInfo("%s\n", paint(summaryStyle, fmt.Sprintf("Replacements written: %d/%d", sum.Written, sum.Requested())))
	return nil
}
