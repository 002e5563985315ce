package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/honeybugserial/stringgeryhtiger/pkg/stringgy"
	"github.com/honeybugserial/stringgeryhtiger/pkg/types"
)

var editFlags scanFlags

func init() {
	cmd := newEditCmd()
	editFlags.register(cmd)
	rootCmd.AddCommand(cmd)
}

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <file> <term>",
		Short: "Interactively review and patch matches one at a time",
		Long: `The edit command lists the matches of a search and then asks which one
to change. For each selection it asks for the new string and, when the
lengths differ, whether to pad (nulls or a character) or truncate. Every
change is reviewed before it is written. Enter 'all' to change every match,
'q' to quit.

Example:
  stringgy edit program.exe "example.com"
  stringgy edit program.exe "Example" --ignore-case --utf16be`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(args)
		},
	}
	return cmd
}

// editor holds the state of one interactive run.
type editor struct {
	p         *prompter
	s         *stringgy.Session
	res       *types.SearchResult
	announced bool
}

func runEdit(args []string) error {
	path, term := args[0], args[1]

	res, err := stringgy.Search(path, term, editFlags.options())
	if err != nil {
		return err
	}
	printMatches(res)
	if res.Len() == 0 {
		printInfo("%s\n", paint(warnStyle, "No matches to edit."))
		return nil
	}

	p := newPrompter()
	ed := &editor{
		p:   p,
		s:   stringgy.OpenSession(path, &stringgy.SessionOptions{Confirm: p, Logger: newLogger()}),
		res: res,
	}
	printVerbose("Session: %s\n", ed.s.ID())

	for {
		sel, err := p.choice(paint(headerStyle, "Edit which index? (e.g., 3, 'all', or 'q' to quit): "))
		if err != nil {
			return ed.finish(err)
		}
		switch sel {
		case "q", "quit", "exit":
			return ed.finish(nil)
		case "all", "a", "*":
			err = ed.editAll()
		default:
			err = ed.editOne(sel)
		}
		ed.noteBackup()
		if err != nil {
			return ed.finish(err)
		}
	}
}

// finish ends the loop; running out of input is a normal way to stop.
func (ed *editor) finish(err error) error { return ignoreEOF(err) }

func (ed *editor) noteBackup() {
	if !ed.announced && ed.s.Backup() != "" {
		ed.announced = true
		printInfo("Backup created: %s\n", ed.s.Backup())
	}
}

func (ed *editor) editAll() error {
	newText, err := ed.p.ask("NEW string for ALL matches: ")
	if err != nil {
		return err
	}
	if newText == "" {
		printInfo("Empty new string. Skipped.\n")
		return nil
	}
	ans, err := ed.p.choice(paint(warnStyle, fmt.Sprintf(
		"Mode [exact/padnul/padspace/truncate] (default %s): ", types.ModeExact)))
	if err != nil {
		return err
	}
	if ans == "" {
		ans = types.ModeExact.String()
	}
	mode, err := stringgy.ParseMode(ans)
	if err != nil {
		printInfo("Invalid mode.\n")
		return nil
	}
	opts := stringgy.ReplaceOptions{Mode: mode, PadChar: types.DefaultPadChar}
	if mode == types.ModePadChar {
		if opts.PadChar, err = ed.p.padChoice(); err != nil {
			return err
		}
	}

	sum, runErr := ed.s.Replace(ed.res, stringgy.All(ed.res), newText, opts)
	for _, o := range sum.Outcomes {
		printInfo("[%d] ", o.Index)
		printOutcome(o)
	}
	printInfo("%s\n", paint(summaryStyle, fmt.Sprintf("Done. Replacements written: %d/%d", sum.Written, ed.res.Len())))
	return runErr
}

func (ed *editor) editOne(sel string) error {
	i, err := strconv.Atoi(sel)
	if err != nil {
		printInfo("Invalid input.\n")
		return nil
	}
	m, err := ed.res.At(i)
	if err != nil {
		printInfo("Out of range.\n")
		return nil
	}

	printInfo("%s\n", paint(headerStyle, fmt.Sprintf("[%d] Editing 0x%08X  enc=%s", i, m.Offset, m.Encoding)))
	printInfo("OLD Context: %s\n", highlight(sanitize(m.ContextText), ed.res.Term, ed.res.IgnoreCase))
	printInfo("Exact bytes: %s\n", paint(bytesStyle, fmt.Sprintf("%q", m.Bytes)))

	newText, err := ed.p.ask("NEW string for this match: ")
	if err != nil {
		return err
	}
	if newText == "" {
		printInfo("Empty new string. Skipped.\n")
		return nil
	}

	opts, ok, err := ed.chooseMode(m, newText)
	if err != nil || !ok {
		return err
	}
	out, err := ed.s.Apply(m, newText, opts)
	out.Index = i
	printOutcome(out)
	return err
}

// chooseMode picks the reconciliation mode for a single edit. ok is false
// when the user skips the edit.
func (ed *editor) chooseMode(m types.Match, newText string) (stringgy.ReplaceOptions, bool, error) {
	opts := stringgy.ReplaceOptions{Mode: types.ModeExact, PadChar: types.DefaultPadChar}
	enc, err := stringgy.Encode(m.Encoding, newText)
	if err != nil {
		return opts, false, err
	}
	inLen, oldLen := len(enc), m.Len()

	switch {
	case inLen < oldLen:
		printInfo("%s\n", paint(warnStyle, fmt.Sprintf("Shorter by %d byte(s). Choose pad mode.", oldLen-inLen)))
		printInfo("  [N] Pad with NULs   [S] Pad with spaces/custom   [E] Exact (skip)\n")
		ch, err := ed.p.choice("Mode (N/S/E)? ")
		if err != nil {
			return opts, false, err
		}
		switch ch {
		case "n":
			opts.Mode = types.ModePadNull
		case "s":
			opts.Mode = types.ModePadChar
			if opts.PadChar, err = ed.p.padChoice(); err != nil {
				return opts, false, err
			}
		default:
			printInfo("Skipped.\n")
			return opts, false, nil
		}

	case inLen > oldLen:
		printInfo("%s\n", paint(warnStyle, fmt.Sprintf("Longer by %d byte(s). Options: [T]runcate or [E]xact (skip)", inLen-oldLen)))
		ch, err := ed.p.choice("Mode (T/E)? ")
		if err != nil {
			return opts, false, err
		}
		if ch != "t" {
			printInfo("Skipped.\n")
			return opts, false, nil
		}
		opts.Mode = types.ModeTruncate
	}
	return opts, true, nil
}
