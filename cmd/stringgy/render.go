package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/honeybugserial/stringgeryhtiger/pkg/types"
)

var (
	// Color palette
	indexColor   = lipgloss.Color("#00D7FF")
	encColor     = lipgloss.Color("#04B575")
	bytesColor   = lipgloss.Color("#FF00FF")
	warningColor = lipgloss.Color("#FFA500")
	errorColor   = lipgloss.Color("#FF4B4B")

	headerStyle  = lipgloss.NewStyle().Foreground(indexColor)
	encStyle     = lipgloss.NewStyle().Foreground(encColor)
	bytesStyle   = lipgloss.NewStyle().Foreground(bytesColor)
	warnStyle    = lipgloss.NewStyle().Foreground(warningColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor)
	okStyle      = lipgloss.NewStyle().Foreground(encColor)
	termStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#7D56F4"))
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

// isTerminal reports whether fd is a terminal; tests replace it.
var isTerminal = func(fd uintptr) bool { return term.IsTerminal(int(fd)) }

// colorEnabled reports whether styled output should be emitted on stdout.
func colorEnabled() bool { return colorEnabledFor(os.Stdout) }

// colorEnabledFor reports whether styled output may be written to f: f must
// be a terminal and neither --no-color nor NO_COLOR may be set.
func colorEnabledFor(f *os.File) bool {
	if noColor || jsonOut {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isTerminal(f.Fd())
}

// paint renders text with st when stdout takes colors.
func paint(st lipgloss.Style, text string) string {
	return paintFor(os.Stdout, st, text)
}

// paintFor renders text with st when f takes colors.
func paintFor(f *os.File, st lipgloss.Style, text string) string {
	if !colorEnabledFor(f) {
		return text
	}
	return st.Render(text)
}

// sanitize replaces control characters so context stays on one line.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return '.'
		}
		return r
	}, s)
}

// highlight marks every occurrence of needle in text. With ignoreCase only
// ASCII letters are folded, matching the search.
func highlight(text, needle string, ignoreCase bool) string {
	if needle == "" || !colorEnabled() {
		return text
	}
	hay, pat := text, needle
	if ignoreCase {
		hay, pat = foldASCII(text), foldASCII(needle)
	}
	var b strings.Builder
	last := 0
	for {
		i := strings.Index(hay[last:], pat)
		if i < 0 {
			break
		}
		at := last + i
		b.WriteString(text[last:at])
		b.WriteString(termStyle.Render(text[at : at+len(pat)]))
		last = at + len(pat)
	}
	b.WriteString(text[last:])
	return b.String()
}

func foldASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// printMatch prints one numbered match listing.
func printMatch(idx int, m types.Match, term string, ignoreCase bool) {
	printInfo("%s\n", paint(headerStyle, fmt.Sprintf("[%d] Match at 0x%08X (%d)", idx, m.Offset, m.Offset)))
	printInfo("  Encoding   : %s\n", paint(encStyle, m.Encoding.String()))
	printInfo("  Exact bytes: %s\n", paint(bytesStyle, fmt.Sprintf("%q", m.Bytes)))
	printInfo("  Context    : %s\n\n", highlight(sanitize(m.ContextText), term, ignoreCase))
}

// printMatches prints the listing for res, or a notice when it is empty.
func printMatches(res *types.SearchResult) {
	if res.Len() == 0 {
		printInfo("%s\n", paint(warnStyle, "No matches found."))
		return
	}
	for i, m := range res.Matches {
		printMatch(i+1, m, res.Term, res.IgnoreCase)
	}
	if res.Limited() {
		printInfo("  ... (limited to %d of %d matches)\n\n", res.Len(), res.Total)
	}
}

// printOutcome reports what happened to one requested write.
func printOutcome(o types.WriteOutcome) {
	switch o.Status {
	case types.StatusWritten:
		printInfo("%s\n", paint(okStyle, fmt.Sprintf("OK: verified bytes @ 0x%08X", o.Offset)))
	case types.StatusSkipped:
		printInfo("Skipped.\n")
	case types.StatusRejected:
		if errors.Is(o.Err, types.ErrIndexRange) {
			printInfo("%s\n", paint(errorStyle, fmt.Sprintf("Cannot write [%d]: %v", o.Index, o.Err)))
			return
		}
		printInfo("%s\n", paint(errorStyle, fmt.Sprintf("Cannot write @ 0x%08X: %v", o.Offset, o.Err)))
	case types.StatusVerifyFailed:
		printInfo("%s\n", paint(errorStyle, fmt.Sprintf("WARNING: verify failed @ 0x%08X", o.Offset)))
	case types.StatusFailed:
		printError("write @ 0x%08X failed: %v\n", o.Offset, o.Err)
	}
}
