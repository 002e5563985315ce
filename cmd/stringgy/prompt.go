package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/honeybugserial/stringgeryhtiger/pkg/types"
)

// prompter asks line-oriented questions on stdin and doubles as the
// per-write confirmer for a session.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter() *prompter {
	return &prompter{in: bufio.NewReader(stdin), out: promptOut()}
}

// ask prints question and returns the answer without its line ending.
// A final line without a newline is still returned; io.EOF only surfaces
// once input is exhausted.
func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		fmt.Fprintln(p.out)
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ignoreEOF drops errors caused by running out of input. Closing stdin at
// a prompt is a normal way to stop.
func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// choice asks and returns the trimmed, lower-cased answer.
func (p *prompter) choice(question string) (string, error) {
	ans, err := p.ask(question)
	return strings.ToLower(strings.TrimSpace(ans)), err
}

// yes asks a [y/N] question.
func (p *prompter) yes(question string) (bool, error) {
	ans, err := p.choice(question)
	if err != nil {
		return false, err
	}
	return ans == "y" || ans == "yes", nil
}

// ConfirmWrite shows the edit review and asks before a single write.
func (p *prompter) ConfirmWrite(pv types.Preview) (bool, error) {
	fmt.Fprintln(p.out, paint(headerStyle, "-- EDIT REVIEW --"))
	fmt.Fprintf(p.out, "Old context : %s\n", sanitize(pv.OldContext))
	fmt.Fprintln(p.out, paint(warnStyle, fmt.Sprintf(
		"Mode=%s | old_len=%d | new_in_len=%d | write_len=%d",
		pv.Mode, pv.Match.Len(), pv.InputLen, len(pv.Payload),
	)))
	fmt.Fprintf(p.out, "Preview     : %s\n", sanitize(pv.NewContext))
	return p.yes(paint(warnStyle, "Write this change? [y/N]: "))
}

// padChoice asks for a pad character; an empty answer keeps the default.
func (p *prompter) padChoice() (string, error) {
	ans, err := p.ask("Pad char (single char, default space): ")
	if err != nil {
		return "", err
	}
	if r := []rune(ans); len(r) > 0 {
		return string(r[0]), nil
	}
	return types.DefaultPadChar, nil
}
