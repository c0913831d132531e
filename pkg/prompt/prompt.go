// Package prompt implements the interactive terminal side of a naming run:
// the directory listing, the name prompt and the conflict menu.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"mapkeep/pkg/conflict"
	"mapkeep/pkg/naming"
)

// ErrCancelled means input ended before a line was read. It wraps io.EOF so
// callers can distinguish cancellation from read failures.
var ErrCancelled = fmt.Errorf("input cancelled: %w", io.EOF)

// Compile-time interface compliance check
var _ naming.Prompter = (*Terminal)(nil)

// Options configures a Terminal. Zero values fall back to stdin, stderr and
// a four column listing. Prompt output goes to stderr so stdout carries
// nothing but the resolved path.
type Options struct {
	In      io.Reader
	Out     io.Writer
	Dir     string
	Columns int
	// Interactive enables the explanatory menu header. When In is left at
	// its stdin default this is detected from the terminal instead.
	Interactive bool
}

// Terminal reads names and menu choices line by line.
type Terminal struct {
	in          *bufio.Reader
	out         io.Writer
	dir         string
	columns     int
	interactive bool
}

// New creates a Terminal prompter.
func New(opts Options) *Terminal {
	if opts.In == nil {
		opts.In = os.Stdin
		opts.Interactive = Interactive()
	}
	if opts.Out == nil {
		opts.Out = os.Stderr
	}
	if opts.Columns <= 0 {
		opts.Columns = 4
	}

	return &Terminal{
		in:          bufio.NewReader(opts.In),
		out:         opts.Out,
		dir:         opts.Dir,
		columns:     opts.Columns,
		interactive: opts.Interactive,
	}
}

// ReadName prints the directory listing and asks for a file name. Numbers in
// the listing can be entered to pick an existing file. On an interactive
// terminal the input conventions are explained first.
func (t *Terminal) ReadName(files []string) (string, error) {
	t.printHeader()
	t.printListing(files)
	fmt.Fprint(t.out, "File name: ")

	return t.readLine()
}

func (t *Terminal) printHeader() {
	if !t.interactive {
		return
	}

	fmt.Fprintln(t.out, "Input a file name:")
	fmt.Fprintln(t.out, " - A number picks the file with that listing index.")
	fmt.Fprintln(t.out, " - A name ending in _ (e.g. test_) selects the next name in the sequence.")
	fmt.Fprintln(t.out, " - Press Ctrl+D to cancel.")
	if t.dir != "" {
		fmt.Fprintf(t.out, "Current dir: %s\n", t.dir)
	}
}

// Choose renders the conflict menu and reads choices until one matches an
// option key.
func (t *Terminal) Choose(prompt string, options []conflict.Option) (string, error) {
	fmt.Fprintln(t.out, prompt)
	for _, opt := range options {
		fmt.Fprintf(t.out, "  [%s] %s\n", opt.Key, opt.Label)
	}

	for {
		fmt.Fprint(t.out, "> ")

		key, err := t.readLine()
		if err != nil {
			return "", err
		}

		key = strings.ToLower(key)
		for _, opt := range options {
			if key == opt.Key {
				return key, nil
			}
		}

		fmt.Fprintln(t.out, "Invalid input, try again.")
	}
}

func (t *Terminal) printListing(files []string) {
	if len(files) == 0 {
		fmt.Fprintln(t.out, "(empty directory)")
		return
	}

	for i, name := range files {
		fmt.Fprintf(t.out, "%3d: %-30s", i, name)
		if (i+1)%t.columns == 0 {
			fmt.Fprintln(t.out)
		}
	}
	if len(files)%t.columns != 0 {
		fmt.Fprintln(t.out)
	}
}

// readLine reads one line and trims surrounding whitespace. End of input
// before any content is cancellation.
func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// Interactive reports whether stdin is attached to a terminal.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
