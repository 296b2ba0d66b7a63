// Package console plays the game over a line-based terminal protocol.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var ErrInputClosed = errors.New("console input closed")

type styles struct {
	heading lipgloss.Style
	title   lipgloss.Style
	warning lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	dim     lipgloss.Style
	border  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		warning: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		good:    r.NewStyle().Foreground(lipgloss.Color("10")),
		bad:     r.NewStyle().Foreground(lipgloss.Color("9")),
		dim:     r.NewStyle().Foreground(lipgloss.Color("8")),
		border:  r.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

// Console reads answers line by line from in and writes prompts to out.
// Invalid answers are re-prompted without limit.
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	styles styles
}

// New returns a Console. Colors follow out: a plain writer gets plain
// text.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		styles: newStyles(lipgloss.NewRenderer(out)),
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

func (c *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// askNumber prompts until the answer is an integer in [lo, hi].
func (c *Console) askNumber(ctx context.Context, prompt string, lo, hi int) (int, error) {
	for {
		c.printf("%s", prompt)
		line, err := c.readLine(ctx)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= lo && n <= hi {
			return n, nil
		}
		c.println(c.styles.warning.Render(fmt.Sprintf("Please enter a number between %d and %d.", lo, hi)))
	}
}

// askChoice prompts with the standard "Enter your choice (1-n)" line.
func (c *Console) askChoice(ctx context.Context, n int) (int, error) {
	return c.askNumber(ctx, fmt.Sprintf("Enter your choice (1-%d): ", n), 1, n)
}

// confirm asks a y/n question. Only the answer that flips def counts;
// anything else keeps def.
func (c *Console) confirm(ctx context.Context, prompt string, def bool) (bool, error) {
	c.printf("\n%s (y/n): ", prompt)
	line, err := c.readLine(ctx)
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(line)
	if def {
		return answer != "n" && answer != "no", nil
	}
	return answer == "y" || answer == "yes", nil
}
