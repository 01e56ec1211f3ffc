// internal/console/console.go
//
// Line-oriented text channel between the game and the player.
// Responsibilities:
//   - Write one line (or an inline prompt without a trailing break).
//   - Read one trimmed line, blocking until it arrives.
//   - Offer a fixed option list and loop until the input matches one.
//
// Only one read is ever outstanding; the type is not safe for concurrent use.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Console reads player input and writes dialogue text.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New constructs a Console over the given reader and writer.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// PrintLine writes text followed by a line break.
func (c *Console) PrintLine(text string) error {
	_, err := fmt.Fprintln(c.out, text)
	return err
}

// Print writes text with no trailing break (inline prompts).
func (c *Console) Print(text string) error {
	_, err := io.WriteString(c.out, text)
	return err
}

// ReadLine blocks for one line and returns it with surrounding whitespace removed.
// A final line without a break is still returned; io.EOF is reported only when
// nothing was read.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("read line: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Input shows text on its own line followed by an inline ">" and reads the reply.
func (c *Console) Input(text string) (string, error) {
	if err := c.Print("\n" + text + "\n>"); err != nil {
		return "", err
	}
	return c.ReadLine()
}

// Select shows text and every option, then reads until the reply equals one
// of the options exactly. Prompt and list are redisplayed before each read.
func Select[T ~string](c *Console, text string, options []T) (T, error) {
	var zero T
	if len(options) == 0 {
		return zero, errors.New("select: no options")
	}
	for {
		if err := c.PrintLine("\n" + text); err != nil {
			return zero, err
		}
		for _, opt := range options {
			if err := c.PrintLine("- " + string(opt)); err != nil {
				return zero, err
			}
		}
		if err := c.Print("> "); err != nil {
			return zero, err
		}

		raw, err := c.ReadLine()
		if err != nil {
			return zero, err
		}
		if i := slices.IndexFunc(options, func(o T) bool { return string(o) == raw }); i >= 0 {
			return options[i], nil
		}
	}
}
