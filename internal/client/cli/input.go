package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Console hands out input lines one at a time. Reads happen on a background
// goroutine so a caller waiting for a line can give up when its context ends;
// a blocked terminal read cannot be interrupted otherwise.
type Console struct {
	reader *bufio.Reader
	once   sync.Once
	lines  chan lineResult
}

type lineResult struct {
	line string
	err  error
}

func NewConsole(r io.Reader) *Console {
	return &Console{reader: bufio.NewReader(r), lines: make(chan lineResult)}
}

func (c *Console) start() {
	go func() {
		for {
			line, err := readLine(c.reader)
			c.lines <- lineResult{line: line, err: err}
			if err != nil {
				close(c.lines)
				return
			}
		}
	}()
}

// ReadLine returns the next trimmed line, io.EOF once input is exhausted, or
// ctx.Err() if ctx ends first. A line that arrives after cancellation is
// kept for the next call.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	c.once.Do(c.start)
	select {
	case res, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// readLine reads one line and trims it. A final line without a newline is
// returned as-is; io.EOF is only reported when nothing was read.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetSimpleText prints a prompt to w and reads a single line of input.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(ctx context.Context, in *Console, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	return in.ReadLine(ctx)
}

// GetWithDefault is GetSimpleText that shows the current value and keeps it
// when the user just presses Enter. A single "-" clears the value.
func GetWithDefault(ctx context.Context, in *Console, prompt, current string, w io.Writer) (string, error) {
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, current)
	}
	s, err := GetSimpleText(ctx, in, prompt, w)
	if err != nil {
		return "", err
	}
	switch s {
	case "":
		return current, nil
	case "-":
		return "", nil
	default:
		return s, nil
	}
}

// GetYesNo asks a yes/no question. Empty input yields def.
func GetYesNo(ctx context.Context, in *Console, prompt string, def bool, w io.Writer) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	for {
		s, err := GetSimpleText(ctx, in, prompt+" "+hint, w)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(s) {
		case "":
			return def, nil
		case "y", "yes", "s", "si", "sí":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(w, "Please answer y or n.")
	}
}
