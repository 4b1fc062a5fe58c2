package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.eggybyte.com/create-node-api/internal/errors"
	"go.eggybyte.com/create-node-api/internal/logx"
)

// Validator checks a text answer. A non-nil error is shown and the question re-asked.
type Validator func(string) error

// Prompter asks questions on a line-oriented terminal.
//
// Parameters:
//   - in: Answer source, read line by line
//   - out: Where questions and validation messages are written
//   - nonInteractive: Answer every question with its default without reading
//   - ctx: Cancelling it interrupts a pending read
//
// Concurrency:
//   - Not safe for concurrent use
type Prompter struct {
	ctx            context.Context
	in             *bufio.Reader
	out            io.Writer
	nonInteractive bool
	color          bool
}

// PrompterOption configures a Prompter.
type PrompterOption func(*Prompter)

// WithNonInteractive makes every question return its default.
func WithNonInteractive(enabled bool) PrompterOption {
	return func(p *Prompter) {
		p.nonInteractive = enabled
	}
}

// WithContext makes pending questions return errors.CodeCanceled once ctx is done.
func WithContext(ctx context.Context) PrompterOption {
	return func(p *Prompter) {
		if ctx != nil {
			p.ctx = ctx
		}
	}
}

// NewPrompter creates a prompter reading answers from in and writing questions to out.
func NewPrompter(in io.Reader, out io.Writer, opts ...PrompterOption) *Prompter {
	p := &Prompter{
		ctx:   context.Background(),
		in:    bufio.NewReader(in),
		out:   out,
		color: logx.IsTerminal(out),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Prompter) paint(code, text string) string {
	if !p.color {
		return text
	}
	return code + text + ansiReset
}

type readResult struct {
	line string
	err  error
}

// readLine returns the next line without its line ending. io.EOF is returned only when no
// characters were read. A done context wins over a blocked read; the reader
// goroutine is abandoned and the prompter refuses further reads.
func (p *Prompter) readLine() (string, error) {
	if err := p.ctx.Err(); err != nil {
		return "", err
	}

	ch := make(chan readResult, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		if err != nil && !(err == io.EOF && line != "") {
			ch <- readResult{err: err}
			return
		}
		ch <- readResult{line: strings.TrimRight(line, "\r\n")}
	}()

	select {
	case <-p.ctx.Done():
		return "", p.ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}

// PromptInput asks for a text answer.
//
// Parameters:
//   - question: Question text
//   - def: Default used for an empty answer (may be empty)
//   - validate: Optional validator; invalid answers are re-asked
//
// Returns:
//   - string: Accepted answer
//   - error: errors.CodeCanceled when input ends before a valid answer
func (p *Prompter) PromptInput(question, def string, validate Validator) (string, error) {
	if p.nonInteractive {
		if validate != nil {
			if err := validate(def); err != nil {
				return "", err
			}
		}
		return def, nil
	}

	for {
		hint := ""
		if def != "" {
			hint = " " + p.paint(ansiGray, "("+def+")")
		}
		fmt.Fprintf(p.out, "%s %s%s ", p.paint(ansiGreen, "?"), p.paint(ansiBold, question), hint)

		answer, err := p.readLine()
		if err != nil {
			fmt.Fprintln(p.out)
			return "", errors.Wrap(errors.CodeCanceled, question, err)
		}
		if answer == "" {
			answer = def
		}

		if validate != nil {
			if err := validate(answer); err != nil {
				fmt.Fprintf(p.out, "%s %s\n", p.paint(ansiRed, ">>"), message(err))
				continue
			}
		}
		return answer, nil
	}
}

// PromptConfirm asks a yes/no question.
//
// Parameters:
//   - question: Question text
//   - def: Answer used for an empty line
//
// Returns:
//   - bool: Answer
//   - error: errors.CodeCanceled when input ends
func (p *Prompter) PromptConfirm(question string, def bool) (bool, error) {
	if p.nonInteractive {
		return def, nil
	}

	hint := "(y/N)"
	if def {
		hint = "(Y/n)"
	}

	for {
		fmt.Fprintf(p.out, "%s %s %s ", p.paint(ansiGreen, "?"), p.paint(ansiBold, question), p.paint(ansiGray, hint))

		answer, err := p.readLine()
		if err != nil {
			fmt.Fprintln(p.out)
			return false, errors.Wrap(errors.CodeCanceled, question, err)
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintf(p.out, "%s %s\n", p.paint(ansiRed, ">>"), "Please answer yes or no.")
	}
}

// message returns the user-facing part of a validation error.
func message(err error) string {
	var e *errors.E
	if errors.As(err, &e) && e.Msg != "" {
		return e.Msg
	}
	return err.Error()
}
