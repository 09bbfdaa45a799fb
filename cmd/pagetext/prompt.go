package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/pagetext"
)

// Prompter asks for links and an output filename on a console.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a Prompter reading answers from r and writing
// questions to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(r), out: w}
}

// ask prints question and returns the trimmed answer.
func (p *Prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", pagetext.Errorf(pagetext.EINVALID, "input ended before an answer was given")
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// URLs asks for links until the user declines to add another.
// An empty link ends collection with an EINVALID error.
func (p *Prompter) URLs() ([]string, error) {
	var urls []string
	for {
		u, err := p.ask("Enter a link (URL): ")
		if err != nil {
			return nil, err
		}
		if u == "" {
			return nil, pagetext.Errorf(pagetext.EINVALID, "URL cannot be empty.")
		}
		urls = append(urls, u)

		more, err := p.confirm("Add another link? (y/n): ")
		if err != nil {
			return nil, err
		}
		if !more {
			return urls, nil
		}
	}
}

// confirm repeats question until the answer is y or n, in either case.
func (p *Prompter) confirm(question string) (bool, error) {
	for {
		answer, err := p.ask(question)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		fmt.Fprintln(p.out, "Invalid input. Allowed characters are only 'y' or 'n'.")
	}
}

// Filename asks for the report filename.
func (p *Prompter) Filename() (string, error) {
	name, err := p.ask("Enter output filename (e.g., notes.md): ")
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", pagetext.Errorf(pagetext.EINVALID, "filename cannot be empty.")
	}
	return name, nil
}

// Run executes the prompt command.
func (c *PromptCmd) Run(deps *Dependencies) error {
	p := NewPrompter(deps.Stdin, deps.Stdout)

	urls, err := p.URLs()
	if err != nil {
		return err
	}

	name, err := p.Filename()
	if err != nil {
		return err
	}

	return save(deps, urls, name)
}
