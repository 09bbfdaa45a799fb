package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/pagetext"
)

const editHelp = `Commands:
  add <url>        append a link
  rm <n>           remove link number n
  clear            remove all links
  list             show the links
  save [filename]  fetch every link and write the report (default notes.md)
  quit             leave without saving
`

// Session is an editable list of links driven by line commands.
type Session struct {
	URLs []string

	deps *Dependencies
}

// Run executes the edit command.
func (c *EditCmd) Run(deps *Dependencies) error {
	s := &Session{deps: deps}
	return s.Loop(deps.Stdin)
}

// Loop reads commands from r until quit or end of input. Mistakes are
// reported and the session continues; only a canceled context ends it
// with an error.
func (s *Session) Loop(r io.Reader) error {
	out := s.deps.Stdout
	fmt.Fprint(out, editHelp)

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		name, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		arg = strings.TrimSpace(arg)

		var err error
		switch strings.ToLower(name) {
		case "":
			continue
		case "add":
			err = s.Add(arg)
		case "rm", "remove":
			err = s.Remove(arg)
		case "clear":
			s.URLs = nil
		case "list", "ls":
			s.List(out)
		case "save":
			if arg == "" {
				arg = DefaultFilename
			}
			err = save(s.deps, s.URLs, arg)
		case "help", "?":
			fmt.Fprint(out, editHelp)
		case "quit", "exit", "q":
			return nil
		default:
			err = pagetext.Errorf(pagetext.EINVALID, "Unknown command %q. Type 'help' for commands.", name)
		}

		if err != nil {
			if ctxErr := s.deps.Ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				return err
			}
			fmt.Fprintf(s.deps.Stderr, "Error: %s\n", pagetext.ErrorMessage(err))
		}
	}
}

// Add appends a link to the list.
func (s *Session) Add(u string) error {
	u = strings.TrimSpace(u)
	if u == "" {
		return pagetext.Errorf(pagetext.EINVALID, "URL cannot be empty.")
	}
	s.URLs = append(s.URLs, u)
	return nil
}

// Remove deletes the link at the 1-based position arg.
func (s *Session) Remove(arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(s.URLs) {
		return pagetext.Errorf(pagetext.EINVALID, "No link number %q. Use 'list' to see the numbers.", arg)
	}
	s.URLs = append(s.URLs[:n-1], s.URLs[n:]...)
	return nil
}

// List writes the numbered links to w.
func (s *Session) List(w io.Writer) {
	if len(s.URLs) == 0 {
		fmt.Fprintln(w, "(no links)")
		return
	}
	for i, u := range s.URLs {
		fmt.Fprintf(w, "%d. %s\n", i+1, u)
	}
}
