package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	urls := make([]string, 0, len(c.URLs))
	for _, u := range c.URLs {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}

	if c.Input != "" {
		fromFile, err := readURLs(c.Input)
		if err != nil {
			return err
		}
		urls = append(urls, fromFile...)
	}

	return save(deps, urls, c.Output)
}

// readURLs returns the links listed in path, one per line.
// Blank lines and lines starting with # are skipped.
func readURLs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open link list: %w", err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read link list: %w", err)
	}
	return urls, nil
}
