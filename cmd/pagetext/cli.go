package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alecthomas/kong"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Scraper *Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config kong.ConfigFlag `help:"Load flag values from a YAML file." placeholder:"FILE"`

	Timeout        time.Duration `default:"30s" env:"PAGETEXT_TIMEOUT" help:"Total time allowed for each request."`
	ConnectTimeout time.Duration `default:"15s" env:"PAGETEXT_CONNECT_TIMEOUT" help:"Time allowed to establish a connection."`
	UserAgent      string        `default:"HtmlToTextApp/1.0" env:"PAGETEXT_USER_AGENT" help:"User-Agent header sent with requests."`
	Rate           float64       `default:"0" env:"PAGETEXT_RATE" help:"Maximum requests per second to one host (0 disables)."`
	Extractor      string        `default:"text" env:"PAGETEXT_EXTRACTOR" help:"Text extractor: text, trafilatura or readability."`
	Verbose        bool          `short:"v" env:"PAGETEXT_VERBOSE" help:"Log every fetch and extraction to stderr."`

	Prompt PromptCmd `cmd:"" default:"1" help:"Enter links one at a time, then save (default)."`
	Edit   EditCmd   `cmd:"" help:"Edit a list of links, then save it."`
	Fetch  FetchCmd  `cmd:"" help:"Save links given as arguments or in a file."`
}

// Settings returns the global flags as validated settings input.
func (c *CLI) Settings() *Settings {
	return &Settings{
		Timeout:        c.Timeout,
		ConnectTimeout: c.ConnectTimeout,
		UserAgent:      c.UserAgent,
		Rate:           c.Rate,
		Extractor:      c.Extractor,
	}
}

// PromptCmd is the "prompt" subcommand.
type PromptCmd struct{}

// EditCmd is the "edit" subcommand.
type EditCmd struct{}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URLs   []string `arg:"" optional:"" name:"url" help:"Links to save, in order."`
	Input  string   `short:"i" type:"existingfile" help:"Read links from a file, one per line."`
	Output string   `short:"o" required:"" help:"Output filename (.md is appended when missing)."`
}
