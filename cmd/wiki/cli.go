package main

import (
	"context"
	"io"
	"time"

	"github.com/gilgamesh1111/wiki"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher wiki.PageFetcher
	Writer  wiki.PageWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Language  string        `short:"l" default:"${default_language}" env:"WIKI_LANGUAGE" help:"Wikipedia language edition (e.g. en, fr)"`
	Count     int           `short:"n" default:"1" env:"WIKI_COUNT" help:"Number of random pages to print"`
	Width     int           `short:"w" default:"${default_width}" env:"WIKI_WIDTH" help:"Wrap the extract at this many columns (0 disables wrapping)"`
	Color     string        `enum:"auto,always,never" default:"auto" env:"WIKI_COLOR" help:"Highlight the title: auto, always or never"`
	Timeout   time.Duration `short:"t" default:"${default_timeout}" env:"WIKI_TIMEOUT" help:"Request timeout"`
	Rate      float64       `default:"${default_rate}" env:"WIKI_RATE" help:"Maximum requests per second when fetching several pages (0 disables pacing)"`
	UserAgent string        `name:"user-agent" default:"${user_agent}" env:"WIKI_USER_AGENT" help:"User-Agent header sent to Wikipedia"`
	Verbose   bool          `short:"v" help:"Log each request to stderr"`
	Version   bool          `help:"Show version and exit"`
}
