package document

import "github.com/seijikohara/teppan/history"

// Option configures a Document during construction.
type Option func(*config)

type config struct {
	content    string
	maxHistory int
}

// WithContent sets the document's initial text.
func WithContent(content string) Option {
	return func(c *config) {
		c.content = content
	}
}

// WithMaxHistory overrides the undo stack bound (spec MAX_HISTORY). A
// non-positive value selects history.DefaultMaxHistory.
func WithMaxHistory(max int) Option {
	return func(c *config) {
		c.maxHistory = max
	}
}

func newConfig(opts []Option) *config {
	c := &config{maxHistory: history.DefaultMaxHistory}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
