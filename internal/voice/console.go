// Package voice provides session collaborators. The console implementation
// announces to a writer and captures typed responses with wall-clock timing;
// it satisfies the boundary contract that failures never surface to the
// session, only neutral empty responses.
package voice

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// Console is a text-mode collaborator for interactive sessions.
type Console struct {
	reader *bufio.Reader
	writer io.Writer
	prefix string
	now    func() time.Time
}

// Option configures a Console.
type Option func(*Console)

// WithPrefix sets the speaker prefix printed before each announcement.
func WithPrefix(prefix string) Option {
	return func(c *Console) {
		if c != nil {
			c.prefix = prefix
		}
	}
}

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Console) {
		if c != nil && now != nil {
			c.now = now
		}
	}
}

// NewConsole builds a Console reading responses from r and announcing to w.
func NewConsole(r io.Reader, w io.Writer, opts ...Option) *Console {
	c := &Console{
		reader: bufio.NewReader(r),
		writer: w,
		prefix: "Interviewer",
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Announce writes one line. Write failures are swallowed: announcements are
// best-effort and must never abort a session.
func (c *Console) Announce(text string) {
	if c == nil || c.writer == nil {
		return
	}
	_, _ = fmt.Fprintf(c.writer, "%s: %s\n", c.prefix, text)
}

// Capture reads one line of response and reports how long it took. Read
// failures and cancellation resolve to ("", 0).
func (c *Console) Capture(ctx context.Context) (string, float64) {
	if c == nil || c.reader == nil {
		return "", 0
	}
	if ctx != nil && ctx.Err() != nil {
		return "", 0
	}

	_, _ = fmt.Fprintf(c.writer, "> ")

	start := c.now()
	line, err := c.reader.ReadString('\n')
	elapsed := c.now().Sub(start).Seconds()
	if err != nil && line == "" {
		return "", 0
	}
	return strings.TrimRight(line, "\r\n"), elapsed
}
