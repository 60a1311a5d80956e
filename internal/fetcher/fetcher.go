// Package fetcher acquires interview questions from career-advice web pages
// for subjects that have no curated bank. It is deliberately infallible:
// any acquisition problem resolves to the generic default question set, so
// callers always receive at least one question and never an error.
package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/stellarlinkco/interview-coach/internal/question"
)

const (
	defaultBaseURL   = "https://www.indeed.com/career-advice/interviewing"
	defaultTimeout   = 6 * time.Second
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/120.0.0.0 Safari/537.36"

	maxQuestions = 5
)

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithBaseURL sets the page base URL.
func WithBaseURL(baseURL string) Option {
	return func(f *Fetcher) {
		if f == nil {
			return
		}
		baseURL = strings.TrimSpace(baseURL)
		if baseURL == "" {
			return
		}
		f.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithUserAgent sets the User-Agent header sent with page requests.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if f == nil {
			return
		}
		if ua = strings.TrimSpace(ua); ua != "" {
			f.userAgent = ua
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(f *Fetcher) {
		if f == nil {
			return
		}
		if f.httpClient == nil {
			f.httpClient = &http.Client{}
		}
		f.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		if f == nil || c == nil {
			return
		}
		f.httpClient = c
	}
}

// Fetcher scrapes interview questions for a subject. It implements
// question.Source.
type Fetcher struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// New constructs a Fetcher with the given options.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		baseURL:    defaultBaseURL,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Questions fetches up to 5 questions for the subject, wrapped as
// unstructured records. Any failure resolves to the default HR questions.
func (f *Fetcher) Questions(ctx context.Context, subject string) []question.Record {
	fetched, err := f.fetch(ctx, subject)
	if err != nil || len(fetched) == 0 {
		return question.Wrap(question.DefaultQuestions())
	}
	return question.Wrap(fetched)
}

func (f *Fetcher) fetch(ctx context.Context, subject string) ([]string, error) {
	if f == nil || f.httpClient == nil {
		return nil, fmt.Errorf("fetcher: nil client")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	url := fmt.Sprintf("%s/%s-interview-questions", f.baseURL, Slug(subject))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetcher: build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetcher: get %q: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetcher: get %q: status %d", url, resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetcher: parse %q: %w", url, err)
	}

	questions := headingQuestions(doc)
	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}
	return questions, nil
}

// Slug normalizes a subject into a URL path segment.
func Slug(subject string) string {
	subject = strings.ToLower(strings.TrimSpace(subject))
	return strings.Join(strings.Fields(subject), "-")
}

// headingQuestions collects the text of h2 elements that look like
// questions (contain a question mark), in document order.
func headingQuestions(doc *html.Node) []string {
	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "h2" {
			text := strings.TrimSpace(nodeText(n))
			if strings.Contains(text, "?") {
				out = append(out, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
