package gmail

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/jimpyjack/stream-donations/internal/logger"
	"github.com/jimpyjack/stream-donations/internal/model"
	"github.com/jimpyjack/stream-donations/internal/parse"
)

// ErrNotFound is returned when a message cannot be fetched. Callers skip
// the candidate for this cycle; it stays unrecorded and is retried on the
// next poll.
var ErrNotFound = errors.New("gmail: message not found")

const defaultTimeout = 15 * time.Second

// Client wraps the Gmail API behind the two operations the poll pipeline
// needs: search for candidate messages and fetch one message's content.
type Client struct {
	service  *gmail.Service
	logger   *logger.Logger
	location *time.Location
	timeout  time.Duration
	max      int64

	// now is swappable so tests can pin the date filter.
	now func() time.Time
}

func NewClient(accessToken string, location *time.Location, maxResults int64, logger *logger.Logger) (*Client, error) {
	httpClient := &http.Client{
		Transport: &oauth2Transport{token: accessToken},
	}

	service, err := gmail.NewService(context.Background(), option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}

	if location == nil {
		location = time.Local
	}
	if maxResults <= 0 {
		maxResults = 20
	}

	return &Client{
		service:  service,
		logger:   logger,
		location: location,
		timeout:  defaultTimeout,
		max:      maxResults,
		now:      time.Now,
	}, nil
}

type oauth2Transport struct {
	token string
}

func (t *oauth2Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.token)
	return http.DefaultTransport.RoundTrip(req)
}

// DateFilter formats a Gmail after: value for the given instant. Searches
// only ever cover the current calendar day in the configured time zone.
func DateFilter(now time.Time) string {
	return now.Format("2006/01/02")
}

// BuildQuery forms the Gmail search query for a provider's notification
// emails received today.
func BuildQuery(provider parse.Provider, now time.Time) string {
	return fmt.Sprintf(`from:%s subject:"%s" after:%s`, provider.Sender, provider.SubjectPhrase, DateFilter(now))
}

// Search lists today's candidate messages for a provider, newest-capped at
// the configured max. The caller treats an error as "no candidates this
// cycle".
func (c *Client) Search(ctx context.Context, provider parse.Provider) ([]model.CandidateMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	query := BuildQuery(provider, c.now().In(c.location))
	list, err := c.service.Users.Messages.List("me").Q(query).MaxResults(c.max).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search messages: %w", err)
	}

	var candidates []model.CandidateMessage
	for _, msg := range list.Messages {
		meta, err := c.service.Users.Messages.Get("me", msg.Id).
			Format("metadata").
			MetadataHeaders("Subject", "From", "Date").
			Context(ctx).Do()
		if err != nil {
			c.logger.Error("Failed to get message metadata:", msg.Id, err)
			continue
		}

		candidate := model.CandidateMessage{ID: msg.Id}
		for _, header := range meta.Payload.Headers {
			switch header.Name {
			case "Subject":
				candidate.Subject = header.Value
			case "From":
				candidate.From = header.Value
			case "Date":
				candidate.Date = header.Value
			}
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

// Get fetches a message's full content. The body is the first text/plain
// part found depth-first; when a provider only sends HTML the raw markup is
// returned and tag stripping is left to the parsers.
func (c *Client) Get(ctx context.Context, id string) (*model.FetchedMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	message, err := c.service.Users.Messages.Get("me", id).Format("full").Context(ctx).Do()
	if err != nil {
		c.logger.Error("Failed to fetch message:", id, err)
		return nil, ErrNotFound
	}

	fetched := &model.FetchedMessage{
		Body: ExtractBody(message.Payload),
	}
	for _, header := range message.Payload.Headers {
		switch header.Name {
		case "Subject":
			fetched.Headers.Subject = header.Value
		case "From":
			fetched.Headers.From = header.Value
		case "Date":
			fetched.Headers.Date = header.Value
		}
	}

	return fetched, nil
}

// ExtractBody reduces a (possibly multipart) payload to one text
// representation, preferring the first text/plain part and falling back to
// the first text/html part.
func ExtractBody(payload *gmail.MessagePart) string {
	if body := findPart(payload, "text/plain"); body != "" {
		return body
	}
	return findPart(payload, "text/html")
}

// findPart walks the part tree depth-first for the first decodable part of
// the given MIME type.
func findPart(part *gmail.MessagePart, mimeType string) string {
	if part == nil {
		return ""
	}
	if part.MimeType == mimeType && part.Body != nil && part.Body.Data != "" {
		decoded, err := base64.URLEncoding.DecodeString(part.Body.Data)
		if err == nil {
			return string(decoded)
		}
	}
	for _, child := range part.Parts {
		if body := findPart(child, mimeType); body != "" {
			return body
		}
	}
	return ""
}
