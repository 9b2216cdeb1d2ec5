package gmail

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gmailapi "google.golang.org/api/gmail/v1"

	"github.com/jimpyjack/stream-donations/internal/parse"
)

func TestDateFilter(t *testing.T) {
	now := time.Date(2026, time.August, 29, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026/08/29", DateFilter(now))

	// Single-digit month and day are zero-padded.
	now = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026/01/05", DateFilter(now))
}

func TestDateFilterHonorsTimezone(t *testing.T) {
	// 03:00 UTC on the 30th is still the 29th in Los Angeles; the search
	// window follows the configured zone, not UTC.
	la, err := time.LoadLocation("America/Los_Angeles")
	assert.NoError(t, err)

	instant := time.Date(2026, time.August, 30, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026/08/29", DateFilter(instant.In(la)))
}

func TestBuildQuery(t *testing.T) {
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

	assert.Equal(t,
		`from:venmo@venmo.com subject:"paid you" after:2026/08/29`,
		BuildQuery(parse.Venmo(), now))

	assert.Equal(t,
		`from:notify.wellsfargo.com subject:"received money with Zelle" after:2026/08/29`,
		BuildQuery(parse.Zelle(), now))
}

func encodePart(s string) string {
	return base64.URLEncoding.EncodeToString([]byte(s))
}

func TestExtractBodyPrefersPlainText(t *testing.T) {
	payload := &gmailapi.MessagePart{
		MimeType: "multipart/alternative",
		Parts: []*gmailapi.MessagePart{
			{
				MimeType: "text/html",
				Body:     &gmailapi.MessagePartBody{Data: encodePart("<p>hello</p>")},
			},
			{
				MimeType: "text/plain",
				Body:     &gmailapi.MessagePartBody{Data: encodePart("hello")},
			},
		},
	}

	assert.Equal(t, "hello", ExtractBody(payload))
}

func TestExtractBodyFallsBackToHTML(t *testing.T) {
	payload := &gmailapi.MessagePart{
		MimeType: "multipart/alternative",
		Parts: []*gmailapi.MessagePart{
			{
				MimeType: "text/html",
				Body:     &gmailapi.MessagePartBody{Data: encodePart(`<h1>HARPER NADLMAN sent you $500.00</h1>`)},
			},
		},
	}

	// HTML comes back tags intact; stripping is the parser's job.
	assert.Equal(t, `<h1>HARPER NADLMAN sent you $500.00</h1>`, ExtractBody(payload))
}

func TestExtractBodyWalksNestedParts(t *testing.T) {
	payload := &gmailapi.MessagePart{
		MimeType: "multipart/mixed",
		Parts: []*gmailapi.MessagePart{
			{
				MimeType: "multipart/alternative",
				Parts: []*gmailapi.MessagePart{
					{
						MimeType: "text/plain",
						Body:     &gmailapi.MessagePartBody{Data: encodePart("nested plain")},
					},
				},
			},
		},
	}

	assert.Equal(t, "nested plain", ExtractBody(payload))
}

func TestExtractBodySinglePart(t *testing.T) {
	payload := &gmailapi.MessagePart{
		MimeType: "text/plain",
		Body:     &gmailapi.MessagePartBody{Data: encodePart("single part body")},
	}

	assert.Equal(t, "single part body", ExtractBody(payload))
}

func TestExtractBodyEmptyPayload(t *testing.T) {
	assert.Equal(t, "", ExtractBody(nil))
	assert.Equal(t, "", ExtractBody(&gmailapi.MessagePart{MimeType: "multipart/mixed"}))
}
