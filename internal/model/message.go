package model

// CandidateMessage is one located mailbox message that has not yet been
// confirmed as a donation. It lives only for the duration of a poll cycle.
type CandidateMessage struct {
	ID      string `json:"id"`
	Subject string `json:"subject"`
	From    string `json:"from"`
	Date    string `json:"date"`
}

// MessageHeaders are the authoritative header fields of a fetched message.
// The Date here is preferred over the candidate's search-reported date.
type MessageHeaders struct {
	Subject string `json:"subject"`
	From    string `json:"from"`
	Date    string `json:"date"`
}

// FetchedMessage is the full content of a candidate. Body is the first
// text/plain part when one exists, otherwise the raw HTML of the first
// text/html part; tag stripping is the parser's job.
type FetchedMessage struct {
	Body    string         `json:"body"`
	Headers MessageHeaders `json:"headers"`
}
