package parse

import (
	"github.com/jimpyjack/stream-donations/internal/model"
)

// Fields is a successful name/amount extraction from a payment email.
type Fields struct {
	Name   string
	Amount float64
}

// Provider describes one payment source integration: how to find its
// notification emails and how to pull donation fields out of them.
// ExtractFields and ExtractNote are independent on purpose: an email with
// an unparseable note must still yield a donation with an empty note.
type Provider struct {
	Source        model.Source
	Sender        string
	SubjectPhrase string

	// ExtractFields returns the donor name and amount, or ok=false when the
	// message is not a recognized donation from this provider.
	ExtractFields func(candidate model.CandidateMessage, body string) (Fields, bool)

	// ExtractNote returns the donor's free-text note, or "" when absent.
	ExtractNote func(body string) string
}

// Providers returns the configured payment integrations.
func Providers() []Provider {
	return []Provider{Venmo(), Zelle()}
}

// Venmo notifications carry the name and amount in the subject line and the
// donor note in the HTML body.
func Venmo() Provider {
	return Provider{
		Source:        model.SourceVenmo,
		Sender:        "venmo@venmo.com",
		SubjectPhrase: "paid you",
		ExtractFields: func(candidate model.CandidateMessage, body string) (Fields, bool) {
			return VenmoFieldsFromSubject(candidate.Subject)
		},
		ExtractNote: VenmoNote,
	}
}

// Zelle notifications (Wells Fargo) carry everything in the HTML body.
func Zelle() Provider {
	return Provider{
		Source:        model.SourceZelle,
		Sender:        "notify.wellsfargo.com",
		SubjectPhrase: "received money with Zelle",
		ExtractFields: func(candidate model.CandidateMessage, body string) (Fields, bool) {
			return ZelleFieldsFromBody(body)
		},
		ExtractNote: ZelleMemo,
	}
}
