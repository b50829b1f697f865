package service

import "context"

// Outcome classifies how the router handled one inbound message. The string
// value is the webhook's plain-text response body.
type Outcome string

const (
	// OutcomeWelcomed: first-ever message from an unseen number. The body is
	// discarded and a welcome text goes out.
	OutcomeWelcomed Outcome = "welcomed new client"
	// OutcomeJoined: a #keyword message matched an account slug.
	OutcomeJoined Outcome = "client joined org"
	// OutcomeInvalidKeyword: a #keyword message matched nothing.
	OutcomeInvalidKeyword Outcome = "invalid keyword"
	// OutcomeAnswerSaved: the body was recorded as an answer to the
	// contact's most recent question.
	OutcomeAnswerSaved Outcome = "saved answer to most recent question"
	// OutcomeNoQuestion: an answer arrived for a contact with no linked
	// question. Recorded as a distinct outcome instead of faulting.
	OutcomeNoQuestion Outcome = "no outstanding question"
	// OutcomeIgnored: empty body or unparseable sender. Safe no-op.
	OutcomeIgnored Outcome = "ignored empty message"
)

func (o Outcome) String() string { return string(o) }

// InboundService routes one inbound SMS: new-contact welcome, org-join
// keyword, or answer to the contact's most recent question.
type InboundService interface {
	// Handle processes one message from the given raw sender number. It
	// always returns a usable Outcome; err is reserved for store failures.
	Handle(ctx context.Context, fromRaw, body string) (Outcome, error)
}
