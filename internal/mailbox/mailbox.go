// Package mailbox abstracts the inbound email source behind a small
// interface the poller drives. The unread flag is the ingestion cursor:
// a message stays unread until its case is durably persisted.
package mailbox

import (
	"context"
	"time"
)

// NormalizedMessage is one inbound email flattened out of its transport
// representation.
type NormalizedMessage struct {
	ID         string
	ThreadID   string
	From       string
	To         string
	Subject    string
	Body       string
	ReceivedAt time.Time
}

// Mailbox is the message source contract. Fetch may return (nil, nil)
// for a message with no usable payload.
type Mailbox interface {
	ListUnread(ctx context.Context, max int) ([]string, error)
	Fetch(ctx context.Context, id string) (*NormalizedMessage, error)
	MarkRead(ctx context.Context, id string) error
	Archive(ctx context.Context, id string) error
}
