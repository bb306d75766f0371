package mailbox

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"vdms/internal/config"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

const unreadQuery = "is:unread in:inbox"

// GmailMailbox reads the finance inbox through the Gmail REST API using
// an offline-access refresh token.
type GmailMailbox struct {
	service *gmail.Service
	logger  zerolog.Logger
}

// NewGmailMailbox builds the Gmail client from OAuth credentials. Token
// refresh happens transparently inside the oauth2 transport.
func NewGmailMailbox(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*GmailMailbox, error) {
	if !cfg.HasGmailCredentials() {
		return nil, fmt.Errorf("gmail credentials missing: set GMAIL_CLIENT_ID, GMAIL_CLIENT_SECRET, GMAIL_REFRESH_TOKEN")
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.GmailClientID,
		ClientSecret: cfg.GmailClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gmail.GmailModifyScope},
	}
	tokenSource := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.GmailRefreshToken})

	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}

	return &GmailMailbox{service: service, logger: logger}, nil
}

// ListUnread returns up to max unread inbox message ids
func (g *GmailMailbox) ListUnread(ctx context.Context, max int) ([]string, error) {
	resp, err := g.service.Users.Messages.List("me").
		Q(unreadQuery).
		MaxResults(int64(max)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list unread messages: %w", err)
	}

	ids := make([]string, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		if m.Id != "" {
			ids = append(ids, m.Id)
		}
	}
	return ids, nil
}

// Fetch loads one message in full and flattens headers and body. A
// message without a payload yields (nil, nil).
func (g *GmailMailbox) Fetch(ctx context.Context, id string) (*NormalizedMessage, error) {
	msg, err := g.service.Users.Messages.Get("me", id).
		Format("full").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch message %s: %w", id, err)
	}
	if msg.Payload == nil {
		return nil, nil
	}

	subject := extractHeader(msg.Payload, "Subject")
	if subject == "" {
		subject = "(no subject)"
	}

	receivedAt := time.Now()
	if dateHeader := extractHeader(msg.Payload, "Date"); dateHeader != "" {
		if parsed, err := mail.ParseDate(dateHeader); err == nil {
			receivedAt = parsed
		}
	}

	return &NormalizedMessage{
		ID:         id,
		ThreadID:   msg.ThreadId,
		From:       extractHeader(msg.Payload, "From"),
		To:         extractHeader(msg.Payload, "To"),
		Subject:    subject,
		Body:       extractBody(msg.Payload),
		ReceivedAt: receivedAt,
	}, nil
}

// MarkRead clears the UNREAD label, advancing the ingestion cursor
func (g *GmailMailbox) MarkRead(ctx context.Context, id string) error {
	_, err := g.service.Users.Messages.Modify("me", id, &gmail.ModifyMessageRequest{
		RemoveLabelIds: []string{"UNREAD"},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to mark message %s as read: %w", id, err)
	}

	g.logger.Info().Str("message_id", id).Msg("Marked message as read")
	return nil
}

// Archive removes the message from the inbox
func (g *GmailMailbox) Archive(ctx context.Context, id string) error {
	_, err := g.service.Users.Messages.Modify("me", id, &gmail.ModifyMessageRequest{
		RemoveLabelIds: []string{"INBOX"},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to archive message %s: %w", id, err)
	}

	g.logger.Info().Str("message_id", id).Msg("Archived message")
	return nil
}

func extractHeader(payload *gmail.MessagePart, name string) string {
	for _, h := range payload.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

// extractBody prefers a direct body, then a text/plain part, then
// text/html, then descends into the first part.
func extractBody(payload *gmail.MessagePart) string {
	if payload == nil {
		return ""
	}

	if payload.Body != nil && payload.Body.Data != "" {
		return decodeBase64URL(payload.Body.Data)
	}

	if len(payload.Parts) > 0 {
		for _, mimeType := range []string{"text/plain", "text/html"} {
			for _, part := range payload.Parts {
				if part.MimeType == mimeType && part.Body != nil && part.Body.Data != "" {
					return decodeBase64URL(part.Body.Data)
				}
			}
		}
		return extractBody(payload.Parts[0])
	}

	return ""
}

func decodeBase64URL(data string) string {
	decoded, err := base64.URLEncoding.WithPadding(base64.NoPadding).DecodeString(strings.TrimRight(data, "="))
	if err != nil {
		return ""
	}
	return string(decoded)
}
