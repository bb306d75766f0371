// Package poller drives the inbound ingestion loop: list unread
// messages, resolve each sender to a vendor, run the dispute pipeline
// and persist the case, and only then mark the message as read. A
// message that fails any step stays unread and is retried next cycle.
package poller

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"vdms/internal/agent"
	"vdms/internal/cases"
	"vdms/internal/mailbox"
	"vdms/internal/models"
	"vdms/internal/store"
	"vdms/internal/utils"

	"github.com/rs/zerolog"
)

// Pipeline is the slice of the agent the poller drives
type Pipeline interface {
	ProcessEmail(ctx context.Context, email *models.Email, vendorContext, contractContext, paymentHistory string) (*agent.ProcessResult, error)
}

// Notifier announces a drafted case; failures never block ingestion
type Notifier interface {
	NotifyCaseDrafted(ctx context.Context, rc *models.ResolutionCase) error
}

// Poller owns one ingestion loop
type Poller struct {
	mailbox     mailbox.Mailbox
	pipeline    Pipeline
	vendors     store.Store
	cases       *cases.Repository
	registry    *Registry
	notifier    Notifier // optional
	interval    time.Duration
	maxMessages int
	inFlight    atomic.Bool
	logger      zerolog.Logger
}

// New creates a poller. notifier may be nil.
func New(mb mailbox.Mailbox, pipeline Pipeline, vendors store.Store, repo *cases.Repository, registry *Registry, notifier Notifier, interval time.Duration, maxMessages int, logger zerolog.Logger) *Poller {
	return &Poller{
		mailbox:     mb,
		pipeline:    pipeline,
		vendors:     vendors,
		cases:       repo,
		registry:    registry,
		notifier:    notifier,
		interval:    interval,
		maxMessages: maxMessages,
		logger:      logger,
	}
}

// Run polls immediately and then on every interval tick until the
// context is canceled. A tick that arrives while the previous cycle is
// still running is skipped, never queued.
func (p *Poller) Run(ctx context.Context) {
	p.logger.Info().
		Dur("interval", p.interval).
		Int("max_messages", p.maxMessages).
		Msg("Starting mailbox poller")

	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("Mailbox poller stopped")
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

// poll starts one cycle in the background. Cycles never overlap: a tick
// that fires while a cycle is still in flight is dropped here.
func (p *Poller) poll(ctx context.Context) {
	if !p.inFlight.CompareAndSwap(false, true) {
		p.logger.Warn().Msg("Previous poll cycle still running, skipping tick")
		return
	}

	go func() {
		defer p.inFlight.Store(false)
		p.PollOnce(ctx)
	}()
}

// PollOnce runs a single cycle. All failures are absorbed: the loop
// must survive transient mailbox, store and generation errors.
func (p *Poller) PollOnce(ctx context.Context) {
	p.registry.Prune()

	ids, err := p.mailbox.ListUnread(ctx, p.maxMessages)
	if err != nil {
		p.logger.Error().Err(err).Msg("Failed to list unread messages")
		return
	}
	if len(ids) == 0 {
		p.logger.Debug().Msg("No unread messages to process")
		return
	}

	p.logger.Info().Int("count", len(ids)).Msg("Found unread messages")
	for _, id := range ids {
		p.processMessage(ctx, id)
	}
}

func (p *Poller) processMessage(ctx context.Context, messageID string) {
	log := p.logger.With().Str("message_id", messageID).Logger()

	if p.registry.Seen(messageID) {
		// Case already persisted but the read marker did not stick.
		log.Info().Msg("Message already processed, retrying read marker")
		if err := p.mailbox.MarkRead(ctx, messageID); err != nil {
			log.Error().Err(err).Msg("Failed to mark processed message as read")
		}
		return
	}

	msg, err := p.mailbox.Fetch(ctx, messageID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch message")
		return
	}
	if msg == nil {
		log.Warn().Msg("Skipping message with no payload")
		return
	}

	fromEmail := utils.ExtractEmailAddress(msg.From)
	vendor, err := p.vendors.VendorByEmail(ctx, fromEmail)
	if err != nil {
		log.Warn().Err(err).Str("from_email", fromEmail).Msg("Vendor not found for incoming email, leaving unread")
		return
	}

	contract, err := p.vendors.ContractByVendorID(ctx, vendor.ID)
	if err != nil {
		log.Warn().Err(err).Str("vendor_id", vendor.ID).Msg("Contract not found for vendor, leaving unread")
		return
	}

	history, err := p.vendors.PaymentHistory(ctx, vendor.ID)
	if err != nil {
		log.Error().Err(err).Str("vendor_id", vendor.ID).Msg("Failed to load payment history, leaving unread")
		return
	}

	email := &models.Email{
		ID:         messageID,
		From:       fromEmail,
		To:         msg.To,
		Subject:    msg.Subject,
		Body:       msg.Body,
		ReceivedAt: msg.ReceivedAt,
		VendorID:   vendor.ID,
	}

	result, err := p.pipeline.ProcessEmail(ctx, email,
		store.FormatVendorContext(vendor),
		store.FormatContractContext(contract),
		store.FormatPaymentHistory(vendor.ID, history))
	if err != nil {
		log.Error().Err(err).Msg("Failed to process message")
		return
	}

	if err := p.cases.Save(result.ResolutionCase); err != nil && !errors.Is(err, cases.ErrCaseExists) {
		log.Error().Err(err).Msg("Failed to persist case, leaving unread")
		return
	}
	log.Info().Str("case_id", result.ResolutionCase.Analysis.CaseID).Msg("Case saved from mailbox message")

	p.registry.MarkProcessed(messageID)

	if p.notifier != nil {
		if err := p.notifier.NotifyCaseDrafted(ctx, result.ResolutionCase); err != nil {
			log.Error().Err(err).Msg("Failed to send case notification")
		}
	}

	if err := p.mailbox.MarkRead(ctx, messageID); err != nil {
		log.Error().Err(err).Msg("Failed to mark message as read")
	}
}
