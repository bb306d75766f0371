// Package agent implements the dispute pipeline: extract typed facts
// from a vendor email, analyze the dispute against contract and payment
// context, and assemble an approvable resolution case. The generation
// calls go through llm.Generator; everything derived from their output
// is deterministic.
package agent

import (
	"context"

	"vdms/internal/knowledge"
	"vdms/internal/llm"
	"vdms/internal/models"

	"github.com/rs/zerolog"
)

// Agent runs the three pipeline stages. The retriever may be nil, in
// which case analysis always uses local contract data.
type Agent struct {
	generator llm.Generator
	retriever *knowledge.Retriever
	logger    zerolog.Logger
}

// New creates a pipeline agent
func New(generator llm.Generator, retriever *knowledge.Retriever, logger zerolog.Logger) *Agent {
	return &Agent{
		generator: generator,
		retriever: retriever,
		logger:    logger,
	}
}

// ProcessResult is the outcome of one end-to-end pipeline run
type ProcessResult struct {
	ResolutionCase *models.ResolutionCase
	EmailAnalysis  string
}

// ProcessEmail runs extraction, analysis and case assembly for one
// email. Context strings are rendered by the caller from the vendor
// store; the first failing stage aborts the run.
func (a *Agent) ProcessEmail(ctx context.Context, email *models.Email, vendorContext, contractContext, paymentHistory string) (*ProcessResult, error) {
	a.logger.Info().Str("email_id", email.ID).Msg("Starting email processing")

	facts, err := a.ExtractFacts(ctx, email)
	if err != nil {
		return nil, err
	}

	analysis, err := a.AnalyzeDispute(ctx, email, facts, vendorContext, contractContext, paymentHistory)
	if err != nil {
		return nil, err
	}

	resolutionCase := a.BuildResolutionCase(email, facts, analysis)

	a.logger.Info().
		Str("case_id", analysis.CaseID).
		Str("recommendation", analysis.RecommendedAction).
		Msg("Email processing completed")

	return &ProcessResult{
		ResolutionCase: resolutionCase,
		EmailAnalysis:  analysis.InitialAnalysis,
	}, nil
}
