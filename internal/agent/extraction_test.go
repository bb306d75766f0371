package agent

import (
	"context"
	"errors"
	"testing"

	"vdms/internal/llm"
	"vdms/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator replays scripted responses and records every prompt
type fakeGenerator struct {
	responses []string
	err       error

	prompts       []string
	systemPrompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt, systemPrompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.systemPrompts = append(f.systemPrompts, systemPrompt)
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", errors.New("fakeGenerator: no scripted response left")
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

func newTestAgent(gen llm.Generator) *Agent {
	return New(gen, nil, zerolog.Nop())
}

func testEmail() *models.Email {
	return &models.Email{
		ID:       "email-1",
		From:     "billing@techsupply.com",
		Subject:  "Underpayment on Invoice INV-2024-0004",
		Body:     "We received $1,500 but invoice INV-2024-0004 was for $2,000. Please remit the difference.",
		VendorID: "VENDOR-001",
	}
}

const factsJSON = `{
  "vendorName": "TechSupply Co",
  "vendorEmail": "billing@techsupply.com",
  "invoiceNumbers": ["INV-2024-0004"],
  "amounts": [1500, 2000],
  "mainComplaint": "Vendor claims the invoice was underpaid by $500.",
  "evidenceProvided": ["bank statement"],
  "tone": "professional"
}`

func TestExtractFacts(t *testing.T) {
	gen := &fakeGenerator{responses: []string{factsJSON}}
	a := newTestAgent(gen)

	facts, err := a.ExtractFacts(context.Background(), testEmail())

	require.NoError(t, err)
	assert.Equal(t, "TechSupply Co", facts.VendorName)
	assert.Equal(t, []string{"INV-2024-0004"}, facts.InvoiceNumbers)
	assert.Equal(t, []float64{1500, 2000}, facts.Amounts)
	assert.Equal(t, models.ToneProfessional, facts.Tone)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Underpayment on Invoice INV-2024-0004")
	assert.Contains(t, gen.systemPrompts[0], "valid JSON only")
}

func TestExtractFacts_FencedOutput(t *testing.T) {
	for _, fence := range []string{"```json\n" + factsJSON + "\n```", "```\n" + factsJSON + "\n```"} {
		gen := &fakeGenerator{responses: []string{fence}}
		a := newTestAgent(gen)

		facts, err := a.ExtractFacts(context.Background(), testEmail())

		require.NoError(t, err)
		assert.Equal(t, "TechSupply Co", facts.VendorName)
	}
}

func TestExtractFacts_InvalidJSON(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"Sure! The vendor seems upset about invoice INV-2024-0004."}}
	a := newTestAgent(gen)

	_, err := a.ExtractFacts(context.Background(), testEmail())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtraction)

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Contains(t, extractionErr.RawOutput, "INV-2024-0004")
}

func TestExtractFacts_MissingFieldsTolerated(t *testing.T) {
	// Valid JSON with absent fields parses; the body scan backfills the
	// invoice numbers and amounts the model dropped.
	gen := &fakeGenerator{responses: []string{`{"mainComplaint": "Payment was short"}`}}
	a := newTestAgent(gen)

	facts, err := a.ExtractFacts(context.Background(), testEmail())

	require.NoError(t, err)
	assert.Equal(t, "Payment was short", facts.MainComplaint)
	assert.Contains(t, facts.InvoiceNumbers, "INV-2024-0004")
	assert.Contains(t, facts.Amounts, 2000.0)
}

func TestExtractFacts_GenerationError(t *testing.T) {
	gen := &fakeGenerator{err: llm.ErrGeneration}
	a := newTestAgent(gen)

	_, err := a.ExtractFacts(context.Background(), testEmail())

	assert.ErrorIs(t, err, llm.ErrGeneration)
	assert.NotErrorIs(t, err, ErrExtraction)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("  {\"a\":1}  "))
}
