package assist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// Fallback strings shown when generation fails. The UI treats these as
// terminal content, so the wording is a fixed contract.
const (
	FallbackEmail   = "Error generating content. Please try again."
	FallbackTrends  = "Could not analyze trends."
	FallbackSummary = "AI was unable to generate a summary for this report."
)

// ErrSuperseded marks a response that arrived after a newer request was
// issued. Its content is discarded, never shown.
var ErrSuperseded = errors.New("assist response superseded by a newer request")

// Service drafts marketing text through the configured generator. Requests
// race against each other deliberately: only the most recently issued
// request may deliver a result.
type Service struct {
	logger    *slog.Logger
	generator Generator
	seq       atomic.Uint64
}

// NewService constructs a Service.
func NewService(logger *slog.Logger, generator Generator) *Service {
	return &Service{logger: logger, generator: generator}
}

// FollowUpEmail drafts a follow-up email for a customer inquiry. Generation
// failures degrade to FallbackEmail.
func (s *Service) FollowUpEmail(ctx context.Context, customerName, inquiryContext string) (string, error) {
	prompt := fmt.Sprintf(
		"Draft a professional pharma marketing follow-up email for %s. "+
			"Context of the inquiry: %s. "+
			"Keep it professional, emphasize product quality and reliability, and suggest a meeting time.",
		customerName, inquiryContext,
	)
	return s.generate(ctx, prompt, FallbackEmail)
}

// SalesTrends analyzes inquiry trend data for the marketing team.
func (s *Service) SalesTrends(ctx context.Context, dataSummary string) (string, error) {
	prompt := fmt.Sprintf(
		"Analyze these pharma sales inquiry trends: %s. "+
			"Provide 3 actionable insights for the marketing team to improve conversion.",
		dataSummary,
	)
	return s.generate(ctx, prompt, FallbackTrends)
}

// ReportSummary summarizes one report's data with a strategic recommendation.
func (s *Service) ReportSummary(ctx context.Context, reportType, data string) (string, error) {
	prompt := fmt.Sprintf(
		"You are an expert Pharma Marketing Analyst. "+
			"Analyze the following %s report data: %s. "+
			"Provide a concise 3-sentence summary of findings and one strategic recommendation for the sales team.",
		reportType, data,
	)
	return s.generate(ctx, prompt, FallbackSummary)
}

// generate runs the prompt under last-request-wins sequencing. A result that
// lands after a newer request started is discarded with ErrSuperseded; a
// generator failure on a current request returns the fallback text.
func (s *Service) generate(ctx context.Context, prompt, fallback string) (string, error) {
	seq := s.seq.Add(1)
	text, err := s.generator.GenerateText(ctx, prompt)
	if s.seq.Load() != seq {
		return "", ErrSuperseded
	}
	if err != nil {
		s.logger.Warn("assist generation failed", slog.Any("error", err))
		return fallback, nil
	}
	return text, nil
}
