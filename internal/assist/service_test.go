package assist

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type generatorFunc func(ctx context.Context, prompt string) (string, error)

func (f generatorFunc) GenerateText(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFollowUpEmailPrompt(t *testing.T) {
	var captured string
	svc := NewService(discardLogger(), generatorFunc(func(_ context.Context, prompt string) (string, error) {
		captured = prompt
		return "Dear Dr. Chen, ...", nil
	}))

	text, err := svc.FollowUpEmail(context.Background(), "St. Mary's General Hospital", "Bulk antibiotic order")
	require.NoError(t, err)
	require.Equal(t, "Dear Dr. Chen, ...", text)
	require.Contains(t, captured, "follow-up email for St. Mary's General Hospital")
	require.Contains(t, captured, "Context of the inquiry: Bulk antibiotic order")
	require.Contains(t, captured, "suggest a meeting time")
}

func TestFallbacksOnGeneratorError(t *testing.T) {
	svc := NewService(discardLogger(), generatorFunc(func(context.Context, string) (string, error) {
		return "", errors.New("upstream 503")
	}))
	ctx := context.Background()

	text, err := svc.FollowUpEmail(ctx, "X", "Y")
	require.NoError(t, err)
	require.Equal(t, FallbackEmail, text)

	text, err = svc.SalesTrends(ctx, "Q1 data")
	require.NoError(t, err)
	require.Equal(t, FallbackTrends, text)

	text, err = svc.ReportSummary(ctx, "Product Demand Analysis", "{}")
	require.NoError(t, err)
	require.Equal(t, FallbackSummary, text)
}

func TestReportSummaryPrompt(t *testing.T) {
	var captured string
	svc := NewService(discardLogger(), generatorFunc(func(_ context.Context, prompt string) (string, error) {
		captured = prompt
		return "ok", nil
	}))

	_, err := svc.ReportSummary(context.Background(), "Monthly Sales vs Target", `[{"month":"Jul"}]`)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(captured, "You are an expert Pharma Marketing Analyst."))
	require.Contains(t, captured, "Monthly Sales vs Target report data")
	require.Contains(t, captured, "one strategic recommendation")
}

func TestLastRequestWins(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	svc := NewService(discardLogger(), generatorFunc(func(_ context.Context, prompt string) (string, error) {
		if strings.Contains(prompt, "slow") {
			close(started)
			<-release
			return "stale answer", nil
		}
		return "fresh answer", nil
	}))
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	var staleText string
	var staleErr error
	go func() {
		defer wg.Done()
		staleText, staleErr = svc.SalesTrends(ctx, "slow dataset")
	}()

	<-started
	fresh, err := svc.SalesTrends(ctx, "fast dataset")
	require.NoError(t, err)
	require.Equal(t, "fresh answer", fresh)

	close(release)
	wg.Wait()
	require.ErrorIs(t, staleErr, ErrSuperseded)
	require.Empty(t, staleText, "superseded content is discarded")
}
