package routeai

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	openai "github.com/openai/openai-go"
)

func TestClassifyProviderErrorQuota(t *testing.T) {
	err := ClassifyProviderError(&openai.Error{StatusCode: http.StatusTooManyRequests})
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("429 should classify as quota, got %v", err)
	}
}

func TestClassifyProviderErrorWrappedQuota(t *testing.T) {
	wrapped := fmt.Errorf("calling estimator: %w", &openai.Error{StatusCode: http.StatusTooManyRequests})
	if err := ClassifyProviderError(wrapped); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("wrapped 429 should classify as quota, got %v", err)
	}
}

func TestClassifyProviderErrorNonQuotaStatus(t *testing.T) {
	err := ClassifyProviderError(&openai.Error{StatusCode: http.StatusInternalServerError})
	if errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("500 must not classify as quota")
	}
	if !errors.Is(err, ErrEstimatorUnavailable) {
		t.Fatalf("non-quota provider failure should be generic, got %v", err)
	}
}

func TestClassifyProviderErrorPlainError(t *testing.T) {
	// Message text mentioning quota must not trigger the quota path.
	err := ClassifyProviderError(errors.New("quota exceeded"))
	if errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("plain error text must not classify as quota")
	}
	if !errors.Is(err, ErrEstimatorUnavailable) {
		t.Fatalf("expected generic estimator error, got %v", err)
	}
}
