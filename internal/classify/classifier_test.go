package classify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier_RulesOnly(t *testing.T) {
	c := NewClassifier(nil, DefaultKeywordTables(), nil)

	got := c.Category(context.Background(), "hackathon coding competition")
	assert.Equal(t, "Technical", got.Name)

	got = c.School(context.Background(), "organized by the law school moot court society legal aid cell")
	assert.Equal(t, "Amity School of Law", got.Name)
}

func TestClassifier_ZeroShotWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"labels":["Workshop","Technical"],"scores":[0.92,0.05]}`))
	}))
	defer srv.Close()

	zs := NewHTTPZeroShot(ZeroShotConfig{URL: srv.URL, Retries: 1}, nil)
	c := NewClassifier(zs, DefaultKeywordTables(), nil)

	got := c.Category(context.Background(), "hackathon coding competition")
	assert.Equal(t, "Workshop", got.Name)
	assert.InDelta(t, 0.92, got.Score, 1e-6)
}

func TestClassifier_ZeroShotFailureFallsBackToRules(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	zs := NewHTTPZeroShot(ZeroShotConfig{URL: srv.URL, Retries: 1}, nil)
	c := NewClassifier(zs, DefaultKeywordTables(), nil)

	got := c.Category(context.Background(), "hackathon coding competition")
	assert.Equal(t, "Technical", got.Name)
	assert.InDelta(t, 0.2, got.Score, 1e-6)
}

func TestHTTPZeroShot_RejectsMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"labels":[],"scores":[]}`))
	}))
	defer srv.Close()

	zs := NewHTTPZeroShot(ZeroShotConfig{URL: srv.URL, Retries: 1}, nil)
	_, err := zs.Classify(context.Background(), "text", []string{"A", "B"})
	require.Error(t, err)
}

func TestHTTPZeroShot_SendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"labels":["A"],"scores":[0.7]}`))
	}))
	defer srv.Close()

	zs := NewHTTPZeroShot(ZeroShotConfig{URL: srv.URL, Token: "hf-token", Retries: 1}, nil)
	got, err := zs.Classify(context.Background(), "text", []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer hf-token", gotAuth)
	assert.Equal(t, "A", got.Name)
}
