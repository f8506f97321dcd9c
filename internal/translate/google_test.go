package translate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpp-samouczek/lcpp/internal/model"
)

// TestGoogleClient_Translate verifies request parameters and response
// parsing against a stand-in for the gtx endpoint.
func TestGoogleClient_Translate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "gtx", q.Get("client"))
		assert.Equal(t, "en", q.Get("sl"))
		assert.Equal(t, "pl", q.Get("tl"))
		assert.Equal(t, "t", q.Get("dt"))
		assert.Equal(t, "Hello world", q.Get("q"))

		// Two segments, concatenated by the parser.
		fmt.Fprint(w, `[[["Witaj ","Hello ",null],["świecie","world",null]],null,"en"]`)
	}))
	defer srv.Close()

	client := NewGoogleClient(
		model.LangPair{Source: "en", Target: "pl"},
		ClientOptions{BaseURL: srv.URL, MaxRetries: 1},
	)

	out, err := client.Translate(context.Background(), "Hello world")
	require.NoError(t, err)
	assert.Equal(t, "Witaj świecie", out)
}

// TestGoogleClient_RetriesServerErrors verifies that a transient 5xx is
// retried and the eventual success wins.
func TestGoogleClient_RetriesServerErrors(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `[[["Cześć","Hi",null]],null,"en"]`)
	}))
	defer srv.Close()

	client := NewGoogleClient(
		model.LangPair{Source: "en", Target: "pl"},
		ClientOptions{BaseURL: srv.URL, MaxRetries: 3},
	)

	out, err := client.Translate(context.Background(), "Hi")
	require.NoError(t, err)
	assert.Equal(t, "Cześć", out)
	assert.Equal(t, 2, attempts)
}

// TestGoogleClient_MalformedResponse verifies that garbage from the
// endpoint is surfaced as an error, not an empty translation.
func TestGoogleClient_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html>captcha</html>`)
	}))
	defer srv.Close()

	client := NewGoogleClient(
		model.LangPair{Source: "en", Target: "pl"},
		ClientOptions{BaseURL: srv.URL, MaxRetries: 1},
	)

	_, err := client.Translate(context.Background(), "Hi")
	assert.Error(t, err)
}

// TestParseGoogleResponse_EmptySegments verifies the guard against a
// structurally valid but contentless response.
func TestParseGoogleResponse_EmptySegments(t *testing.T) {
	_, err := parseGoogleResponse([]byte(`[[],null,"en"]`))
	assert.Error(t, err)
}
