// package testing contains shared testing utilities
package testing

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/desertthunder/tfive/internal/models"
)

// MockProvider is a test double for [services.Provider]. It records the
// queries and categories it receives.
type MockProvider struct {
	Tracks     []models.TrackSummary
	Err        error
	Queries    []string
	Categories []string
}

func (m *MockProvider) Search(ctx context.Context, query string, limit int) ([]models.TrackSummary, error) {
	m.Queries = append(m.Queries, query)
	return m.Tracks, m.Err
}

func (m *MockProvider) SearchByCategory(ctx context.Context, category string, limit int) ([]models.TrackSummary, error) {
	m.Categories = append(m.Categories, category)
	return m.Tracks, m.Err
}

func (m *MockProvider) Available() bool { return true }
func (m *MockProvider) Name() string    { return "mock" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
	fn       func(*http.Request) (*http.Response, error)
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

// NewRoundTripperFunc builds a round tripper from a request handler, for
// tests that need to vary responses per request.
func NewRoundTripperFunc(fn func(*http.Request) (*http.Response, error)) *MockRoundTripper {
	return &MockRoundTripper{fn: fn}
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if m.fn != nil {
		return m.fn(req)
	}
	return m.response, m.err
}

// JSONResponse builds an *http.Response with the given status and JSON body.
func JSONResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}
