package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/ESloman/cslo/internal/harness"
	"github.com/google/go-github/v63/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedStatus struct {
	State       string `json:"state"`
	Context     string `json:"context"`
	Description string `json:"description"`
}

func newStubbedPublisher(t *testing.T, captured *capturedStatus) *StatusPublisher {
	t.Helper()
	handler := http.NewServeMux()
	handler.HandleFunc("/repos/ESloman/cslo/statuses/abc123", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(captured); err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id": 1}`)
	})
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client := github.NewClient(nil)
	base, err := url.Parse(ts.URL + "/")
	require.NoError(t, err)
	client.BaseURL = base

	return NewStatusPublisherWithClient(client, nil)
}

func TestPublishSuccessStatus(t *testing.T) {
	var captured capturedStatus
	publisher := newStubbedPublisher(t, &captured)

	report := &harness.Report{Passed: []string{"a.slo", "b.slo"}, Failed: []string{}}
	err := publisher.Publish(context.Background(), "ESloman/cslo", "abc123", "", report)
	require.NoError(t, err)

	assert.Equal(t, "success", captured.State)
	assert.Equal(t, DefaultContext, captured.Context)
	assert.Equal(t, "2 passed, 0 failed", captured.Description)
}

func TestPublishFailureStatus(t *testing.T) {
	var captured capturedStatus
	publisher := newStubbedPublisher(t, &captured)

	report := &harness.Report{Passed: []string{"a.slo"}, Failed: []string{"b.slo"}}
	err := publisher.Publish(context.Background(), "ESloman/cslo", "abc123", "ci/slo", report)
	require.NoError(t, err)

	assert.Equal(t, "failure", captured.State)
	assert.Equal(t, "ci/slo", captured.Context)
}

func TestPublishInterruptedRunIsFailure(t *testing.T) {
	var captured capturedStatus
	publisher := newStubbedPublisher(t, &captured)

	report := &harness.Report{Passed: []string{"a.slo"}, Interrupted: true}
	err := publisher.Publish(context.Background(), "ESloman/cslo", "abc123", "", report)
	require.NoError(t, err)

	assert.Equal(t, "failure", captured.State)
}

func TestPublishRejectsBadRepoFormat(t *testing.T) {
	var captured capturedStatus
	publisher := newStubbedPublisher(t, &captured)

	err := publisher.Publish(context.Background(), "not-a-repo", "abc123", "", &harness.Report{})
	require.Error(t, err)
}

func TestNewStatusPublisherRequiresToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	_, err := NewStatusPublisher(nil)
	require.Error(t, err)
}
