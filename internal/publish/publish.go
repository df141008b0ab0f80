package publish

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ESloman/cslo/internal/harness"
	"github.com/google/go-github/v63/github"
)

// DefaultContext is the status context slotest publishes under.
const DefaultContext = "slotest/conformance"

// StatusPublisher posts a run's outcome to GitHub as a commit status, so CI
// can gate merges on the conformance suite.
type StatusPublisher struct {
	client *github.Client
	logger harness.Logger
}

// NewStatusPublisher builds a publisher authenticated with the
// GITHUB_TOKEN environment variable.
func NewStatusPublisher(logger harness.Logger) (*StatusPublisher, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN is not set")
	}
	if logger == nil {
		logger = harness.NopLogger{}
	}
	return &StatusPublisher{
		client: github.NewClient(nil).WithAuthToken(token),
		logger: logger,
	}, nil
}

// NewStatusPublisherWithClient builds a publisher around an existing client
// (used by tests with a stub transport).
func NewStatusPublisherWithClient(client *github.Client, logger harness.Logger) *StatusPublisher {
	if logger == nil {
		logger = harness.NopLogger{}
	}
	return &StatusPublisher{client: client, logger: logger}
}

// Publish creates a commit status for sha in repo ("owner/name"). A report
// with no failures publishes success; anything else publishes failure. The
// description carries the pass/fail counts.
func (p *StatusPublisher) Publish(ctx context.Context, repo, sha, statusContext string, report *harness.Report) error {
	parts := strings.SplitN(repo, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("repo must be in owner/name format, got %q", repo)
	}
	if statusContext == "" {
		statusContext = DefaultContext
	}

	state := "success"
	if len(report.Failed) > 0 || report.Interrupted {
		state = "failure"
	}

	status := &github.RepoStatus{
		State:       github.String(state),
		Context:     github.String(statusContext),
		Description: github.String(report.Summary()),
	}

	_, _, err := p.client.Repositories.CreateStatus(ctx, parts[0], parts[1], sha, status)
	if err != nil {
		return fmt.Errorf("failed to create commit status: %w", err)
	}
	p.logger.Info("published commit status", "repo", repo, "sha", sha, "state", state)
	return nil
}
