package internal

import (
	"github.com/ESloman/cslo/internal/harness"
	"github.com/ESloman/cslo/internal/publish"
	"github.com/spf13/cobra"
)

func NewPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish a saved run report as a GitHub commit status",
		Long: `Reads a report JSON written by 'slotest run --report' and creates a commit
status on the given repository and SHA. Authentication uses the
GITHUB_TOKEN environment variable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reportPath, _ := cmd.Flags().GetString("report")
			repo, _ := cmd.Flags().GetString("repo")
			sha, _ := cmd.Flags().GetString("sha")
			statusContext, _ := cmd.Flags().GetString("context")

			report, err := harness.LoadReport(reportPath)
			if err != nil {
				return err
			}

			logger := newLogger(cmd)
			publisher, err := publish.NewStatusPublisher(logger)
			if err != nil {
				return err
			}

			return publisher.Publish(cmd.Context(), repo, sha, statusContext, report)
		},
	}

	cmd.Flags().String("report", "", "Path to a report JSON written by 'slotest run --report'")
	cmd.Flags().String("repo", "", "Target repository in owner/name format")
	cmd.Flags().String("sha", "", "Commit SHA to attach the status to")
	cmd.Flags().String("context", publish.DefaultContext, "Status context name")
	_ = cmd.MarkFlagRequired("report")
	_ = cmd.MarkFlagRequired("repo")
	_ = cmd.MarkFlagRequired("sha")

	return cmd
}
