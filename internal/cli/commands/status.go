package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lvyanru/aida-chat/internal/cli/ui"
)

// statusCmd checks that the server and its chat backend are reachable
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "check that the AIDA server can reach its backend",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	statusCmd.SilenceUsage = true
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, apiClient, err := loadClient()
	if err != nil {
		return err
	}

	if err := apiClient.Ready(ctx); err != nil {
		ui.PrintError("%s is not ready: %v", apiClient.Server(), err)
		return fmt.Errorf("server not ready")
	}

	ui.PrintSuccess("%s is ready", apiClient.Server())
	return nil
}
