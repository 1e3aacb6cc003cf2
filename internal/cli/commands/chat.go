package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lvyanru/aida-chat/internal/cli/tui"
	"github.com/lvyanru/aida-chat/internal/cli/ui"
)

// chatCmd is the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "start an interactive chat with AIDA",
	Long: `Start an interactive chat session with the AIDA conference assistant.

Each message is sent on its own; AIDA does not see earlier turns. While a
reply is pending the input is disabled.`,
	Example: `  # Start interactive chat
  $ aidactl chat

  # Keyboard controls:
  • Enter sends the message
  • ↑↓ / PgUp PgDn scroll the conversation
  • Esc or Ctrl+C quits`,
	RunE: runChat,
}

func init() {
	chatCmd.SilenceUsage = true
}

func runChat(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		ui.PrintError("unexpected argument: %s", args[0])
		fmt.Println("\nRun 'aidactl chat' to start an interactive session.")
		return fmt.Errorf("invalid arguments")
	}

	_, apiClient, err := loadClient()
	if err != nil {
		return err
	}

	program := tui.NewChatProgram(apiClient)
	if err := program.Run(); err != nil {
		return fmt.Errorf("failed to run chat TUI: %w", err)
	}

	return nil
}
