package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lvyanru/aida-chat/internal/cli/conversation"
	"github.com/lvyanru/aida-chat/internal/cli/ui"
)

var askShowSources bool

// askCmd sends a single question and prints the answer
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "ask AIDA a single question",
	Long: `Send one question to AIDA and print the answer, followed by any
source citations the backend returned.`,
	Example: `  # Ask a question
  $ aidactl ask "Who is speaking on day two?"

  # Hide citations
  $ aidactl ask --sources=false "Where is lunch?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askShowSources, "sources", true, "Print source citations")
	askCmd.SilenceUsage = true
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")
	if strings.TrimSpace(question) == "" {
		ui.PrintError("question must not be empty")
		return fmt.Errorf("invalid arguments")
	}
	if n := len([]rune(question)); n > conversation.MaxInputLength {
		ui.PrintError("question is %d characters, the limit is %d", n, conversation.MaxInputLength)
		return fmt.Errorf("invalid arguments")
	}

	_, apiClient, err := loadClient()
	if err != nil {
		return err
	}

	resp, err := apiClient.Chat(context.Background(), question)
	if err != nil {
		ui.PrintErrorBox("Request Failed", conversation.ConnectionError+"\n\n"+err.Error())
		return fmt.Errorf("chat request failed")
	}

	answer := resp.Response
	if strings.TrimSpace(answer) == "" {
		answer = conversation.EmptyReply
	}

	ui.PrintBanner(question)
	fmt.Println(answer)

	if askShowSources {
		if tree := ui.RenderSources(resp.Sources); tree != "" {
			fmt.Println()
			fmt.Println(tree)
		}
	}

	return nil
}
