package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lvyanru/aida-chat/internal/cli/client"
	"github.com/lvyanru/aida-chat/internal/cli/config"
	"github.com/lvyanru/aida-chat/internal/cli/ui"
)

const version = "0.1.0"

// serverFlag overrides the saved server address for one invocation
var serverFlag string

// rootCmd is the root command
var rootCmd = &cobra.Command{
	Use:     "aidactl",
	Short:   "AIDA conference assistant CLI",
	Version: version,
	Long: `A command-line client for the AIDA conference assistant. Chat interactively,
ask one-off questions, or create an account.`,
	Example: `  # Start interactive chat
  $ aidactl chat

  # Ask a single question
  $ aidactl ask "When is the keynote?"

  # Create an account against a remote server
  $ aidactl signup -s https://aida.example.com

  # Get help on a specific command
  $ aidactl ask --help`,
}

// Execute executes the root command
func Execute() error {
	rootCmd.SetVersionTemplate(formatVersion())
	return rootCmd.Execute()
}

func init() {
	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&serverFlag, "server", "s", "", "AIDA server address (default from ~/.aidactl/config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(statusCmd)

	// Set custom template with bold uppercase headers
	rootCmd.SetUsageTemplate(usageTemplate())
	rootCmd.SetHelpTemplate(usageTemplate())
}

// loadClient resolves the server address and builds an API client. The
// flag wins over the saved config.
func loadClient() (*config.Config, *client.APIClient, error) {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return nil, nil, fmt.Errorf("config load failed")
	}

	server := cfg.Server
	if serverFlag != "" {
		server = serverFlag
	}

	apiClient, err := client.NewAPIClient(server)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return nil, nil, fmt.Errorf("client creation failed")
	}

	return cfg, apiClient, nil
}

func usageTemplate() string {
	return `{{if .Long}}{{.Long}}

{{end}}` + ui.Styles.Heading.Render("USAGE") + `
  {{.UseLine}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}

{{if .HasExample}}` + ui.Styles.Heading.Render("EXAMPLES") + `
{{.Example}}

{{end}}{{if .HasAvailableSubCommands}}` + ui.Styles.Heading.Render("COMMANDS") + `{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

{{end}}{{if .HasAvailableLocalFlags}}` + ui.Styles.Heading.Render("OPTIONS") + `
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}{{if .HasAvailableInheritedFlags}}` + ui.Styles.Heading.Render("GLOBAL OPTIONS") + `
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}{{if .HasAvailableSubCommands}}Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
}

// formatVersion formats the version output
func formatVersion() string {
	return fmt.Sprintf("aidactl version %s\n", version)
}
