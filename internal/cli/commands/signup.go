package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/lvyanru/aida-chat/internal/cli/client"
	"github.com/lvyanru/aida-chat/internal/cli/config"
	"github.com/lvyanru/aida-chat/internal/cli/ui"
)

var signupEmail string

// signupCmd is the signup command
var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "create an AIDA account",
	Long: `Create an account with the AIDA authentication service.

The email and password are passed through unchanged; the authentication
service decides whether they are acceptable. No session is created.`,
	Example: `  # Sign up (prompts for email and password)
  $ aidactl signup

  # Sign up with a given email
  $ aidactl signup -e attendee@example.com`,
	Args: cobra.NoArgs,
	RunE: runSignup,
}

func init() {
	signupCmd.Flags().StringVarP(&signupEmail, "email", "e", "", "Email address for the new account")

	// Silence usage to avoid showing help on every error
	signupCmd.SilenceUsage = true
}

func runSignup(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, apiClient, err := loadClient()
	if err != nil {
		return err
	}

	// 1. Prompt for email if not provided
	if signupEmail == "" {
		prompt := &survey.Input{
			Message: "Email:",
			Default: cfg.Email,
		}
		if err := survey.AskOne(prompt, &signupEmail, survey.WithValidator(survey.Required)); err != nil {
			ui.PrintError("failed to read email: %v", err)
			return fmt.Errorf("input failed")
		}
	}

	// 2. Prompt for password (hidden input)
	var password string
	prompt := &survey.Password{
		Message: "Password:",
	}
	if err := survey.AskOne(prompt, &password, survey.WithValidator(survey.Required)); err != nil {
		ui.PrintError("failed to read password: %v", err)
		return fmt.Errorf("input failed")
	}

	ui.PrintInfo("Connecting to %s...", apiClient.Server())

	// 3. Call signup API
	result, err := apiClient.SignUp(ctx, signupEmail, password)
	if err != nil {
		ui.PrintErrorBox("Signup Failed", signupFailure(err))
		return fmt.Errorf("signup failed")
	}

	// 4. Remember the email and server for next time
	cfg.Email = signupEmail
	cfg.Server = apiClient.Server()
	if err := cfg.Save(); err != nil {
		ui.PrintWarning("failed to save config: %v", err)
	}

	configPath, _ := config.GetConfigPath()
	ui.PrintSuccessBox("✓ "+result.Message, fmt.Sprintf(`Email:         %s
Config saved:  %s`, signupEmail, configPath))

	fmt.Println()
	ui.PrintInfo("Check your inbox if the service asks you to confirm the address.")
	ui.PrintBold("  aidactl chat    # Start chatting with AIDA")

	return nil
}

// signupFailure prefers the server's own message, e.g. "User already registered"
func signupFailure(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
