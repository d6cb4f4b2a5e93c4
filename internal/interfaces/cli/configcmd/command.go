package configcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"warsztat/internal/infrastructure/config"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newShowCommand())

	return cmd
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  `Print the configuration after merging defaults, the config file and environment variables. Secrets are masked.`,
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Copy before masking so the loaded config stays intact.
	masked := *cfg
	masked.Auth.AdminPassword = mask(masked.Auth.AdminPassword)
	masked.Auth.JWTSecret = mask(masked.Auth.JWTSecret)
	masked.Email.SMTPPassword = mask(masked.Email.SMTPPassword)
	masked.Redis.Password = mask(masked.Redis.Password)

	out, err := yaml.Marshal(&masked)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	fmt.Fprintf(os.Stdout, "# effective configuration (environment: %s)\n%s", env, out)
	return nil
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "****"
}
