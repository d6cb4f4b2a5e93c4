package policycmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"warsztat/internal/infrastructure/config"
	"warsztat/internal/infrastructure/database"
	"warsztat/internal/infrastructure/permission"
	"warsztat/internal/shared/authorization"
	"warsztat/internal/shared/logger"
)

var (
	env      string
	role     string
	resource string
	action   string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Manage access policies",
		Long:  `Inspect and modify which roles may perform which actions on the request and archive resources.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newListCommand(),
		newGrantCommand(),
		newRevokeCommand(),
	)

	return cmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored policies",
		RunE:  runList,
	}
}

func newGrantCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grant",
		Short: "Grant a role an action on a resource",
		RunE:  runGrant,
	}

	addRuleFlags(cmd)

	return cmd
}

func newRevokeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revoke",
		Short: "Revoke a role's action on a resource",
		RunE:  runRevoke,
	}

	addRuleFlags(cmd)

	return cmd
}

func addRuleFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&role, "role", "r", "", "Role name (required)")
	cmd.Flags().StringVarP(&resource, "resource", "o", "", "Resource, e.g. requests or archive (required)")
	cmd.Flags().StringVarP(&action, "action", "a", "", "Action, e.g. list, delete or archive (required)")
	cmd.MarkFlagRequired("role")
	cmd.MarkFlagRequired("resource")
	cmd.MarkFlagRequired("action")
}

func initEnforcer() (*permission.Enforcer, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	enforcer, err := permission.NewEnforcer(database.Get(), logger.NewLogger())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}

	return enforcer, nil
}

func runList(cmd *cobra.Command, args []string) error {
	enforcer, err := initEnforcer()
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	// Pick up rules written by another process since startup.
	if err := enforcer.LoadPolicy(); err != nil {
		return err
	}

	policies, err := enforcer.Policies()
	if err != nil {
		return err
	}

	fmt.Printf("\nStored policies (%d):\n", len(policies))
	for _, p := range policies {
		fmt.Printf("  %-12s %-10s %s\n", p[0], p[1], p[2])
	}

	return nil
}

func runGrant(cmd *cobra.Command, args []string) error {
	parsedRole, err := authorization.ParseRole(role)
	if err != nil {
		return fmt.Errorf("invalid role %q: %w", role, err)
	}

	enforcer, err := initEnforcer()
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	if err := enforcer.AddPolicy(parsedRole.String(), resource, action); err != nil {
		return err
	}

	fmt.Printf("Granted %s %s on %s\n", parsedRole, action, resource)
	return nil
}

func runRevoke(cmd *cobra.Command, args []string) error {
	parsedRole, err := authorization.ParseRole(role)
	if err != nil {
		return fmt.Errorf("invalid role %q: %w", role, err)
	}

	enforcer, err := initEnforcer()
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	if err := enforcer.RemovePolicy(parsedRole.String(), resource, action); err != nil {
		return err
	}

	fmt.Printf("Revoked %s %s on %s\n", parsedRole, action, resource)
	return nil
}
