package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/parleyhq/parley/internal/domain"
	"github.com/parleyhq/parley/internal/service"
)

func newKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "key",
		Aliases: []string{"apikey"},
		Short:   "Manage API keys",
		Long:    "Mint, list, and revoke API keys directly against the database. Normally keys are managed over the API; this exists for automation and recovery.",
	}

	cmd.AddCommand(newKeyCreateCmd())
	cmd.AddCommand(newKeyListCmd())
	cmd.AddCommand(newKeyRevokeCmd())

	return cmd
}

// ---------- key create ----------

func newKeyCreateCmd() *cobra.Command {
	var (
		userEmail   string
		name        string
		permissions []string
		expiresIn   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new API key",
		Long: fmt.Sprintf(
			"Mint an API key for a user. The raw key is shown once and cannot be retrieved again.\n\nKnown permissions: %s",
			strings.Join(domain.AllPermissions, ", "),
		),
		Example: `  parley key create --user alice@example.com --name zapier --permissions read_contacts,send_message
  parley key create --user alice@example.com --name ci --permissions read_messages --expires-in 720h`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeyCreate(userEmail, name, permissions, expiresIn)
		},
	}

	cmd.Flags().StringVar(&userEmail, "user", "", "Owner's email address (required)")
	cmd.Flags().StringVar(&name, "name", "", "Human-readable label for the key (required)")
	cmd.Flags().StringSliceVar(&permissions, "permissions", nil, "Permissions to grant, comma separated (none grants nothing)")
	cmd.Flags().DurationVar(&expiresIn, "expires-in", 0, "Lifetime, e.g. 720h (0 means the key never expires)")
	cmd.MarkFlagRequired("user")
	cmd.MarkFlagRequired("name")

	return cmd
}

func runKeyCreate(userEmail, name string, permissions []string, expiresIn time.Duration) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()

	users := &service.UserService{Store: st}
	owner, err := users.GetUserByEmail(ctx, userEmail)
	if err != nil {
		return fmt.Errorf("resolve user %q: %w", userEmail, err)
	}

	var expiresAt *time.Time
	if expiresIn > 0 {
		t := time.Now().Add(expiresIn).UTC()
		expiresAt = &t
	}

	keys := &service.APIKeyService{Store: st}
	key, rawKey, err := keys.CreateAPIKey(ctx, owner.ID, name, permissions, expiresAt)
	if err != nil {
		return fmt.Errorf("create api key: %w", err)
	}

	fmt.Println("API key created:")
	fmt.Println()
	fmt.Printf("  Key:         %s\n", rawKey)
	fmt.Printf("  ID:          %s\n", key.ID)
	fmt.Printf("  Owner:       %s\n", owner.Email)
	fmt.Printf("  Permissions: %s\n", formatPermissions(key.Permissions))
	if key.ExpiresAt != nil {
		fmt.Printf("  Expires:     %s\n", key.ExpiresAt.Format(time.RFC3339))
	}
	fmt.Println()
	fmt.Println("  Save this key now - it cannot be retrieved again.")
	return nil
}

// ---------- key list ----------

func newKeyListCmd() *cobra.Command {
	var userEmail string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List a user's API keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeyList(userEmail)
		},
	}

	cmd.Flags().StringVar(&userEmail, "user", "", "Owner's email address (required)")
	cmd.MarkFlagRequired("user")

	return cmd
}

func runKeyList(userEmail string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()

	users := &service.UserService{Store: st}
	owner, err := users.GetUserByEmail(ctx, userEmail)
	if err != nil {
		return fmt.Errorf("resolve user %q: %w", userEmail, err)
	}

	keys := &service.APIKeyService{Store: st}
	list, err := keys.ListAPIKeys(ctx, owner.ID)
	if err != nil {
		return fmt.Errorf("list api keys: %w", err)
	}

	if len(list) == 0 {
		fmt.Printf("No API keys for %s.\n", owner.Email)
		return nil
	}

	fmt.Printf("%-28s %-16s %-14s %-10s %-40s\n", "ID", "NAME", "PREFIX", "STATUS", "PERMISSIONS")
	fmt.Printf("%-28s %-16s %-14s %-10s %-40s\n", "--", "----", "------", "------", "-----------")
	for _, k := range list {
		status := "active"
		switch {
		case k.Revoked():
			status = "revoked"
		case k.Expired(time.Now()):
			status = "expired"
		}
		fmt.Printf("%-28s %-16s %-14s %-10s %-40s\n", k.ID, k.Name, k.KeyPrefix, status, formatPermissions(k.Permissions))
	}

	return nil
}

// ---------- key revoke ----------

func newKeyRevokeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revoke <key-id>",
		Short: "Revoke an API key by ID",
		Long:  "Permanently revoke a key. The record is kept for the audit trail; revocation cannot be undone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeyRevoke(args[0])
		},
	}

	return cmd
}

func runKeyRevoke(keyID string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	keys := &service.APIKeyService{Store: st}
	if err := keys.RevokeAPIKeyByID(context.Background(), keyID); err != nil {
		return fmt.Errorf("revoke api key: %w", err)
	}

	fmt.Printf("Revoked API key %s\n", keyID)
	return nil
}

func formatPermissions(perms domain.PermissionSet) string {
	if len(perms) == 0 {
		return "(none)"
	}
	return strings.Join(perms.Slice(), ", ")
}
