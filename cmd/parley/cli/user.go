package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parleyhq/parley/internal/domain"
	"github.com/parleyhq/parley/internal/service"
	"github.com/parleyhq/parley/pkg/cryptox"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
		Long:  "Create and inspect user accounts directly against the database. This is how the first admin comes into existence.",
	}

	cmd.AddCommand(newUserCreateCmd())
	cmd.AddCommand(newUserListCmd())
	cmd.AddCommand(newUserSetPasswordCmd())

	return cmd
}

// ---------- user create ----------

func newUserCreateCmd() *cobra.Command {
	var (
		email    string
		name     string
		password string
		role     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		Long:  "Create a user. When --password is omitted a random one is generated and printed once.",
		Example: `  parley user create --email alice@example.com --name "Alice" --role admin
  parley user create --email bob@example.com --password "correct horse battery"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUserCreate(email, name, password, role)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&password, "password", "", "Password (generated when omitted)")
	cmd.Flags().StringVar(&role, "role", domain.RoleMember, "Role: admin or member")
	cmd.MarkFlagRequired("email")

	return cmd
}

func runUserCreate(email, name, password, role string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	generated := false
	if password == "" {
		password, err = cryptox.GeneratePassword()
		if err != nil {
			return fmt.Errorf("generate password: %w", err)
		}
		generated = true
	}

	users := &service.UserService{Store: st}
	user, err := users.CreateUser(context.Background(), email, name, password, role)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	fmt.Println("User created:")
	fmt.Println()
	fmt.Printf("  ID:    %s\n", user.ID)
	fmt.Printf("  Email: %s\n", user.Email)
	fmt.Printf("  Role:  %s\n", user.Role)
	if generated {
		fmt.Println()
		fmt.Printf("  Password: %s\n", password)
		fmt.Println()
		fmt.Println("  Save this password now - it cannot be retrieved again.")
	}
	return nil
}

// ---------- user list ----------

func newUserListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List user accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUserList()
		},
	}

	return cmd
}

func runUserList() error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	users := &service.UserService{Store: st}
	list, err := users.ListUsers(context.Background())
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	if len(list) == 0 {
		fmt.Println("No users yet. Use 'parley user create' to create one.")
		return nil
	}

	fmt.Printf("%-28s %-32s %-8s %-20s\n", "ID", "EMAIL", "ROLE", "CREATED")
	fmt.Printf("%-28s %-32s %-8s %-20s\n", "--", "-----", "----", "-------")
	for _, u := range list {
		fmt.Printf("%-28s %-32s %-8s %-20s\n", u.ID, u.Email, u.Role, u.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	return nil
}

// ---------- user set-password ----------

func newUserSetPasswordCmd() *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "set-password",
		Short: "Replace a user's password",
		Long:  "Replace a user's password. There is no self-service reset flow; this is it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUserSetPassword(email, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&password, "password", "", "New password (generated when omitted)")
	cmd.MarkFlagRequired("email")

	return cmd
}

func runUserSetPassword(email, password string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	generated := false
	if password == "" {
		password, err = cryptox.GeneratePassword()
		if err != nil {
			return fmt.Errorf("generate password: %w", err)
		}
		generated = true
	}

	users := &service.UserService{Store: st}
	if err := users.SetPassword(context.Background(), email, password); err != nil {
		return fmt.Errorf("set password: %w", err)
	}

	fmt.Printf("Password updated for %s\n", email)
	if generated {
		fmt.Println()
		fmt.Printf("  Password: %s\n", password)
		fmt.Println()
		fmt.Println("  Save this password now - it cannot be retrieved again.")
	}
	return nil
}
