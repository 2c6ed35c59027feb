package cli

import (
	"github.com/spf13/cobra"

	apperrors "github.com/mennaheldaly/Daytrader/internal/errors"
)

// addUserCommands adds account management commands.
func addUserCommands(rootCmd *cobra.Command, app *App) {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Account management",
		Long:  "Register accounts and verify credentials against the local user database.",
	}

	userCmd.AddCommand(newUserRegisterCmd(app))
	userCmd.AddCommand(newUserLoginCmd(app))
	userCmd.AddCommand(newUserInfoCmd(app))

	rootCmd.AddCommand(userCmd)
}

func newUserRegisterCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register USERNAME",
		Short: "Register a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Users == nil {
				output.Error("User database is unavailable")
				return apperrors.ErrDatabaseError
			}

			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			user, err := app.Users.Register(args[0], email, password)
			if err != nil {
				var regErr *apperrors.RegistrationError
				if apperrors.As(err, &regErr) {
					// A taken username or email is a decline, not a failure.
					output.Warning("%s", regErr.Message)
					return nil
				}
				return err
			}

			if output.IsJSON() {
				return output.JSON(user)
			}
			output.Success("✓ Account %s registered", user.Username)
			return nil
		},
	}
	cmd.Flags().StringP("email", "e", "", "account email address")
	cmd.Flags().StringP("password", "p", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newUserLoginCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login USERNAME",
		Short: "Verify credentials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Users == nil {
				output.Error("User database is unavailable")
				return apperrors.ErrDatabaseError
			}

			password, _ := cmd.Flags().GetString("password")
			ok := app.Users.Authenticate(args[0], password)

			if output.IsJSON() {
				return output.JSON(map[string]bool{"authenticated": ok})
			}
			if ok {
				output.Success("✓ Credentials valid")
			} else {
				output.Error("✗ Invalid username or password")
			}
			return nil
		},
	}
	cmd.Flags().StringP("password", "p", "", "account password")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newUserInfoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "info USERNAME",
		Short: "Show account details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Users == nil {
				output.Error("User database is unavailable")
				return apperrors.ErrDatabaseError
			}

			user, ok := app.Users.UserInfo(args[0])
			if !ok {
				if output.IsJSON() {
					return output.JSON(nil)
				}
				output.Warning("No account named %s", args[0])
				return nil
			}

			if output.IsJSON() {
				return output.JSON(user)
			}
			output.Bold(user.Username)
			output.Printf("  ID:     %d\n", user.ID)
			output.Printf("  Email:  %s\n", user.Email)
			return nil
		},
	}
}
