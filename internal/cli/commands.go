package cli

import (
	"errors"

	"MockAuthPortal/internal/logs"
	"MockAuthPortal/internal/models"
	"MockAuthPortal/internal/validation"

	"github.com/spf13/cobra"
)

var errInvalidInput = errors.New("invalid input")

func newSignupCmd(root *rootConfig) *cobra.Command {
	var data models.SignupData

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a new account",
		Long: "Create a new account. Values not given as flags are prompted for. " +
			"The portal starts a session on success, which is kept in the session file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range []struct {
				flag, label string
				echo        bool
				dst         *string
			}{
				{"name", "Name", true, &data.Name},
				{"email", "Email", true, &data.Email},
				{"password", "Password", false, &data.Password},
				{"confirm-password", "Confirm password", false, &data.ConfirmPassword},
			} {
				if err := promptMissing(cmd, p.flag, p.label, p.echo, p.dst); err != nil {
					return err
				}
			}
			if err := reportFieldErrors(validation.ValidateSignup(data)); err != nil {
				return err
			}
			c, err := root.client()
			if err != nil {
				return err
			}
			res, err := c.Signup(cmd.Context(), data)
			if err != nil {
				return err
			}
			logs.Print("Account created for %s", res.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&data.Name, "name", "", "full name")
	cmd.Flags().StringVar(&data.Email, "email", "", "email address")
	cmd.Flags().StringVar(&data.Password, "password", "", "password")
	cmd.Flags().StringVar(&data.ConfirmPassword, "confirm-password", "", "password again")
	return cmd
}

func newLoginCmd(root *rootConfig) *cobra.Command {
	var data models.LoginData

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with an existing account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := promptMissing(cmd, "email", "Email", true, &data.Email); err != nil {
				return err
			}
			if err := promptMissing(cmd, "password", "Password", false, &data.Password); err != nil {
				return err
			}
			if err := reportFieldErrors(validation.ValidateLogin(data)); err != nil {
				return err
			}
			c, err := root.client()
			if err != nil {
				return err
			}
			res, err := c.Login(cmd.Context(), data)
			if err != nil {
				return err
			}
			logs.Print("Welcome, %s!", res.User.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&data.Email, "email", "", "email address")
	cmd.Flags().StringVar(&data.Password, "password", "", "password")
	return cmd
}

func newWhoamiCmd(root *rootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the currently logged in user",
		Long: "Print the currently logged in user. A session the portal no longer " +
			"accepts is removed from the session file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}
			user, err := c.Me(cmd.Context())
			if err != nil {
				return err
			}
			if user == nil {
				logs.Print("Not logged in")
				return nil
			}
			logs.Print("ID:    %s", user.ID)
			logs.Print("Name:  %s", user.Name)
			logs.Print("Email: %s", user.Email)
			return nil
		},
	}
}

func newLogoutCmd(root *rootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}
			if err := c.Logout(cmd.Context()); err != nil {
				return err
			}
			logs.Print("Logged out")
			return nil
		},
	}
}

func reportFieldErrors(errs validation.FieldErrors) error {
	if len(errs) == 0 {
		return nil
	}
	for _, fe := range errs {
		logs.Error("%s: %s", fe.Field, fe.Message)
	}
	return errInvalidInput
}
