package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var signupCmd = &cobra.Command{
	Use:   "signup <name> <email> <password>",
	Short: "Create an account and log in",
	Args:  cobra.ExactArgs(3),
	RunE:  runSignup,
}

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Log in and store the session",
	Args:  cobra.ExactArgs(2),
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(signupCmd, loginCmd, logoutCmd, whoamiCmd)
}

func runSignup(cmd *cobra.Command, args []string) error {
	c, err := apiClient(false)
	if err != nil {
		return err
	}

	user, token, err := c.Signup(args[0], args[1], args[2])
	if err != nil {
		return err
	}

	session, err := loadSession()
	if err != nil {
		return err
	}
	session.Server = resolveServer(session)
	session.Token = token
	if err := saveSession(session); err != nil {
		return err
	}

	fmt.Printf("Account created for %s (%s)\n", user.Name, user.Email)
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	c, err := apiClient(false)
	if err != nil {
		return err
	}

	token, err := c.Login(args[0], args[1])
	if err != nil {
		return err
	}

	session, err := loadSession()
	if err != nil {
		return err
	}
	session.Server = resolveServer(session)
	session.Token = token
	if err := saveSession(session); err != nil {
		return err
	}

	fmt.Println("Logged in")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	c, err := apiClient(true)
	if err != nil {
		return err
	}

	user, err := c.Profile()
	if err != nil {
		return err
	}

	fmt.Printf("%s <%s> (since %s)\n", user.Name, user.Email, user.CreatedAt.Format("2006-01-02"))
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	session, err := loadSession()
	if err != nil {
		return err
	}
	session.Token = ""
	if err := saveSession(session); err != nil {
		return err
	}

	fmt.Println("Logged out")
	return nil
}
