package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"deckforge/internal/auth"
	"deckforge/internal/config"
)

// authCmd groups session management commands.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the deckforge session",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with an email and access token",
	RunE:  runAuthLogin,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and remove the stored credential",
	RunE:  runAuthLogout,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE:  runAuthStatus,
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)
}

func sessionWatcher() (*auth.Watcher, error) {
	dir, err := config.ConfigDir()
	if err != nil {
		return nil, err
	}
	return auth.NewWatcher(dir), nil
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	w, err := sessionWatcher()
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Email: ")
	email, _ := reader.ReadString('\n')
	fmt.Print("Name (optional): ")
	name, _ := reader.ReadString('\n')

	fmt.Print("Access token: ")
	tokenBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("reading token: %w", err)
	}

	if err := w.Login(strings.TrimSpace(email), strings.TrimSpace(name), strings.TrimSpace(string(tokenBytes))); err != nil {
		return err
	}
	fmt.Printf("Signed in as %s\n", strings.TrimSpace(email))
	return nil
}

func runAuthLogout(cmd *cobra.Command, args []string) error {
	w, err := sessionWatcher()
	if err != nil {
		return err
	}
	if err := w.Logout(); err != nil {
		return err
	}
	fmt.Println("Signed out")
	return nil
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	w, err := sessionWatcher()
	if err != nil {
		return err
	}
	s := w.Current()
	if !s.SignedIn() {
		fmt.Println("Signed out")
		return nil
	}
	fmt.Printf("Signed in as %s\n", s.User.Email)
	return nil
}
