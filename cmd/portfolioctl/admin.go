package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/pkg/jwt"
	ucauth "github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/usecase/auth"

	"github.com/spf13/cobra"
)

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := ucauth.HashPassword(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
}

func newTokenCmd() *cobra.Command {
	var (
		secret   string
		username string
		issuer   string
		ttl      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an admin bearer token without going through login",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if secret == "" {
				return errors.New("--secret is required")
			}
			tok, exp, err := jwt.NewHMACService(secret, issuer, ttl).GenerateAdminToken(username)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\nexpires %s\n", tok, exp.UTC().Format(time.RFC3339))
			return err
		},
	}
	cmd.Flags().StringVar(&secret, "secret", os.Getenv("JWT_SECRET"), "JWT signing secret")
	cmd.Flags().StringVar(&username, "username", os.Getenv("ADMIN_USERNAME"), "admin username to embed")
	cmd.Flags().StringVar(&issuer, "issuer", os.Getenv("APP_NAME"), "token issuer, must match the server APP_NAME")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	return cmd
}
