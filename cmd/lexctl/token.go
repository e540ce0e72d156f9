package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordbot-backend/internal/auth"
)

func newTokenCommand() *cobra.Command {
	var owner int64

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for an owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOwner(owner); err != nil {
				return err
			}
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}

			token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL).
				GenerateAccessToken(owner)
			if err != nil {
				return fmt.Errorf("generate token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	addOwnerFlag(cmd, &owner)
	return cmd
}
