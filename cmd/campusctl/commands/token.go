package commands

import (
	"errors"
	"fmt"
	"time"

	"campusfeed/internal/identity"
	"campusfeed/internal/models"
	"campusfeed/internal/service"

	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		userID string
		role   string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for a user",
		Example: `  campusctl token --user 5f0c... --role faculty --ttl 24h`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.JWTSecretKey == "" {
				return errors.New("JWT_SECRET_KEY не установлен")
			}

			token, err := service.NewAuthService(cfg.JWTSecretKey).
				IssueToken(identity.Identity{UserID: userID, Role: models.Role(role)}, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID to embed in the token")
	cmd.Flags().StringVar(&role, "role", string(models.RoleStudent), "Role: student, faculty or staff")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	cmd.MarkFlagRequired("user")

	return cmd
}
