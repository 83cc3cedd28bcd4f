package bootstrap

import (
	"context"
	"log/slog"

	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/user"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/infra"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/pkg/clock"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/pkg/config"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/pkg/errs"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/pkg/password"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/usecase/commands"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(SeedOperator),
)

// SeedOperator provisions a single operator account when the seed config is
// set, so the confirm/cancel/convert endpoints are usable on a fresh
// process. The account lives only as long as the process does.
func SeedOperator(cfg config.Config, users commands.UserRepository, clk clock.Clock) error {
	if cfg.Seed.OperatorEmail == "" || cfg.Seed.OperatorPassword == "" {
		return nil
	}

	email, err := user.NewEmail(cfg.Seed.OperatorEmail)
	if err != nil {
		return errs.Wrap(err, "invalid SEED_OPERATOR_EMAIL")
	}

	hash, err := password.HashPassword(cfg.Seed.OperatorPassword)
	if err != nil {
		return errs.Wrap(err, "failed to hash operator password")
	}

	operator := user.NewUser(email, "Operations", hash, user.RoleOperator, clk.Now())
	if err := users.Create(context.Background(), operator); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil
		}
		return errs.Wrap(err, "failed to create operator account")
	}

	slog.Info("operator account seeded", "user_id", operator.ID())
	return nil
}
