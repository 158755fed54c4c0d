package auth

import (
	"go.uber.org/fx"

	"github.com/polkiloo/mmtc/internal/config"
)

// PasswordCost is the bcrypt work factor used for stored user passwords.
const PasswordCost = 12

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(PasswordCost)
}

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) Strategy {
	return NewJWTStrategy(p.Config.TokenSecret, Options{TTL: p.Config.TokenTTL})
}
