package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/mmtc/internal/app"
	"github.com/polkiloo/mmtc/internal/config"
	"github.com/polkiloo/mmtc/internal/logger"
	"github.com/polkiloo/mmtc/internal/pkg/auth"
	"github.com/polkiloo/mmtc/internal/server/http/handlers"
	"github.com/polkiloo/mmtc/internal/server/http/router"
	"github.com/polkiloo/mmtc/internal/storage/postgres"
	"github.com/polkiloo/mmtc/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(
			func(s *postgres.Storage) app.HealthChecker { return s },
			func(f *app.PlacementFacade) handlers.PlacementFacade { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
