package components

import (
	"tablebook/internal/infra/readstore"
	repo_impl "tablebook/internal/infra/repository"
	"tablebook/internal/infra/tableinfo"
	"tablebook/internal/pkg/config"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"
	"tablebook/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		func(cfg config.Config) config.TableServiceConfig {
			return cfg.TableService
		},
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		// Read-side repository for queries
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Companion table service client
		fx.Annotate(
			tableinfo.NewClient,
			fx.As(new(shared.TableInfoClient)),
		),
	),
)
