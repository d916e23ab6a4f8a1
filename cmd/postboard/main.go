package main

import (
	"context"
	"log/slog"
	"os"

	"postboard/config"
	"postboard/internal/delivery"
	"postboard/internal/delivery/http"
	"postboard/internal/delivery/http/middleware"
	"postboard/internal/delivery/http/router/handler"
	"postboard/internal/infra/auth"
	logs "postboard/internal/infra/log"
	"postboard/internal/infra/mail"
	"postboard/internal/infra/persistence/gormstore"
	"postboard/internal/infra/pubsub"
	"postboard/internal/infra/qrcode"
	"postboard/internal/infra/storage"
	"postboard/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		gormstore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			gormstore.NewUserRepository,
			gormstore.NewPostRepository,
			gormstore.NewCommentRepository,
			gormstore.NewLikeRepository,
			gormstore.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			mail.NewMailer,
			storage.New,
			pubsub.NewEventPublisher,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewIdentityService,
			impl.NewPostService,
			impl.NewFileService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewPostHandler,
			handler.NewFileHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
