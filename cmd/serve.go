package cmd

import (
	"fmt"
	"net/http"
	"time"

	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/pkg/auth"
	"droscher.com/Foodgram/pkg/metrics"
	"droscher.com/Foodgram/pkg/render"
	"droscher.com/Foodgram/pkg/repository"
	"droscher.com/Foodgram/pkg/server"
	"droscher.com/Foodgram/pkg/server/api/v1/apiv1connect"
	"droscher.com/Foodgram/pkg/validation"
)

const (
	timeout     = 5 * time.Second
	metricsPath = "/metrics"
)

type ServeCmd struct {
	ConfigFile string `default:".foodgram.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(ctx *Context) error {
	logConfig := zap.NewProductionConfig()
	if ctx.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	authManager := auth.NewAuthManager(conf, repo, logger)
	options := server.HandlerOptions(
		server.NewLoggingInterceptor(logger),
		metrics.NewMetricsInterceptor(),
		server.NewErrorInterceptor(logger),
		authManager.GrpcAuthInterceptor(),
	)

	validator := validation.New(conf.Recipes)
	renderer := render.NewTextRenderer(conf.ShoppingList)

	mux := http.NewServeMux()

	mux.Handle(apiv1connect.NewRecipeServiceHandler(
		server.NewRecipeServer(repo, repo, validator, renderer, conf.Recipes, logger), options...))
	mux.Handle(apiv1connect.NewUserServiceHandler(
		server.NewUserServer(repo, repo, validator, conf.Recipes, logger), options...))
	mux.Handle(apiv1connect.NewCatalogServiceHandler(
		server.NewCatalogServer(repo, logger), options...))

	checker := grpchealth.NewStaticChecker(apiv1connect.RecipeServiceName, apiv1connect.UserServiceName, apiv1connect.CatalogServiceName)
	mux.Handle(grpchealth.NewHandler(checker))
	mux.Handle(metricsPath, metrics.Handler())

	address := fmt.Sprintf(":%d", conf.Server.Port)

	serverHandler := h2c.NewHandler(configureCORS(mux), &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	logger.Info("starting server", zap.String("address", address), zap.Int("procedures", len(apiv1connect.Procedures())))

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

func configureCORS(mux *http.ServeMux) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS", "HEAD"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"connect-accept-encoding",
			"connect-content-encoding",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-encoding",
			"content-length",
			"content-type",
			"grpc-accept-encoding",
			"grpc-encoding",
			"grpc-timeout",
			"origin",
			"referer",
			"user-agent",
			"x-grpc-web",
			"x-request-id",
			"x-user-agent",
		},
		ExposedHeaders: []string{
			"connect-protocol-version",
			"content-disposition",
			"grpc-message",
			"grpc-status",
			"grpc-status-details-bin",
			"x-request-id",
		},
		MaxAge:             86400, // 24 hours
		OptionsPassthrough: false,
	})

	return corsOpts.Handler(mux)
}
