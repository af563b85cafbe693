package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"gezi/cmd/fx/backend_fx"
	"gezi/cmd/fx/config_fx"
	"gezi/cmd/fx/controllers_fx"
	"gezi/cmd/fx/db_fx"
	"gezi/cmd/fx/itinerary_fx"
	"gezi/cmd/fx/logger_fx"
	"gezi/cmd/fx/memcache_fx"
	"gezi/cmd/fx/prompt_fx"
	"gezi/internal/api/controllers"
	"gezi/internal/config"
	"gezi/pkg/middleware"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := newApp()
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
}

func newApp() *fx.App {
	return fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		backend_fx.Module,
		itinerary_fx.Module,
		prompt_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}

// Handlers groups the controllers the router needs.
type Handlers struct {
	fx.In

	Health      *controllers.HealthController
	Itineraries *controllers.ItineraryController
	Exports     *controllers.ExportController
	Enrichment  *controllers.EnrichmentController
	Plans       *controllers.PlanController
	Chats       *controllers.ChatController
}

func ProvideRouter(cfg *config.Config, logger *zap.Logger, h Handlers) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	if !cfg.AuthEnabled() {
		logger.Warn("JWT_SECRET not set, plan generation is unauthenticated")
	}
	RegisterRoutes(r, cfg.JWTSecret, h)
	return r
}

func RegisterRoutes(r *gin.Engine, jwtSecret string, h Handlers) {
	r.GET("/health", h.Health.HealthHandler)

	itineraryGroup := r.Group("/itinerary")
	itineraryGroup.GET("/latest", h.Itineraries.LoadLatestHandler)
	itineraryGroup.POST("/parse", h.Itineraries.ParseHandler)
	itineraryGroup.GET("/:chatId", h.Itineraries.GetHandler)
	itineraryGroup.PATCH("/:chatId/days/:dayIndex/activities/:activityIndex/lock", h.Itineraries.ToggleLockHandler)
	itineraryGroup.GET("/:chatId/export/:format", h.Exports.ExportHandler)

	chatGroup := r.Group("/chats")
	chatGroup.POST("", h.Chats.CreateChatHandler)
	chatGroup.POST("/:chatId/messages", h.Chats.SendMessageHandler)
	chatGroup.DELETE("/:chatId", h.Chats.DeleteChatHandler)

	enrichmentGroup := r.Group("/enrichment")
	enrichmentGroup.GET("/airline", h.Enrichment.AirlineHandler)
	enrichmentGroup.GET("/city-image", h.Enrichment.CityImageHandler)

	plansGroup := r.Group("/plans")
	plansGroup.Use(middleware.JWTAuthMiddleware(jwtSecret))
	plansGroup.POST("/generate", h.Plans.GeneratePlanHandler)
}
