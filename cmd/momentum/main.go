package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	adapthttp "momentum/internal/adapter/http"
	"momentum/internal/adapter/postgres"
	"momentum/internal/app"
	"momentum/internal/auth"
	"momentum/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	codec, err := auth.NewCodec(cfg.JWTSecretKey, cfg.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("init token codec")
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("close database")
		}
	}()

	workoutRepo := postgres.NewWorkoutRepo(db)
	srv := adapthttp.New(adapthttp.Services{
		Auth:          app.NewAuthService(db, codec),
		Profiles:      app.NewProfileService(db, db, log.Logger),
		Workouts:      app.NewWorkoutService(workoutRepo, postgres.NewLogRepo(db)),
		Exercises:     app.NewExerciseService(postgres.NewExerciseRepo(db), workoutRepo),
		Meals:         app.NewMealService(postgres.NewMealRepo(db)),
		Progress:      app.NewProgressService(postgres.NewProgressRepo(db)),
		Notifications: app.NewNotificationService(postgres.NewNotificationRepo(db)),
	}, log.Logger)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Str("env", cfg.Env).Msg("starting momentum api")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown server")
	}
}
