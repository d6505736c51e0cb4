package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cruzhacks/portal/db"
	"github.com/cruzhacks/portal/modules/announcements"
	"github.com/cruzhacks/portal/modules/application"
	"github.com/cruzhacks/portal/pkg/config"
	"github.com/cruzhacks/portal/pkg/file"
	"github.com/cruzhacks/portal/pkg/httpserver"
	"github.com/cruzhacks/portal/pkg/jwt"
	"github.com/cruzhacks/portal/pkg/logger"
	"github.com/cruzhacks/portal/pkg/metrics"
	"github.com/cruzhacks/portal/pkg/mongo"
	"github.com/cruzhacks/portal/pkg/pg"
	"github.com/cruzhacks/portal/svc/announcement"
	"github.com/cruzhacks/portal/svc/applicant"
)

type appConfig struct {
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"postgres"`
	ResumeStorage string `env:"RESUME_STORAGE" envDefault:"local"`
	LimitsFile    string `env:"APPLICANT_LIMITS_FILE"`
	MaxBodyBytes  int64  `env:"HTTP_MAX_BODY_BYTES" envDefault:"12582912"` // resume limit plus form overhead
}

var ErrUnknownDriver = errors.New("unknown driver")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("portal stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	var logCfg logger.Config
	if err := config.Load(&logCfg); err != nil {
		return err
	}
	log, err := logger.NewFromConfig(logCfg, "portal",
		logger.WithContextExtractors(logger.RequestIDExtractor),
	)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	limits := applicant.DefaultLimits()
	if cfg.LimitsFile != "" {
		if limits, err = applicant.LoadLimits(cfg.LimitsFile); err != nil {
			return err
		}
		log.InfoContext(ctx, "applicant limits loaded", slog.String("path", cfg.LimitsFile))
	}

	st, err := openStores(ctx, cfg.StorageDriver, log)
	if err != nil {
		return err
	}
	defer st.close()

	resumes, err := openResumeStorage(ctx, cfg.ResumeStorage)
	if err != nil {
		return err
	}

	var jwtCfg jwt.Config
	if err := config.Load(&jwtCfg); err != nil {
		return err
	}
	auth, err := jwt.NewFromConfig(jwtCfg)
	if err != nil {
		return err
	}

	var feedCfg announcements.Config
	if err := config.Load(&feedCfg); err != nil {
		return err
	}

	var httpCfg httpserver.Config
	if err := config.Load(&httpCfg); err != nil {
		return err
	}

	m := metrics.New()

	applicants := applicant.NewService(
		applicant.NewValidator(limits),
		st.applicants,
		resumes,
		applicant.WithLogger(log),
		applicant.WithRecorder(m),
	)
	feed := announcement.NewService(st.announcements,
		announcement.WithLogger(log),
		announcement.WithRecorder(m),
	)

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		m.Middleware,
		middleware.RequestSize(cfg.MaxBodyBytes),
	)

	r.Get("/healthz", httpserver.Liveness())
	r.Get("/readyz", httpserver.Readiness(log, st.checks...))
	r.Handle("/metrics", m.Handler())

	r.Mount("/application", application.New(applicants, auth, application.WithLogger(log)).Handle())
	r.Mount("/announcements", announcements.New(feed, auth, feedCfg, announcements.WithLogger(log)).Handle())

	return httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log)).Run(ctx, r)
}

type stores struct {
	applicants    applicant.Repository
	announcements announcement.Repository
	checks        []httpserver.Check
	close         func()
}

func openStores(ctx context.Context, driver string, log *slog.Logger) (*stores, error) {
	log = log.With(logger.Driver(driver))

	switch driver {
	case "postgres":
		var cfg pg.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		pool, err := pg.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(ctx, pool, cfg, log, pg.WithMigrationsFS(db.Migrations)); err != nil {
			pool.Close()
			return nil, err
		}
		log.InfoContext(ctx, "storage ready")
		return &stores{
			applicants:    applicant.NewPGStore(pool),
			announcements: announcement.NewPGStore(pool),
			checks:        []httpserver.Check{{Name: "postgres", Fn: pg.Healthcheck(pool)}},
			close:         pool.Close,
		}, nil

	case "mongo":
		var cfg mongo.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		database, err := mongo.NewWithDatabase(ctx, cfg)
		if err != nil {
			return nil, err
		}
		client := database.Client()
		disconnect := func() {
			if err := client.Disconnect(context.WithoutCancel(ctx)); err != nil {
				log.Error("mongo disconnect failed", logger.Error(err))
			}
		}

		feedStore := announcement.NewMongoStore(database)
		if err := feedStore.EnsureIndexes(ctx); err != nil {
			disconnect()
			return nil, err
		}
		log.InfoContext(ctx, "storage ready")
		return &stores{
			applicants:    applicant.NewMongoStore(database),
			announcements: feedStore,
			checks:        []httpserver.Check{{Name: "mongo", Fn: mongo.Healthcheck(client)}},
			close:         disconnect,
		}, nil

	default:
		return nil, fmt.Errorf("%w: STORAGE_DRIVER=%q", ErrUnknownDriver, driver)
	}
}

func openResumeStorage(ctx context.Context, driver string) (file.Storage, error) {
	switch driver {
	case "local":
		var cfg file.LocalConfig
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		return file.NewLocalStorage(cfg.Dir, cfg.BaseURL)

	case "s3":
		var cfg file.S3Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		return file.NewS3Storage(ctx, cfg)

	case "none":
		return nil, nil

	default:
		return nil, fmt.Errorf("%w: RESUME_STORAGE=%q", ErrUnknownDriver, driver)
	}
}
