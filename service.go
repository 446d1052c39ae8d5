package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ewintr.nl/hobbyplan/assemble"
	"ewintr.nl/hobbyplan/config"
	"ewintr.nl/hobbyplan/curate"
	"ewintr.nl/hobbyplan/fetcher"
	"ewintr.nl/hobbyplan/handler"
	"ewintr.nl/hobbyplan/hobby"
	"ewintr.nl/hobbyplan/plantext"
	"ewintr.nl/hobbyplan/process"
	"ewintr.nl/hobbyplan/storage"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to load configuration: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg)

	// plans
	var plans storage.PlanRepository = storage.NewMemory()
	if cfg.PostgresEnabled() {
		db, err := sql.Open("postgres", cfg.PostgresDSN())
		if err != nil {
			logger.Error("unable to open postgres", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer db.Close()
		postgres, err := storage.NewPostgres(ctx, db)
		if err != nil {
			logger.Error("unable to connect to postgres", slog.String("error", err.Error()))
			os.Exit(1)
		}
		plans = postgres
		logger.Info("storing plans in postgres", slog.String("host", cfg.PostgresHost))
	}

	// curated video archive
	var archive storage.VideoArchive
	if cfg.WeaviateHost != "" {
		vecClient, err := storage.NewWeaviate(cfg.WeaviateHost, cfg.WeaviateAPIKey, cfg.OpenAIAPIKey)
		if err != nil {
			logger.Error("unable to create weaviate client", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := vecClient.EnsureSchema(ctx); err != nil {
			logger.Error("unable to prepare video archive", slog.String("error", err.Error()))
			os.Exit(1)
		}
		archive = vecClient
	}

	// video sources
	var (
		searcher curate.VideoSearcher
		details  curate.CandidateFetcher
	)
	if cfg.YoutubeAPIKey != "" {
		ytClient, err := youtube.NewService(ctx, option.WithAPIKey(cfg.YoutubeAPIKey))
		if err != nil {
			logger.Error("unable to create youtube service", slog.String("error", err.Error()))
			os.Exit(1)
		}
		limiter := rate.NewLimiter(rate.Limit(cfg.YoutubeRPS), int(cfg.YoutubeRPS)+1)
		yt := fetcher.NewYoutube(ytClient, limiter, fetcher.NewBreaker(fetcher.DefaultBreakerConfig("youtube"), logger), logger)
		searcher, details = yt, yt

		if cfg.RedisAddr != "" {
			cache, err := fetcher.NewRedisCache(ctx, cfg.RedisAddr)
			if err != nil {
				logger.Warn("search cache disabled", slog.String("error", err.Error()))
			} else {
				defer cache.Close()
				searcher = fetcher.NewCachedSearcher(yt, cache, cfg.SearchCacheTTL, logger)
			}
		}
	} else {
		logger.Warn("no youtube api key, using verified and generic videos only")
	}
	prober := fetcher.NewEmbedProber(&http.Client{Timeout: cfg.ProbeTimeout}, "", logger)

	// text
	var completer plantext.Completer
	if cfg.OpenAIAPIKey != "" {
		completer = fetcher.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	} else {
		logger.Warn("no openai api key, using fallback plan text only")
	}

	curator := curate.NewCurator(searcher, details, prober, curate.Config{
		CallTimeout:  cfg.SearchTimeout,
		ProbeTimeout: cfg.ProbeTimeout,
	}, logger)
	planner := process.NewPlanner(
		hobby.NewNormalizer(),
		plantext.NewGenerator(completer, cfg.TextTimeout, logger),
		curator,
		assemble.NewAssembler(assemble.NewProductCatalog(cfg.AffiliateTag)),
		plans,
		archive,
		cfg.VideoParallelism,
		logger,
	)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", handler.NewServer(planner, logger))
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.APIPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", slog.String("error", err.Error()))
			stop()
		}
	}()
	logger.Info("http server started", slog.Int("port", cfg.APIPort))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("unable to shut down http server", slog.String("error", err.Error()))
	}
	logger.Info("service stopped")
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
