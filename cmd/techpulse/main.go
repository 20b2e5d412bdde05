package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/techpulse/techpulse/pkg/ai"
	"github.com/techpulse/techpulse/pkg/chat"
	"github.com/techpulse/techpulse/pkg/classify"
	"github.com/techpulse/techpulse/pkg/config"
	"github.com/techpulse/techpulse/pkg/content"
	"github.com/techpulse/techpulse/pkg/domain"
	"github.com/techpulse/techpulse/pkg/feed"
	"github.com/techpulse/techpulse/pkg/notify"
	"github.com/techpulse/techpulse/pkg/repository"
	"github.com/techpulse/techpulse/pkg/scheduler"
	"github.com/techpulse/techpulse/pkg/trending"
	"github.com/techpulse/techpulse/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug)

	log.Printf("[INFO] starting techpulse version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] techpulse failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires the full pipeline and blocks until the context is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// re-setup logging with the API key masked
	setupLog(opts.Debug, cfg.AI.APIKey)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:               cfg.Database.DSN,
		MaxOpenConns:      cfg.Database.MaxOpenConns,
		MaxIdleConns:      cfg.Database.MaxIdleConns,
		ConnMaxLifetime:   time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
		RetryAttempts:     cfg.Schedule.RetryAttempts,
		RetryInitialDelay: cfg.Schedule.RetryInitialDelay,
		RetryMaxDelay:     cfg.Schedule.RetryMaxDelay,
	})
	if err != nil {
		return fmt.Errorf("failed to init storage: %w", err)
	}
	defer func() {
		if e := repos.Close(); e != nil {
			log.Printf("[WARN] can't close storage: %v", e)
		}
	}()

	if err = registerSources(ctx, repos, cfg.Sources); err != nil {
		return fmt.Errorf("failed to register sources: %w", err)
	}

	notifier := notify.NewNotifier(16)
	go notifier.RunHeartbeat(ctx, 30*time.Second)

	var extractor scheduler.Extractor
	if cfg.Extraction.Enabled {
		extractor = content.NewExtractor(cfg.GetExtractionConfig())
		log.Printf("[INFO] full-text extraction enabled")
	}

	aggregator := trending.NewAggregator(repos.Article, repos.Trending,
		trending.NewKeywordExtractor(cfg.Trending.Stopwords), cfg.Trending)

	sched := scheduler.NewScheduler(scheduler.Params{
		Sources:          repos.Source,
		Articles:         repos.Article,
		Parser:           feed.NewParser(cfg.Schedule.FetchTimeout, cfg.Extraction.UserAgent),
		Extractor:        extractor,
		Classifier:       classify.New(cfg.Classifier),
		Trending:         aggregator,
		Publisher:        notifier,
		TrendingInterval: cfg.Schedule.TrendingInterval,
		MaxWorkers:       cfg.Schedule.MaxWorkers,
	})
	if err = sched.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer sched.Stop()

	engine := chat.NewEngine(ai.NewClient(cfg.GetAIConfig()), repos.Article, repos.Conversation)

	srv := server.New(cfg, server.NewRepositoryStore(repos), engine, sched, notifier, revision, opts.Debug)
	if err = srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// registerSources upserts configured feeds and deactivates the ones no longer
// present in the config, keyed by feed URL
func registerSources(ctx context.Context, repos *repository.Repositories, sources []config.Source) error {
	keep := make([]string, 0, len(sources))
	for _, src := range sources {
		if !src.Enabled {
			continue
		}
		s := &domain.Source{
			Name:          src.Name,
			URL:           src.URL,
			FeedURL:       src.FeedURL,
			Active:        true,
			FetchInterval: src.FetchInterval,
		}
		if err := repos.Source.Register(ctx, s); err != nil {
			return fmt.Errorf("register source %q: %w", src.Name, err)
		}
		keep = append(keep, src.FeedURL)
		log.Printf("[INFO] registered source %q (every %s)", src.Name, src.FetchInterval)
	}

	if err := repos.Source.Deactivate(ctx, keep); err != nil {
		return fmt.Errorf("deactivate removed sources: %w", err)
	}
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
