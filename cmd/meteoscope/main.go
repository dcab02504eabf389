package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/umputun/meteoscope/pkg/config"
	"github.com/umputun/meteoscope/pkg/decode"
	"github.com/umputun/meteoscope/pkg/fetch"
	"github.com/umputun/meteoscope/pkg/health"
	"github.com/umputun/meteoscope/pkg/metrics"
	"github.com/umputun/meteoscope/pkg/reconcile"
	"github.com/umputun/meteoscope/pkg/repository"
	"github.com/umputun/meteoscope/pkg/scheduler"
	"github.com/umputun/meteoscope/pkg/service"
	"github.com/umputun/meteoscope/pkg/verify"
	"github.com/umputun/meteoscope/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"configuration file, built-in defaults if not set"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	DBPath string `long:"db" env:"DB_PATH" description:"sqlite database file, overrides config dsn"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	SetupLog(opts.Debug)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	lgr.Print("[INFO] shutdown complete")
}

// run wires the pipeline and blocks until ctx is canceled
func run(ctx context.Context, opts Opts) error {
	lgr.Printf("[INFO] starting meteoscope version %s", revision)

	cfg := config.Default()
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.DBPath != "" {
		cfg.Database.DSN = fmt.Sprintf("file:%s?cache=shared&mode=rwc&_txlock=immediate", opts.DBPath)
	}

	sources, err := cfg.DomainSources()
	if err != nil {
		return fmt.Errorf("failed to prepare sources: %w", err)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	clock := clockwork.NewRealClock()
	startedAt := clock.Now()

	tracker := health.NewTracker(repos.Health, health.Config{
		Window:                 cfg.Health.ReliabilityWindow,
		StaleFactor:            cfg.Health.StaleFactor,
		UnavailableFactor:      cfg.Health.UnavailableFactor,
		MaxConsecutiveFailures: cfg.Health.MaxConsecutiveFailures,
	}, clock, sources...)
	if err := tracker.Restore(ctx); err != nil {
		// history is lost, tracking starts over
		lgr.Printf("[WARN] failed to restore source health: %v", err)
	}

	coordinator := fetch.NewCoordinator(fetch.NewHTTPTransport(cfg.Fetch.Timeout, cfg.Fetch.UserAgent), fetch.RetryPolicy{
		Attempts:     cfg.Fetch.Retry.Attempts,
		InitialDelay: cfg.Fetch.Retry.InitialDelay,
		MaxDelay:     cfg.Fetch.Retry.MaxDelay,
		Jitter:       cfg.Fetch.Retry.Jitter,
	}, clock)

	sched := scheduler.NewScheduler(scheduler.Params{
		Sources:    sources,
		Fetcher:    coordinator,
		Verifier:   verify.New(repos.Snapshot, clock),
		Decoder:    decode.New(cfg.Alerts.DefaultValidity),
		Reconciler: reconcile.New(repos.Forecast, repos.Alert, clock),
		Health:     tracker,
		Metrics:    metrics.NewMetrics(),
		Clock:      clock,
		RunOnStart: true,
	})
	prometheus.MustRegister(metrics.NewHealthCollector(tracker.Snapshot))
	sched.Start(ctx)
	defer sched.Stop()

	weather := service.NewWeatherService(service.Params{
		Forecasts:            repos.Forecast,
		Alerts:               repos.Alert,
		Health:               tracker,
		Scheduler:            sched,
		DB:                   repos,
		Clock:                clock,
		StartedAt:            startedAt,
		ReliabilityThreshold: cfg.Health.ReliabilityThreshold,
		AlertLimit:           cfg.Alerts.ListLimit,
	})

	srv := server.New(server.Config{
		Listen:       cfg.Server.Listen,
		Timeout:      cfg.Server.Timeout,
		BaseURL:      cfg.Server.BaseURL,
		TriggerLimit: cfg.Server.TriggerLimit,
		Clock:        clock,
	}, weather, revision, opts.Debug)

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// SetupLog configures lgr and the standard logger, secrets are masked in the output
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
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
