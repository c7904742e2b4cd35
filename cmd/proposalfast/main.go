package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/proposalfast/proposalfast/pkg/config"
	"github.com/proposalfast/proposalfast/pkg/llm"
	"github.com/proposalfast/proposalfast/pkg/notify"
	"github.com/proposalfast/proposalfast/pkg/pipeline"
	"github.com/proposalfast/proposalfast/pkg/repository"
	"github.com/proposalfast/proposalfast/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"proposalfast.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

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
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	color.NoColor = color.NoColor || opts.NoColor
	setupLog(opts.Debug)

	lgr.Printf("[INFO] starting proposalfast version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	lgr.Print("[INFO] shutdown complete")
}

// run loads configuration, wires all components and serves until ctx is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	// re-setup logging with secrets from config
	setupLog(opts.Debug, cfg.LLM.APIKey, cfg.Auth.JWTSecret)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	llmCfg := cfg.GetLLMConfig()
	pipe := pipeline.New(pipeline.Config{
		Preferences: repos.Preference,
		Generator:   llm.NewGenerator(llmCfg),
		Extractor:   llm.NewExtractor(llmCfg),
		Drafts:      repos.Draft,
		Notifier: notify.New(repos.Webhook, notify.Config{
			Timeout:       cfg.Notify.Timeout,
			MaxConcurrent: cfg.Notify.MaxConcurrent,
			AllowPrivate:  cfg.Notify.AllowPrivate,
		}),
		LearnTimeout: cfg.Memory.LearnTimeout,
	})

	authMode := "jwt"
	if cfg.Auth.JWTSecret == "" {
		authMode = "X-User-ID header"
		lgr.Printf("[WARN] no jwt secret configured, trusting X-User-ID header")
	}
	lgr.Printf("[INFO] llm endpoint %s, model %s, auth %s", llmCfg.Endpoint, llmCfg.Model, authMode)

	srv := server.New(cfg, server.NewRepositoryAdapter(repos), pipe, revision, opts.Debug)
	err = srv.Run(ctx)

	// let background learning and notifications finish before closing the database
	lgr.Printf("[INFO] waiting for background tasks")
	pipe.Wait()

	if err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func setupLog(dbg bool, secs ...string) {
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
	if secrets := nonEmpty(secs); len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

// nonEmpty drops blank secrets, masking an empty string would mangle every line
func nonEmpty(vals []string) []string {
	res := make([]string, 0, len(vals))
	for _, v := range vals {
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}
