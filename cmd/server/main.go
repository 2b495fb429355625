package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tuannm99/toysql/internal"
	"github.com/tuannm99/toysql/server/toysqlwire"
)

func main() {
	cfgPath := flag.String("config", "", "config file (yaml)")
	addr := flag.String("addr", "", "listen address (overrides config)")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	cfg, err := internal.LoadConfig(*cfgPath)
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	level := slog.LevelInfo
	if cfg.Server.Debug || *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("app", cfg.AppName)
	slog.SetDefault(logger)

	var auth *toysqlwire.AuthConfig
	if cfg.Auth.Enabled {
		auth = &toysqlwire.AuthConfig{
			Enabled:   true,
			JWTSecret: cfg.Auth.JWTSecret,
			Issuer:    cfg.Auth.Issuer,
			Audience:  cfg.Auth.Audience,
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = toysqlwire.Run(ctx, toysqlwire.ServerConfig{
		Addr:               cfg.Server.Addr,
		StatementCacheSize: cfg.Engine.StatementCacheSize,
		Auth:               auth,
		Logger:             logger,
	})
	if err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}
