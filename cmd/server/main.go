// Package main is the entry point for the alumni network server.
//
// main stays minimal: read configuration from the environment, build the
// logger, hand both to internal/server, block until shutdown. Everything
// else lives in the internal packages.
package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/raiyan/alumni-network/internal/server"
	"github.com/raiyan/alumni-network/internal/session"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	port := 8080
	if portStr := os.Getenv("PORT"); portStr != "" {
		var err error
		port, err = strconv.Atoi(portStr)
		if err != nil {
			logger.Error("invalid PORT value", slog.String("value", portStr))
			os.Exit(1)
		}
	}

	// DB_PATH overrides the default session database location, e.g.
	// DB_PATH=/var/lib/alumni-network/sessions.db
	dbPath := "data/alumni.db"
	if envDB := os.Getenv("DB_PATH"); envDB != "" {
		dbPath = envDB
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		logger.Error("failed to create database directory",
			slog.String("dir", filepath.Dir(dbPath)),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	// The session cookie is signed with JWT_SECRET. There is no sane
	// default for a signing key, so a missing one is fatal. Generate with:
	//   JWT_SECRET=$(openssl rand -hex 32)
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Error("JWT_SECRET not set")
		os.Exit(1)
	}

	// SIM_LATENCY_MS overrides the simulated login round trip.
	// SIM_LATENCY_MS=0 disables it, which is handy in local development
	// where waiting a second per login gets old.
	latency := session.DefaultLatency
	if ms := os.Getenv("SIM_LATENCY_MS"); ms != "" {
		n, err := strconv.Atoi(ms)
		if err != nil || n < 0 {
			logger.Error("invalid SIM_LATENCY_MS value", slog.String("value", ms))
			os.Exit(1)
		}
		latency = time.Duration(n) * time.Millisecond
	}

	cfg := server.Config{
		Port:      port,
		DBPath:    dbPath,
		JWTSecret: jwtSecret,
		Latency:   latency,
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
