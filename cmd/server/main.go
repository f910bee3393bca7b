package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/malcolmsharpe/hex-dance-dungeon/internal/engine"
	"github.com/malcolmsharpe/hex-dance-dungeon/internal/server"
	"github.com/malcolmsharpe/hex-dance-dungeon/internal/version"
	"github.com/malcolmsharpe/hex-dance-dungeon/pkg/dungeon"
	"github.com/malcolmsharpe/hex-dance-dungeon/pkg/logger"
	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	cfg := engine.NewConfig()

	var seed int64
	var algo, enemies string
	flag.Int64Var(&seed, "seed", 0, "Seed for the \"random\" level (0 for random)")
	flag.StringVar(&algo, "algo", string(cfg.Algorithm), "Visibility algorithm: shadowcast | flood")
	flag.IntVar(&cfg.MaxRadius, "radius", cfg.MaxRadius, "Max sight radius in hexes (0 = map extent)")
	flag.StringVar(&cfg.Level, "level", cfg.Level, "Level name: "+strings.Join(dungeon.Names(), ", "))
	flag.StringVar(&enemies, "enemies", string(cfg.EnemyAI), "Enemy controller: idle | chase")
	flag.Parse()

	logger.Log.Info("Starting Hex Dance Dungeon...")
	logger.Log.Info(version.String())

	var err error
	if cfg.Algorithm, err = engine.ParseAlgorithm(algo); err != nil {
		logger.Log.Fatal(err)
	}
	if cfg.EnemyAI, err = engine.ParseEnemyAI(enemies); err != nil {
		logger.Log.Fatal(err)
	}
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random seed: %d", cfg.Seed)
	}

	// Уровень проверяем сразу, а не при первом подключении
	if _, err := dungeon.Load(cfg.Level, cfg.Seed); err != nil {
		logger.Log.Fatal(err)
	}

	logger.Log.WithFields(logrus.Fields{
		"level":      cfg.Level,
		"algorithm":  cfg.Algorithm,
		"max_radius": cfg.MaxRadius,
		"enemies":    cfg.EnemyAI,
	}).Info("Configuration loaded")

	port := os.Getenv("HEX_PORT")
	if port == "" {
		port = "8080"
	}

	// 2. Инициализация ядра с конфигом
	gameService := engine.NewService(cfg)

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Warn("Shutdown did not complete cleanly")
	}

	logger.Log.Info("Done.")
}
