package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"strategos-server/internal/core/types/enums"
	"strategos-server/internal/domain"
	"strategos-server/internal/engine"
	"strategos-server/internal/infrastructure/storage"
	"strategos-server/internal/server"
	"strategos-server/internal/version"
	"strategos-server/pkg/gamedata"
	"strategos-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	flag.Int64Var(&seed, "seed", 0, "Initial match seed (0 for random)")
	flag.Parse()

	logger.Log.Info("Starting Strategos...")
	logger.Log.Info(version.String())

	cfg := engine.NewConfig()
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("Using explicit match seed: %d", seed)
	} else {
		logger.Log.Infof("Using random match seed: %d", cfg.Seed)
	}

	port := os.Getenv("STRATEGOS_PORT")
	if port == "" {
		port = "8080"
	}

	// 2. Загрузка шаблонов типов юнитов.
	// С базой работаем, только если задан каталог данных.
	templates := gamedata.DefaultTemplates
	if cfg.DataDir != "" {
		store, err := storage.NewTypeStore(cfg.DataDir)
		if err != nil {
			logger.Log.Fatal("Failed to open type store: ", err)
		}

		if n, err := store.Seed(gamedata.DefaultTemplates); err != nil {
			logger.Log.Fatal("Failed to seed type store: ", err)
		} else if n > 0 {
			logger.Log.Infof("Seeded %d default unit templates", n)
		}

		stored, err := store.List()
		if err != nil {
			logger.Log.Fatal("Failed to read type store: ", err)
		}
		templates = stored

		if err := store.Close(); err != nil {
			logger.Log.Warn("Failed to close type store: ", err)
		}
	}

	// 3. Инициализация ядра с конфигом
	gameService, err := engine.NewService(cfg, templates)
	if err != nil {
		logger.Log.Fatal("Failed to build engine: ", err)
	}

	// Стартовая партия: два игрока с базами в противоположных углах
	var stock domain.ResourceBundle
	stock.Set(enums.ResourceFood, 200)
	stock.Set(enums.ResourceWood, 200)
	stock.Set(enums.ResourceGold, 100)

	blue := gameService.AddPlayer(1, "Blue", stock)
	red := gameService.AddPlayer(2, "Red", stock)

	if _, err := gamedata.SpawnStartingBase(gameService.Units, gameService.Registry, blue, domain.Phys3{NE: 10, SE: 10}); err != nil {
		logger.Log.Fatal("Failed to place starting base: ", err)
	}
	if _, err := gamedata.SpawnStartingBase(gameService.Units, gameService.Registry, red, domain.Phys3{NE: 90, SE: 90}); err != nil {
		logger.Log.Fatal("Failed to place starting base: ", err)
	}

	gameService.Start()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 4. Запуск сервера
	srv := server.New(gameService, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	gameService.Stop()
	logger.Log.Info("Done.")
}
