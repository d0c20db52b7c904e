package main

import (
	"context"
	"flag"

	"go.uber.org/zap"

	"equipment-api/internal/migrations"
	"equipment-api/internal/repositories"
	"equipment-api/internal/services"
	"equipment-api/pkg/config"
	"equipment-api/pkg/database/postgresql"
	applogger "equipment-api/pkg/logger"
	"equipment-api/pkg/validation"
	"equipment-api/seeders"
)

func main() {
	runEquipment := flag.Bool("equipment", false, "Наполнить таблицу оборудования демонстрационными данными")
	flag.Parse()

	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	defer func() { _ = logger.Sync() }()

	if !*runEquipment {
		logger.Info("❌ Не выбран ни один сидер. Пример: go run ./seeders/cmd/seed -equipment")
		flag.PrintDefaults()
		return
	}

	ctx := context.Background()
	dbPool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN, logger)
	if err != nil {
		logger.Fatal("Ошибка подключения к БД", zap.Error(err))
	}
	defer dbPool.Close()

	if err := postgresql.RunMigrations(ctx, dbPool, migrations.Migrations, logger); err != nil {
		logger.Fatal("Ошибка миграций", zap.Error(err))
	}

	service := services.NewEquipmentService(
		repositories.NewEquipmentRepository(dbPool, logger),
		repositories.NewTxManager(dbPool),
		validation.New(),
		logger,
	)

	if _, err := seeders.SeedEquipments(ctx, service, logger); err != nil {
		logger.Fatal("❌ Ошибка наполнения оборудования", zap.Error(err))
	}
}
