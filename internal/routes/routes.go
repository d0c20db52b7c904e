package routes

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"equipment-api/internal/controllers"
	"equipment-api/internal/repositories"
	"equipment-api/internal/services"
)

// Pinger - то, что умеет проверять доступность БД (*pgxpool.Pool)
type Pinger interface {
	Ping(ctx context.Context) error
}

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, validator services.EntityValidator, logger *zap.Logger) {
	logger.Info("InitRouter: Начало создания маршрутов")

	var (
		txManager           = repositories.NewTxManager(dbConn)
		equipmentRepository = repositories.NewEquipmentRepository(dbConn, logger)
		equipmentService    = services.NewEquipmentService(equipmentRepository, txManager, validator, logger)
		equipmentCtrl       = controllers.NewEquipmentController(equipmentService, logger)
	)

	RUN_HEALTH_ROUTER(e, dbConn, logger)
	RUN_EQUIPMENT_ROUTER(e.Group("/api"), equipmentCtrl)

	logger.Info("InitRouter: Маршруты созданы")
}

func RUN_HEALTH_ROUTER(e *echo.Echo, db Pinger, logger *zap.Logger) {
	e.GET("/healthz", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			logger.Warn("healthz: БД недоступна", zap.Error(err))
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}
