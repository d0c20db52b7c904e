package seeders

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"equipment-api/internal/dto"
	"equipment-api/internal/services"
)

// EquipmentCreator - часть сервиса, нужная сидеру. Записи идут через сервис,
// поэтому проходят ту же валидацию, что и запросы API.
type EquipmentCreator interface {
	CreateEquipment(ctx context.Context, payload dto.EquipmentPayload) services.Outcome
}

// SeedEquipments создает демонстрационное оборудование и возвращает число созданных записей.
func SeedEquipments(ctx context.Context, creator EquipmentCreator, logger *zap.Logger) (int, error) {
	logger.Info("  - Наполнение таблицы 'equipments'...")

	created := 0
	for _, payload := range equipmentsData {
		outcome := creator.CreateEquipment(ctx, payload)
		switch {
		case outcome.IsSuccess():
			created++
		case outcome.Kind == services.OutcomeInvalid:
			logger.Warn("ПРЕДУПРЕЖДЕНИЕ: оборудование не прошло валидацию, пропускаем",
				zap.String("name", payload.Name), zap.Strings("errors", outcome.Errors))
		default:
			return created, fmt.Errorf("не удалось создать оборудование '%s': %s", payload.Name, outcome.Message)
		}
	}

	logger.Info("✅ Оборудование добавлено", zap.Int("count", created))
	return created, nil
}
