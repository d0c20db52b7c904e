package services

import (
	"context"
	"errors"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"equipment-api/internal/dto"
	"equipment-api/internal/entities"
	"equipment-api/internal/repositories"
	apperrors "equipment-api/pkg/errors"
	"equipment-api/pkg/types"
	"equipment-api/pkg/utils"
)

const (
	MsgEquipmentAdded    = "Equipment added successfully"
	MsgEquipmentUpdated  = "Equipment updated successfully"
	MsgEquipmentNotFound = "Equipment not found"

	MsgAddFailed    = "An error occurred while adding the equipment"
	MsgUpdateFailed = "An error occurred while updating the equipment"
	MsgDeleteFailed = "An error occurred while deleting the equipment"
	MsgListFailed   = "An error occurred while retrieving the equipments"
)

// EntityValidator возвращает список нарушений; пустой список - сущность валидна.
type EntityValidator interface {
	Violations(i interface{}) []string
}

type EquipmentServiceInterface interface {
	CreateEquipment(ctx context.Context, payload dto.EquipmentPayload) Outcome
	UpdateEquipment(ctx context.Context, id uint64, payload dto.EquipmentPayload) Outcome
	DeleteEquipment(ctx context.Context, id uint64) Outcome
	GetEquipments(ctx context.Context, filter dto.EquipmentFilterDTO) Outcome
	ExportEquipments(ctx context.Context, filter dto.EquipmentFilterDTO) Outcome
}

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	txManager           repositories.TxManagerInterface
	validator           EntityValidator
	logger              *zap.Logger
	now                 func() time.Time
}

func NewEquipmentService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	txManager repositories.TxManagerInterface,
	validator EntityValidator,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		equipmentRepository: equipmentRepository,
		txManager:           txManager,
		validator:           validator,
		logger:              logger,
		now:                 utils.Now,
	}
}

func applyPayload(e *entities.Equipment, payload dto.EquipmentPayload) {
	e.Name = payload.Name
	e.Category = payload.Category
	e.Number = payload.Number.String()
	e.Description = payload.Description.String // null -> ""
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.EquipmentPayload) Outcome {
	equipment := &entities.Equipment{
		BaseEntity: types.BaseEntity{CreatedAt: null.TimeFrom(s.now())},
	}
	applyPayload(equipment, payload)

	if violations := s.validator.Violations(equipment); len(violations) > 0 {
		s.logger.Info("CreateEquipment: данные не прошли валидацию", zap.Strings("errors", violations))
		return Outcome{Kind: OutcomeInvalid, Errors: violations}
	}

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		return s.equipmentRepository.Create(ctx, tx, equipment)
	})
	if err != nil {
		s.logger.Error("CreateEquipment: ошибка при создании оборудования", zap.Any("payload", payload), zap.Error(err))
		return Outcome{Kind: OutcomeFailed, Message: MsgAddFailed}
	}

	s.logger.Info("Оборудование успешно создано", zap.Uint64("id", equipment.ID))
	return Outcome{Kind: OutcomeCreated, Message: MsgEquipmentAdded}
}

// findActive ищет неудаленную запись. Если outcome != nil - его нужно вернуть как есть.
func (s *EquipmentService) findActive(ctx context.Context, id uint64, failMessage string) (*entities.Equipment, *Outcome) {
	equipment, err := s.equipmentRepository.FindByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, &Outcome{Kind: OutcomeNotFound, Message: MsgEquipmentNotFound}
		}
		s.logger.Error("Ошибка при поиске оборудования", zap.Uint64("id", id), zap.Error(err))
		return nil, &Outcome{Kind: OutcomeFailed, Message: failMessage}
	}
	return equipment, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.EquipmentPayload) Outcome {
	equipment, outcome := s.findActive(ctx, id, MsgUpdateFailed)
	if outcome != nil {
		return *outcome
	}

	applyPayload(equipment, payload)
	equipment.UpdatedAt = null.TimeFrom(s.now())

	if violations := s.validator.Violations(equipment); len(violations) > 0 {
		s.logger.Info("UpdateEquipment: данные не прошли валидацию", zap.Uint64("id", id), zap.Strings("errors", violations))
		return Outcome{Kind: OutcomeInvalid, Errors: violations}
	}

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		return s.equipmentRepository.Update(ctx, tx, equipment)
	})
	if err != nil {
		s.logger.Error("UpdateEquipment: ошибка при обновлении оборудования", zap.Uint64("id", id), zap.Error(err))
		return Outcome{Kind: OutcomeFailed, Message: MsgUpdateFailed}
	}

	return Outcome{Kind: OutcomeUpdated, Message: MsgEquipmentUpdated}
}

// DeleteEquipment - мягкое удаление, валидация полей не выполняется.
func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uint64) Outcome {
	equipment, outcome := s.findActive(ctx, id, MsgDeleteFailed)
	if outcome != nil {
		return *outcome
	}

	equipment.DeletedAt = null.TimeFrom(s.now())

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		return s.equipmentRepository.Update(ctx, tx, equipment)
	})
	if err != nil {
		s.logger.Error("DeleteEquipment: ошибка при удалении оборудования", zap.Uint64("id", id), zap.Error(err))
		return Outcome{Kind: OutcomeFailed, Message: MsgDeleteFailed}
	}

	s.logger.Info("Оборудование помечено удаленным", zap.Uint64("id", id))
	return Outcome{Kind: OutcomeNoContent}
}

// criteriaFromFilter превращает фильтр в критерии поиска.
// ok=false значит, что ни одна запись подойти не может (id не число или вне bigint).
func criteriaFromFilter(filter dto.EquipmentFilterDTO) (criteria map[string]interface{}, ok bool) {
	criteria = make(map[string]interface{})
	if filter.ID != "" {
		id, err := utils.ParseID(filter.ID)
		if err != nil {
			return nil, false
		}
		criteria["id"] = id
	}
	if filter.Name != "" {
		criteria["name"] = filter.Name
	}
	if filter.Category != "" {
		criteria["category"] = filter.Category
	}
	return criteria, true
}

func toListItem(e entities.Equipment) dto.EquipmentListItemDTO {
	return dto.EquipmentListItemDTO{
		ID:          e.ID,
		Name:        e.Name,
		Category:    e.Category,
		Number:      e.Number,
		Description: e.Description,
		CreatedAt:   utils.FormatDateTime(e.CreatedAt),
		UpdatedAt:   utils.FormatDateTime(e.UpdatedAt),
	}
}

// findItems - общая часть списка и выгрузки. Пустой результат - OutcomeNotFound.
func (s *EquipmentService) findItems(ctx context.Context, filter dto.EquipmentFilterDTO) Outcome {
	criteria, ok := criteriaFromFilter(filter)
	if !ok {
		return Outcome{Kind: OutcomeNotFound, Message: MsgEquipmentNotFound}
	}

	equipments, err := s.equipmentRepository.FindBy(ctx, criteria)
	if err != nil {
		s.logger.Error("GetEquipments: ошибка при получении списка оборудования", zap.Any("criteria", criteria), zap.Error(err))
		return Outcome{Kind: OutcomeFailed, Message: MsgListFailed}
	}
	if len(equipments) == 0 {
		return Outcome{Kind: OutcomeNotFound, Message: MsgEquipmentNotFound}
	}

	items := make([]dto.EquipmentListItemDTO, 0, len(equipments))
	for _, e := range equipments {
		items = append(items, toListItem(e))
	}
	return Outcome{Kind: OutcomeOK, Items: items}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter dto.EquipmentFilterDTO) Outcome {
	return s.findItems(ctx, filter)
}
