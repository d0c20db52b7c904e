package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"equipment-api/internal/entities"
	apperrors "equipment-api/pkg/errors"
)

const (
	equipmentTable  = "equipments"
	equipmentFields = "id, name, category, number, description, created_at, updated_at, deleted_at"
)

// allowedEquipmentCriteria - белый список колонок для FindBy
var allowedEquipmentCriteria = map[string]string{
	"id":       "id",
	"name":     "name",
	"category": "category",
}

type EquipmentRepositoryInterface interface {
	// FindBy ищет только активные записи (deleted_at IS NULL) по равенству полей.
	FindBy(ctx context.Context, criteria map[string]interface{}) ([]entities.Equipment, error)
	// FindByID возвращает apperrors.ErrNotFound, если записи нет или она удалена.
	FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Equipment, error)
	Create(ctx context.Context, tx pgx.Tx, e *entities.Equipment) error
	Update(ctx context.Context, tx pgx.Tx, e *entities.Equipment) error
}

type equipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &equipmentRepository{storage: storage, logger: logger}
}

// getQuerier - возвращает транзакцию или пул соединений
func (r *equipmentRepository) getQuerier(tx pgx.Tx) Querier {
	if tx != nil {
		return tx
	}
	return r.storage
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID, &e.Name, &e.Category, &e.Number, &e.Description,
		&e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// buildFindByQuery собирает SELECT по критериям. Неизвестные ключи игнорируются.
func buildFindByQuery(criteria map[string]interface{}) (string, []interface{}, error) {
	where := sq.Eq{"deleted_at": nil}
	for key, val := range criteria {
		column, ok := allowedEquipmentCriteria[key]
		if !ok {
			continue
		}
		where[column] = val
	}

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	return psql.Select(equipmentFields).
		From(equipmentTable).
		Where(where).
		OrderBy("id ASC").
		ToSql()
}

// buildFindByIDQuery видит только активные записи.
func buildFindByIDQuery(id uint64) (string, []interface{}, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	return psql.Select(equipmentFields).
		From(equipmentTable).
		Where(sq.And{sq.Eq{"id": id}, sq.Eq{"deleted_at": nil}}).
		ToSql()
}

func buildInsertQuery(e *entities.Equipment) (string, []interface{}, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	return psql.Insert(equipmentTable).
		Columns("name", "category", "number", "description", "created_at").
		Values(e.Name, e.Category, e.Number, e.Description, e.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateQuery(e *entities.Equipment) (string, []interface{}, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	return psql.Update(equipmentTable).
		Set("name", e.Name).
		Set("category", e.Category).
		Set("number", e.Number).
		Set("description", e.Description).
		Set("updated_at", e.UpdatedAt).
		Set("deleted_at", e.DeletedAt).
		Where(sq.Eq{"id": e.ID}).
		ToSql()
}

func (r *equipmentRepository) FindBy(ctx context.Context, criteria map[string]interface{}) ([]entities.Equipment, error) {
	query, args, err := buildFindByQuery(criteria)
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса FindBy: %w", err)
	}

	r.logger.Debug("FindBy equipments", zap.String("query", query), zap.Any("args", args))

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки equipments: %w", err)
	}
	defer rows.Close()

	result := make([]entities.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования equipments: %w", err)
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}
	return result, nil
}

func (r *equipmentRepository) FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.Equipment, error) {
	query, args, err := buildFindByIDQuery(id)
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса FindByID: %w", err)
	}

	e, err := scanEquipment(r.getQuerier(tx).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка поиска equipments по id=%d: %w", id, err)
	}
	return e, nil
}

// Create вставляет запись и заполняет e.ID значением из БД.
func (r *equipmentRepository) Create(ctx context.Context, tx pgx.Tx, e *entities.Equipment) error {
	query, args, err := buildInsertQuery(e)
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Create: %w", err)
	}

	if err := r.getQuerier(tx).QueryRow(ctx, query, args...).Scan(&e.ID); err != nil {
		return fmt.Errorf("ошибка создания equipments: %w", err)
	}
	return nil
}

// Update записывает все изменяемые поля сущности, включая updated_at и deleted_at.
func (r *equipmentRepository) Update(ctx context.Context, tx pgx.Tx, e *entities.Equipment) error {
	query, args, err := buildUpdateQuery(e)
	if err != nil {
		return fmt.Errorf("ошибка сборки запроса Update: %w", err)
	}

	result, err := r.getQuerier(tx).Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления equipments id=%d: %w", e.ID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
