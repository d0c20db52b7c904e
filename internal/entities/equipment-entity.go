package entities

import (
	"equipment-api/pkg/types"
)

type Equipment struct {
	ID          uint64 `json:"id" db:"id"`
	Name        string `json:"name" db:"name" validate:"notblank,max=255"`
	Category    string `json:"category" db:"category" validate:"notblank,max=255"`
	Number      string `json:"number" db:"number" validate:"notblank,max=255"`
	Description string `json:"description" db:"description"`

	types.BaseEntity // CreatedAt, UpdatedAt
	types.SoftDelete // DeletedAt
}
