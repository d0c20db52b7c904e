package types

import "github.com/aarondl/null/v8"

type BaseEntity struct {
	CreatedAt null.Time `json:"created_at" db:"created_at"`
	UpdatedAt null.Time `json:"updated_at" db:"updated_at"`
}

// SoftDelete помечает запись удалённой без физического удаления строки.
type SoftDelete struct {
	DeletedAt null.Time `json:"deleted_at" db:"deleted_at"`
}

func (s SoftDelete) IsDeleted() bool {
	return s.DeletedAt.Valid
}
