package services

import "equipment-api/internal/dto"

// OutcomeKind - классификация результата сервиса без привязки к HTTP.
type OutcomeKind int

const (
	OutcomeOK OutcomeKind = iota
	OutcomeCreated
	OutcomeUpdated
	OutcomeNoContent
	OutcomeInvalid
	OutcomeNotFound
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeOK:
		return "ok"
	case OutcomeCreated:
		return "created"
	case OutcomeUpdated:
		return "updated"
	case OutcomeNoContent:
		return "no_content"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome - результат операции сервиса.
// Message заполняется для подтверждений и ошибок, Errors - только для OutcomeInvalid,
// Items - для списка, Document - для выгрузки.
type Outcome struct {
	Kind     OutcomeKind
	Message  string
	Errors   []string
	Items    []dto.EquipmentListItemDTO
	Document []byte
}

func (o Outcome) IsSuccess() bool {
	switch o.Kind {
	case OutcomeOK, OutcomeCreated, OutcomeUpdated, OutcomeNoContent:
		return true
	}
	return false
}
