package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aarondl/null/v8"
)

// FlexString принимает из JSON как строку, так и число ("number": 1234567890).
// Число сохраняется в том виде, в котором пришло. null дает пустую строку.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("ожидалась строка или число: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// EquipmentPayload - тело запросов на создание и изменение.
// Отсутствующие поля приходят пустыми, их проверяет валидатор сущности.
type EquipmentPayload struct {
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Number      FlexString  `json:"number"`
	Description null.String `json:"description"`
}

// EquipmentFilterDTO - фильтры списка из query string, без приведения типов.
type EquipmentFilterDTO struct {
	ID       string `query:"id"`
	Name     string `query:"name"`
	Category string `query:"category"`
}

type EquipmentListItemDTO struct {
	ID          uint64      `json:"id"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Number      string      `json:"number"`
	Description string      `json:"description"`
	CreatedAt   null.String `json:"createdAt"`
	UpdatedAt   null.String `json:"updatedAt"`
}
