package services

import (
	"bytes"
	"context"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"equipment-api/internal/dto"
)

const exportSheet = "Equipment"

var exportHeaders = []interface{}{"ID", "Name", "Category", "Number", "Description", "Created at", "Updated at"}

// ExportEquipments выгружает тот же набор, что и GetEquipments, в XLSX.
func (s *EquipmentService) ExportEquipments(ctx context.Context, filter dto.EquipmentFilterDTO) Outcome {
	outcome := s.findItems(ctx, filter)
	if outcome.Kind != OutcomeOK {
		return outcome
	}

	document, err := buildWorkbook(outcome.Items)
	if err != nil {
		s.logger.Error("ExportEquipments: ошибка формирования XLSX", zap.Error(err))
		return Outcome{Kind: OutcomeFailed, Message: MsgListFailed}
	}
	return Outcome{Kind: OutcomeOK, Items: outcome.Items, Document: document}
}

func buildWorkbook(items []dto.EquipmentListItemDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeaders); err != nil {
		return nil, err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(exportSheet, "A1", "G1", style); err != nil {
		return nil, err
	}

	for i, item := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			item.ID,
			item.Name,
			item.Category,
			item.Number,
			item.Description,
			item.CreatedAt.String,
			item.UpdatedAt.String,
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}
	_ = f.SetColWidth(exportSheet, "B", "C", 25)
	_ = f.SetColWidth(exportSheet, "E", "E", 40)
	_ = f.SetColWidth(exportSheet, "F", "G", 20)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
