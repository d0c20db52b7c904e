package seeders

import (
	"github.com/aarondl/null/v8"

	"equipment-api/internal/dto"
)

// equipmentsData - демонстрационный набор для локальной БД
var equipmentsData = []dto.EquipmentPayload{
	{
		Name:        "iPhone X 128GB",
		Category:    "Téléphone",
		Number:      "1234567890",
		Description: null.StringFrom("Cet iPhone est en parfait état, avec une batterie fiable"),
	},
	{Name: "Samsung Galaxy S9", Category: "Téléphone", Number: "9876543210"},
	{Name: "Lenovo ThinkPad T480", Category: "Ordinateur", Number: "PF-1A2B3C", Description: null.StringFrom("i5, 16GB RAM")},
	{Name: "Dell U2719D", Category: "Écran", Number: "CN-0XYZ12"},
	{Name: "HP LaserJet Pro M404", Category: "Imprimante", Number: "VNB3K12345"},
}
