package routes

import (
	"github.com/labstack/echo/v4"

	"equipment-api/internal/controllers"
)

func RUN_EQUIPMENT_ROUTER(api *echo.Group, equipmentCtrl *controllers.EquipmentController) {
	equipments := api.Group("/equipments")

	equipments.GET("", equipmentCtrl.GetEquipments)
	equipments.GET("/export", equipmentCtrl.ExportEquipments)
	equipments.POST("", equipmentCtrl.CreateEquipment)
	equipments.PUT("/:id", equipmentCtrl.UpdateEquipment)
	equipments.DELETE("/:id", equipmentCtrl.DeleteEquipment)
}
