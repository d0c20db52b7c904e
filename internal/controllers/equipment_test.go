package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"equipment-api/internal/dto"
	"equipment-api/internal/services"
)

type fakeEquipmentService struct {
	outcome services.Outcome

	calls         int
	gotID         uint64
	gotPayload    dto.EquipmentPayload
	gotFilter     dto.EquipmentFilterDTO
	lastOperation string
}

func (f *fakeEquipmentService) record(op string) services.Outcome {
	f.calls++
	f.lastOperation = op
	return f.outcome
}

func (f *fakeEquipmentService) CreateEquipment(ctx context.Context, payload dto.EquipmentPayload) services.Outcome {
	f.gotPayload = payload
	return f.record("create")
}

func (f *fakeEquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.EquipmentPayload) services.Outcome {
	f.gotID = id
	f.gotPayload = payload
	return f.record("update")
}

func (f *fakeEquipmentService) DeleteEquipment(ctx context.Context, id uint64) services.Outcome {
	f.gotID = id
	return f.record("delete")
}

func (f *fakeEquipmentService) GetEquipments(ctx context.Context, filter dto.EquipmentFilterDTO) services.Outcome {
	f.gotFilter = filter
	return f.record("list")
}

func (f *fakeEquipmentService) ExportEquipments(ctx context.Context, filter dto.EquipmentFilterDTO) services.Outcome {
	f.gotFilter = filter
	return f.record("export")
}

func newTestEcho(svc services.EquipmentServiceInterface) *echo.Echo {
	e := echo.New()
	ctrl := NewEquipmentController(svc, zap.NewNop())
	g := e.Group("/api/equipments")
	g.GET("", ctrl.GetEquipments)
	g.GET("/export", ctrl.ExportEquipments)
	g.POST("", ctrl.CreateEquipment)
	g.PUT("/:id", ctrl.UpdateEquipment)
	g.DELETE("/:id", ctrl.DeleteEquipment)
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestCreateEquipment_Created(t *testing.T) {
	svc := &fakeEquipmentService{outcome: services.Outcome{Kind: services.OutcomeCreated, Message: services.MsgEquipmentAdded}}
	e := newTestEcho(svc)

	rec := do(e, http.MethodPost, "/api/equipments",
		`{"name":"iPhone X 128GB","category":"Téléphone","number":1234567890}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Equipment added successfully"}`, rec.Body.String())
	assert.Equal(t, "create", svc.lastOperation)
	assert.Equal(t, "iPhone X 128GB", svc.gotPayload.Name)
	assert.Equal(t, dto.FlexString("1234567890"), svc.gotPayload.Number)
	assert.False(t, svc.gotPayload.Description.Valid)
}

func TestCreateEquipment_InvalidJSON(t *testing.T) {
	for name, body := range map[string]string{
		"empty":     "",
		"garbage":   "{name:",
		"null":      "null",
		"array":     `[{"name":"x"}]`,
		"string":    `"hello"`,
		"bad types": `{"name":["x"]}`,
	} {
		t.Run(name, func(t *testing.T) {
			svc := &fakeEquipmentService{}
			e := newTestEcho(svc)

			rec := do(e, http.MethodPost, "/api/equipments", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"message":"Invalid JSON data"}`, rec.Body.String())
			assert.Equal(t, 0, svc.calls, "сервис не должен вызываться")
		})
	}
}

func TestCreateEquipment_ValidationErrors(t *testing.T) {
	svc := &fakeEquipmentService{outcome: services.Outcome{
		Kind:   services.OutcomeInvalid,
		Errors: []string{"name: This value should not be blank."},
	}}
	e := newTestEcho(svc)

	rec := do(e, http.MethodPost, "/api/equipments", `{"category":"x","number":"1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":["name: This value should not be blank."]}`, rec.Body.String())
}

func TestCreateEquipment_Failed(t *testing.T) {
	svc := &fakeEquipmentService{outcome: services.Outcome{Kind: services.OutcomeFailed, Message: services.MsgAddFailed}}
	e := newTestEcho(svc)

	rec := do(e, http.MethodPost, "/api/equipments", `{"name":"a","category":"b","number":"c"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, services.MsgAddFailed, decodeMap(t, rec)["message"])
}

func TestUpdateEquipment(t *testing.T) {
	svc := &fakeEquipmentService{outcome: services.Outcome{Kind: services.OutcomeUpdated, Message: services.MsgEquipmentUpdated}}
	e := newTestEcho(svc)

	rec := do(e, http.MethodPut, "/api/equipments/15",
		`{"name":"Nouveau Nom","category":"Cat","number":"N-1","description":"desc"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Equipment updated successfully"}`, rec.Body.String())
	assert.Equal(t, uint64(15), svc.gotID)
	assert.Equal(t, null.StringFrom("desc"), svc.gotPayload.Description)
}

func TestUpdateEquipment_NotFound(t *testing.T) {
	svc := &fakeEquipmentService{outcome: services.Outcome{Kind: services.OutcomeNotFound, Message: services.MsgEquipmentNotFound}}
	e := newTestEcho(svc)

	rec := do(e, http.MethodPut, "/api/equipments/999", `{"name":"a","category":"b","number":"c"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Equipment not found"}`, rec.Body.String())
}

func TestUpdateEquipment_NonNumericID(t *testing.T) {
	for _, id := range []string{"abc", "-1", "9223372036854775808"} {
		svc := &fakeEquipmentService{}
		e := newTestEcho(svc)

		rec := do(e, http.MethodPut, "/api/equipments/"+id, `{"name":"a"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code, id)
		assert.JSONEq(t, `{"message":"Equipment not found"}`, rec.Body.String(), id)
		assert.Equal(t, 0, svc.calls, id)
	}
}

func TestDeleteEquipment_IDOutOfRange(t *testing.T) {
	svc := &fakeEquipmentService{}
	e := newTestEcho(svc)

	rec := do(e, http.MethodDelete, "/api/equipments/18446744073709551615", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 0, svc.calls)
}

func TestUpdateEquipment_InvalidJSON(t *testing.T) {
	svc := &fakeEquipmentService{}
	e := newTestEcho(svc)

	rec := do(e, http.MethodPut, "/api/equipments/1", `not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid JSON data"}`, rec.Body.String())
	assert.Equal(t, 0, svc.calls)
}

func TestDeleteEquipment_NoContent(t *testing.T) {
	svc := &fakeEquipmentService{outcome: services.Outcome{Kind: services.OutcomeNoContent}}
	e := newTestEcho(svc)

	rec := do(e, http.MethodDelete, "/api/equipments/4", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, uint64(4), svc.gotID)
}

func TestDeleteEquipment_NotFound(t *testing.T) {
	svc := &fakeEquipmentService{outcome: services.Outcome{Kind: services.OutcomeNotFound, Message: services.MsgEquipmentNotFound}}
	e := newTestEcho(svc)

	rec := do(e, http.MethodDelete, "/api/equipments/4", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Equipment not found"}`, rec.Body.String())
}

func TestDeleteEquipment_Failed(t *testing.T) {
	svc := &fakeEquipmentService{outcome: services.Outcome{Kind: services.OutcomeFailed, Message: services.MsgDeleteFailed}}
	e := newTestEcho(svc)

	rec := do(e, http.MethodDelete, "/api/equipments/4", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, services.MsgDeleteFailed, decodeMap(t, rec)["message"])
}

func TestGetEquipments_PassesFiltersVerbatim(t *testing.T) {
	svc := &fakeEquipmentService{outcome: services.Outcome{
		Kind: services.OutcomeOK,
		Items: []dto.EquipmentListItemDTO{{
			ID:        1,
			Name:      "iPhone X 128GB",
			Category:  "Téléphone",
			Number:    "1234567890",
			CreatedAt: null.StringFrom("2024-03-15 10:30:45"),
		}},
	}}
	e := newTestEcho(svc)

	rec := do(e, http.MethodGet, "/api/equipments?category="+url.QueryEscape("Téléphone")+"&id=01&name=+x+", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dto.EquipmentFilterDTO{ID: "01", Name: " x ", Category: "Téléphone"}, svc.gotFilter)
	assert.JSONEq(t, `[{
		"id": 1,
		"name": "iPhone X 128GB",
		"category": "Téléphone",
		"number": "1234567890",
		"description": "",
		"createdAt": "2024-03-15 10:30:45",
		"updatedAt": null
	}]`, rec.Body.String())
}

func TestGetEquipments_NotFound(t *testing.T) {
	svc := &fakeEquipmentService{outcome: services.Outcome{Kind: services.OutcomeNotFound, Message: services.MsgEquipmentNotFound}}
	e := newTestEcho(svc)

	rec := do(e, http.MethodGet, "/api/equipments", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Equipment not found"}`, rec.Body.String())
}

func TestExportEquipments(t *testing.T) {
	svc := &fakeEquipmentService{outcome: services.Outcome{Kind: services.OutcomeOK, Document: []byte("PK-fake")}}
	e := newTestEcho(svc)

	rec := do(e, http.MethodGet, "/api/equipments/export?category=Laptop", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxMIME, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment; filename=equipments_")
	assert.Equal(t, "PK-fake", rec.Body.String())
	assert.Equal(t, "export", svc.lastOperation)
	assert.Equal(t, "Laptop", svc.gotFilter.Category)
}

func TestExportEquipments_NotFound(t *testing.T) {
	svc := &fakeEquipmentService{outcome: services.Outcome{Kind: services.OutcomeNotFound, Message: services.MsgEquipmentNotFound}}
	e := newTestEcho(svc)

	rec := do(e, http.MethodGet, "/api/equipments/export", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Disposition"))
}
