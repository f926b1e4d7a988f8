package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrtools-br/ausencias-backend-go/internal/domain/absence"
	"github.com/hrtools-br/ausencias-backend-go/internal/handler/http/response"
	"github.com/hrtools-br/ausencias-backend-go/internal/pkg/dates"
	"github.com/hrtools-br/ausencias-backend-go/internal/service/export"
)

type AbsenceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type AbsenceHandlerImpl struct {
	absenceService absence.Service
	exportService  *export.ExportService
}

func NewAbsenceHandler(absenceService absence.Service, exportService *export.ExportService) AbsenceHandler {
	return &AbsenceHandlerImpl{
		absenceService: absenceService,
		exportService:  exportService,
	}
}

// List implements AbsenceHandler.
func (h *AbsenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	records := h.absenceService.List(r.Context())
	response.Success(w, absence.NewRecordResponses(records))
}

// ListByEmployee implements AbsenceHandler.
func (h *AbsenceHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	groups := h.absenceService.ListByEmployee(r.Context())

	responses := make([]absence.EmployeeGroupResponse, 0, len(groups))
	for _, group := range groups {
		responses = append(responses, absence.NewEmployeeGroupResponse(group))
	}
	response.Success(w, responses)
}

// Create implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req absence.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create absence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, returnDate, err := h.absenceService.Add(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := fmt.Sprintf("Registro de %s para %s adicionado! Retorno: %s",
		record.Category, record.EmployeeName, returnDate.Format(dates.DisplayLayout))
	response.Created(w, message, absence.NewRecordResponse(record))
}

// Update implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	var req absence.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update absence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, returnDate, err := h.absenceService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := fmt.Sprintf("Registro de %s atualizado! Retorno: %s",
		record.EmployeeName, returnDate.Format(dates.DisplayLayout))
	response.SuccessWithMessage(w, message, absence.NewRecordResponse(record))
}

// Delete implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	if err := h.absenceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Registro excluído com sucesso!", nil)
}

// Export implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.exportService.Generate(r.Context())
	if err != nil {
		slog.Error("Failed to generate export", "error", err)
		response.InternalServerError(w, "Failed to generate export")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Error("Failed to write export response", "error", err)
	}
}
