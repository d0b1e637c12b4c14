package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/officehub/officehub-backend-go/internal/domain/record"
	"github.com/officehub/officehub-backend-go/internal/handler/http/response"
)

type RecordHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ToggleSuppression(w http.ResponseWriter, r *http.Request)
}

type recordHandlerImpl struct {
	recordService record.Service
}

func NewRecordHandler(recordService record.Service) RecordHandler {
	return &recordHandlerImpl{recordService: recordService}
}

func (h *recordHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req := record.ListRecordsRequest{
		WorkTypeID: r.URL.Query().Get("work_type_id"),
		Query:      r.URL.Query().Get("q"),
	}

	records, err := h.recordService.ListRecords(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

func (h *recordHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := h.recordService.GetRecord(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rec)
}

func (h *recordHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req record.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	rec, err := h.recordService.CreateRecord(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Record created", rec)
}

func (h *recordHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req record.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	rec, err := h.recordService.UpdateRecord(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rec)
}

func (h *recordHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.recordService.DeleteRecord(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Record deleted", nil)
}

func (h *recordHandlerImpl) ToggleSuppression(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "id")
	fieldID := chi.URLParam(r, "fieldID")
	if fieldID == "" {
		response.BadRequest(w, "Field ID is required", nil)
		return
	}

	rec, err := h.recordService.ToggleSuppression(r.Context(), recordID, fieldID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Notification suppression toggled", rec)
}
