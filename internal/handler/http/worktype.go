package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/officehub/officehub-backend-go/internal/domain/worktype"
	"github.com/officehub/officehub-backend-go/internal/handler/http/response"
)

type WorkTypeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	SuggestFields(w http.ResponseWriter, r *http.Request)
}

type workTypeHandlerImpl struct {
	workTypeService worktype.Service
}

func NewWorkTypeHandler(workTypeService worktype.Service) WorkTypeHandler {
	return &workTypeHandlerImpl{workTypeService: workTypeService}
}

func (h *workTypeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	workTypes, err := h.workTypeService.ListWorkTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, workTypes)
}

func (h *workTypeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	wt, err := h.workTypeService.GetWorkType(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, wt)
}

func (h *workTypeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req worktype.CreateWorkTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	wt, err := h.workTypeService.CreateWorkType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Work type created", wt)
}

func (h *workTypeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req worktype.UpdateWorkTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	wt, err := h.workTypeService.UpdateWorkType(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, wt)
}

func (h *workTypeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.workTypeService.DeleteWorkType(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Work type deleted", nil)
}

func (h *workTypeHandlerImpl) SuggestFields(w http.ResponseWriter, r *http.Request) {
	var req worktype.SuggestFieldsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	fields, err := h.workTypeService.SuggestFields(r.Context(), req.Name)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, worktype.SuggestFieldsResponse{Fields: fields})
}
