package handlers

import (
	"net/http"

	"campusfeed/internal/models"
	"campusfeed/internal/service"

	"github.com/gorilla/mux"
)

type respondRequest struct {
	Status models.MentorshipStatus `json:"status"`
}

func (h *Handlers) CreateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	var req service.CreateEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.CampusService.CreateEvent(r.Context(), id, req); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, SuccessResponse{Success: true, Message: "Мероприятие создано"}, http.StatusCreated)
}

func (h *Handlers) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	departmentID, ok := queryInt64(q, "department_id")
	if !ok {
		WriteError(w, "Неверный идентификатор кафедры", http.StatusBadRequest)
		return
	}

	events, err := h.CampusService.ListEvents(r.Context(), models.EventFilter{
		DepartmentID: departmentID,
		EventType:    queryString(q, "event_type"),
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, events, http.StatusOK)
}

func (h *Handlers) ShareResource(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	var req service.ShareResourceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.CampusService.ShareResource(r.Context(), id, req); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, SuccessResponse{Success: true, Message: "Ресурс отправлен на модерацию"}, http.StatusCreated)
}

func (h *Handlers) ListResources(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	departmentID, ok := queryInt64(q, "department_id")
	if !ok {
		WriteError(w, "Неверный идентификатор кафедры", http.StatusBadRequest)
		return
	}

	resources, err := h.CampusService.ListResources(r.Context(), models.ResourceFilter{
		DepartmentID: departmentID,
		CourseCode:   queryString(q, "course_code"),
		ResourceType: queryString(q, "resource_type"),
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, resources, http.StatusOK)
}

func (h *Handlers) ApproveResource(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	approved, err := h.CampusService.ApproveResource(r.Context(), id, mux.Vars(r)["resourceId"])
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	if !approved {
		WriteSuccess(w, SuccessResponse{Success: false, Message: "Ресурс не найден"}, http.StatusNotFound)
		return
	}

	WriteSuccess(w, SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handlers) RequestMentorship(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	var req service.MentorshipRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.CampusService.RequestMentorship(r.Context(), id, req); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, SuccessResponse{Success: true, Message: "Запрос отправлен"}, http.StatusCreated)
}

func (h *Handlers) ListMentorships(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	requests, err := h.CampusService.ListMentorships(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, requests, http.StatusOK)
}

func (h *Handlers) RespondMentorship(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	var req respondRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.CampusService.RespondMentorship(r.Context(), id, mux.Vars(r)["mentorshipId"], req.Status)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	if !updated {
		WriteSuccess(w, SuccessResponse{Success: false, Message: "Запрос не найден или уже обработан"}, http.StatusNotFound)
		return
	}

	WriteSuccess(w, SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handlers) AddCalendarEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	var req service.CalendarEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.CampusService.AddCalendarEntry(r.Context(), id, req); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, SuccessResponse{Success: true, Message: "Запись добавлена в календарь"}, http.StatusCreated)
}

func (h *Handlers) ListCalendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	departmentID, ok := queryInt64(q, "department_id")
	if !ok {
		WriteError(w, "Неверный идентификатор кафедры", http.StatusBadRequest)
		return
	}

	entries, err := h.CampusService.ListCalendar(r.Context(), models.CalendarFilter{
		DepartmentID: departmentID,
		EventType:    queryString(q, "event_type"),
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, entries, http.StatusOK)
}
