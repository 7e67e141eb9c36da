package handlers

import (
	"net/http"
	"strconv"

	"campusfeed/internal/models"

	"github.com/gorilla/mux"
)

// GetFeed serves /api/feed?department=&type=&course=
func (h *Handlers) GetFeed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	departmentID, ok := queryInt64(q, "department")
	if !ok {
		WriteError(w, "Неверный идентификатор кафедры", http.StatusBadRequest)
		return
	}

	filter := models.FeedFilter{
		DepartmentID: departmentID,
		CourseCode:   queryString(q, "course"),
	}
	if postType := queryString(q, "type"); postType != nil {
		pt := models.PostType(*postType)
		filter.PostType = &pt
	}

	posts, err := h.FeedService.List(r.Context(), filter)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetProfilePosts(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	posts, err := h.FeedService.ListForAuthor(r.Context(), id.UserID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetDepartmentPosts(w http.ResponseWriter, r *http.Request) {
	departmentID, err := strconv.ParseInt(mux.Vars(r)["departmentId"], 10, 64)
	if err != nil || departmentID <= 0 {
		WriteError(w, "Неверный идентификатор кафедры", http.StatusBadRequest)
		return
	}

	posts, err := h.FeedService.List(r.Context(), models.FeedFilter{DepartmentID: &departmentID})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetCoursePosts(w http.ResponseWriter, r *http.Request) {
	courseCode := mux.Vars(r)["courseCode"]

	posts, err := h.FeedService.List(r.Context(), models.FeedFilter{CourseCode: &courseCode})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.FeedService.Departments(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, departments, http.StatusOK)
}
