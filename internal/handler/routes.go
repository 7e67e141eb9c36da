package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handlers) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/departments", h.GetDepartments).Methods(http.MethodGet)
	api.HandleFunc("/me", h.GetCurrentUser).Methods(http.MethodGet)

	api.HandleFunc("/feed", h.GetFeed).Methods(http.MethodGet)
	api.HandleFunc("/profile/posts", h.GetProfilePosts).Methods(http.MethodGet)

	api.HandleFunc("/posts", h.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/like", h.LikePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/unlike", h.UnlikePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/comment", h.CommentPost).Methods(http.MethodPost)
	api.HandleFunc("/posts/delete", h.DeletePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/department/{departmentId:[0-9]+}", h.GetDepartmentPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts/course/{courseCode}", h.GetCoursePosts).Methods(http.MethodGet)
	api.HandleFunc("/posts/{postId}/likes", h.GetPostLikes).Methods(http.MethodGet)
	api.HandleFunc("/posts/{postId}/comments", h.GetPostComments).Methods(http.MethodGet)

	api.HandleFunc("/events", h.CreateEvent).Methods(http.MethodPost)
	api.HandleFunc("/events", h.ListEvents).Methods(http.MethodGet)

	api.HandleFunc("/resources", h.ShareResource).Methods(http.MethodPost)
	api.HandleFunc("/resources", h.ListResources).Methods(http.MethodGet)
	api.HandleFunc("/resources/{resourceId}/approve", h.ApproveResource).Methods(http.MethodPost)

	api.HandleFunc("/mentorship", h.RequestMentorship).Methods(http.MethodPost)
	api.HandleFunc("/mentorship", h.ListMentorships).Methods(http.MethodGet)
	api.HandleFunc("/mentorship/{mentorshipId}/respond", h.RespondMentorship).Methods(http.MethodPost)

	api.HandleFunc("/calendar", h.AddCalendarEntry).Methods(http.MethodPost)
	api.HandleFunc("/calendar", h.ListCalendar).Methods(http.MethodGet)

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "Маршрут не найден", http.StatusNotFound)
	})
	methodNotAllowed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	// mux does not inherit these into subrouters
	for _, router := range []*mux.Router{r, api} {
		router.NotFoundHandler = notFound
		router.MethodNotAllowedHandler = methodNotAllowed
	}

	return r
}
