package handlers

import (
	"net/http"

	"campusfeed/internal/models"
	"campusfeed/internal/service"

	"github.com/gorilla/mux"
)

type postIDRequest struct {
	PostID string `json:"postId"`
}

type commentRequest struct {
	PostID  string `json:"postId"`
	Content string `json:"content"`
}

type CreatePostResponse struct {
	Success bool   `json:"success"`
	PostID  string `json:"postId"`
}

type LikesResponse struct {
	Success bool           `json:"success"`
	Likes   []models.Liker `json:"likes"`
}

type CommentResponse struct {
	Success bool            `json:"success"`
	Comment *models.Comment `json:"comment"`
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	var req service.CreatePostRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), id, req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, CreatePostResponse{Success: true, PostID: post.PostID}, http.StatusCreated)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	var req postIDRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	deleted, err := h.PostService.DeletePost(r.Context(), id, req.PostID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	if !deleted {
		WriteSuccess(w, SuccessResponse{Success: false, Message: "Пост не найден или не принадлежит вам"}, http.StatusForbidden)
		return
	}

	WriteSuccess(w, SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	var req postIDRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	likes, err := h.InteractionService.Like(r.Context(), id, req.PostID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, LikesResponse{Success: true, Likes: likes}, http.StatusOK)
}

func (h *Handlers) UnlikePost(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	var req postIDRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	likes, err := h.InteractionService.Unlike(r.Context(), id, req.PostID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, LikesResponse{Success: true, Likes: likes}, http.StatusOK)
}

func (h *Handlers) CommentPost(w http.ResponseWriter, r *http.Request) {
	id, ok := caller(w, r)
	if !ok {
		return
	}

	var req commentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	comment, err := h.InteractionService.Comment(r.Context(), id, req.PostID, req.Content)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, CommentResponse{Success: true, Comment: comment}, http.StatusOK)
}

func (h *Handlers) GetPostLikes(w http.ResponseWriter, r *http.Request) {
	likes, err := h.InteractionService.ListLikes(r.Context(), mux.Vars(r)["postId"])
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, likes, http.StatusOK)
}

func (h *Handlers) GetPostComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.InteractionService.ListComments(r.Context(), mux.Vars(r)["postId"])
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteSuccess(w, comments, http.StatusOK)
}
