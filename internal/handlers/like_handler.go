package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dtkhuong/warbler/internal/monitoring"
	"github.com/dtkhuong/warbler/internal/repositories"
)

// The like forms carry the message id as "data-msg" and, on profile
// pages, the viewed profile's id as "data-user". The acting user is
// always the session user.

func formUint(r *http.Request, field string) (uint, error) {
	value, err := strconv.ParseUint(r.PostFormValue(field), 10, 32)
	return uint(value), err
}

func (h *Handler) addLike(w http.ResponseWriter, r *http.Request, redirectTo string) {
	current := h.currentUser(r)
	if current == nil {
		h.unauthorized(w, r)
		return
	}
	messageID, err := formUint(r, "data-msg")
	if err != nil {
		http.Error(w, "Invalid message ID", http.StatusBadRequest)
		return
	}
	switch err := h.likes.Like(current.ID, messageID); {
	case errors.Is(err, repositories.ErrNotFound):
		http.Error(w, "Message not found", http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	monitoring.LikesCreated.Inc()
	http.Redirect(w, r, redirectTo, http.StatusFound)
}

func (h *Handler) removeLike(w http.ResponseWriter, r *http.Request, redirectTo string) {
	current := h.currentUser(r)
	if current == nil {
		h.unauthorized(w, r)
		return
	}
	messageID, err := formUint(r, "data-msg")
	if err != nil {
		http.Error(w, "Invalid message ID", http.StatusBadRequest)
		return
	}
	if err := h.likes.Unlike(current.ID, messageID); err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, redirectTo, http.StatusFound)
}

// AddLike handles likes submitted from the home timeline.
func (h *Handler) AddLike(w http.ResponseWriter, r *http.Request) {
	h.addLike(w, r, "/")
}

// RemoveLike handles unlikes submitted from the home timeline.
func (h *Handler) RemoveLike(w http.ResponseWriter, r *http.Request) {
	h.removeLike(w, r, "/")
}

// AddProfileLike handles likes submitted from a profile page and
// redirects back to it.
func (h *Handler) AddProfileLike(w http.ResponseWriter, r *http.Request) {
	profileID, err := formUint(r, "data-user")
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}
	h.addLike(w, r, fmt.Sprintf("/users/%d", profileID))
}

// RemoveProfileLike handles unlikes submitted from a profile page.
func (h *Handler) RemoveProfileLike(w http.ResponseWriter, r *http.Request) {
	profileID, err := formUint(r, "data-user")
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}
	h.removeLike(w, r, fmt.Sprintf("/users/%d", profileID))
}
