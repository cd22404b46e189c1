package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dtkhuong/warbler/internal/models"
	"github.com/dtkhuong/warbler/internal/monitoring"
	"github.com/dtkhuong/warbler/internal/repositories"
)

// Home shows the anonymous landing page, or the 100 most recent
// messages from followed users for a logged-in session.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	current := h.currentUser(r)
	if current == nil {
		h.render(w, r, http.StatusOK, "home_anon.html", nil)
		return
	}

	followingIDs, err := h.follows.FollowingIDs(current.ID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	messages, err := h.messages.RecentByAuthors(followingIDs, 100)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	likes, err := h.likes.All()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	likeCounts := make(map[uint]int)
	for _, like := range likes {
		likeCounts[like.MessageID]++
	}

	h.render(w, r, http.StatusOK, "home.html", map[string]any{
		"CurrentUser": current,
		"Messages":    messages,
		"LikeCounts":  likeCounts,
	})
}

// NewMessage renders the compose form and creates the message on POST.
func (h *Handler) NewMessage(w http.ResponseWriter, r *http.Request) {
	current := h.currentUser(r)
	if current == nil {
		h.unauthorized(w, r)
		return
	}

	if r.Method == http.MethodGet {
		h.render(w, r, http.StatusOK, "message_new.html", nil)
		return
	}

	text := strings.TrimSpace(r.PostFormValue("text"))
	if text == "" || len(text) > models.MaxMessageLength {
		h.render(w, r, http.StatusBadRequest, "message_new.html", map[string]any{
			"Text":  text,
			"Error": fmt.Sprintf("Message must be between 1 and %d characters", models.MaxMessageLength),
		})
		return
	}

	message := &models.Message{Text: text, UserID: current.ID}
	if err := h.messages.Create(message); err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	monitoring.MessagesPosted.Inc()
	http.Redirect(w, r, fmt.Sprintf("/users/%d", current.ID), http.StatusFound)
}

// ShowMessage renders a single message. Publicly viewable.
func (h *Handler) ShowMessage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid message ID", http.StatusBadRequest)
		return
	}
	message, err := h.messages.FindByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		http.Error(w, "Message not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	h.render(w, r, http.StatusOK, "message_show.html", map[string]any{
		"Message": message,
	})
}

// DeleteMessage removes a message. Only the author may delete it; for
// anyone else the message does not exist.
func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	current := h.currentUser(r)
	if current == nil {
		h.unauthorized(w, r)
		return
	}
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid message ID", http.StatusBadRequest)
		return
	}
	switch err := h.messages.DeleteByAuthor(current.ID, id); {
	case errors.Is(err, repositories.ErrNotFound):
		http.Error(w, "Message not found", http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/users/%d", current.ID), http.StatusFound)
}
