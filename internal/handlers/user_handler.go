package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtkhuong/warbler/internal/models"
	"github.com/dtkhuong/warbler/internal/monitoring"
	"github.com/dtkhuong/warbler/internal/repositories"
)

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	return uint(id), err
}

// ListUsers shows all users, or a case-insensitive username search
// when a 'q' query parameter is present.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	users, err := h.users.Search(query)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	h.render(w, r, http.StatusOK, "users_index.html", map[string]any{
		"Users": users,
		"Query": query,
	})
}

// ShowUser renders a public profile with its 100 most recent messages.
func (h *Handler) ShowUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	user, err := h.users.FindByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	messages, err := h.messages.RecentByAuthor(user.ID, 100)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	likes, err := h.likes.ForUser(user.ID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"User":      user,
		"Messages":  messages,
		"LikeCount": len(likes),
	}
	if current := h.currentUser(r); current != nil {
		following, err := h.follows.IsFollowing(current.ID, user.ID)
		if err != nil {
			http.Error(w, "Database error", http.StatusInternalServerError)
			return
		}
		data["CurrentUser"] = current
		data["IsFollowing"] = following
	}
	h.render(w, r, http.StatusOK, "user_show.html", data)
}

// ShowFollowing lists who this user follows. Logged-in users only.
func (h *Handler) ShowFollowing(w http.ResponseWriter, r *http.Request) {
	if h.currentUser(r) == nil {
		h.unauthorized(w, r)
		return
	}
	h.showFollowPage(w, r, "following.html", h.follows.Following)
}

// ShowFollowers lists this user's followers. Logged-in users only.
func (h *Handler) ShowFollowers(w http.ResponseWriter, r *http.Request) {
	if h.currentUser(r) == nil {
		h.unauthorized(w, r)
		return
	}
	h.showFollowPage(w, r, "followers.html", h.follows.Followers)
}

func (h *Handler) showFollowPage(w http.ResponseWriter, r *http.Request, template string, edgeQuery func(uint) ([]models.User, error)) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}
	user, err := h.users.FindByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	users, err := edgeQuery(user.ID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	h.render(w, r, http.StatusOK, template, map[string]any{
		"User":  user,
		"Users": users,
	})
}

// FollowUser adds a follow edge from the current user to the target.
func (h *Handler) FollowUser(w http.ResponseWriter, r *http.Request) {
	current := h.currentUser(r)
	if current == nil {
		h.unauthorized(w, r)
		return
	}
	targetID, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	switch err := h.follows.Follow(current.ID, targetID); {
	case errors.Is(err, repositories.ErrNotFound):
		http.Error(w, "User not found", http.StatusNotFound)
		return
	case errors.Is(err, repositories.ErrSelfFollow):
		h.addFlash(w, r, "You cannot follow yourself.")
	case err != nil:
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	default:
		monitoring.FollowsCreated.Inc()
	}
	http.Redirect(w, r, fmt.Sprintf("/users/%d/following", current.ID), http.StatusFound)
}

// UnfollowUser removes the follow edge; a missing edge is a no-op.
func (h *Handler) UnfollowUser(w http.ResponseWriter, r *http.Request) {
	current := h.currentUser(r)
	if current == nil {
		h.unauthorized(w, r)
		return
	}
	targetID, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}
	if err := h.follows.Unfollow(current.ID, targetID); err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/users/%d/following", current.ID), http.StatusFound)
}

// EditProfile updates the current user's profile. The current password
// must verify before any field changes; a wrong password applies nothing.
func (h *Handler) EditProfile(w http.ResponseWriter, r *http.Request) {
	current := h.currentUser(r)
	if current == nil {
		h.unauthorized(w, r)
		return
	}

	if r.Method == http.MethodGet {
		h.render(w, r, http.StatusOK, "profile_edit.html", profileForm(
			current.Username, current.Email, current.ImageURL,
			current.HeaderImageURL, current.Bio, current.Location,
		))
		return
	}

	username := r.PostFormValue("username")
	email := r.PostFormValue("email")
	imageURL := r.PostFormValue("image_url")
	headerImageURL := r.PostFormValue("header_image_url")
	bio := r.PostFormValue("bio")
	location := r.PostFormValue("location")
	form := profileForm(username, email, imageURL, headerImageURL, bio, location)

	password := r.PostFormValue("password")
	if bcrypt.CompareHashAndPassword([]byte(current.PwHash), []byte(password)) != nil {
		form["Error"] = "Invalid password"
		h.render(w, r, http.StatusUnauthorized, "profile_edit.html", form)
		return
	}

	current.Username = username
	current.Email = email
	current.ImageURL = imageURL
	current.HeaderImageURL = headerImageURL
	current.Bio = bio
	current.Location = location

	if err := h.users.Update(current); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			form["Error"] = "Username or e-mail already taken"
			h.render(w, r, http.StatusBadRequest, "profile_edit.html", form)
			return
		}
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/users/%d", current.ID), http.StatusFound)
}

func profileForm(username, email, imageURL, headerImageURL, bio, location string) map[string]any {
	return map[string]any{
		"Username":       username,
		"Email":          email,
		"ImageURL":       imageURL,
		"HeaderImageURL": headerImageURL,
		"Bio":            bio,
		"Location":       location,
	}
}

// DeleteAccount removes the current user and everything they own, then
// ends the session.
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	current := h.currentUser(r)
	if current == nil {
		h.unauthorized(w, r)
		return
	}
	if err := h.users.Delete(current.ID); err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	h.logOut(w, r)
	http.Redirect(w, r, "/signup", http.StatusFound)
}

// ShowLikes renders the messages a user has liked. Public.
func (h *Handler) ShowLikes(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}
	user, err := h.users.FindByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	likes, err := h.likes.ForUser(user.ID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	ids := make([]uint, 0, len(likes))
	for _, like := range likes {
		ids = append(ids, like.MessageID)
	}
	messages, err := h.messages.FindByIDs(ids)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, "user_likes.html", map[string]any{
		"User":     user,
		"Messages": messages,
	})
}
