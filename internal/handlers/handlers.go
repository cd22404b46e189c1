package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/dtkhuong/warbler/internal/models"
	"github.com/dtkhuong/warbler/internal/render"
	"github.com/dtkhuong/warbler/internal/repositories"
)

const (
	// SessionName is the cookie holding the logged-in user id.
	SessionName = "session-cookie"

	sessionUserKey = "user_id"
)

type Handler struct {
	users    repositories.UserRepository
	messages repositories.MessageRepository
	follows  repositories.FollowRepository
	likes    repositories.LikeRepository
	store    sessions.Store
	renderer *render.Renderer
}

func New(
	users repositories.UserRepository,
	messages repositories.MessageRepository,
	follows repositories.FollowRepository,
	likes repositories.LikeRepository,
	store sessions.Store,
	renderer *render.Renderer,
) *Handler {
	return &Handler{
		users:    users,
		messages: messages,
		follows:  follows,
		likes:    likes,
		store:    store,
		renderer: renderer,
	}
}

// currentUser resolves the session to a user. The id always comes from
// the session cookie, never from client-supplied parameters. Returns nil
// for anonymous requests and for stale sessions pointing at deleted users.
func (h *Handler) currentUser(r *http.Request) *models.User {
	session, err := h.store.Get(r, SessionName)
	if err != nil {
		return nil
	}
	id, ok := session.Values[sessionUserKey].(uint)
	if !ok {
		return nil
	}
	user, err := h.users.FindByID(id)
	if err != nil {
		return nil
	}
	return user
}

func (h *Handler) logIn(w http.ResponseWriter, r *http.Request, user *models.User) error {
	session, _ := h.store.Get(r, SessionName)
	session.Values[sessionUserKey] = user.ID
	return session.Save(r, w)
}

func (h *Handler) logOut(w http.ResponseWriter, r *http.Request) {
	session, _ := h.store.Get(r, SessionName)
	delete(session.Values, sessionUserKey)
	session.Save(r, w)
}

func (h *Handler) addFlash(w http.ResponseWriter, r *http.Request, message string) {
	session, _ := h.store.Get(r, SessionName)
	session.AddFlash(message)
	session.Save(r, w)
}

// unauthorized rejects a gated request from an anonymous session.
func (h *Handler) unauthorized(w http.ResponseWriter, r *http.Request) {
	h.addFlash(w, r, "Access unauthorized.")
	http.Redirect(w, r, "/", http.StatusFound)
}

// render injects the current user and pending flashes before handing the
// data to a template. Reading flashes mutates the session, so it is saved
// here, before any body bytes are written.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["CurrentUser"]; !ok {
		if user := h.currentUser(r); user != nil {
			data["CurrentUser"] = user
		}
	}
	if session, err := h.store.Get(r, SessionName); err == nil {
		raw := session.Flashes()
		flashes := make([]string, 0, len(raw))
		for _, f := range raw {
			if s, ok := f.(string); ok {
				flashes = append(flashes, s)
			}
		}
		data["Flashes"] = flashes
		session.Save(r, w)
	}
	h.renderer.HTML(w, status, name, data)
}
