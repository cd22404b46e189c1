package handlers

import (
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/dtkhuong/warbler/internal/models"
	"github.com/dtkhuong/warbler/internal/monitoring"
	"github.com/dtkhuong/warbler/internal/repositories"
)

// Signup renders the signup form and creates the account on POST. A
// duplicate username or e-mail re-presents the form with the entered
// values intact and no row written.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, r, http.StatusOK, "signup.html", nil)
		return
	}

	username := r.PostFormValue("username")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	imageURL := r.PostFormValue("image_url")

	form := map[string]any{
		"Username": username,
		"Email":    email,
		"ImageURL": imageURL,
	}

	if username == "" || email == "" || password == "" {
		form["Error"] = "Username, e-mail and password are all required"
		h.render(w, r, http.StatusBadRequest, "signup.html", form)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Error hashing password", http.StatusInternalServerError)
		return
	}

	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}

	user := &models.User{
		Username:       username,
		Email:          email,
		PwHash:         string(hash),
		ImageURL:       imageURL,
		HeaderImageURL: models.DefaultHeaderImageURL,
	}
	if err := h.users.Create(user); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			form["Error"] = "Username already taken"
			h.render(w, r, http.StatusBadRequest, "signup.html", form)
			return
		}
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	monitoring.SignupSuccess.Inc()
	h.logIn(w, r, user)
	http.Redirect(w, r, "/", http.StatusFound)
}

// Login verifies the password hash and binds the session to the user id.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, r, http.StatusOK, "login.html", nil)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.users.FindByUsername(username)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PwHash), []byte(password)) != nil {
		monitoring.LoginFailure.WithLabelValues("invalid_credentials").Inc()
		h.render(w, r, http.StatusUnauthorized, "login.html", map[string]any{
			"Username": username,
			"Error":    "Invalid credentials.",
		})
		return
	}

	monitoring.LoginSuccess.Inc()
	h.logIn(w, r, user)
	h.addFlash(w, r, "Hello, "+user.Username+"!")
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout invalidates the session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.store.Get(r, SessionName)
	delete(session.Values, sessionUserKey)
	session.AddFlash("You have been logged out")
	session.Save(r, w)
	http.Redirect(w, r, "/", http.StatusFound)
}
