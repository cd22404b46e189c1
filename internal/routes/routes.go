package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dtkhuong/warbler/internal/handlers"
	"github.com/dtkhuong/warbler/internal/logger"
	"github.com/dtkhuong/warbler/internal/monitoring"
)

// SetupRoutes initializes all the application routes
// The routing logic is isolated here
func SetupRoutes(h *handlers.Handler) http.Handler {
	router := mux.NewRouter()

	// Auth routes
	router.HandleFunc("/signup", h.Signup).Methods("GET", "POST")
	router.HandleFunc("/login", h.Login).Methods("GET", "POST")
	router.HandleFunc("/logout", h.Logout).Methods("GET")

	// User routes
	router.HandleFunc("/users", h.ListUsers).Methods("GET")
	router.HandleFunc("/users/profile", h.EditProfile).Methods("GET", "POST")
	router.HandleFunc("/users/delete", h.DeleteAccount).Methods("POST")
	router.HandleFunc("/users/follow/{id:[0-9]+}", h.FollowUser).Methods("POST")
	router.HandleFunc("/users/stop-following/{id:[0-9]+}", h.UnfollowUser).Methods("POST")
	router.HandleFunc("/users/{id:[0-9]+}", h.ShowUser).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}/following", h.ShowFollowing).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}/followers", h.ShowFollowers).Methods("GET")
	router.HandleFunc("/users/{id:[0-9]+}/likes", h.ShowLikes).Methods("GET")

	// Message routes
	router.HandleFunc("/messages/new", h.NewMessage).Methods("GET", "POST")
	router.HandleFunc("/messages/{id:[0-9]+}", h.ShowMessage).Methods("GET")
	router.HandleFunc("/messages/{id:[0-9]+}/delete", h.DeleteMessage).Methods("POST")

	// Like routes
	router.HandleFunc("/liking", h.AddLike).Methods("POST")
	router.HandleFunc("/unliking", h.RemoveLike).Methods("POST")
	router.HandleFunc("/user/liking", h.AddProfileLike).Methods("POST")
	router.HandleFunc("/user/unliking", h.RemoveProfileLike).Methods("POST")

	// Homepage
	router.HandleFunc("/", h.Home).Methods("GET")

	// Add metrics endpoint
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	router.Use(noCacheMiddleware)

	return monitoring.InstrumentHandler(logger.RequestLogger(router))
}

// noCacheMiddleware disables client caching on every response.
func noCacheMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}
