package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dtkhuong/warbler/internal/database"
	"github.com/dtkhuong/warbler/internal/handlers"
	"github.com/dtkhuong/warbler/internal/models"
	"github.com/dtkhuong/warbler/internal/render"
	"github.com/dtkhuong/warbler/internal/repositories"
	"github.com/dtkhuong/warbler/internal/routes"
)

// Use the same secret key as the CookieStore so tests can decode the
// session cookie the way a browser would carry it back.
var secretKey = []byte("development-key")

type testApp struct {
	handler http.Handler
	db      *gorm.DB
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open(dsn)
	require.NoError(t, err)

	renderer, err := render.New()
	require.NoError(t, err)

	h := handlers.New(
		repositories.NewUserRepository(db),
		repositories.NewMessageRepository(db),
		repositories.NewFollowRepository(db),
		repositories.NewLikeRepository(db),
		sessions.NewCookieStore(secretKey),
		renderer,
	)

	return &testApp{handler: routes.SetupRoutes(h), db: db}
}

// Helper function to perform HTTP requests
func (app *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	app.handler.ServeHTTP(rr, req)
	return rr
}

func (app *testApp) postForm(path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return app.do(req)
}

func (app *testApp) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return app.do(req)
}

// Helper function to sign up a user; signup also logs the user in, so
// the returned cookie authenticates subsequent requests.
func (app *testApp) signup(t *testing.T, username, password string) *http.Cookie {
	t.Helper()
	form := url.Values{}
	form.Add("username", username)
	form.Add("email", username+"@example.com")
	form.Add("password", password)

	resp := app.postForm("/signup", form, nil)
	require.Equal(t, http.StatusFound, resp.Code, "signup should redirect: %s", resp.Body.String())
	return sessionCookie(t, resp)
}

func (app *testApp) login(username, password string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Add("username", username)
	form.Add("password", password)
	return app.postForm("/login", form, nil)
}

func sessionCookie(t *testing.T, resp *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Result().Cookies() {
		if cookie.Name == handlers.SessionName {
			return cookie
		}
	}
	t.Fatal("session cookie not found")
	return nil
}

func (app *testApp) userByName(t *testing.T, username string) *models.User {
	t.Helper()
	var user models.User
	require.NoError(t, app.db.Where("username = ?", username).First(&user).Error)
	return &user
}

func (app *testApp) messageByText(t *testing.T, text string) *models.Message {
	t.Helper()
	var message models.Message
	require.NoError(t, app.db.Where("text = ?", text).First(&message).Error)
	return &message
}
