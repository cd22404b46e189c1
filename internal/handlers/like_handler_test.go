package handlers_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtkhuong/warbler/internal/models"
)

func likeForm(messageID uint) url.Values {
	form := url.Values{}
	form.Add("data-msg", fmt.Sprintf("%d", messageID))
	return form
}

func TestLikeFromTimeline(t *testing.T) {
	app := newTestApp(t)
	aliceCookie := app.signup(t, "alice", "password123")
	bobCookie := app.signup(t, "bob", "password123")
	bob := app.userByName(t, "bob")

	form := url.Values{}
	form.Add("text", "hello world")
	app.postForm("/messages/new", form, aliceCookie)
	message := app.messageByText(t, "hello world")

	resp := app.postForm("/liking", likeForm(message.ID), bobCookie)
	require.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, "/", resp.Header().Get("Location"))

	var likes []models.Like
	require.NoError(t, app.db.Where("user_id = ?", bob.ID).Find(&likes).Error)
	require.Len(t, likes, 1)
	assert.Equal(t, message.ID, likes[0].MessageID)

	// the likes page shows the liked message
	page := app.get(fmt.Sprintf("/users/%d/likes", bob.ID), nil)
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "hello world")
}

func TestLikeTwiceViaRoute(t *testing.T) {
	app := newTestApp(t)
	aliceCookie := app.signup(t, "alice", "password123")
	bobCookie := app.signup(t, "bob", "password123")

	form := url.Values{}
	form.Add("text", "hello world")
	app.postForm("/messages/new", form, aliceCookie)
	message := app.messageByText(t, "hello world")

	// rapid repeated submissions must not create duplicate edges
	app.postForm("/liking", likeForm(message.ID), bobCookie)
	app.postForm("/liking", likeForm(message.ID), bobCookie)

	var count int64
	require.NoError(t, app.db.Model(&models.Like{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUnlike(t *testing.T) {
	app := newTestApp(t)
	aliceCookie := app.signup(t, "alice", "password123")
	bobCookie := app.signup(t, "bob", "password123")

	form := url.Values{}
	form.Add("text", "hello world")
	app.postForm("/messages/new", form, aliceCookie)
	message := app.messageByText(t, "hello world")

	app.postForm("/liking", likeForm(message.ID), bobCookie)
	resp := app.postForm("/unliking", likeForm(message.ID), bobCookie)
	require.Equal(t, http.StatusFound, resp.Code)

	var count int64
	require.NoError(t, app.db.Model(&models.Like{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// unliking again is a no-op, not an error
	resp = app.postForm("/unliking", likeForm(message.ID), bobCookie)
	require.Equal(t, http.StatusFound, resp.Code)
}

func TestLikeFromProfileRedirectsBack(t *testing.T) {
	app := newTestApp(t)
	aliceCookie := app.signup(t, "alice", "password123")
	bobCookie := app.signup(t, "bob", "password123")
	alice := app.userByName(t, "alice")

	form := url.Values{}
	form.Add("text", "hello world")
	app.postForm("/messages/new", form, aliceCookie)
	message := app.messageByText(t, "hello world")

	profileLike := likeForm(message.ID)
	profileLike.Add("data-user", fmt.Sprintf("%d", alice.ID))

	resp := app.postForm("/user/liking", profileLike, bobCookie)
	require.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, fmt.Sprintf("/users/%d", alice.ID), resp.Header().Get("Location"))

	resp = app.postForm("/user/unliking", profileLike, bobCookie)
	require.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, fmt.Sprintf("/users/%d", alice.ID), resp.Header().Get("Location"))
}

func TestLikeMissingMessageRoute(t *testing.T) {
	app := newTestApp(t)
	cookie := app.signup(t, "alice", "password123")

	resp := app.postForm("/liking", likeForm(9999), cookie)
	require.Equal(t, http.StatusNotFound, resp.Code)
}
