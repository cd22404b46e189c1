package render

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllTemplatesParse(t *testing.T) {
	_, err := New()
	require.NoError(t, err)
}

func TestHTMLEscapesUserContent(t *testing.T) {
	renderer, err := New()
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	renderer.HTML(rr, 200, "signup.html", map[string]any{
		"Username": `<script>alert("x")</script>`,
	})

	assert.NotContains(t, rr.Body.String(), "<script>alert")
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
}
