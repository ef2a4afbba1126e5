package web

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_Parse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{"landing.tmpl", "uncontrolled.tmpl", "hookform.tmpl", "tile", "form", "header", "footer"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestPictureURL(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,iVBORw0KGgo=", string(pictureURL("data:image/png;base64,iVBORw0KGgo=")))
	assert.Empty(t, pictureURL("javascript:alert(1)"))
	assert.Empty(t, pictureURL("data:text/html;base64,PGI+"))
	assert.Empty(t, pictureURL(""))
}

func TestTileRendersPlaceholderForNonImage(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	data := map[string]any{
		"Variant":    "uncontrolled",
		"Title":      "Uncontrolled Form",
		"Submission": map[string]any{"Picture": "not-a-data-url", "Password": "Abc123!@"},
	}
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "tile", data))

	assert.Contains(t, buf.String(), "Invalid image format")
	assert.Contains(t, buf.String(), "Password: Abc123!@")
}

func TestAssetsFS(t *testing.T) {
	for _, name := range []string{"/app.js", "/app.css"} {
		f, err := AssetsFS().Open(name)
		require.NoError(t, err, name)

		body, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.NotEmpty(t, body)
		f.Close()
	}
}

func TestAppScript_ResumesRenderedFormState(t *testing.T) {
	f, err := AssetsFS().Open("/app.js")
	require.NoError(t, err)
	defer f.Close()

	body, err := io.ReadAll(f)
	require.NoError(t, err)
	script := string(body)

	assert.Contains(t, script, "getAttribute('data-seq')")
	assert.Contains(t, script, "getAttribute('data-touched')")
	// responses of superseded validations are dropped
	assert.Contains(t, script, "id !== validations")
}
