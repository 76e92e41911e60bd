package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	tmpl := Templates()

	require.NotNil(t, tmpl.Lookup("index.html"))
	require.NotNil(t, tmpl.Lookup("home.html"))

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "home.html", map[string]interface{}{
		"Title":  "t",
		"Fields": []string{"Temperature"},
		"Result": "<b>1.0000</b>",
		"OK":     true,
	}))
	assert.Contains(t, buf.String(), `name="Temperature"`)
	assert.Contains(t, buf.String(), "The predicted FWI is &lt;b&gt;1.0000&lt;/b&gt;")

	buf.Reset()
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "home.html", map[string]interface{}{
		"Title":  "t",
		"Fields": []string{"Temperature"},
		"Result": "Error: bad",
		"OK":     false,
	}))
	assert.Contains(t, buf.String(), `<h2 id="result">Error: bad</h2>`)
	assert.NotContains(t, buf.String(), "The predicted FWI is")
}
