package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body><h1>Open Roles</h1></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.Contains(t, result.HTML, "<h1>Open Roles</h1>")
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.NotNil(t, result) // Result is returned even on error
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "404")
}

func TestURL_SetsUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, gotAgent)
}

func TestExtractMainText_CareerPageSelector(t *testing.T) {
	html := `
	<html>
		<body>
			<nav>Navigation</nav>
			<div class="sidebar">Sidebar junk</div>
			<div class="jobs-list">
				<h2>Senior Backend Engineer</h2>
				<p>5 years experience in Go</p>
			</div>
			<footer>Footer</footer>
		</body>
	</html>`

	text, err := ExtractMainText(html, CareerPageSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Backend Engineer")
	assert.Contains(t, text, "5 years experience")
	assert.NotContains(t, text, "Navigation")
	assert.NotContains(t, text, "Sidebar junk")
	assert.NotContains(t, text, "Footer")
}

func TestExtractMainText_FallbackToBody(t *testing.T) {
	html := `
	<html>
		<body>
			<div>Some listing content here.</div>
		</body>
	</html>`

	text, err := ExtractMainText(html, CareerPageSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Some listing content here")
}

func TestExtractMainText_StripsScripts(t *testing.T) {
	html := `
	<html>
		<body>
			<main>
				<script>trackVisit();</script>
				<p>Real content.</p>
			</main>
		</body>
	</html>`

	text, err := ExtractMainText(html, CareerPageSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Real content")
	assert.NotContains(t, text, "trackVisit")
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("short"))
	assert.True(t, ShouldUseBrowser("   \n  "))
	assert.False(t, ShouldUseBrowser(strings.Repeat("job listing text ", 40)))
}

func TestCareerPage_PopulatesText(t *testing.T) {
	body := "<html><body><main>" + strings.Repeat("<p>Software Engineer opening with Go experience.</p>", 20) + "</main></body></html>"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	result, err := CareerPage(context.Background(), server.URL, nil, false, false)
	require.NoError(t, err)
	assert.Contains(t, result.Text, "Software Engineer opening")
}

func TestCareerPageSelectors(t *testing.T) {
	selectors := CareerPageSelectors()
	assert.Contains(t, selectors, ".jobs-list")
	assert.Contains(t, selectors, "main")
}
