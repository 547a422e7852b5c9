package site

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/catalog"
)

// pngHeader is enough of a PNG for content sniffing.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer(t *testing.T, opts Options) *Server {
	t.Helper()
	if opts.Catalog == nil {
		c, err := catalog.Default()
		require.NoError(t, err)
		opts.Catalog = c
	}
	if opts.Salt == "" {
		opts.Salt = "test-salt"
	}
	s, err := New(opts)
	require.NoError(t, err)
	return s
}

func get(t *testing.T, s *Server, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func postContact(t *testing.T, s *Server, form url.Values, htmx bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestNewRequiresCatalog(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, Options{})

	w := get(t, s, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestIndexDefaultsToAbout(t *testing.T) {
	s := newTestServer(t, Options{})

	w := get(t, s, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<html")
	assert.Contains(t, body, "About Me")
	assert.Contains(t, body, "Welcome to my portfolio!")
	assert.Contains(t, body, `class="nav-item active" href="/?section=about"`)
	for _, label := range []string{"Education", "Skills", "Experience", "Portfolio", "Contact"} {
		assert.Contains(t, body, label)
	}
}

func TestIndexUnknownSectionFallsBackToAbout(t *testing.T) {
	s := newTestServer(t, Options{})

	w := get(t, s, "/?section=blog", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "About Me")
}

func TestSkillsFilter(t *testing.T) {
	tests := []struct {
		name       string
		defaultMin int
		target     string
		contains   []string
		excludes   []string
	}{
		{
			name:     "minimum 85",
			target:   "/?section=skills&min=85",
			contains: []string{"Object-Oriented Programming", "Showing 4 of 11 skills", `style="width: 95%"`, "<output>85</output>", "oninput="},
			excludes: []string{"Networking", "Cybersecurity"},
		},
		{
			name:     "everything at zero",
			target:   "/section/skills?min=0",
			contains: []string{"Showing 11 of 11 skills", "Networking"},
		},
		{
			name:     "nothing above the scale",
			target:   "/section/skills?min=101",
			contains: []string{"Showing 0 of 11 skills", "No skills at or above this level."},
			excludes: []string{"bar-label"},
		},
		{
			name:     "out of range is clamped",
			target:   "/section/skills?min=-20",
			contains: []string{"Showing 11 of 11 skills"},
		},
		{
			name:     "malformed minimum uses default",
			target:   "/section/skills?min=abc",
			contains: []string{"Showing 11 of 11 skills"},
		},
		{
			name:       "configured default",
			defaultMin: 90,
			target:     "/section/skills",
			contains:   []string{"Showing 2 of 11 skills", "Web Development", "Object-Oriented Programming"},
			excludes:   []string{"Databases"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, Options{DefaultMinLevel: tt.defaultMin})

			w := get(t, s, tt.target, nil)
			require.Equal(t, http.StatusOK, w.Code)
			body := w.Body.String()
			for _, want := range tt.contains {
				assert.Contains(t, body, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, body, unwanted)
			}
		})
	}
}

func TestPortfolioFilter(t *testing.T) {
	s := newTestServer(t, Options{})

	t.Run("java", func(t *testing.T) {
		w := get(t, s, "/section/portfolio?tech=Java", map[string]string{"HX-Request": "true"})
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.NotContains(t, body, "<html")
		assert.Contains(t, body, "Palit-A Nearby Vendor Commerce App")
		assert.Contains(t, body, `value="Java" selected`)
		assert.NotContains(t, body, "SyncUp")
		assert.NotContains(t, body, "Cebu City AI Symptom Check Helpdesk")
	})

	t.Run("all", func(t *testing.T) {
		w := get(t, s, "/section/portfolio", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "SyncUp")
		assert.Contains(t, body, "Cebu City AI Symptom Check Helpdesk")
		assert.Contains(t, body, "Palit-A Nearby Vendor Commerce App")
		assert.Equal(t, 3, strings.Count(body, `<div class="column">`))
		assert.Equal(t, 2, strings.Count(body, "Live Preview"))
	})

	t.Run("malformed min keeps technology", func(t *testing.T) {
		w := get(t, s, "/section/portfolio?min=abc&tech=Java", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Palit-A Nearby Vendor Commerce App")
		assert.NotContains(t, w.Body.String(), "SyncUp")
	})

	t.Run("unknown technology", func(t *testing.T) {
		w := get(t, s, "/section/portfolio?tech=COBOL", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "SyncUp")
		assert.Contains(t, w.Body.String(), `value="All" selected`)
	})
}

func TestPortfolioNoResults(t *testing.T) {
	c, err := catalog.Parse([]byte(`
profile: { name: A, title: B, email: a@example.com }
technologies: [Go, Rust]
projects:
  - { title: Gopher, technologies: [Go], repository_url: "https://example.com/p" }
`))
	require.NoError(t, err)
	s := newTestServer(t, Options{Catalog: c})

	w := get(t, s, "/section/portfolio?tech=Rust", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "No projects use Rust yet.")
	assert.NotContains(t, body, `<div class="column">`)
	assert.NotContains(t, body, "Gopher")
}

func TestUnknownSectionFragment(t *testing.T) {
	s := newTestServer(t, Options{})

	w := get(t, s, "/section/blog", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOtherSections(t *testing.T) {
	s := newTestServer(t, Options{})

	tests := []struct {
		section  string
		contains []string
	}{
		{"education", []string{"Education &amp; Certifications", "Cebu Institute of Technology - University", "<li>Python</li>"}},
		{"experience", []string{"Professional Experience", "Android Recipe App", "Capstone Project"}},
		{"contact", []string{"Contact Information", "markkenneth.badilla@cit.edu", `name="fullName"`}},
	}

	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			w := get(t, s, "/section/"+tt.section, nil)
			require.Equal(t, http.StatusOK, w.Code)
			for _, want := range tt.contains {
				assert.Contains(t, w.Body.String(), want)
			}
		})
	}
}

func TestContactSubmission(t *testing.T) {
	s := newTestServer(t, Options{})
	valid := url.Values{
		"fullName": {"Ana"},
		"email":    {"ana@example.com"},
		"message":  {"Hello there"},
	}

	t.Run("htmx fragment", func(t *testing.T) {
		w := postContact(t, s, valid, true)
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Thank you, Ana!")
		assert.NotContains(t, body, "<html")
	})

	t.Run("plain form post renders the page", func(t *testing.T) {
		w := postContact(t, s, valid, false)
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "<html")
		assert.Contains(t, body, "Contact Information")
		assert.Contains(t, body, "Thank you, Ana!")
	})

	t.Run("name is escaped", func(t *testing.T) {
		form := url.Values{"fullName": {"<b>Ana</b>"}, "email": {"ana@example.com"}, "message": {"Hi"}}
		w := postContact(t, s, form, true)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "&lt;b&gt;Ana&lt;/b&gt;")
		assert.NotContains(t, w.Body.String(), "<b>Ana</b>")
	})
}

func TestContactNameOnly(t *testing.T) {
	s := newTestServer(t, Options{})

	tests := []struct {
		name string
		form url.Values
	}{
		{"name alone", url.Values{"fullName": {"Ana"}}},
		{"blank email and message", url.Values{"fullName": {"Ana"}, "email": {""}, "message": {""}}},
		{"blank email with message", url.Values{"fullName": {"Ana"}, "email": {""}, "message": {"hi"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postContact(t, s, tt.form, true)
			require.Equal(t, http.StatusOK, w.Code)
			body := w.Body.String()
			assert.Contains(t, body, "Thank you, Ana!")
			assert.NotContains(t, body, "alert error")
		})
	}
}

func TestContactValidation(t *testing.T) {
	s := newTestServer(t, Options{})

	tests := []struct {
		name string
		form url.Values
		want string
	}{
		{
			name: "missing name",
			form: url.Values{"email": {"ana@example.com"}, "message": {"Hi"}},
			want: "Name is required.",
		},
		{
			name: "bad email",
			form: url.Values{"fullName": {"Ana"}, "email": {"not-an-email"}, "message": {"Hi"}},
			want: "Email must be a valid email address.",
		},
		{
			name: "message too long",
			form: url.Values{"fullName": {"Ana"}, "message": {strings.Repeat("x", 5001)}},
			want: "Message is too long.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postContact(t, s, tt.form, true)
			require.Equal(t, http.StatusOK, w.Code)
			body := w.Body.String()
			assert.NotContains(t, body, "<html")
			assert.Contains(t, body, "Please check the form and try again.")
			assert.Contains(t, body, tt.want)
			assert.NotContains(t, body, "Thank you")
		})
	}
}

func TestContactValidationPlainPost(t *testing.T) {
	s := newTestServer(t, Options{})

	w := postContact(t, s, url.Values{"email": {"ana@example.com"}}, false)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<html")
	assert.Contains(t, body, "Contact Information")
	assert.Contains(t, body, `name="fullName"`)
	assert.Contains(t, body, "Name is required.")
	assert.NotContains(t, body, "Thank you")
}

func TestBackdrop(t *testing.T) {
	dir := t.TempDir()

	t.Run("png is inlined", func(t *testing.T) {
		path := filepath.Join(dir, "bg.png")
		require.NoError(t, os.WriteFile(path, pngHeader, 0o644))

		b := LoadBackdrop(path)
		require.True(t, b.Present())
		assert.Contains(t, string(b.CSS()), "data:image/png;base64,")
	})

	t.Run("missing file degrades", func(t *testing.T) {
		b := LoadBackdrop(filepath.Join(dir, "missing.png"))
		assert.False(t, b.Present())
		assert.Empty(t, b.CSS())
	})

	t.Run("non-image degrades", func(t *testing.T) {
		path := filepath.Join(dir, "bg.txt")
		require.NoError(t, os.WriteFile(path, []byte("just some text"), 0o644))
		assert.False(t, LoadBackdrop(path).Present())
	})

	t.Run("empty path", func(t *testing.T) {
		assert.False(t, LoadBackdrop("").Present())
	})
}

func TestPageBackdrop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bg.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o644))

	with := newTestServer(t, Options{Backdrop: LoadBackdrop(path)})
	w := get(t, with, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "data:image/png;base64,")

	without := newTestServer(t, Options{Backdrop: LoadBackdrop(filepath.Join(t.TempDir(), "none.png"))})
	w = get(t, without, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "<style>")
	assert.Contains(t, w.Body.String(), "About Me")
}

func TestStaticAssets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "style.css"), []byte("body{}"), 0o644))
	s := newTestServer(t, Options{StaticDir: dir})

	w := get(t, s, "/static/style.css", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body{}", w.Body.String())
}

func TestHashIP(t *testing.T) {
	a := hashIP("192.0.2.1", "salt-a")
	assert.Len(t, a, 16)
	assert.Equal(t, a, hashIP("192.0.2.1", "salt-a"))
	assert.NotEqual(t, a, hashIP("192.0.2.1", "salt-b"))
	assert.NotEqual(t, a, hashIP("192.0.2.2", "salt-a"))
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })

	s := newTestServer(t, Options{})

	get(t, s, "/?section=skills", nil)
	line := buf.String()
	assert.Contains(t, line, "GET / 200")
	assert.Contains(t, line, "visitor="+hashIP("192.0.2.1", "test-salt"))
	assert.NotContains(t, line, "192.0.2.1")

	buf.Reset()
	get(t, s, "/", map[string]string{"DNT": "1"})
	assert.Empty(t, buf.String())

	buf.Reset()
	get(t, s, "/healthz", nil)
	assert.Empty(t, buf.String())
}
