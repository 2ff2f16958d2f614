package linkpreview

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
<title>Fallback Title</title>
<meta property="og:title" content="OG Title" />
<meta content="OG Description" property="og:description" />
<meta property="og:image" content="https://example.com/img.png" />
<meta property="og:site_name" content="Example" />
</head>
<body>hello</body>
</html>`

func TestFetchOpenGraph(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	f := NewFetcher()
	preview, err := f.Fetch(context.Background(), srv.URL)

	assert.NoError(t, err)
	assert.Equal(t, "OG Title", *preview.Title)
	assert.Equal(t, "OG Description", *preview.Description) // reversed attribute order
	assert.Equal(t, "https://example.com/img.png", *preview.Image)
	assert.Equal(t, "Example", *preview.SiteName)
	assert.Equal(t, srv.URL, preview.Url)
	assert.Contains(t, preview.Favicon, "google.com/s2/favicons")
}

func TestFetchTitleTagFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title> Plain Page </title></head></html>`))
	}))
	defer srv.Close()

	f := NewFetcher()
	preview, err := f.Fetch(context.Background(), srv.URL)

	assert.NoError(t, err)
	assert.Equal(t, "Plain Page", *preview.Title)
	assert.Nil(t, preview.Description)
	assert.Nil(t, preview.Image)
}

func TestFetchDegradesOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewFetcher()
	preview, err := f.Fetch(context.Background(), srv.URL)

	assert.NoError(t, err)
	assert.Nil(t, preview.Title)
	assert.NotEmpty(t, preview.Domain)
	assert.Contains(t, preview.Favicon, preview.Domain)
}

func TestFetchInvalidURL(t *testing.T) {
	f := NewFetcher()
	_, err := f.Fetch(context.Background(), "not a url")
	assert.Error(t, err)
}

func TestFetchStripsWww(t *testing.T) {
	f := NewFetcher()
	// Unreachable host still yields the degraded preview.
	preview, err := f.Fetch(context.Background(), "https://www.example.invalid/page")
	assert.NoError(t, err)
	assert.Equal(t, "example.invalid", preview.Domain)
}

func TestFetchCaches(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	f := NewFetcher()
	for i := 0; i < 3; i++ {
		_, err := f.Fetch(context.Background(), srv.URL)
		assert.NoError(t, err)
	}
	assert.Equal(t, 1, hits)
}

func TestMetaContentBothOrders(t *testing.T) {
	propFirst := `<meta property="og:title" content="A">`
	contentFirst := `<meta content="B" property="og:title">`

	a := metaContent(propFirst, "og:title")
	assert.Equal(t, "A", *a)

	b := metaContent(contentFirst, "og:title")
	assert.Equal(t, "B", *b)

	assert.Nil(t, metaContent(strings.ToUpper("<p>no meta</p>"), "og:title"))
}
