package cron

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"albadri_web/pkg/config"
	"albadri_web/pkg/feed"
)

func resetSitemap() {
	sitemapMu.Lock()
	sitemapXML = nil
	sitemapMu.Unlock()
}

func newFeedServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRegenerateSitemap(t *testing.T) {
	resetSitemap()

	srv := newFeedServer(t, `[
		{"id": "1", "title": "Sea View Villa"},
		{"id": "2", "title": "Marina Penthouse", "slug": "marina-ph"}
	]`)
	client := feed.NewClient(config.APIConfig{ListingsURL: srv.URL})

	regenerateSitemap("https://albadri.example/", client)

	out := string(Sitemap())
	require.NotEmpty(t, out)
	assert.Contains(t, out, "<urlset")
	assert.Contains(t, out, "http://www.sitemaps.org/schemas/sitemap/0.9")

	// Sabit sayfalar + ilan başına id ve slug taşıyan detay URL'i
	assert.Contains(t, out, "<loc>https://albadri.example/</loc>")
	assert.Contains(t, out, "<loc>https://albadri.example/properties</loc>")
	assert.Contains(t, out, "id=1&amp;slug=sea-view-villa")
	assert.Contains(t, out, "id=2&amp;slug=marina-ph")
}

func TestRegenerateSitemapKeepsSnapshotOnError(t *testing.T) {
	resetSitemap()

	srv := newFeedServer(t, `[{"id": "1", "title": "Sea View Villa"}]`)
	client := feed.NewClient(config.APIConfig{ListingsURL: srv.URL})

	regenerateSitemap("https://albadri.example", client)
	snapshot := string(Sitemap())
	require.NotEmpty(t, snapshot)

	// Feed düşünce eski snapshot geçerliliğini korur
	srv.Close()
	regenerateSitemap("https://albadri.example", client)
	assert.Equal(t, snapshot, string(Sitemap()))
}

func TestSitemapEmptyBeforeGeneration(t *testing.T) {
	resetSitemap()
	assert.Empty(t, Sitemap())
}
