// pkg/cron/sitemap.go

package cron

import (
	"context"
	"encoding/xml"
	"log"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"albadri_web/pkg/feed"
)

var (
	sitemapXML []byte
	sitemapMu  sync.Mutex
)

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
}

func InitSitemapCron(siteBaseURL string, client *feed.Client) {
	// Açılışta bir kere üret, sonra saat başı tazele
	regenerateSitemap(siteBaseURL, client)

	c := cron.New()
	_, err := c.AddFunc("0 * * * *", func() {
		regenerateSitemap(siteBaseURL, client)
	})
	if err != nil {
		log.Printf("Could not initialize sitemap cron: %v", err)
		return
	}

	c.Start()
	log.Printf("Sitemap cron initialized successfully")
}

// Sitemap son üretilen sitemap içeriğini döner; henüz üretilemediyse boş
func Sitemap() []byte {
	sitemapMu.Lock()
	defer sitemapMu.Unlock()
	return sitemapXML
}

func regenerateSitemap(siteBaseURL string, client *feed.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	listings, err := client.Fetch(ctx)
	if err != nil {
		// Eski snapshot geçerliliğini korur, sadece logla
		log.Printf("Error fetching listings for sitemap: %v", err)
		return
	}

	base := strings.TrimSuffix(siteBaseURL, "/")
	today := time.Now().Format("2006-01-02")

	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []urlEntry{
			{Loc: base + "/", LastMod: today, ChangeFreq: "weekly"},
			{Loc: base + "/properties", LastMod: today, ChangeFreq: "daily"},
		},
	}

	for _, l := range listings {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        base + "/property-details?id=" + url.QueryEscape(string(l.ID)) + "&slug=" + url.QueryEscape(l.Slug()),
			LastMod:    today,
			ChangeFreq: "daily",
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		log.Printf("Error building sitemap: %v", err)
		return
	}

	sitemapMu.Lock()
	sitemapXML = append([]byte(xml.Header), out...)
	sitemapMu.Unlock()

	log.Printf("Sitemap regenerated with %d listings", len(listings))
}
