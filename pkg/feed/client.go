// pkg/feed/client.go
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"albadri_web/internal/model"
	"albadri_web/pkg/config"
)

// Client ilan feed'ini çeken HTTP istemcisi. Feed her sayfa açılışında
// yeniden çekilir; cache ve retry yok.
type Client struct {
	url       string
	localPath string
	http      *http.Client
}

func NewClient(cfg config.APIConfig) *Client {
	return &Client{
		url:       cfg.ListingsURL,
		localPath: cfg.LocalFeedPath,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Fetch tüm ilan koleksiyonunu döner. URL tanımlı değilse demo modunda
// lokal properties.json dosyasından okur.
func (c *Client) Fetch(ctx context.Context) ([]model.Listing, error) {
	if c.url == "" {
		return c.fetchLocal()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating feed request: %v", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching listings: %v", err)
	}
	defer resp.Body.Close()

	// Apps Script durum kodu yerine gövdeyle konuşur; JSON parse
	// edilemiyorsa feed bozuk sayılır
	var listings []model.Listing
	if err := json.NewDecoder(resp.Body).Decode(&listings); err != nil {
		return nil, fmt.Errorf("error decoding listings: %v", err)
	}

	return listings, nil
}

func (c *Client) fetchLocal() ([]model.Listing, error) {
	data, err := os.ReadFile(c.localPath)
	if err != nil {
		return nil, fmt.Errorf("error reading local feed: %v", err)
	}

	var listings []model.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf("error decoding local feed: %v", err)
	}
	return listings, nil
}
