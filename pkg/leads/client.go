// pkg/leads/client.go
package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Inquiry leads endpoint'ine gönderilen başvuru gövdesi.
// Alan adları Apps Script tarafındaki sheet kolonlarıyla eşleşiyor.
type Inquiry struct {
	PropID        string `json:"propId"`
	PropTitle     string `json:"propTitle"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber"`
	Message       string `json:"message"`
}

// GeneralInquiry anasayfa formu için kullanılan sabit kayıt kimliği
const (
	GeneralInquiryID    = "general-inquiry"
	GeneralInquiryTitle = "General Inquiry"
)

type Client struct {
	url  string
	http *http.Client
}

func NewClient(leadsURL string) *Client {
	return &Client{
		url: leadsURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Submit başvuruyu leads endpoint'ine POST eder. Endpoint'in cevap
// şeması tüketilmez: istek tamamlandıysa başarı sayılır, sadece taşıma
// hatası başarısızlıktır. Retry ve idempotency yok; tekrar gönderim
// yepyeni bir POST'tur.
func (c *Client) Submit(ctx context.Context, inquiry Inquiry) error {
	if c.url == "" {
		// Demo modu: endpoint yapılandırılmadıysa kaydı logla ve geç
		log.Printf("Leads endpoint not configured, dropping inquiry from %s", inquiry.Email)
		return nil
	}

	body, err := json.Marshal(inquiry)
	if err != nil {
		return fmt.Errorf("error marshaling inquiry: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("error sending inquiry: %v", err)
	}
	defer resp.Body.Close()

	return nil
}
