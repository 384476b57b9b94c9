package model

import (
	"encoding/json"
	"fmt"
	"strconv"

	"albadri_web/pkg/utils/slugify"
)

// Listing Types
type ListingType string

const (
	ListingTypeSale ListingType = "sale"
	ListingTypeRent ListingType = "rent"
)

// Listing Categories
type Category string

const (
	CategoryVilla      Category = "Villa"
	CategoryApartment  Category = "Apartment"
	CategoryPenthouse  Category = "Penthouse"
	CategoryTownhouse  Category = "Townhouse"
	CategoryCommercial Category = "Commercial"
)

// DefaultAgentName telefonsuz/isimsiz kayıtlarda gösterilen ajan adı
const DefaultAgentName = "Al Badri Agent"

// ListingID hem sayı hem string gelen id alanını string'e normalize eder.
// Sheet tarafı sayısal id gönderebiliyor, lokal JSON string kullanıyor.
type ListingID string

func (id *ListingID) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case string:
		*id = ListingID(t)
	case float64:
		*id = ListingID(strconv.FormatFloat(t, 'f', -1, 64))
	case nil:
		*id = ""
	default:
		return fmt.Errorf("unsupported id type %T", v)
	}
	return nil
}

type Agent struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Listing uzak feed'den okunan tek bir emlak kaydı. Sayfa ömrü boyunca
// değişmez; feed her sayfa açılışında yeniden çekilir.
type Listing struct {
	ID       ListingID   `json:"id"`
	SlugName string      `json:"slug"`
	Title    string      `json:"title"`
	Location string      `json:"location"`
	Category Category    `json:"category"`
	Type     ListingType `json:"type"`
	Price    float64     `json:"price"`
	Currency string      `json:"currency"`
	Beds     int         `json:"beds"`
	Baths    int         `json:"baths"`
	AreaSqm  float64     `json:"area_sqm"`

	// images dizisi yeni format; image/thumbnail eski kayıtlardan geliyor
	Images    []string `json:"images"`
	Image     string   `json:"image"`
	Thumbnail string   `json:"thumbnail"`

	LongDesc    string   `json:"long_desc"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`

	// Sheet düz agent_name/agent_phone kullanıyor, lokal JSON nested agent
	AgentNameRaw  string `json:"agent_name"`
	AgentPhoneRaw string `json:"agent_phone"`
	Agent         *Agent `json:"agent"`

	Featured bool `json:"featured"`
}

// Slug kayıttaki slug alanını, yoksa başlıktan üretileni döner
func (l *Listing) Slug() string {
	if l.SlugName != "" {
		return l.SlugName
	}
	return slugify.Make(l.Title)
}

// StatusLabel ilan durum etiketini döner
func (l *Listing) StatusLabel() string {
	if l.Type == ListingTypeSale {
		return "For Sale"
	}
	return "For Rent"
}

// GalleryImages carousel'de gösterilecek resim listesini döner.
// images dizisi boşsa eski image/thumbnail alanlarına düşer.
func (l *Listing) GalleryImages() []string {
	if len(l.Images) > 0 {
		return l.Images
	}
	if l.Image != "" {
		return []string{l.Image}
	}
	if l.Thumbnail != "" {
		return []string{l.Thumbnail}
	}
	return nil
}

// CoverImage kart görseli: image, yoksa thumbnail, yoksa ilk galeri resmi
func (l *Listing) CoverImage() string {
	if l.Image != "" {
		return l.Image
	}
	if l.Thumbnail != "" {
		return l.Thumbnail
	}
	if len(l.Images) > 0 {
		return l.Images[0]
	}
	return ""
}

// AgentName düz alan > nested agent > varsayılan isim sırasıyla çözülür
func (l *Listing) AgentName() string {
	if l.AgentNameRaw != "" {
		return l.AgentNameRaw
	}
	if l.Agent != nil && l.Agent.Name != "" {
		return l.Agent.Name
	}
	return DefaultAgentName
}

// AgentPhone boş dönerse arama aksiyonu devre dışı kalır
func (l *Listing) AgentPhone() string {
	if l.AgentPhoneRaw != "" {
		return l.AgentPhoneRaw
	}
	if l.Agent != nil {
		return l.Agent.Phone
	}
	return ""
}

// LongDescription uzun açıklama, yoksa kısa açıklama
func (l *Listing) LongDescription() string {
	if l.LongDesc != "" {
		return l.LongDesc
	}
	return l.Description
}

// Featured anasayfa vitrini: feed sırasına göre ilk 4 featured ilan
func Featured(listings []Listing) []Listing {
	var featured []Listing
	for _, l := range listings {
		if l.Featured {
			featured = append(featured, l)
			if len(featured) == 4 {
				break
			}
		}
	}
	return featured
}
