package controller

import (
	"net/url"

	"albadri_web/internal/model"
	"albadri_web/pkg/config"
	"albadri_web/pkg/feed"
	"albadri_web/pkg/leads"
	"albadri_web/pkg/utils/format"
	"albadri_web/pkg/utils/slugify"
	"albadri_web/pkg/utils/storage"
)

// Kullanıcıya gösterilen sabit mesajlar
const (
	MsgListingsError  = "Error loading properties. Please try again later."
	MsgPropertyError  = "Error loading property. Please try again."
	MsgNoResults      = "No properties found matching your criteria."
	MsgInquirySuccess = "Message sent successfully! We will contact you soon."
	MsgInquiryError   = "Error sending message. Please try again."
)

// PageController sayfa handler'larını ve bağımlılıklarını taşır.
// Endpoint adresleri global state yerine kurulumda verilir.
type PageController struct {
	cfg    *config.Config
	feed   *feed.Client
	leads  *leads.Client
	images *storage.Resolver
}

func New(cfg *config.Config, feedClient *feed.Client, leadsClient *leads.Client) *PageController {
	return &PageController{
		cfg:    cfg,
		feed:   feedClient,
		leads:  leadsClient,
		images: storage.NewResolver(cfg.Storage.BaseURL),
	}
}

// PropertyCard listeleme kartının template verisi
type PropertyCard struct {
	DetailURL  string
	ImageURL   string
	Badge      string
	Title      string
	Location   string
	PriceLabel string
	Beds       int
	Baths      int
	AreaLabel  string
}

// FeaturedCard anasayfa vitrin kartı
type FeaturedCard struct {
	DetailURL string
	ImageURL  string
	Title     string
	Location  string
}

// buildCard tek ilanı kart verisine çevirir. ref geçerli sayfanın query
// string'i; detay sayfasındaki geri linki aynı filtre durumuna dönsün
// diye karta taşınır.
func (pc *PageController) buildCard(l *model.Listing, ref string) PropertyCard {
	return PropertyCard{
		DetailURL:  detailURL(string(l.ID), l.Slug(), ref, nil),
		ImageURL:   pc.images.Resolve(l.CoverImage()),
		Badge:      string(l.Type),
		Title:      l.Title,
		Location:   l.Location,
		PriceLabel: format.Price(l.Currency, l.Price),
		Beds:       l.Beds,
		Baths:      l.Baths,
		AreaLabel:  format.Area(l.AreaSqm),
	}
}

// detailURL detay sayfası linkini kurar; extra ile carousel/modal gibi
// sayfa içi durum parametreleri eklenir
func detailURL(id, slug, ref string, extra url.Values) string {
	v := url.Values{}
	if id != "" {
		v.Set("id", id)
	}
	if slug != "" {
		v.Set("slug", slug)
	}
	if ref != "" {
		v.Set("ref", ref)
	}
	for key := range extra {
		v.Set(key, extra.Get(key))
	}
	return "/property-details?" + v.Encode()
}

// backURL geri linki: ref parametresi önceki filtre durumunu taşır
func backURL(ref string) string {
	if ref == "" {
		return "/properties"
	}
	return "/properties" + ref + "#property-list"
}

// resolveListing önce id ile (string karşılaştırma), bulunamazsa
// başlıktan hesaplanan slug ile arar; feed sırasında ilk eşleşme kazanır
func resolveListing(listings []model.Listing, id, slugParam string) *model.Listing {
	if id != "" {
		for i := range listings {
			if string(listings[i].ID) == id {
				return &listings[i]
			}
		}
	}
	if slugParam != "" {
		for i := range listings {
			if slugify.Make(listings[i].Title) == slugParam {
				return &listings[i]
			}
		}
	}
	return nil
}
