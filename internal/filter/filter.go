package filter

import (
	"net/url"
	"strings"

	"albadri_web/internal/model"
)

// All her iki filtre boyutunun varsayılan değeri
const All = "all"

// TypeOptions ilan tipi seçenekleri (select kutusundaki değerler)
var TypeOptions = []string{
	All,
	string(model.ListingTypeSale),
	string(model.ListingTypeRent),
}

// CategoryOptions kategori seçenekleri
var CategoryOptions = []string{
	All,
	string(model.CategoryVilla),
	string(model.CategoryApartment),
	string(model.CategoryPenthouse),
	string(model.CategoryTownhouse),
	string(model.CategoryCommercial),
}

// State listeleme sayfasının filtre durumu. Sayfa URL'ine yansıtılır ve
// her istekte query parametrelerinden yeniden kurulur.
type State struct {
	Type     string
	Category string
}

func Default() State {
	return State{Type: All, Category: All}
}

// FromQuery URL parametrelerinden filtre durumu kurar. Parametreler
// seçenek listesiyle büyük/küçük harf duyarsız eşleştirilir, eşleşmeyen
// veya boş değerler varsayılan "all"da kalır.
func FromQuery(typeParam, categoryParam string) State {
	s := Default()
	if match, ok := matchOption(TypeOptions, typeParam); ok {
		s.Type = match
	}
	if match, ok := matchOption(CategoryOptions, categoryParam); ok {
		s.Category = match
	}
	return s
}

// matchOption eşleşen seçeneğin kanonik yazımını döner
// (param "villa" gelse de seçenek "Villa" kullanılır)
func matchOption(options []string, param string) (string, bool) {
	if param == "" {
		return "", false
	}
	for _, opt := range options {
		if strings.EqualFold(opt, param) {
			return opt, true
		}
	}
	return "", false
}

// Apply feed'in filtreye uyan alt kümesini döner. İki boyut da "all" ise
// feed olduğu gibi geri verilir.
func (s State) Apply(listings []model.Listing) []model.Listing {
	if s.IsDefault() {
		return listings
	}

	filtered := make([]model.Listing, 0, len(listings))
	for _, l := range listings {
		if s.matches(&l) {
			filtered = append(filtered, l)
		}
	}
	return filtered
}

func (s State) matches(l *model.Listing) bool {
	matchType := s.Type == All || strings.EqualFold(string(l.Type), s.Type)
	matchCategory := s.Category == All || strings.EqualFold(string(l.Category), s.Category)
	return matchType && matchCategory
}

func (s State) IsDefault() bool {
	return s.Type == All && s.Category == All
}

// Values URL'e yazılacak parametreleri döner; "all" değerleri URL'de
// tutulmaz, reset sonrası query string tamamen boş kalır
func (s State) Values() url.Values {
	v := url.Values{}
	if s.Type != All {
		v.Set("type", s.Type)
	}
	if s.Category != All {
		v.Set("category", s.Category)
	}
	return v
}

// QueryString "?type=sale&category=Villa" biçiminde, filtre yoksa boş
func (s State) QueryString() string {
	encoded := s.Values().Encode()
	if encoded == "" {
		return ""
	}
	return "?" + encoded
}
