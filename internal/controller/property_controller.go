package controller

import (
	"log"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"albadri_web/internal/carousel"
	"albadri_web/internal/filter"
	"albadri_web/internal/model"
	"albadri_web/pkg/utils/format"
)

// OptionView filtre select kutusundaki tek seçenek
type OptionView struct {
	Value    string
	Label    string
	Selected bool
}

type PropertiesView struct {
	Title           string
	TypeOptions     []OptionView
	CategoryOptions []OptionView
	Cards           []PropertyCard
	NoResults       bool
	NoResultsMsg    string
	LoadError       bool
	LoadErrorMsg    string
}

// ListProperties ilan listeleme sayfasını render eder. Filtre durumu
// query parametrelerinden kurulur, kart linkleri ref ile geçerli filtre
// durumunu detay sayfasına taşır.
func (pc *PageController) ListProperties(c *fiber.Ctx) error {
	state := filter.FromQuery(c.Query("type"), c.Query("category"))

	view := PropertiesView{
		Title:           "Properties",
		TypeOptions:     typeOptions(state),
		CategoryOptions: categoryOptions(state),
	}

	listings, err := pc.feed.Fetch(c.UserContext())
	if err != nil {
		log.Printf("Error loading properties: %v", err)
		view.LoadError = true
		view.LoadErrorMsg = MsgListingsError
		return c.Render("properties", view)
	}

	filtered := state.Apply(listings)
	if len(filtered) == 0 {
		view.NoResults = true
		view.NoResultsMsg = MsgNoResults
		return c.Render("properties", view)
	}

	ref := state.QueryString()
	view.Cards = make([]PropertyCard, 0, len(filtered))
	for i := range filtered {
		view.Cards = append(view.Cards, pc.buildCard(&filtered[i], ref))
	}

	return c.Render("properties", view)
}

func typeOptions(state filter.State) []OptionView {
	labels := map[string]string{
		"all":  "All Types",
		"sale": "For Sale",
		"rent": "For Rent",
	}
	options := make([]OptionView, 0, len(filter.TypeOptions))
	for _, opt := range filter.TypeOptions {
		label := labels[opt]
		if label == "" {
			label = opt
		}
		options = append(options, OptionView{Value: opt, Label: label, Selected: opt == state.Type})
	}
	return options
}

func categoryOptions(state filter.State) []OptionView {
	options := make([]OptionView, 0, len(filter.CategoryOptions))
	for _, opt := range filter.CategoryOptions {
		label := opt
		if opt == filter.All {
			label = "All Categories"
		}
		options = append(options, OptionView{Value: opt, Label: label, Selected: opt == state.Category})
	}
	return options
}

// CarouselView carousel şeridinin template verisi
type CarouselView struct {
	Slides      []string
	Offset      string
	HasControls bool
	PrevURL     string
	NextURL     string
	Dots        []DotView
}

type DotView struct {
	URL    string
	Active bool
}

type DetailView struct {
	Title      string
	ID         string
	Slug       string
	PropTitle  string
	Location   string
	Category   string
	Beds       int
	Baths      int
	AreaLabel  string
	PriceLabel string
	Status     string
	LongDesc   string
	Amenities  []string

	AgentName      string
	AgentPhone     string
	HasPhone       bool
	PhoneRevealed  bool
	CallHref       string
	PhoneRevealURL string

	Carousel CarouselView

	ModalOpen     bool
	ModalOpenURL  string
	ModalCloseURL string

	BackURL string

	FormStatus string // "", "sent" veya "error"
	FormError  string
	Form       InquiryForm
}

// GetPropertyDetails ilan detay sayfasını render eder. Kayıt önce id ile,
// yoksa slug ile çözülür; bulunamayan ilan feed hatasından ayrı bir
// sayfayla raporlanır.
func (pc *PageController) GetPropertyDetails(c *fiber.Ctx) error {
	id := c.Query("id")
	slugParam := c.Query("slug")
	ref := c.Query("ref")

	if id == "" && slugParam == "" {
		return c.Status(fiber.StatusNotFound).Render("property_not_found", fiber.Map{
			"Title":   "Property Not Found",
			"BackURL": backURL(ref),
		})
	}

	listings, err := pc.feed.Fetch(c.UserContext())
	if err != nil {
		log.Printf("Error loading property: %v", err)
		return c.Status(fiber.StatusBadGateway).Render("property_error", fiber.Map{
			"Title":   "Property",
			"Message": MsgPropertyError,
			"BackURL": backURL(ref),
		})
	}

	listing := resolveListing(listings, id, slugParam)
	if listing == nil {
		return c.Status(fiber.StatusNotFound).Render("property_not_found", fiber.Map{
			"Title":   "Property Not Found",
			"BackURL": backURL(ref),
		})
	}

	view := pc.buildDetailView(c, listing, ref)
	return c.Render("property_details", view)
}

// buildDetailView ilanı ve query'deki sayfa içi durumu (carousel indeksi,
// modal, telefon reveal) template verisine indirger
func (pc *PageController) buildDetailView(c *fiber.Ctx, l *model.Listing, ref string) DetailView {
	id := string(l.ID)
	slug := l.Slug()

	images := pc.images.ResolveAll(l.GalleryImages())
	slides := carousel.FromQuery(c.Query("img"), len(images))

	// Telefon reveal tek yönlü: link durumu URL'e yazar, geri dönüşü yok
	phone := l.AgentPhone()
	revealed := phone != "" && c.Query("phone") == "shown"

	modalOpen := c.Query("contact") == "open"

	view := DetailView{
		Title:      l.Title,
		ID:         id,
		Slug:       slug,
		PropTitle:  l.Title,
		Location:   l.Location,
		Category:   string(l.Category),
		Beds:       l.Beds,
		Baths:      l.Baths,
		AreaLabel:  format.Area(l.AreaSqm),
		PriceLabel: format.Price(l.Currency, l.Price),
		Status:     l.StatusLabel(),
		LongDesc:   l.LongDescription(),
		Amenities:  l.Amenities,

		AgentName:     l.AgentName(),
		AgentPhone:    phone,
		HasPhone:      phone != "",
		PhoneRevealed: revealed,
		CallHref:      "#",

		ModalOpen: modalOpen,
		BackURL:   backURL(ref),

		FormStatus: formStatus(c),
		Form: InquiryForm{
			PropID:    id,
			PropTitle: l.Title,
			Slug:      slug,
			Ref:       ref,
		},
	}

	if phone != "" {
		view.CallHref = "tel:" + phone
		view.PhoneRevealURL = detailURL(id, slug, ref, pageState(slides, modalOpen, true))
	}

	view.ModalOpenURL = detailURL(id, slug, ref, pageState(slides, true, revealed)) + "#contact-modal"
	view.ModalCloseURL = detailURL(id, slug, ref, pageState(slides, false, revealed))

	view.Carousel = CarouselView{
		Slides:      images,
		Offset:      slides.Offset(),
		HasControls: slides.HasControls(),
	}
	if slides.HasControls() {
		view.Carousel.PrevURL = detailURL(id, slug, ref, pageState(slides.Prev(), modalOpen, revealed))
		view.Carousel.NextURL = detailURL(id, slug, ref, pageState(slides.Next(), modalOpen, revealed))
		for _, dot := range slides.Dots() {
			view.Carousel.Dots = append(view.Carousel.Dots, DotView{
				URL:    detailURL(id, slug, ref, pageState(slides.GoTo(dot.Index), modalOpen, revealed)),
				Active: dot.Active,
			})
		}
	}

	return view
}

// pageState sayfa içi durumu query parametrelerine çevirir; varsayılan
// değerler URL'de tutulmaz
func pageState(slides carousel.State, modalOpen, phoneRevealed bool) url.Values {
	v := url.Values{}
	if slides.Current > 0 {
		v.Set("img", strconv.Itoa(slides.Current))
	}
	if modalOpen {
		v.Set("contact", "open")
	}
	if phoneRevealed {
		v.Set("phone", "shown")
	}
	return v
}

func formStatus(c *fiber.Ctx) string {
	if c.Query("sent") == "1" {
		return "sent"
	}
	return ""
}
