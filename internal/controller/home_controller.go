package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"albadri_web/internal/model"
	"albadri_web/pkg/leads"
)

type HomeView struct {
	Title            string
	Featured         []FeaturedCard
	FeaturedError    bool
	FeaturedErrorMsg string

	FormStatus string
	FormError  string
	Form       InquiryForm
}

// Home anasayfa: vitrin ilanları ve genel iletişim formu. Feed hatası
// yalnızca vitrini düşürür, sayfanın geri kalanı çalışmaya devam eder.
func (pc *PageController) Home(c *fiber.Ctx) error {
	return c.Render("home", pc.buildHomeView(c))
}

func (pc *PageController) buildHomeView(c *fiber.Ctx) HomeView {
	view := HomeView{
		Title:      "Al Badri Properties",
		FormStatus: formStatus(c),
		Form: InquiryForm{
			PropID:    leads.GeneralInquiryID,
			PropTitle: leads.GeneralInquiryTitle,
		},
	}

	listings, err := pc.feed.Fetch(c.UserContext())
	if err != nil {
		log.Printf("Error loading featured properties: %v", err)
		view.FeaturedError = true
		view.FeaturedErrorMsg = MsgListingsError
		return view
	}

	for _, l := range model.Featured(listings) {
		view.Featured = append(view.Featured, FeaturedCard{
			DetailURL: detailURL(string(l.ID), l.Slug(), "", nil),
			ImageURL:  pc.images.Resolve(l.CoverImage()),
			Title:     l.Title,
			Location:  l.Location,
		})
	}
	return view
}
