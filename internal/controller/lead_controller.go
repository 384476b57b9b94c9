package controller

import (
	"log"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"albadri_web/pkg/leads"
)

// InquiryForm iki iletişim formunun (anasayfa ve detay modalı) ortak
// gövdesi. slug/ref alanları hata durumunda kaynağı yeniden render
// edebilmek için gizli input olarak taşınır.
type InquiryForm struct {
	PropID        string `form:"propId"`
	PropTitle     string `form:"propTitle"`
	Name          string `form:"name"`
	Email         string `form:"email"`
	ContactNumber string `form:"contactNumber"`
	Message       string `form:"message"`

	Slug string `form:"slug"`
	Ref  string `form:"ref"`
}

// CreateInquiry başvuruyu leads endpoint'ine iletir. Başarıda kaynağa
// redirect edilir (form boşalır), hatada aynı sayfa girilen değerler
// korunarak hata mesajıyla yeniden render edilir.
func (pc *PageController) CreateInquiry(c *fiber.Ctx) error {
	input := new(InquiryForm)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("property_error", fiber.Map{
			"Title":   "Contact",
			"Message": MsgInquiryError,
			"BackURL": "/",
		})
	}

	inquiry := leads.Inquiry{
		PropID:        input.PropID,
		PropTitle:     input.PropTitle,
		Name:          input.Name,
		Email:         input.Email,
		ContactNumber: input.ContactNumber,
		Message:       input.Message,
	}

	refID := uuid.New().String()
	if err := pc.leads.Submit(c.UserContext(), inquiry); err != nil {
		log.Printf("Could not submit inquiry %s: %v", refID, err)
		return pc.renderInquiryError(c, input)
	}

	log.Printf("Inquiry %s submitted for property %q", refID, input.PropID)
	return c.Redirect(inquirySuccessURL(input), fiber.StatusSeeOther)
}

// inquirySuccessURL PRG dönüş adresi: başarı bayrağıyla kaynak sayfa
func inquirySuccessURL(input *InquiryForm) string {
	if input.PropID == leads.GeneralInquiryID {
		return "/?sent=1#contact"
	}
	v := url.Values{}
	v.Set("sent", "1")
	return detailURL(input.PropID, input.Slug, input.Ref, v) + "#contact"
}

// renderInquiryError kaynağı hata mesajı ve korunan form değerleriyle
// yeniden render eder; kullanıcı yeniden yazmadan tekrar gönderebilir
func (pc *PageController) renderInquiryError(c *fiber.Ctx, input *InquiryForm) error {
	if input.PropID == leads.GeneralInquiryID || input.PropID == "" {
		view := pc.buildHomeView(c)
		view.FormStatus = "error"
		view.FormError = MsgInquiryError
		view.Form = *input
		return c.Render("home", view)
	}

	listings, err := pc.feed.Fetch(c.UserContext())
	if err != nil {
		log.Printf("Error loading property after failed inquiry: %v", err)
		return c.Status(fiber.StatusBadGateway).Render("property_error", fiber.Map{
			"Title":   "Property",
			"Message": MsgPropertyError,
			"BackURL": backURL(input.Ref),
		})
	}

	listing := resolveListing(listings, input.PropID, input.Slug)
	if listing == nil {
		return c.Status(fiber.StatusNotFound).Render("property_not_found", fiber.Map{
			"Title":   "Property Not Found",
			"BackURL": backURL(input.Ref),
		})
	}

	view := pc.buildDetailView(c, listing, input.Ref)
	view.ModalOpen = true
	view.FormStatus = "error"
	view.FormError = MsgInquiryError
	view.Form = *input
	return c.Render("property_details", view)
}
