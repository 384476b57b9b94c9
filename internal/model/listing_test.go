package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingIDDecoding(t *testing.T) {
	var l Listing
	require.NoError(t, json.Unmarshal([]byte(`{"id": 7, "title": "X"}`), &l))
	assert.Equal(t, ListingID("7"), l.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id": "abc-1", "title": "X"}`), &l))
	assert.Equal(t, ListingID("abc-1"), l.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id": null, "title": "X"}`), &l))
	assert.Equal(t, ListingID(""), l.ID)
}

func TestSlug(t *testing.T) {
	l := Listing{Title: "Sea View Villa"}
	assert.Equal(t, "sea-view-villa", l.Slug())

	// Kayıttaki slug alanı önceliklidir
	l.SlugName = "custom-slug"
	assert.Equal(t, "custom-slug", l.Slug())
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "For Sale", (&Listing{Type: ListingTypeSale}).StatusLabel())
	assert.Equal(t, "For Rent", (&Listing{Type: ListingTypeRent}).StatusLabel())
}

func TestGalleryImages(t *testing.T) {
	l := Listing{Images: []string{"a.jpg", "b.jpg"}, Image: "cover.jpg"}
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, l.GalleryImages())

	// images yoksa eski alanlara düşülür
	l = Listing{Image: "cover.jpg", Thumbnail: "thumb.jpg"}
	assert.Equal(t, []string{"cover.jpg"}, l.GalleryImages())

	l = Listing{Thumbnail: "thumb.jpg"}
	assert.Equal(t, []string{"thumb.jpg"}, l.GalleryImages())

	l = Listing{}
	assert.Nil(t, l.GalleryImages())
}

func TestCoverImage(t *testing.T) {
	l := Listing{Image: "cover.jpg", Thumbnail: "thumb.jpg", Images: []string{"a.jpg"}}
	assert.Equal(t, "cover.jpg", l.CoverImage())

	l = Listing{Thumbnail: "thumb.jpg", Images: []string{"a.jpg"}}
	assert.Equal(t, "thumb.jpg", l.CoverImage())

	l = Listing{Images: []string{"a.jpg"}}
	assert.Equal(t, "a.jpg", l.CoverImage())

	l = Listing{}
	assert.Equal(t, "", l.CoverImage())
}

func TestAgentFallbacks(t *testing.T) {
	// Düz alanlar nested agent'ı ezer
	l := Listing{AgentNameRaw: "Mona", AgentPhoneRaw: "+971511111111",
		Agent: &Agent{Name: "Khalid", Phone: "+971500000000"}}
	assert.Equal(t, "Mona", l.AgentName())
	assert.Equal(t, "+971511111111", l.AgentPhone())

	l = Listing{Agent: &Agent{Name: "Khalid", Phone: "+971500000000"}}
	assert.Equal(t, "Khalid", l.AgentName())
	assert.Equal(t, "+971500000000", l.AgentPhone())

	// Hiçbiri yoksa varsayılan isim, boş telefon
	l = Listing{}
	assert.Equal(t, DefaultAgentName, l.AgentName())
	assert.Equal(t, "", l.AgentPhone())
}

func TestLongDescription(t *testing.T) {
	l := Listing{LongDesc: "long", Description: "short"}
	assert.Equal(t, "long", l.LongDescription())

	l = Listing{Description: "short"}
	assert.Equal(t, "short", l.LongDescription())

	l = Listing{}
	assert.Equal(t, "", l.LongDescription())
}

func TestFeatured(t *testing.T) {
	feed := []Listing{
		{ID: "1", Featured: true},
		{ID: "2"},
		{ID: "3", Featured: true},
		{ID: "4", Featured: true},
		{ID: "5", Featured: true},
		{ID: "6", Featured: true},
	}

	featured := Featured(feed)
	require.Len(t, featured, 4)
	// Feed sırası korunur, ilk 4 featured alınır
	assert.Equal(t, ListingID("1"), featured[0].ID)
	assert.Equal(t, ListingID("3"), featured[1].ID)
	assert.Equal(t, ListingID("4"), featured[2].ID)
	assert.Equal(t, ListingID("5"), featured[3].ID)

	assert.Nil(t, Featured([]Listing{{ID: "1"}}))
}

func TestListingDecodeFull(t *testing.T) {
	payload := `{
		"id": 42,
		"title": "Sea View Villa",
		"location": "Palm Jumeirah",
		"category": "Villa",
		"type": "sale",
		"price": 5000000,
		"currency": "AED",
		"beds": 4,
		"baths": 3,
		"area_sqm": 450,
		"images": ["v/1.jpg"],
		"long_desc": "Waterfront villa.",
		"amenities": ["Pool"],
		"agent_name": "Khalid",
		"agent_phone": "+971500000000",
		"featured": true
	}`

	var l Listing
	require.NoError(t, json.Unmarshal([]byte(payload), &l))
	assert.Equal(t, ListingID("42"), l.ID)
	assert.Equal(t, CategoryVilla, l.Category)
	assert.Equal(t, ListingTypeSale, l.Type)
	assert.Equal(t, 4, l.Beds)
	assert.True(t, l.Featured)
	assert.Equal(t, "Waterfront villa.", l.LongDescription())
}
