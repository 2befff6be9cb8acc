package venue

import (
	"fmt"
	"strconv"
	"strings"
)

// DEFAULT_PHOTO_URL is shown for venues without photos.
const DEFAULT_PHOTO_URL = "https://via.placeholder.com/400x300?text=No+Image+Available"

// Venue is the canonical place representation used across the client.
type Venue struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Location    Location   `json:"location"`
	Categories  []Category `json:"categories"`
	Photos      []Photo    `json:"photos"`
	Rating      *float64   `json:"rating,omitempty"`
	Price       *Price     `json:"price,omitempty"`
	Hours       *Hours     `json:"hours,omitempty"`
	Contact     *Contact   `json:"contact,omitempty"`
	Description string     `json:"description,omitempty"`
	Distance    *int       `json:"distance,omitempty"` // meters from the search center
}

type Location struct {
	Address          string   `json:"address,omitempty"`
	City             string   `json:"city,omitempty"`
	Region           string   `json:"region,omitempty"`
	Country          string   `json:"country,omitempty"`
	PostalCode       string   `json:"postalCode,omitempty"`
	FormattedAddress string   `json:"formattedAddress,omitempty"`
	Lat              *float64 `json:"lat,omitempty"`
	Lng              *float64 `json:"lng,omitempty"`
}

type Category struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Icon    *Icon  `json:"icon,omitempty"`
	Primary bool   `json:"primary,omitempty"`
}

type Icon struct {
	Prefix string `json:"prefix"`
	Suffix string `json:"suffix"`
}

// URL builds the icon url for a square size (e.g. 64).
func (i Icon) URL(size int) string {
	return i.Prefix + strconv.Itoa(size) + i.Suffix
}

type Photo struct {
	ID     string `json:"id"`
	Prefix string `json:"prefix"`
	Suffix string `json:"suffix"`
	Width  *int   `json:"width,omitempty"`
	Height *int   `json:"height,omitempty"`
}

// URL returns prefix + "<width>x<height>" + suffix.
func (p Photo) URL(width, height int) string {
	return fmt.Sprintf("%s%dx%d%s", p.Prefix, width, height, p.Suffix)
}

// OriginalURL requests the photo at its uploaded size.
func (p Photo) OriginalURL() string {
	return p.Prefix + "original" + p.Suffix
}

type Price struct {
	Tier    int    `json:"tier"`
	Message string `json:"message"`
}

type Hours struct {
	Status string `json:"status,omitempty"`
	IsOpen *bool  `json:"isOpen,omitempty"`
}

type Contact struct {
	Phone     string `json:"phone,omitempty"`
	URL       string `json:"url,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
}

// PrimaryCategory returns the category flagged primary, else the first one.
func (v *Venue) PrimaryCategory() (Category, bool) {
	for _, c := range v.Categories {
		if c.Primary {
			return c, true
		}
	}
	if len(v.Categories) > 0 {
		return v.Categories[0], true
	}
	return Category{}, false
}

// Address prefers the formatted address and falls back to joining its parts.
func (v *Venue) Address() string {
	if v.Location.FormattedAddress != "" {
		return v.Location.FormattedAddress
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{v.Location.Address, v.Location.City, v.Location.Region} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// PhotoURL returns the first photo at the requested size, or DEFAULT_PHOTO_URL.
func (v *Venue) PhotoURL(width, height int) string {
	if len(v.Photos) == 0 {
		return DEFAULT_PHOTO_URL
	}
	return v.Photos[0].URL(width, height)
}

// LatLng reports the venue's coordinates when both are known.
func (v *Venue) LatLng() (lat, lng float64, ok bool) {
	if v.Location.Lat == nil || v.Location.Lng == nil {
		return 0, 0, false
	}
	return *v.Location.Lat, *v.Location.Lng, true
}

func (v *Venue) ToString() string {
	return fmt.Sprintf("Venue(id=%s, name=%s, address=%s)", v.ID, v.Name, v.Address())
}
