package places

// Payload shapes of the Places v3 API. Only fields the adapter reads are decoded.

type RawSearchResponse struct {
	Results      []RawPlace  `json:"results"`
	Context      *RawContext `json:"context,omitempty"`
	TotalResults *int        `json:"totalResults,omitempty"`
}

type RawContext struct {
	GeoBounds *RawGeoBounds `json:"geo_bounds,omitempty"`
}

type RawGeoBounds struct {
	Circle *RawCircle `json:"circle,omitempty"`
}

type RawCircle struct {
	Center RawLatLng `json:"center"`
	Radius int       `json:"radius"`
}

type RawLatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type RawPlace struct {
	FsqID        string          `json:"fsq_id"`
	Name         *string         `json:"name,omitempty"`
	Location     *RawLocation    `json:"location,omitempty"`
	Geocodes     *RawGeocodes    `json:"geocodes,omitempty"`
	Categories   []RawCategory   `json:"categories,omitempty"`
	Photos       []RawPhoto      `json:"photos,omitempty"`
	Rating       *float64        `json:"rating,omitempty"`
	Price        *int            `json:"price,omitempty"`
	Hours        *RawHours       `json:"hours,omitempty"`
	ClosedBucket string          `json:"closed_bucket,omitempty"`
	Tel          string          `json:"tel,omitempty"`
	Website      string          `json:"website,omitempty"`
	SocialMedia  *RawSocialMedia `json:"social_media,omitempty"`
	Description  string          `json:"description,omitempty"`
	Distance     *int            `json:"distance,omitempty"`
}

type RawLocation struct {
	Address          string `json:"address,omitempty"`
	Locality         string `json:"locality,omitempty"`
	Region           string `json:"region,omitempty"`
	Country          string `json:"country,omitempty"`
	Postcode         string `json:"postcode,omitempty"`
	FormattedAddress string `json:"formatted_address,omitempty"`
}

type RawGeocodes struct {
	Main *RawLatLng `json:"main,omitempty"`
}

type RawCategory struct {
	ID      any      `json:"id"` // numeric in v3, string in older payloads
	Name    string   `json:"name"`
	Icon    *RawIcon `json:"icon,omitempty"`
	Primary bool     `json:"primary,omitempty"`
}

type RawIcon struct {
	Prefix string `json:"prefix"`
	Suffix string `json:"suffix"`
}

type RawPhoto struct {
	ID     string `json:"id"`
	Prefix string `json:"prefix"`
	Suffix string `json:"suffix"`
	Width  *int   `json:"width,omitempty"`
	Height *int   `json:"height,omitempty"`
}

type RawHours struct {
	Display string `json:"display,omitempty"`
	Status  string `json:"status,omitempty"`
	OpenNow *bool  `json:"open_now,omitempty"`
}

type RawSocialMedia struct {
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook_id,omitempty"`
}
