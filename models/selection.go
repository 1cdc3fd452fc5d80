package models

// ServiceType identifies the top-level service family chosen in the wizard.
type ServiceType string

const (
	ServicePhotography ServiceType = "photography"
	ServiceVideo       ServiceType = "video"
	ServicePost        ServiceType = "post"
	ServiceTours       ServiceType = "360tours"
	ServiceTimelapse   ServiceType = "timelapse"
)

// ServiceNames maps service identifiers to their display labels.
var ServiceNames = map[ServiceType]string{
	ServicePhotography: "Photography",
	ServiceVideo:       "Video Production",
	ServicePost:        "Post Production",
	ServiceTours:       "360 Tours",
	ServiceTimelapse:   "Time Lapse",
}

// Photography sub-services.
const (
	PhotoEvent      = "event"
	PhotoRealEstate = "real_estate"
	PhotoHeadshots  = "headshots"
	PhotoProduct    = "product"
	PhotoFood       = "food"
	PhotoFashion    = "fashion"
	PhotoWedding    = "wedding"
)

// PhotographySubServices maps photography sub-type identifiers to labels.
var PhotographySubServices = map[string]string{
	PhotoEvent:      "Event Photography",
	PhotoRealEstate: "Real Estate Photography",
	PhotoHeadshots:  "Corporate/Business Headshots",
	PhotoProduct:    "Product Photography",
	PhotoFood:       "Food Photography",
	PhotoFashion:    "Fashion/Lifestyle Photography",
	PhotoWedding:    "Wedding Photography",
}

// Video production sub-services.
const (
	VideoEvent      = "event"
	VideoCorporate  = "corporate"
	VideoPromo      = "promo"
	VideoRealEstate = "real_estate"
	VideoWedding    = "wedding"
)

// VideoSubServices maps video sub-type identifiers to labels.
var VideoSubServices = map[string]string{
	VideoEvent:      "Event Videography",
	VideoCorporate:  "Corporate Video",
	VideoPromo:      "Promotional/Brand Video",
	VideoRealEstate: "Real Estate Videography",
	VideoWedding:    "Wedding Videography",
}

// Time-lapse sub-services.
const (
	TimelapseShort   = "short"
	TimelapseLong    = "long"
	TimelapseExtreme = "extreme"
)

// TimelapseSubServices maps time-lapse sub-type identifiers to labels.
var TimelapseSubServices = map[string]string{
	TimelapseShort:   "Short Term (1-10 hours)",
	TimelapseLong:    "Long Term (Days/Weeks)",
	TimelapseExtreme: "Extreme Long Term (Months/Years)",
}

// ToursSubServices maps 360-tour property identifiers to labels.
var ToursSubServices = map[string]string{
	"studio":    "Studio Apartment",
	"1-bedroom": "1-Bedroom Apartment",
	"2-bedroom": "2-Bedroom Apartment",
	"3-bedroom": "3-Bedroom Villa",
}

// Post-production sub-services.
const (
	PostVideo = "video"
	PostPhoto = "photo"
)

// PostProductionSubServices maps post-production sub-type identifiers to labels.
var PostProductionSubServices = map[string]string{
	PostVideo: "Video Editing",
	PostPhoto: "Photo Editing (Retouching)",
}

// Event coverage durations shared by photography and video event shoots.
const (
	DurationPerHour = "perHour"
	DurationHalfDay = "halfDay"
	DurationFullDay = "fullDay"
)

// Delivery timelines.
const (
	DeliveryStandard = "standard"
	DeliveryRush     = "rush"
)

// LocationTypeOptions lists the venue categories offered in the wizard.
var LocationTypeOptions = []string{"Indoor", "Outdoor", "Studio", "Exhibition Center", "Hotel", "Other"}

// RealEstateProperty describes one property in a real-estate shoot.
type RealEstateProperty struct {
	Type      string `json:"type"` // studio, 1-bedroom, 2-bedroom, 3-bedroom, villa
	Furnished bool   `json:"furnished"`
}

// Selection holds every field the quote wizard collects. Only the fields
// belonging to the chosen service family affect the computed quote; the rest
// stay at their defaults.
type Selection struct {
	ServiceType        ServiceType `json:"serviceType"`
	PhotographySubType string      `json:"photographySubType,omitempty"`
	VideoSubType       string      `json:"videoSubType,omitempty"`
	TimelapseSubType   string      `json:"timelapseSubType,omitempty"`
	ToursSubType       string      `json:"toursSubType,omitempty"`
	PostSubType        string      `json:"postSubType,omitempty"`

	// Photography details.
	PhotoEventDuration        string               `json:"photoEventDuration,omitempty"`
	PhotoEventHours           int                  `json:"photoEventHours,omitempty"`
	PhotoRealEstateProperties []RealEstateProperty `json:"photoRealEstateProperties,omitempty"`
	PhotoHeadshotsPeople      int                  `json:"photoHeadshotsPeople,omitempty"`
	PhotoProductPhotos        int                  `json:"photoProductPhotos,omitempty"`
	PhotoProductComplexity    string               `json:"photoProductComplexity,omitempty"` // simple, complex
	PhotoFoodPhotos           int                  `json:"photoFoodPhotos,omitempty"`
	PhotoFoodComplexity       string               `json:"photoFoodComplexity,omitempty"`
	PhotoFashionPackage       string               `json:"photoFashionPackage,omitempty"` // essential, standard, premium
	PhotoWeddingPackage       string               `json:"photoWeddingPackage,omitempty"`

	// Video details.
	VideoEventDuration            string  `json:"videoEventDuration,omitempty"`
	VideoEventHours               int     `json:"videoEventHours,omitempty"`
	VideoCorporateExtendedFilming string  `json:"videoCorporateExtendedFilming,omitempty"` // none, halfDay, fullDay
	VideoCorporateTwoCam          bool    `json:"videoCorporateTwoCam,omitempty"`
	VideoCorporateScripting       bool    `json:"videoCorporateScripting,omitempty"`
	VideoCorporateEditing         bool    `json:"videoCorporateEditing,omitempty"`
	VideoCorporateGraphics        bool    `json:"videoCorporateGraphics,omitempty"`
	VideoCorporateVoiceover       bool    `json:"videoCorporateVoiceover,omitempty"`
	VideoPromoFullDay             bool    `json:"videoPromoFullDay,omitempty"`
	VideoPromoMultiLoc            int     `json:"videoPromoMultiLoc,omitempty"`
	VideoPromoConcept             bool    `json:"videoPromoConcept,omitempty"`
	VideoPromoGraphics            bool    `json:"videoPromoGraphics,omitempty"`
	VideoPromoSound               bool    `json:"videoPromoSound,omitempty"`
	VideoPromoMakeup              bool    `json:"videoPromoMakeup,omitempty"`
	VideoRealEstatePropertyType   string  `json:"videoRealEstatePropertyType,omitempty"`
	VideoWeddingPrice             float64 `json:"videoWeddingPrice,omitempty"`

	// Time-lapse details.
	TimelapsePrice float64 `json:"timelapsePrice,omitempty"`

	// Post-production details.
	PostVideoEditingType           string  `json:"postVideoEditingType,omitempty"` // perHour, perMinute, social
	PostVideoEditingHours          int     `json:"postVideoEditingHours,omitempty"`
	PostVideoEditingMinutes        int     `json:"postVideoEditingMinutes,omitempty"`
	PostVideoEditingPerMinutePrice float64 `json:"postVideoEditingPerMinutePrice,omitempty"`
	PostVideoEditingSocialPrice    float64 `json:"postVideoEditingSocialPrice,omitempty"`
	PostPhotoEditingType           string  `json:"postPhotoEditingType,omitempty"` // basic, advanced, restoration
	PostPhotoEditingQuantity       int     `json:"postPhotoEditingQuantity,omitempty"`
	PostPhotoEditingPrice          float64 `json:"postPhotoEditingPrice,omitempty"`

	// Location and universal modifiers.
	Location             string `json:"location,omitempty"`     // dubai, abu-dhabi, sharjah, other
	LocationType         string `json:"locationType,omitempty"` // see LocationTypeOptions
	SecondCamera         bool   `json:"secondCamera,omitempty"`
	TimelapseExtraCamera bool   `json:"timelapseExtraCamera,omitempty"`
	DeliveryTimeline     string `json:"deliveryTimeline,omitempty"` // standard, rush
}

// DefaultSelection returns the selection a fresh wizard session starts with.
func DefaultSelection() Selection {
	return Selection{
		PhotoEventDuration:            DurationPerHour,
		PhotoEventHours:               1,
		PhotoHeadshotsPeople:          1,
		PhotoProductPhotos:            1,
		PhotoProductComplexity:        "simple",
		PhotoFoodPhotos:               1,
		PhotoFoodComplexity:           "simple",
		PhotoFashionPackage:           "essential",
		PhotoWeddingPackage:           "essential",
		VideoEventDuration:            DurationPerHour,
		VideoEventHours:               1,
		VideoCorporateExtendedFilming: "none",
		VideoRealEstatePropertyType:   "studio",
		PostVideoEditingType:          "perHour",
		PostVideoEditingHours:         1,
		PostVideoEditingMinutes:       1,
		PostVideoEditingPerMinutePrice: 500,
		PostVideoEditingSocialPrice:    500,
		PostPhotoEditingType:          "basic",
		PostPhotoEditingQuantity:      1,
		PostPhotoEditingPrice:         20,
		Location:                      "dubai",
		LocationType:                  "Indoor",
		DeliveryTimeline:              DeliveryStandard,
	}
}

// SubType returns the sub-type identifier for the chosen service family, or
// an empty string if none has been picked yet.
func (s Selection) SubType() string {
	switch s.ServiceType {
	case ServicePhotography:
		return s.PhotographySubType
	case ServiceVideo:
		return s.VideoSubType
	case ServiceTimelapse:
		return s.TimelapseSubType
	case ServiceTours:
		return s.ToursSubType
	case ServicePost:
		return s.PostSubType
	}
	return ""
}

// SubTypeName returns the display label of the chosen sub-type.
func (s Selection) SubTypeName() string {
	switch s.ServiceType {
	case ServicePhotography:
		return PhotographySubServices[s.PhotographySubType]
	case ServiceVideo:
		return VideoSubServices[s.VideoSubType]
	case ServiceTimelapse:
		return TimelapseSubServices[s.TimelapseSubType]
	case ServiceTours:
		return ToursSubServices[s.ToursSubType]
	case ServicePost:
		return PostProductionSubServices[s.PostSubType]
	}
	return ""
}
