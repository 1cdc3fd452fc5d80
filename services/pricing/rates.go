// Package pricing implements the quote engine: a pure mapping from a wizard
// selection to an ordered list of priced line items and a grand total.
// All amounts are AED. The full price book lives in this file.
package pricing

// durationRates holds the tariff for duration-tiered coverage: a stepped-up
// first hour, a marginal rate for every further hour, and flat half/full day
// prices.
type durationRates struct {
	FirstHour float64
	ExtraHour float64
	HalfDay   float64
	FullDay   float64
}

var (
	photoEventRates = durationRates{FirstHour: 800, ExtraHour: 500, HalfDay: 2000, FullDay: 3500}
	videoEventRates = durationRates{FirstHour: 1200, ExtraHour: 800, HalfDay: 3500, FullDay: 6000}

	// Studio rental uses the same duration tiers as the shoot itself but a
	// distinct rate table.
	studioRentalRates = durationRates{FirstHour: 150, ExtraHour: 150, HalfDay: 500, FullDay: 900}
)

// perHourPrice resolves an hourly booking against a duration tariff.
func (r durationRates) perHourPrice(hours int) float64 {
	if hours < 1 {
		hours = 1
	}
	return r.FirstHour + float64(hours-1)*r.ExtraHour
}

const headshotPerPerson = 350

// Per-photo rates by complexity tier.
var (
	productPhotoRates = map[string]float64{"simple": 100, "complex": 400}
	foodPhotoRates    = map[string]float64{"simple": 150, "complex": 400}
)

// Package prices for fashion/lifestyle and wedding photography.
var (
	fashionPackages = map[string]float64{"essential": 1500, "standard": 3000, "premium": 5000}
	weddingPackages = map[string]float64{"essential": 5000, "standard": 12000, "premium": 25000}
)

// realEstatePhotoRates is keyed by property type; the two values are the
// unfurnished and furnished prices.
var realEstatePhotoRates = map[string][2]float64{
	"studio":    {600, 800},
	"1-bedroom": {750, 950},
	"2-bedroom": {900, 1100},
	"3-bedroom": {1100, 1400},
	"villa":     {1400, 1800},
}

var realEstateVideoRates = map[string]float64{
	"studio":    800,
	"1-bedroom": 1000,
	"2-bedroom": 1300,
	"3-bedroom": 1600,
	"villa":     2200,
}

// Corporate video: flat foundation package plus independently toggled extras.
const (
	corporateBasePrice      = 3000
	corporateHalfDayFilming = 1200
	corporateFullDayFilming = 2200
	corporateTwoCamPrice    = 950
	corporateScriptingPrice = 800
	corporateEditingPrice   = 650
	corporateGraphicsPrice  = 750
	corporateVoiceoverPrice = 500
)

// Promotional/brand video: foundation package plus extras. The multi-location
// extra scales linearly with the location count.
const (
	promoBasePrice     = 5000
	promoFullDayPrice  = 2000
	promoPerLocation   = 750
	promoConceptPrice  = 1200
	promoGraphicsPrice = 900
	promoSoundPrice    = 600
	promoMakeupPrice   = 450
)

// priceBand is a bounded slider range; selections are clamped into it.
type priceBand struct {
	Min float64
	Max float64
}

func (b priceBand) clamp(v float64) float64 {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

var weddingVideoBand = priceBand{Min: 8000, Max: 30000}

var timelapseBands = map[string]priceBand{
	"short":   {Min: 2000, Max: 4000},
	"long":    {Min: 4000, Max: 8000},
	"extreme": {Min: 8000, Max: 20000},
}

var tourRates = map[string]float64{
	"studio":    750,
	"1-bedroom": 950,
	"2-bedroom": 1250,
	"3-bedroom": 1600,
}

// Post-production rates.
const postVideoHourly = 250

var (
	postVideoPerMinuteBand = priceBand{Min: 500, Max: 1500}
	postVideoSocialBand    = priceBand{Min: 500, Max: 1500}

	postPhotoBands = map[string]priceBand{
		"basic":       {Min: 20, Max: 50},
		"advanced":    {Min: 50, Max: 250},
		"restoration": {Min: 100, Max: 300},
	}
)

// travelFees is the flat logistics fee per city. Dubai is the home base.
var travelFees = map[string]float64{
	"dubai":     0,
	"abu-dhabi": 200,
	"sharjah":   150,
	"other":     300,
}

var locationNames = map[string]string{
	"dubai":     "Dubai",
	"abu-dhabi": "Abu Dhabi",
	"sharjah":   "Sharjah",
	"other":     "Other UAE",
}

// Location is a catalog entry for a supported shoot city.
type Location struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	TravelFee float64 `json:"travelFee"`
}

// Locations lists the supported cities in display order.
func Locations() []Location {
	codes := []string{"dubai", "abu-dhabi", "sharjah", "other"}
	out := make([]Location, 0, len(codes))
	for _, code := range codes {
		out = append(out, Location{Code: code, Name: locationNames[code], TravelFee: travelFees[code]})
	}
	return out
}

// LocationName returns the display label for a location code, or the code
// itself when it is unknown.
func LocationName(code string) string {
	if name, ok := locationNames[code]; ok {
		return name
	}
	return code
}

// rushRate is the rush-delivery surcharge applied to the service+add-on
// subtotal, before studio and travel fees.
const rushRate = 0.5
