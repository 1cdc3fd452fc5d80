package pricing

import (
	"reflect"
	"testing"

	"studioquote/models"
)

func baseSelection() models.Selection {
	return models.DefaultSelection()
}

func TestComputeNoService(t *testing.T) {
	got := Compute(baseSelection())
	if len(got.Items) != 0 {
		t.Errorf("expected no items, got %v", got.Items)
	}
	if got.Total != 0 {
		t.Errorf("expected zero total, got %v", got.Total)
	}
}

func TestComputeServiceWithoutSubType(t *testing.T) {
	for _, svc := range []models.ServiceType{
		models.ServicePhotography,
		models.ServiceVideo,
		models.ServiceTours,
		models.ServiceTimelapse,
		models.ServicePost,
	} {
		sel := baseSelection()
		sel.ServiceType = svc
		got := Compute(sel)
		if len(got.Items) != 1 {
			t.Fatalf("%s: expected single placeholder item, got %v", svc, got.Items)
		}
		if got.Items[0].Label != models.ServiceNames[svc] || got.Items[0].Amount != 0 {
			t.Errorf("%s: unexpected placeholder %+v", svc, got.Items[0])
		}
		if got.Total != 0 {
			t.Errorf("%s: expected zero total, got %v", svc, got.Total)
		}
	}
}

func TestComputeHeadshots(t *testing.T) {
	sel := baseSelection()
	sel.ServiceType = models.ServicePhotography
	sel.PhotographySubType = models.PhotoHeadshots
	sel.PhotoHeadshotsPeople = 3

	got := Compute(sel)
	if len(got.Items) != 1 {
		t.Fatalf("expected 1 item, got %v", got.Items)
	}
	wantLabel := "Photography: Corporate/Business Headshots (3 people)"
	if got.Items[0].Label != wantLabel {
		t.Errorf("label = %q, want %q", got.Items[0].Label, wantLabel)
	}
	if got.Items[0].Amount != 1050 {
		t.Errorf("amount = %v, want 1050", got.Items[0].Amount)
	}
	if got.Total != 1050 {
		t.Errorf("total = %v, want 1050", got.Total)
	}
}

func TestComputeCorporateVideoAddons(t *testing.T) {
	sel := baseSelection()
	sel.ServiceType = models.ServiceVideo
	sel.VideoSubType = models.VideoCorporate
	sel.VideoCorporateTwoCam = true
	sel.VideoCorporateVoiceover = true

	got := Compute(sel)
	want := []models.LineItem{
		{Label: "Video Production: Corporate Video", Amount: 3000},
		{Label: "Two-Camera Interview Setup", Amount: 950},
		{Label: "Professional Voice-over", Amount: 500},
	}
	if !reflect.DeepEqual(got.Items, want) {
		t.Errorf("items = %v, want %v", got.Items, want)
	}
	if got.Total != 4450 {
		t.Errorf("total = %v, want 4450", got.Total)
	}
}

func TestComputeTravelAndRush(t *testing.T) {
	// Half-day event photography is exactly 2000: travel 200, rush 1000,
	// total 3200.
	sel := baseSelection()
	sel.ServiceType = models.ServicePhotography
	sel.PhotographySubType = models.PhotoEvent
	sel.PhotoEventDuration = models.DurationHalfDay
	sel.Location = "abu-dhabi"
	sel.DeliveryTimeline = models.DeliveryRush

	got := Compute(sel)
	want := []models.LineItem{
		{Label: "Photography: Event Photography (Half Day)", Amount: 2000},
		{Label: "Travel & Logistics (Abu Dhabi)", Amount: 200},
		{Label: "Rush Delivery (+50%)", Amount: 1000},
	}
	if !reflect.DeepEqual(got.Items, want) {
		t.Errorf("items = %v, want %v", got.Items, want)
	}
	if got.Total != 3200 {
		t.Errorf("total = %v, want 3200", got.Total)
	}
}

func TestRushComputedBeforeTravelAndStudio(t *testing.T) {
	sel := baseSelection()
	sel.ServiceType = models.ServiceVideo
	sel.VideoSubType = models.VideoEvent
	sel.VideoEventDuration = models.DurationPerHour
	sel.VideoEventHours = 2 // 1200 + 800 = 2000
	sel.LocationType = "Studio"
	sel.Location = "sharjah"
	sel.DeliveryTimeline = models.DeliveryRush

	got := Compute(sel)
	var rush float64
	for _, it := range got.Items {
		if it.Label == "Rush Delivery (+50%)" {
			rush = it.Amount
		}
	}
	// 50% of the 2000 subtotal, not of subtotal + studio (300) + travel (150).
	if rush != 1000 {
		t.Errorf("rush fee = %v, want 1000", rush)
	}
	if got.Total != 2000+300+150+1000 {
		t.Errorf("total = %v, want %v", got.Total, 2000+300+150+1000)
	}
}

func TestPerHourMonotonicity(t *testing.T) {
	sel := baseSelection()
	sel.ServiceType = models.ServicePhotography
	sel.PhotographySubType = models.PhotoEvent
	sel.PhotoEventDuration = models.DurationPerHour

	prev := -1.0
	for hours := 1; hours <= 12; hours++ {
		sel.PhotoEventHours = hours
		total := Compute(sel).Total
		if total <= prev {
			t.Fatalf("total not strictly increasing at %d hours: %v <= %v", hours, total, prev)
		}
		prev = total
	}
}

func TestComputeIdempotent(t *testing.T) {
	sel := baseSelection()
	sel.ServiceType = models.ServiceVideo
	sel.VideoSubType = models.VideoPromo
	sel.VideoPromoFullDay = true
	sel.VideoPromoMultiLoc = 2
	sel.Location = "other"
	sel.DeliveryTimeline = models.DeliveryRush

	first := Compute(sel)
	second := Compute(sel)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated computation differs: %v vs %v", first, second)
	}
}

func TestRealEstateFurnishedStudioRate(t *testing.T) {
	// The furnished studio tier is 800; an 8000 figure once slipped into the
	// price book and must never come back.
	sel := baseSelection()
	sel.ServiceType = models.ServicePhotography
	sel.PhotographySubType = models.PhotoRealEstate
	sel.PhotoRealEstateProperties = []models.RealEstateProperty{{Type: "studio", Furnished: true}}

	got := Compute(sel)
	if got.Total != 800 {
		t.Errorf("furnished studio = %v, want 800", got.Total)
	}
}

func TestRealEstateMultipleProperties(t *testing.T) {
	sel := baseSelection()
	sel.ServiceType = models.ServicePhotography
	sel.PhotographySubType = models.PhotoRealEstate
	sel.PhotoRealEstateProperties = []models.RealEstateProperty{
		{Type: "studio", Furnished: false},   // 600
		{Type: "2-bedroom", Furnished: true}, // 1100
		{Type: "villa", Furnished: false},    // 1400
	}

	got := Compute(sel)
	if got.Total != 3100 {
		t.Errorf("total = %v, want 3100", got.Total)
	}
	wantLabel := "Photography: Real Estate Photography (3 properties)"
	if got.Items[0].Label != wantLabel {
		t.Errorf("label = %q, want %q", got.Items[0].Label, wantLabel)
	}
}

func TestPackageTiers(t *testing.T) {
	tests := []struct {
		name    string
		subType string
		pkg     string
		want    float64
	}{
		{"fashion essential", models.PhotoFashion, "essential", 1500},
		{"fashion premium", models.PhotoFashion, "premium", 5000},
		{"wedding standard", models.PhotoWedding, "standard", 12000},
		{"wedding premium", models.PhotoWedding, "premium", 25000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := baseSelection()
			sel.ServiceType = models.ServicePhotography
			sel.PhotographySubType = tt.subType
			if tt.subType == models.PhotoFashion {
				sel.PhotoFashionPackage = tt.pkg
			} else {
				sel.PhotoWeddingPackage = tt.pkg
			}
			if got := Compute(sel).Total; got != tt.want {
				t.Errorf("total = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSliderClamping(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Selection)
		want   float64
	}{
		{
			"timelapse below band", func(s *models.Selection) {
				s.ServiceType = models.ServiceTimelapse
				s.TimelapseSubType = models.TimelapseShort
				s.TimelapsePrice = 100
			}, 2000,
		},
		{
			"timelapse above band", func(s *models.Selection) {
				s.ServiceType = models.ServiceTimelapse
				s.TimelapseSubType = models.TimelapseExtreme
				s.TimelapsePrice = 99999
			}, 20000,
		},
		{
			"wedding video below band", func(s *models.Selection) {
				s.ServiceType = models.ServiceVideo
				s.VideoSubType = models.VideoWedding
				s.VideoWeddingPrice = 1000
			}, 8000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := baseSelection()
			tt.mutate(&sel)
			if got := Compute(sel).Total; got != tt.want {
				t.Errorf("total = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTourRates(t *testing.T) {
	tests := []struct {
		subType string
		want    float64
	}{
		{"studio", 750},
		{"1-bedroom", 950},
		{"2-bedroom", 1250},
		{"3-bedroom", 1600},
	}
	for _, tt := range tests {
		sel := baseSelection()
		sel.ServiceType = models.ServiceTours
		sel.ToursSubType = tt.subType
		if got := Compute(sel).Total; got != tt.want {
			t.Errorf("%s: total = %v, want %v", tt.subType, got, tt.want)
		}
	}
}

func TestPostProductionPricing(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Selection)
		want   float64
	}{
		{
			"video per hour", func(s *models.Selection) {
				s.PostSubType = models.PostVideo
				s.PostVideoEditingType = "perHour"
				s.PostVideoEditingHours = 4
			}, 1000,
		},
		{
			"video per finished minute", func(s *models.Selection) {
				s.PostSubType = models.PostVideo
				s.PostVideoEditingType = "perMinute"
				s.PostVideoEditingMinutes = 3
				s.PostVideoEditingPerMinutePrice = 700
			}, 2100,
		},
		{
			"social edit clamped", func(s *models.Selection) {
				s.PostSubType = models.PostVideo
				s.PostVideoEditingType = "social"
				s.PostVideoEditingSocialPrice = 5000
			}, 1500,
		},
		{
			"photo retouch advanced", func(s *models.Selection) {
				s.PostSubType = models.PostPhoto
				s.PostPhotoEditingType = "advanced"
				s.PostPhotoEditingQuantity = 10
				s.PostPhotoEditingPrice = 100
			}, 1000,
		},
		{
			"photo price clamped to tier band", func(s *models.Selection) {
				s.PostSubType = models.PostPhoto
				s.PostPhotoEditingType = "basic"
				s.PostPhotoEditingQuantity = 2
				s.PostPhotoEditingPrice = 500
			}, 100, // 2 x 50 ceiling
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := baseSelection()
			sel.ServiceType = models.ServicePost
			tt.mutate(&sel)
			if got := Compute(sel).Total; got != tt.want {
				t.Errorf("total = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPostProductionSkipsUniversalModifiers(t *testing.T) {
	sel := baseSelection()
	sel.ServiceType = models.ServicePost
	sel.PostSubType = models.PostVideo
	sel.PostVideoEditingType = "perHour"
	sel.PostVideoEditingHours = 2
	sel.Location = "abu-dhabi"
	sel.LocationType = "Studio"
	sel.DeliveryTimeline = models.DeliveryRush

	got := Compute(sel)
	if len(got.Items) != 1 {
		t.Fatalf("expected only the editing line, got %v", got.Items)
	}
	if got.Total != 500 {
		t.Errorf("total = %v, want 500", got.Total)
	}
}
