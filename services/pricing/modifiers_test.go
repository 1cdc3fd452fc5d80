package pricing

import (
	"strings"
	"testing"

	"studioquote/models"
)

func TestSecondCameraDoublesBaseLineOnly(t *testing.T) {
	sel := baseSelection()
	sel.ServiceType = models.ServiceVideo
	sel.VideoSubType = models.VideoEvent
	sel.VideoEventDuration = models.DurationPerHour
	sel.VideoEventHours = 3 // 1200 + 2*800 = 2800

	off := Compute(sel)
	sel.SecondCamera = true
	on := Compute(sel)

	base := off.Items[0].Amount
	if on.Total != off.Total+base {
		t.Errorf("second camera: total_on = %v, want total_off + base = %v", on.Total, off.Total+base)
	}
	last := on.Items[len(on.Items)-1]
	if last.Label != "Second Camera" || last.Amount != base {
		t.Errorf("second camera line = %+v, want amount %v", last, base)
	}
}

func TestSecondCameraReferencesBaseNotSubtotal(t *testing.T) {
	// A wedding video with second camera: the surcharge must equal the base
	// line, untouched by any fee stacked on afterwards.
	sel := baseSelection()
	sel.ServiceType = models.ServiceVideo
	sel.VideoSubType = models.VideoWedding
	sel.VideoWeddingPrice = 10000
	sel.SecondCamera = true
	sel.Location = "abu-dhabi"

	got := Compute(sel)
	var cam float64
	for _, it := range got.Items {
		if it.Label == "Second Camera" {
			cam = it.Amount
		}
	}
	if cam != 10000 {
		t.Errorf("second camera amount = %v, want 10000", cam)
	}
}

func TestSecondCameraAllowList(t *testing.T) {
	sel := baseSelection()
	sel.ServiceType = models.ServicePhotography
	sel.PhotographySubType = models.PhotoHeadshots
	sel.PhotoHeadshotsPeople = 2
	sel.SecondCamera = true

	got := Compute(sel)
	for _, it := range got.Items {
		if it.Label == "Second Camera" {
			t.Fatalf("second camera should not be available for headshots: %v", got.Items)
		}
	}
	if got.Total != 700 {
		t.Errorf("total = %v, want 700", got.Total)
	}
}

func TestTimelapseExtraCamera(t *testing.T) {
	sel := baseSelection()
	sel.ServiceType = models.ServiceTimelapse
	sel.TimelapseSubType = models.TimelapseLong
	sel.TimelapsePrice = 5000
	sel.TimelapseExtraCamera = true

	got := Compute(sel)
	if len(got.Items) != 2 {
		t.Fatalf("expected base + extra camera, got %v", got.Items)
	}
	if got.Items[1].Label != "Extra Camera" || got.Items[1].Amount != 5000 {
		t.Errorf("extra camera line = %+v", got.Items[1])
	}
	if got.Total != 10000 {
		t.Errorf("total = %v, want 10000", got.Total)
	}
}

func TestStudioFee(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		hours    int
		want     float64
	}{
		{"hourly", models.DurationPerHour, 3, 450},
		{"half day", models.DurationHalfDay, 0, 500},
		{"full day", models.DurationFullDay, 0, 900},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := baseSelection()
			sel.ServiceType = models.ServicePhotography
			sel.PhotographySubType = models.PhotoEvent
			sel.PhotoEventDuration = tt.duration
			sel.PhotoEventHours = tt.hours
			sel.LocationType = "Studio"

			got := Compute(sel)
			var fee float64
			found := false
			for _, it := range got.Items {
				if strings.HasPrefix(it.Label, "Studio Rental") {
					fee, found = it.Amount, true
				}
			}
			if !found {
				t.Fatalf("no studio rental line in %v", got.Items)
			}
			if fee != tt.want {
				t.Errorf("studio fee = %v, want %v", fee, tt.want)
			}
		})
	}
}

func TestStudioFeeOnlyForEventShoots(t *testing.T) {
	sel := baseSelection()
	sel.ServiceType = models.ServicePhotography
	sel.PhotographySubType = models.PhotoProduct
	sel.PhotoProductPhotos = 5
	sel.LocationType = "Studio"

	got := Compute(sel)
	for _, it := range got.Items {
		if strings.HasPrefix(it.Label, "Studio Rental") {
			t.Fatalf("studio rental must not apply to product shoots: %v", got.Items)
		}
	}
}

func TestTravelFees(t *testing.T) {
	tests := []struct {
		location string
		want     float64
	}{
		{"dubai", 0},
		{"abu-dhabi", 200},
		{"sharjah", 150},
		{"other", 300},
	}
	for _, tt := range tests {
		sel := baseSelection()
		sel.ServiceType = models.ServiceTours
		sel.ToursSubType = "studio"
		sel.Location = tt.location

		got := Compute(sel)
		if got.Total != 750+tt.want {
			t.Errorf("%s: total = %v, want %v", tt.location, got.Total, 750+tt.want)
		}
		if tt.want == 0 {
			for _, it := range got.Items {
				if strings.HasPrefix(it.Label, "Travel") {
					t.Errorf("%s: home city must not carry a travel line", tt.location)
				}
			}
		}
	}
}

func TestRushLineAlwaysPresentWhenSelected(t *testing.T) {
	sel := baseSelection()
	sel.ServiceType = models.ServiceTours
	sel.ToursSubType = "1-bedroom"
	sel.DeliveryTimeline = models.DeliveryRush

	got := Compute(sel)
	last := got.Items[len(got.Items)-1]
	if last.Label != "Rush Delivery (+50%)" {
		t.Fatalf("rush line missing, items: %v", got.Items)
	}
	if last.Amount != 475 {
		t.Errorf("rush amount = %v, want 475", last.Amount)
	}
}
