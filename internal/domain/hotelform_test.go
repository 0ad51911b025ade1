package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() HotelSubmission {
	return HotelSubmission{
		Name:          "Grand Pacific",
		City:          "Denpasar",
		Country:       "Indonesia",
		Description:   "A quiet beachfront hotel with ocean views.",
		Type:          "Resort",
		AdultCount:    2,
		ChildCount:    0,
		PricePerNight: 120,
		StarRating:    4,
		Facilities:    []string{"Spa", "Parking"},
		Images: []ImageUpload{
			{Filename: "front.jpg", ContentType: "image/jpeg", Data: []byte("jpegdata")},
		},
	}
}

// TestHotelSubmission_Validate tests the field constraints.
func TestHotelSubmission_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*HotelSubmission)
		wantField string
	}{
		{
			name:   "valid submission",
			mutate: func(s *HotelSubmission) {},
		},
		{
			name:      "blank name",
			mutate:    func(s *HotelSubmission) { s.Name = "" },
			wantField: "name",
		},
		{
			name:      "name too short",
			mutate:    func(s *HotelSubmission) { s.Name = "ab" },
			wantField: "name",
		},
		{
			name:      "description too long",
			mutate:    func(s *HotelSubmission) { s.Description = strings.Repeat("x", 301) },
			wantField: "description",
		},
		{
			name:      "missing type",
			mutate:    func(s *HotelSubmission) { s.Type = "" },
			wantField: "type",
		},
		{
			name:      "zero adults",
			mutate:    func(s *HotelSubmission) { s.AdultCount = 0 },
			wantField: "adultCount",
		},
		{
			name:      "negative children",
			mutate:    func(s *HotelSubmission) { s.ChildCount = -1 },
			wantField: "childCount",
		},
		{
			name:      "zero price",
			mutate:    func(s *HotelSubmission) { s.PricePerNight = 0 },
			wantField: "pricePerNight",
		},
		{
			name:      "rating out of range",
			mutate:    func(s *HotelSubmission) { s.StarRating = 6 },
			wantField: "starRating",
		},
		{
			name:      "no facilities",
			mutate:    func(s *HotelSubmission) { s.Facilities = nil },
			wantField: "facilities",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(&sub)

			err := sub.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var errs *ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), tt.wantField)
		})
	}
}

// TestHotelSubmission_ImageBounds tests the combined image-count rule: new
// uploads and kept references count together.
func TestHotelSubmission_ImageBounds(t *testing.T) {
	makeImages := func(n int) []ImageUpload {
		images := make([]ImageUpload, n)
		for i := range images {
			images[i] = ImageUpload{Filename: "img.jpg", ContentType: "image/jpeg", Data: []byte("x")}
		}
		return images
	}

	tests := []struct {
		name     string
		images   int
		existing int
		wantOK   bool
	}{
		{name: "zero images fails", images: 0, existing: 0, wantOK: false},
		{name: "one new image passes", images: 1, existing: 0, wantOK: true},
		{name: "six total passes", images: 2, existing: 4, wantOK: true},
		{name: "seven total fails", images: 3, existing: 4, wantOK: false},
		{name: "six kept references alone pass", images: 0, existing: 6, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			sub.Images = makeImages(tt.images)
			sub.ExistingImageURLs = make([]string, tt.existing)
			for i := range sub.ExistingImageURLs {
				sub.ExistingImageURLs[i] = "https://img.example.com/old.jpg"
			}

			assert.Equal(t, tt.images+tt.existing, sub.ImageCount())

			err := sub.Validate()
			if tt.wantOK {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var errs *ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), "imageFiles")
		})
	}
}

// TestHotelSubmission_AllViolationsAtOnce tests that the validator
// accumulates every violation instead of stopping at the first.
func TestHotelSubmission_AllViolationsAtOnce(t *testing.T) {
	sub := HotelSubmission{}

	err := sub.Validate()
	require.Error(t, err)

	var errs *ValidationErrors
	require.ErrorAs(t, err, &errs)

	fields := errs.ToMap()
	for _, field := range []string{
		"name", "city", "country", "description", "type",
		"adultCount", "pricePerNight", "starRating", "facilities", "imageFiles",
	} {
		assert.Contains(t, fields, field)
	}
}
