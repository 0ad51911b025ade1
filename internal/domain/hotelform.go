package domain

import "fmt"

// Image-count bounds for a hotel listing. New uploads and pre-existing image
// references count together against the maximum.
const (
	MinHotelImages = 1
	MaxHotelImages = 6
)

// Text-field length bounds shared by name, city, country and description.
const (
	minTextLen = 3
	maxTextLen = 300
)

// ImageUpload is a new image file attached to a hotel submission.
type ImageUpload struct {
	// Filename is the original upload name
	Filename string

	// ContentType is the declared MIME type
	ContentType string

	// Data is the raw file content
	Data []byte
}

// HotelSubmission collects the structured hotel listing fields plus images.
// Create and update share this shape; update additionally carries the target
// hotel's identifier.
type HotelSubmission struct {
	// HotelID is set only when editing an existing listing
	HotelID string

	Name          string
	City          string
	Country       string
	Description   string
	Type          string
	AdultCount    int
	ChildCount    int
	PricePerNight int
	StarRating    int
	Facilities    []string

	// Images are new file uploads
	Images []ImageUpload

	// ExistingImageURLs are references kept from a previous version when editing
	ExistingImageURLs []string
}

// ImageCount is the combined count of new uploads and kept references.
func (h *HotelSubmission) ImageCount() int {
	return len(h.Images) + len(h.ExistingImageURLs)
}

// Validate checks every declared field constraint and returns all violations
// at once as a *ValidationErrors, or nil when the submission is valid.
func (h *HotelSubmission) Validate() error {
	errs := &ValidationErrors{}

	validateText(errs, "name", h.Name)
	validateText(errs, "city", h.City)
	validateText(errs, "country", h.Country)
	validateText(errs, "description", h.Description)

	if h.Type == "" {
		errs.Add("type", "select a hotel type")
	}
	if h.AdultCount < 1 {
		errs.Add("adultCount", "adult count cannot be less than 1")
	}
	if h.ChildCount < 0 {
		errs.Add("childCount", "child count cannot be negative")
	}
	if h.PricePerNight < 1 {
		errs.Add("pricePerNight", "price per night must be at least 1")
	}
	if h.StarRating < 1 || h.StarRating > 5 {
		errs.Add("starRating", "rating must be between 1 and 5")
	}
	if len(h.Facilities) == 0 {
		errs.Add("facilities", "must select at least one facility")
	}

	if count := h.ImageCount(); count < MinHotelImages {
		errs.Add("imageFiles", "hotel must have at least 1 image")
	} else if count > MaxHotelImages {
		errs.Add("imageFiles", fmt.Sprintf("hotel cannot have more than %d images", MaxHotelImages))
	}

	return errs.OrNil()
}

func validateText(errs *ValidationErrors, field, value string) {
	if value == "" {
		errs.Add(field, field+" cannot be blank")
		return
	}
	if len(value) < minTextLen {
		errs.Add(field, fmt.Sprintf("%s cannot be less than %d characters", field, minTextLen))
		return
	}
	if len(value) > maxTextLen {
		errs.Add(field, fmt.Sprintf("%s cannot be more than %d characters", field, maxTextLen))
	}
}
