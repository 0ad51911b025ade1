package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/hotel-search/hotel-booking-storefront/internal/domain"
)

// MyHotels implements domain.OwnerBackend.
func (c *Client) MyHotels(ctx context.Context) ([]domain.HotelSummary, error) {
	env, err := call[[]domain.HotelSummary](ctx, c, request{
		method:     http.MethodGet,
		path:       "/api/my/hotel",
		wantStatus: http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	if env.Data == nil {
		return []domain.HotelSummary{}, nil
	}
	return env.Data, nil
}

// MyHotel implements domain.OwnerBackend.
func (c *Client) MyHotel(ctx context.Context, hotelID string) (*domain.HotelSummary, error) {
	env, err := call[domain.HotelSummary](ctx, c, request{
		method:     http.MethodGet,
		path:       "/api/my/hotel/" + hotelID,
		wantStatus: http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// CreateHotel implements domain.OwnerBackend. Listings travel as multipart
// form data because they carry raw image files alongside the structured fields.
func (c *Client) CreateHotel(ctx context.Context, sub domain.HotelSubmission) (*domain.HotelSummary, error) {
	body, contentType, err := multipartSubmission(sub)
	if err != nil {
		return nil, err
	}
	env, err := call[domain.HotelSummary](ctx, c, request{
		method:      http.MethodPost,
		path:        "/api/my/hotel",
		body:        body,
		contentType: contentType,
		wantStatus:  http.StatusCreated,
	})
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// UpdateHotel implements domain.OwnerBackend.
func (c *Client) UpdateHotel(ctx context.Context, sub domain.HotelSubmission) (*domain.HotelSummary, error) {
	if sub.HotelID == "" {
		return nil, fmt.Errorf("update hotel: %w: missing hotel ID", domain.ErrInvalidRequest)
	}
	body, contentType, err := multipartSubmission(sub)
	if err != nil {
		return nil, err
	}
	env, err := call[domain.HotelSummary](ctx, c, request{
		method:      http.MethodPut,
		path:        "/api/my/hotel/" + sub.HotelID,
		body:        body,
		contentType: contentType,
		wantStatus:  http.StatusOK,
	})
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// multipartSubmission encodes a hotel submission the way the backend's form
// parser expects: scalar fields as plain parts, facilities as indexed
// facilities[i] parts, kept image references as repeated imageUrls parts and
// new uploads as imageFiles file parts with their declared content type.
func multipartSubmission(sub domain.HotelSubmission) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":          sub.Name,
		"city":          sub.City,
		"country":       sub.Country,
		"description":   sub.Description,
		"type":          sub.Type,
		"adultCount":    strconv.Itoa(sub.AdultCount),
		"childCount":    strconv.Itoa(sub.ChildCount),
		"pricePerNight": strconv.Itoa(sub.PricePerNight),
		"starRating":    strconv.Itoa(sub.StarRating),
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("write form field %s: %w", name, err)
		}
	}

	for i, facility := range sub.Facilities {
		name := fmt.Sprintf("facilities[%d]", i)
		if err := w.WriteField(name, facility); err != nil {
			return nil, "", fmt.Errorf("write form field %s: %w", name, err)
		}
	}

	for _, u := range sub.ExistingImageURLs {
		if err := w.WriteField("imageUrls", u); err != nil {
			return nil, "", fmt.Errorf("write form field imageUrls: %w", err)
		}
	}

	for _, img := range sub.Images {
		part, err := createImagePart(w, img)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(img.Data); err != nil {
			return nil, "", fmt.Errorf("write image %s: %w", img.Filename, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

// createImagePart opens a file part carrying the upload's declared MIME type.
// multipart.Writer.CreateFormFile would hardcode application/octet-stream.
func createImagePart(w *multipart.Writer, img domain.ImageUpload) (io.Writer, error) {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="imageFiles"; filename="%s"`,
		escapeQuotes(img.Filename)))
	contentType := img.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("create image part for %s: %w", img.Filename, err)
	}
	return part, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
