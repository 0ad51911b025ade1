package usecase

import (
	"context"
	"fmt"

	"github.com/hotel-search/hotel-booking-storefront/internal/domain"
	"github.com/hotel-search/hotel-booking-storefront/internal/infrastructure/logger"
)

// ManageHotelPipeline collects a hotel listing submission, validates its
// field constraints and delegates to the owner-scoped create/update
// endpoints. Create and update share the same validation and assembly;
// update additionally carries the target hotel's identifier.
//
// Submissions are passed by value and never mutated here, so a backend
// failure leaves the caller's in-progress form state intact for correction.
type ManageHotelPipeline struct {
	owner domain.OwnerBackend
	log   *logger.Logger
}

// NewManageHotelPipeline creates the pipeline over the owner backend.
func NewManageHotelPipeline(owner domain.OwnerBackend, log *logger.Logger) *ManageHotelPipeline {
	return &ManageHotelPipeline{
		owner: owner,
		log:   log.WithComponent("manage-hotel"),
	}
}

// Create validates and submits a new listing.
func (p *ManageHotelPipeline) Create(ctx context.Context, sub domain.HotelSubmission) (*domain.HotelSummary, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}
	hotel, err := p.owner.CreateHotel(ctx, sub)
	if err != nil {
		p.log.Warn().Err(err).Msg("Hotel creation failed")
		return nil, err
	}
	p.log.Info().Str("hotel_id", hotel.ID).Msg("Hotel created")
	return hotel, nil
}

// Update validates and submits changes to an existing listing.
func (p *ManageHotelPipeline) Update(ctx context.Context, sub domain.HotelSubmission) (*domain.HotelSummary, error) {
	if sub.HotelID == "" {
		return nil, fmt.Errorf("%w: update requires a hotel ID", domain.ErrInvalidRequest)
	}
	if err := sub.Validate(); err != nil {
		return nil, err
	}
	hotel, err := p.owner.UpdateHotel(ctx, sub)
	if err != nil {
		p.log.Warn().Err(err).Str("hotel_id", sub.HotelID).Msg("Hotel update failed")
		return nil, err
	}
	p.log.Info().Str("hotel_id", hotel.ID).Msg("Hotel updated")
	return hotel, nil
}

// Load fetches one of the owner's hotels and prefills an editable submission
// from it, carrying the existing image references forward.
func (p *ManageHotelPipeline) Load(ctx context.Context, hotelID string) (domain.HotelSubmission, error) {
	hotel, err := p.owner.MyHotel(ctx, hotelID)
	if err != nil {
		return domain.HotelSubmission{}, err
	}
	return domain.HotelSubmission{
		HotelID:           hotel.ID,
		Name:              hotel.Name,
		City:              hotel.City,
		Country:           hotel.Country,
		Description:       hotel.Description,
		Type:              hotel.Type,
		AdultCount:        hotel.AdultCount,
		ChildCount:        hotel.ChildCount,
		PricePerNight:     int(hotel.PricePerNight),
		StarRating:        hotel.StarRating,
		Facilities:        append([]string(nil), hotel.Facilities...),
		ExistingImageURLs: append([]string(nil), hotel.ImageURLs...),
	}, nil
}
