package usecase

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/piresc/lleva/internal/pkg/constants"
	"github.com/piresc/lleva/internal/pkg/models"
	"github.com/piresc/lleva/services/session"
)

const (
	MinStars          = 1
	MaxStars          = 5
	MaxFeedbackLength = 500
	MaxChatLength     = 1000
)

const (
	reasonRequired = "is required"
	reasonInvalid  = "is invalid"
)

// normalizeBookingRequest trims the free-text fields and drops the fields
// that do not belong to the request's kind, vehicle or mode
func normalizeBookingRequest(req models.BookingRequest) models.BookingRequest {
	req.PickupLocation = strings.TrimSpace(req.PickupLocation)
	req.Destination = strings.TrimSpace(req.Destination)
	req.MerchantID = strings.TrimSpace(req.MerchantID)
	req.OrderDetails = strings.TrimSpace(req.OrderDetails)

	if req.Mode == "" {
		req.Mode = models.BookingModeNow
	}
	if req.Mode == models.BookingModeNow {
		req.ScheduledAt = nil
	}

	switch req.Kind {
	case models.BookingKindTrip:
		req.MerchantID = ""
		req.OrderDetails = ""
		if req.VehicleType != models.VehicleTypeTaxi {
			req.TaxiTier = ""
		}
	case models.BookingKindDelivery:
		req.VehicleType = ""
		req.TaxiTier = ""
	}
	return req
}

// validateBookingRequest returns a ValidationError listing every missing or
// invalid field of a normalized request
func validateBookingRequest(req models.BookingRequest, now time.Time, merchants *MerchantDirectory) *session.ValidationError {
	var fields []session.FieldError
	add := func(field, reason string) {
		fields = append(fields, session.FieldError{Field: field, Reason: reason})
	}

	message := constants.MessageIncompleteTrip
	switch req.Kind {
	case models.BookingKindTrip:
		switch req.VehicleType {
		case models.VehicleTypeTaxi:
			if req.TaxiTier != models.TaxiTierBasic && req.TaxiTier != models.TaxiTierPremium {
				add("taxi_tier", reasonRequired)
			}
		case models.VehicleTypeMotoTaxi:
		case "":
			add("vehicle_type", reasonRequired)
		default:
			add("vehicle_type", reasonInvalid)
		}
	case models.BookingKindDelivery:
		message = constants.MessageIncompleteDelivery
		if req.MerchantID == "" {
			add("merchant_id", reasonRequired)
		} else if merchants != nil {
			if _, ok := merchants.Lookup(req.MerchantID); !ok {
				add("merchant_id", "is not an active merchant")
			}
		}
		if req.OrderDetails == "" {
			add("order_details", reasonRequired)
		}
	default:
		add("kind", reasonInvalid)
	}

	if req.PickupLocation == "" {
		add("pickup_location", reasonRequired)
	}
	if req.Destination == "" {
		add("destination", reasonRequired)
	}

	switch req.Mode {
	case models.BookingModeNow:
	case models.BookingModeLater:
		if req.ScheduledAt == nil {
			add("scheduled_at", reasonRequired)
		} else if !req.ScheduledAt.After(now) {
			add("scheduled_at", "must be in the future")
		}
	default:
		add("booking_mode", reasonInvalid)
	}

	if len(fields) == 0 {
		return nil
	}
	return &session.ValidationError{Fields: fields, Message: message}
}

// ValidateRating checks that stars is within the accepted scale
func ValidateRating(stars int) error {
	if stars < MinStars || stars > MaxStars {
		return &session.ValidationError{
			Fields:  []session.FieldError{{Field: "stars", Reason: "must be between 1 and 5"}},
			Message: "La calificación debe estar entre 1 y 5 estrellas.",
		}
	}
	return nil
}

// ValidateFeedback checks the optional written feedback length
func ValidateFeedback(feedback string) error {
	if utf8.RuneCountInString(feedback) > MaxFeedbackLength {
		return &session.ValidationError{
			Fields:  []session.FieldError{{Field: "feedback", Reason: "must be at most 500 characters"}},
			Message: "El comentario no puede superar los 500 caracteres.",
		}
	}
	return nil
}
