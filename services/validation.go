package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CheckInInput is the engine-level check-in request after transport decoding.
type CheckInInput struct {
	FirstName    string `validate:"required,min=2"`
	LastName     string `validate:"required,min=2"`
	Contact      string `validate:"required,min=10"`
	Email        string `validate:"required,contains=@"`
	RoomID       int    `validate:"min=1"`
	CheckInDate  string `validate:"required"`
	NumberOfDays int    `validate:"min=1,max=365"`
}

// One message per field regardless of which tag failed, same wording the
// frontend already shows inline.
var checkInMessages = map[string]string{
	"FirstName":    "First name must be at least 2 characters",
	"LastName":     "Last name must be at least 2 characters",
	"Contact":      "Contact number must be at least 10 characters",
	"Email":        "Valid email is required",
	"RoomID":       "Valid room ID is required",
	"CheckInDate":  "Check-in date is required",
	"NumberOfDays": "Number of days must be between 1 and 365",
}

var checkInDateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseCheckInDate(s string) (time.Time, error) {
	for _, layout := range checkInDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable check-in date %q", s)
}

// validateCheckIn trims the input in place and collects every violation
// before reporting, so the caller gets the full list in one response.
// Returns the parsed check-in date when the input is valid.
func validateCheckIn(in *CheckInInput) (time.Time, *ValidationError) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Contact = strings.TrimSpace(in.Contact)
	in.Email = strings.TrimSpace(in.Email)
	in.CheckInDate = strings.TrimSpace(in.CheckInDate)

	var messages []string

	if err := validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			seen := make(map[string]bool, len(fieldErrs))
			for _, fe := range fieldErrs {
				msg, ok := checkInMessages[fe.StructField()]
				if !ok {
					msg = fmt.Sprintf("Invalid value for %s", fe.StructField())
				}
				if !seen[msg] {
					messages = append(messages, msg)
					seen[msg] = true
				}
			}
		} else {
			// validator only returns InvalidValidationError for broken
			// struct definitions, never for user input
			messages = append(messages, "Invalid check-in data")
		}
	}

	var checkInDate time.Time
	if in.CheckInDate != "" {
		t, err := parseCheckInDate(in.CheckInDate)
		if err != nil {
			messages = append(messages, "Check-in date must be a valid date")
		} else {
			checkInDate = t
		}
	}

	if len(messages) > 0 {
		return time.Time{}, &ValidationError{Messages: messages}
	}
	return checkInDate, nil
}
