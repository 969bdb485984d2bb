// Package models defines the persisted entities of the application tracker
package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/apptrack/apptrack/internal/errors"
)

// DateAppliedLayout is the calendar-date layout used for the DateApplied field
const DateAppliedLayout = "2006-01-02"

// Field names for the application model
const (
	// ApplicationStatusField is the column name for the application status
	ApplicationStatusField = "status"
	// ApplicationDateAppliedField is the column name for the applied date
	ApplicationDateAppliedField = "date_applied"
)

// Status represents the current state of a job application
type Status string

// Application status constants
const (
	// StatusApplied indicates the application has been submitted
	StatusApplied Status = "applied"
	// StatusInterview indicates the application progressed to an interview
	StatusInterview Status = "interview"
	// StatusOffer indicates an offer has been extended
	StatusOffer Status = "offer"
	// StatusRejected indicates the application was rejected
	StatusRejected Status = "rejected"
)

// Statuses lists every valid application status.
// Any status may follow any other; there is no transition graph.
var Statuses = []Status{StatusApplied, StatusInterview, StatusOffer, StatusRejected}

// Application represents a single job application record
type Application struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Company     string    `json:"company" gorm:"not null"`
	Position    string    `json:"position" gorm:"not null"`
	Status      Status    `json:"status" gorm:"not null;index"`
	DateApplied string    `json:"dateApplied" gorm:"column:date_applied;not null;index"`
	CreatedAt   time.Time `json:"createdAt"`
}

// String returns the string representation of the application status
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a string to a Status type
func ParseStatus(str string) (Status, error) {
	for _, status := range Statuses {
		if str == string(status) {
			return status, nil
		}
	}
	return "", fmt.Errorf("%w: invalid application status: %q", apperrors.ErrInvalidInput, str)
}

// UnmarshalJSON implements json.Unmarshaler for Status
func (s *Status) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	status, err := ParseStatus(str)
	if err != nil {
		return err
	}

	*s = status
	return nil
}

// MarshalJSON implements json.Marshaler for Status
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Validate ensures that the application data is valid
func (a *Application) Validate() error {
	if strings.TrimSpace(a.Company) == "" {
		return fmt.Errorf("%w: company cannot be empty", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(a.Position) == "" {
		return fmt.Errorf("%w: position cannot be empty", apperrors.ErrInvalidInput)
	}
	if _, err := ParseStatus(string(a.Status)); err != nil {
		return err
	}
	if _, err := time.Parse(DateAppliedLayout, a.DateApplied); err != nil {
		return fmt.Errorf("%w: dateApplied must be a %s date: %q", apperrors.ErrInvalidInput, DateAppliedLayout, a.DateApplied)
	}
	return nil
}

// BeforeCreate is a GORM hook that runs before inserting a new application
func (a *Application) BeforeCreate(_ *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusApplied
	}
	return a.Validate()
}
