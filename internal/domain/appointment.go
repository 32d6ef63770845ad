package domain

import (
	"errors"
	"time"
)

// ErrSlotTaken is returned by the ledger when a non-cancelled appointment
// already occupies the requested (date, time) pair.
var ErrSlotTaken = errors.New("appointment slot already booked")

// ErrAppointmentNotFound is returned when no appointment has the given id.
var ErrAppointmentNotFound = errors.New("appointment not found")

// Appointment represents a booked appointment in the ledger.
// A slot booked for any type blocks all types on that date.
type Appointment struct {
	ID            string            `json:"id"`
	Date          string            `json:"date"` // YYYY-MM-DD
	Time          string            `json:"time"` // one of the fixed slot set
	Type          AppointmentType   `json:"type"`
	CustomerName  string            `json:"customerName"`
	CustomerPhone string            `json:"customerPhone"`
	CustomerEmail string            `json:"customerEmail,omitempty"`
	CarID         string            `json:"carId,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	Status        AppointmentStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
}
