package dealership

import (
	"context"
	"errors"
	"fmt"

	"github.com/marcaguilaar/automax-whatsapp-bot/internal/domain"
)

// SlotsResult lists the bookable times for one date.
type SlotsResult struct {
	Success         bool     `json:"success"`
	Date            string   `json:"date"`
	AvailableSlots  []string `json:"availableSlots"`
	AppointmentType string   `json:"appointmentType,omitempty"`
}

// ScheduleRequest is the argument set for booking an appointment. Field names
// match the tool schema advertised to the model.
type ScheduleRequest struct {
	Date            string `json:"date"`
	Time            string `json:"time"`
	AppointmentType string `json:"appointmentType"`
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerEmail   string `json:"customerEmail,omitempty"`
	CarID           string `json:"carId,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// ScheduleResult is the answer to a booking attempt. A slot conflict is a
// structured outcome, not an error.
type ScheduleResult struct {
	Success            bool                `json:"success"`
	Appointment        *domain.Appointment `json:"appointment,omitempty"`
	ConfirmationNumber string              `json:"confirmationNumber,omitempty"`
	Message            string              `json:"message,omitempty"`
	Error              string              `json:"error,omitempty"`
}

// AvailableSlots returns the fixed slot catalog minus every slot consumed by a
// non-cancelled appointment on that date. A slot booked for any type blocks
// all types.
func (s *Service) AvailableSlots(ctx context.Context, date, appointmentType string) (SlotsResult, error) {
	booked, err := s.ledger.BookedTimes(ctx, date)
	if err != nil {
		return SlotsResult{}, fmt.Errorf("failed to load booked slots: %w", err)
	}

	taken := make(map[string]bool, len(booked))
	for _, t := range booked {
		taken[t] = true
	}

	available := make([]string, 0, len(s.slots))
	for _, slot := range s.slots {
		if !taken[slot] {
			available = append(available, slot)
		}
	}

	return SlotsResult{
		Success:         true,
		Date:            date,
		AvailableSlots:  available,
		AppointmentType: appointmentType,
	}, nil
}

// Schedule books an appointment, assigning the next sequential id. The ledger
// rejects a second non-cancelled booking for the same (date, time) atomically.
func (s *Service) Schedule(ctx context.Context, req ScheduleRequest) (ScheduleResult, error) {
	appt := &domain.Appointment{
		Date:          req.Date,
		Time:          req.Time,
		Type:          domain.AppointmentType(req.AppointmentType),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		CarID:         req.CarID,
		Notes:         req.Notes,
	}

	if err := s.ledger.Create(ctx, appt); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			return ScheduleResult{
				Success: false,
				Error:   "This time slot is already booked. Please choose a different time.",
			}, nil
		}
		return ScheduleResult{}, fmt.Errorf("failed to book appointment: %w", err)
	}

	return ScheduleResult{
		Success:            true,
		Appointment:        appt,
		ConfirmationNumber: appt.ID,
		Message:            fmt.Sprintf("Appointment scheduled successfully! Your confirmation number is %s.", appt.ID),
	}, nil
}

// CancelAppointment marks an appointment cancelled, freeing its slot.
func (s *Service) CancelAppointment(ctx context.Context, id string) error {
	return s.ledger.Cancel(ctx, id)
}

// GetAppointment returns the appointment with the given id, or nil.
func (s *Service) GetAppointment(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.ledger.Get(ctx, id)
}
