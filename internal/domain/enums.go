// Package domain defines the core domain models for the dealership assistant.
package domain

// FuelType represents the fuel or power source of a vehicle.
type FuelType string

const (
	FuelGasoline FuelType = "gasoline"
	FuelDiesel   FuelType = "diesel"
	FuelHybrid   FuelType = "hybrid"
	FuelElectric FuelType = "electric"
)

// BodyStyle represents the body style of a vehicle.
type BodyStyle string

const (
	BodySedan     BodyStyle = "sedan"
	BodySUV       BodyStyle = "suv"
	BodyHatchback BodyStyle = "hatchback"
	BodyCoupe     BodyStyle = "coupe"
	BodyWagon     BodyStyle = "wagon"
	BodyPickup    BodyStyle = "pickup"
)

// Transmission represents the transmission type of a vehicle.
type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
)

// AppointmentType represents the kind of appointment a customer can book.
type AppointmentType string

const (
	AppointmentTestDrive    AppointmentType = "test_drive"
	AppointmentConsultation AppointmentType = "consultation"
	AppointmentInspection   AppointmentType = "inspection"
	AppointmentDelivery     AppointmentType = "delivery"
)

// AppointmentStatus represents the status of an appointment.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentCompleted AppointmentStatus = "completed"
)

// CreditProfile represents a customer's self-reported credit standing.
type CreditProfile string

const (
	CreditExcellent CreditProfile = "excellent"
	CreditGood      CreditProfile = "good"
	CreditFair      CreditProfile = "fair"
	CreditLimited   CreditProfile = "limited"
)
