package models

import (
	"time"

	"gorm.io/gorm"
)

// RouteStatus is the lifecycle state of a route offering.
type RouteStatus string

const (
	RouteActive    RouteStatus = "ACTIVE"
	RouteInactive  RouteStatus = "INACTIVE"
	RouteCompleted RouteStatus = "COMPLETED"
)

// Route is a scheduled trip a driver offers between two locations.
// The vehicle must belong to the same driver.
type Route struct {
	gorm.Model

	DriverID  uint     `json:"driver_id" gorm:"not null;index"`
	Driver    *User    `json:"driver,omitempty" gorm:"foreignKey:DriverID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	VehicleID uint     `json:"vehicle_id" gorm:"not null;index"`
	Vehicle   *Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`

	StartLocation string    `json:"start_location" gorm:"not null;index"`
	EndLocation   string    `json:"end_location" gorm:"not null;index"`
	DepartureDate time.Time `json:"departure_date" gorm:"type:date"`
	DepartureTime string    `json:"departure_time" gorm:"type:varchar(5)"` // HH:MM

	PricePerSeat   float64     `json:"price_per_seat"`
	AvailableSeats int         `json:"available_seats"`
	TotalSeats     int         `json:"total_seats"`
	Status         RouteStatus `json:"status" gorm:"type:varchar(16);not null;default:'ACTIVE';index"`

	// Ordered intermediate stops, including both ends.
	BusStops StopList `json:"bus_stops"`
}
