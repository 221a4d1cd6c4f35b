package models

import (
	"gorm.io/gorm"
)

type Vehicle struct {
	gorm.Model
	DriverID     uint   `json:"driver_id" gorm:"not null;index"`
	Driver       *User  `json:"driver,omitempty" gorm:"foreignKey:DriverID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Make         string `json:"make"`
	VehicleModel string `json:"model" gorm:"column:model"`
	Year         int    `json:"year"`
	Color        string `json:"color"`
	PlateNumber  string `json:"plate_number" gorm:"uniqueIndex;not null"`
	Capacity     int    `json:"capacity"`
}
