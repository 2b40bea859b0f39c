package models

import (
	"time"

	"gorm.io/gorm"
)

// MeterType sayaç türüdür.
type MeterType string

const (
	MeterTypeElectric MeterType = "ELECTRIC"
	MeterTypeWater    MeterType = "WATER"
	MeterTypeGas      MeterType = "GAS"
)

// MeterReading bir sayacın belirli tarihteki okumasıdır.
// Consumption her kayıtta CurrentReading - PreviousReading olarak yeniden hesaplanır.
type MeterReading struct {
	BaseModel
	SiteID          uint      `gorm:"not null;index" json:"siteId"`
	ApartmentID     *uint     `gorm:"index" json:"apartmentId"`
	Type            MeterType `gorm:"type:varchar(10);not null;index" json:"type"`
	MeterNumber     string    `gorm:"type:varchar(50);not null;index" json:"meterNumber"`
	Location        string    `gorm:"type:varchar(200)" json:"location"`
	PreviousReading float64   `gorm:"type:numeric(14,3);not null;default:0" json:"previousReading"`
	CurrentReading  float64   `gorm:"type:numeric(14,3);not null" json:"currentReading"`
	Consumption     float64   `gorm:"type:numeric(14,3);not null;default:0" json:"consumption"`
	ReadingDate     time.Time `gorm:"not null;index" json:"readingDate"`

	Site      *Site      `gorm:"foreignKey:SiteID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"site,omitempty"`
	Apartment *Apartment `gorm:"foreignKey:ApartmentID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"apartment,omitempty"`
}

// BeforeSave tüketimi okumalardan türetir.
func (m *MeterReading) BeforeSave(tx *gorm.DB) error {
	m.Consumption = m.CurrentReading - m.PreviousReading
	return nil
}
