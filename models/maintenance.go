package models

import "time"

// MaintenanceType bakım kaydının türüdür.
type MaintenanceType string

const (
	MaintenanceTypePeriodic     MaintenanceType = "PERIODIC"
	MaintenanceTypeRepair       MaintenanceType = "REPAIR"
	MaintenanceTypeInstallation MaintenanceType = "INSTALLATION"
	MaintenanceTypeInspection   MaintenanceType = "INSPECTION"
)

// MaintenanceStatus bakım kaydının durumudur.
type MaintenanceStatus string

const (
	MaintenanceStatusScheduled  MaintenanceStatus = "SCHEDULED"
	MaintenanceStatusInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceStatusCompleted  MaintenanceStatus = "COMPLETED"
	MaintenanceStatusCancelled  MaintenanceStatus = "CANCELLED"
)

// MaintenanceRecord planlı veya yapılmış bakım işidir.
type MaintenanceRecord struct {
	BaseModel
	SiteID       uint              `gorm:"not null;index" json:"siteId"`
	CommonAreaID *uint             `gorm:"index" json:"commonAreaId"`
	Title        string            `gorm:"type:varchar(255);not null" json:"title"`
	Type         MaintenanceType   `gorm:"type:varchar(20);not null;default:'PERIODIC';index" json:"type"`
	Status       MaintenanceStatus `gorm:"type:varchar(20);not null;default:'SCHEDULED';index" json:"status"`
	Date         time.Time         `gorm:"not null;index" json:"date"`
	Technician   string            `gorm:"type:varchar(150)" json:"technician"`
	Cost         *float64          `gorm:"type:numeric(12,2)" json:"cost"`
	Description  string            `gorm:"type:text" json:"description"`
	IsActive     bool              `gorm:"default:true;index" json:"isActive"`

	Site       *Site       `gorm:"foreignKey:SiteID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"site,omitempty"`
	CommonArea *CommonArea `gorm:"foreignKey:CommonAreaID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"commonArea,omitempty"`
}
