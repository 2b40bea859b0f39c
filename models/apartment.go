package models

// ApartmentStatus dairenin kullanım durumudur.
type ApartmentStatus string

const (
	ApartmentStatusOccupied    ApartmentStatus = "OCCUPIED"
	ApartmentStatusEmpty       ApartmentStatus = "EMPTY"
	ApartmentStatusMaintenance ApartmentStatus = "MAINTENANCE"
	ApartmentStatusReserved    ApartmentStatus = "RESERVED"
)

// Apartment bir kattaki bağımsız bölümdür.
type Apartment struct {
	BaseModel
	FloorID     uint            `gorm:"not null;index" json:"floorId"`
	Number      string          `gorm:"type:varchar(20);not null;index" json:"number"`
	Type        string          `gorm:"type:varchar(30)" json:"type"` // oda düzeni, ör. "2+1"
	Area        *float64        `gorm:"type:numeric(10,2)" json:"area"`
	RoomCount   *int            `gorm:"type:integer" json:"roomCount"`
	Status      ApartmentStatus `gorm:"type:varchar(20);not null;default:'EMPTY';index" json:"status"`
	OwnerName   string          `gorm:"type:varchar(150)" json:"ownerName"`
	OwnerPhone  string          `gorm:"type:varchar(30)" json:"ownerPhone"`
	OwnerEmail  string          `gorm:"type:varchar(150)" json:"ownerEmail"`
	TenantName  string          `gorm:"type:varchar(150)" json:"tenantName"`
	TenantPhone string          `gorm:"type:varchar(30)" json:"tenantPhone"`
	TenantEmail string          `gorm:"type:varchar(150)" json:"tenantEmail"`
	Description string          `gorm:"type:text" json:"description"`
	IsActive    bool            `gorm:"default:true;index" json:"isActive"`

	Floor *Floor `gorm:"foreignKey:FloorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"floor,omitempty"`

	IssueCount *int64 `gorm:"->;-:migration" json:"issueCount,omitempty"`
}
