package models

// Block bir site içindeki binadır.
type Block struct {
	BaseModel
	SiteID      uint   `gorm:"not null;index" json:"siteId"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	TotalFloors int    `gorm:"type:integer;default:0" json:"totalFloors"`
	IsActive    bool   `gorm:"default:true;index" json:"isActive"`

	Site   *Site   `gorm:"foreignKey:SiteID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"site,omitempty"`
	Floors []Floor `gorm:"foreignKey:BlockID" json:"floors,omitempty"`

	FloorCount     *int64 `gorm:"->;-:migration" json:"floorCount,omitempty"`
	ApartmentCount *int64 `gorm:"->;-:migration" json:"apartmentCount,omitempty"`
	IssueCount     *int64 `gorm:"->;-:migration" json:"issueCount,omitempty"`
}
