package models

// CommonAreaType site ortak alanının türüdür. Liste genişletilebilir; geçerli değerler
// CommonAreaTypeLabels içinde tutulur.
type CommonAreaType string

const (
	CommonAreaPlayground       CommonAreaType = "PLAYGROUND"
	CommonAreaPool             CommonAreaType = "POOL"
	CommonAreaGym              CommonAreaType = "GYM"
	CommonAreaParking          CommonAreaType = "PARKING"
	CommonAreaGarden           CommonAreaType = "GARDEN"
	CommonAreaPark             CommonAreaType = "PARK"
	CommonAreaSpa              CommonAreaType = "SPA"
	CommonAreaSauna            CommonAreaType = "SAUNA"
	CommonAreaFitness          CommonAreaType = "FITNESS"
	CommonAreaHammam           CommonAreaType = "HAMMAM"
	CommonAreaGenerator        CommonAreaType = "GENERATOR"
	CommonAreaTransformer      CommonAreaType = "TRANSFORMER"
	CommonAreaParkingIndoor    CommonAreaType = "PARKING_INDOOR"
	CommonAreaMeetingRoom      CommonAreaType = "MEETING_ROOM"
	CommonAreaSecurity         CommonAreaType = "SECURITY"
	CommonAreaManagementOffice CommonAreaType = "MANAGEMENT_OFFICE"
	CommonAreaWarehouse        CommonAreaType = "WAREHOUSE"
	CommonAreaOther            CommonAreaType = "OTHER"
)

// CommonArea siteye ait ortak kullanım alanıdır (havuz, spor salonu, otopark).
type CommonArea struct {
	BaseModel
	SiteID      uint           `gorm:"not null;index" json:"siteId"`
	Name        string         `gorm:"type:varchar(150);not null" json:"name"`
	Type        CommonAreaType `gorm:"type:varchar(30);not null;default:'OTHER';index" json:"type"`
	Description string         `gorm:"type:text" json:"description"`
	Area        *float64       `gorm:"type:numeric(10,2)" json:"area"`
	Capacity    *int           `gorm:"type:integer" json:"capacity"`
	IsActive    bool           `gorm:"default:true;index" json:"isActive"`

	Site  *Site           `gorm:"foreignKey:SiteID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"site,omitempty"`
	Items []InventoryItem `gorm:"foreignKey:CommonAreaID" json:"items,omitempty"`

	ItemCount  *int64 `gorm:"->;-:migration" json:"itemCount,omitempty"`
	IssueCount *int64 `gorm:"->;-:migration" json:"issueCount,omitempty"`
}
