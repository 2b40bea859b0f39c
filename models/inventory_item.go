package models

import "time"

// AssetCategory demirbaş kategorisidir.
type AssetCategory string

const (
	AssetCategoryFurniture   AssetCategory = "FURNITURE"
	AssetCategoryElectronics AssetCategory = "ELECTRONICS"
	AssetCategoryGarden      AssetCategory = "GARDEN"
	AssetCategorySports      AssetCategory = "SPORTS"
	AssetCategoryTools       AssetCategory = "TOOLS"
	AssetCategoryOther       AssetCategory = "OTHER"
)

// AssetStatus demirbaşın fiziksel durumudur.
type AssetStatus string

const (
	AssetStatusNew              AssetStatus = "NEW"
	AssetStatusGood             AssetStatus = "GOOD"
	AssetStatusNeedsMaintenance AssetStatus = "NEEDS_MAINTENANCE"
	AssetStatusBroken           AssetStatus = "BROKEN"
	AssetStatusScrap            AssetStatus = "SCRAP"
)

// InventoryItem takip edilen demirbaştır. Bir siteye ve isteğe bağlı olarak bir ortak alana bağlıdır.
type InventoryItem struct {
	BaseModel
	SiteID       uint          `gorm:"not null;index" json:"siteId"`
	CommonAreaID *uint         `gorm:"index" json:"commonAreaId"`
	Name         string        `gorm:"type:varchar(200);not null" json:"name"`
	Category     AssetCategory `gorm:"type:varchar(30);not null;default:'OTHER';index" json:"category"`
	Quantity     int           `gorm:"type:integer;not null" json:"quantity"`
	Status       AssetStatus   `gorm:"type:varchar(30);not null;default:'NEW';index" json:"status"`
	SerialNumber string        `gorm:"type:varchar(100)" json:"serialNumber"`
	PurchaseDate *time.Time    `json:"purchaseDate"`
	Description  string        `gorm:"type:text" json:"description"`
	IsActive     bool          `gorm:"default:true;index" json:"isActive"`

	Site       *Site       `gorm:"foreignKey:SiteID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"site,omitempty"`
	CommonArea *CommonArea `gorm:"foreignKey:CommonAreaID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"commonArea,omitempty"`
}
