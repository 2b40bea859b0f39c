package models

// Site yönetilen konut sitesidir (çoklu kiracı yapısında en üst birim).
type Site struct {
	BaseModel
	Name        string `gorm:"type:varchar(200);not null;index" json:"name"`
	Address     string `gorm:"type:varchar(500)" json:"address"`
	City        string `gorm:"type:varchar(100)" json:"city"`
	District    string `gorm:"type:varchar(100)" json:"district"`
	Description string `gorm:"type:text" json:"description"`
	IsActive    bool   `gorm:"default:true;index" json:"isActive"`

	Blocks      []Block      `gorm:"foreignKey:SiteID" json:"blocks,omitempty"`
	CommonAreas []CommonArea `gorm:"foreignKey:SiteID" json:"commonAreas,omitempty"`

	// Yalnızca liste ve detay sorgusunda doldurulur; preload edilen kayıtta nil kalır.
	BlockCount      *int64 `gorm:"->;-:migration" json:"blockCount,omitempty"`
	CommonAreaCount *int64 `gorm:"->;-:migration" json:"commonAreaCount,omitempty"`
	IssueCount      *int64 `gorm:"->;-:migration" json:"issueCount,omitempty"`
	AssetCount      *int64 `gorm:"->;-:migration" json:"assetCount,omitempty"`
}
