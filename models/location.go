package models

// LocationKind bir eksikliğin bağlandığı hiyerarşi düğümünün türüdür.
type LocationKind string

const (
	LocationSite       LocationKind = "site"
	LocationBlock      LocationKind = "block"
	LocationFloor      LocationKind = "floor"
	LocationApartment  LocationKind = "apartment"
	LocationFloorArea  LocationKind = "floorArea"
	LocationCommonArea LocationKind = "commonArea"
)

// Valid türün tanınan değerlerden biri olup olmadığını söyler.
func (k LocationKind) Valid() bool {
	switch k {
	case LocationSite, LocationBlock, LocationFloor, LocationApartment, LocationFloorArea, LocationCommonArea:
		return true
	}
	return false
}

// LocationRef site → blok → kat → daire/kat alanı ya da site → ortak alan
// hiyerarşisindeki tek bir düğümü gösterir. Kind boşsa eksiklik konumsuzdur.
type LocationRef struct {
	Kind LocationKind `gorm:"type:varchar(20);index:idx_issue_location" json:"kind"`
	ID   uint         `gorm:"index:idx_issue_location" json:"id"`
}

// IsZero konum atanmamışsa true döner.
func (l LocationRef) IsZero() bool {
	return l.Kind == "" && l.ID == 0
}
