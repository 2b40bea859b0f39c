package models

// Floor bir bloğun katıdır. Number sıralama anahtarıdır, bodrum katlarda negatif olabilir.
type Floor struct {
	BaseModel
	BlockID     uint   `gorm:"not null;index" json:"blockId"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Number      int    `gorm:"type:integer;not null;index" json:"number"`
	Description string `gorm:"type:text" json:"description"`
	IsActive    bool   `gorm:"default:true;index" json:"isActive"`

	Block      *Block      `gorm:"foreignKey:BlockID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"block,omitempty"`
	Apartments []Apartment `gorm:"foreignKey:FloorID" json:"apartments,omitempty"`
	FloorAreas []FloorArea `gorm:"foreignKey:FloorID" json:"floorAreas,omitempty"`

	ApartmentCount *int64 `gorm:"->;-:migration" json:"apartmentCount,omitempty"`
	FloorAreaCount *int64 `gorm:"->;-:migration" json:"floorAreaCount,omitempty"`
}

// FloorAreaType kat ortak alanlarının türüdür.
type FloorAreaType string

const (
	FloorAreaStaircase         FloorAreaType = "STAIRCASE"
	FloorAreaElevatorPassenger FloorAreaType = "ELEVATOR_PASSENGER"
	FloorAreaElevatorFreight   FloorAreaType = "ELEVATOR_FREIGHT"
	FloorAreaElevatorService   FloorAreaType = "ELEVATOR_SERVICE"
	FloorAreaMeterShaft        FloorAreaType = "METER_SHAFT"
	FloorAreaElectricalRoom    FloorAreaType = "ELECTRICAL_ROOM"
	FloorAreaGarbageArea       FloorAreaType = "GARBAGE_AREA"
	FloorAreaFireCabinet       FloorAreaType = "FIRE_CABINET"
	FloorAreaCorridor          FloorAreaType = "CORRIDOR"
	FloorAreaLobby             FloorAreaType = "LOBBY"
	FloorAreaOther             FloorAreaType = "OTHER"
)

// FloorArea kat üzerindeki isimlendirilmiş ortak alandır (merdiven, asansör, sayaç şaftı).
type FloorArea struct {
	BaseModel
	FloorID     uint          `gorm:"not null;index" json:"floorId"`
	Name        string        `gorm:"type:varchar(150);not null" json:"name"`
	Type        FloorAreaType `gorm:"type:varchar(30);not null;default:'OTHER'" json:"type"`
	Description string        `gorm:"type:text" json:"description"`
	IsActive    bool          `gorm:"default:true;index" json:"isActive"`

	Floor *Floor `gorm:"foreignKey:FloorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"floor,omitempty"`
}
