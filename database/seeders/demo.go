package seeders

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"siteyonetim.app/configs/configslog"
	"siteyonetim.app/models"
)

const DemoSiteName = "Örnek Site"

var demoBlockNames = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

const (
	demoLowestFloor   = -1
	demoHighestFloor  = 10
	demoFlatsPerFloor = 4
)

// SeedDemoSite 8 bloklu örnek siteyi oluşturur. Aynı isimde site varsa işlem atlanır.
func SeedDemoSite(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Site{}).Where("name = ?", DemoSiteName).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		configslog.SLog.Infof("Örnek site '%s' zaten mevcut, atlanıyor.", DemoSiteName)
		return nil
	}

	site := models.Site{
		Name:        DemoSiteName,
		Address:     "Örnek Mahallesi, Örnek Sokak No:1",
		City:        "İstanbul",
		District:    "Kadıköy",
		Description: "8 bloktan oluşan örnek toplu konut sitesi",
		IsActive:    true,
	}
	if err := db.Create(&site).Error; err != nil {
		configslog.Log.Error("Örnek site oluşturulamadı", zap.Error(err))
		return err
	}

	for _, name := range demoBlockNames {
		if err := seedDemoBlock(db, site.ID, name); err != nil {
			configslog.Log.Error("Örnek blok oluşturulamadı", zap.String("block", name), zap.Error(err))
			return err
		}
	}

	if err := db.Create(demoCommonAreas(site.ID)).Error; err != nil {
		configslog.Log.Error("Örnek ortak alanlar oluşturulamadı", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Örnek site oluşturuldu (ID: %d).", site.ID)
	return nil
}

func seedDemoBlock(db *gorm.DB, siteID uint, name string) error {
	block := models.Block{
		SiteID:      siteID,
		Name:        name + " Blok",
		TotalFloors: demoHighestFloor,
		Description: fmt.Sprintf("%s Blok - %d katlı", name, demoHighestFloor),
		IsActive:    true,
	}
	if err := db.Create(&block).Error; err != nil {
		return err
	}

	for number := demoLowestFloor; number <= demoHighestFloor; number++ {
		floor := models.Floor{BlockID: block.ID, Name: floorName(number), Number: number, IsActive: true}
		if err := db.Create(&floor).Error; err != nil {
			return err
		}
		if number >= 1 {
			flats := make([]models.Apartment, 0, demoFlatsPerFloor)
			for i := 1; i <= demoFlatsPerFloor; i++ {
				layout, rooms := "3+1", 4
				if i <= 2 {
					layout, rooms = "2+1", 3
				}
				flats = append(flats, models.Apartment{
					FloorID:   floor.ID,
					Number:    fmt.Sprintf("%d0%d", number, i),
					Type:      layout,
					RoomCount: &rooms,
					Status:    models.ApartmentStatusEmpty,
					IsActive:  true,
				})
			}
			if err := db.Create(&flats).Error; err != nil {
				return err
			}
		}
		areas := []models.FloorArea{
			{FloorID: floor.ID, Name: "Merdiven Boşluğu", Type: models.FloorAreaStaircase, IsActive: true},
			{FloorID: floor.ID, Name: "Yolcu Asansörü", Type: models.FloorAreaElevatorPassenger, IsActive: true},
			{FloorID: floor.ID, Name: "Sayaç Şaftı", Type: models.FloorAreaMeterShaft, IsActive: true},
		}
		if err := db.Create(&areas).Error; err != nil {
			return err
		}
	}
	return nil
}

func floorName(number int) string {
	switch number {
	case -1:
		return "Bodrum Kat"
	case 0:
		return "Zemin Kat"
	default:
		return fmt.Sprintf("%d. Kat", number)
	}
}

func demoCommonAreas(siteID uint) *[]models.CommonArea {
	area := func(v float64) *float64 { return &v }
	capacity := func(v int) *int { return &v }
	areas := []models.CommonArea{
		{Name: "Çocuk Oyun Parkı", Type: models.CommonAreaPlayground, Area: area(500)},
		{Name: "Fitness Salonu", Type: models.CommonAreaFitness, Area: area(200), Capacity: capacity(30)},
		{Name: "Spa & Sauna", Type: models.CommonAreaSpa, Area: area(150), Capacity: capacity(20)},
		{Name: "Hamam", Type: models.CommonAreaHammam, Area: area(100), Capacity: capacity(15)},
		{Name: "Kapalı Otopark", Type: models.CommonAreaParkingIndoor, Area: area(5000), Capacity: capacity(200)},
		{Name: "Açık Otopark", Type: models.CommonAreaParking, Area: area(3000), Capacity: capacity(150)},
		{Name: "Jeneratör Odası", Type: models.CommonAreaGenerator, Area: area(50)},
		{Name: "Trafo Merkezi", Type: models.CommonAreaTransformer, Area: area(40)},
		{Name: "Güvenlik Kulübesi", Type: models.CommonAreaSecurity, Area: area(20)},
		{Name: "Site Yönetim Ofisi", Type: models.CommonAreaManagementOffice, Area: area(80)},
	}
	for i := range areas {
		areas[i].SiteID = siteID
		areas[i].IsActive = true
	}
	return &areas
}
