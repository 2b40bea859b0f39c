package models

// Ekranlarda ve raporlarda kullanılan Türkçe etiketler.

var IssueStatusLabels = map[IssueStatus]string{
	IssueStatusOpen:       "Açık",
	IssueStatusInProgress: "Devam Ediyor",
	IssueStatusWaiting:    "Beklemede",
	IssueStatusResolved:   "Çözüldü",
	IssueStatusClosed:     "Kapatıldı",
	IssueStatusCancelled:  "İptal",
}

var IssuePriorityLabels = map[IssuePriority]string{
	IssuePriorityLow:    "Düşük",
	IssuePriorityMedium: "Orta",
	IssuePriorityHigh:   "Yüksek",
	IssuePriorityUrgent: "Acil",
}

var IssueTypeLabels = map[IssueType]string{
	IssueTypeDeficiency:  "Eksiklik",
	IssueTypeMalfunction: "Arıza",
	IssueTypeMaintenance: "Bakım",
	IssueTypeComplaint:   "Şikayet",
	IssueTypeSuggestion:  "Öneri",
	IssueTypeOther:       "Diğer",
}

var RoleLabels = map[Role]string{
	RoleAdmin:   "Yönetici",
	RoleManager: "Müdür",
	RoleStaff:   "Personel",
	RoleUser:    "Kullanıcı",
}

var ApartmentStatusLabels = map[ApartmentStatus]string{
	ApartmentStatusOccupied:    "Dolu",
	ApartmentStatusEmpty:       "Boş",
	ApartmentStatusMaintenance: "Tadilat",
	ApartmentStatusReserved:    "Rezerve",
}

var CommonAreaTypeLabels = map[CommonAreaType]string{
	CommonAreaPlayground:       "Çocuk Oyun Parkı",
	CommonAreaPool:             "Havuz",
	CommonAreaGym:              "Spor Salonu",
	CommonAreaParking:          "Açık Otopark",
	CommonAreaGarden:           "Bahçe",
	CommonAreaPark:             "Park",
	CommonAreaSpa:              "Spa",
	CommonAreaSauna:            "Sauna",
	CommonAreaFitness:          "Fitness",
	CommonAreaHammam:           "Hamam",
	CommonAreaGenerator:        "Jeneratör",
	CommonAreaTransformer:      "Trafo Merkezi",
	CommonAreaParkingIndoor:    "Kapalı Otopark",
	CommonAreaMeetingRoom:      "Toplantı Salonu",
	CommonAreaSecurity:         "Güvenlik",
	CommonAreaManagementOffice: "Yönetim Ofisi",
	CommonAreaWarehouse:        "Depo",
	CommonAreaOther:            "Diğer",
}

var FloorAreaTypeLabels = map[FloorAreaType]string{
	FloorAreaStaircase:         "Merdiven Boşluğu",
	FloorAreaElevatorPassenger: "Yolcu Asansörü",
	FloorAreaElevatorFreight:   "Yük Asansörü",
	FloorAreaElevatorService:   "Servis Asansörü",
	FloorAreaMeterShaft:        "Sayaç Şaftı",
	FloorAreaElectricalRoom:    "Elektrik Odası",
	FloorAreaGarbageArea:       "Çöp Alanı",
	FloorAreaFireCabinet:       "Yangın Dolabı",
	FloorAreaCorridor:          "Koridor",
	FloorAreaLobby:             "Lobi",
	FloorAreaOther:             "Diğer",
}

var AssetStatusLabels = map[AssetStatus]string{
	AssetStatusNew:              "Yeni",
	AssetStatusGood:             "İyi",
	AssetStatusNeedsMaintenance: "Bakım Gerekli",
	AssetStatusBroken:           "Arızalı",
	AssetStatusScrap:            "Hurda",
}

var AssetCategoryLabels = map[AssetCategory]string{
	AssetCategoryFurniture:   "Mobilya",
	AssetCategoryElectronics: "Elektronik",
	AssetCategoryGarden:      "Bahçe",
	AssetCategorySports:      "Spor Ekipmanı",
	AssetCategoryTools:       "Hırdavat",
	AssetCategoryOther:       "Diğer",
}

var MaintenanceTypeLabels = map[MaintenanceType]string{
	MaintenanceTypePeriodic:     "Periyodik Bakım",
	MaintenanceTypeRepair:       "Onarım",
	MaintenanceTypeInstallation: "Kurulum",
	MaintenanceTypeInspection:   "Kontrol",
}

var MaintenanceStatusLabels = map[MaintenanceStatus]string{
	MaintenanceStatusScheduled:  "Planlandı",
	MaintenanceStatusInProgress: "Devam Ediyor",
	MaintenanceStatusCompleted:  "Tamamlandı",
	MaintenanceStatusCancelled:  "İptal",
}

var TransactionCategoryLabels = map[TransactionCategory]string{
	TransactionCategoryDues:        "Aidat",
	TransactionCategoryParking:     "Otopark",
	TransactionCategoryMaintenance: "Bakım",
	TransactionCategoryUtilities:   "Faturalar",
	TransactionCategorySalary:      "Maaş",
	TransactionCategoryOther:       "Diğer",
}

var PaymentMethodLabels = map[PaymentMethod]string{
	PaymentMethodCash:         "Nakit",
	PaymentMethodBankTransfer: "Banka Transferi",
	PaymentMethodCreditCard:   "Kredi Kartı",
	PaymentMethodCheck:        "Çek",
}

var MeterTypeLabels = map[MeterType]string{
	MeterTypeElectric: "Elektrik",
	MeterTypeWater:    "Su",
	MeterTypeGas:      "Doğalgaz",
}

// Label haritada bulunmayan değerler için değerin kendisini döndürür.
func Label[K ~string](labels map[K]string, key K) string {
	if l, ok := labels[key]; ok {
		return l
	}
	return string(key)
}

// AllModels migrasyon sırasına göre tüm tabloları döndürür.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Site{},
		&Block{},
		&Floor{},
		&FloorArea{},
		&Apartment{},
		&CommonArea{},
		&InventoryItem{},
		&Issue{},
		&Media{},
		&Comment{},
		&MaintenanceRecord{},
		&FinancialTransaction{},
		&MeterReading{},
	}
}
