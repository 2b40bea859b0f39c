package services

import (
	"time"

	"gorm.io/gorm"

	"siteyonetim.app/pkg/storage"
	"siteyonetim.app/repositories"
)

// Options servislerin veritabanı dışındaki bağımlılıklarıdır.
type Options struct {
	TokenSecret    string
	TokenTTL       time.Duration
	UploadMaxBytes int64
}

// Services HTTP katmanının ve komut satırının kullandığı servis kümesidir.
type Services struct {
	Auth        IAuthService
	Users       IUserService
	Sites       ISiteService
	Blocks      IBlockService
	Floors      IFloorService
	FloorAreas  IFloorAreaService
	Apartments  IApartmentService
	CommonAreas ICommonAreaService
	Inventory   IInventoryService
	Issues      IIssueService
	Comments    ICommentService
	Media       IMediaService
	Maintenance IMaintenanceService
	Finance     ITransactionService
	Meters      IMeterReadingService
	Reports     IReportService
	Dashboard   IDashboardService
}

// New depoları tek bir *gorm.DB üzerinde kurar ve servisleri birbirine bağlar.
func New(db *gorm.DB, store storage.BlobStore, opts Options) *Services {
	users := repositories.NewUserRepository(db)
	sites := repositories.NewSiteRepository(db)
	blocks := repositories.NewBlockRepository(db)
	floors := repositories.NewFloorRepository(db)
	floorAreas := repositories.NewFloorAreaRepository(db)
	apartments := repositories.NewApartmentRepository(db)
	commonAreas := repositories.NewCommonAreaRepository(db)
	inventory := repositories.NewInventoryRepository(db)
	issues := repositories.NewIssueRepository(db)
	comments := repositories.NewCommentRepository(db)
	media := repositories.NewMediaRepository(db)
	maintenance := repositories.NewMaintenanceRepository(db)
	transactions := repositories.NewTransactionRepository(db)
	meters := repositories.NewMeterReadingRepository(db)

	locations := NewLocationResolver(sites, blocks, floors, apartments, floorAreas, commonAreas)

	return &Services{
		Auth:        NewAuthService(users, opts.TokenSecret, opts.TokenTTL),
		Users:       NewUserService(users),
		Sites:       NewSiteService(sites),
		Blocks:      NewBlockService(blocks, sites),
		Floors:      NewFloorService(floors, blocks),
		FloorAreas:  NewFloorAreaService(floorAreas, floors),
		Apartments:  NewApartmentService(apartments, floors),
		CommonAreas: NewCommonAreaService(commonAreas, sites),
		Inventory:   NewInventoryService(inventory, sites, commonAreas),
		Issues:      NewIssueService(issues, media, inventory, users, locations, store),
		Comments:    NewCommentService(comments, issues),
		Media:       NewMediaService(media, issues, store, opts.UploadMaxBytes),
		Maintenance: NewMaintenanceService(maintenance, sites, commonAreas),
		Finance:     NewTransactionService(transactions, sites),
		Meters:      NewMeterReadingService(meters, sites, apartments),
		Reports:     NewReportService(issues, locations),
		Dashboard:   NewDashboardService(sites, blocks, apartments, issues, inventory, maintenance, locations),
	}
}
