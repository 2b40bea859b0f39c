package migrations

import (
	"fmt"

	"gorm.io/gorm"

	"siteyonetim.app/configs/configslog"
	"siteyonetim.app/models"
)

// MigrateOperationTables demirbaş, arıza, bakım, finans ve sayaç tablolarını oluşturur.
// Site hiyerarşisi ve kullanıcı tablolarından sonra çalışmalıdır.
func MigrateOperationTables(db *gorm.DB) error {
	configslog.SLog.Info("Operasyon tabloları migrate ediliyor...")
	tables := []interface{}{
		&models.InventoryItem{},
		&models.Issue{},
		&models.Media{},
		&models.Comment{},
		&models.MaintenanceRecord{},
		&models.FinancialTransaction{},
		&models.MeterReading{},
	}
	for _, table := range tables {
		if err := db.AutoMigrate(table); err != nil {
			configslog.Log.Error(fmt.Sprintf("%T tablosu migrate edilemedi: %v", table, err))
			return fmt.Errorf("%T tablosu migrate edilemedi: %w", table, err)
		}
	}
	configslog.SLog.Info("Operasyon tabloları migrate işlemi tamamlandı.")
	return nil
}
