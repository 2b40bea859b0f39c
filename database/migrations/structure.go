package migrations

import (
	"fmt"

	"gorm.io/gorm"

	"siteyonetim.app/configs/configslog"
	"siteyonetim.app/models"
)

// MigrateStructureTables site hiyerarşisi tablolarını üstten alta doğru oluşturur.
func MigrateStructureTables(db *gorm.DB) error {
	configslog.SLog.Info("Site hiyerarşisi tabloları migrate ediliyor...")
	tables := []interface{}{
		&models.Site{},
		&models.Block{},
		&models.Floor{},
		&models.FloorArea{},
		&models.Apartment{},
		&models.CommonArea{},
	}
	for _, table := range tables {
		if err := db.AutoMigrate(table); err != nil {
			configslog.Log.Error(fmt.Sprintf("%T tablosu migrate edilemedi: %v", table, err))
			return fmt.Errorf("%T tablosu migrate edilemedi: %w", table, err)
		}
	}
	configslog.SLog.Info("Site hiyerarşisi tabloları migrate işlemi tamamlandı.")
	return nil
}
