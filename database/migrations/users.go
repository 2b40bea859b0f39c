package migrations

import (
	"fmt"

	"gorm.io/gorm"

	"siteyonetim.app/configs/configslog"
	"siteyonetim.app/models"
)

func MigrateUsersTable(db *gorm.DB) error {
	configslog.SLog.Info("Users tablosu migrate ediliyor...")
	if err := db.AutoMigrate(&models.User{}); err != nil {
		configslog.Log.Error("Users tablosu migrate edilemedi: " + err.Error())
		return fmt.Errorf("users tablosu migrate edilemedi: %w", err)
	}
	configslog.SLog.Info("Users tablosu migrate işlemi tamamlandı.")
	return nil
}
