package seeders

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"siteyonetim.app/configs/configslog"
	"siteyonetim.app/models"
	"siteyonetim.app/utils"
)

const (
	SystemAdminEmail    = "admin@site.com"
	SystemAdminPassword = "admin123"
)

// SeedSystemUser sistem yöneticisini yoksa oluşturur. Var olan hesabın şifresine dokunulmaz.
func SeedSystemUser(db *gorm.DB) error {
	var existing models.User
	err := db.Where("email = ?", SystemAdminEmail).First(&existing).Error
	if err == nil {
		configslog.SLog.Infof("Sistem kullanıcısı '%s' zaten mevcut, oluşturma atlanıyor.", SystemAdminEmail)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Sistem kullanıcısı kontrol edilirken veritabanı hatası", zap.Error(err))
		return err
	}

	hashed, err := utils.HashPassword(SystemAdminPassword)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:     "Admin Kullanıcı",
		Email:    SystemAdminEmail,
		Password: hashed,
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		configslog.Log.Error("Sistem kullanıcısı oluşturulamadı", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Sistem kullanıcısı '%s' oluşturuldu (ID: %d).", admin.Email, admin.ID)
	return nil
}
