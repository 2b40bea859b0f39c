package database

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"siteyonetim.app/configs/configslog"
	"siteyonetim.app/database/migrations"
	"siteyonetim.app/database/seeders"
)

// Options hangi adımların çalışacağını belirler. Demo yalnızca Seed ile birlikte anlamlıdır.
type Options struct {
	Migrate bool
	Seed    bool
	Demo    bool
}

// Initialize migrasyon ve seed adımlarını tek bir transaction içinde çalıştırır.
// Herhangi bir adım hata verirse tüm işlem geri alınır.
func Initialize(db *gorm.DB, opts Options) (err error) {
	if !opts.Migrate && !opts.Seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Error("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Error("Veritabanı başlatma işlemi başarısız oldu (panic)", zap.Any("panic_info", r))
			err = errors.New("veritabanı başlatma işlemi panic ile sonlandı")
			return
		}
		if err != nil {
			configslog.SLog.Warnf("Başlatma sırasında hata oluştuğu için işlem geri alınıyor: %v", err)
			if rbErr := tx.Rollback().Error; rbErr != nil && !errors.Is(rbErr, gorm.ErrInvalidTransaction) {
				configslog.Log.Error("Rollback sırasında ek hata oluştu", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if opts.Migrate {
		if err = RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
			return err
		}
	} else {
		configslog.SLog.Info("Migrate bayrağı belirtilmedi, migrasyon adımı atlanıyor.")
	}

	if opts.Seed {
		if err = CheckAndRunSeeders(tx, opts.Demo); err != nil {
			configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
			return err
		}
	} else {
		configslog.SLog.Info("Seed bayrağı belirtilmedi, seeder adımı atlanıyor.")
	}

	if err = tx.Commit().Error; err != nil {
		configslog.Log.Error("Commit başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
	return nil
}

// RunMigrationsInOrder tabloları yabancı anahtar bağımlılık sırasına göre oluşturur.
func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info("Migrasyonlar sırayla çalıştırılıyor...")

	steps := []struct {
		name string
		run  func(*gorm.DB) error
	}{
		{"User", migrations.MigrateUsersTable},
		{"Site hiyerarşisi", migrations.MigrateStructureTables},
		{"Operasyon", migrations.MigrateOperationTables},
	}
	for _, step := range steps {
		configslog.SLog.Infof(" -> %s migrasyonları çalıştırılıyor...", step.name)
		if err := step.run(db); err != nil {
			configslog.Log.Error("Migrasyon adımı başarısız oldu", zap.String("step", step.name), zap.Error(err))
			return err
		}
		configslog.SLog.Infof(" -> %s migrasyonları tamamlandı.", step.name)
	}

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

// CheckAndRunSeeders sistem yöneticisini, istenirse örnek siteyi oluşturur.
func CheckAndRunSeeders(db *gorm.DB, demo bool) error {
	configslog.SLog.Info("Sistem kullanıcısı kontrol ediliyor/oluşturuluyor...")
	if err := seeders.SeedSystemUser(db); err != nil {
		configslog.Log.Error("Sistem kullanıcısı seed işlemi başarısız", zap.Error(err))
		return err
	}

	if demo {
		configslog.SLog.Info(" -> Örnek site seeder çalıştırılıyor...")
		if err := seeders.SeedDemoSite(db); err != nil {
			configslog.Log.Error("Örnek site seed edilemedi", zap.Error(err))
			return err
		}
		configslog.SLog.Info(" -> Örnek site seeder tamamlandı.")
	}

	configslog.SLog.Info("Tüm seeder'lar başarıyla kontrol edildi/çalıştırıldı.")
	return nil
}
