// Package testutil testlerde kullanılan SQLite veritabanını ve örnek kayıtları hazırlar.
package testutil

import (
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"siteyonetim.app/configs"
	"siteyonetim.app/models"
	"siteyonetim.app/utils"
)

// DefaultPassword fixture kullanıcılarının şifresidir.
const DefaultPassword = "secret123"

const TokenSecret = "test-secret"

var seq atomic.Uint64

// NewDB geçici dizinde bir SQLite veritabanı açar ve tüm tabloları oluşturur.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Config testlere uygun uygulama ayarlarını döndürür.
func Config(t testing.TB) *configs.AppConfig {
	t.Helper()
	return &configs.AppConfig{
		Env:            "test",
		Port:           "0",
		SessionSecret:  TokenSecret,
		SessionMaxAge:  0,
		UploadDir:      t.TempDir(),
		UploadBaseURL:  "/uploads",
		UploadMaxBytes: 1 << 20,
	}
}

func next() uint64 {
	return seq.Add(1)
}

// CreateUser verilen rolde aktif bir kullanıcı oluşturur.
func CreateUser(t testing.TB, db *gorm.DB, role models.Role) *models.User {
	t.Helper()
	hashed, err := utils.HashPassword(DefaultPassword)
	require.NoError(t, err)
	n := next()
	u := &models.User{
		Name:     fmt.Sprintf("Kullanıcı %d", n),
		Email:    fmt.Sprintf("user%d@example.com", n),
		Password: hashed,
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func CreateSite(t testing.TB, db *gorm.DB, name string) *models.Site {
	t.Helper()
	s := &models.Site{Name: name, City: "İstanbul", IsActive: true}
	require.NoError(t, db.Create(s).Error)
	return s
}

func CreateBlock(t testing.TB, db *gorm.DB, siteID uint, name string) *models.Block {
	t.Helper()
	b := &models.Block{SiteID: siteID, Name: name, IsActive: true}
	require.NoError(t, db.Create(b).Error)
	return b
}

func CreateFloor(t testing.TB, db *gorm.DB, blockID uint, number int) *models.Floor {
	t.Helper()
	f := &models.Floor{BlockID: blockID, Name: fmt.Sprintf("%d. Kat", number), Number: number, IsActive: true}
	require.NoError(t, db.Create(f).Error)
	return f
}

func CreateApartment(t testing.TB, db *gorm.DB, floorID uint, number string) *models.Apartment {
	t.Helper()
	a := &models.Apartment{FloorID: floorID, Number: number, Status: models.ApartmentStatusEmpty, IsActive: true}
	require.NoError(t, db.Create(a).Error)
	return a
}

func CreateFloorArea(t testing.TB, db *gorm.DB, floorID uint, name string) *models.FloorArea {
	t.Helper()
	fa := &models.FloorArea{FloorID: floorID, Name: name, Type: models.FloorAreaStaircase, IsActive: true}
	require.NoError(t, db.Create(fa).Error)
	return fa
}

func CreateCommonArea(t testing.TB, db *gorm.DB, siteID uint, name string) *models.CommonArea {
	t.Helper()
	ca := &models.CommonArea{SiteID: siteID, Name: name, Type: models.CommonAreaPool, IsActive: true}
	require.NoError(t, db.Create(ca).Error)
	return ca
}

// Hierarchy tek bir site altındaki tam konum zinciridir.
type Hierarchy struct {
	Site       *models.Site
	Block      *models.Block
	Floor      *models.Floor
	Apartment  *models.Apartment
	FloorArea  *models.FloorArea
	CommonArea *models.CommonArea
}

// CreateHierarchy "Test Sitesi > A Blok > 1. Kat > Daire 101" zincirini ve yan alanları oluşturur.
func CreateHierarchy(t testing.TB, db *gorm.DB) *Hierarchy {
	t.Helper()
	h := &Hierarchy{Site: CreateSite(t, db, "Test Sitesi")}
	h.Block = CreateBlock(t, db, h.Site.ID, "A Blok")
	h.Floor = CreateFloor(t, db, h.Block.ID, 1)
	h.Apartment = CreateApartment(t, db, h.Floor.ID, "101")
	h.FloorArea = CreateFloorArea(t, db, h.Floor.ID, "Merdiven")
	h.CommonArea = CreateCommonArea(t, db, h.Site.ID, "Havuz")
	return h
}

// Token kullanıcı için test gizli anahtarıyla imzalı bir oturum jetonu üretir.
func Token(t testing.TB, user *models.User) string {
	t.Helper()
	token, _, err := utils.GenerateToken(TokenSecret, 0, user)
	require.NoError(t, err)
	return token
}
