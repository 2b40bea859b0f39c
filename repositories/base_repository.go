package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"siteyonetim.app/pkg/turkishsearch"
)

// ErrNotFound aranan kaydın veritabanında olmadığını belirtir.
var ErrNotFound = errors.New("kayıt bulunamadı")

type txKey struct{}

// WithTx işlemi bağlama koyar; repository metodları bu bağlamla çağrıldığında aynı işlemi kullanır.
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// RunInTx fn'i tek bir veritabanı işlemi içinde çalıştırır. Bağlamda işlem varsa onu kullanır.
func RunInTx(ctx context.Context, db *gorm.DB, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return fn(ctx)
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(WithTx(ctx, tx))
	})
}

func dbFromContext(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return db.WithContext(ctx)
}

// IBaseRepository tüm varlıklar için ortak CRUD işlemleri.
type IBaseRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	Update(ctx context.Context, id uint, data map[string]interface{}) error
	Deactivate(ctx context.Context, id uint) error
	HardDelete(ctx context.Context, id uint) error
	IsActive(ctx context.Context, id uint) (bool, error)
	Count(ctx context.Context, query interface{}, args ...interface{}) (int64, error)
}

// BaseRepository IBaseRepository'nin GORM ile generik uygulamasıdır.
type BaseRepository[T any] struct {
	db *gorm.DB
}

func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{db: db}
}

func (r *BaseRepository[T]) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.getDB(ctx).Create(entity).Error
}

// FindByID ilişkisiz düz kaydı getirir (pasif kayıtlar dahil).
func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := r.getDB(ctx).First(&entity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// Update yalnızca map'te yer alan sütunları günceller. updated_at GORM tarafından yazılır.
func (r *BaseRepository[T]) Update(ctx context.Context, id uint, data map[string]interface{}) error {
	db := r.getDB(ctx)
	if err := r.ensureExists(db, id); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return db.Model(new(T)).Where("id = ?", id).Updates(data).Error
}

// Deactivate kaydı pasife çeker. Zaten pasif olan kayıt için hata dönmez.
func (r *BaseRepository[T]) Deactivate(ctx context.Context, id uint) error {
	db := r.getDB(ctx)
	if err := r.ensureExists(db, id); err != nil {
		return err
	}
	return db.Model(new(T)).Where("id = ?", id).Update("is_active", false).Error
}

// HardDelete kaydı kalıcı olarak siler.
func (r *BaseRepository[T]) HardDelete(ctx context.Context, id uint) error {
	result := r.getDB(ctx).Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IsActive kaydın aktiflik durumunu döndürür; kayıt yoksa ErrNotFound.
func (r *BaseRepository[T]) IsActive(ctx context.Context, id uint) (bool, error) {
	if id == 0 {
		return false, ErrNotFound
	}
	var flags []bool
	if err := r.getDB(ctx).Model(new(T)).Where("id = ?", id).Limit(1).Pluck("is_active", &flags).Error; err != nil {
		return false, err
	}
	if len(flags) == 0 {
		return false, ErrNotFound
	}
	return flags[0], nil
}

func (r *BaseRepository[T]) Count(ctx context.Context, query interface{}, args ...interface{}) (int64, error) {
	var count int64
	q := r.getDB(ctx).Model(new(T))
	if query != nil {
		q = q.Where(query, args...)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *BaseRepository[T]) ensureExists(db *gorm.DB, id uint) error {
	var count int64
	if err := db.Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

func applySearch(q *gorm.DB, term string, columns ...string) *gorm.DB {
	if term == "" {
		return q
	}
	fragment, args := turkishsearch.SQLFilterAny(columns, term)
	return q.Where(fragment, args...)
}

func applyDateRange(q *gorm.DB, column string, from, to *time.Time) *gorm.DB {
	if from != nil {
		q = q.Where(column+" >= ?", *from)
	}
	if to != nil {
		q = q.Where(column+" <= ?", *to)
	}
	return q
}

// activeOrdered aktif alt kayıtları verilen sırayla preload eder.
func activeOrdered(order string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true).Order(order)
	}
}
