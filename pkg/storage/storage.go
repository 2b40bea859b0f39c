// Package storage arıza medyası gibi yüklenen dosyaları saklar.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Object saklanan bir dosyanın erişim bilgisidir.
type Object struct {
	Key  string
	URL  string
	Size int64
}

// BlobStore dosya saklama arka ucudur.
type BlobStore interface {
	Put(ctx context.Context, filename string, r io.Reader) (*Object, error)
	Delete(ctx context.Context, key string) error
}

// LocalStore dosyaları yerel diskte tek bir dizinde tutar ve baseURL altında sunar.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("yükleme dizini oluşturulamadı: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Put içeriği benzersiz bir anahtarla kaydeder. Özgün uzantı korunur.
func (s *LocalStore) Put(ctx context.Context, filename string, r io.Reader) (*Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := uuid.NewString() + safeExt(filename)
	path := filepath.Join(s.dir, key)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("dosya oluşturulamadı: %w", err)
	}
	n, copyErr := io.Copy(f, r)
	closeErr := f.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(path)
		if copyErr != nil {
			return nil, fmt.Errorf("dosya yazılamadı: %w", copyErr)
		}
		return nil, fmt.Errorf("dosya kapatılamadı: %w", closeErr)
	}
	return &Object{Key: key, URL: s.baseURL + "/" + key, Size: n}, nil
}

// Delete anahtarı verilen dosyayı siler. Olmayan dosya hata sayılmaz.
func (s *LocalStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filepath.Base(key)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func safeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) > 10 {
		return ""
	}
	for _, r := range ext[min(1, len(ext)):] {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
			return ""
		}
	}
	return ext
}
