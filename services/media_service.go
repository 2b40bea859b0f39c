package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"siteyonetim.app/configs/configslog"
	"siteyonetim.app/models"
	"siteyonetim.app/pkg/storage"
	"siteyonetim.app/repositories"
)

const (
	ErrNoFiles       ValidationError = "yüklenecek dosya bulunamadı"
	ErrMediaNotFound NotFoundError   = "medya bulunamadı"
	ErrFileTooLarge  ValidationError = "dosya boyutu sınırı aşıldı"
)

// UploadFile yüklenecek tek bir dosyadır. Open her çağrıda içeriği baştan okur.
type UploadFile struct {
	Filename       string
	ContentType    string
	Size           int64
	Type           models.MediaType
	IdempotencyKey string
	Open           func() (io.ReadCloser, error)
}

type UploadFailure struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

// UploadResult çok dosyalı yüklemenin dosya bazlı sonucudur.
type UploadResult struct {
	Success    bool            `json:"success"`
	Media      []models.Media  `json:"media"`
	Uploaded   int             `json:"uploaded"`
	Duplicates int             `json:"duplicates"`
	Failed     int             `json:"failed"`
	Failures   []UploadFailure `json:"failures"`
	Message    string          `json:"message"`
}

// StoredFile arızaya bağlanmadan saklanan dosyadır.
type StoredFile struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

type IMediaService interface {
	Upload(ctx context.Context, issueID uint, files []UploadFile) (*UploadResult, error)
	Store(ctx context.Context, file UploadFile) (*StoredFile, error)
	Delete(ctx context.Context, issueID, mediaID uint) error
}

type MediaService struct {
	repo      repositories.IMediaRepository
	issueRepo repositories.IIssueRepository
	store     storage.BlobStore
	maxBytes  int64
}

func NewMediaService(repo repositories.IMediaRepository, issueRepo repositories.IIssueRepository, store storage.BlobStore, maxBytes int64) IMediaService {
	return &MediaService{repo: repo, issueRepo: issueRepo, store: store, maxBytes: maxBytes}
}

// Upload dosyaları sırayla saklar ve her başarılı yükleme için bir Media kaydı açar.
// Bir dosyanın hatası diğerlerini ve önceki yüklemeleri etkilemez. Daha önce görülmüş
// idempotency anahtarı yeniden yüklenmez, mevcut kayıt döndürülür.
func (s *MediaService) Upload(ctx context.Context, issueID uint, files []UploadFile) (*UploadResult, error) {
	if _, err := s.issueRepo.FindByID(ctx, issueID); err != nil {
		return nil, notFoundOr(err, ErrIssueNotFound, "MediaService.Upload", issueID)
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	result := &UploadResult{Media: []models.Media{}, Failures: []UploadFailure{}}
	for _, f := range files {
		if ctx.Err() != nil {
			result.fail(f.Filename, ctx.Err())
			continue
		}
		key := strings.TrimSpace(f.IdempotencyKey)
		if key != "" {
			existing, err := s.repo.FindByIdempotencyKey(ctx, issueID, key)
			if err == nil {
				result.Duplicates++
				result.Media = append(result.Media, *existing)
				continue
			}
			if !errors.Is(err, repositories.ErrNotFound) {
				s.logFailure(issueID, f, err)
				result.fail(f.Filename, err)
				continue
			}
		}

		media, err := s.uploadOne(ctx, issueID, f, key)
		if err != nil {
			// Eşzamanlı tekrar: anahtar bu arada başka bir istekle kaydedilmiş olabilir
			if key != "" {
				if existing, lookupErr := s.repo.FindByIdempotencyKey(ctx, issueID, key); lookupErr == nil {
					result.Duplicates++
					result.Media = append(result.Media, *existing)
					continue
				}
			}
			s.logFailure(issueID, f, err)
			result.fail(f.Filename, err)
			continue
		}
		result.Uploaded++
		result.Media = append(result.Media, *media)
	}

	result.Success = result.Failed == 0
	result.Message = fmt.Sprintf("%d dosya yüklendi, %d tekrar, %d başarısız", result.Uploaded, result.Duplicates, result.Failed)
	return result, nil
}

func (r *UploadResult) fail(filename string, err error) {
	r.Failed++
	r.Failures = append(r.Failures, UploadFailure{Filename: filename, Error: err.Error()})
}

func (s *MediaService) logFailure(issueID uint, f UploadFile, err error) {
	configslog.Log.Warn("Medya yüklenemedi, atlanıyor",
		zap.Uint("issue_id", issueID),
		zap.String("filename", f.Filename),
		zap.Error(err),
	)
}

func (s *MediaService) uploadOne(ctx context.Context, issueID uint, f UploadFile, key string) (*models.Media, error) {
	obj, err := s.put(ctx, f)
	if err != nil {
		return nil, err
	}
	media := &models.Media{
		IssueID:     issueID,
		Type:        mediaType(f),
		URL:         obj.URL,
		StorageKey:  obj.Key,
		Filename:    f.Filename,
		ContentType: f.ContentType,
		Size:        obj.Size,
	}
	if key != "" {
		media.IdempotencyKey = &key
	}
	if err := s.repo.Create(ctx, media); err != nil {
		if delErr := s.store.Delete(ctx, obj.Key); delErr != nil {
			configslog.Log.Warn("Sahipsiz medya dosyası silinemedi", zap.String("key", obj.Key), zap.Error(delErr))
		}
		return nil, err
	}
	return media, nil
}

func (s *MediaService) put(ctx context.Context, f UploadFile) (*storage.Object, error) {
	if s.maxBytes > 0 && f.Size > s.maxBytes {
		return nil, ErrFileTooLarge
	}
	if f.Open == nil {
		return nil, ErrNoFiles
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return s.store.Put(ctx, f.Filename, rc)
}

// Store tek bir dosyayı arızaya bağlamadan saklar.
func (s *MediaService) Store(ctx context.Context, file UploadFile) (*StoredFile, error) {
	obj, err := s.put(ctx, file)
	if err != nil {
		if errors.Is(err, ErrFileTooLarge) || errors.Is(err, ErrNoFiles) {
			return nil, err
		}
		configslog.Log.Error("Dosya saklanamadı", zap.String("filename", file.Filename), zap.Error(err))
		return nil, err
	}
	return &StoredFile{URL: obj.URL, Filename: file.Filename, Size: obj.Size}, nil
}

// Delete medya kaydını ve dosyasını siler.
func (s *MediaService) Delete(ctx context.Context, issueID, mediaID uint) error {
	media, err := s.repo.FindByID(ctx, mediaID)
	if err != nil {
		return notFoundOr(err, ErrMediaNotFound, "MediaService.Delete", mediaID)
	}
	if media.IssueID != issueID {
		return ErrMediaNotFound
	}
	if err := s.repo.HardDelete(ctx, mediaID); err != nil {
		return notFoundOr(err, ErrMediaNotFound, "MediaService.Delete", mediaID)
	}
	if media.StorageKey != "" {
		if err := s.store.Delete(ctx, media.StorageKey); err != nil {
			configslog.Log.Warn("Medya dosyası silinemedi", zap.Uint("media_id", mediaID), zap.Error(err))
		}
	}
	return nil
}

func mediaType(f UploadFile) models.MediaType {
	if f.Type != "" {
		return f.Type
	}
	switch {
	case strings.HasPrefix(f.ContentType, "image/"):
		return models.MediaTypeImage
	case strings.HasPrefix(f.ContentType, "video/"):
		return models.MediaTypeVideo
	default:
		return models.MediaTypeDocument
	}
}

var _ IMediaService = (*MediaService)(nil)
