package api

import (
	"io"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"siteyonetim.app/models"
	"siteyonetim.app/services"
)

// Formdaki dosya alanları ve her birine karşılık gelen idempotency anahtarı alanları.
// Anahtarlar dosyalarla aynı sırada gönderilir.
var mediaFields = []struct {
	files []string
	keys  []string
	kind  models.MediaType
}{
	{files: []string{"images", "images[]"}, keys: []string{"imageKeys", "imageKeys[]"}, kind: models.MediaTypeImage},
	{files: []string{"videos", "videos[]"}, keys: []string{"videoKeys", "videoKeys[]"}, kind: models.MediaTypeVideo},
	{files: []string{"files", "files[]"}, keys: []string{"fileKeys", "fileKeys[]"}},
}

type MediaHandler struct {
	service services.IMediaService
}

func NewMediaHandler(service services.IMediaService) *MediaHandler {
	return &MediaHandler{service: service}
}

// Upload POST /api/issues/:id/media. Dosyalar tek tek yüklenir, sonuç dosya bazında sayılır;
// kısmi başarısızlıkta da 200 döner, ayrıntı gövdededir.
func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	issueID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	form, err := c.MultipartForm()
	if err != nil {
		return services.ErrNoFiles
	}
	result, err := h.service.Upload(c.UserContext(), issueID, uploadFiles(form))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	issueID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	mediaID, err := paramID(c, "mediaId")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), issueID, mediaID); err != nil {
		return err
	}
	return deleted(c)
}

// Store POST /api/upload. issueId verilirse dosya o arızaya medya olarak eklenir.
func (h *MediaHandler) Store(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return services.ErrNoFiles
	}
	file := uploadFile(fh, "", c.FormValue("idempotencyKey"))
	if raw := c.FormValue("issueId"); raw != "" {
		issueID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || issueID == 0 {
			return errInvalidID
		}
		result, err := h.service.Upload(c.UserContext(), uint(issueID), []services.UploadFile{file})
		if err != nil {
			return err
		}
		return c.JSON(result)
	}
	stored, err := h.service.Store(c.UserContext(), file)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(stored)
}

func uploadFiles(form *multipart.Form) []services.UploadFile {
	var files []services.UploadFile
	for _, field := range mediaFields {
		var keys []string
		for _, name := range field.keys {
			keys = append(keys, form.Value[name]...)
		}
		i := 0
		for _, name := range field.files {
			for _, fh := range form.File[name] {
				key := ""
				if i < len(keys) {
					key = keys[i]
				}
				files = append(files, uploadFile(fh, field.kind, key))
				i++
			}
		}
	}
	return files
}

func uploadFile(fh *multipart.FileHeader, kind models.MediaType, key string) services.UploadFile {
	return services.UploadFile{
		Filename:       fh.Filename,
		ContentType:    fh.Header.Get(fiber.HeaderContentType),
		Size:           fh.Size,
		Type:           kind,
		IdempotencyKey: key,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
