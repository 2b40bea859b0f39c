package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"go.uber.org/zap"

	"siteyonetim.app/configs/configslog"
	"siteyonetim.app/models"
	"siteyonetim.app/pkg/queryparams"
	"siteyonetim.app/repositories"
)

const (
	reportDateLayout = "02.01.2006"
	docxContentType  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ReportFilter rapor uç noktasının gövdesidir. Bitiş tarihi sadece gün ise gün sonuna kadar kapsar.
type ReportFilter struct {
	SiteID    uint   `json:"siteId"`
	BlockID   uint   `json:"blockId"`
	Status    string `json:"status" validate:"omitempty,oneof=OPEN IN_PROGRESS WAITING RESOLVED CLOSED CANCELLED"`
	Priority  string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Report üretilmiş belge ve indirme adıdır.
type Report struct {
	Filename    string
	ContentType string
	Data        []byte
	Count       int
}

type IReportService interface {
	IssueReport(ctx context.Context, filter ReportFilter) (*Report, error)
}

type ReportService struct {
	issues    repositories.IIssueRepository
	locations ILocationResolver
	now       func() time.Time
}

func NewReportService(issues repositories.IIssueRepository, locations ILocationResolver) IReportService {
	return &ReportService{issues: issues, locations: locations, now: time.Now}
}

// IssueReport filtreye uyan tüm arızaları tek seferde okuyup özet tablo ve
// arıza bazında detay bloklarından oluşan bir Word belgesi üretir.
func (s *ReportService) IssueReport(ctx context.Context, filter ReportFilter) (*Report, error) {
	if err := validateInput(filter); err != nil {
		return nil, err
	}
	params := queryparams.ListParams{
		SiteID:    filter.SiteID,
		BlockID:   filter.BlockID,
		Status:    filter.Status,
		Priority:  filter.Priority,
		StartDate: filter.StartDate,
		EndDate:   filter.EndDate,
	}
	from, to, err := dateRange(params)
	if err != nil {
		return nil, err
	}
	issues, err := s.issues.List(ctx, params, from, to)
	if err != nil {
		configslog.Log.Error("Rapor için eksiklikler alınamadı", zap.Error(err))
		return nil, err
	}

	now := s.now()
	cache := LocationCache{}
	paths := make([]string, len(issues))
	for i := range issues {
		paths[i] = s.locations.Path(ctx, issues[i].Location, cache)
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		configslog.Log.Error("Rapor belgesi oluşturulamadı", zap.Error(err))
		return nil, err
	}
	if _, err := doc.AddHeading("Eksiklik Raporu", 0); err != nil {
		return nil, err
	}
	doc.AddParagraph("Oluşturulma Tarihi: " + now.Format(reportDateLayout))
	doc.AddParagraph(fmt.Sprintf("Toplam %d kayıt", len(issues)))

	table := doc.AddTable()
	table.Style("LightList-Accent1")
	header := table.AddRow()
	for _, title := range []string{"#", "Başlık", "Konum", "Öncelik", "Durum", "Tarih"} {
		header.AddCell().AddParagraph(title)
	}
	for i, issue := range issues {
		row := table.AddRow()
		for _, text := range []string{
			strconv.Itoa(i + 1),
			issue.Title,
			paths[i],
			models.Label(models.IssuePriorityLabels, issue.Priority),
			models.Label(models.IssueStatusLabels, issue.Status),
			issue.CreatedAt.Format(reportDateLayout),
		} {
			row.AddCell().AddParagraph(text)
		}
	}
	doc.AddParagraph("")

	for i, issue := range issues {
		if _, err := doc.AddHeading(fmt.Sprintf("%d. %s", i+1, issue.Title), 2); err != nil {
			return nil, err
		}
		detail(doc, "Konum", paths[i])
		detail(doc, "Öncelik", models.Label(models.IssuePriorityLabels, issue.Priority))
		detail(doc, "Durum", models.Label(models.IssueStatusLabels, issue.Status))
		detail(doc, "Oluşturan", userName(issue.CreatedBy))
		if issue.AssignedTo != nil {
			detail(doc, "Atanan", userName(issue.AssignedTo))
		}
		if issue.Description != "" {
			detail(doc, "Açıklama", issue.Description)
		}
	}

	data, err := documentBytes(doc)
	if err != nil {
		configslog.Log.Error("Rapor belgesi yazılamadı", zap.Error(err))
		return nil, err
	}
	return &Report{
		Filename:    fmt.Sprintf("eksiklik-raporu-%s.docx", now.Format("2006-01-02")),
		ContentType: docxContentType,
		Data:        data,
		Count:       len(issues),
	}, nil
}

func detail(doc *docx.RootDoc, label, text string) {
	p := doc.AddParagraph("")
	p.AddText(label + ": ").Bold(true)
	p.AddText(text)
}

// documentBytes belgeyi geçici bir dosyaya kaydedip içeriğini döndürür.
func documentBytes(doc *docx.RootDoc) ([]byte, error) {
	dir, err := os.MkdirTemp("", "rapor-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "rapor.docx")
	if err := doc.SaveTo(path); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func userName(u *models.User) string {
	if u == nil {
		return "-"
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

var _ IReportService = (*ReportService)(nil)
