package services

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func documentXML(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(body)
	}
	t.Fatal("word/document.xml bulunamadı")
	return ""
}

func TestReportService_IssueReport(t *testing.T) {
	env := newTestEnv(t)
	env.svc.Reports.(*ReportService).now = fixedClock(time.Date(2024, 6, 1, 9, 0, 0, 0, time.Local))
	env.createIssue(t, IssueInput{LocationFields: atApartment(env.h.Apartment.ID), Title: "Mutfak dolabı kırık", Priority: "HIGH"})
	env.createIssue(t, IssueInput{Title: "Otopark lambası", Priority: "LOW", Description: "B2 katı"})

	report, err := env.svc.Reports.IssueReport(env.ctx, ReportFilter{})
	require.NoError(t, err)

	assert.Equal(t, "eksiklik-raporu-2024-06-01.docx", report.Filename)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", report.ContentType)
	assert.Equal(t, 2, report.Count)

	body := documentXML(t, report.Data)
	assert.Contains(t, body, "Eksiklik Raporu")
	assert.Contains(t, body, "Oluşturulma Tarihi: 01.06.2024")
	assert.Contains(t, body, "Toplam 2 kayıt")
	assert.Contains(t, body, "Mutfak dolabı kırık")
	assert.Contains(t, body, "Daire 101")
	assert.Contains(t, body, "B2 katı")
	assert.Contains(t, body, "w:tbl")
	assert.Contains(t, body, "Başlık")
	assert.Contains(t, body, "Açıklama: ")
}

func TestReportService_Filters(t *testing.T) {
	env := newTestEnv(t)
	env.createIssue(t, IssueInput{Title: "Acil su kaçağı", Priority: "URGENT"})
	env.createIssue(t, IssueInput{Title: "Boya rötuşu", Priority: "LOW"})

	report, err := env.svc.Reports.IssueReport(env.ctx, ReportFilter{Priority: "URGENT"})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Count)
	body := documentXML(t, report.Data)
	assert.Contains(t, body, "Acil su kaçağı")
	assert.NotContains(t, body, "Boya rötuşu")

	_, err = env.svc.Reports.IssueReport(env.ctx, ReportFilter{Priority: "CRITICAL"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.svc.Reports.IssueReport(env.ctx, ReportFilter{StartDate: "01/01/2024"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
