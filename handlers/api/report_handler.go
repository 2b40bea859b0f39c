package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"siteyonetim.app/services"
)

type ReportHandler struct {
	service services.IReportService
}

func NewReportHandler(service services.IReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Word POST /api/reports/word. Filtreye uyan arızaları .docx olarak indirir.
func (h *ReportHandler) Word(c *fiber.Ctx) error {
	var filter services.ReportFilter
	if len(c.Body()) > 0 {
		if err := parseBody(c, &filter); err != nil {
			return err
		}
	}
	report, err := h.service.IssueReport(c.UserContext(), filter)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, report.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, report.Filename))
	return c.Send(report.Data)
}
