package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"siteyonetim.app/services"
)

func reportCmd(rt *state) *cobra.Command {
	var (
		filter services.ReportFilter
		output string
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Eksiklik raporunu .docx olarak dışa aktarır",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.services()
			if err != nil {
				return err
			}
			report, err := svc.Reports.IssueReport(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if output == "" {
				output = report.Filename
			}
			if err := os.WriteFile(output, report.Data, 0o644); err != nil {
				return fmt.Errorf("rapor yazılamadı: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d kayıt %s dosyasına yazıldı.\n", report.Count, output)
			return nil
		},
	}
	f := cmd.Flags()
	f.UintVar(&filter.SiteID, "site", 0, "Site kimliği")
	f.UintVar(&filter.BlockID, "block", 0, "Blok kimliği")
	f.StringVar(&filter.Status, "status", "", "Durum (OPEN, IN_PROGRESS, ...)")
	f.StringVar(&filter.Priority, "priority", "", "Öncelik (LOW, MEDIUM, HIGH, URGENT)")
	f.StringVar(&filter.StartDate, "from", "", "Başlangıç tarihi (YYYY-MM-DD)")
	f.StringVar(&filter.EndDate, "to", "", "Bitiş tarihi (YYYY-MM-DD, gün dahil)")
	f.StringVarP(&output, "output", "o", "", "Çıktı dosyası (varsayılan: eksiklik-raporu-<tarih>.docx)")
	return cmd
}
