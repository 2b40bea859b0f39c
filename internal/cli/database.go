package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"siteyonetim.app/database"
)

func migrateCmd(rt *state) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Veritabanı tablolarını oluşturur veya günceller",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := database.Initialize(rt.database(), database.Options{Migrate: true}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrasyonlar tamamlandı.")
			return nil
		},
	}
}

func seedCmd(rt *state) *cobra.Command {
	var demo bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Sistem yöneticisini ve isteğe bağlı örnek siteyi oluşturur",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := database.Initialize(rt.database(), database.Options{Seed: true, Demo: demo}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Seed işlemi tamamlandı.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&demo, "demo", false, "8 bloklu örnek siteyi de oluştur")
	return cmd
}
