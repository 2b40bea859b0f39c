package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"siteyonetim.app/services"
)

func userCmd(rt *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Kullanıcı yönetimi",
	}
	cmd.AddCommand(userCreateCmd(rt), userResetPasswordCmd(rt))
	return cmd
}

func userCreateCmd(rt *state) *cobra.Command {
	var in services.UserInput
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Yeni kullanıcı oluşturur",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.services()
			if err != nil {
				return err
			}
			user, err := svc.Users.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Kullanıcı oluşturuldu: %s (ID: %d, rol: %s)\n", user.Email, user.ID, user.Role)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Email, "email", "", "E-posta adresi")
	f.StringVar(&in.Name, "name", "", "Ad soyad")
	f.StringVar(&in.Role, "role", "USER", "Rol (ADMIN, MANAGER, STAFF, USER)")
	f.StringVar(&in.Password, "password", "", "Şifre (en az 6 karakter)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func userResetPasswordCmd(rt *state) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Kullanıcının şifresini değiştirir",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := rt.services()
			if err != nil {
				return err
			}
			if err := svc.Users.ResetPassword(cmd.Context(), email, password); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s kullanıcısının şifresi güncellendi.\n", email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "E-posta adresi")
	cmd.Flags().StringVar(&password, "password", "", "Yeni şifre")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
