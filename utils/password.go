package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword şifreyi bcrypt ile özetler.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword düz şifrenin özetle eşleşip eşleşmediğini döndürür.
func CheckPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
