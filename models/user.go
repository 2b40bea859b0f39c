package models

// Role kullanıcının yetki seviyesidir.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleStaff   Role = "STAFF"
	RoleUser    Role = "USER"
)

// User panel kullanıcısıdır. Password bcrypt özeti tutar ve JSON'a yazılmaz.
type User struct {
	BaseModel
	Name     string `gorm:"type:varchar(150)" json:"name"`
	Email    string `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	Role     Role   `gorm:"type:varchar(20);not null;default:'USER';index" json:"role"`
	Image    string `gorm:"type:varchar(500)" json:"image"`
	IsActive bool   `gorm:"default:true;index" json:"isActive"`
}

// HasRole kullanıcının verilen rollerden birine sahip olup olmadığını döndürür.
func (u *User) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}
