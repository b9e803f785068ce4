package models

type UserModel struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"size:100;not null"`
	Email            string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash     string `gorm:"size:255;not null"`
	Role             string `gorm:"size:20;not null;index"`
	ResetTokenHash   string `gorm:"size:64;index"`
	ResetTokenExpiry *int64
	CreatedAt        int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt        int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (UserModel) TableName() string {
	return "users"
}
