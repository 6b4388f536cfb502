package models

type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	IsAdmin      bool   `gorm:"default:false"`

	// Relations
	Reviews []Review `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
