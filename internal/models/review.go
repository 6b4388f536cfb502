package models

type Review struct {
	BaseModel
	Title   string `gorm:"not null"`
	Content string `gorm:"type:text;not null"`
	Rating  int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	UserID  string `gorm:"type:uuid;not null;index"`

	// Relations
	Author User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
