package models

const (
	QuoteStatusPending = "pending"

	QuoteContactEmail = "email"
)

// Quote - анонимная заявка на расчет стоимости. Владельца нет,
// аутентификация для создания не требуется.
type Quote struct {
	BaseModel
	Name                   string `gorm:"not null"`
	Email                  string `gorm:"not null"`
	Phone                  string `gorm:"not null"`
	ServiceType            string `gorm:"not null"`
	ProjectDetails         string `gorm:"type:text;not null"`
	PreferredContactMethod string `gorm:"default:'email'"`
	BudgetRange            string
	Timeline               string
	Status                 string `gorm:"default:'pending'"`
}
