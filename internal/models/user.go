package models

// User mirrors the Supabase "usuarios" table. Only the columns this service
// reads are mapped.
type User struct {
	ID    string `json:"id" gorm:"primaryKey;type:uuid"`
	Email string `json:"email" gorm:"unique;not null"`
}

func (User) TableName() string {
	return "usuarios"
}
