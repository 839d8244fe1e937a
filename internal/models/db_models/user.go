package db_models

type User struct {
	BaseModel
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Name  string `json:"name"`
}
