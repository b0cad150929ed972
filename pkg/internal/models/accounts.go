package models

type Account struct {
	BaseModel

	Name  string `json:"name" gorm:"uniqueIndex" validate:"lowercase,alphanum"`
	Nick  string `json:"nick"`
	Email string `json:"email"`

	PasswordHash string `json:"-"`

	Posts    []Post    `json:"posts" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"comments" gorm:"foreignKey:AuthorID"`
}
