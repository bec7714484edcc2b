package models

// User is an account that owns a single organization and its roster.
// Deleting a user cascades to the organization and every roster entry.
type User struct {
	BaseModel
	FirstName string  `json:"first_name" gorm:"size:100;not null" validate:"required,max=100"`
	LastName  string  `json:"last_name" gorm:"size:100;not null" validate:"required,max=100"`
	Email     string  `json:"email" gorm:"size:255;uniqueIndex;not null" validate:"required,email,max=255"`
	RG        string  `json:"rg" gorm:"size:20;uniqueIndex;not null" validate:"required,max=20"`
	Birthdate string  `json:"birthdate" gorm:"size:10"`
	Phone     string  `json:"phone" gorm:"size:20"`
	Password  string  `json:"-" gorm:"size:100;not null"`
	Role      string  `json:"role" gorm:"size:20;not null;default:user"`
	OTPCode   *string `json:"-" gorm:"size:4"`

	Organizations []Organization `json:"organizations,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
