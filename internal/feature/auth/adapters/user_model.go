package adapters

import (
	"time"

	"gorm.io/gorm"

	"wetube_backend/internal/feature/auth/domain/entity"
	"wetube_backend/internal/feature/auth/usecase"
)

// UserModel is the GORM model for the users table.
// The unique indexes on username and email are what closes signup races.
type UserModel struct {
	ID           string `gorm:"primaryKey;size:24"`
	Name         string `gorm:"size:255;not null"`
	Username     string `gorm:"uniqueIndex;size:255;not null"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"size:255"`
	SocialOnly   bool   `gorm:"not null"`
	AvatarURL    string `gorm:"size:1024"`
	Location     string `gorm:"size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns the identifier and rejects records missing required fields.
func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = entity.NewUserID()
	}
	return validateRequired(m.Name, m.Username, m.Email)
}

// validateRequired returns a *usecase.ValidationError naming every empty required field.
func validateRequired(name, username, email string) error {
	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if username == "" {
		missing = append(missing, "username")
	}
	if email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return &usecase.ValidationError{Fields: missing}
	}
	return nil
}

// ToEntity converts the GORM model to a domain entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		SocialOnly:   m.SocialOnly,
		AvatarURL:    m.AvatarURL,
		Location:     m.Location,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// UserModelFromEntity converts a domain entity to a GORM model.
func UserModelFromEntity(u *entity.User) *UserModel {
	return &UserModel{
		ID:           u.ID,
		Name:         u.Name,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		SocialOnly:   u.SocialOnly,
		AvatarURL:    u.AvatarURL,
		Location:     u.Location,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
