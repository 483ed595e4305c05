package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table.
type AccountModel struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                    string    `gorm:"type:varchar(50);not null"`
	Email                   string    `gorm:"type:varchar(255);uniqueIndex:idx_accounts_email;not null"`
	PasswordHash            string    `gorm:"type:varchar(255);not null"`
	Kind                    string    `gorm:"type:varchar(20);not null;default:standard"`
	OrganizationName        string    `gorm:"type:varchar(100)"`
	OrganizationDescription string    `gorm:"type:text"`
	Points                  int       `gorm:"not null;default:0;check:chk_accounts_points,points >= 0"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
