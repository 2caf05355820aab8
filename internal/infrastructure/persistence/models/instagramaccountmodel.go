package models

import (
	"time"

	"gorm.io/datatypes"

	"linkdeck/internal/shared/constants"
)

// InstagramAccountModel represents the database persistence model for linked
// Instagram business accounts.
type InstagramAccountModel struct {
	ID                         uint           `gorm:"primarykey"`
	UserID                     uint           `gorm:"not null;index:idx_ig_user_id;uniqueIndex:idx_ig_user_business"`
	AccountName                string         `gorm:"size:255"`
	FacebookPageID             string         `gorm:"not null;size:64;column:facebook_page_id"`
	InstagramBusinessAccountID string         `gorm:"not null;size:64;uniqueIndex:idx_ig_user_business;column:instagram_business_account_id"`
	AccessToken                string         `gorm:"not null;type:text"`
	ProfilePicturePath         string         `gorm:"size:500"`
	RawAccountInfo             datatypes.JSON `gorm:"column:raw_account_info"`
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

// TableName specifies the table name for GORM
func (InstagramAccountModel) TableName() string {
	return constants.TableInstagramAccounts
}
