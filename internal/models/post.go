package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is an idea submitted to the board. CreatedAt is assigned once at
// creation and never changes; edits only touch the four text fields.
type Post struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Title          string `gorm:"size:100;not null" json:"title"`
	Description    string `gorm:"not null" json:"description"`
	EffortRequired string `gorm:"not null" json:"effort_required"`
	BusinessValue  string `gorm:"not null" json:"business_value"`
	UserID         uint   `gorm:"not null" json:"user_id"`
	User           User   `gorm:"foreignKey:UserID" json:"user"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"-" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"-" json:"comments_count"`
	// Liked indicates whether the current requesting user liked this post (computed)
	Liked     bool           `gorm:"-" json:"liked"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
