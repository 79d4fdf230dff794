package models

import "time"

// Comment is a remark attached to a post. Username is a self-reported display
// name and is not a foreign key into users; callers must not assume it maps to
// a registered account.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Body      string    `gorm:"size:200;not null" json:"body"`
	Username  string    `gorm:"size:20;not null" json:"username"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Post      Post      `gorm:"foreignKey:PostID" json:"post,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
