package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PostStatusPublished = "published"
	PostStatusDraft     = "draft"
)

type BlogCategory struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string        `gorm:"size:100;not null" json:"name"`
	Slug        string        `gorm:"size:150;uniqueIndex;not null" json:"slug"`
	Description string        `gorm:"type:text" json:"description"`
	ParentID    *uuid.UUID    `gorm:"type:uuid" json:"parent_id,omitempty"`
	Parent      *BlogCategory `gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL" json:"parent,omitempty"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
}

func (c *BlogCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type BlogPost struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Title      string        `gorm:"size:200;not null" json:"title"`
	Slug       string        `gorm:"size:250;uniqueIndex;not null" json:"slug"`
	Content    string        `gorm:"type:text;not null" json:"content"`
	CategoryID *uuid.UUID    `gorm:"type:uuid" json:"category_id,omitempty"`
	Category   *BlogCategory `gorm:"constraint:OnDelete:SET NULL" json:"category,omitempty"`
	AuthorID   *uuid.UUID    `gorm:"type:uuid" json:"author_id,omitempty"`
	Author     *User         `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL" json:"author,omitempty"`
	Tags       string        `gorm:"type:text" json:"tags"`
	Status     string        `gorm:"size:20;not null;default:published" json:"status"`
	Views      int64         `gorm:"not null;default:0" json:"views"`
	CreatedAt  time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Comment supports one level of reply nesting via ParentID.
type Comment struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PostID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"post_id"`
	Post       *BlogPost  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	UserID     *uuid.UUID `gorm:"type:uuid" json:"user_id,omitempty"`
	ParentID   *uuid.UUID `gorm:"type:uuid" json:"parent_id,omitempty"`
	AuthorName *string    `gorm:"size:100" json:"author_name,omitempty"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	Approved   bool       `gorm:"not null;default:true" json:"approved"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// NotificationRecipient is consulted by the notification dispatcher; the
// configured fallback address is used when the table is empty.
type NotificationRecipient struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Label     *string   `gorm:"size:100" json:"label,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (r *NotificationRecipient) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
