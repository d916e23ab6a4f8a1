package model

import "time"

// PostModel mirrors the 'posts' table. Deleting a user removes their posts.
type PostModel struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	Body      string     `gorm:"type:text;not null"`
	UserID    int64      `gorm:"not null;index"`
	User      *UserModel `gorm:"constraint:OnDelete:CASCADE"`
	ImageURL  *string    `gorm:"type:varchar(1024)"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}

// PostWithLikesRow is the projection returned by like-count aware post queries.
type PostWithLikesRow struct {
	PostModel `gorm:"embedded"`
	Likes     int64
}

// CommentModel mirrors the 'comments' table.
type CommentModel struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	Body      string     `gorm:"type:text;not null"`
	PostID    int64      `gorm:"not null;index"`
	Post      *PostModel `gorm:"constraint:OnDelete:CASCADE"`
	UserID    int64      `gorm:"not null;index"`
	User      *UserModel `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}

// LikeModel mirrors the 'likes' table.
type LikeModel struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	PostID    int64      `gorm:"not null;index"`
	Post      *PostModel `gorm:"constraint:OnDelete:CASCADE"`
	UserID    int64      `gorm:"not null;index"`
	User      *UserModel `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}

// All lists every model in dependency order for schema bootstrapping.
func All() []any {
	return []any{
		&UserModel{},
		&PostModel{},
		&CommentModel{},
		&LikeModel{},
	}
}
