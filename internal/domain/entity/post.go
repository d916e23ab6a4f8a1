package entity

import "time"

// Post is a short text authored by a user, optionally with an attached image.
type Post struct {
	ID        int64
	Body      string // May be empty.
	UserID    int64
	ImageURL  *string
	Likes     int64 // Number of likes, filled by read queries only.
	CreatedAt time.Time
}

// Comment is a reply attached to a post.
type Comment struct {
	ID        int64
	Body      string
	PostID    int64
	UserID    int64
	CreatedAt time.Time
}

// Like records that a user liked a post. A user may like the same post more than once.
type Like struct {
	ID        int64
	PostID    int64
	UserID    int64
	CreatedAt time.Time
}

// PostWithComments is a post with its like count and every comment in id order.
type PostWithComments struct {
	Post     *Post
	Comments []*Comment
}

// PostSorting selects the ordering of a post listing.
type PostSorting string

const (
	SortNew       PostSorting = "new"        // Newest first (id descending).
	SortOld       PostSorting = "old"        // Oldest first (id ascending).
	SortMostLikes PostSorting = "most_likes" // Like count descending.
)

// ParsePostSorting maps a query value onto a PostSorting. An empty value means SortNew.
func ParsePostSorting(value string) (PostSorting, bool) {
	switch PostSorting(value) {
	case "", SortNew:
		return SortNew, true
	case SortOld:
		return SortOld, true
	case SortMostLikes:
		return SortMostLikes, true
	default:
		return "", false
	}
}
