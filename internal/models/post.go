package models

import "time"

// Post is a community feed entry. Likes hold distinct profile ids;
// comments are embedded because they are only ever read with the post.
type Post struct {
	ID          string        `gorm:"primaryKey" json:"id"`
	AuthorID    string        `gorm:"not null;index" json:"authorId"`
	AuthorName  string        `gorm:"not null" json:"authorName"`
	AuthorImage string        `json:"authorImage"`
	Title       string        `gorm:"not null" json:"title"`
	Content     string        `gorm:"not null" json:"content"`
	CreatedAt   time.Time     `gorm:"not null" json:"createdAt"`
	Likes       []string      `gorm:"serializer:json" json:"likes"`
	Comments    []PostComment `gorm:"serializer:json" json:"comments"`
}

type PostComment struct {
	ID          string    `json:"id"`
	AuthorID    string    `json:"authorId"`
	AuthorName  string    `json:"authorName"`
	AuthorImage string    `json:"authorImage"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Post) TableName() string { return "posts" }

// LikedBy reports whether the profile already likes the post.
func (post Post) LikedBy(profileID string) bool {
	for _, liker := range post.Likes {
		if liker == profileID {
			return true
		}
	}
	return false
}
