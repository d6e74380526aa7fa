package domain

import "time"

// PostStatus is the lifecycle status of a post.
type PostStatus string

const (
	StatusDraft   PostStatus = "draft"
	StatusPublish PostStatus = "publish"
)

// Post represents a blog post entity in the system.
type Post struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Summary      string     `json:"summary,omitempty"`
	Content      string     `json:"content"`
	Status       PostStatus `json:"status"`
	IsRecommend  bool       `json:"is_recommend"`
	NeedPassword bool       `json:"need_password"`
	Password     string     `json:"-"`
	ViewCount    int        `json:"view_count"`
	LikeCount    int        `json:"like_count"`
	CategoryID   *string    `json:"category_id,omitempty"`
	Category     *Category  `json:"category,omitempty"`
	Tags         []Tag      `json:"tags,omitempty"`
	AuthorID     string     `json:"author_id"`
	Author       *Author    `json:"author,omitempty"`
	PublishTime  *time.Time `json:"publish_time,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ValidStatuses contains all valid post statuses.
var ValidStatuses = []PostStatus{StatusDraft, StatusPublish}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status PostStatus) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Redact withholds the body of a password-protected post. The access
// secret itself never leaves the domain layer regardless.
func (p *Post) Redact() {
	if p.NeedPassword {
		p.Content = ""
	}
}

// RedactAll applies Redact to every post in the slice.
func RedactAll(posts []Post) {
	for i := range posts {
		posts[i].Redact()
	}
}
