package feed

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/xid"
)

var (
	ErrEmptyPost     = errors.New("post must have content or images")
	ErrPostNotFound  = errors.New("post not found")
	ErrExistingPost  = errors.New("post id in use")
	ErrInvalidPostID = errors.New("invalid post id")
)

type PostID string

type Post struct {
	ID         PostID    `json:"id"`
	User       *User     `json:"user"`
	Content    string    `json:"content"`
	Images     []string  `json:"images"`
	Likes      int       `json:"likes"`
	Comments   int       `json:"comments"`
	Reposts    int       `json:"reposts"`
	Liked      bool      `json:"liked"`
	Bookmarked bool      `json:"bookmarked"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Draft is what a user composes. ID is optional; when empty the store
// assigns one.
type Draft struct {
	ID      PostID   `json:"id,omitempty"`
	Content string   `json:"content"`
	Images  []string `json:"images,omitempty"`
}

// NewPost builds a post with zeroed counters and flags. A draft with only
// whitespace and no images is rejected.
func NewPost(author *User, d Draft, createdAt time.Time) (*Post, error) {
	images := make([]string, 0, len(d.Images))
	for _, img := range d.Images {
		if strings.TrimSpace(img) != "" {
			images = append(images, img)
		}
	}

	if strings.TrimSpace(d.Content) == "" && len(images) == 0 {
		return nil, ErrEmptyPost
	}

	return &Post{
		ID:        d.ID,
		User:      author,
		Content:   d.Content,
		Images:    images,
		CreatedAt: createdAt,
	}, nil
}

// ToggleLike flips Liked and moves Likes by one in the same direction.
func (p *Post) ToggleLike() {
	p.Liked = !p.Liked
	if p.Liked {
		p.Likes++
		return
	}
	if p.Likes > 0 {
		p.Likes--
	}
}

func (p *Post) ToggleBookmark() {
	p.Bookmarked = !p.Bookmarked
}

func (p *Post) snapshot() Post {
	c := *p
	c.Images = append([]string{}, p.Images...)
	return c
}

func NextPostID() PostID {
	return PostID(xid.New().String())
}
