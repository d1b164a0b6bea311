package feed

import (
	"sync"
	"time"

	"github.com/rs/xid"
)

func newTestUser(id, username string) *User {
	return &User{ID: ID(id), Name: username, Username: username, Avatar: "https://i.pravatar.cc/300?img=1"}
}

func isXID(id PostID) bool {
	_, err := xid.FromString(string(id))
	return err == nil
}

func seedPost(id string, u *User, createdAt time.Time) *Post {
	return &Post{
		ID:        PostID(id),
		User:      u,
		Content:   "seed " + id,
		Images:    []string{"/" + id + ".jpg"},
		Likes:     10,
		Comments:  3,
		Reposts:   2,
		CreatedAt: createdAt,
	}
}

func postIDs(posts []Post) []PostID {
	ids := []PostID{}
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}

type eventSpy struct {
	mu     sync.Mutex
	events []Event
}

func (s *eventSpy) Handle(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *eventSpy) kinds() []EventKind {
	s.mu.Lock()
	defer s.mu.Unlock()

	kinds := []EventKind{}
	for _, e := range s.events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}
