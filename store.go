package feed

import (
	"sort"
	"sync"
	"time"
)

// maxIDAttempts bounds how often a generated id is redrawn when it collides.
const maxIDAttempts = 3

// Store owns the feed: the posts visible to the current user and the
// mutations the user can make on them. Posts are kept newest first by
// CreatedAt; among equal timestamps the most recently inserted comes first.
type Store struct {
	mu          sync.RWMutex
	currentUser *User
	posts       []*Post
	byID        map[PostID]*Post
	now         func() time.Time
	nextID      func() PostID

	subMu       sync.Mutex
	subscribers map[int]Subscriber
	nextSub     int
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(next func() PostID) Option {
	return func(s *Store) { s.nextID = next }
}

// NewStore returns an empty feed acting on behalf of currentUser, which
// must not be nil.
func NewStore(currentUser *User, opts ...Option) *Store {
	s := &Store{
		currentUser: currentUser,
		byID:        map[PostID]*Post{},
		now:         func() time.Time { return time.Now().UTC() },
		nextID:      NextPostID,
		subscribers: map[int]Subscriber{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) CurrentUser() *User {
	return s.currentUser
}

// Posts returns a snapshot of the whole feed in canonical order.
func (s *Store) Posts() []Post {
	return s.filter(func(*Post) bool { return true })
}

func (s *Store) Post(id PostID) (Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return Post{}, ErrPostNotFound
	}
	return p.snapshot(), nil
}

func (s *Store) Bookmarks() []Post {
	return s.filter(func(p *Post) bool { return p.Bookmarked })
}

func (s *Store) LikedPosts() []Post {
	return s.filter(func(p *Post) bool { return p.Liked })
}

func (s *Store) PostsBy(userID ID) []Post {
	return s.filter(func(p *Post) bool { return p.User != nil && p.User.ID == userID })
}

// AddPost publishes a draft as the current user. The new post always sorts
// first: its timestamp is never older than the newest post already held.
func (s *Store) AddPost(d Draft) (Post, error) {
	s.mu.Lock()

	createdAt := s.now()
	if len(s.posts) > 0 && s.posts[0].CreatedAt.After(createdAt) {
		createdAt = s.posts[0].CreatedAt
	}

	p, err := NewPost(s.currentUser, d, createdAt)
	if err != nil {
		s.mu.Unlock()
		return Post{}, err
	}

	if p.ID == "" {
		p.ID, err = s.freshID()
	} else if _, ok := s.byID[p.ID]; ok {
		err = ErrExistingPost
	}
	if err != nil {
		s.mu.Unlock()
		return Post{}, err
	}

	s.insert(p)
	e := Event{Kind: PostCreated, Post: p.snapshot()}
	s.mu.Unlock()

	s.notify(e)
	return e.Post, nil
}

// Import adds already existing posts, such as seed content, keeping their
// counters, flags and timestamps. Either every post is added or none is.
func (s *Store) Import(posts ...*Post) error {
	s.mu.Lock()

	seen := make(map[PostID]bool, len(posts))
	for _, p := range posts {
		if p == nil || p.ID == "" {
			s.mu.Unlock()
			return ErrInvalidPostID
		}
		if _, ok := s.byID[p.ID]; ok || seen[p.ID] {
			s.mu.Unlock()
			return ErrExistingPost
		}
		seen[p.ID] = true
	}

	events := make([]Event, 0, len(posts))
	for _, p := range posts {
		c := p.snapshot()
		if c.Likes < 0 {
			c.Likes = 0
		}
		// a liked post counts the current user's like
		if c.Liked && c.Likes < 1 {
			c.Likes = 1
		}
		if c.Comments < 0 {
			c.Comments = 0
		}
		if c.Reposts < 0 {
			c.Reposts = 0
		}
		s.insert(&c)
		events = append(events, Event{Kind: PostCreated, Post: c.snapshot()})
	}
	s.mu.Unlock()

	for _, e := range events {
		s.notify(e)
	}
	return nil
}

// LikePost toggles the current user's like on a post and returns the post as
// it stands after the toggle.
func (s *Store) LikePost(id PostID) (Post, error) {
	return s.mutate(id, func(p *Post) Event {
		p.ToggleLike()
		return likeEvent(p)
	})
}

// BookmarkPost toggles the current user's bookmark on a post. Counters are
// left alone.
func (s *Store) BookmarkPost(id PostID) (Post, error) {
	return s.mutate(id, func(p *Post) Event {
		p.ToggleBookmark()
		return bookmarkEvent(p)
	})
}

// Subscribe registers fn to be called after every successful mutation. The
// returned func removes it and is safe to call more than once.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Store) mutate(id PostID, change func(*Post) Event) (Post, error) {
	s.mu.Lock()
	p, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		return Post{}, ErrPostNotFound
	}
	e := change(p)
	res := p.snapshot()
	s.mu.Unlock()

	s.notify(e)
	return res, nil
}

func (s *Store) filter(keep func(*Post) bool) []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := []Post{}
	for _, p := range s.posts {
		if keep(p) {
			posts = append(posts, p.snapshot())
		}
	}
	return posts
}

// insert places p before every post that is not newer than it.
func (s *Store) insert(p *Post) {
	i := sort.Search(len(s.posts), func(i int) bool {
		return !s.posts[i].CreatedAt.After(p.CreatedAt)
	})

	s.posts = append(s.posts, nil)
	copy(s.posts[i+1:], s.posts[i:])
	s.posts[i] = p
	s.byID[p.ID] = p
}

func (s *Store) freshID() (PostID, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.nextID()
		if _, ok := s.byID[id]; id != "" && !ok {
			return id, nil
		}
	}
	return "", ErrExistingPost
}

func (s *Store) notify(e Event) {
	s.subMu.Lock()
	subs := make([]Subscriber, 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(e)
	}
}
