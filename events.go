package feed

type EventKind string

const (
	PostCreated      EventKind = "post.created"
	PostLiked        EventKind = "post.liked"
	PostUnliked      EventKind = "post.unliked"
	PostBookmarked   EventKind = "post.bookmarked"
	PostUnbookmarked EventKind = "post.unbookmarked"
)

// Event describes a successful mutation. Post is the state right after it.
type Event struct {
	Kind EventKind `json:"kind"`
	Post Post      `json:"post"`
}

type Subscriber func(Event)

func likeEvent(p *Post) Event {
	if p.Liked {
		return Event{Kind: PostLiked, Post: p.snapshot()}
	}
	return Event{Kind: PostUnliked, Post: p.snapshot()}
}

func bookmarkEvent(p *Post) Event {
	if p.Bookmarked {
		return Event{Kind: PostBookmarked, Post: p.snapshot()}
	}
	return Event{Kind: PostUnbookmarked, Post: p.snapshot()}
}
