package feed

// Service is what the presentation layer needs from the feed. *Store
// implements it.
type Service interface {
	CurrentUser() *User
	Posts() []Post
	Post(id PostID) (Post, error)
	AddPost(d Draft) (Post, error)
	LikePost(id PostID) (Post, error)
	BookmarkPost(id PostID) (Post, error)
	Bookmarks() []Post
	LikedPosts() []Post
	PostsBy(userID ID) []Post
	Trends(limit int) []Trend
	Subscribe(fn Subscriber) func()
}

var _ Service = (*Store)(nil)
