package feed

type ID string

// User is the display identity attached to posts. Users belong to the
// identity provider; posts only point at them, so a change made to a User
// shows through every post it owns.
type User struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Avatar    string `json:"avatar"`
	Verified  bool   `json:"verified"`
	Followers int    `json:"followers"`
	Following int    `json:"following"`
}
