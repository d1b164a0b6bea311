package identity

import feed "github.com/jimiolaniyan/comicrealm"

// Directory is the identity provider the feed reads users from.
type Directory interface {
	FindByID(id feed.ID) (*feed.User, error)
	FindByName(username string) (*feed.User, error)
	Store(u *feed.User) error
	List() []*feed.User
}
