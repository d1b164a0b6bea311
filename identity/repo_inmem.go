package identity

import (
	"sync"

	feed "github.com/jimiolaniyan/comicrealm"
)

type directory struct {
	mu    sync.RWMutex
	users map[feed.ID]*feed.User
	order []feed.ID
}

func NewDirectory() Directory {
	return &directory{users: map[feed.ID]*feed.User{}}
}

// Store keeps u itself, not a copy, so callers and posts share it.
func (d *directory) Store(u *feed.User) error {
	if err := validate(u); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.users[u.ID]; ok {
		return ErrExistingUser
	}
	for _, v := range d.users {
		if v.Username == u.Username {
			return ErrExistingUser
		}
	}

	d.users[u.ID] = u
	d.order = append(d.order, u.ID)
	return nil
}

func (d *directory) FindByID(id feed.ID) (*feed.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if u, ok := d.users[id]; ok {
		return u, nil
	}
	return nil, ErrNotFound
}

func (d *directory) FindByName(username string) (*feed.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, v := range d.users {
		if v.Username == username {
			return v, nil
		}
	}
	return nil, ErrNotFound
}

// List returns users in the order they were stored.
func (d *directory) List() []*feed.User {
	d.mu.RLock()
	defer d.mu.RUnlock()

	users := make([]*feed.User, 0, len(d.order))
	for _, id := range d.order {
		users = append(users, d.users[id])
	}
	return users
}

// Resolve finds a user by id, falling back to username.
func Resolve(d Directory, ref string) (*feed.User, error) {
	u, err := d.FindByID(feed.ID(ref))
	if err == ErrNotFound {
		return d.FindByName(ref)
	}
	return u, err
}
