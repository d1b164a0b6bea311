package identity

import (
	"errors"
	"regexp"
	"strings"

	feed "github.com/jimiolaniyan/comicrealm"
)

var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidName     = errors.New("name cannot be empty")
	ErrInvalidID       = errors.New("invalid user id")
	ErrNotFound        = errors.New("user not found")
	ErrExistingUser    = errors.New("user id or username in use")
)

var usernameRegexp = regexp.MustCompile(`^\w{1,24}$`)

//validate checks the fields every stored user needs
func validate(u *feed.User) error {
	if u == nil || u.ID == "" {
		return ErrInvalidID
	}
	if !usernameRegexp.MatchString(u.Username) {
		return ErrInvalidUsername
	}
	if strings.TrimSpace(u.Name) == "" {
		return ErrInvalidName
	}
	return nil
}
