package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	feed "github.com/jimiolaniyan/comicrealm"
)

func TestDirectory_StoreValidatesUsers(t *testing.T) {
	longName := "long_name_that_exceeds_24_characters_should_not_be_allowed"

	tests := []struct {
		name, username string
		wantErr        error
	}{
		{wantErr: ErrInvalidUsername},
		{name: "Bruce", username: longName, wantErr: ErrInvalidUsername},
		{name: "Bruce", username: "bruce wayne", wantErr: ErrInvalidUsername},
		{name: "Bruce", username: "bruce@wayne", wantErr: ErrInvalidUsername},
		{name: "  ", username: "brucewayne", wantErr: ErrInvalidName},
		{name: "Bruce Wayne", username: "bruce_wayne"},
	}

	for _, tt := range tests {
		d := NewDirectory()
		u := &feed.User{ID: "bruce-wayne-1", Name: tt.name, Username: tt.username}

		assert.Equal(t, tt.wantErr, d.Store(u))
		if tt.wantErr != nil {
			assert.Empty(t, d.List())
			continue
		}
		assert.Equal(t, []*feed.User{u}, d.List())
	}
}
