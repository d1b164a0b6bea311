package publisher

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	feed "github.com/jimiolaniyan/comicrealm"
)

type connSpy struct {
	subjects []string
	payloads [][]byte
	err      error
}

func (c *connSpy) Publish(subject string, data []byte) error {
	if c.err != nil {
		return c.err
	}
	c.subjects = append(c.subjects, subject)
	c.payloads = append(c.payloads, data)
	return nil
}

func TestEventPublisher_PublishesStoreEvents(t *testing.T) {
	store := feed.NewStore(&feed.User{ID: "me", Username: "me"})
	conn := &connSpy{}
	detach := NewEventPublisher(conn, nil).Attach(store)

	p, err := store.AddPost(feed.Draft{Content: "#Batman"})
	require.NoError(t, err)
	_, err = store.LikePost(p.ID)
	require.NoError(t, err)
	_, err = store.BookmarkPost(p.ID)
	require.NoError(t, err)

	detach()
	_, err = store.LikePost(p.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{"feed.post.created", "feed.post.liked", "feed.post.bookmarked"}, conn.subjects)

	var e feed.Event
	require.NoError(t, json.Unmarshal(conn.payloads[1], &e))
	assert.Equal(t, feed.PostLiked, e.Kind)
	assert.Equal(t, p.ID, e.Post.ID)
	assert.Equal(t, 1, e.Post.Likes)
}

func TestEventPublisher_FailuresAreLoggedNotPropagated(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	store := feed.NewStore(&feed.User{ID: "me", Username: "me"})
	NewEventPublisher(&connSpy{err: errors.New("nats: connection closed")}, zap.New(core)).Attach(store)

	_, err := store.AddPost(feed.Draft{Content: "still works"})

	assert.NoError(t, err)
	assert.Len(t, store.Posts(), 1)
	assert.Equal(t, 1, logs.FilterMessage("failed to publish event").Len())
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "feed.post.unbookmarked", Subject(feed.PostUnbookmarked))
}
