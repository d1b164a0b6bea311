package identity

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"

	feed "github.com/jimiolaniyan/comicrealm"
)

func TestDirectory_Store(t *testing.T) {
	d := NewDirectory()
	bruce := &feed.User{ID: "bruce-wayne-1", Name: "Bruce Wayne", Username: "brucewayne"}

	tests := []struct {
		user    *feed.User
		wantErr error
	}{
		{user: nil, wantErr: ErrInvalidID},
		{user: &feed.User{Name: "No ID", Username: "noid"}, wantErr: ErrInvalidID},
		{user: bruce},
		{user: &feed.User{ID: "bruce-wayne-1", Name: "Other", Username: "other"}, wantErr: ErrExistingUser},
		{user: &feed.User{ID: "other", Name: "Other", Username: "brucewayne"}, wantErr: ErrExistingUser},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.wantErr, d.Store(tt.user))
	}
	assert.Equal(t, []*feed.User{bruce}, d.List())
}

func TestDirectoryLookups(t *testing.T) {
	Convey("Given a directory with two users", t, func() {
		d := NewDirectory()
		bruce := &feed.User{ID: "bruce-wayne-1", Name: "Bruce Wayne", Username: "brucewayne"}
		clark := &feed.User{ID: "clark", Name: "Clark Kent", Username: "superman"}
		So(d.Store(bruce), ShouldBeNil)
		So(d.Store(clark), ShouldBeNil)

		Convey("When users are looked up by id and username", func() {
			byID, err := d.FindByID("clark")
			So(err, ShouldBeNil)
			byName, err := d.FindByName("brucewayne")
			So(err, ShouldBeNil)

			Convey("Then the stored users themselves are returned", func() {
				So(byID, ShouldPointTo, clark)
				So(byName, ShouldPointTo, bruce)
			})
		})

		Convey("When an unknown user is looked up", func() {
			_, errID := d.FindByID("nobody")
			_, errName := d.FindByName("nobody")

			Convey("Then ErrNotFound is returned", func() {
				So(errID, ShouldEqual, ErrNotFound)
				So(errName, ShouldEqual, ErrNotFound)
			})
		})

		Convey("Then List keeps insertion order", func() {
			So(d.List(), ShouldResemble, []*feed.User{bruce, clark})
		})
	})
}

func TestResolve(t *testing.T) {
	d := NewDirectory()
	bruce := &feed.User{ID: "bruce-wayne-1", Name: "Bruce Wayne", Username: "brucewayne"}
	assert.NoError(t, d.Store(bruce))

	for _, ref := range []string{"bruce-wayne-1", "brucewayne"} {
		u, err := Resolve(d, ref)
		assert.NoError(t, err)
		assert.Same(t, bruce, u)
	}

	_, err := Resolve(d, "joker")
	assert.Equal(t, ErrNotFound, err)
}
