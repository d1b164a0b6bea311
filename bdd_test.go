package feed

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFeedBehaviour(t *testing.T) {
	Convey("Given a feed seeded with posts from two users", t, func() {
		now := time.Now().UTC()
		me := newTestUser("bruce-wayne-1", "brucewayne")
		clark := newTestUser("clark", "superman")
		store := NewStore(me)

		err := store.Import(
			seedPost("p1", clark, now.Add(-3*time.Hour)),
			seedPost("p2", me, now.Add(-2*time.Hour)),
			seedPost("p3", clark, now.Add(-time.Hour)),
		)
		So(err, ShouldBeNil)

		Convey("When the current user publishes a post", func() {
			p, err := store.AddPost(Draft{Content: "I am vengeance #Batman"})
			So(err, ShouldBeNil)

			Convey("Then it is the first post in the feed", func() {
				posts := store.Posts()
				So(posts, ShouldHaveLength, 4)
				So(posts[0].ID, ShouldEqual, p.ID)
				So(posts[0].User, ShouldPointTo, me)
			})

			Convey("And no two posts share an id", func() {
				seen := map[PostID]bool{}
				for _, post := range store.Posts() {
					So(seen[post.ID], ShouldBeFalse)
					seen[post.ID] = true
				}
			})
		})

		Convey("When an empty draft is submitted", func() {
			before := store.Posts()
			_, err := store.AddPost(Draft{Content: "", Images: []string{}})

			Convey("Then it is rejected and the feed is unchanged", func() {
				So(err, ShouldEqual, ErrEmptyPost)
				So(store.Posts(), ShouldResemble, before)
			})
		})

		Convey("When a post is liked twice", func() {
			before, _ := store.Post("p1")
			liked, err := store.LikePost("p1")
			So(err, ShouldBeNil)
			So(liked.Liked, ShouldBeTrue)
			So(liked.Likes, ShouldEqual, before.Likes+1)

			_, err = store.LikePost("p1")
			So(err, ShouldBeNil)

			Convey("Then its flag and counter are back where they started", func() {
				after, _ := store.Post("p1")
				So(after.Liked, ShouldEqual, before.Liked)
				So(after.Likes, ShouldEqual, before.Likes)
			})
		})

		Convey("When an unknown post is liked", func() {
			before := store.Posts()
			_, err := store.LikePost("does-not-exist")

			Convey("Then NotFound is reported and nothing changes", func() {
				So(err, ShouldEqual, ErrPostNotFound)
				So(store.Posts(), ShouldResemble, before)
			})
		})

		Convey("When a post is bookmarked", func() {
			before, _ := store.Post("p2")
			_, err := store.BookmarkPost("p2")
			So(err, ShouldBeNil)

			Convey("Then only the bookmark flag changes", func() {
				after, _ := store.Post("p2")
				So(after.Bookmarked, ShouldBeTrue)
				So(after.Likes, ShouldEqual, before.Likes)
				So(after.Comments, ShouldEqual, before.Comments)
				So(after.Reposts, ShouldEqual, before.Reposts)
				So(after.Liked, ShouldEqual, before.Liked)

				Convey("And it shows up in the bookmarks", func() {
					So(postIDs(store.Bookmarks()), ShouldResemble, []PostID{"p2"})
				})
			})
		})
	})
}
