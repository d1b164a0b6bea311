// Package seed produces comic-themed mock users and posts. Output depends
// only on the random source, so a fixed seed gives a fixed feed.
package seed

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	feed "github.com/jimiolaniyan/comicrealm"
)

const (
	// CurrentUserID is the fixed first user Users returns.
	CurrentUserID feed.ID = "bruce-wayne-1"

	week = 7 * 24 * time.Hour
)

type character struct {
	name, username string
}

var characters = []character{
	{"Bruce Wayne", "batman"},
	{"Clark Kent", "superman"},
	{"Diana Prince", "wonderwoman"},
	{"Barry Allen", "flash"},
	{"Hal Jordan", "greenlantern"},
	{"Peter Parker", "spiderman"},
	{"Tony Stark", "ironman"},
	{"Steve Rogers", "captainamerica"},
	{"Natasha Romanoff", "blackwidow"},
	{"Bruce Banner", "hulk"},
	{"Thor Odinson", "thor"},
	{"Wanda Maximoff", "scarletwitch"},
	{"Arthur Curry", "aquaman"},
	{"Victor Stone", "cyborg"},
	{"Scott Lang", "antman"},
}

type illustration struct {
	path, topic string
}

var illustrations = []illustration{
	{"/iron-man.jpg", "Suit up! The latest Iron Man armor is a technological marvel. The perfect blend of innovation and heroics! #TonyStark #IronMan"},
	{"/Ant man.jpg", "Ant-Man's quantum adventures never cease to amaze! Size doesn't matter when you've got this much heart. #AntMan"},
	{"/Flash.jpg", "The Scarlet Speedster in action! Barry Allen showing us why he's the fastest man alive. #Flash"},
	{"/joker.jpg", "The Clown Prince of Crime with that iconic smile. Some people just want to watch the world burn. #Joker #Gotham"},
	{"/Superman.jpeg", "The Man of Steel soaring through the skies! Hope never dies when Superman's around. #Superman"},
	{"/Venom-vs-Spider-Man-e15759112123.jpg", "Epic showdown! Spider-Man vs Venom, the eternal struggle between hero and symbiote. #SpiderMan #Venom"},
	{"/wonder-woman-new-comic-daniel-sa.jpg", "Diana Prince showing why she's the strongest Amazon warrior! Wonder Woman forever! #WonderWoman"},
	{"/Thor.jpg", "The God of Thunder wielding Mjolnir! Thor's might knows no bounds. #Thor #Asgard"},
	{"/Victor Doom.jpg", "Doctor Doom stands supreme! Latveria's ruler showing his power. #DoctorDoom"},
	{"/loki.jpg", "The God of Mischief's latest scheme! What's Loki planning this time? #Loki #Asgard"},
	{"/wolverine.jpg", "The best there is at what he does! Logan unleashed! #Wolverine"},
	{"/vision.jpg", "Vision contemplating the nature of humanity. The synthezoid's evolution continues. #Vision"},
	{"/Deadpool.jpg", "Deadpool breaking the fourth wall again! Maximum effort! #Deadpool"},
	{"/avengers-endgame-thanos-1.jpg", "The Mad Titan himself! Thanos making the universe balanced, as all things should be. #Thanos #Avengers"},
	{"/spider-man-beyond-the-spidervers.jpg", "Swinging through the Spider-Verse! Miles showing why he's the perfect Spider-Man! #SpiderMan"},
	{"/Batman_1_preview_2.jpg", "The Dark Knight watching over Gotham! Batman's presence strikes fear into criminals. #Batman #Gotham"},
}

const avatarCount = 12

type Generator struct {
	r *rand.Rand
}

func New(r *rand.Rand) *Generator {
	return &Generator{r: r}
}

// Users returns n users. The first is always the fixed current user.
func (g *Generator) Users(n int) []*feed.User {
	if n < 1 {
		return nil
	}

	users := []*feed.User{{
		ID:        CurrentUserID,
		Name:      "Bruce Wayne",
		Username:  "brucewayne",
		Avatar:    "https://api.dicebear.com/7.x/avataaars/svg?seed=bruce-wayne",
		Verified:  true,
		Followers: g.r.Intn(100001),
		Following: g.r.Intn(1001),
	}}

	for i := 0; i < n-1; i++ {
		c := characters[i%len(characters)]
		username := c.username
		if i >= len(characters) {
			username = fmt.Sprintf("%s%d", c.username, i/len(characters))
		}

		users = append(users, &feed.User{
			ID:        feed.ID(g.uuid()),
			Name:      c.name,
			Username:  username,
			Avatar:    avatar(fmt.Sprintf("%s-%d", c.username, i)),
			Verified:  g.r.Float64() < 0.3,
			Followers: g.r.Intn(100001),
			Following: g.r.Intn(1001),
		})
	}
	return users
}

// Posts returns up to n posts, at most one per illustration, authored
// round-robin by users and dated within the week before now. They come
// back newest first.
func (g *Generator) Posts(users []*feed.User, n int, now time.Time) []*feed.Post {
	if len(users) == 0 || n < 1 {
		return nil
	}
	if n > len(illustrations) {
		n = len(illustrations)
	}

	order := g.r.Perm(len(illustrations))
	posts := make([]*feed.Post, 0, n)
	for i := 0; i < n; i++ {
		ill := illustrations[order[i]]
		posts = append(posts, &feed.Post{
			ID:        feed.PostID(g.uuid()),
			User:      users[i%len(users)],
			Content:   ill.topic,
			Images:    []string{ill.path},
			Likes:     100 + g.r.Intn(9901),
			Comments:  10 + g.r.Intn(491),
			Reposts:   5 + g.r.Intn(296),
			CreatedAt: now.Add(-time.Duration(g.r.Int63n(int64(week)))),
		})
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts
}

func (g *Generator) uuid() string {
	id, err := uuid.NewRandomFromReader(g.r)
	if err != nil {
		// rand.Rand never fails to read
		panic(err)
	}
	return id.String()
}

// avatar picks one of a fixed set of images from the characters in seed,
// so the same seed always gets the same picture.
func avatar(seed string) string {
	sum := 0
	for _, ch := range seed {
		sum += int(ch)
	}
	return fmt.Sprintf("https://i.pravatar.cc/300?img=%d", sum%avatarCount+1)
}
