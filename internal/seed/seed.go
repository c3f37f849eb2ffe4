// Package seed fills a development database with demo content. Everything
// goes through the services so the data obeys the same rules as real input.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"yatube/internal/config"
	"yatube/internal/core/access"
	commentapp "yatube/internal/core/comment/service"
	followerapp "yatube/internal/core/follower/service"
	groupapp "yatube/internal/core/group/service"
	postapp "yatube/internal/core/post/service"
	userapp "yatube/internal/core/user/service"
	postPort "yatube/internal/ports/post"
	userPort "yatube/internal/ports/user"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

const DefaultPassword = "password"

type Options struct {
	Users           int
	Groups          int
	PostsPerUser    int
	FollowsPerUser  int
	CommentsPerPost int
	// Seed makes runs reproducible; 0 picks a random one.
	Seed int64
}

type Result struct {
	Users    int
	Groups   int
	Posts    int
	Follows  int
	Comments int
}

type Seeder struct {
	Users     *userapp.UserService
	Groups    *groupapp.GroupService
	Posts     *postapp.PostService
	Comments  *commentapp.CommentService
	Followers *followerapp.FollowerService
}

func (s *Seeder) Run(ctx context.Context, opts Options) (*Result, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	faker := gofakeit.New(seed)
	rnd := rand.New(rand.NewSource(seed))
	res := &Result{}

	groupIDs := make([]uint, 0, opts.Groups)
	for i := 0; i < opts.Groups; i++ {
		title := strings.TrimSpace(faker.HipsterWord() + " " + faker.Noun())
		slug := fmt.Sprintf("%s-%d", slugify(title), i)
		g, err := s.Groups.CreateGroup(ctx, slug, title, faker.Sentence(8))
		if err != nil {
			return res, fmt.Errorf("seeding group %q: %w", slug, err)
		}
		groupIDs = append(groupIDs, g.ID)
		res.Groups++
	}

	actors := make([]access.Actor, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		username := fmt.Sprintf("%s%d", strings.ToLower(faker.Username()), i)
		u, err := s.Users.RegisterUser(ctx, userPort.RegisterInput{
			Name:     faker.FirstName(),
			Family:   faker.LastName(),
			Username: username,
			Email:    username + "@example.com",
			Password: DefaultPassword,
		})
		if err != nil {
			return res, fmt.Errorf("seeding user %q: %w", username, err)
		}
		actors = append(actors, access.Actor{ID: uuid.FromStringOrNil(u.ID), Username: u.Username})
		res.Users++
	}
	config.Logger.Info("Seeded users and groups", zap.Int("users", res.Users), zap.Int("groups", res.Groups))

	for _, actor := range actors {
		for p := 0; p < opts.PostsPerUser; p++ {
			in := postPort.PostInput{Text: faker.Paragraph(1, 3, 12, " ")}
			if len(groupIDs) > 0 && rnd.Intn(2) == 0 {
				gid := groupIDs[rnd.Intn(len(groupIDs))]
				in.GroupID = &gid
			}
			post, err := s.Posts.CreatePost(ctx, actor, in)
			if err != nil {
				return res, fmt.Errorf("seeding post for %s: %w", actor.Username, err)
			}
			res.Posts++

			for c := 0; c < opts.CommentsPerPost && len(actors) > 0; c++ {
				commenter := actors[rnd.Intn(len(actors))]
				if _, err := s.Comments.AddComment(ctx, commenter, post.ID, faker.Sentence(10)); err != nil {
					return res, fmt.Errorf("seeding comment on post %d: %w", post.ID, err)
				}
				res.Comments++
			}
		}
	}

	for i, actor := range actors {
		for f := 1; f <= opts.FollowsPerUser && f < len(actors); f++ {
			author := actors[(i+f)%len(actors)]
			if err := s.Followers.Follow(ctx, actor, author.Username); err != nil {
				return res, fmt.Errorf("seeding follow %s -> %s: %w", actor.Username, author.Username, err)
			}
			res.Follows++
		}
	}
	config.Logger.Info("Seed completed",
		zap.Int("posts", res.Posts), zap.Int("comments", res.Comments), zap.Int("follows", res.Follows))
	return res, nil
}

func slugify(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ' || r == '_':
			return '-'
		}
		return -1
	}, s)
}
