// Command seed fills the configured database with demo users, groups, posts, comments and follows.
package main

import (
	"context"
	"flag"
	"log"

	"yatube/internal/app"
	"yatube/internal/config"
	"yatube/internal/seed"

	"go.uber.org/zap"
)

func main() {
	users := flag.Int("users", 20, "Number of users to create")
	groups := flag.Int("groups", 4, "Number of groups to create")
	posts := flag.Int("posts", 5, "Posts per user")
	follows := flag.Int("follows", 3, "Authors each user follows")
	comments := flag.Int("comments", 2, "Comments per post")
	seedValue := flag.Int64("seed", 0, "Random seed (0 = random)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := config.InitLogger(cfg.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer config.SyncLogger()

	ctx := context.Background()
	a, err := app.Open(ctx, cfg)
	if err != nil {
		config.Logger.Fatal("Startup failed", zap.Error(err))
	}
	defer a.Close()

	s := &seed.Seeder{Users: a.Users, Groups: a.Groups, Posts: a.Posts, Comments: a.Comments, Followers: a.Followers}
	res, err := s.Run(ctx, seed.Options{
		Users:           *users,
		Groups:          *groups,
		PostsPerUser:    *posts,
		FollowsPerUser:  *follows,
		CommentsPerPost: *comments,
		Seed:            *seedValue,
	})
	if err != nil {
		config.Logger.Error("Seeding failed", zap.Error(err))
		return
	}
	// صفحه اصلی کش‌شده محتوای جدید را نشان نمی‌دهد
	if err := a.ClearSharedIndexCache(ctx); err != nil {
		config.Logger.Warn("Index cache not cleared; running servers keep stale pages until INDEX_CACHE_TTL", zap.Error(err))
	}
	log.Printf("Seeded %d users, %d groups, %d posts, %d comments, %d follows (password %q)",
		res.Users, res.Groups, res.Posts, res.Comments, res.Follows, seed.DefaultPassword)
}
