package feedapp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"yatube/internal/config"
	"yatube/internal/core/access"
	"yatube/internal/core/apperr"
	"yatube/internal/core/feed"
	postEntity "yatube/internal/core/post"
	cachePort "yatube/internal/ports/cache"
	followerPort "yatube/internal/ports/follower"
	groupPort "yatube/internal/ports/group"
	postPort "yatube/internal/ports/post"
	storagePort "yatube/internal/ports/storage"
	userPort "yatube/internal/ports/user"

	"go.uber.org/zap"
)

type (
	PostPage    = postPort.PostPage
	GroupFeed   = postPort.GroupFeed
	ProfileFeed = postPort.ProfileFeed
)

// FeedService صفحه‌بندی فیدها؛ فقط صفحه اصلی کش می‌شود
type FeedService struct {
	PostRepository     postPort.PostRepository
	GroupRepository    groupPort.GroupRepository
	UserRepository     userPort.UserRepository
	FollowerRepository followerPort.FollowerRepository
	Cache              cachePort.Cache
	Images             storagePort.ImageStorage
	PageSize           int
	IndexTTL           time.Duration
}

func NewFeedService(
	postRepo postPort.PostRepository,
	groupRepo groupPort.GroupRepository,
	userRepo userPort.UserRepository,
	followerRepo followerPort.FollowerRepository,
	cache cachePort.Cache,
	images storagePort.ImageStorage,
	pageSize int,
	indexTTL time.Duration,
) *FeedService {
	return &FeedService{
		PostRepository:     postRepo,
		GroupRepository:    groupRepo,
		UserRepository:     userRepo,
		FollowerRepository: followerRepo,
		Cache:              cache,
		Images:             images,
		PageSize:           pageSize,
		IndexTTL:           indexTTL,
	}
}

func indexKey(page int) string { return fmt.Sprintf("index:page:%d", page) }

// Index returns the rendered index page. A rendered page is served from the
// cache until it expires or the cache is cleared; new posts do not evict it.
// Pages are keyed by the clamped page number so out-of-range requests share one entry.
func (s *FeedService) Index(ctx context.Context, page int) ([]byte, error) {
	total, err := s.PostRepository.Count(ctx, postEntity.Filter{})
	if err != nil {
		return nil, err
	}
	page = feed.Locate(int(total), s.PageSize, page).Number
	key := indexKey(page)
	cached, found, err := s.Cache.Get(ctx, key)
	if err != nil {
		config.Logger.Warn("Index cache read failed", zap.String("key", key), zap.Error(err))
	} else if found {
		return cached, nil
	}

	p, err := s.IndexPage(ctx, page)
	if err != nil {
		return nil, err
	}
	rendered, err := json.Marshal(p)
	if err != nil {
		return nil, apperr.NewInternalError(err)
	}
	if err := s.Cache.Set(ctx, key, rendered, s.IndexTTL); err != nil {
		config.Logger.Warn("Index cache write failed", zap.String("key", key), zap.Error(err))
	}
	return rendered, nil
}

// IndexPage is the uncached index.
func (s *FeedService) IndexPage(ctx context.Context, page int) (PostPage, error) {
	return s.page(ctx, postEntity.Filter{}, page)
}

func (s *FeedService) ClearIndexCache(ctx context.Context) error {
	if err := s.Cache.Clear(ctx); err != nil {
		return err
	}
	config.Logger.Info("Index cache cleared")
	return nil
}

func (s *FeedService) Group(ctx context.Context, slug string, page int) (*GroupFeed, error) {
	g, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	p, err := s.page(ctx, postEntity.Filter{GroupID: &g.ID}, page)
	if err != nil {
		return nil, err
	}
	return &GroupFeed{Group: groupPort.ToDTO(g), PostPage: p}, nil
}

func (s *FeedService) Profile(ctx context.Context, viewer access.Actor, username string, page int) (*ProfileFeed, error) {
	author, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	p, err := s.page(ctx, postEntity.Filter{AuthorID: &author.ID}, page)
	if err != nil {
		return nil, err
	}
	out := &ProfileFeed{
		Author:     userPort.ToDTO(author),
		PostsCount: p.TotalItems,
		PostPage:   p,
	}
	if viewer.Authenticated() {
		following, err := s.FollowerRepository.IsFollowing(ctx, viewer.ID, author.ID)
		if err != nil {
			return nil, err
		}
		out.Following = following
	}
	return out, nil
}

// Following lists posts by authors the actor follows.
func (s *FeedService) Following(ctx context.Context, actor access.Actor, page int) (PostPage, error) {
	if d := access.RequireAuth(actor, access.FollowIndexPath); !d.Allowed() {
		return PostPage{}, apperr.NewAuthenticationRequired(d.Target)
	}
	return s.page(ctx, postEntity.Filter{FollowerID: &actor.ID}, page)
}

func (s *FeedService) page(ctx context.Context, filter postEntity.Filter, number int) (PostPage, error) {
	total, err := s.PostRepository.Count(ctx, filter)
	if err != nil {
		return PostPage{}, err
	}
	w := feed.Locate(int(total), s.PageSize, number)
	posts, err := s.PostRepository.Find(ctx, filter, w.Offset, w.Limit)
	if err != nil {
		return PostPage{}, err
	}
	items := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		items = append(items, postPort.ToDTO(p, s.Images.URL(p.Image)))
	}
	return feed.NewPage(items, w, int(total)), nil
}
