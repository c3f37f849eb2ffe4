package followerapp

import (
	"context"

	"yatube/internal/config"
	"yatube/internal/core/access"
	"yatube/internal/core/apperr"
	followerEntity "yatube/internal/core/follower"
	followerPort "yatube/internal/ports/follower"
	userPort "yatube/internal/ports/user"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

type FollowerService struct {
	FollowerRepository followerPort.FollowerRepository
	UserRepository     userPort.UserRepository
}

func NewFollowerService(repo followerPort.FollowerRepository, userRepo userPort.UserRepository) *FollowerService {
	return &FollowerService{
		FollowerRepository: repo,
		UserRepository:     userRepo,
	}
}

// Follow is idempotent. Following yourself or someone already followed
// creates nothing and is not an error.
func (s *FollowerService) Follow(ctx context.Context, actor access.Actor, username string) error {
	if d := access.RequireAuth(actor, access.FollowPath(username)); !d.Allowed() {
		return apperr.NewAuthenticationRequired(d.Target)
	}
	author, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if author.ID == actor.ID {
		config.Logger.Warn("Cannot follow yourself", zap.String("userID", actor.ID.String()))
		return nil
	}

	created, err := s.FollowerRepository.FollowUser(ctx, &followerEntity.Follower{
		UserID:   actor.ID,
		AuthorID: author.ID,
	})
	if err != nil {
		return err
	}
	if created {
		config.Logger.Info("Followed", zap.String("user", actor.Username), zap.String("author", author.Username))
	}
	return nil
}

// Unfollow reports NotFound when there is no edge to remove.
func (s *FollowerService) Unfollow(ctx context.Context, actor access.Actor, username string) error {
	if d := access.RequireAuth(actor, access.UnfollowPath(username)); !d.Allowed() {
		return apperr.NewAuthenticationRequired(d.Target)
	}
	author, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	removed, err := s.FollowerRepository.UnfollowUser(ctx, actor.ID, author.ID)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.NewNotFoundError("follow", actor.Username+" -> "+author.Username)
	}
	config.Logger.Info("Unfollowed", zap.String("user", actor.Username), zap.String("author", author.Username))
	return nil
}

// IsFollowing is always false for an anonymous actor.
func (s *FollowerService) IsFollowing(ctx context.Context, actor access.Actor, authorID uuid.UUID) (bool, error) {
	if !actor.Authenticated() {
		return false, nil
	}
	return s.FollowerRepository.IsFollowing(ctx, actor.ID, authorID)
}

// GetFollowers کاربرانی که username را دنبال می‌کنند
func (s *FollowerService) GetFollowers(ctx context.Context, username string) ([]*followerPort.FollowerDTO, error) {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	followers, err := s.FollowerRepository.GetFollowersByUserID(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return toDTOs(followers), nil
}

// GetFollowing نویسندگانی که username دنبال می‌کند
func (s *FollowerService) GetFollowing(ctx context.Context, username string) ([]*followerPort.FollowerDTO, error) {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	following, err := s.FollowerRepository.GetFollowingByUserID(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return toDTOs(following), nil
}

func toDTOs(edges []*followerEntity.Follower) []*followerPort.FollowerDTO {
	// اگر slice خالی بود، آرایه خالی برگردانده می‌شود نه nil
	dtos := make([]*followerPort.FollowerDTO, 0, len(edges))
	for _, f := range edges {
		dtos = append(dtos, followerPort.ToDTO(f))
	}
	return dtos
}
