package postapp

import (
	"bytes"
	"context"
	"io"
	"strings"

	"yatube/internal/config"
	"yatube/internal/core/access"
	"yatube/internal/core/apperr"
	postEntity "yatube/internal/core/post"
	groupPort "yatube/internal/ports/group"
	postPort "yatube/internal/ports/post"
	storagePort "yatube/internal/ports/storage"
	userPort "yatube/internal/ports/user"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

const (
	msgRequired     = "This field is required."
	msgEmptyFile    = "The submitted file is empty."
	msgInvalidImage = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."
)

type PostService struct {
	PostRepository  postPort.PostRepository
	GroupRepository groupPort.GroupRepository
	UserRepository  userPort.UserRepository
	Images          storagePort.ImageStorage
}

func NewPostService(
	postRepo postPort.PostRepository,
	groupRepo groupPort.GroupRepository,
	userRepo userPort.UserRepository,
	images storagePort.ImageStorage,
) *PostService {
	return &PostService{
		PostRepository:  postRepo,
		GroupRepository: groupRepo,
		UserRepository:  userRepo,
		Images:          images,
	}
}

// CreatePost ایجاد یک پست جدید برای کاربر واردشده
func (s *PostService) CreatePost(ctx context.Context, actor access.Actor, in postPort.PostInput) (*postPort.PostDTO, error) {
	if d := access.RequireAuth(actor, access.CreatePostPath); !d.Allowed() {
		return nil, apperr.NewAuthenticationRequired(d.Target)
	}
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	p := &postEntity.Post{
		Text:     strings.TrimSpace(in.Text),
		AuthorID: actor.ID,
		GroupID:  in.GroupID,
	}
	if in.Image != nil {
		path, err := s.storeImage(ctx, in.Image)
		if err != nil {
			return nil, err
		}
		p.Image = path
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		config.Logger.Error("Failed to create post", zap.String("authorID", actor.ID.String()), zap.Error(err))
		return nil, err
	}
	config.Logger.Info("Post created", zap.Uint("postID", created.ID), zap.String("author", actor.Username))
	return s.toDTO(created), nil
}

// EditPost فقط نویسنده می‌تواند متن، گروه و تصویر را عوض کند.
// Without a new image the stored one is kept.
func (s *PostService) EditPost(ctx context.Context, actor access.Actor, postID uint, in postPort.PostInput) (*postPort.PostDTO, error) {
	if !actor.Authenticated() {
		return nil, apperr.NewAuthenticationRequired(access.LoginRedirect(access.PostEditPath(postID)))
	}
	existing, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := s.checkEdit(actor, existing); err != nil {
		return nil, err
	}
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	existing.Text = strings.TrimSpace(in.Text)
	existing.GroupID = in.GroupID
	if in.Image != nil {
		path, err := s.storeImage(ctx, in.Image)
		if err != nil {
			return nil, err
		}
		existing.Image = path
	}

	if err := s.PostRepository.UpdateOwned(ctx, existing, actor.ID); err != nil {
		if apperr.IsAuthorizationDenied(err) {
			return nil, apperr.NewAuthorizationDenied(access.PostDetailPath(postID))
		}
		return nil, err
	}
	config.Logger.Info("Post updated", zap.Uint("postID", postID), zap.String("author", actor.Username))
	return s.GetPost(ctx, postID)
}

// CheckEdit is the gate for showing the edit form.
func (s *PostService) CheckEdit(ctx context.Context, actor access.Actor, postID uint) (*postPort.PostDTO, error) {
	if !actor.Authenticated() {
		return nil, apperr.NewAuthenticationRequired(access.LoginRedirect(access.PostEditPath(postID)))
	}
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := s.checkEdit(actor, p); err != nil {
		return nil, err
	}
	return s.toDTO(p), nil
}

func (s *PostService) checkEdit(actor access.Actor, p *postEntity.Post) error {
	d := access.EditPost(actor, p.ID, p.AuthorID)
	switch d.Outcome {
	case access.DenyLogin:
		return apperr.NewAuthenticationRequired(d.Target)
	case access.DenyRedirect:
		config.Logger.Warn("Edit by non-author redirected",
			zap.Uint("postID", p.ID), zap.String("actor", actor.Username))
		return apperr.NewAuthorizationDenied(d.Target)
	}
	return nil
}

func (s *PostService) validate(ctx context.Context, in postPort.PostInput) error {
	if strings.TrimSpace(in.Text) == "" {
		return apperr.NewValidationError("text", msgRequired)
	}
	if in.GroupID != nil {
		if _, err := s.GroupRepository.FindByID(ctx, *in.GroupID); err != nil {
			if apperr.IsNotFound(err) {
				return apperr.NewValidationError("group", "Select a valid choice. That choice is not one of the available choices.")
			}
			return err
		}
	}
	return nil
}

// storeImage sniffs the upload and rejects anything that is not an image.
func (s *PostService) storeImage(ctx context.Context, img *postPort.ImageUpload) (string, error) {
	data, err := io.ReadAll(img.Body)
	if err != nil {
		return "", apperr.NewInternalError(err)
	}
	if len(data) == 0 {
		return "", apperr.NewValidationError("image", msgEmptyFile)
	}
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		config.Logger.Warn("Rejected upload", zap.String("filename", img.Filename), zap.String("detected", mt.String()))
		return "", apperr.NewValidationError("image", msgInvalidImage)
	}
	path, err := s.Images.Save(ctx, img.Filename, mt.String(), bytes.NewReader(data))
	if err != nil {
		return "", apperr.NewInternalError(err)
	}
	return path, nil
}

// GetPost جزئیات یک پست
func (s *PostService) GetPost(ctx context.Context, id uint) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toDTO(p), nil
}

func (s *PostService) ListAllPosts(ctx context.Context) ([]*postPort.PostDTO, error) {
	return s.list(ctx, postEntity.Filter{})
}

func (s *PostService) ListPostsByGroup(ctx context.Context, slug string) ([]*postPort.PostDTO, error) {
	g, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, postEntity.Filter{GroupID: &g.ID})
}

func (s *PostService) ListPostsByAuthor(ctx context.Context, username string) ([]*postPort.PostDTO, error) {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, postEntity.Filter{AuthorID: &u.ID})
}

func (s *PostService) list(ctx context.Context, filter postEntity.Filter) ([]*postPort.PostDTO, error) {
	posts, err := s.PostRepository.Find(ctx, filter, 0, -1)
	if err != nil {
		return nil, err
	}
	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, s.toDTO(p))
	}
	return dtos, nil
}

func (s *PostService) toDTO(p *postEntity.Post) *postPort.PostDTO {
	return postPort.ToDTO(p, s.Images.URL(p.Image))
}
