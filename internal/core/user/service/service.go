package userapp

import (
	"context"
	"errors"
	"strings"
	"time"

	"yatube/internal/config"
	"yatube/internal/core/access"
	"yatube/internal/core/apperr"
	userEntity "yatube/internal/core/user"
	userPort "yatube/internal/ports/user"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenIssuer   = "yatube"
	tokenLifetime = 24 * time.Hour
)

// Claims محتوای توکن JWT
type Claims struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

// UserService سرویس مدیریت کاربران
type UserService struct {
	UserRepository userPort.UserRepository
	jwtKey         []byte
}

func NewUserService(repo userPort.UserRepository, jwtKey []byte) *UserService {
	return &UserService{
		UserRepository: repo,
		jwtKey:         jwtKey,
	}
}

// RegisterUser ثبت‌نام کاربر جدید
func (s *UserService) RegisterUser(ctx context.Context, in userPort.RegisterInput) (*userPort.UserDTO, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	switch {
	case in.Username == "":
		return nil, apperr.NewValidationError("username", "This field is required.")
	case in.Email == "":
		return nil, apperr.NewValidationError("email", "This field is required.")
	case in.Password == "":
		return nil, apperr.NewValidationError("password", "This field is required.")
	}

	// بررسی اینکه آیا کاربر با این یوزرنیم یا ایمیل قبلاً ثبت شده است
	existing, err := s.UserRepository.FindByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil && !apperr.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.NewValidationError("username", "A user with that username or email already exists.")
	}

	// هش کردن پسورد
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.NewInternalError(err)
	}

	u, err := s.UserRepository.Create(ctx, &userEntity.User{
		Name:     in.Name,
		Family:   in.Family,
		Username: in.Username,
		Email:    in.Email,
		Password: string(hashed),
	})
	if err != nil {
		return nil, err
	}
	config.Logger.Info("User registered", zap.String("userID", u.ID.String()), zap.String("username", u.Username))
	return userPort.ToDTO(u), nil
}

// LoginUser ورود کاربر و صدور توکن JWT
func (s *UserService) LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error) {
	invalid := apperr.NewValidationError("credentials", "Please enter a correct username and password.")

	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		if apperr.IsNotFound(err) {
			config.Logger.Warn("Login for unknown user", zap.String("username", username))
			return nil, invalid
		}
		return nil, err
	}

	// مقایسه پسورد هش‌شده
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		config.Logger.Warn("Invalid password", zap.String("username", username))
		return nil, invalid
	}

	expiresAt := time.Now().Add(tokenLifetime)
	token, err := s.generateJWT(u, expiresAt)
	if err != nil {
		config.Logger.Error("Error generating JWT", zap.Error(err))
		return nil, apperr.NewInternalError(err)
	}

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// generateJWT برای تولید توکن JWT
func (s *UserService) generateJWT(u *userEntity.User, expiresAt time.Time) (string, error) {
	claims := &Claims{
		Username: u.Username,
		StandardClaims: jwt.StandardClaims{
			Subject:   u.ID.String(),
			Issuer:    tokenIssuer,
			ExpiresAt: expiresAt.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

var ErrInvalidToken = errors.New("invalid token")

// ParseToken turns a signed token back into the actor it was issued to.
func (s *UserService) ParseToken(raw string) (access.Actor, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.jwtKey, nil
	})
	if err != nil || !token.Valid {
		return access.Anonymous, ErrInvalidToken
	}
	id, err := uuid.FromString(claims.Subject)
	if err != nil || id == uuid.Nil {
		return access.Anonymous, ErrInvalidToken
	}
	return access.Actor{ID: id, Username: claims.Username}, nil
}

// GetByUsername پروفایل عمومی کاربر
func (s *UserService) GetByUsername(ctx context.Context, username string) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return userPort.ToDTO(u), nil
}
