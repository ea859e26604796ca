package services

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/simplify-dev/simplify/internal/apperr"
	"github.com/simplify-dev/simplify/internal/auth"
	"github.com/simplify-dev/simplify/internal/models"
)

// Identity resolves callers and manages credentials. Every other service
// receives an already-resolved *models.User from the middleware, which goes
// through Resolve on each request.
type Identity struct {
	db     *gorm.DB
	tokens *auth.TokenIssuer
	log    *zap.Logger
}

func NewIdentity(db *gorm.DB, tokens *auth.TokenIssuer, log *zap.Logger) *Identity {
	return &Identity{db: db, tokens: tokens, log: log}
}

type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	Role        string
	CollegeName string
	Skills      string
}

// Register creates a user and returns a signed session token. The plaintext
// password is never stored; college/skills only apply to students.
func (s *Identity) Register(in RegisterInput) (*models.User, string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, "", apperr.Invalid("Missing required fields")
	}
	if !models.ValidRegistrationRole(in.Role) {
		return nil, "", apperr.Invalid("Invalid role")
	}

	var existing models.User
	err := s.db.Where("email = ?", in.Email).First(&existing).Error
	if err == nil {
		return nil, "", apperr.Conflict("Email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", apperr.Internal(err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}

	user := models.User{
		LoginID:      auth.NewLoginID(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(passwordHash),
		Role:         in.Role,
	}
	if in.Role == models.RoleStudent {
		user.CollegeName = in.CollegeName
		user.Skills = in.Skills
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", apperr.Conflict("Email already registered")
		}
		return nil, "", apperr.Internal(err)
	}

	token, err := s.tokens.Issue(user.ID, user.LoginID)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}

	s.log.Info("user registered", zap.Uint("user_id", user.ID), zap.String("role", user.Role))
	return &user, token, nil
}

// Login verifies credentials and returns a fresh session token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *Identity) Login(email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", apperr.Invalid("Email and password are required")
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperr.Unauthorized("Invalid email or password")
		}
		return nil, "", apperr.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperr.Unauthorized("Invalid email or password")
	}

	now := time.Now()
	if err := s.db.Model(&user).Update("last_login_at", now).Error; err != nil {
		return nil, "", apperr.Internal(err)
	}
	user.LastLoginAt = &now

	token, err := s.tokens.Issue(user.ID, user.LoginID)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}

	return &user, token, nil
}

// Resolve authenticates a session token: signature and expiry via the issuer,
// then the login_id claim against the stored value so rotated users are
// locked out immediately.
func (s *Identity) Resolve(token string) (*models.User, error) {
	userID, loginID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("Invalid or expired token")
		}
		return nil, apperr.Internal(err)
	}

	if user.LoginID != loginID {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}

	return &user, nil
}

// Rotate replaces the user's login id, invalidating all outstanding tokens,
// and returns a token minted against the new id.
func (s *Identity) Rotate(user *models.User) (string, error) {
	newLoginID := auth.NewLoginID()
	if err := s.db.Model(user).Update("login_id", newLoginID).Error; err != nil {
		return "", apperr.Internal(err)
	}
	user.LoginID = newLoginID

	token, err := s.tokens.Issue(user.ID, newLoginID)
	if err != nil {
		return "", apperr.Internal(err)
	}

	s.log.Info("login id rotated", zap.Uint("user_id", user.ID))
	return token, nil
}
