package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/NithinS0/Skill-Hive/internal/logger"
	"github.com/NithinS0/Skill-Hive/internal/models"
)

// Error variables
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnknownSkill       = errors.New("skill does not exist")
)

// CredentialReader defines read-only operations for credentials.
type CredentialReader interface {
	GetByUsername(ctx context.Context, username string) (*models.CredentialDB, error)
}

// CredentialWriter defines write operations for credentials.
type CredentialWriter interface {
	Save(ctx context.Context, username, passwordHash, role string) (int64, error)
	SaveIfAbsent(ctx context.Context, username, passwordHash, role string) (bool, error)
}

// UserProfileWriter creates user profiles at registration.
type UserProfileWriter interface {
	Save(ctx context.Context, u models.UserDB) (int64, error)
}

// WorkerProfileWriter creates worker profiles and their skill sets at registration.
type WorkerProfileWriter interface {
	Save(ctx context.Context, w models.WorkerDB) (int64, error)
	ReplaceSkills(ctx context.Context, workerID int64, skillIDs []int64) error
}

// SkillVerifier checks that a skill id names an existing catalog entry.
type SkillVerifier interface {
	GetByID(ctx context.Context, skillID int64) (*models.SkillDB, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, loginID int64, role string) (string, error)
}

// AuthService handles registration, login, and the bootstrap admin seed.
type AuthService struct {
	credReader   CredentialReader
	credWriter   CredentialWriter
	userWriter   UserProfileWriter
	workerWriter WorkerProfileWriter
	skills       SkillVerifier
	jwt          JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	credReader CredentialReader,
	credWriter CredentialWriter,
	userWriter UserProfileWriter,
	workerWriter WorkerProfileWriter,
	skills SkillVerifier,
	jwt JWTGenerator,
) *AuthService {
	return &AuthService{
		credReader:   credReader,
		credWriter:   credWriter,
		userWriter:   userWriter,
		workerWriter: workerWriter,
		skills:       skills,
		jwt:          jwt,
	}
}

// RegisterUser creates a User credential and its profile in one unit.
func (svc *AuthService) RegisterUser(ctx context.Context, username, password string, profile models.UserDB) error {
	cred, err := svc.credReader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return err
	}
	if cred != nil {
		logger.Log.Errorw("username already exists", "username", username)
		return ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	credID, err := svc.credWriter.Save(ctx, username, string(hashedPassword), models.RoleUser)
	if err != nil {
		logger.Log.Errorw("failed to save credential", "err", err)
		return err
	}

	profile.CredentialID = credID
	if _, err := svc.userWriter.Save(ctx, profile); err != nil {
		logger.Log.Errorw("failed to save user profile", "err", err)
		return err
	}

	return nil
}

// RegisterWorker creates a Worker credential, its profile, and its skill set
// in one unit. Every skill id is validated against the catalog first.
func (svc *AuthService) RegisterWorker(ctx context.Context, username, password string, profile models.WorkerDB, skillIDs []int64) error {
	cred, err := svc.credReader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return err
	}
	if cred != nil {
		logger.Log.Errorw("username already exists", "username", username)
		return ErrUsernameTaken
	}

	for _, skillID := range skillIDs {
		skill, err := svc.skills.GetByID(ctx, skillID)
		if err != nil {
			logger.Log.Errorw("failed to look up skill", "skill_id", skillID, "err", err)
			return err
		}
		if skill == nil {
			logger.Log.Errorw("unknown skill at registration", "skill_id", skillID)
			return ErrUnknownSkill
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	credID, err := svc.credWriter.Save(ctx, username, string(hashedPassword), models.RoleWorker)
	if err != nil {
		logger.Log.Errorw("failed to save credential", "err", err)
		return err
	}

	profile.CredentialID = credID
	workerID, err := svc.workerWriter.Save(ctx, profile)
	if err != nil {
		logger.Log.Errorw("failed to save worker profile", "err", err)
		return err
	}

	if len(skillIDs) > 0 {
		if err := svc.workerWriter.ReplaceSkills(ctx, workerID, skillIDs); err != nil {
			logger.Log.Errorw("failed to save worker skills", "err", err)
			return err
		}
	}

	return nil
}

// Login authenticates a credential and returns the identity record with a
// JWT token. When role is non-empty the credential's role must match it.
func (svc *AuthService) Login(ctx context.Context, username, password, role string) (*models.CredentialDB, string, error) {
	cred, err := svc.credReader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get credential", "err", err)
		return nil, "", err
	}
	if cred == nil {
		logger.Log.Errorw("credential does not exist", "username", username)
		return nil, "", ErrInvalidCredentials
	}
	if role != "" && cred.Role != role {
		logger.Log.Errorw("role mismatch at login", "username", username, "role", role)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, cred.CredentialID, cred.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return cred, token, nil
}

// EnsureBootstrapAdmin seeds the admin credential on first startup. The row
// lives in the credential store like any other identity; an existing
// username is left untouched.
func (svc *AuthService) EnsureBootstrapAdmin(ctx context.Context, username, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	inserted, err := svc.credWriter.SaveIfAbsent(ctx, username, string(hashedPassword), models.RoleAdmin)
	if err != nil {
		logger.Log.Errorw("failed to seed bootstrap admin", "err", err)
		return err
	}
	if inserted {
		logger.Log.Infow("bootstrap admin seeded", "username", username)
	}

	return nil
}
