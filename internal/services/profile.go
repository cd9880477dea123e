package services

import (
	"context"
	"errors"

	"github.com/NithinS0/Skill-Hive/internal/logger"
	"github.com/NithinS0/Skill-Hive/internal/models"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrWorkerNotFound = errors.New("worker not found")
)

// CredentialRoleReader re-checks that a credential id carries a given role.
type CredentialRoleReader interface {
	GetByIDAndRole(ctx context.Context, id int64, role string) (*models.CredentialDB, error)
}

// UserProfileReader reads user profiles.
type UserProfileReader interface {
	GetByID(ctx context.Context, userID int64) (*models.UserDB, error)
}

// UserProfileUpdater updates user profiles.
type UserProfileUpdater interface {
	Update(ctx context.Context, u models.UserDB) (bool, error)
}

// WorkerProfileReader reads worker profiles and their skill sets.
type WorkerProfileReader interface {
	GetByCredentialID(ctx context.Context, credentialID int64) (*models.WorkerDB, error)
	GetSkills(ctx context.Context, workerID int64) ([]models.SkillDB, error)
}

// WorkerProfileUpdater updates worker profiles, statuses, and skill sets.
type WorkerProfileUpdater interface {
	Update(ctx context.Context, w models.WorkerDB) (bool, error)
	UpdateStatus(ctx context.Context, workerID int64, status string) (bool, error)
	ReplaceSkills(ctx context.Context, workerID int64, skillIDs []int64) error
}

// ProfileService serves user and worker profile reads and updates.
type ProfileService struct {
	creds        CredentialRoleReader
	userReader   UserProfileReader
	userUpdater  UserProfileUpdater
	workerReader WorkerProfileReader
	workerWriter WorkerProfileUpdater
	skills       SkillVerifier
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(
	creds CredentialRoleReader,
	userReader UserProfileReader,
	userUpdater UserProfileUpdater,
	workerReader WorkerProfileReader,
	workerWriter WorkerProfileUpdater,
	skills SkillVerifier,
) *ProfileService {
	return &ProfileService{
		creds:        creds,
		userReader:   userReader,
		userUpdater:  userUpdater,
		workerReader: workerReader,
		workerWriter: workerWriter,
		skills:       skills,
	}
}

// GetUser returns one user profile.
func (svc *ProfileService) GetUser(ctx context.Context, userID int64) (*models.UserDB, error) {
	user, err := svc.userReader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateUser replaces the mutable fields of a user profile.
func (svc *ProfileService) UpdateUser(ctx context.Context, profile models.UserDB) error {
	ok, err := svc.userUpdater.Update(ctx, profile)
	if err != nil {
		logger.Log.Errorw("failed to update user", "user_id", profile.UserID, "err", err)
		return err
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}

// resolveWorker re-checks the Worker role and resolves the profile owned by
// the credential. Worker-facing routes are keyed by login id.
func (svc *ProfileService) resolveWorker(ctx context.Context, loginID int64) (*models.WorkerDB, error) {
	cred, err := svc.creds.GetByIDAndRole(ctx, loginID, models.RoleWorker)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, ErrWorkerNotFound
	}

	worker, err := svc.workerReader.GetByCredentialID(ctx, loginID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, ErrWorkerNotFound
	}
	return worker, nil
}

// GetWorker returns the worker profile owned by the given login.
func (svc *ProfileService) GetWorker(ctx context.Context, loginID int64) (*models.WorkerDB, error) {
	return svc.resolveWorker(ctx, loginID)
}

// GetWorkerSkills returns the skill set of the worker owned by the given login.
func (svc *ProfileService) GetWorkerSkills(ctx context.Context, loginID int64) ([]models.SkillDB, error) {
	worker, err := svc.resolveWorker(ctx, loginID)
	if err != nil {
		return nil, err
	}
	return svc.workerReader.GetSkills(ctx, worker.WorkerID)
}

// UpdateWorker replaces the mutable fields of a worker profile and, when
// skillIDs is non-nil, swaps the skill set after validating every id.
func (svc *ProfileService) UpdateWorker(ctx context.Context, loginID int64, profile models.WorkerDB, skillIDs []int64) error {
	worker, err := svc.resolveWorker(ctx, loginID)
	if err != nil {
		return err
	}

	if skillIDs != nil {
		for _, skillID := range skillIDs {
			skill, err := svc.skills.GetByID(ctx, skillID)
			if err != nil {
				return err
			}
			if skill == nil {
				logger.Log.Errorw("unknown skill at profile update", "skill_id", skillID)
				return ErrUnknownSkill
			}
		}
	}

	profile.WorkerID = worker.WorkerID
	ok, err := svc.workerWriter.Update(ctx, profile)
	if err != nil {
		logger.Log.Errorw("failed to update worker", "worker_id", worker.WorkerID, "err", err)
		return err
	}
	if !ok {
		return ErrWorkerNotFound
	}

	if skillIDs != nil {
		if err := svc.workerWriter.ReplaceSkills(ctx, worker.WorkerID, skillIDs); err != nil {
			logger.Log.Errorw("failed to replace worker skills", "worker_id", worker.WorkerID, "err", err)
			return err
		}
	}

	return nil
}

// UpdateWorkerStatus sets the worker's free-text availability status.
func (svc *ProfileService) UpdateWorkerStatus(ctx context.Context, loginID int64, status string) error {
	worker, err := svc.resolveWorker(ctx, loginID)
	if err != nil {
		return err
	}

	ok, err := svc.workerWriter.UpdateStatus(ctx, worker.WorkerID, status)
	if err != nil {
		logger.Log.Errorw("failed to update worker status", "worker_id", worker.WorkerID, "err", err)
		return err
	}
	if !ok {
		return ErrWorkerNotFound
	}
	return nil
}
