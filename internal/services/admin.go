package services

import (
	"context"

	"github.com/NithinS0/Skill-Hive/internal/logger"
	"github.com/NithinS0/Skill-Hive/internal/models"
)

// UserLister lists registered user profiles.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
	GetByID(ctx context.Context, userID int64) (*models.UserDB, error)
}

// WorkerLister lists registered worker accounts.
type WorkerLister interface {
	List(ctx context.Context) ([]models.WorkerAccount, error)
	GetByID(ctx context.Context, workerID int64) (*models.WorkerDB, error)
}

// CredentialRemover deletes a credential. Profile rows and skill links
// hang off the credential and go with it.
type CredentialRemover interface {
	Delete(ctx context.Context, credentialID int64) (bool, error)
}

// AssignmentReleaser returns a worker's Accepted requests to the pool.
type AssignmentReleaser interface {
	ReleaseAllForWorker(ctx context.Context, workerID int64) (int64, error)
}

// AdminService backs the admin surface: account listings and removals.
type AdminService struct {
	users    UserLister
	workers  WorkerLister
	creds    CredentialRemover
	requests AssignmentReleaser
}

// NewAdminService creates a new AdminService.
func NewAdminService(users UserLister, workers WorkerLister, creds CredentialRemover, requests AssignmentReleaser) *AdminService {
	return &AdminService{users: users, workers: workers, creds: creds, requests: requests}
}

// ListUsers returns every user profile.
func (svc *AdminService) ListUsers(ctx context.Context) ([]models.UserDB, error) {
	return svc.users.List(ctx)
}

// ListWorkers returns every worker account with its login name.
func (svc *AdminService) ListWorkers(ctx context.Context) ([]models.WorkerAccount, error) {
	return svc.workers.List(ctx)
}

// DeleteUser removes a user account by deleting its credential; the
// profile cascades.
func (svc *AdminService) DeleteUser(ctx context.Context, userID int64) error {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	existed, err := svc.creds.Delete(ctx, user.CredentialID)
	if err != nil {
		return err
	}
	if !existed {
		return ErrUserNotFound
	}

	logger.Log.Infow("user account deleted", "user_id", userID)
	return nil
}

// DeleteWorker removes a worker account by deleting its credential; the
// profile and skill links cascade.
func (svc *AdminService) DeleteWorker(ctx context.Context, workerID int64) error {
	worker, err := svc.workers.GetByID(ctx, workerID)
	if err != nil {
		return err
	}
	if worker == nil {
		return ErrWorkerNotFound
	}

	// Return any job the worker still holds to the pool first. Otherwise
	// the foreign key would leave those rows Accepted with no worker.
	released, err := svc.requests.ReleaseAllForWorker(ctx, workerID)
	if err != nil {
		return err
	}

	existed, err := svc.creds.Delete(ctx, worker.CredentialID)
	if err != nil {
		return err
	}
	if !existed {
		return ErrWorkerNotFound
	}

	logger.Log.Infow("worker account deleted", "worker_id", workerID, "released_requests", released)
	return nil
}
