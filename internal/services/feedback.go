package services

import (
	"context"
	"errors"

	"github.com/NithinS0/Skill-Hive/internal/models"
)

// Error variables
var (
	ErrFeedbackExists   = errors.New("feedback already submitted for this work request")
	ErrFeedbackNotFound = errors.New("feedback not found")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
)

// FeedbackReader defines read operations over feedback entries.
type FeedbackReader interface {
	GetByRequestID(ctx context.Context, requestID int64) (*models.FeedbackDetail, error)
	ListAll(ctx context.Context) ([]models.FeedbackDetail, error)
	ListByWorkerID(ctx context.Context, workerID int64) ([]models.FeedbackDetail, error)
}

// FeedbackWriter persists feedback entries.
type FeedbackWriter interface {
	Save(ctx context.Context, fb models.FeedbackDB) (bool, error)
}

// FeedbackService maintains the one-entry-per-request feedback ledger.
type FeedbackService struct {
	reader  FeedbackReader
	writer  FeedbackWriter
	reqs    WorkRequestReader
	creds   CredentialRoleReader
	workers WorkerProfileReader
}

// NewFeedbackService creates a new FeedbackService.
func NewFeedbackService(
	reader FeedbackReader,
	writer FeedbackWriter,
	reqs WorkRequestReader,
	creds CredentialRoleReader,
	workers WorkerProfileReader,
) *FeedbackService {
	return &FeedbackService{
		reader:  reader,
		writer:  writer,
		reqs:    reqs,
		creds:   creds,
		workers: workers,
	}
}

// Submit records feedback for a work request owned by this user. A request
// takes at most one feedback entry; a second submission is rejected.
func (svc *FeedbackService) Submit(ctx context.Context, userID int64, fb models.FeedbackDB) error {
	if fb.Rating < 1 || fb.Rating > 5 {
		return ErrInvalidRating
	}

	req, err := svc.reqs.GetByID(ctx, fb.RequestID)
	if err != nil {
		return err
	}
	if req == nil || req.UserID != userID {
		return ErrWorkRequestNotFound
	}

	inserted, err := svc.writer.Save(ctx, fb)
	if err != nil {
		return err
	}
	if !inserted {
		return ErrFeedbackExists
	}
	return nil
}

// GetByRequest returns the feedback for a single work request.
func (svc *FeedbackService) GetByRequest(ctx context.Context, requestID int64) (*models.FeedbackDetail, error) {
	fb, err := svc.reader.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if fb == nil {
		return nil, ErrFeedbackNotFound
	}
	return fb, nil
}

// ListAll returns every feedback entry, for the admin surface.
func (svc *FeedbackService) ListAll(ctx context.Context) ([]models.FeedbackDetail, error) {
	return svc.reader.ListAll(ctx)
}

// ListForWorker returns the feedback left on requests completed by the
// worker owned by the login.
func (svc *FeedbackService) ListForWorker(ctx context.Context, loginID int64) ([]models.FeedbackDetail, error) {
	cred, err := svc.creds.GetByIDAndRole(ctx, loginID, models.RoleWorker)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, ErrWorkerNotFound
	}

	worker, err := svc.workers.GetByCredentialID(ctx, loginID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, ErrWorkerNotFound
	}

	return svc.reader.ListByWorkerID(ctx, worker.WorkerID)
}
