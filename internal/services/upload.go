package services

import (
	"context"

	"github.com/dmitrijs2005/imgkeeper/internal/common"
	"github.com/dmitrijs2005/imgkeeper/internal/history"
	"github.com/dmitrijs2005/imgkeeper/internal/logging"
	"github.com/dmitrijs2005/imgkeeper/internal/models"
	"github.com/dmitrijs2005/imgkeeper/internal/session"
	"github.com/dmitrijs2005/imgkeeper/internal/upload"
	"github.com/google/uuid"
)

// ProgressFunc is called before the n-th (1-based) of total uploads starts.
type ProgressFunc func(n, total int)

// BatchReport summarises a batch upload. Errors holds one entry per failed
// item, in upload order.
type BatchReport struct {
	ID       string
	Total    int
	Uploaded int
	Failed   int
	Skipped  int
	Records  []models.UploadRecord
	Errors   []error
}

type UploadService interface {
	Upload(ctx context.Context, sess *session.Session, src upload.Source) (models.UploadRecord, error)
	UploadBatch(ctx context.Context, sess *session.Session, sources []upload.Source, progress ProgressFunc) (*BatchReport, error)
	Delete(ctx context.Context, sess *session.Session, rec models.UploadRecord) error
}

type uploadService struct {
	provider upload.Provider
	history  *history.Manager
	log      logging.Logger
}

func NewUploadService(provider upload.Provider, history *history.Manager, log logging.Logger) UploadService {
	return &uploadService{provider: provider, history: history, log: log}
}

func (s *uploadService) checkCredential(sess *session.Session, action string) error {
	if s.provider.RequiresCredential() && !sess.HasClientID() {
		return &common.MissingCredentialError{Action: action}
	}
	return nil
}

// Upload sends one source and records it in the current folder. A failed
// upload leaves the history untouched.
func (s *uploadService) Upload(ctx context.Context, sess *session.Session, src upload.Source) (models.UploadRecord, error) {
	if err := s.checkCredential(sess, "upload"); err != nil {
		return models.UploadRecord{}, err
	}
	return s.uploadOne(ctx, sess, src)
}

func (s *uploadService) uploadOne(ctx context.Context, sess *session.Session, src upload.Source) (models.UploadRecord, error) {
	res, err := s.provider.Upload(ctx, src, sess.ClientID)
	if err != nil {
		return models.UploadRecord{}, err
	}
	return s.history.Append(ctx, sess, res.Link, res.Deletehash)
}

// UploadBatch uploads the image sources one after another. Non-image
// sources are skipped; a failed item does not stop the batch.
func (s *uploadService) UploadBatch(ctx context.Context, sess *session.Session, sources []upload.Source, progress ProgressFunc) (*BatchReport, error) {
	if err := s.checkCredential(sess, "upload"); err != nil {
		return nil, err
	}

	images := make([]upload.Source, 0, len(sources))
	for _, src := range sources {
		if upload.IsImage(src) {
			images = append(images, src)
		}
	}
	if len(images) == 0 {
		return nil, common.ErrNoImages
	}

	report := &BatchReport{
		ID:      uuid.NewString(),
		Total:   len(images),
		Skipped: len(sources) - len(images),
	}
	log := s.log.With("batch", report.ID)
	log.Info(ctx, "batch upload started", "images", report.Total, "skipped", report.Skipped)

	for i, src := range images {
		if progress != nil {
			progress(i+1, report.Total)
		}

		rec, err := s.uploadOne(ctx, sess, src)
		if err != nil {
			log.Warn(ctx, "upload failed", "source", src.String(), "error", err)
			report.Failed++
			report.Errors = append(report.Errors, err)
			continue
		}
		report.Uploaded++
		report.Records = append(report.Records, rec)
	}

	log.Info(ctx, "batch upload finished", "uploaded", report.Uploaded, "failed", report.Failed)
	return report, nil
}

// Delete removes the image remotely, then drops its records. When the
// remote call fails the records are kept.
func (s *uploadService) Delete(ctx context.Context, sess *session.Session, rec models.UploadRecord) error {
	if err := s.checkCredential(sess, "delete"); err != nil {
		return err
	}

	if err := s.provider.Delete(ctx, rec.Deletehash, sess.ClientID); err != nil {
		s.log.Warn(ctx, "remote delete failed", "deletehash", rec.Deletehash, "error", err)
		return err
	}

	_, err := s.history.Remove(ctx, rec.Deletehash, rec.Folder)
	return err
}
