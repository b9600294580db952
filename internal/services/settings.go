package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/imgkeeper/internal/common"
	"github.com/dmitrijs2005/imgkeeper/internal/logging"
	"github.com/dmitrijs2005/imgkeeper/internal/session"
	"github.com/dmitrijs2005/imgkeeper/internal/storage"
)

type SettingsService interface {
	SetClientID(ctx context.Context, sess *session.Session, id string) error
	SetThumbnailSize(ctx context.Context, sess *session.Session, px int) error
}

type settingsService struct {
	store storage.Store
	log   logging.Logger
}

func NewSettingsService(store storage.Store, log logging.Logger) SettingsService {
	return &settingsService{store: store, log: log}
}

func (s *settingsService) SetClientID(ctx context.Context, sess *session.Session, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return &common.InvalidOperationError{Op: "set client id", Reason: "client id is empty"}
	}

	if err := s.store.SaveClientID(ctx, id); err != nil {
		return err
	}

	sess.ClientID = id
	s.log.Info(ctx, "client id updated")
	return nil
}

func (s *settingsService) SetThumbnailSize(ctx context.Context, sess *session.Session, px int) error {
	if px < common.MinThumbnailSize || px > common.MaxThumbnailSize {
		return &common.InvalidOperationError{
			Op:     "set thumbnail size",
			Reason: fmt.Sprintf("size must be between %d and %d", common.MinThumbnailSize, common.MaxThumbnailSize),
		}
	}

	if err := s.store.SaveThumbnailSize(ctx, px); err != nil {
		return err
	}

	sess.ThumbnailSize = px
	return nil
}
