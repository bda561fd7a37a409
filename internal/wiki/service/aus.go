package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/auswiki/auswiki/internal/wiki/domain"
	"github.com/auswiki/auswiki/internal/wiki/store"
	"github.com/auswiki/auswiki/pkg/idx"
	"github.com/auswiki/auswiki/pkg/slogx"
)

var (
	ErrAUNotFound      = errors.New("service: au not found")
	ErrMissingAUFields = errors.New("service: name, author and desc are required")
)

// AUService implements listing, creating and deleting AU records.
type AUService struct {
	Store store.Store
}

// CreateAUParams are the caller-supplied fields of a new record. Link is
// optional; everything else is required.
type CreateAUParams struct {
	Name   string
	Author string
	Desc   string
	Link   string
}

// ListAUs returns all records newest-first with creator usernames resolved.
func (s *AUService) ListAUs(ctx context.Context) ([]domain.AUWithCreator, error) {
	list, err := s.Store.AUs().ListAUs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list aus: %w", err)
	}
	return list, nil
}

// CreateAU validates and inserts a new record owned by creatorID.
func (s *AUService) CreateAU(ctx context.Context, creatorID string, p CreateAUParams) (domain.AU, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Author = strings.TrimSpace(p.Author)
	p.Desc = strings.TrimSpace(p.Desc)
	p.Link = strings.TrimSpace(p.Link)

	if p.Name == "" || p.Author == "" || p.Desc == "" {
		return domain.AU{}, ErrMissingAUFields
	}

	au := domain.AU{
		ID:        idx.New().String(),
		Name:      p.Name,
		Author:    p.Author,
		Desc:      p.Desc,
		Link:      p.Link,
		CreatedBy: creatorID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Store.AUs().CreateAU(ctx, au); err != nil {
		return domain.AU{}, fmt.Errorf("create au: %w", err)
	}

	slogx.FromContext(ctx).Info("au created",
		slog.String("au_id", au.ID),
		slog.String("name", au.Name),
		slog.String("created_by", au.CreatedBy),
	)

	return au, nil
}

// DeleteAU removes a record after checking the caller owns it.
// Returns ErrAUNotFound for a missing record and ErrNotOwner when the
// caller is somebody else.
func (s *AUService) DeleteAU(ctx context.Context, callerID, auID string) error {
	au, err := s.Store.AUs().GetAUByID(ctx, auID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAUNotFound
		}
		return fmt.Errorf("get au: %w", err)
	}

	if err := AuthorizeOwner(callerID, au.CreatedBy); err != nil {
		return err
	}

	if err := s.Store.AUs().DeleteAU(ctx, auID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAUNotFound
		}
		return fmt.Errorf("delete au: %w", err)
	}

	slogx.FromContext(ctx).Info("au deleted",
		slog.String("au_id", auID),
		slog.String("deleted_by", callerID),
	)

	return nil
}
