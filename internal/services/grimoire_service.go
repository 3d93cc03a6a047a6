package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/magickal-mortalz/coven-service/internal/audit"
	"github.com/magickal-mortalz/coven-service/internal/models"
	"github.com/magickal-mortalz/coven-service/internal/repositories"
	"github.com/magickal-mortalz/coven-service/internal/utils"
	"github.com/magickal-mortalz/coven-service/internal/validator"
)

type grimoireService struct {
	repo      repositories.Repository
	recorder  audit.Recorder
	validator *validator.Validator
	ids       utils.IDGenerator
	clock     utils.Clock
	logger    *slog.Logger
}

func NewGrimoireService(
	repo repositories.Repository,
	recorder audit.Recorder,
	v *validator.Validator,
	ids utils.IDGenerator,
	clock utils.Clock,
	logger *slog.Logger,
) GrimoireService {
	return &grimoireService{
		repo:      repo,
		recorder:  recorder,
		validator: v,
		ids:       ids,
		clock:     clock,
		logger:    logger,
	}
}

func (s *grimoireService) Create(ctx context.Context, memberID string, req *CreateGrimoireEntryRequest) (*models.GrimoireEntry, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, errs
	}

	now := s.clock.Now()
	entry := &models.GrimoireEntry{
		ID:           s.ids.NewID("GRM"),
		MemberID:     memberID,
		EntryType:    req.EntryType,
		Title:        req.Title,
		Content:      req.Content,
		Tags:         req.Tags,
		CreatedDate:  now,
		ModifiedDate: now,
		IsPrivate:    true,
		Category:     req.Category,
	}
	if entry.EntryType == "" {
		entry.EntryType = "Note"
	}
	if entry.Title == "" {
		entry.Title = "Untitled Entry"
	}
	if entry.Category == "" {
		entry.Category = models.DefaultGrimoireCategory
	}
	if req.IsPrivate != nil {
		entry.IsPrivate = *req.IsPrivate
	}

	if err := s.repo.Grimoire().Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create grimoire entry: %w", err)
	}

	s.recorder.Record(ctx, memberID, models.ActionGrimoireEntryCreated, entry.Title)
	return entry, nil
}

func (s *grimoireService) List(ctx context.Context, memberID, category string) (*GrimoireResponse, error) {
	entries, err := s.repo.Grimoire().ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("list grimoire entries: %w", err)
	}

	stats := GrimoireStats{ByCategory: make(map[string]int)}
	for _, c := range models.GrimoireCategories {
		stats.ByCategory[c.ID] = 0
	}
	for _, e := range entries {
		stats.ByCategory[e.Category]++
	}

	filtered := entries
	if category != "" && category != "all" {
		filtered = make([]*models.GrimoireEntry, 0, len(entries))
		for _, e := range entries {
			if e.Category == category {
				filtered = append(filtered, e)
			}
		}
	}
	stats.TotalEntries = len(filtered)

	// Most recently worked-on first.
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].ModifiedDate.After(filtered[j].ModifiedDate)
	})

	return &GrimoireResponse{
		Entries:    filtered,
		Stats:      stats,
		Categories: models.GrimoireCategories,
	}, nil
}

func (s *grimoireService) Update(ctx context.Context, entryID string, req *UpdateGrimoireEntryRequest) error {
	if errs := s.validator.Validate(req); errs != nil {
		return errs
	}

	entry, err := s.repo.Grimoire().GetByID(ctx, entryID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrEntryNotFound
	}
	if err != nil {
		return fmt.Errorf("update grimoire entry: %w", err)
	}

	now := s.clock.Now()
	patch := repositories.GrimoirePatch{
		EntryType:    req.EntryType,
		Title:        req.Title,
		Content:      req.Content,
		Tags:         req.Tags,
		IsPrivate:    req.IsPrivate,
		Category:     req.Category,
		ModifiedDate: &now,
	}
	if err := s.repo.Grimoire().Update(ctx, entryID, patch); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEntryNotFound
		}
		return fmt.Errorf("update grimoire entry: %w", err)
	}

	title := entry.Title
	if req.Title != nil {
		title = *req.Title
	}
	s.recorder.Record(ctx, entry.MemberID, models.ActionGrimoireEntryUpdated, title)
	return nil
}

func (s *grimoireService) Delete(ctx context.Context, entryID string) error {
	entry, err := s.repo.Grimoire().GetByID(ctx, entryID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrEntryNotFound
	}
	if err != nil {
		return fmt.Errorf("delete grimoire entry: %w", err)
	}

	if err := s.repo.Grimoire().Delete(ctx, entryID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEntryNotFound
		}
		return fmt.Errorf("delete grimoire entry: %w", err)
	}

	s.recorder.Record(ctx, entry.MemberID, models.ActionGrimoireEntryDeleted, entry.Title)
	return nil
}
