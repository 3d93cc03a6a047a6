package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magickal-mortalz/coven-service/internal/audit"
	"github.com/magickal-mortalz/coven-service/internal/models"
	"github.com/magickal-mortalz/coven-service/internal/repositories"
	"github.com/magickal-mortalz/coven-service/internal/utils"
	"github.com/magickal-mortalz/coven-service/internal/validator"
)

type memberService struct {
	repo       repositories.Repository
	curriculum CurriculumService
	recorder   audit.Recorder
	validator  *validator.Validator
	ids        utils.IDGenerator
	clock      utils.Clock
	logger     *slog.Logger
}

func NewMemberService(
	repo repositories.Repository,
	curriculum CurriculumService,
	recorder audit.Recorder,
	v *validator.Validator,
	ids utils.IDGenerator,
	clock utils.Clock,
	logger *slog.Logger,
) MemberService {
	return &memberService{
		repo:       repo,
		curriculum: curriculum,
		recorder:   recorder,
		validator:  v,
		ids:        ids,
		clock:      clock,
		logger:     logger,
	}
}

// Create registers a member at the lowest degree and seeds the first
// curriculum year. Member creation and seeding are two store operations
// without a shared transaction; seeding is idempotent so a retry after a
// partial failure is safe.
func (s *memberService) Create(ctx context.Context, req *CreateMemberRequest) (*models.Member, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, errs
	}

	now := s.clock.Now()
	member := &models.Member{
		ID:            s.ids.NewID("MEM"),
		Email:         req.Email,
		CraftName:     req.CraftName,
		RealName:      req.RealName,
		JoinDate:      now,
		CurrentDegree: models.DegreeNeophyte,
		Avatar:        req.Avatar,
		Bio:           req.Bio,
		IsActive:      true,
		LastLogin:     now,
	}
	if member.Avatar == "" {
		member.Avatar = models.DefaultAvatar
	}

	if err := s.repo.Member().Create(ctx, member); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}
	s.recorder.Record(ctx, member.ID, models.ActionMemberCreated,
		fmt.Sprintf("New member: %s", member.CraftName))

	if err := s.curriculum.SeedYear(ctx, member.ID, 1); err != nil {
		return nil, fmt.Errorf("seed first year: %w", err)
	}

	s.logger.InfoContext(ctx, "member created", "member_id", member.ID, "craft_name", member.CraftName)
	return member, nil
}

func (s *memberService) Get(ctx context.Context, id string) (*models.Member, error) {
	member, err := s.repo.Member().GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}
	return member, nil
}

func (s *memberService) ListActive(ctx context.Context) ([]*models.Member, error) {
	members, err := s.repo.Member().ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

func (s *memberService) Update(ctx context.Context, id string, req *UpdateMemberRequest) error {
	if errs := s.validator.Validate(req); errs != nil {
		return errs
	}

	patch := repositories.MemberPatch{
		Email:     req.Email,
		CraftName: req.CraftName,
		RealName:  req.RealName,
		Avatar:    req.Avatar,
		Bio:       req.Bio,
		IsActive:  req.IsActive,
	}
	err := s.repo.Member().Update(ctx, id, patch)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrMemberNotFound
	}
	if err != nil {
		return fmt.Errorf("update member: %w", err)
	}

	details, _ := json.Marshal(req)
	s.recorder.Record(ctx, id, models.ActionMemberUpdated, string(details))
	return nil
}
