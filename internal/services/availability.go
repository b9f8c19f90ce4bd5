package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"order-catalog/internal/dto"
	"order-catalog/internal/repositories"
	apperrors "order-catalog/pkg/errors"
	"order-catalog/pkg/schedule"
)

// AvailabilityService is the only writer of a branch's operating hours and
// open flag. Availability reads are computed live against the configured
// platform timezone and are never cached.
type AvailabilityService struct {
	branchRepo repositories.BranchRepositoryInterface
	location   *time.Location
	logger     *zap.Logger
	now        func() time.Time
}

func NewAvailabilityService(
	branchRepo repositories.BranchRepositoryInterface,
	location *time.Location,
	logger *zap.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		branchRepo: branchRepo,
		location:   location,
		logger:     logger,
		now:        time.Now,
	}
}

// UpdateOperatingHours validates and persists a full week atomically, then
// recomputes the open flag at the current wall-clock time. A vendor updating
// hours can therefore flip their branch open or offline without touching the
// explicit toggle.
func (s *AvailabilityService) UpdateOperatingHours(ctx context.Context, branchID uint64, hours schedule.Week) (*dto.BranchDTO, error) {
	s.logger.Info("updating operating hours", zap.Uint64("branchID", branchID))

	branch, err := s.branchRepo.FindBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if err := authorizeBranchOwner(ctx, branch); err != nil {
		return nil, err
	}

	if err := hours.Validate(); err != nil {
		var slotErr *schedule.SlotError
		if errors.As(err, &slotErr) {
			return nil, apperrors.NewValidationError(
				"Operating hours validation failed",
				map[string]string{strings.ToLower(slotErr.Day): slotErr.Error()},
			)
		}
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	now := s.now().In(s.location)
	isOpen := schedule.OpenAt(hours[schedule.DayKey(now.Weekday())], schedule.MinuteOfDay(now))

	if err := s.branchRepo.SetOperatingHours(ctx, branchID, hours, isOpen); err != nil {
		return nil, err
	}

	branch.OperatingHours = hours
	branch.IsOpen = isOpen

	s.logger.Info("operating hours updated",
		zap.Uint64("branchID", branchID),
		zap.Bool("isOpen", isOpen),
	)
	return toBranchDTO(branch), nil
}

// ToggleBranchStatus sets the vendor's manual online/offline flag. Hours and
// menu version are untouched.
func (s *AvailabilityService) ToggleBranchStatus(ctx context.Context, branchID uint64, isOpen bool) (*dto.BranchDTO, error) {
	s.logger.Info("toggling branch status", zap.Uint64("branchID", branchID), zap.Bool("isOpen", isOpen))

	branch, err := s.branchRepo.FindBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if err := authorizeBranchOwner(ctx, branch); err != nil {
		return nil, err
	}

	if err := s.branchRepo.SetOpen(ctx, branchID, isOpen); err != nil {
		return nil, err
	}

	branch.IsOpen = isOpen
	return toBranchDTO(branch), nil
}

// GetOperatingHours is a public read of the configured week and toggle.
func (s *AvailabilityService) GetOperatingHours(ctx context.Context, branchID uint64) (*dto.OperatingHoursResponseDTO, error) {
	branch, err := s.branchRepo.FindBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	return &dto.OperatingHoursResponseDTO{
		BranchID:       branch.ID,
		OperatingHours: branch.OperatingHours,
		IsOpen:         branch.IsOpen,
	}, nil
}

// CheckAvailability builds the live snapshot: stored flags, the computed
// within-hours state, the derived status and the next boundaries.
func (s *AvailabilityService) CheckAvailability(ctx context.Context, branchID uint64) (*dto.AvailabilityDTO, error) {
	branch, err := s.branchRepo.FindBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.location)
	minute := schedule.MinuteOfDay(now)
	today := now.Weekday()

	todayHours := branch.OperatingHours[schedule.DayKey(today)]
	if todayHours == nil {
		todayHours = []schedule.TimeSlot{}
	}
	within := schedule.OpenAt(todayHours, minute)

	snapshot := &dto.AvailabilityDTO{
		BranchID:               branch.ID,
		IsOpen:                 branch.IsOpen,
		IsActive:               branch.IsActive,
		IsWithinOperatingHours: within,
		CurrentStatus:          schedule.StatusOf(branch.IsOpen, within),
		TodayHours:             todayHours,
	}
	if next, ok := schedule.NextOpenTime(branch.OperatingHours, today, minute); ok {
		snapshot.NextOpenTime = &next
	}
	if next, ok := schedule.NextCloseTime(todayHours, minute); ok {
		snapshot.NextCloseTime = &next
	}
	return snapshot, nil
}
