package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"order-catalog/internal/entities"
	apperrors "order-catalog/pkg/errors"
	"order-catalog/pkg/schedule"
	"order-catalog/pkg/utils"
)

var testOwnerID = uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")

type fakeBranchRepo struct {
	branches map[uint64]*entities.Branch
}

func newFakeBranchRepo(branches ...*entities.Branch) *fakeBranchRepo {
	repo := &fakeBranchRepo{branches: make(map[uint64]*entities.Branch)}
	for _, b := range branches {
		repo.branches[b.ID] = b
	}
	return repo
}

func (r *fakeBranchRepo) GetBranches(ctx context.Context, vendorID uint64, limit, offset uint64) ([]entities.Branch, uint64, error) {
	var out []entities.Branch
	for _, b := range r.branches {
		if b.VendorID == vendorID {
			out = append(out, *b)
		}
	}
	return out, uint64(len(out)), nil
}

func (r *fakeBranchRepo) FindBranch(ctx context.Context, id uint64) (*entities.Branch, error) {
	b, ok := r.branches[id]
	if !ok {
		return nil, apperrors.ErrBranchNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBranchRepo) CreateBranch(ctx context.Context, branch entities.Branch) (uint64, error) {
	id := uint64(len(r.branches) + 1)
	branch.ID = id
	if branch.Vendor == nil {
		// The production query joins the owning vendor into every read.
		branch.Vendor = &entities.Vendor{ID: branch.VendorID, UserID: testOwnerID}
	}
	r.branches[id] = &branch
	return id, nil
}

func (r *fakeBranchRepo) UpdateBranch(ctx context.Context, id uint64, branch entities.Branch) error {
	stored, ok := r.branches[id]
	if !ok {
		return apperrors.ErrBranchNotFound
	}
	branch.ID = id
	branch.Vendor = stored.Vendor
	r.branches[id] = &branch
	return nil
}

func (r *fakeBranchRepo) SetOperatingHours(ctx context.Context, id uint64, hours schedule.Week, isOpen bool) error {
	b, ok := r.branches[id]
	if !ok {
		return apperrors.ErrBranchNotFound
	}
	b.OperatingHours = hours
	b.IsOpen = isOpen
	return nil
}

func (r *fakeBranchRepo) SetOpen(ctx context.Context, id uint64, isOpen bool) error {
	b, ok := r.branches[id]
	if !ok {
		return apperrors.ErrBranchNotFound
	}
	b.IsOpen = isOpen
	return nil
}

func (r *fakeBranchRepo) BumpMenuVersion(ctx context.Context, tx pgx.Tx, id uint64) error {
	b, ok := r.branches[id]
	if !ok {
		return apperrors.ErrBranchNotFound
	}
	b.MenuVersion++
	return nil
}

func (r *fakeBranchRepo) SetOnboardingStatus(ctx context.Context, id uint64, status string) error {
	b, ok := r.branches[id]
	if !ok {
		return apperrors.ErrBranchNotFound
	}
	b.OnboardingStatus = status
	return nil
}

func (r *fakeBranchRepo) IncrementTotalOrders(ctx context.Context, tx pgx.Tx, id uint64) error {
	b, ok := r.branches[id]
	if !ok {
		return apperrors.ErrBranchNotFound
	}
	b.TotalOrders++
	return nil
}

func testBranch() *entities.Branch {
	return &entities.Branch{
		ID:          1,
		VendorID:    10,
		BranchName:  "Koramangala",
		BranchCode:  "0010-BLR-0001",
		City:        "Bangalore",
		IsActive:    true,
		MenuVersion: 1,
		OperatingHours: schedule.Week{
			"MONDAY": {
				{Open: "09:00", Close: "13:00"},
				{Open: "14:00", Close: "22:00"},
			},
		},
		Vendor: &entities.Vendor{ID: 10, UserID: testOwnerID},
	}
}

func ownerCtx() context.Context {
	return utils.WithUserID(context.Background(), testOwnerID)
}

// fixedClock pins the service to Monday 2026-01-05 at the given clock time.
func fixedClock(svc *AvailabilityService, hour, minute int) {
	svc.now = func() time.Time {
		return time.Date(2026, 1, 5, hour, minute, 0, 0, time.UTC)
	}
}

func newAvailabilityService(repo *fakeBranchRepo) *AvailabilityService {
	return NewAvailabilityService(repo, time.UTC, zap.NewNop())
}

func TestUpdateOperatingHours_PersistsAndRecomputesOpen(t *testing.T) {
	repo := newFakeBranchRepo(testBranch())
	svc := newAvailabilityService(repo)
	fixedClock(svc, 10, 0)

	hours := schedule.Week{
		"MONDAY": {{Open: "08:00", Close: "20:00"}},
	}
	res, err := svc.UpdateOperatingHours(ownerCtx(), 1, hours)
	require.NoError(t, err)

	assert.True(t, res.IsOpen, "10:00 falls inside 08:00-20:00")
	stored, _ := repo.FindBranch(context.Background(), 1)
	assert.Equal(t, hours, stored.OperatingHours)
	assert.True(t, stored.IsOpen)
}

func TestUpdateOperatingHours_CanFlipBranchOffline(t *testing.T) {
	repo := newFakeBranchRepo(testBranch())
	repo.branches[1].IsOpen = true
	svc := newAvailabilityService(repo)
	fixedClock(svc, 10, 0)

	hours := schedule.Week{
		"MONDAY": {{Open: "18:00", Close: "23:00"}},
	}
	res, err := svc.UpdateOperatingHours(ownerCtx(), 1, hours)
	require.NoError(t, err)
	assert.False(t, res.IsOpen, "10:00 is outside the new window")
}

func TestUpdateOperatingHours_RejectsInvalidWeekWholesale(t *testing.T) {
	repo := newFakeBranchRepo(testBranch())
	original := repo.branches[1].OperatingHours
	svc := newAvailabilityService(repo)
	fixedClock(svc, 10, 0)

	hours := schedule.Week{
		"MONDAY":  {{Open: "08:00", Close: "20:00"}},
		"TUESDAY": {{Open: "22:00", Close: "09:00"}},
	}
	_, err := svc.UpdateOperatingHours(ownerCtx(), 1, hours)
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Contains(t, httpErr.Fields, "tuesday")

	stored, _ := repo.FindBranch(context.Background(), 1)
	assert.Equal(t, original, stored.OperatingHours, "no partial writes")
}

func TestUpdateOperatingHours_ForbiddenForStranger(t *testing.T) {
	repo := newFakeBranchRepo(testBranch())
	svc := newAvailabilityService(repo)
	fixedClock(svc, 10, 0)

	strangerCtx := utils.WithUserID(context.Background(), uuid.New())
	_, err := svc.UpdateOperatingHours(strangerCtx, 1, schedule.DefaultWeek())
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	stored, _ := repo.FindBranch(context.Background(), 1)
	assert.NotEqual(t, schedule.DefaultWeek(), stored.OperatingHours)
}

func TestUpdateOperatingHours_BranchNotFound(t *testing.T) {
	svc := newAvailabilityService(newFakeBranchRepo())
	_, err := svc.UpdateOperatingHours(ownerCtx(), 99, schedule.DefaultWeek())
	assert.ErrorIs(t, err, apperrors.ErrBranchNotFound)
}

func TestToggleBranchStatus_LeavesHoursAndVersionAlone(t *testing.T) {
	repo := newFakeBranchRepo(testBranch())
	svc := newAvailabilityService(repo)

	res, err := svc.ToggleBranchStatus(ownerCtx(), 1, true)
	require.NoError(t, err)
	assert.True(t, res.IsOpen)

	stored, _ := repo.FindBranch(context.Background(), 1)
	assert.True(t, stored.IsOpen)
	assert.Equal(t, 1, stored.MenuVersion)
	assert.Equal(t, testBranch().OperatingHours, stored.OperatingHours)

	res, err = svc.ToggleBranchStatus(ownerCtx(), 1, false)
	require.NoError(t, err)
	assert.False(t, res.IsOpen)
}

func TestToggleBranchStatus_ForbiddenForStranger(t *testing.T) {
	repo := newFakeBranchRepo(testBranch())
	svc := newAvailabilityService(repo)

	strangerCtx := utils.WithUserID(context.Background(), uuid.New())
	_, err := svc.ToggleBranchStatus(strangerCtx, 1, true)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestGetOperatingHours_PublicRead(t *testing.T) {
	repo := newFakeBranchRepo(testBranch())
	svc := newAvailabilityService(repo)

	res, err := svc.GetOperatingHours(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), res.BranchID)
	assert.Equal(t, testBranch().OperatingHours, res.OperatingHours)
}

func TestCheckAvailability_OpenWithinHours(t *testing.T) {
	repo := newFakeBranchRepo(testBranch())
	repo.branches[1].IsOpen = true
	svc := newAvailabilityService(repo)
	fixedClock(svc, 10, 0)

	res, err := svc.CheckAvailability(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, res.IsWithinOperatingHours)
	assert.Equal(t, schedule.StatusOpen, res.CurrentStatus)
	require.NotNil(t, res.NextCloseTime)
	assert.Equal(t, "13:00", *res.NextCloseTime)
}

func TestCheckAvailability_OfflineWithinHours(t *testing.T) {
	repo := newFakeBranchRepo(testBranch())
	svc := newAvailabilityService(repo)
	fixedClock(svc, 10, 0)

	res, err := svc.CheckAvailability(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, res.IsWithinOperatingHours)
	assert.Equal(t, schedule.StatusOffline, res.CurrentStatus)
}

func TestCheckAvailability_ClosedInLunchGap(t *testing.T) {
	repo := newFakeBranchRepo(testBranch())
	repo.branches[1].IsOpen = true
	svc := newAvailabilityService(repo)
	fixedClock(svc, 13, 30)

	res, err := svc.CheckAvailability(context.Background(), 1)
	require.NoError(t, err)

	assert.False(t, res.IsWithinOperatingHours)
	assert.Equal(t, schedule.StatusClosed, res.CurrentStatus, "manual toggle is ignored outside hours")
	require.NotNil(t, res.NextOpenTime)
	assert.Equal(t, "14:00", *res.NextOpenTime)
	require.NotNil(t, res.NextCloseTime)
	assert.Equal(t, "22:00", *res.NextCloseTime)
}

func TestCheckAvailability_DayWithNoSlots(t *testing.T) {
	repo := newFakeBranchRepo(testBranch())
	svc := newAvailabilityService(repo)
	// Tuesday has no configured slots.
	svc.now = func() time.Time {
		return time.Date(2026, 1, 6, 12, 0, 0, 0, time.UTC)
	}

	res, err := svc.CheckAvailability(context.Background(), 1)
	require.NoError(t, err)

	assert.False(t, res.IsWithinOperatingHours)
	assert.Equal(t, schedule.StatusClosed, res.CurrentStatus)
	assert.Empty(t, res.TodayHours)
	require.NotNil(t, res.NextOpenTime, "next Monday's opening")
	assert.Equal(t, "09:00", *res.NextOpenTime)
	assert.Nil(t, res.NextCloseTime)
}
