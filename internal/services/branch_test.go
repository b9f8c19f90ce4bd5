package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"order-catalog/internal/dto"
	"order-catalog/internal/entities"
	apperrors "order-catalog/pkg/errors"
	"order-catalog/pkg/schedule"
)

type fakeVendorRepo struct {
	vendors map[uint64]*entities.Vendor
}

func newFakeVendorRepo(vendors ...*entities.Vendor) *fakeVendorRepo {
	repo := &fakeVendorRepo{vendors: make(map[uint64]*entities.Vendor)}
	for _, v := range vendors {
		repo.vendors[v.ID] = v
	}
	return repo
}

func (r *fakeVendorRepo) GetVendors(ctx context.Context, limit, offset uint64) ([]entities.Vendor, uint64, error) {
	var out []entities.Vendor
	for _, v := range r.vendors {
		out = append(out, *v)
	}
	return out, uint64(len(out)), nil
}

func (r *fakeVendorRepo) FindVendor(ctx context.Context, id uint64) (*entities.Vendor, error) {
	v, ok := r.vendors[id]
	if !ok {
		return nil, apperrors.ErrVendorNotFound
	}
	cp := *v
	return &cp, nil
}

func (r *fakeVendorRepo) FindVendorByEmail(ctx context.Context, email string) (*entities.Vendor, error) {
	for _, v := range r.vendors {
		if v.Email == email {
			cp := *v
			return &cp, nil
		}
	}
	return nil, apperrors.ErrVendorNotFound
}

func (r *fakeVendorRepo) CreateVendor(ctx context.Context, vendor entities.Vendor) (uint64, error) {
	id := uint64(len(r.vendors) + 1)
	vendor.ID = id
	r.vendors[id] = &vendor
	return id, nil
}

func (r *fakeVendorRepo) UpdateVendor(ctx context.Context, id uint64, vendor entities.Vendor) error {
	if _, ok := r.vendors[id]; !ok {
		return apperrors.ErrVendorNotFound
	}
	vendor.ID = id
	r.vendors[id] = &vendor
	return nil
}

type fakeDocumentRepo struct {
	docs   map[uint64]*entities.BranchDocument
	nextID uint64
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: make(map[uint64]*entities.BranchDocument), nextID: 1}
}

func (r *fakeDocumentRepo) GetDocumentsByBranch(ctx context.Context, branchID uint64) ([]entities.BranchDocument, error) {
	var out []entities.BranchDocument
	for _, d := range r.docs {
		if d.BranchID == branchID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) CreateDocument(ctx context.Context, doc entities.BranchDocument) (uint64, error) {
	doc.ID = r.nextID
	r.nextID++
	r.docs[doc.ID] = &doc
	return doc.ID, nil
}

func testVendor() *entities.Vendor {
	return &entities.Vendor{
		ID:           10,
		UserID:       testOwnerID,
		BusinessName: "Dosa Palace",
		Email:        "owner@dosapalace.example",
		Phone:        "+919800000000",
		BusinessType: "RESTAURANT",
		IsActive:     true,
	}
}

func newBranchFixture() (*BranchService, *fakeBranchRepo, *fakeDocumentRepo) {
	branchRepo := newFakeBranchRepo()
	docRepo := newFakeDocumentRepo()
	svc := NewBranchService(newFakeVendorRepo(testVendor()), branchRepo, docRepo, zap.NewNop())
	return svc, branchRepo, docRepo
}

func TestCreateBranch_DefaultsApplied(t *testing.T) {
	svc, branchRepo, _ := newBranchFixture()

	res, err := svc.CreateBranch(ownerCtx(), 10, dto.CreateBranchDTO{
		BranchName: "Indiranagar",
		Address:    map[string]interface{}{"line1": "100 Feet Rd"},
		City:       "Bangalore",
	})
	require.NoError(t, err)

	assert.Equal(t, entities.OnboardingPending, res.OnboardingStatus)
	assert.False(t, res.IsActive, "activation needs document approval")
	assert.False(t, res.IsOpen)
	assert.Equal(t, 1, res.MenuVersion)
	assert.Equal(t, schedule.DefaultWeek(), res.OperatingHours)
	assert.NotEmpty(t, res.BranchCode)

	stored, err := branchRepo.FindBranch(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, schedule.DefaultWeek(), stored.OperatingHours)
}

func TestCreateBranch_RejectsInvalidHours(t *testing.T) {
	svc, _, _ := newBranchFixture()

	_, err := svc.CreateBranch(ownerCtx(), 10, dto.CreateBranchDTO{
		BranchName: "Indiranagar",
		Address:    map[string]interface{}{"line1": "100 Feet Rd"},
		City:       "Bangalore",
		OperatingHours: schedule.Week{
			"MONDAY": {{Open: "22:00", Close: "09:00"}},
		},
	})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
}

func TestCreateBranch_ForbiddenForStranger(t *testing.T) {
	svc, _, _ := newBranchFixture()

	_, err := svc.CreateBranch(context.Background(), 10, dto.CreateBranchDTO{
		BranchName: "x",
		Address:    map[string]interface{}{},
		City:       "Bangalore",
	})
	assert.Error(t, err)
}

func TestUploadDocument_MovesToDocumentsSubmittedWhenComplete(t *testing.T) {
	svc, branchRepo, _ := newBranchFixture()

	created, err := svc.CreateBranch(ownerCtx(), 10, dto.CreateBranchDTO{
		BranchName: "Indiranagar",
		Address:    map[string]interface{}{},
		City:       "Bangalore",
	})
	require.NoError(t, err)

	for i, docType := range entities.RequiredDocumentTypes {
		res, err := svc.UploadDocument(ownerCtx(), created.ID, dto.UploadDocumentDTO{
			DocumentType: docType,
			DocumentURL:  "https://docs.example/" + docType,
		})
		require.NoError(t, err)
		assert.Equal(t, "PENDING", res.VerificationStatus)

		stored, _ := branchRepo.FindBranch(context.Background(), created.ID)
		if i < len(entities.RequiredDocumentTypes)-1 {
			assert.Equal(t, entities.OnboardingPending, stored.OnboardingStatus)
		} else {
			assert.Equal(t, entities.OnboardingDocumentsSubmitted, stored.OnboardingStatus)
		}
	}
}

func TestGetOnboardingStatus_CountsDocuments(t *testing.T) {
	svc, _, docRepo := newBranchFixture()

	created, err := svc.CreateBranch(ownerCtx(), 10, dto.CreateBranchDTO{
		BranchName: "Indiranagar",
		Address:    map[string]interface{}{},
		City:       "Bangalore",
	})
	require.NoError(t, err)

	_, err = svc.UploadDocument(ownerCtx(), created.ID, dto.UploadDocumentDTO{
		DocumentType: "FSSAI",
		DocumentURL:  "https://docs.example/fssai",
	})
	require.NoError(t, err)
	for _, d := range docRepo.docs {
		d.VerificationStatus = "APPROVED"
	}

	status, err := svc.GetOnboardingStatus(ownerCtx(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, status.TotalDocuments)
	assert.Equal(t, 1, status.ApprovedDocuments)
}
