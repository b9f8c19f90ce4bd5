package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"order-catalog/internal/dto"
	"order-catalog/internal/entities"
	"order-catalog/internal/repositories"
	apperrors "order-catalog/pkg/errors"
	"order-catalog/pkg/schedule"
	"order-catalog/pkg/utils"
)

// BranchService covers branch onboarding: creation with default schedule,
// profile updates and the verification-document flow that gates activation.
type BranchService struct {
	vendorRepo repositories.VendorRepositoryInterface
	branchRepo repositories.BranchRepositoryInterface
	docRepo    repositories.BranchDocumentRepositoryInterface
	logger     *zap.Logger
}

func NewBranchService(
	vendorRepo repositories.VendorRepositoryInterface,
	branchRepo repositories.BranchRepositoryInterface,
	docRepo repositories.BranchDocumentRepositoryInterface,
	logger *zap.Logger,
) *BranchService {
	return &BranchService{
		vendorRepo: vendorRepo,
		branchRepo: branchRepo,
		docRepo:    docRepo,
		logger:     logger,
	}
}

func (s *BranchService) CreateBranch(ctx context.Context, vendorID uint64, in dto.CreateBranchDTO) (*dto.BranchDTO, error) {
	s.logger.Info("creating branch", zap.Uint64("vendorID", vendorID))

	vendor, err := s.vendorRepo.FindVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	callerID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if vendor.UserID != callerID {
		return nil, apperrors.ErrForbidden
	}

	hours := in.OperatingHours
	if hours == nil {
		hours = schedule.DefaultWeek()
	} else if err := hours.Validate(); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	code := in.BranchCode
	if code == "" {
		code = generateBranchCode(vendorID, in.City)
	}

	branch := entities.Branch{
		VendorID:         vendorID,
		BranchName:       in.BranchName,
		BranchCode:       code,
		Address:          in.Address,
		Latitude:         in.Latitude,
		Longitude:        in.Longitude,
		City:             in.City,
		OnboardingStatus: entities.OnboardingPending,
		IsActive:         false,
		IsOpen:           false,
		OperatingHours:   hours,
	}
	if in.DisplayName != "" {
		branch.DisplayName = &in.DisplayName
	}
	if in.BranchPhone != "" {
		branch.BranchPhone = &in.BranchPhone
	}
	if in.BranchEmail != "" {
		branch.BranchEmail = &in.BranchEmail
	}
	if in.ManagerName != "" {
		branch.ManagerName = &in.ManagerName
	}
	if in.ManagerPhone != "" {
		branch.ManagerPhone = &in.ManagerPhone
	}

	newID, err := s.branchRepo.CreateBranch(ctx, branch)
	if err != nil {
		return nil, err
	}

	created, err := s.branchRepo.FindBranch(ctx, newID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("branch created", zap.Uint64("branchID", newID))
	return toBranchDTO(created), nil
}

func (s *BranchService) GetBranch(ctx context.Context, branchID uint64) (*dto.BranchDTO, error) {
	branch, err := s.branchRepo.FindBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	return toBranchDTO(branch), nil
}

func (s *BranchService) UpdateBranch(ctx context.Context, vendorID, branchID uint64, in dto.UpdateBranchDTO) (*dto.BranchDTO, error) {
	s.logger.Info("updating branch", zap.Uint64("vendorID", vendorID), zap.Uint64("branchID", branchID))

	branch, err := s.branchRepo.FindBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if branch.VendorID != vendorID {
		return nil, apperrors.ErrForbidden
	}
	if err := authorizeBranchOwner(ctx, branch); err != nil {
		return nil, err
	}

	if in.BranchName.Valid {
		branch.BranchName = in.BranchName.String
	}
	if in.DisplayName.Valid {
		branch.DisplayName = &in.DisplayName.String
	}
	if in.Address != nil {
		branch.Address = in.Address
	}
	if in.Latitude.Valid {
		branch.Latitude = &in.Latitude.Float64
	}
	if in.Longitude.Valid {
		branch.Longitude = &in.Longitude.Float64
	}
	if in.City.Valid {
		branch.City = in.City.String
	}
	if in.BranchPhone.Valid {
		branch.BranchPhone = &in.BranchPhone.String
	}
	if in.BranchEmail.Valid {
		branch.BranchEmail = &in.BranchEmail.String
	}
	if in.ManagerName.Valid {
		branch.ManagerName = &in.ManagerName.String
	}
	if in.ManagerPhone.Valid {
		branch.ManagerPhone = &in.ManagerPhone.String
	}

	if err := s.branchRepo.UpdateBranch(ctx, branchID, *branch); err != nil {
		return nil, err
	}
	return toBranchDTO(branch), nil
}

func (s *BranchService) UploadDocument(ctx context.Context, branchID uint64, in dto.UploadDocumentDTO) (*dto.DocumentDTO, error) {
	s.logger.Info("uploading branch document", zap.Uint64("branchID", branchID), zap.String("type", in.DocumentType))

	branch, err := s.branchRepo.FindBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if err := authorizeBranchOwner(ctx, branch); err != nil {
		return nil, err
	}

	doc := entities.BranchDocument{
		BranchID:           branchID,
		DocumentType:       in.DocumentType,
		DocumentURL:        in.DocumentURL,
		VerificationStatus: "PENDING",
	}
	if in.DocumentNumber != "" {
		doc.DocumentNumber = &in.DocumentNumber
	}
	if in.IssueDate != "" {
		if t, err := time.Parse("2006-01-02", in.IssueDate); err == nil {
			doc.IssueDate = &t
		}
	}
	if in.ExpiryDate != "" {
		if t, err := time.Parse("2006-01-02", in.ExpiryDate); err == nil {
			doc.ExpiryDate = &t
		}
	}

	newID, err := s.docRepo.CreateDocument(ctx, doc)
	if err != nil {
		return nil, err
	}
	doc.ID = newID

	if branch.OnboardingStatus == entities.OnboardingPending {
		if complete, err := s.allRequiredDocumentsUploaded(ctx, branchID); err == nil && complete {
			if err := s.branchRepo.SetOnboardingStatus(ctx, branchID, entities.OnboardingDocumentsSubmitted); err != nil {
				return nil, err
			}
			s.logger.Info("all required documents uploaded", zap.Uint64("branchID", branchID))
		}
	}

	doc.CreatedAt = time.Now()
	return toDocumentDTO(&doc), nil
}

func (s *BranchService) GetDocuments(ctx context.Context, branchID uint64) ([]dto.DocumentDTO, error) {
	branch, err := s.branchRepo.FindBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if err := authorizeBranchOwner(ctx, branch); err != nil {
		return nil, err
	}

	docs, err := s.docRepo.GetDocumentsByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentDTO, 0, len(docs))
	for i := range docs {
		out = append(out, *toDocumentDTO(&docs[i]))
	}
	return out, nil
}

func (s *BranchService) GetOnboardingStatus(ctx context.Context, branchID uint64) (*dto.OnboardingStatusDTO, error) {
	branch, err := s.branchRepo.FindBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if err := authorizeBranchOwner(ctx, branch); err != nil {
		return nil, err
	}

	docs, err := s.docRepo.GetDocumentsByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}

	status := &dto.OnboardingStatusDTO{
		BranchID:         branch.ID,
		OnboardingStatus: branch.OnboardingStatus,
		IsActive:         branch.IsActive,
		TotalDocuments:   len(docs),
		Documents:        make([]dto.DocumentStatusDTO, 0, len(docs)),
	}
	for _, d := range docs {
		if d.VerificationStatus == "APPROVED" {
			status.ApprovedDocuments++
		}
		status.Documents = append(status.Documents, dto.DocumentStatusDTO{
			Type:   d.DocumentType,
			Status: d.VerificationStatus,
		})
	}
	return status, nil
}

func (s *BranchService) allRequiredDocumentsUploaded(ctx context.Context, branchID uint64) (bool, error) {
	docs, err := s.docRepo.GetDocumentsByBranch(ctx, branchID)
	if err != nil {
		return false, err
	}
	uploaded := make(map[string]struct{}, len(docs))
	for _, d := range docs {
		uploaded[d.DocumentType] = struct{}{}
	}
	for _, required := range entities.RequiredDocumentTypes {
		if _, ok := uploaded[required]; !ok {
			return false, nil
		}
	}
	return true, nil
}

func generateBranchCode(vendorID uint64, city string) string {
	cityPrefix := strings.ToUpper(city)
	if len(cityPrefix) > 3 {
		cityPrefix = cityPrefix[:3]
	}
	return fmt.Sprintf("%04d-%s-%04d", vendorID, cityPrefix, time.Now().UnixMilli()%10000)
}
