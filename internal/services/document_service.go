package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"hrhub/internal/models"
	"hrhub/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const presignedURLExpiry = 15 * time.Minute

type DocumentService interface {
	Upload(ctx context.Context, req *UploadDocumentRequest) (*models.EmployeeDocument, error)
	// DownloadURL returns a short-lived presigned URL for the stored file.
	DownloadURL(ctx context.Context, tenantID, documentID uuid.UUID) (string, error)
	ListByEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) ([]*models.EmployeeDocument, error)
	Delete(ctx context.Context, tenantID, documentID uuid.UUID) error
}

type UploadDocumentRequest struct {
	TenantID     uuid.UUID
	EmployeeID   uuid.UUID
	DocumentType string
	Title        string
	Description  string
	FileName     string
	ContentType  string
	Reader       io.Reader
	Size         int64
}

type documentService struct {
	documentRepo repositories.DocumentRepository
	employeeRepo repositories.EmployeeRepository
	minioSvc     MinioService
	bucketName   string
}

func NewDocumentService(
	documentRepo repositories.DocumentRepository,
	employeeRepo repositories.EmployeeRepository,
	minioSvc MinioService,
	bucketName string,
) DocumentService {
	return &documentService{
		documentRepo: documentRepo,
		employeeRepo: employeeRepo,
		minioSvc:     minioSvc,
		bucketName:   bucketName,
	}
}

func (s *documentService) Upload(ctx context.Context, req *UploadDocumentRequest) (*models.EmployeeDocument, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !models.ValidDocumentType(req.DocumentType) {
		return nil, fmt.Errorf("invalid document type: %s", req.DocumentType)
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.TenantID, req.EmployeeID); err != nil {
		return nil, ErrEmployeeNotFound
	}

	docID := uuid.New()
	objectName := fmt.Sprintf("%s/%s/%s%s", req.TenantID, req.EmployeeID, docID, path.Ext(req.FileName))
	if err := s.minioSvc.UploadFile(ctx, s.bucketName, objectName, req.ContentType, req.Reader, req.Size); err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	doc := &models.EmployeeDocument{
		ID:           docID,
		TenantID:     req.TenantID,
		EmployeeID:   req.EmployeeID,
		DocumentType: req.DocumentType,
		Title:        req.Title,
		ObjectName:   objectName,
		Description:  req.Description,
	}
	if err := s.documentRepo.Create(ctx, doc); err != nil {
		// Roll back the object so storage and rows stay in sync.
		_ = s.minioSvc.DeleteFile(ctx, s.bucketName, objectName)
		return nil, err
	}
	return doc, nil
}

func (s *documentService) DownloadURL(ctx context.Context, tenantID, documentID uuid.UUID) (string, error) {
	doc, err := s.documentRepo.GetByID(ctx, tenantID, documentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("document not found")
		}
		return "", err
	}
	return s.minioSvc.GetPresignedURL(ctx, s.bucketName, doc.ObjectName, presignedURLExpiry)
}

func (s *documentService) ListByEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) ([]*models.EmployeeDocument, error) {
	return s.documentRepo.ListByEmployee(ctx, tenantID, employeeID)
}

func (s *documentService) Delete(ctx context.Context, tenantID, documentID uuid.UUID) error {
	doc, err := s.documentRepo.GetByID(ctx, tenantID, documentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("document not found")
		}
		return err
	}
	if err := s.minioSvc.DeleteFile(ctx, s.bucketName, doc.ObjectName); err != nil {
		return fmt.Errorf("failed to delete stored file: %w", err)
	}
	return s.documentRepo.Delete(ctx, tenantID, documentID)
}
