package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"order-catalog/internal/entities"
	apperrors "order-catalog/pkg/errors"
)

type BranchDocumentRepositoryInterface interface {
	GetDocumentsByBranch(ctx context.Context, branchID uint64) ([]entities.BranchDocument, error)
	CreateDocument(ctx context.Context, doc entities.BranchDocument) (uint64, error)
}

type BranchDocumentRepository struct {
	storage *pgxpool.Pool
}

func NewBranchDocumentRepository(storage *pgxpool.Pool) BranchDocumentRepositoryInterface {
	return &BranchDocumentRepository{storage: storage}
}

func scanDocument(row pgx.Row) (*entities.BranchDocument, error) {
	var d entities.BranchDocument
	var number sql.NullString
	var issueDate, expiryDate sql.NullTime

	err := row.Scan(
		&d.ID, &d.BranchID, &d.DocumentType, &number, &d.DocumentURL,
		&issueDate, &expiryDate, &d.VerificationStatus, &d.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan branch document: %w", err)
	}

	if number.Valid {
		d.DocumentNumber = &number.String
	}
	if issueDate.Valid {
		d.IssueDate = &issueDate.Time
	}
	if expiryDate.Valid {
		d.ExpiryDate = &expiryDate.Time
	}
	return &d, nil
}

func (r *BranchDocumentRepository) GetDocumentsByBranch(ctx context.Context, branchID uint64) ([]entities.BranchDocument, error) {
	query := `
		SELECT id, branch_id, document_type, document_number, document_url,
		       issue_date, expiry_date, verification_status, created_at
		FROM branch_documents
		WHERE branch_id = $1
		ORDER BY id
	`
	rows, err := r.storage.Query(ctx, query, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]entities.BranchDocument, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}

func (r *BranchDocumentRepository) CreateDocument(ctx context.Context, doc entities.BranchDocument) (uint64, error) {
	query := `
		INSERT INTO branch_documents (branch_id, document_type, document_number, document_url,
		                              issue_date, expiry_date, verification_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id
	`
	var newID uint64
	err := r.storage.QueryRow(ctx, query,
		doc.BranchID, doc.DocumentType, doc.DocumentNumber, doc.DocumentURL,
		doc.IssueDate, doc.ExpiryDate, doc.VerificationStatus,
	).Scan(&newID)
	return newID, err
}
