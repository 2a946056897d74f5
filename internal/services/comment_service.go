package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/everafter-app/everafter-backend/internal/dto"
	"github.com/everafter-app/everafter-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

// CommentService handles blog comments with pre-moderation: new
// comments start unapproved and only approved ones are listed publicly.
type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

func (s *CommentService) Create(postSlug string, req *dto.CreateCommentRequest) (*models.BlogComment, error) {
	name := strings.TrimSpace(req.AuthorName)
	content := strings.TrimSpace(req.Content)
	if postSlug == "" || name == "" || content == "" {
		return nil, fmt.Errorf("%w: authorName and content are required", ErrValidation)
	}
	if len(content) > 2000 {
		return nil, fmt.Errorf("%w: comment must be under 2000 characters", ErrValidation)
	}

	comment := &models.BlogComment{
		PostSlug:    postSlug,
		AuthorName:  name,
		AuthorEmail: strings.TrimSpace(req.AuthorEmail),
		Content:     content,
		Approved:    false,
	}

	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListApproved(postSlug string) ([]models.BlogComment, error) {
	var comments []models.BlogComment
	err := s.db.Where("post_slug = ? AND approved = ?", postSlug, true).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// ListByStatus returns comments filtered by "pending", "approved", or
// all of them for any other value.
func (s *CommentService) ListByStatus(status string) ([]models.BlogComment, error) {
	query := s.db.Order("created_at DESC")
	switch status {
	case "pending":
		query = query.Where("approved = ?", false)
	case "approved":
		query = query.Where("approved = ?", true)
	}

	var comments []models.BlogComment
	err := query.Find(&comments).Error
	return comments, err
}

func (s *CommentService) Approve(id uuid.UUID) (*models.BlogComment, error) {
	var comment models.BlogComment
	if err := s.db.First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	if err := s.db.Model(&comment).Update("approved", true).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *CommentService) Delete(id uuid.UUID) error {
	var comment models.BlogComment
	if err := s.db.First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	return s.db.Delete(&comment).Error
}
