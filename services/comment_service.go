package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"siteyonetim.app/configs/configslog"
	"siteyonetim.app/models"
	"siteyonetim.app/repositories"
)

const ErrCommentNotFound NotFoundError = "yorum bulunamadı"

type CommentInput struct {
	Content string `json:"content" validate:"required"`
}

type ICommentService interface {
	List(ctx context.Context, issueID uint) ([]models.Comment, error)
	Create(ctx context.Context, issueID, userID uint, in CommentInput) (*models.Comment, error)
	Delete(ctx context.Context, issueID, commentID uint) error
}

type CommentService struct {
	repo      repositories.ICommentRepository
	issueRepo repositories.IIssueRepository
}

func NewCommentService(repo repositories.ICommentRepository, issueRepo repositories.IIssueRepository) ICommentService {
	return &CommentService{repo: repo, issueRepo: issueRepo}
}

func (s *CommentService) requireIssue(ctx context.Context, issueID uint) error {
	if _, err := s.issueRepo.FindByID(ctx, issueID); err != nil {
		return notFoundOr(err, ErrIssueNotFound, "CommentService", issueID)
	}
	return nil
}

func (s *CommentService) List(ctx context.Context, issueID uint) ([]models.Comment, error) {
	if err := s.requireIssue(ctx, issueID); err != nil {
		return nil, err
	}
	return s.repo.ListByIssue(ctx, issueID)
}

func (s *CommentService) Create(ctx context.Context, issueID, userID uint, in CommentInput) (*models.Comment, error) {
	in.Content = strings.TrimSpace(in.Content)
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if userID == 0 {
		return nil, ErrSessionInvalid
	}
	if err := s.requireIssue(ctx, issueID); err != nil {
		return nil, err
	}
	comment := &models.Comment{IssueID: issueID, UserID: userID, Content: in.Content}
	if err := s.repo.Create(ctx, comment); err != nil {
		configslog.Log.Error("Yorum eklenemedi", zap.Uint("issue_id", issueID), zap.Error(err))
		return nil, err
	}
	created, err := s.repo.FindWithUser(ctx, comment.ID)
	if err != nil {
		return comment, nil
	}
	return created, nil
}

// Delete yorumu siler; yorum başka bir arızaya aitse bulunamadı döner.
func (s *CommentService) Delete(ctx context.Context, issueID, commentID uint) error {
	comment, err := s.repo.FindByID(ctx, commentID)
	if err != nil {
		return notFoundOr(err, ErrCommentNotFound, "CommentService.Delete", commentID)
	}
	if comment.IssueID != issueID {
		return ErrCommentNotFound
	}
	if err := s.repo.HardDelete(ctx, commentID); err != nil {
		return notFoundOr(err, ErrCommentNotFound, "CommentService.Delete", commentID)
	}
	return nil
}

var _ ICommentService = (*CommentService)(nil)
