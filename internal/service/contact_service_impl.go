package service

import (
	"context"

	"github.com/sterlinglegal/backend/internal/mailer"
	"github.com/sterlinglegal/backend/internal/model"
	"github.com/sterlinglegal/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	store    repository.SubmissionStore
	notifier Notifier
}

// NewContactService creates a ContactService backed by the given store and notifier.
func NewContactService(store repository.SubmissionStore, notifier Notifier) ContactService {
	return &contactServiceImpl{store: store, notifier: notifier}
}

// Submit makes one insert attempt and, only if it succeeds, one notification
// attempt. Nothing is retried.
func (s *contactServiceImpl) Submit(ctx context.Context, sub *model.Submission) (mailer.Result, error) {
	repo, err := s.store.Submissions(ctx)
	if err != nil {
		return mailer.Result{}, err
	}

	if err := repo.Insert(ctx, sub); err != nil {
		return mailer.Result{}, err
	}

	if s.notifier == nil {
		return mailer.Result{}, nil
	}
	// 保存済みの投稿はクライアント切断後も通知する（タイムアウトは Notifier 側）
	return s.notifier.Notify(context.WithoutCancel(ctx), sub), nil
}
