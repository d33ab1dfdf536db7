package menu

import "context"

type Service interface {
	Categories(ctx context.Context) ([]Category, error)
	Items(ctx context.Context) ([]Item, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Categories(ctx context.Context) ([]Category, error) {
	return s.repo.GetCategories(ctx)
}

func (s *service) Items(ctx context.Context) ([]Item, error) {
	return s.repo.GetItems(ctx)
}
