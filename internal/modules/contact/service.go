package contact

import (
	"context"

	"lawncare/internal/domain"
	"lawncare/internal/repository"
)

type Notifier interface {
	ContactCreated(c *domain.Contact)
}

type Service struct {
	store  repository.Store
	notifs Notifier
}

func NewService(store repository.Store, notifs Notifier) *Service {
	return &Service{store: store, notifs: notifs}
}

// SubmitContact stores the message and fans notifications out afterwards.
// Contacts are immutable once created.
func (s *Service) SubmitContact(ctx context.Context, req CreateContactRequest) (*domain.Contact, error) {
	c, err := s.store.CreateContact(ctx, repository.NewContact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
		Address: req.Address,
		Message: req.Message,
	})
	if err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.ContactCreated(c)
	}
	return c, nil
}
