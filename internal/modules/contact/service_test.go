package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawncare/internal/domain"
	"lawncare/internal/repository"
)

type recordingNotifier struct {
	contacts []*domain.Contact
}

func (r *recordingNotifier) ContactCreated(c *domain.Contact) {
	r.contacts = append(r.contacts, c)
}

func TestSubmitContactRequiredFieldsOnly(t *testing.T) {
	notifs := &recordingNotifier{}
	svc := NewService(repository.NewMemoryStore(), notifs)

	c, err := svc.SubmitContact(context.Background(), CreateContactRequest{
		Name:    "Grace Hopper",
		Email:   "grace@example.com",
		Message: "Do you service half-acre lots?",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Nil(t, c.Phone)
	assert.Nil(t, c.Service)
	assert.Nil(t, c.Address)
	require.Len(t, notifs.contacts, 1)
	assert.Equal(t, c.ID, notifs.contacts[0].ID)
}

type failingStore struct {
	repository.Store
}

func (failingStore) CreateContact(context.Context, repository.NewContact) (*domain.Contact, error) {
	return nil, errors.New("db down")
}

func TestSubmitContactStoreFailureSkipsNotification(t *testing.T) {
	notifs := &recordingNotifier{}
	svc := NewService(failingStore{}, notifs)

	_, err := svc.SubmitContact(context.Background(), CreateContactRequest{
		Name:    "Grace",
		Email:   "grace@example.com",
		Message: "hi",
	})
	assert.Error(t, err)
	assert.Empty(t, notifs.contacts)
}
