package expiry

import (
	"context"
	"sort"
	"testing"
	"time"

	"usana-backend/domain"
	"usana-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubExpiryRepository struct {
	items map[string]*entities.ExpiryItem
}

func newStubExpiryRepository() *stubExpiryRepository {
	return &stubExpiryRepository{items: make(map[string]*entities.ExpiryItem)}
}

func (s *stubExpiryRepository) CreateExpiryItem(ctx context.Context, item *entities.ExpiryItem) error {
	s.items[item.ID.String()] = item
	return nil
}

func (s *stubExpiryRepository) GetExpiryItemByID(ctx context.Context, id string) (*entities.ExpiryItem, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (s *stubExpiryRepository) UpdateExpiryItem(ctx context.Context, item *entities.ExpiryItem) error {
	s.items[item.ID.String()] = item
	return nil
}

func (s *stubExpiryRepository) DeleteExpiryItem(ctx context.Context, id string) error {
	delete(s.items, id)
	return nil
}

func (s *stubExpiryRepository) GetExpiryItems(ctx context.Context, userID string) ([]*entities.ExpiryItem, error) {
	var items []*entities.ExpiryItem
	for _, item := range s.items {
		if item.UserID.String() == userID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ExpiryDate.Before(items[j].ExpiryDate)
	})
	return items, nil
}

func (s *stubExpiryRepository) MarkNotificationSent(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if item, ok := s.items[id]; ok {
			item.NotificationSent = true
		}
	}
	return nil
}

type stubUserRepository struct {
	users map[string]*entities.User
}

func newStubUserRepository() *stubUserRepository {
	return &stubUserRepository{users: make(map[string]*entities.User)}
}

func (s *stubUserRepository) CreateUser(ctx context.Context, u *entities.User) error {
	s.users[u.ID.String()] = u
	return nil
}

func (s *stubUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (s *stubUserRepository) UpdateUser(ctx context.Context, u *entities.User) error {
	s.users[u.ID.String()] = u
	return nil
}

func (s *stubUserRepository) GetAllUsers(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User
	for _, u := range s.users {
		users = append(users, u)
	}
	return users, nil
}

func (s *stubUserRepository) SetUserVerified(ctx context.Context, id string, verified bool) (*entities.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	u.IsVerified = verified
	return u, nil
}

func (s *stubUserRepository) DeleteUser(ctx context.Context, id string) error {
	delete(s.users, id)
	return nil
}

func noopMailer(toEmail, subject, body string) error { return nil }

func TestCreateExpiryItemSetsInitialStatus(t *testing.T) {
	repo := newStubExpiryRepository()
	service := NewExpiryService(repo, newStubUserRepository(), noopMailer)
	userID := uuid.New().String()

	res, err := service.CreateExpiryItem(context.Background(), domain.CreateExpiryItemRequest{
		ItemName:     "Milk",
		Category:     "Dairy",
		PurchaseDate: time.Now().Format("2006-01-02"),
		ExpiryDate:   time.Now().Add(2 * 24 * time.Hour).Format("2006-01-02"),
		Quantity:     "1 gallon",
		Location:     "Refrigerator",
	}, userID)

	require.NoError(t, err)
	assert.Equal(t, StatusExpiringSoon, res.Status)
	assert.False(t, res.NotificationSent)
}

func TestCreateExpiryItemRejectsBadDates(t *testing.T) {
	service := NewExpiryService(newStubExpiryRepository(), newStubUserRepository(), noopMailer)
	userID := uuid.New().String()

	_, err := service.CreateExpiryItem(context.Background(), domain.CreateExpiryItemRequest{
		ItemName:     "Milk",
		Category:     "Dairy",
		PurchaseDate: "not-a-date",
		ExpiryDate:   "2025-06-20",
		Quantity:     "1 gallon",
		Location:     "Refrigerator",
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidPurchaseDate)

	_, err = service.CreateExpiryItem(context.Background(), domain.CreateExpiryItemRequest{
		ItemName:     "Milk",
		Category:     "Dairy",
		PurchaseDate: "2025-06-10",
		ExpiryDate:   "someday",
		Quantity:     "1 gallon",
		Location:     "Refrigerator",
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
}

func TestGetExpiryItemsRecomputesStatus(t *testing.T) {
	repo := newStubExpiryRepository()
	service := NewExpiryService(repo, newStubUserRepository(), noopMailer)
	userID := uuid.New()

	// stale snapshot: stored as fresh but the date has since passed
	item := &entities.ExpiryItem{
		ID:         uuid.New(),
		UserID:     userID,
		ItemName:   "Yogurt",
		ExpiryDate: time.Now().Add(-48 * time.Hour),
		Status:     StatusFresh,
	}
	repo.items[item.ID.String()] = item

	res, err := service.GetExpiryItems(context.Background(), userID.String())
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, StatusExpired, res[0].Status)
}

func TestUpdateExpiryItemOwnership(t *testing.T) {
	repo := newStubExpiryRepository()
	service := NewExpiryService(repo, newStubUserRepository(), noopMailer)

	owner := uuid.New()
	item := &entities.ExpiryItem{ID: uuid.New(), UserID: owner, ItemName: "Bread"}
	repo.items[item.ID.String()] = item

	err := service.UpdateExpiryItem(context.Background(), item.ID.String(), domain.UpdateExpiryItemRequest{ItemName: "Rye bread"}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedExpiryAccess)

	err = service.UpdateExpiryItem(context.Background(), uuid.New().String(), domain.UpdateExpiryItemRequest{ItemName: "Rye bread"}, owner.String())
	assert.ErrorIs(t, err, domain.ErrExpiryItemNotFound)

	err = service.UpdateExpiryItem(context.Background(), item.ID.String(), domain.UpdateExpiryItemRequest{ItemName: "Rye bread"}, owner.String())
	require.NoError(t, err)
	assert.Equal(t, "Rye bread", item.ItemName)
}

func TestUpdateExpiryDateResetsNotificationFlag(t *testing.T) {
	repo := newStubExpiryRepository()
	service := NewExpiryService(repo, newStubUserRepository(), noopMailer)

	owner := uuid.New()
	item := &entities.ExpiryItem{
		ID:               uuid.New(),
		UserID:           owner,
		ItemName:         "Cheese",
		ExpiryDate:       time.Now().Add(24 * time.Hour),
		Status:           StatusExpiringSoon,
		NotificationSent: true,
	}
	repo.items[item.ID.String()] = item

	newDate := time.Now().Add(30 * 24 * time.Hour).Format("2006-01-02")
	err := service.UpdateExpiryItem(context.Background(), item.ID.String(), domain.UpdateExpiryItemRequest{ExpiryDate: newDate}, owner.String())
	require.NoError(t, err)

	assert.Equal(t, StatusFresh, item.Status)
	assert.False(t, item.NotificationSent)
}

func TestNotifyExpiring(t *testing.T) {
	repo := newStubExpiryRepository()
	users := newStubUserRepository()

	owner := &entities.User{ID: uuid.New(), Name: "Amina", Email: "amina@example.com"}
	users.users[owner.ID.String()] = owner

	soon := &entities.ExpiryItem{
		ID:         uuid.New(),
		UserID:     owner.ID,
		ItemName:   "Milk",
		Quantity:   "1 gallon",
		ExpiryDate: time.Now().Add(24 * time.Hour),
	}
	fresh := &entities.ExpiryItem{
		ID:         uuid.New(),
		UserID:     owner.ID,
		ItemName:   "Rice",
		Quantity:   "5 kg",
		ExpiryDate: time.Now().Add(60 * 24 * time.Hour),
	}
	repo.items[soon.ID.String()] = soon
	repo.items[fresh.ID.String()] = fresh

	var sentTo []string
	mailer := func(toEmail, subject, body string) error {
		sentTo = append(sentTo, toEmail)
		return nil
	}
	service := NewExpiryService(repo, users, mailer)

	res, err := service.NotifyExpiring(context.Background(), owner.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, res.NotifiedItems)
	assert.Equal(t, []string{"amina@example.com"}, sentTo)
	assert.True(t, soon.NotificationSent)
	assert.False(t, fresh.NotificationSent)

	// second call finds nothing left to notify about
	res, err = service.NotifyExpiring(context.Background(), owner.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 0, res.NotifiedItems)
	assert.Len(t, sentTo, 1)
}
