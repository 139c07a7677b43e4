package service

import (
	"context"
	"errors"
	"testing"

	"survivalskills/internal/guide"
	"survivalskills/internal/models"
	"survivalskills/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSubscriberRepo struct {
	byEmail    map[string]*models.Subscriber
	createErr  error
	markErr    error
	markCalls  int
	nextID     uint
	getErr     error
}

func newStubSubscriberRepo() *stubSubscriberRepo {
	return &stubSubscriberRepo{byEmail: map[string]*models.Subscriber{}}
}

func (s *stubSubscriberRepo) Create(_ context.Context, sub *models.Subscriber) error {
	if s.createErr != nil {
		return s.createErr
	}
	email := models.NormalizeEmail(sub.Email)
	if _, exists := s.byEmail[email]; exists {
		return models.NewDuplicateEmailError()
	}
	s.nextID++
	sub.ID = s.nextID
	sub.Email = email
	s.byEmail[email] = sub
	return nil
}

func (s *stubSubscriberRepo) GetByEmail(_ context.Context, email string) (*models.Subscriber, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	sub, ok := s.byEmail[models.NormalizeEmail(email)]
	if !ok {
		return nil, models.NewNotFoundError("subscriber", email)
	}
	return sub, nil
}

func (s *stubSubscriberRepo) List(_ context.Context) ([]*models.Subscriber, error) {
	subs := make([]*models.Subscriber, 0, len(s.byEmail))
	for _, sub := range s.byEmail {
		subs = append(subs, sub)
	}
	return subs, nil
}

func (s *stubSubscriberRepo) MarkGuideDelivered(_ context.Context, id uint) error {
	s.markCalls++
	if s.markErr != nil {
		return s.markErr
	}
	for _, sub := range s.byEmail {
		if sub.ID == id {
			sub.PDFSent = true
		}
	}
	return nil
}

type stubNotifier struct {
	guideOK       bool
	operatorOK    bool
	guideCalls    int
	operatorCalls int
	lastDoc       string
	lastSub       *models.Subscriber
}

func (n *stubNotifier) SendGuide(_ context.Context, sub *models.Subscriber, doc string) bool {
	n.guideCalls++
	n.lastDoc = doc
	n.lastSub = sub
	return n.guideOK
}

func (n *stubNotifier) NotifyOperator(_ context.Context, sub *models.Subscriber) bool {
	n.operatorCalls++
	return n.operatorOK
}

func newTestService(repo *stubSubscriberRepo, notifier *stubNotifier) *SubscriptionService {
	return NewSubscriptionService(repo, notifier, guide.Content)
}

func TestSubscribeHappyPath(t *testing.T) {
	repo := newStubSubscriberRepo()
	notifier := &stubNotifier{guideOK: true, operatorOK: true}
	svc := newTestService(repo, notifier)

	out, err := svc.Subscribe(context.Background(), &validation.SubscribeRequest{
		Email:  "Jane@Example.com",
		Name:   "Jane",
		Region: "uk",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.Delivered)
	assert.Equal(t, "jane@example.com", out.Subscriber.Email)
	assert.Equal(t, models.RegionUK, out.Subscriber.Region)
	assert.True(t, out.Subscriber.PDFSent)

	assert.Equal(t, 1, notifier.guideCalls)
	assert.Equal(t, 1, notifier.operatorCalls)
	assert.Equal(t, 1, repo.markCalls)
	assert.Equal(t, guide.Content(models.RegionUK), notifier.lastDoc)
}

func TestSubscribeInvalidRequestNeverTouchesStore(t *testing.T) {
	repo := newStubSubscriberRepo()
	repo.getErr = errors.New("store must not be called")
	notifier := &stubNotifier{guideOK: true, operatorOK: true}
	svc := newTestService(repo, notifier)

	out, err := svc.Subscribe(context.Background(), &validation.SubscribeRequest{Email: "not-an-email"})
	assert.Nil(t, out)
	assert.True(t, models.IsCode(err, models.CodeValidation))
	assert.Zero(t, notifier.guideCalls)
}

func TestSubscribeDuplicateEmail(t *testing.T) {
	repo := newStubSubscriberRepo()
	notifier := &stubNotifier{guideOK: true, operatorOK: true}
	svc := newTestService(repo, notifier)
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, &validation.SubscribeRequest{Email: "jane@example.com", Name: "Jane"})
	require.NoError(t, err)

	out, err := svc.Subscribe(ctx, &validation.SubscribeRequest{Email: "JANE@example.com", Name: "Jane Again"})
	assert.Nil(t, out)
	assert.True(t, models.IsCode(err, models.CodeDuplicateEmail))
	assert.Equal(t, 1, notifier.guideCalls, "no second delivery for a duplicate")
}

func TestSubscribeDeliveryFailureKeepsSubscriber(t *testing.T) {
	repo := newStubSubscriberRepo()
	notifier := &stubNotifier{guideOK: false, operatorOK: true}
	svc := newTestService(repo, notifier)

	out, err := svc.Subscribe(context.Background(), &validation.SubscribeRequest{
		Email: "jane@example.com",
		Name:  "Jane",
	})
	require.NoError(t, err, "a failed delivery is not an error")
	require.NotNil(t, out)

	assert.False(t, out.Delivered)
	assert.False(t, out.Subscriber.PDFSent)
	assert.Equal(t, 0, notifier.operatorCalls, "operator notice skipped after failed delivery")
	assert.Equal(t, 0, repo.markCalls, "delivery must not be recorded")

	// Subscriber survives: a retry of the same email is now a duplicate.
	_, err = svc.Subscribe(context.Background(), &validation.SubscribeRequest{
		Email: "jane@example.com",
		Name:  "Jane",
	})
	assert.True(t, models.IsCode(err, models.CodeDuplicateEmail))
}

func TestSubscribeOperatorFailureIsBestEffort(t *testing.T) {
	repo := newStubSubscriberRepo()
	notifier := &stubNotifier{guideOK: true, operatorOK: false}
	svc := newTestService(repo, notifier)

	out, err := svc.Subscribe(context.Background(), &validation.SubscribeRequest{
		Email: "jane@example.com",
		Name:  "Jane",
	})
	require.NoError(t, err)
	assert.True(t, out.Delivered)
	assert.True(t, out.Subscriber.PDFSent)
	assert.Equal(t, 1, repo.markCalls)
}

func TestSubscribeMarkDeliveredFailureStillReportsDelivered(t *testing.T) {
	repo := newStubSubscriberRepo()
	repo.markErr = models.NewStorageError("mark guide delivered", errors.New("write timeout"))
	notifier := &stubNotifier{guideOK: true, operatorOK: true}
	svc := newTestService(repo, notifier)

	out, err := svc.Subscribe(context.Background(), &validation.SubscribeRequest{
		Email: "jane@example.com",
		Name:  "Jane",
	})
	require.NoError(t, err)
	assert.True(t, out.Delivered, "the reader has the guide regardless of bookkeeping")
	assert.False(t, out.Subscriber.PDFSent)
}

func TestSubscribeCreateRace(t *testing.T) {
	repo := newStubSubscriberRepo()
	notifier := &stubNotifier{guideOK: true, operatorOK: true}
	svc := newTestService(repo, notifier)

	// Simulate a concurrent winner between lookup and insert.
	repo.createErr = models.NewDuplicateEmailError()

	out, err := svc.Subscribe(context.Background(), &validation.SubscribeRequest{
		Email: "jane@example.com",
		Name:  "Jane",
	})
	assert.Nil(t, out)
	assert.True(t, models.IsCode(err, models.CodeDuplicateEmail))
	assert.Zero(t, notifier.guideCalls)
}

func TestSubscribeStorageErrorPassesThrough(t *testing.T) {
	repo := newStubSubscriberRepo()
	repo.getErr = models.NewStorageError("get subscriber", errors.New("connection refused"))
	notifier := &stubNotifier{guideOK: true, operatorOK: true}
	svc := newTestService(repo, notifier)

	out, err := svc.Subscribe(context.Background(), &validation.SubscribeRequest{
		Email: "jane@example.com",
		Name:  "Jane",
	})
	assert.Nil(t, out)
	assert.True(t, models.IsCode(err, models.CodeStorageUnavailable))
}

func TestSubscribeDefaultsRegionToUS(t *testing.T) {
	repo := newStubSubscriberRepo()
	notifier := &stubNotifier{guideOK: true, operatorOK: true}
	svc := newTestService(repo, notifier)

	out, err := svc.Subscribe(context.Background(), &validation.SubscribeRequest{
		Email: "jane@example.com",
		Name:  "Jane",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RegionUS, out.Subscriber.Region)
	assert.Equal(t, guide.Content(models.RegionUS), notifier.lastDoc)
}
