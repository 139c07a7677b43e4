package repository

import (
	"context"

	"survivalskills/internal/models"

	"gorm.io/gorm"
)

// SubscriberRepository defines the interface for subscriber data operations
type SubscriberRepository interface {
	Create(ctx context.Context, subscriber *models.Subscriber) error
	GetByEmail(ctx context.Context, email string) (*models.Subscriber, error)
	List(ctx context.Context) ([]*models.Subscriber, error)
	MarkGuideDelivered(ctx context.Context, id uint) error
}

// subscriberRepository implements SubscriberRepository
type subscriberRepository struct {
	db *gorm.DB
}

// NewSubscriberRepository creates a new subscriber repository
func NewSubscriberRepository(db *gorm.DB) SubscriberRepository {
	return &subscriberRepository{db: db}
}

func (r *subscriberRepository) Create(ctx context.Context, subscriber *models.Subscriber) error {
	subscriber.Email = models.NormalizeEmail(subscriber.Email)
	err := r.db.WithContext(ctx).Create(subscriber).Error
	return translateError("create subscriber", "subscriber", subscriber.Email, err)
}

func (r *subscriberRepository) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	var subscriber models.Subscriber
	err := r.db.WithContext(ctx).
		Where("email = ?", models.NormalizeEmail(email)).
		First(&subscriber).Error
	if err != nil {
		return nil, translateError("get subscriber", "subscriber", email, err)
	}
	return &subscriber, nil
}

func (r *subscriberRepository) List(ctx context.Context) ([]*models.Subscriber, error) {
	var subscribers []*models.Subscriber
	err := r.db.WithContext(ctx).Order("subscribed_at DESC").Find(&subscribers).Error
	if err != nil {
		return nil, models.NewStorageError("list subscribers", err)
	}
	return subscribers, nil
}

// MarkGuideDelivered flags the subscriber's guide as sent. Idempotent:
// marking an already-delivered subscriber is a no-op, not an error.
func (r *subscriberRepository) MarkGuideDelivered(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.Subscriber{}).
		Where("id = ?", id).
		UpdateColumn("pdf_sent", true).Error
	if err != nil {
		return models.NewStorageError("mark guide delivered", err)
	}
	return nil
}
