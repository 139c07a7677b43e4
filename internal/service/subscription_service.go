// Package service holds the application workflows that span the repository
// and delivery layers.
package service

import (
	"context"
	"log/slog"

	"survivalskills/internal/middleware"
	"survivalskills/internal/models"
	"survivalskills/internal/observability"
	"survivalskills/internal/repository"
	"survivalskills/internal/validation"
)

// Notifier delivers subscription emails. Both calls report success as a
// bool and never fail the caller.
type Notifier interface {
	SendGuide(ctx context.Context, sub *models.Subscriber, doc string) bool
	NotifyOperator(ctx context.Context, sub *models.Subscriber) bool
}

// SubscribeOutcome is the result of a successful signup. Delivered is false
// when the subscriber was persisted but the guide email did not go out.
type SubscribeOutcome struct {
	Subscriber *models.Subscriber
	Delivered  bool
}

// SubscriptionService runs the guide signup workflow.
type SubscriptionService struct {
	subscribers repository.SubscriberRepository
	notifier    Notifier
	generate    func(models.Region) string
	log         *slog.Logger
}

func NewSubscriptionService(
	subscribers repository.SubscriberRepository,
	notifier Notifier,
	generate func(models.Region) string,
) *SubscriptionService {
	return &SubscriptionService{
		subscribers: subscribers,
		notifier:    notifier,
		generate:    generate,
		log:         middleware.Logger,
	}
}

// Subscribe validates the signup, persists the subscriber, and delivers the
// regional guide. The subscriber record survives a failed delivery; only a
// confirmed delivery marks the guide as sent.
func (s *SubscriptionService) Subscribe(ctx context.Context, req *validation.SubscribeRequest) (*SubscribeOutcome, error) {
	if err := req.Validate(); err != nil {
		observability.SubscriptionOutcomes.WithLabelValues("invalid").Inc()
		return nil, models.NewValidationError(err.Error())
	}

	email := models.NormalizeEmail(req.Email)

	existing, err := s.subscribers.GetByEmail(ctx, email)
	if err != nil && !models.IsCode(err, models.CodeNotFound) {
		return nil, err
	}
	if existing != nil {
		observability.SubscriptionOutcomes.WithLabelValues("duplicate").Inc()
		return nil, models.NewDuplicateEmailError()
	}

	sub := &models.Subscriber{
		Email:  email,
		Name:   req.Name,
		Region: req.RegionOrDefault(),
	}
	if err := s.subscribers.Create(ctx, sub); err != nil {
		// A concurrent signup can win between the lookup and the insert;
		// the unique index reports it as a duplicate either way.
		if models.IsCode(err, models.CodeDuplicateEmail) {
			observability.SubscriptionOutcomes.WithLabelValues("duplicate").Inc()
		}
		return nil, err
	}

	doc := s.generate(sub.Region)

	if !s.notifier.SendGuide(ctx, sub, doc) {
		s.log.ErrorContext(ctx, "guide delivery failed, subscriber kept",
			"subscriber_id", sub.ID,
			"region", sub.Region,
		)
		observability.SubscriptionOutcomes.WithLabelValues("delivery_failed").Inc()
		return &SubscribeOutcome{Subscriber: sub, Delivered: false}, nil
	}

	if !s.notifier.NotifyOperator(ctx, sub) {
		s.log.WarnContext(ctx, "operator notification failed", "subscriber_id", sub.ID)
	}

	if err := s.subscribers.MarkGuideDelivered(ctx, sub.ID); err != nil {
		s.log.ErrorContext(ctx, "failed to record guide delivery",
			"subscriber_id", sub.ID,
			"error", err,
		)
	} else {
		sub.PDFSent = true
	}

	observability.SubscriptionOutcomes.WithLabelValues("delivered").Inc()
	return &SubscribeOutcome{Subscriber: sub, Delivered: true}, nil
}

// Subscribers lists every subscriber, newest first.
func (s *SubscriptionService) Subscribers(ctx context.Context) ([]*models.Subscriber, error) {
	return s.subscribers.List(ctx)
}
