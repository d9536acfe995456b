package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"borderline-backend/pkg/clients/brevo"
	"borderline-backend/pkg/config"
	"borderline-backend/pkg/logger"
	"borderline-backend/pkg/models"
)

// Caller-visible failure classes. The messages are short and fixed; raw CRM
// responses only ever reach the server logs.
var (
	ErrNotConfigured = errors.New("crm api key not configured")
	ErrRelayCreate   = errors.New("failed to create crm contact")
	ErrRelayUpdate   = errors.New("failed to update crm contact")
)

// LeadRelayService relays order submissions to the CRM as contact upserts
type LeadRelayService interface {
	SubmitOrder(ctx context.Context, order models.OrderSubmission) error
}

type leadRelayServiceImpl struct {
	brevoClient brevo.Client
	config      *config.Config
	log         logger.Logger
	now         func() time.Time
}

// NewLeadRelayService creates a new relay service
func NewLeadRelayService(brevoClient brevo.Client, cfg *config.Config, log logger.Logger) LeadRelayService {
	return &leadRelayServiceImpl{
		brevoClient: brevoClient,
		config:      cfg,
		log:         log,
		now:         time.Now,
	}
}

// SubmitOrder performs the contact upsert: try create, and if the contact is
// already registered, update it in place. At most two sequential outbound calls,
// no retries. Concurrent submissions under the same synthesized email are
// last-write-wins at the CRM.
func (s *leadRelayServiceImpl) SubmitOrder(ctx context.Context, order models.OrderSubmission) error {
	if s.config.BrevoAPIKey == "" {
		return ErrNotConfigured
	}

	payload := BuildContactPayload(order, s.config.BrevoListID, s.now())

	s.log.Infof("relaying order for %q as contact %s", order.CustomerName, payload.Email)

	err := s.brevoClient.CreateContact(ctx, payload)
	if err == nil {
		s.log.Infof("created crm contact %s", payload.Email)
		return nil
	}

	if !errors.Is(err, brevo.ErrContactExists) {
		s.log.Errorf("crm create failed for %s: %v", payload.Email, err)
		return fmt.Errorf("%w: %v", ErrRelayCreate, err)
	}

	s.log.Infof("contact %s already exists, updating instead", payload.Email)

	update := brevo.ContactUpdate{
		Attributes: payload.Attributes,
		ListIDs:    payload.ListIDs,
	}

	if err := s.brevoClient.UpdateContact(ctx, payload.Email, update); err != nil {
		s.log.Errorf("crm update failed for %s: %v", payload.Email, err)
		return fmt.Errorf("%w: %v", ErrRelayUpdate, err)
	}

	s.log.Infof("updated crm contact %s", payload.Email)
	return nil
}
