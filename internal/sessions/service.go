package sessions

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"parkpass/internal/booking"
	"parkpass/internal/shared/utils/currency"
	"parkpass/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("booking session not found")
	ErrInvalidDate     = errors.New("date must be formatted as YYYY-MM-DD")
)

// Service manages in-memory booking sessions
type Service interface {
	Catalog(ctx context.Context) *CatalogResponse
	Create(ctx context.Context) *SessionResponse
	Get(ctx context.Context, id string) (*SessionResponse, error)
	End(ctx context.Context, id string) error

	SetCount(ctx context.Context, id string, category booking.Category, value string) (*SessionResponse, error)
	SetLocation(ctx context.Context, id, location string) (*SessionResponse, error)
	SetDate(ctx context.Context, id, date string) (*SessionResponse, error)
	SetName(ctx context.Context, id, name string) (*SessionResponse, error)

	Submit(ctx context.Context, id string) (*SessionResponse, error)
	Back(ctx context.Context, id string) (*SessionResponse, error)
	Confirm(ctx context.Context, id string) (*SessionResponse, error)
	DismissAdvisory(ctx context.Context, id string) (*SessionResponse, error)
	DismissConfirmation(ctx context.Context, id string) (*SessionResponse, error)
	Reset(ctx context.Context, id string) (*SessionResponse, error)

	ExpireIdle(ctx context.Context) (removed, remaining int)
}

type service struct {
	offers booking.OfferService
	config Config
	now    func() time.Time
	logger *logger.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

// NewService creates a session service whose workflows call offers
func NewService(offers booking.OfferService, config Config, log *logger.Logger) Service {
	if config.SessionTTL <= 0 {
		config.SessionTTL = 30 * time.Minute
	}
	if config.Workflow.Location == nil {
		config.Workflow.Location = time.Local
	}
	if config.Workflow.CutoffHour < 0 || config.Workflow.CutoffHour > 23 {
		config.Workflow.CutoffHour = booking.DefaultCutoffHour
	}
	if config.Workflow.Prices == (booking.PriceTable{}) {
		config.Workflow.Prices = booking.DefaultPrices
	}
	now := config.Workflow.Now
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logger.GetDefault()
	}
	return &service{
		offers:   offers,
		config:   config,
		now:      now,
		logger:   log,
		sessions: make(map[string]*session),
	}
}

func (s *service) Catalog(ctx context.Context) *CatalogResponse {
	prices := s.config.Workflow.Prices
	resp := &CatalogResponse{
		Locations: booking.Locations,
		Promotion: PromotionResponse{
			Title:      s.config.Promotion.Title,
			ValidFrom:  s.config.Promotion.ValidFrom,
			ValidUntil: s.config.Promotion.ValidUntil,
			Display:    promotionWindow(s.config.Promotion),
		},
		Advisory: AdvisoryResponse{
			Title:   AdvisoryTitle,
			Message: AdvisoryMessage,
		},
		CutoffHour: s.config.Workflow.CutoffHour,
		TimeZone:   s.config.Workflow.Location.String(),
	}
	for _, c := range booking.Categories {
		resp.Prices = append(resp.Prices, PriceResponse{
			Category: c,
			Price:    prices.Price(c),
			Display:  currency.FormatRupees(prices.Price(c)),
		})
	}
	return resp
}

func (s *service) Create(ctx context.Context) *SessionResponse {
	now := s.now()
	sess := &session{
		id:        uuid.NewString(),
		workflow:  booking.NewWorkflow(s.offers, s.config.Workflow),
		createdAt: now,
		lastSeen:  now,
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	s.logger.WithSessionID(sess.id).InfoContext(ctx, "Booking Session Started")
	return s.toResponse(sess)
}

func (s *service) Get(ctx context.Context, id string) (*SessionResponse, error) {
	sess, err := s.touch(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(sess), nil
}

func (s *service) End(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *service) SetCount(ctx context.Context, id string, category booking.Category, value string) (*SessionResponse, error) {
	return s.apply(id, func(w *booking.Workflow) error {
		_, err := w.SetCount(category, value)
		return err
	})
}

func (s *service) SetLocation(ctx context.Context, id, location string) (*SessionResponse, error) {
	return s.apply(id, func(w *booking.Workflow) error {
		return w.SetLocation(location)
	})
}

func (s *service) SetDate(ctx context.Context, id, date string) (*SessionResponse, error) {
	return s.apply(id, func(w *booking.Workflow) error {
		day, err := time.ParseInLocation(dateLayout, date, s.config.Workflow.Location)
		if err != nil {
			return ErrInvalidDate
		}
		return w.SetDate(day)
	})
}

func (s *service) SetName(ctx context.Context, id, name string) (*SessionResponse, error) {
	return s.apply(id, func(w *booking.Workflow) error {
		return w.SetName(name)
	})
}

func (s *service) Submit(ctx context.Context, id string) (*SessionResponse, error) {
	resp, err := s.apply(id, func(w *booking.Workflow) error {
		_, err := w.Submit(ctx)
		return err
	})
	switch {
	case errors.Is(err, ErrSessionNotFound):
	case err != nil:
		s.logger.LogSubmissionRejected(ctx, id, err.Error())
	default:
		s.logger.LogWorkflowTransition(ctx, id, booking.PhaseInput.String(), booking.PhaseReview.String())
	}
	return resp, err
}

func (s *service) Back(ctx context.Context, id string) (*SessionResponse, error) {
	resp, err := s.apply(id, func(w *booking.Workflow) error {
		return w.Back()
	})
	if err == nil {
		s.logger.LogWorkflowTransition(ctx, id, booking.PhaseReview.String(), booking.PhaseInput.String())
	}
	return resp, err
}

func (s *service) Confirm(ctx context.Context, id string) (*SessionResponse, error) {
	resp, err := s.apply(id, func(w *booking.Workflow) error {
		_, err := w.Confirm()
		return err
	})
	if err == nil && resp.Review != nil {
		s.logger.LogBookingConfirmed(ctx, id, resp.Review.Location, resp.Review.TotalTickets)
	}
	return resp, err
}

func (s *service) DismissAdvisory(ctx context.Context, id string) (*SessionResponse, error) {
	return s.apply(id, func(w *booking.Workflow) error {
		w.DismissAdvisory()
		return nil
	})
}

func (s *service) DismissConfirmation(ctx context.Context, id string) (*SessionResponse, error) {
	return s.apply(id, func(w *booking.Workflow) error {
		w.DismissConfirmation()
		return nil
	})
}

func (s *service) Reset(ctx context.Context, id string) (*SessionResponse, error) {
	resp, err := s.apply(id, func(w *booking.Workflow) error {
		w.Reset()
		return nil
	})
	if err == nil {
		s.logger.WithSessionID(id).InfoContext(ctx, "Booking Session Reset")
	}
	return resp, err
}

// ExpireIdle drops sessions not used within the session TTL
func (s *service) ExpireIdle(ctx context.Context) (removed, remaining int) {
	cutoff := s.now().Add(-s.config.SessionTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, len(s.sessions)
}

// apply runs fn against the session's workflow. The session state is returned
// alongside workflow errors so callers can re-render it.
func (s *service) apply(id string, fn func(w *booking.Workflow) error) (*SessionResponse, error) {
	sess, err := s.touch(id)
	if err != nil {
		return nil, err
	}
	err = fn(sess.workflow)
	return s.toResponse(sess), err
}

func (s *service) touch(id string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.lastSeen = s.now()
	return sess, nil
}

func (s *service) toResponse(sess *session) *SessionResponse {
	s.mu.Lock()
	expiresAt := sess.lastSeen.Add(s.config.SessionTTL)
	s.mu.Unlock()

	return newSessionResponse(sess.id, sess.workflow.State(), sess.createdAt, expiresAt)
}

// promotionWindow renders "Valid from July 15, 2024 to August 15, 2024"
func promotionWindow(p Promotion) string {
	from, errFrom := time.Parse(dateLayout, p.ValidFrom)
	until, errUntil := time.Parse(dateLayout, p.ValidUntil)
	if errFrom != nil || errUntil != nil {
		return ""
	}
	const layout = "January 2, 2006"
	return fmt.Sprintf("Valid from %s to %s", from.Format(layout), until.Format(layout))
}
