package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock OfferService ---

type mockOfferService struct {
	mu        sync.Mutex
	calls     int
	requestFn func(ctx context.Context, req BookingRequest) (*OfferResult, error)
}

func (m *mockOfferService) RequestOffer(ctx context.Context, req BookingRequest) (*OfferResult, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	return m.requestFn(ctx, req)
}

func (m *mockOfferService) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// echoOffer answers with the request figures and no offer
func echoOffer(ctx context.Context, req BookingRequest) (*OfferResult, error) {
	return &OfferResult{
		Name:                req.Name,
		Location:            req.Location,
		BookedDate:          req.BookedDate,
		AdultTicket:         req.AdultTicket,
		ChildTicket:         req.ChildTicket,
		SeniorCitizenTicket: req.SeniorCitizenTicket,
		BookedTicket:        req.BookedTicket,
		PaidAmount:          req.PaidAmount,
	}, nil
}

// --- Helpers ---

var ist = time.FixedZone("IST", 5*3600+1800)

func at(hour, minute int) time.Time {
	return time.Date(2026, 10, 15, hour, minute, 0, 0, ist)
}

func newTestWorkflow(now time.Time, fn func(ctx context.Context, req BookingRequest) (*OfferResult, error)) (*Workflow, *mockOfferService) {
	svc := &mockOfferService{requestFn: fn}
	w := NewWorkflow(svc, Options{
		Location:   ist,
		CutoffHour: DefaultCutoffHour,
		Now:        func() time.Time { return now },
	})
	return w, svc
}

func fillOrder(t *testing.T, w *Workflow) {
	t.Helper()
	require.NoError(t, w.SetName("Asha"))
	require.NoError(t, w.SetLocation("Kochi"))
}

func tomorrow() time.Time {
	return time.Date(2026, 10, 16, 0, 0, 0, 0, ist)
}

// --- Tests ---

func TestTotalPaid_FollowsEveryEdit(t *testing.T) {
	w, _ := newTestWorkflow(at(7, 0), echoOffer)

	steps := []struct {
		category Category
		raw      string
		location string
		want     int
	}{
		{CategoryAdult, "2", "", 1600},
		{CategoryChild, "1", "Mumbai", 2200},
		{CategorySenior, "3", "", 4300},
		{CategoryAdult, "abc", "Kochi", 2700},
		{CategoryChild, "0", "Chennai", 2100},
		{CategorySenior, "-4", "", 0},
	}

	for _, s := range steps {
		_, err := w.SetCount(s.category, s.raw)
		require.NoError(t, err)
		if s.location != "" {
			require.NoError(t, w.SetLocation(s.location))
		}
		state := w.State()
		assert.Equal(t, s.want, state.TotalPaid, "after %s=%q", s.category, s.raw)
		assert.Equal(t, TotalPaid(state.Tickets, DefaultPrices), state.TotalPaid)
	}
}

func TestSetCount_HugeInputKeepsTotalsExact(t *testing.T) {
	w, svc := newTestWorkflow(at(7, 0), echoOffer)
	fillOrder(t, w)

	_, err := w.SetCount(CategoryAdult, "9223372036854775807")
	require.NoError(t, err)
	_, err = w.SetCount(CategoryChild, "1")
	require.NoError(t, err)

	state := w.State()
	assert.Equal(t, 0, state.Tickets.Adult)
	assert.Equal(t, 1, state.TotalTickets)
	assert.Equal(t, 600, state.TotalPaid)

	_, err = w.SetCount(CategoryAdult, "10000")
	require.NoError(t, err)
	state = w.State()
	assert.Equal(t, 10001, state.TotalTickets)
	assert.Equal(t, 10000*800+600, state.TotalPaid)

	_, err = w.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, svc.callCount())
	assert.Equal(t, PhaseReview, w.State().Phase)
}

func TestSubmit_EmptyOrder(t *testing.T) {
	w, svc := newTestWorkflow(at(7, 0), echoOffer)
	fillOrder(t, w)
	require.NoError(t, w.SetDate(tomorrow()))

	req, err := w.Submit(context.Background())

	assert.ErrorIs(t, err, ErrEmptyOrder)
	assert.Nil(t, req)
	assert.Equal(t, 0, svc.callCount())
	state := w.State()
	assert.Equal(t, PhaseInput, state.Phase)
	assert.Equal(t, "Please add ticket/s to proceed!", state.Message)
}

func TestSubmit_EmptyOrderBeatsOtherFailures(t *testing.T) {
	// no name, no location and past cutoff: the empty order is reported first
	w, _ := newTestWorkflow(at(11, 0), echoOffer)

	_, err := w.Submit(context.Background())

	assert.ErrorIs(t, err, ErrEmptyOrder)
	assert.Equal(t, PhaseInput, w.State().Phase)
}

func TestSubmit_SameDayCutoff(t *testing.T) {
	for _, now := range []time.Time{at(8, 0), at(9, 30), at(23, 59)} {
		w, svc := newTestWorkflow(now, echoOffer)
		fillOrder(t, w)
		_, err := w.SetCount(CategoryAdult, "1")
		require.NoError(t, err)

		_, err = w.Submit(context.Background())

		assert.ErrorIs(t, err, ErrSameDayCutoff, "at %s", now.Format(time.Kitchen))
		assert.Equal(t, 0, svc.callCount())
		state := w.State()
		assert.Equal(t, PhaseInput, state.Phase)
		assert.Equal(t, "Booking for the current day is closed after 8 AM.", state.Message)
	}
}

func TestSubmit_SameDayBeforeCutoff(t *testing.T) {
	w, svc := newTestWorkflow(at(7, 59), echoOffer)
	fillOrder(t, w)
	_, err := w.SetCount(CategoryAdult, "1")
	require.NoError(t, err)

	req, err := w.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, svc.callCount())
	assert.Equal(t, 1, req.BookedTicket)
	assert.Equal(t, PhaseReview, w.State().Phase)
}

func TestSubmit_FutureDateIgnoresCutoff(t *testing.T) {
	for _, now := range []time.Time{at(0, 0), at(8, 0), at(23, 59)} {
		w, _ := newTestWorkflow(now, echoOffer)
		fillOrder(t, w)
		require.NoError(t, w.SetDate(tomorrow()))
		_, err := w.SetCount(CategorySenior, "2")
		require.NoError(t, err)

		_, err = w.Submit(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, PhaseReview, w.State().Phase)
	}
}

func TestSubmit_CustomCutoffHour(t *testing.T) {
	svc := &mockOfferService{requestFn: echoOffer}
	w := NewWorkflow(svc, Options{
		Location:   ist,
		CutoffHour: 10,
		Now:        func() time.Time { return at(10, 15) },
	})
	fillOrder(t, w)
	_, err := w.SetCount(CategoryAdult, "1")
	require.NoError(t, err)

	_, err = w.Submit(context.Background())

	assert.ErrorIs(t, err, ErrSameDayCutoff)
	assert.Equal(t, "Booking for the current day is closed after 10 AM.", w.State().Message)
}

func TestSubmit_MidnightCutoff(t *testing.T) {
	svc := &mockOfferService{requestFn: echoOffer}
	w := NewWorkflow(svc, Options{
		Location:   ist,
		CutoffHour: 0,
		Now:        func() time.Time { return at(0, 5) },
	})
	fillOrder(t, w)
	_, err := w.SetCount(CategoryAdult, "1")
	require.NoError(t, err)

	_, err = w.Submit(context.Background())

	assert.ErrorIs(t, err, ErrSameDayCutoff)
	assert.Equal(t, "Booking for the current day is closed after 12 AM.", w.State().Message)
	assert.Equal(t, 0, svc.callCount())
}

func TestNewWorkflow_OutOfRangeCutoffFallsBack(t *testing.T) {
	svc := &mockOfferService{requestFn: echoOffer}
	for _, hour := range []int{-1, 24} {
		w := NewWorkflow(svc, Options{
			Location:   ist,
			CutoffHour: hour,
			Now:        func() time.Time { return at(8, 0) },
		})
		fillOrder(t, w)
		_, err := w.SetCount(CategoryAdult, "1")
		require.NoError(t, err)

		_, err = w.Submit(context.Background())

		assert.ErrorIs(t, err, ErrSameDayCutoff, "hour %d", hour)
		assert.Equal(t, "Booking for the current day is closed after 8 AM.", w.State().Message)
	}
}

func TestSubmit_MissingNameAndLocation(t *testing.T) {
	w, svc := newTestWorkflow(at(7, 0), echoOffer)
	_, err := w.SetCount(CategoryAdult, "1")
	require.NoError(t, err)
	require.NoError(t, w.SetName("   "))

	_, err = w.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNameRequired)

	require.NoError(t, w.SetName("Ravi"))
	_, err = w.Submit(context.Background())
	assert.ErrorIs(t, err, ErrInvalidLocation)
	assert.Equal(t, 0, svc.callCount())
}

func TestSubmit_BuildsRequest(t *testing.T) {
	var got BookingRequest
	w, _ := newTestWorkflow(at(7, 0), func(ctx context.Context, req BookingRequest) (*OfferResult, error) {
		got = req
		return echoOffer(ctx, req)
	})
	fillOrder(t, w)
	require.NoError(t, w.SetDate(tomorrow()))
	_, _ = w.SetCount(CategoryAdult, "2")
	_, _ = w.SetCount(CategoryChild, "1")

	_, err := w.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, BookingRequest{
		Name:                     "Asha",
		AdultTicket:              2,
		SeniorCitizenTicket:      0,
		ChildTicket:              1,
		AdultTicketPrice:         800,
		SeniorCitizenTicketPrice: 700,
		ChildTicketPrice:         600,
		BookedTicket:             3,
		PaidAmount:               2200,
		Location:                 "Kochi",
		BookedDate:               "2026-10-15T18:30:00.000Z",
	}, got)
}

func TestSubmit_NoOfferScenario(t *testing.T) {
	w, _ := newTestWorkflow(at(12, 0), echoOffer)
	fillOrder(t, w)
	require.NoError(t, w.SetDate(tomorrow()))
	_, _ = w.SetCount(CategoryAdult, "2")
	_, _ = w.SetCount(CategoryChild, "1")
	_, _ = w.SetCount(CategorySenior, "0")
	require.Equal(t, 2200, w.State().TotalPaid)

	_, err := w.Submit(context.Background())
	require.NoError(t, err)

	state := w.State()
	assert.Equal(t, PhaseReview, state.Phase)
	require.NotNil(t, state.Review)
	assert.Equal(t, 3, state.Review.TotalTickets)
	assert.Equal(t, 2200, state.Review.TotalPaid)
	assert.False(t, state.Review.ShowFreeTicket)
	assert.Empty(t, state.Review.FreeTicketLine)
	assert.Equal(t, "Fri Oct 16 2026", state.Review.VisitDate)
}

func TestSubmit_ServiceError(t *testing.T) {
	w, _ := newTestWorkflow(at(7, 0), func(ctx context.Context, req BookingRequest) (*OfferResult, error) {
		return nil, errors.New("Request failed with status code 500")
	})
	fillOrder(t, w)
	_, _ = w.SetCount(CategoryAdult, "1")

	_, err := w.Submit(context.Background())

	var se *ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "Request failed with status code 500", se.Message)
	state := w.State()
	assert.Equal(t, PhaseInput, state.Phase)
	assert.Equal(t, "Request failed with status code 500", state.Message)
	assert.Nil(t, state.Offer)
}

func TestSubmit_ServiceErrorPassthrough(t *testing.T) {
	w, _ := newTestWorkflow(at(7, 0), func(ctx context.Context, req BookingRequest) (*OfferResult, error) {
		return nil, &ServiceError{Message: "Offer window closed"}
	})
	fillOrder(t, w)
	_, _ = w.SetCount(CategoryAdult, "1")

	_, err := w.Submit(context.Background())

	assert.True(t, IsServiceError(err))
	assert.Equal(t, "Offer window closed", w.State().Message)
}

func TestSubmit_SuccessClearsMessage(t *testing.T) {
	w, _ := newTestWorkflow(at(7, 0), echoOffer)
	fillOrder(t, w)

	_, err := w.Submit(context.Background())
	require.ErrorIs(t, err, ErrEmptyOrder)
	require.NotEmpty(t, w.State().Message)

	_, _ = w.SetCount(CategoryAdult, "1")
	_, err = w.Submit(context.Background())
	require.NoError(t, err)
	assert.Empty(t, w.State().Message)
}

func TestSubmit_SingleInFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	w, svc := newTestWorkflow(at(7, 0), func(ctx context.Context, req BookingRequest) (*OfferResult, error) {
		close(started)
		<-release
		return echoOffer(ctx, req)
	})
	fillOrder(t, w)
	_, _ = w.SetCount(CategoryAdult, "1")

	done := make(chan error, 1)
	go func() {
		_, err := w.Submit(context.Background())
		done <- err
	}()
	<-started

	assert.True(t, w.State().Submitting)
	_, err := w.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
	_, err = w.SetCount(CategoryAdult, "5")
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, svc.callCount())
	state := w.State()
	assert.Equal(t, PhaseReview, state.Phase)
	assert.False(t, state.Submitting)
	assert.Equal(t, 1, state.Tickets.Adult)
}

func TestSubmit_ContextCanceled(t *testing.T) {
	w, _ := newTestWorkflow(at(7, 0), func(ctx context.Context, req BookingRequest) (*OfferResult, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	fillOrder(t, w)
	_, _ = w.SetCount(CategoryAdult, "1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := w.Submit(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, IsServiceError(err))
	state := w.State()
	assert.Equal(t, PhaseInput, state.Phase)
	assert.False(t, state.Submitting)
}

func TestSubmit_InReviewRejected(t *testing.T) {
	w, svc := newTestWorkflow(at(7, 0), echoOffer)
	fillOrder(t, w)
	_, _ = w.SetCount(CategoryAdult, "1")
	_, err := w.Submit(context.Background())
	require.NoError(t, err)

	_, err = w.Submit(context.Background())

	assert.ErrorIs(t, err, ErrNotEditable)
	assert.Equal(t, 1, svc.callCount())
}

func TestBack_RestoresSelection(t *testing.T) {
	w, _ := newTestWorkflow(at(7, 0), func(ctx context.Context, req BookingRequest) (*OfferResult, error) {
		res, _ := echoOffer(ctx, req)
		res.AdultTicket = 99
		return res, nil
	})
	fillOrder(t, w)
	_, _ = w.SetCount(CategoryAdult, "3")
	_, _ = w.SetCount(CategoryChild, "1")
	_, _ = w.SetCount(CategorySenior, "2")
	before := w.State().Tickets

	_, err := w.Submit(context.Background())
	require.NoError(t, err)
	require.NoError(t, w.Back())

	state := w.State()
	assert.Equal(t, PhaseInput, state.Phase)
	assert.Equal(t, before, state.Tickets)
	assert.Nil(t, state.Offer)
	assert.Nil(t, state.Review)
}

func TestBack_OnlyFromReview(t *testing.T) {
	w, _ := newTestWorkflow(at(7, 0), echoOffer)

	assert.ErrorIs(t, w.Back(), ErrNotInReview)
	assert.Equal(t, PhaseInput, w.State().Phase)
}

func TestReview_EditsRejected(t *testing.T) {
	w, _ := newTestWorkflow(at(7, 0), echoOffer)
	fillOrder(t, w)
	_, _ = w.SetCount(CategoryAdult, "1")
	_, err := w.Submit(context.Background())
	require.NoError(t, err)

	_, err = w.SetCount(CategoryAdult, "4")
	assert.ErrorIs(t, err, ErrNotEditable)
	assert.ErrorIs(t, w.SetLocation("Mumbai"), ErrNotEditable)
	assert.ErrorIs(t, w.SetName("Other"), ErrNotEditable)
	assert.ErrorIs(t, w.SetDate(tomorrow()), ErrNotEditable)
	assert.Equal(t, 1, w.State().Tickets.Adult)
}

func TestReview_WithOffer(t *testing.T) {
	w, _ := newTestWorkflow(at(7, 0), func(ctx context.Context, req BookingRequest) (*OfferResult, error) {
		res, _ := echoOffer(ctx, req)
		res.OfferAvailable = true
		res.FreeTicketCount = 1
		res.FreeTicketFor = "adult"
		return res, nil
	})
	fillOrder(t, w)
	_, _ = w.SetCount(CategoryAdult, "3")

	_, err := w.Submit(context.Background())
	require.NoError(t, err)

	review := w.State().Review
	require.NotNil(t, review)
	assert.True(t, review.ShowFreeTicket)
	assert.Equal(t, "1 (For adult)", review.FreeTicketLine)
	assert.Equal(t, 4, review.TotalTickets)
	assert.Equal(t, 2400, review.TotalPaid)
}

func TestConfirm_StaysInReview(t *testing.T) {
	w, svc := newTestWorkflow(at(7, 0), func(ctx context.Context, req BookingRequest) (*OfferResult, error) {
		res, _ := echoOffer(ctx, req)
		res.OfferAvailable = true
		res.FreeTicketCount = 1
		res.FreeTicketFor = "child"
		return res, nil
	})
	fillOrder(t, w)
	_, _ = w.SetCount(CategoryAdult, "2")
	_, _ = w.SetCount(CategoryChild, "1")
	_, err := w.Submit(context.Background())
	require.NoError(t, err)

	msg, err := w.Confirm()

	require.NoError(t, err)
	assert.Equal(t, "We're excited to see you! You have successfully booked 3 + 1 tickets.", msg)
	assert.Equal(t, 1, svc.callCount())
	state := w.State()
	assert.Equal(t, PhaseReview, state.Phase)
	assert.True(t, state.ConfirmationVisible)
	assert.Equal(t, msg, state.ConfirmationMessage)
	assert.Equal(t, "Asha", state.Name)
	assert.Equal(t, 2, state.Tickets.Adult)

	w.DismissConfirmation()
	state = w.State()
	assert.False(t, state.ConfirmationVisible)
	assert.Equal(t, PhaseReview, state.Phase)
}

func TestConfirm_RequiresReview(t *testing.T) {
	w, _ := newTestWorkflow(at(7, 0), echoOffer)

	_, err := w.Confirm()

	assert.ErrorIs(t, err, ErrNotInReview)
	assert.False(t, w.State().ConfirmationVisible)
}

func TestChildAdvisory_OncePerTransition(t *testing.T) {
	w, _ := newTestWorkflow(at(7, 0), echoOffer)

	raised, err := w.SetCount(CategoryChild, "2")
	require.NoError(t, err)
	assert.True(t, raised)
	assert.True(t, w.State().ChildAdvisory)

	w.DismissAdvisory()
	assert.False(t, w.State().ChildAdvisory)

	raised, _ = w.SetCount(CategoryChild, "3")
	assert.False(t, raised)
	raised, _ = w.SetCount(CategoryAdult, "1")
	assert.False(t, raised)
	assert.False(t, w.State().ChildAdvisory)

	raised, _ = w.SetCount(CategoryChild, "0")
	assert.False(t, raised)
	raised, _ = w.SetCount(CategoryChild, "1")
	assert.True(t, raised)
}

func TestSetCount_UnknownCategory(t *testing.T) {
	w, _ := newTestWorkflow(at(7, 0), echoOffer)

	_, err := w.SetCount(Category("infant"), "1")

	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.Equal(t, TicketSelection{}, w.State().Tickets)
}

func TestSetLocation_Rejected(t *testing.T) {
	w, _ := newTestWorkflow(at(7, 0), echoOffer)
	require.NoError(t, w.SetLocation("Hyderabad"))

	assert.ErrorIs(t, w.SetLocation("Delhi"), ErrInvalidLocation)
	assert.Equal(t, "Hyderabad", w.State().Location)
}

func TestSetDate(t *testing.T) {
	w, _ := newTestWorkflow(at(21, 0), echoOffer)

	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, ist), w.State().VisitDate)
	assert.ErrorIs(t, w.SetDate(time.Date(2026, 10, 14, 0, 0, 0, 0, ist)), ErrPastDate)

	require.NoError(t, w.SetDate(time.Date(2026, 12, 1, 15, 4, 5, 0, time.UTC)))
	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, ist), w.State().VisitDate)
}

func TestReset(t *testing.T) {
	w, _ := newTestWorkflow(at(7, 0), echoOffer)
	fillOrder(t, w)
	_, _ = w.SetCount(CategoryChild, "1")
	_, err := w.Submit(context.Background())
	require.NoError(t, err)
	_, err = w.Confirm()
	require.NoError(t, err)

	w.Reset()

	state := w.State()
	assert.Equal(t, PhaseInput, state.Phase)
	assert.Equal(t, TicketSelection{}, state.Tickets)
	assert.Empty(t, state.Name)
	assert.Empty(t, state.Location)
	assert.Nil(t, state.Offer)
	assert.False(t, state.ChildAdvisory)
	assert.False(t, state.ConfirmationVisible)
	assert.Empty(t, state.ConfirmationMessage)
}

func TestReset_DiscardsInFlightSubmission(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	w, _ := newTestWorkflow(at(7, 0), func(ctx context.Context, req BookingRequest) (*OfferResult, error) {
		close(started)
		<-release
		return echoOffer(ctx, req)
	})
	fillOrder(t, w)
	_, _ = w.SetCount(CategoryAdult, "1")

	done := make(chan error, 1)
	go func() {
		_, err := w.Submit(context.Background())
		done <- err
	}()
	<-started
	w.Reset()
	close(release)

	assert.ErrorIs(t, <-done, ErrSubmissionDiscarded)
	state := w.State()
	assert.Equal(t, PhaseInput, state.Phase)
	assert.Nil(t, state.Offer)
	assert.False(t, state.Submitting)
}
