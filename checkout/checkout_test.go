package checkout

import (
	"context"
	"errors"
	"testing"

	"itinero/apperr"
	"itinero/models"
	"itinero/payments"
	"itinero/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeItineraryStore struct {
	records  map[string]models.Itinerary
	batchErr error
}

func (f *fakeItineraryStore) GetByIDs(ctx context.Context, ids []string) ([]models.Itinerary, error) {
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	var out []models.Itinerary
	for _, id := range ids {
		if rec, ok := f.records[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeItineraryStore) Query(context.Context, models.ItineraryQuery) (*models.QueryResult, error) {
	return nil, nil
}
func (f *fakeItineraryStore) GetByID(context.Context, string) (*models.Itinerary, error) {
	return nil, store.ErrNotFound
}
func (f *fakeItineraryStore) GetByCreator(context.Context, string) ([]models.Itinerary, error) {
	return nil, nil
}
func (f *fakeItineraryStore) Create(context.Context, *models.Itinerary) error  { return nil }
func (f *fakeItineraryStore) Update(context.Context, string, map[string]any) error {
	return nil
}
func (f *fakeItineraryStore) Delete(context.Context, string) error         { return nil }
func (f *fakeItineraryStore) IncrementViews(context.Context, string) error { return nil }

type fakePurchaseStore struct {
	owned []string
}

func (f *fakePurchaseStore) Create(context.Context, *models.Purchase) error { return nil }
func (f *fakePurchaseStore) PurchasedAmong(_ context.Context, _ string, ids []string) ([]string, error) {
	var hits []string
	for _, id := range ids {
		for _, o := range f.owned {
			if id == o {
				hits = append(hits, id)
			}
		}
	}
	return hits, nil
}
func (f *fakePurchaseStore) ListByUser(context.Context, string) ([]models.Purchase, error) {
	return nil, nil
}

type fakeUserStore struct {
	users map[string]models.User
}

func (f *fakeUserStore) Create(context.Context, *models.User) error { return nil }
func (f *fakeUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, store.ErrNotFound
}
func (f *fakeUserStore) GetByUsername(context.Context, string) (*models.User, error) {
	return nil, store.ErrNotFound
}
func (f *fakeUserStore) Update(context.Context, string, map[string]any) error { return nil }

type fakeSessionCreator struct {
	lastConfig payments.SessionConfig
	url        string
	err        error
	calls      int
}

func (f *fakeSessionCreator) CreateSession(_ context.Context, cfg payments.SessionConfig) (string, error) {
	f.calls++
	f.lastConfig = cfg
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func newService(it *fakeItineraryStore, pu *fakePurchaseStore, us *fakeUserStore, sc *fakeSessionCreator) *Service {
	return &Service{
		Itineraries: it,
		Purchases:   pu,
		Users:       us,
		Sessions:    sc,
		BaseURL:     "https://itinero.test",
	}
}

func TestBuildSession_EmptyCart(t *testing.T) {
	sessions := &fakeSessionCreator{url: "https://pay.test/s"}
	svc := newService(&fakeItineraryStore{}, &fakePurchaseStore{}, &fakeUserStore{}, sessions)

	_, err := svc.BuildSession(context.Background(), "user-1", nil)

	assert.ErrorIs(t, err, apperr.ErrEmptyCart)
	// Rejected before any external call.
	assert.Equal(t, 0, sessions.calls)
}

func TestBuildSession_BatchFetchFails(t *testing.T) {
	itStore := &fakeItineraryStore{batchErr: errors.New("connection reset")}
	sessions := &fakeSessionCreator{url: "https://pay.test/s"}
	svc := newService(itStore, &fakePurchaseStore{}, &fakeUserStore{}, sessions)

	_, err := svc.BuildSession(context.Background(), "", []models.CartItem{{ItineraryID: "it-1"}})

	var verr *apperr.VerificationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, sessions.calls)
}

func TestBuildSession_NoMatchingRecords(t *testing.T) {
	svc := newService(&fakeItineraryStore{records: map[string]models.Itinerary{}},
		&fakePurchaseStore{}, &fakeUserStore{}, &fakeSessionCreator{url: "u"})

	_, err := svc.BuildSession(context.Background(), "", []models.CartItem{{ItineraryID: "ghost"}})

	var verr *apperr.VerificationError
	assert.ErrorAs(t, err, &verr)
}

func TestBuildSession_PriceComesFromStoredRecord(t *testing.T) {
	itStore := &fakeItineraryStore{records: map[string]models.Itinerary{
		"it-1": {ItineraryID: "it-1", Title: "Kyoto in 5 Days", Price: 5000},
	}}
	sessions := &fakeSessionCreator{url: "https://pay.test/s"}
	svc := newService(itStore, &fakePurchaseStore{}, &fakeUserStore{}, sessions)

	// Client claims the itinerary is free.
	url, err := svc.BuildSession(context.Background(), "", []models.CartItem{
		{ItineraryID: "it-1", Price: 0},
	})

	require.NoError(t, err)
	assert.Equal(t, "https://pay.test/s", url)
	require.Len(t, sessions.lastConfig.LineItems, 1)
	assert.Equal(t, int64(5000), sessions.lastConfig.LineItems[0].Amount)
}

func TestBuildSession_DuplicatePurchaseRejected(t *testing.T) {
	itStore := &fakeItineraryStore{records: map[string]models.Itinerary{
		"it-1": {ItineraryID: "it-1", Price: 5000},
		"it-2": {ItineraryID: "it-2", Price: 3000},
	}}
	sessions := &fakeSessionCreator{url: "https://pay.test/s"}
	svc := newService(itStore, &fakePurchaseStore{owned: []string{"it-1"}}, &fakeUserStore{}, sessions)

	_, err := svc.BuildSession(context.Background(), "user-1", []models.CartItem{
		{ItineraryID: "it-1"}, {ItineraryID: "it-2"},
	})

	var dup *apperr.DuplicatePurchaseError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, []string{"it-1"}, dup.ItineraryIDs)
	// No session is created when any item was already purchased.
	assert.Equal(t, 0, sessions.calls)
}

func TestBuildSession_AnonymousSkipsDuplicateCheck(t *testing.T) {
	itStore := &fakeItineraryStore{records: map[string]models.Itinerary{
		"it-1": {ItineraryID: "it-1", Price: 5000},
	}}
	sessions := &fakeSessionCreator{url: "https://pay.test/s"}
	// The purchase store claims ownership, but there is no caller to match.
	svc := newService(itStore, &fakePurchaseStore{owned: []string{"it-1"}}, &fakeUserStore{}, sessions)

	url, err := svc.BuildSession(context.Background(), "", []models.CartItem{{ItineraryID: "it-1"}})

	require.NoError(t, err)
	assert.NotEmpty(t, url)
}

func TestBuildSession_MetadataForAuthenticatedCaller(t *testing.T) {
	itStore := &fakeItineraryStore{records: map[string]models.Itinerary{
		"it-1": {ItineraryID: "it-1", Price: 5000},
		"it-2": {ItineraryID: "it-2", Price: 2500},
	}}
	users := &fakeUserStore{users: map[string]models.User{
		"user-1": {UserID: "user-1", Email: "traveler@example.com"},
	}}
	sessions := &fakeSessionCreator{url: "https://pay.test/s"}
	svc := newService(itStore, &fakePurchaseStore{}, users, sessions)

	_, err := svc.BuildSession(context.Background(), "user-1", []models.CartItem{
		{ItineraryID: "it-1"}, {ItineraryID: "it-2"},
	})

	require.NoError(t, err)
	md := sessions.lastConfig.Metadata
	assert.Equal(t, "it-1,it-2", md["itinerary_ids"])
	assert.Equal(t, "itinerary", md["purchase_type"])
	assert.Equal(t, "user-1", md["user_id"])
	assert.Equal(t, "traveler@example.com", sessions.lastConfig.CustomerEmail)
}

func TestBuildSession_ProcessorFailureIsUpstream(t *testing.T) {
	itStore := &fakeItineraryStore{records: map[string]models.Itinerary{
		"it-1": {ItineraryID: "it-1", Price: 5000},
	}}
	sessions := &fakeSessionCreator{err: errors.New("processor down")}
	svc := newService(itStore, &fakePurchaseStore{}, &fakeUserStore{}, sessions)

	_, err := svc.BuildSession(context.Background(), "", []models.CartItem{{ItineraryID: "it-1"}})

	var up *apperr.UpstreamError
	require.ErrorAs(t, err, &up)
	assert.Equal(t, 500, apperr.Status(err))
}
