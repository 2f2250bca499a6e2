package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	bookingRepo "dahabiyat/database/repository/booking"
	catalogRepo "dahabiyat/database/repository/catalog"
	userRepo "dahabiyat/database/repository/user"
	"dahabiyat/models"
)

// In-memory stand-ins for the mongo repositories. The booking fake serializes
// CreateAtomically on a dedicated mutex so the recheck-then-insert sequence is
// atomic, matching the transactional repository contract.

type fakeCatalog struct {
	items map[string]models.BookableItem
}

func (f *fakeCatalog) GetBookableItem(_ context.Context, kind models.ItemKind, id string) (models.BookableItem, error) {
	item, ok := f.items[id]
	if !ok || item.Kind() != kind {
		return nil, catalogRepo.ErrItemNotFound
	}
	return item, nil
}

type fakeBookingRepo struct {
	mu sync.Mutex

	bookings  map[string]*models.Booking
	revisions map[string]int

	// afterRecheck, when set, runs between a transaction's recheck and its
	// commit attempt. Tests use it to hold several transactions past their
	// recheck before any of them commits.
	afterRecheck func()
	// forcedRefCollisions fails the next N commits as duplicate references.
	forcedRefCollisions int
	// attemptedRefs records the reference carried into each commit attempt.
	attemptedRefs []string
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings:  make(map[string]*models.Booking),
		revisions: make(map[string]int),
	}
}

// CreateAtomically mirrors the mongo transaction semantics rather than
// serializing callers: the recheck reads a snapshot that racing inserts are
// invisible to, and only the revision bump on the catalogue item detects a
// concurrent commit. A conflicting commit retries the whole transaction,
// recheck included.
func (f *fakeBookingRepo) CreateAtomically(ctx context.Context, b *models.Booking, recheck func(txCtx context.Context) error) error {
	key := string(b.Kind) + "/" + b.ItemID
	for {
		f.mu.Lock()
		rev := f.revisions[key]
		f.mu.Unlock()

		if err := recheck(ctx); err != nil {
			return err
		}
		if f.afterRecheck != nil {
			f.afterRecheck()
		}

		f.mu.Lock()
		if f.revisions[key] != rev {
			// Write conflict with a commit that landed after our snapshot.
			f.mu.Unlock()
			continue
		}
		f.attemptedRefs = append(f.attemptedRefs, b.Reference)
		if f.forcedRefCollisions > 0 {
			f.forcedRefCollisions--
			f.mu.Unlock()
			return bookingRepo.ErrDuplicateReference
		}
		for _, existing := range f.bookings {
			if existing.Reference == b.Reference {
				f.mu.Unlock()
				return bookingRepo.ErrDuplicateReference
			}
		}
		f.revisions[key] = rev + 1
		stored := *b
		f.bookings[b.ID] = &stored
		f.mu.Unlock()
		return nil
	}
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	out := *b
	return &out, nil
}

func (f *fakeBookingRepo) ListByUser(_ context.Context, userID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListAll(_ context.Context) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookingRepo) FindOverlapping(_ context.Context, kind models.ItemKind, itemID string, rng models.DateRange, excludeID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Kind != kind || b.ItemID != itemID || b.ID == excludeID {
			continue
		}
		if !b.Active() {
			continue
		}
		if b.Range().Overlaps(rng) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id string, from []models.BookingStatus, to models.BookingStatus) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	matched := false
	for _, s := range from {
		if b.Status == s {
			matched = true
			break
		}
	}
	if !matched {
		return nil, bookingRepo.ErrStatusConflict
	}
	b.Status = to
	b.UpdatedAt = time.Now().UTC()
	out := *b
	return &out, nil
}

type fakeBlockedRepo struct {
	mu     sync.Mutex
	blocks []models.AvailabilityBlock
}

func (f *fakeBlockedRepo) FindInRange(_ context.Context, kind models.ItemKind, itemID string, rng models.DateRange) ([]models.AvailabilityBlock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.AvailabilityBlock
	for _, b := range f.blocks {
		if b.Kind == kind && b.ItemID == itemID && rng.Contains(b.Date) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBlockedRepo) Create(_ context.Context, block *models.AvailabilityBlock) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blocks = append(f.blocks, *block)
	return nil
}

func (f *fakeBlockedRepo) Delete(_ context.Context, blockID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, b := range f.blocks {
		if b.BlockID == blockID {
			f.blocks = append(f.blocks[:i], f.blocks[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeBlockedRepo) ListByItem(_ context.Context, kind models.ItemKind, itemID string) ([]models.AvailabilityBlock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.AvailabilityBlock
	for _, b := range f.blocks {
		if b.Kind == kind && b.ItemID == itemID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (f *fakeUserRepo) ListAdmins(_ context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, u := range f.users {
		if u.IsAdmin() {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) PushNotification(_ context.Context, userID string, n models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return userRepo.ErrUserNotFound
	}
	u.Notifications = append(u.Notifications, n)
	return nil
}

// recordingNotifier captures dispatched lifecycle events on a buffered channel
// so tests can wait for the asynchronous fan-out.
type recordingNotifier struct {
	events chan models.LifecycleEvent
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{events: make(chan models.LifecycleEvent, 16)}
}

func (r *recordingNotifier) DispatchBookingEvent(_ context.Context, event models.LifecycleEvent) error {
	r.events <- event
	return nil
}

func (r *recordingNotifier) waitForEvent(t *testing.T, kind models.LifecycleEventKind) models.LifecycleEvent {
	t.Helper()
	select {
	case ev := <-r.events:
		if ev.Kind != kind {
			t.Fatalf("expected %s event, got %s", kind, ev.Kind)
		}
		return ev
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s event", kind)
	}
	return models.LifecycleEvent{}
}

// testEnv bundles one fully wired service over in-memory repositories.
type testEnv struct {
	catalog  *fakeCatalog
	bookings *fakeBookingRepo
	blocked  *fakeBlockedRepo
	users    *fakeUserRepo
	notifier *recordingNotifier

	engine  *DefaultAvailabilityEngine
	service *DefaultReservationService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		catalog:  &fakeCatalog{items: make(map[string]models.BookableItem)},
		bookings: newFakeBookingRepo(),
		blocked:  &fakeBlockedRepo{},
		users:    &fakeUserRepo{users: make(map[string]*models.User)},
		notifier: newRecordingNotifier(),
	}
	env.engine = &DefaultAvailabilityEngine{
		Catalog:  env.catalog,
		Bookings: env.bookings,
		Blocked:  env.blocked,
	}
	env.service = &DefaultReservationService{
		Engine:   env.engine,
		Bookings: env.bookings,
		Users:    env.users,
		Notifier: env.notifier,
	}
	return env
}

func (env *testEnv) addVessel(id string, capacity int, pricePerDay float64) {
	env.catalog.items[id] = models.Vessel{
		ID: id, Name: "Nile Queen", Capacity: capacity, PricePerDay: pricePerDay, IsActive: true,
	}
}

func (env *testEnv) addPackage(id string, maxGuests, durationDays int, fixedPrice float64) {
	env.catalog.items[id] = models.Package{
		ID: id, Name: "Aswan Explorer", MaxGuests: maxGuests, FixedPrice: fixedPrice,
		DurationDays: durationDays, IsActive: true,
	}
}

func (env *testEnv) addUser(id, name, role string) {
	env.users.users[id] = &models.User{ID: id, Name: name, Email: id + "@example.com", Role: role}
}

// futureDate returns midnight UTC the given number of days from now. Keeps
// test fixtures clear of the past-date guard.
func futureDate(days int) time.Time {
	return models.Midnight(time.Now().UTC()).AddDate(0, 0, days)
}

func futureRange(startDays, length int) models.DateRange {
	start := futureDate(startDays)
	return models.DateRange{Start: start, End: start.AddDate(0, 0, length)}
}
