package application

import (
	"fmt"
	"time"

	"github.com/raushan1895/resort360/internal/domain"
)

// In-memory repositories backing the service tests.

type fakeRoomRepo struct {
	rooms  map[int]*domain.Room
	nextID int
}

func newFakeRoomRepo(rooms ...*domain.Room) *fakeRoomRepo {
	repo := &fakeRoomRepo{rooms: make(map[int]*domain.Room), nextID: 100}
	for _, r := range rooms {
		repo.rooms[r.ID] = r
	}
	return repo
}

func (f *fakeRoomRepo) GetAll() ([]domain.Room, error) {
	out := make([]domain.Room, 0, len(f.rooms))
	for _, r := range f.rooms {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRoomRepo) GetByID(id int) (*domain.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, domain.NewNotFoundError("room", id)
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRoomRepo) Create(room *domain.Room) error {
	f.nextID++
	room.ID = f.nextID
	f.rooms[room.ID] = room
	return nil
}

func (f *fakeRoomRepo) Update(room *domain.Room) error {
	f.rooms[room.ID] = room
	return nil
}

func (f *fakeRoomRepo) UpdateStatus(id int, status domain.RoomStatus) error {
	f.rooms[id].Status = status
	return nil
}

func (f *fakeRoomRepo) GetRoomTypes() ([]domain.RoomType, error) { return nil, nil }

func (f *fakeRoomRepo) AddSeasonalPricing(roomID int, sp *domain.SeasonalPricing) error {
	f.nextID++
	sp.ID = f.nextID
	f.rooms[roomID].Seasonal = append(f.rooms[roomID].Seasonal, *sp)
	return nil
}

func (f *fakeRoomRepo) UpdateSeasonalPricing(roomID int, sp *domain.SeasonalPricing) error {
	for i, existing := range f.rooms[roomID].Seasonal {
		if existing.ID == sp.ID {
			f.rooms[roomID].Seasonal[i] = *sp
		}
	}
	return nil
}

func (f *fakeRoomRepo) DeleteSeasonalPricing(roomID, pricingID int) error {
	room := f.rooms[roomID]
	for i, sp := range room.Seasonal {
		if sp.ID == pricingID {
			room.Seasonal = append(room.Seasonal[:i], room.Seasonal[i+1:]...)
			return nil
		}
	}
	return domain.NewNotFoundError("seasonal pricing", pricingID)
}

func (f *fakeRoomRepo) AddDiscount(roomID int, d *domain.Discount) error {
	f.nextID++
	d.ID = f.nextID
	f.rooms[roomID].Discounts = append(f.rooms[roomID].Discounts, *d)
	return nil
}

func (f *fakeRoomRepo) UpdateDiscount(roomID int, d *domain.Discount) error {
	for i, existing := range f.rooms[roomID].Discounts {
		if existing.ID == d.ID {
			f.rooms[roomID].Discounts[i] = *d
		}
	}
	return nil
}

func (f *fakeRoomRepo) DeleteDiscount(roomID, discountID int) error {
	room := f.rooms[roomID]
	for i, d := range room.Discounts {
		if d.ID == discountID {
			room.Discounts = append(room.Discounts[:i], room.Discounts[i+1:]...)
			return nil
		}
	}
	return domain.NewNotFoundError("discount", discountID)
}

func (f *fakeRoomRepo) AddMaintenanceWindow(roomID int, w *domain.MaintenanceWindow) error {
	f.nextID++
	w.ID = f.nextID
	f.rooms[roomID].Maintenance = append(f.rooms[roomID].Maintenance, *w)
	return nil
}

func (f *fakeRoomRepo) UpdateMaintenanceStatus(roomID, windowID int, status domain.MaintenanceStatus) error {
	for i, mw := range f.rooms[roomID].Maintenance {
		if mw.ID == windowID {
			f.rooms[roomID].Maintenance[i].Status = status
			return nil
		}
	}
	return domain.NewNotFoundError("maintenance window", windowID)
}

func (f *fakeRoomRepo) CompleteFinishedMaintenance(asOf time.Time) (int64, error) { return 0, nil }

func (f *fakeRoomRepo) AddImage(roomID int, img *domain.RoomImage) error {
	f.nextID++
	img.ID = f.nextID
	f.rooms[roomID].Images = append(f.rooms[roomID].Images, *img)
	return nil
}

type fakeBookingRepo struct {
	bookings map[int]*domain.Booking
	nextID   int
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[int]*domain.Booking), nextID: 100}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(id int) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, domain.NewNotFoundError("booking", id)
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) GetByReference(reference string) (*domain.Booking, error) {
	for _, b := range f.bookings {
		if b.Reference == reference {
			cp := *b
			return &cp, nil
		}
	}
	return nil, domain.NewNotFoundError("booking", reference)
}

func (f *fakeBookingRepo) GetByRoom(roomID int) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.RoomID == roomID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByGuest(guestID int) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.GuestID == guestID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetInRange(from, to time.Time) ([]domain.Booking, error) {
	window := domain.DateInterval{Start: from, End: to}
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.Stay.Overlaps(window) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Create(booking *domain.Booking) error {
	f.nextID++
	booking.ID = f.nextID
	cp := *booking
	f.bookings[booking.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(id int, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return domain.NewNotFoundError("booking", id)
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) AddServices(bookingID int, services []domain.BookedService) error {
	b, ok := f.bookings[bookingID]
	if !ok {
		return domain.NewNotFoundError("booking", bookingID)
	}
	b.Services = append(b.Services, services...)
	for _, s := range services {
		b.TotalPrice += s.Price
	}
	return nil
}

func (f *fakeBookingRepo) CompleteExpired(asOf time.Time) (int64, error) { return 0, nil }

type fakeUserRepo struct {
	users  map[int]*domain.User
	nextID int
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[int]*domain.User), nextID: 100}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) Create(user *domain.User) error {
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(id int) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.NewNotFoundError("user", id)
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.NewNotFoundError("user", email)
}

func (f *fakeUserRepo) UpdateRole(id int, role domain.Role) error {
	u, ok := f.users[id]
	if !ok {
		return domain.NewNotFoundError("user", id)
	}
	u.Role = role
	return nil
}

func (f *fakeUserRepo) List() ([]domain.User, error) {
	out := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

type fakeSessionRepo struct {
	sessions map[string]*domain.Session
	nextID   int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (f *fakeSessionRepo) Create(session *domain.Session) error {
	if session.Token == "" {
		f.nextID++
		session.Token = fmt.Sprintf("token-%d", f.nextID)
	}
	session.CreatedAt = time.Now()
	f.sessions[session.Token] = session
	return nil
}

func (f *fakeSessionRepo) GetByToken(token string) (*domain.Session, error) {
	s, ok := f.sessions[token]
	if !ok {
		return nil, domain.NewNotFoundError("session", token)
	}
	return s, nil
}

func (f *fakeSessionRepo) Delete(token string) error {
	delete(f.sessions, token)
	return nil
}

func (f *fakeSessionRepo) DeleteExpired(asOf time.Time) (int64, error) { return 0, nil }

type fakePaymentRepo struct {
	payments []*domain.Payment
}

func (f *fakePaymentRepo) Create(payment *domain.Payment) error {
	payment.ID = len(f.payments) + 1
	f.payments = append(f.payments, payment)
	return nil
}

func (f *fakePaymentRepo) GetByBooking(bookingID int) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range f.payments {
		if p.BookingID == bookingID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) UpdateStatus(id int, status domain.PaymentStatus) error { return nil }

type fakeServiceRepo struct {
	services map[int]*domain.Service
}

func newFakeServiceRepo(services ...*domain.Service) *fakeServiceRepo {
	repo := &fakeServiceRepo{services: make(map[int]*domain.Service)}
	for _, s := range services {
		repo.services[s.ID] = s
	}
	return repo
}

func (f *fakeServiceRepo) GetAll() ([]domain.Service, error) {
	out := make([]domain.Service, 0, len(f.services))
	for _, s := range f.services {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeServiceRepo) GetByID(id int) (*domain.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, domain.NewNotFoundError("service", id)
	}
	return s, nil
}

type fakeEventRepo struct {
	events map[int]*domain.Event
	nextID int
}

func newFakeEventRepo(events ...*domain.Event) *fakeEventRepo {
	repo := &fakeEventRepo{events: make(map[int]*domain.Event), nextID: 100}
	for _, e := range events {
		repo.events[e.ID] = e
	}
	return repo
}

func (f *fakeEventRepo) GetAll() ([]domain.Event, error) {
	out := make([]domain.Event, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEventRepo) GetByID(id int) (*domain.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, domain.NewNotFoundError("event", id)
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEventRepo) GetByVenue(venue string) ([]domain.Event, error) {
	var out []domain.Event
	for _, e := range f.events {
		if e.Venue == venue {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Create(event *domain.Event) error {
	f.nextID++
	event.ID = f.nextID
	cp := *event
	f.events[event.ID] = &cp
	return nil
}

func (f *fakeEventRepo) Update(event *domain.Event) error {
	cp := *event
	f.events[event.ID] = &cp
	return nil
}

func (f *fakeEventRepo) UpdateStatus(id int, status domain.EventStatus) error {
	e, ok := f.events[id]
	if !ok {
		return domain.NewNotFoundError("event", id)
	}
	e.Status = status
	return nil
}
