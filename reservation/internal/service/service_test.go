package service_test

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/bike-rental/pkg/circuit_breaker"
	"github.com/Astemirdum/bike-rental/pkg/lock"
	"github.com/Astemirdum/bike-rental/reservation/internal/booking"
	"github.com/Astemirdum/bike-rental/reservation/internal/errs"
	"github.com/Astemirdum/bike-rental/reservation/internal/model"
	"github.com/Astemirdum/bike-rental/reservation/internal/repository"
	"github.com/Astemirdum/bike-rental/reservation/internal/service"

	repo_mocks "github.com/Astemirdum/bike-rental/reservation/internal/repository/mocks"
)

var (
	day   = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	bike1 = model.Bike{ID: 1, Name: "Mountain Explorer", PricePerHour: 10, Category: "mountain"}
)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func ptr[T any](v T) *T { return &v }

func open(id int, start, end time.Time) model.Reservation {
	return model.Reservation{ID: id, BikeID: bike1.ID, UserID: "u1", StartTime: start, ExpectedEndTime: ptr(end)}
}

func TestService_CreateReservation(t *testing.T) {
	t.Parallel()
	now := at(9, 0)
	type mockBehavior func(r *repo_mocks.MockRepository, req model.CreateReservationRequest)

	tests := []struct {
		name         string
		req          model.CreateReservationRequest
		mockBehavior mockBehavior
		want         model.Reservation
		wantErr      error
	}{
		{
			name: "ok. free bike",
			req:  model.CreateReservationRequest{BikeID: 1, UserID: "u1", StartTime: at(10, 0), EndTime: at(11, 0)},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateReservationRequest) {
				r.EXPECT().GetBike(gomock.Any(), 1).Return(bike1, nil)
				r.EXPECT().CreateReservation(gomock.Any(), req, now, gomock.Any()).
					DoAndReturn(func(_ context.Context, req model.CreateReservationRequest, _ time.Time, guard repository.Guard) (model.Reservation, error) {
						if err := guard(nil); err != nil {
							return model.Reservation{}, err
						}
						return open(1, req.StartTime, req.EndTime), nil
					})
			},
			want: open(1, at(10, 0), at(11, 0)),
		},
		{
			name: "ok. touching windows do not conflict",
			req:  model.CreateReservationRequest{BikeID: 1, UserID: "u2", StartTime: at(11, 0), EndTime: at(12, 0)},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateReservationRequest) {
				r.EXPECT().GetBike(gomock.Any(), 1).Return(bike1, nil)
				r.EXPECT().CreateReservation(gomock.Any(), req, now, gomock.Any()).
					DoAndReturn(func(_ context.Context, req model.CreateReservationRequest, _ time.Time, guard repository.Guard) (model.Reservation, error) {
						if err := guard([]model.Reservation{open(1, at(10, 0), at(11, 0))}); err != nil {
							return model.Reservation{}, err
						}
						return open(2, req.StartTime, req.EndTime), nil
					})
			},
			want: open(2, at(11, 0), at(12, 0)),
		},
		{
			name: "err. overlap",
			req:  model.CreateReservationRequest{BikeID: 1, UserID: "u2", StartTime: at(10, 30), EndTime: at(11, 30)},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateReservationRequest) {
				r.EXPECT().GetBike(gomock.Any(), 1).Return(bike1, nil)
				r.EXPECT().CreateReservation(gomock.Any(), req, now, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ model.CreateReservationRequest, _ time.Time, guard repository.Guard) (model.Reservation, error) {
						return model.Reservation{}, guard([]model.Reservation{open(1, at(10, 0), at(11, 0))})
					})
			},
			wantErr: errs.ErrConflict,
		},
		{
			name: "ok. expired reservation does not block",
			req:  model.CreateReservationRequest{BikeID: 1, UserID: "u2", StartTime: at(8, 30), EndTime: at(10, 0)},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateReservationRequest) {
				r.EXPECT().GetBike(gomock.Any(), 1).Return(bike1, nil)
				r.EXPECT().CreateReservation(gomock.Any(), req, now, gomock.Any()).
					DoAndReturn(func(_ context.Context, req model.CreateReservationRequest, _ time.Time, guard repository.Guard) (model.Reservation, error) {
						if err := guard([]model.Reservation{open(1, at(7, 0), at(8, 45))}); err != nil {
							return model.Reservation{}, err
						}
						return open(3, req.StartTime, req.EndTime), nil
					})
			},
			want: open(3, at(8, 30), at(10, 0)),
		},
		{
			name:         "err. start after end",
			req:          model.CreateReservationRequest{BikeID: 1, UserID: "u1", StartTime: at(12, 0), EndTime: at(11, 0)},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateReservationRequest) {},
			wantErr:      errs.ErrInvalidInterval,
		},
		{
			name:         "err. empty window",
			req:          model.CreateReservationRequest{BikeID: 1, UserID: "u1", StartTime: at(12, 0), EndTime: at(12, 0)},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateReservationRequest) {},
			wantErr:      errs.ErrInvalidInterval,
		},
		{
			name: "err. bike not found",
			req:  model.CreateReservationRequest{BikeID: 42, UserID: "u1", StartTime: at(10, 0), EndTime: at(11, 0)},
			mockBehavior: func(r *repo_mocks.MockRepository, req model.CreateReservationRequest) {
				r.EXPECT().GetBike(gomock.Any(), 42).Return(model.Bike{}, errs.ErrBikeNotFound)
			},
			wantErr: errs.ErrBikeNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			repo := repo_mocks.NewMockRepository(c)
			tt.mockBehavior(repo, tt.req)

			svc := service.NewService(repo, lock.NewMemory(), zap.NewNop(), service.WithClock(func() time.Time { return now }))
			got, err := svc.CreateReservation(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_EndReservation(t *testing.T) {
	t.Parallel()
	now := at(10, 45)
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)

	r := open(1, at(10, 0), at(11, 0))
	finalized := false
	repo.EXPECT().EndReservation(gomock.Any(), model.EndSelector{BikeID: 1}, now, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.EndSelector, now time.Time, cost repository.CostFunc) (model.Reservation, error) {
			if finalized {
				return model.Reservation{}, errs.ErrNoOpenReservation
			}
			finalized = true
			out := r
			out.EndTime = ptr(now)
			out.TotalCost = ptr(cost(r, bike1))
			return out, nil
		}).Times(2)

	svc := service.NewService(repo, lock.NewMemory(), zap.NewNop(), service.WithClock(func() time.Time { return now }))

	got, err := svc.EndReservation(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, got.EndTime)
	require.Equal(t, now, *got.EndTime)
	require.NotNil(t, got.TotalCost)
	require.Equal(t, 7.5, *got.TotalCost)

	_, err = svc.EndReservation(context.Background(), 1)
	require.ErrorIs(t, err, errs.ErrNoOpenReservation)
}

func TestService_EndReservationByID(t *testing.T) {
	t.Parallel()
	now := at(9, 0)
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)

	future := open(5, at(10, 0), at(11, 0))
	repo.EXPECT().EndReservation(gomock.Any(), model.EndSelector{ReservationID: 5}, now, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.EndSelector, now time.Time, cost repository.CostFunc) (model.Reservation, error) {
			out := future
			out.EndTime = ptr(now)
			out.TotalCost = ptr(cost(future, bike1))
			return out, nil
		})
	repo.EXPECT().EndReservation(gomock.Any(), model.EndSelector{ReservationID: 6}, now, gomock.Any()).
		Return(model.Reservation{}, errs.ErrNoOpenReservation)

	svc := service.NewService(repo, lock.NewMemory(), zap.NewNop(), service.WithClock(func() time.Time { return now }))

	got, err := svc.EndReservationByID(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, 0.0, *got.TotalCost)

	_, err = svc.EndReservationByID(context.Background(), 6)
	require.ErrorIs(t, err, errs.ErrNoOpenReservation)
}

func TestService_CheckAvailability(t *testing.T) {
	t.Parallel()
	now := at(9, 0)
	existing := []model.Reservation{open(1, at(10, 0), at(11, 0))}

	tests := []struct {
		name          string
		window        booking.Window
		wantAvailable bool
		wantConflicts []model.Reservation
	}{
		{
			name:          "overlap",
			window:        booking.Window{Start: at(10, 30), End: at(11, 30)},
			wantAvailable: false,
			wantConflicts: existing,
		},
		{
			name:          "touching",
			window:        booking.Window{Start: at(11, 0), End: at(12, 0)},
			wantAvailable: true,
			wantConflicts: []model.Reservation{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			repo := repo_mocks.NewMockRepository(c)
			repo.EXPECT().GetBike(gomock.Any(), 1).Return(bike1, nil)
			repo.EXPECT().GetActiveReservations(gomock.Any(), 1, now).Return(existing, nil)

			svc := service.NewService(repo, lock.NewMemory(), zap.NewNop(), service.WithClock(func() time.Time { return now }))
			got, err := svc.CheckAvailability(context.Background(), 1, tt.window)
			require.NoError(t, err)
			require.Equal(t, tt.wantAvailable, got.Available)
			require.Equal(t, tt.wantConflicts, got.Conflicts)
			require.Equal(t, tt.window.Start, got.StartTime)
		})
	}

	t.Run("invalid window", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		svc := service.NewService(repo_mocks.NewMockRepository(c), lock.NewMemory(), zap.NewNop())
		_, err := svc.CheckAvailability(context.Background(), 1, booking.Window{Start: at(11, 0), End: at(10, 0)})
		require.ErrorIs(t, err, errs.ErrInvalidInterval)
	})
}

func TestService_ListPassthrough(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)

	newer := model.ReservationWithBike{Reservation: open(2, at(12, 0), at(13, 0)), Bike: bike1}
	older := model.ReservationWithBike{Reservation: open(1, at(10, 0), at(11, 0)), Bike: bike1}
	repo.EXPECT().ListReservationsByUser(gomock.Any(), "u1").Return([]model.ReservationWithBike{newer, older}, nil)
	repo.EXPECT().ListReservations(gomock.Any()).Return(nil, errors.New("db down"))
	repo.EXPECT().CountReservations(gomock.Any()).Return(2, nil)
	repo.EXPECT().DeleteReservations(gomock.Any()).Return(int64(2), nil)

	svc := service.NewService(repo, lock.NewMemory(), zap.NewNop())
	ctx := context.Background()

	byUser, err := svc.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []model.ReservationWithBike{newer, older}, byUser)

	_, err = svc.ListAll(ctx)
	require.EqualError(t, err, "db down")

	n, err := svc.CountReservations(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	deleted, err := svc.ResetReservations(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), deleted)
}

// memRepo keeps reservations in a slice and runs the guard without any locking
// of its own, so only the service lock keeps concurrent creates apart.
type memRepo struct {
	repository.Repository
	mu   sync.Mutex
	rows []model.Reservation
}

func (m *memRepo) GetBike(_ context.Context, id int) (model.Bike, error) {
	if id != bike1.ID {
		return model.Bike{}, errs.ErrBikeNotFound
	}
	return bike1, nil
}

func (m *memRepo) snapshot() []model.Reservation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Reservation(nil), m.rows...)
}

func (m *memRepo) CreateReservation(_ context.Context, req model.CreateReservationRequest, now time.Time, guard repository.Guard) (model.Reservation, error) {
	active := booking.Active(m.snapshot(), now)
	time.Sleep(time.Millisecond)
	if err := guard(active); err != nil {
		return model.Reservation{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r := model.Reservation{
		ID:              len(m.rows) + 1,
		BikeID:          req.BikeID,
		UserID:          req.UserID,
		StartTime:       req.StartTime,
		ExpectedEndTime: ptr(req.EndTime),
	}
	m.rows = append(m.rows, r)
	return r, nil
}

func TestService_CreateReservation_Concurrent(t *testing.T) {
	t.Parallel()
	now := at(8, 0)
	repo := &memRepo{}
	svc := service.NewService(repo, lock.NewMemory(), zap.NewNop(), service.WithClock(func() time.Time { return now }))

	const workers = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < workers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := at(10, 0).Add(time.Duration(i%4) * 15 * time.Minute)
			_, err := svc.CreateReservation(context.Background(), model.CreateReservationRequest{
				BikeID:    1,
				UserID:    "u",
				StartTime: start,
				EndTime:   start.Add(time.Hour),
			})
			if err != nil && !errors.Is(err, errs.ErrConflict) {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	rows := repo.snapshot()
	require.Equal(t, 1, success)
	require.Len(t, rows, 1)

	sort.Slice(rows, func(i, j int) bool { return rows[i].StartTime.Before(rows[j].StartTime) })
	for i := 1; i < len(rows); i++ {
		require.False(t, booking.Occupancy(rows[i-1]).Overlaps(booking.Occupancy(rows[i])))
	}
}

type failingLocker struct{ err error }

func (l failingLocker) Lock(context.Context, string) (func(), error) {
	return nil, l.err
}

func TestService_CreateReservation_LockerDown(t *testing.T) {
	t.Parallel()
	now := at(9, 0)
	req := model.CreateReservationRequest{BikeID: 1, UserID: "u1", StartTime: at(10, 0), EndTime: at(11, 0)}

	t.Run("ok. booking proceeds under the store lock", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		repo.EXPECT().GetBike(gomock.Any(), 1).Return(bike1, nil)
		repo.EXPECT().CreateReservation(gomock.Any(), req, now, gomock.Any()).Return(open(1, req.StartTime, req.EndTime), nil)

		svc := service.NewService(repo, failingLocker{err: circuit_breaker.ErrOpen}, zap.NewNop(),
			service.WithClock(func() time.Time { return now }))
		got, err := svc.CreateReservation(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, 1, got.ID)
	})

	t.Run("err. caller gave up", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		repo.EXPECT().GetBike(gomock.Any(), 1).Return(bike1, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		svc := service.NewService(repo, failingLocker{err: context.Canceled}, zap.NewNop(),
			service.WithClock(func() time.Time { return now }))
		_, err := svc.CreateReservation(ctx, req)
		require.ErrorIs(t, err, context.Canceled)
	})
}
