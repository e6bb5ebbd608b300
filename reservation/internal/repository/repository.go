package repository

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/bike-rental/reservation/internal/errs"
	"github.com/Astemirdum/bike-rental/reservation/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

// Guard inspects the open, non-expired reservations of a bike inside the create
// transaction. A non-nil error aborts the insert.
type Guard func(active []model.Reservation) error

// CostFunc prices a reservation being finalized.
type CostFunc func(r model.Reservation, bike model.Bike) float64

type Repository interface {
	ListBikes(ctx context.Context, category string) ([]model.Bike, error)
	GetBike(ctx context.Context, id int) (model.Bike, error)
	CreateReservation(ctx context.Context, req model.CreateReservationRequest, now time.Time, guard Guard) (model.Reservation, error)
	GetActiveReservations(ctx context.Context, bikeID int, now time.Time) ([]model.Reservation, error)
	EndReservation(ctx context.Context, sel model.EndSelector, now time.Time, cost CostFunc) (model.Reservation, error)
	ListReservationsByUser(ctx context.Context, userID string) ([]model.ReservationWithBike, error)
	ListReservations(ctx context.Context) ([]model.ReservationWithBike, error)
	CountReservations(ctx context.Context) (int, error)
	DeleteReservations(ctx context.Context) (int64, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	bikeTableName        = `bike`
	reservationTableName = `reservation`

	// first key of pg_advisory_xact_lock(int, int); the second is the bike id
	bikeLockNamespace int32 = 0x62696b65
)

var (
	qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	bikeColumns        = []string{"id", "name", "description", "price_per_hour", "category", "image"}
	reservationColumns = []string{"id", "bike_id", "user_id", "customer_name", "start_time", "expected_end_time", "end_time", "total_cost", "created_at"}
	joinedColumns      = []string{
		"r.id", "r.bike_id", "r.user_id", "r.customer_name", "r.start_time", "r.expected_end_time", "r.end_time", "r.total_cost", "r.created_at",
		"b.name as bike_name", "b.description as bike_description", "b.price_per_hour as bike_price_per_hour",
		"b.category as bike_category", "b.image as bike_image",
	}
)

type reservationBikeRow struct {
	model.Reservation
	BikeName         string  `db:"bike_name"`
	BikeDescription  string  `db:"bike_description"`
	BikePricePerHour float64 `db:"bike_price_per_hour"`
	BikeCategory     string  `db:"bike_category"`
	BikeImage        string  `db:"bike_image"`
}

func (row reservationBikeRow) withBike() model.ReservationWithBike {
	return model.ReservationWithBike{
		Reservation: row.Reservation,
		Bike: model.Bike{
			ID:           row.BikeID,
			Name:         row.BikeName,
			Description:  row.BikeDescription,
			PricePerHour: row.BikePricePerHour,
			Category:     row.BikeCategory,
			Image:        row.BikeImage,
		},
	}
}

func joinedSelect() sq.SelectBuilder {
	return qb.Select(joinedColumns...).
		From(reservationTableName + " r").
		Join(fmt.Sprintf("%s b on b.id = r.bike_id", bikeTableName))
}

func activeFilter(prefix string, now time.Time) sq.Sqlizer {
	return sq.And{
		sq.Eq{prefix + "end_time": nil},
		sq.Or{
			sq.Eq{prefix + "expected_end_time": nil},
			sq.Gt{prefix + "expected_end_time": now},
		},
	}
}

func (r *repository) ListBikes(ctx context.Context, category string) ([]model.Bike, error) {
	q := qb.Select(bikeColumns...).
		From(bikeTableName).
		OrderBy("id")
	if category != "" {
		q = q.Where(sq.Eq{"category": category})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bikes, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Bike])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return bikes, nil
}

func (r *repository) GetBike(ctx context.Context, id int) (model.Bike, error) {
	query, args, err := qb.Select(bikeColumns...).
		From(bikeTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Bike{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Bike{}, err
	}
	defer rows.Close()

	bike, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Bike])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Bike{}, errs.ErrBikeNotFound
		}
		return model.Bike{}, err
	}
	return bike, nil
}

func (r *repository) GetActiveReservations(ctx context.Context, bikeID int, now time.Time) ([]model.Reservation, error) {
	return r.activeReservations(ctx, r.db, bikeID, now)
}

func (r *repository) activeReservations(ctx context.Context, q querier, bikeID int, now time.Time) ([]model.Reservation, error) {
	query, args, err := qb.Select(reservationColumns...).
		From(reservationTableName).
		Where(sq.Eq{"bike_id": bikeID}).
		Where(activeFilter("", now)).
		OrderBy("start_time").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Reservation])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return items, nil
}

// advisoryKey narrows a bike id to the int4 second key of pg_advisory_xact_lock.
// bike.id is serial (int4), so an id outside that range cannot name a bike.
func advisoryKey(bikeID int) (int32, error) {
	if bikeID <= 0 || bikeID > math.MaxInt32 {
		return 0, errs.ErrBikeNotFound
	}
	return int32(bikeID), nil
}

func insertReservation(req model.CreateReservationRequest) (string, []interface{}, error) {
	var customerName *string
	if req.CustomerName != "" {
		customerName = &req.CustomerName
	}
	return qb.Insert(reservationTableName).
		Columns("bike_id", "user_id", "customer_name", "start_time", "expected_end_time").
		Values(req.BikeID, req.UserID, customerName, req.StartTime.UTC(), req.EndTime.UTC()).
		Suffix("returning " + strings.Join(reservationColumns, ", ")).
		ToSql()
}

// selectOpenForUpdate locks the open reservation picked by sel together with its bike.
func selectOpenForUpdate(sel model.EndSelector) (string, []interface{}, error) {
	q := joinedSelect().
		Where(sq.Eq{"r.end_time": nil}).
		OrderBy("r.start_time").
		Limit(1).
		Suffix("for update of r")
	if sel.ReservationID != 0 {
		q = q.Where(sq.Eq{"r.id": sel.ReservationID})
	} else {
		q = q.Where(sq.Eq{"r.bike_id": sel.BikeID})
	}
	return q.ToSql()
}

// finalizeReservation only touches a row that is still open.
func finalizeReservation(id int, now time.Time, cost float64) (string, []interface{}, error) {
	return qb.Update(reservationTableName).
		Set("end_time", now.UTC()).
		Set("total_cost", cost).
		Where(sq.Eq{"id": id, "end_time": nil}).
		Suffix("returning " + strings.Join(reservationColumns, ", ")).
		ToSql()
}

// retryNoRows calls fn again while it reports pgx.ErrNoRows, at most attempts times in total.
func retryNoRows[T any](attempts int, fn func() (T, error)) (T, error) {
	var (
		v   T
		err error
	)
	for i := 0; i < attempts; i++ {
		v, err = fn()
		if !errors.Is(err, pgx.ErrNoRows) {
			return v, err
		}
	}
	return v, err
}

// CreateReservation serializes writers of the same bike with a transaction-scoped
// advisory lock, so the guard sees every reservation committed before it.
func (r *repository) CreateReservation(ctx context.Context, req model.CreateReservationRequest, now time.Time, guard Guard) (model.Reservation, error) {
	key, err := advisoryKey(req.BikeID)
	if err != nil {
		return model.Reservation{}, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Reservation{}, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err = tx.Exec(ctx, `select pg_advisory_xact_lock($1, $2)`, bikeLockNamespace, key); err != nil {
		return model.Reservation{}, errors.Wrap(err, "advisory lock")
	}

	active, err := r.activeReservations(ctx, tx, req.BikeID, now)
	if err != nil {
		return model.Reservation{}, err
	}
	if err = guard(active); err != nil {
		return model.Reservation{}, err
	}

	query, args, err := insertReservation(req)
	if err != nil {
		return model.Reservation{}, err
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return model.Reservation{}, err
	}
	res, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Reservation])
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return model.Reservation{}, errs.ErrBikeNotFound
		}
		r.log.Error("CreateReservation", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return model.Reservation{}, err
	}

	if err = tx.Commit(ctx); err != nil {
		return model.Reservation{}, err
	}
	return res, nil
}

func (r *repository) EndReservation(ctx context.Context, sel model.EndSelector, now time.Time, cost CostFunc) (model.Reservation, error) {
	query, args, err := selectOpenForUpdate(sel)
	if err != nil {
		return model.Reservation{}, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Reservation{}, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	// A concurrent end of the same earliest row leaves "for update ... limit 1"
	// empty for the waiter; a fresh statement sees the next open row.
	attempts := 1
	if sel.ReservationID == 0 {
		attempts = 2
	}
	open, err := retryNoRows(attempts, func() (reservationBikeRow, error) {
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return reservationBikeRow{}, err
		}
		return pgx.CollectOneRow(rows, pgx.RowToStructByName[reservationBikeRow])
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Reservation{}, errs.ErrNoOpenReservation
		}
		return model.Reservation{}, err
	}
	row := open.withBike()

	query, args, err = finalizeReservation(row.ID, now, cost(row.Reservation, row.Bike))
	if err != nil {
		return model.Reservation{}, err
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return model.Reservation{}, err
	}
	res, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Reservation])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Reservation{}, errs.ErrNoOpenReservation
		}
		return model.Reservation{}, err
	}

	if err = tx.Commit(ctx); err != nil {
		return model.Reservation{}, err
	}
	return res, nil
}

func (r *repository) ListReservationsByUser(ctx context.Context, userID string) ([]model.ReservationWithBike, error) {
	return r.listJoined(ctx, joinedSelect().Where(sq.Eq{"r.user_id": userID}))
}

func (r *repository) ListReservations(ctx context.Context) ([]model.ReservationWithBike, error) {
	return r.listJoined(ctx, joinedSelect())
}

func (r *repository) listJoined(ctx context.Context, q sq.SelectBuilder) ([]model.ReservationWithBike, error) {
	query, args, err := q.OrderBy("r.start_time desc", "r.id desc").ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("listJoined", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	joined, err := pgx.CollectRows(rows, pgx.RowToStructByName[reservationBikeRow])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	items := make([]model.ReservationWithBike, 0, len(joined))
	for _, row := range joined {
		items = append(items, row.withBike())
	}
	return items, nil
}

func (r *repository) CountReservations(ctx context.Context) (int, error) {
	q := fmt.Sprintf(`select count(*) from %s`, reservationTableName)
	var count int
	if err := r.db.QueryRow(ctx, q).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) DeleteReservations(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, fmt.Sprintf(`delete from %s`, reservationTableName))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
