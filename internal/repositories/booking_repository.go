package repositories

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	intconfig "luxadmin/internal/config"
	"luxadmin/internal/domain"
	"luxadmin/internal/domain/models"
	"luxadmin/internal/utils"
)

// BookingFilter narrows List results. Query matches name, email, phone,
// pickup and dropoff with a LIKE.
type BookingFilter struct {
	Page     int
	PageSize int
	Status   domain.Status
	Query    string
}

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `id,
	       COALESCE(name,''),
	       COALESCE(email,''),
	       COALESCE(phone,''),
	       COALESCE(pickup,''),
	       COALESCE(dropoff,''),
	       scheduled_at,
	       COALESCE(passenger_count,1),
	       COALESCE(luggage_count,0),
	       COALESCE(trip_type,'per_ride'),
	       COALESCE(status,'pending'),
	       COALESCE(payment_status,''),
	       COALESCE(base_amount,0),
	       COALESCE(service_fee,0),
	       created_at,
	       paid_at`

func scanBooking(row interface{ Scan(...any) error }) (models.Booking, error) {
	var b models.Booking
	var status, paymentStatus string
	var paidAt sql.NullTime
	if err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Email,
		&b.Phone,
		&b.Pickup,
		&b.Dropoff,
		&b.ScheduledAt,
		&b.PassengerCount,
		&b.LuggageCount,
		&b.TripType,
		&status,
		&paymentStatus,
		&b.BaseAmount,
		&b.ServiceFee,
		&b.CreatedAt,
		&paidAt,
	); err != nil {
		return models.Booking{}, err
	}
	b.Status = domain.Status(status)
	b.PaymentStatus = domain.PaymentStatus(paymentStatus)
	if paidAt.Valid {
		t := paidAt.Time
		b.PaidAt = &t
	}
	return b, nil
}

// List returns one page of visible bookings plus the total matching count.
// Soft-deleted rows are excluded.
func (r BookingRepository) List(f BookingFilter) ([]models.Booking, int, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > 200 {
		f.PageSize = 25
	}

	where := []string{"hidden_at IS NULL"}
	args := []any{}
	if f.Status != "" {
		where = append(where, "status=?")
		args = append(args, string(f.Status))
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		like := "%" + q + "%"
		where = append(where, "(name LIKE ? OR email LIKE ? OR phone LIKE ? OR pickup LIKE ? OR dropoff LIKE ?)")
		args = append(args, like, like, like, like, like)
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM bookings WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE ` + cond + `
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`
	args = append(args, f.PageSize, (f.Page-1)*f.PageSize)

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	return out, total, rows.Err()
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	if id <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "must be positive"}
	}
	row := r.db().QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id=? LIMIT 1`, id)
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	return b, err
}

// Update applies a full-field edit. Only fields present in upd are touched.
func (r BookingRepository) Update(id int64, upd models.BookingUpdate) error {
	sets := []string{}
	args := []any{}

	add := func(col string, v any) {
		sets = append(sets, col+"=?")
		args = append(args, v)
	}
	if upd.Name != nil {
		add("name", utils.TrimOrEmpty(*upd.Name))
	}
	if upd.Email != nil {
		add("email", utils.TrimOrEmpty(*upd.Email))
	}
	if upd.Phone != nil {
		add("phone", utils.TrimOrEmpty(*upd.Phone))
	}
	if upd.Pickup != nil {
		add("pickup", utils.NormalizeSpace(*upd.Pickup))
	}
	if upd.Dropoff != nil {
		add("dropoff", utils.NormalizeSpace(*upd.Dropoff))
	}
	if upd.ScheduledAt != nil {
		add("scheduled_at", upd.ScheduledAt.UTC())
	}
	if upd.PassengerCount != nil {
		add("passenger_count", *upd.PassengerCount)
	}
	if upd.LuggageCount != nil {
		add("luggage_count", *upd.LuggageCount)
	}
	if upd.TripType != nil {
		add("trip_type", strings.TrimSpace(*upd.TripType))
	}
	if len(sets) == 0 {
		return domain.ValidationError{Msg: "no fields to update"}
	}
	sets = append(sets, "updated_at=NOW()")
	args = append(args, id)

	res, err := r.db().Exec(`UPDATE bookings SET `+strings.Join(sets, ",")+` WHERE id=? AND hidden_at IS NULL`, args...)
	if err != nil {
		return err
	}
	return requireRow(res, "booking")
}

func (r BookingRepository) UpdateStatus(id int64, status domain.Status) error {
	res, err := r.db().Exec(`UPDATE bookings SET status=?, updated_at=NOW() WHERE id=? AND hidden_at IS NULL`,
		string(status), id)
	if err != nil {
		return err
	}
	return requireRow(res, "booking")
}

// MarkPaid records a successful charge on the booking.
func (r BookingRepository) MarkPaid(id int64, baseAmount, serviceFee int64, paidAt time.Time) error {
	res, err := r.db().Exec(
		`UPDATE bookings SET payment_status='paid', base_amount=?, service_fee=?, paid_at=?, updated_at=NOW() WHERE id=?`,
		baseAmount, serviceFee, paidAt.UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res, "booking")
}

// SoftDelete hides the booking from listings while keeping its data.
func (r BookingRepository) SoftDelete(id int64) error {
	res, err := r.db().Exec(`UPDATE bookings SET hidden_at=NOW() WHERE id=? AND hidden_at IS NULL`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "booking")
}

// HardDelete permanently removes the booking row.
func (r BookingRepository) HardDelete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM bookings WHERE id=?`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "booking")
}

func requireRow(res sql.Result, resource string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundError{Resource: resource}
	}
	return nil
}
