package storage

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/bills-bot/internal/entity/bill"
	"max.ks1230/bills-bot/internal/entity/user"
	"max.ks1230/bills-bot/internal/logger"
)

const upsertUserSuffix = "ON CONFLICT(id) DO UPDATE SET " +
	"name = excluded.name, " +
	"pay_frequency = excluded.pay_frequency, " +
	"payday = excluded.payday, " +
	"updated_at = excluded.updated_at"

// SQLStorage is shared by the Postgres and SQLite backends; they differ in
// driver, placeholder format and migrations.
type SQLStorage struct {
	db   *sql.DB
	psql sq.StatementBuilderType
}

func newSQLStorage(db *sql.DB, placeholder sq.PlaceholderFormat) *SQLStorage {
	return &SQLStorage{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(placeholder),
	}
}

func (s *SQLStorage) Close() error {
	return s.db.Close()
}

func (s *SQLStorage) Ping(ctx context.Context) error {
	return errors.Wrap(s.db.PingContext(ctx), "ping database")
}

func (s *SQLStorage) GetProfile(ctx context.Context, id int64) (user.Profile, error) {
	query := s.psql.Select("name", "pay_frequency", "payday").
		From("users").
		Where(sq.Eq{"id": id})

	res := user.NewProfile(id)
	var payFreq, payday string
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&res.Name, &payFreq, &payday)
	if errors.Is(err, sql.ErrNoRows) {
		return user.Profile{}, ErrNotFound
	}
	if err != nil {
		return user.Profile{}, errors.Wrap(err, "get profile")
	}
	res.PayFrequency = user.PayFrequency(payFreq)
	res.Payday = user.Weekday(payday)

	res.Bills, err = s.getBills(ctx, id)
	if err != nil {
		return user.Profile{}, errors.Wrap(err, "get profile")
	}
	return res, nil
}

func (s *SQLStorage) getBills(ctx context.Context, userID int64) ([]bill.Bill, error) {
	query := s.psql.Select("frequency", "merchant", "amount", "due_day").
		From("bills").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get bills")
	}
	defer func() {
		rowErr := rows.Close()
		if rowErr != nil {
			logger.Error("error closing rows", zap.Error(rowErr))
		}
	}()

	bills := make([]bill.Bill, 0)
	for rows.Next() {
		var b bill.Bill
		var freq string
		err = rows.Scan(&freq, &b.Merchant, &b.Amount, &b.DueDay)
		if err != nil {
			return nil, errors.Wrap(err, "get bills")
		}
		b.Frequency = bill.Frequency(freq)
		bills = append(bills, b)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "get bills")
	}
	return bills, nil
}

func (s *SQLStorage) SaveProfile(ctx context.Context, p user.Profile) error {
	query := s.psql.Insert("users").
		Columns("id", "name", "pay_frequency", "payday", "updated_at").
		Values(p.ID, p.Name, string(p.PayFrequency), string(p.Payday), time.Now().UTC()).
		Suffix(upsertUserSuffix)

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "save profile")
}

func (s *SQLStorage) AddBill(ctx context.Context, userID int64, b bill.Bill) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "add bill")
	}
	defer func() {
		txErr := tx.Rollback()
		if txErr != nil && !errors.Is(txErr, sql.ErrTxDone) {
			logger.Error("error when transaction rollback", zap.Error(txErr))
		}
	}()

	var exists int
	err = s.psql.Select("1").From("users").Where(sq.Eq{"id": userID}).
		RunWith(tx).QueryRowContext(ctx).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return errors.Wrap(err, "add bill")
	}

	query := s.psql.Insert("bills").
		Columns("user_id", "frequency", "merchant", "amount", "due_day").
		Values(userID, string(b.Frequency), b.Merchant, b.Amount, b.DueDay)
	if _, err = query.RunWith(tx).ExecContext(ctx); err != nil {
		return errors.Wrap(err, "add bill")
	}
	return errors.Wrap(tx.Commit(), "add bill")
}

func (s *SQLStorage) ListUserIDs(ctx context.Context) ([]int64, error) {
	rows, err := s.psql.Select("id").From("users").OrderBy("id").
		RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	defer func() {
		rowErr := rows.Close()
		if rowErr != nil {
			logger.Error("error closing rows", zap.Error(rowErr))
		}
	}()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "list users")
		}
		ids = append(ids, id)
	}
	return ids, errors.Wrap(rows.Err(), "list users")
}
