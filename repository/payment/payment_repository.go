package payment

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/kelasfoto/kelasfoto/model"
)

type SQL struct {
	conn *sqlx.DB
}

type PaymentRepository interface {
	InsertPaymentTx(ctx context.Context, tx *sqlx.Tx, req *model.PaymentEntity) (uint64, error)
	GetByPaymentIDTx(ctx context.Context, tx *sqlx.Tx, paymentID string) (*model.PaymentEntity, error)
	UpdatePaymentDetailTx(ctx context.Context, tx *sqlx.Tx, id uint64, detail string) error
}

func NewPaymentRepository(conn *sqlx.DB) PaymentRepository {
	return &SQL{conn: conn}
}

func (r *SQL) InsertPaymentTx(ctx context.Context, tx *sqlx.Tx, req *model.PaymentEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO payment (order_id, payment_id, amount, currency_code, request_detail, created_at) VALUES (?, ?, ?, ?, ?, NOW())",
		req.OrderID, req.PaymentID, req.Amount, req.CurrencyCode, req.RequestDetail)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetByPaymentIDTx(ctx context.Context, tx *sqlx.Tx, paymentID string) (*model.PaymentEntity, error) {
	var entity model.PaymentEntity
	row := tx.QueryRowxContext(ctx,
		"SELECT id, order_id, payment_id, amount, currency_code, request_detail, payment_detail, created_at, updated_at FROM payment WHERE payment_id = ? FOR UPDATE",
		paymentID)
	if err := row.StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// UpdatePaymentDetailTx records the raw callback body; latest write wins.
func (r *SQL) UpdatePaymentDetailTx(ctx context.Context, tx *sqlx.Tx, id uint64, detail string) error {
	_, err := tx.ExecContext(ctx, "UPDATE payment SET payment_detail = ?, updated_at = NOW() WHERE id = ?", detail, id)
	return err
}
