package order

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/kelasfoto/kelasfoto/constant"
	"github.com/kelasfoto/kelasfoto/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	NextOrderNoTx(ctx context.Context, tx *sqlx.Tx) (uint64, error)
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.OrderEntity) (uint64, error)
	InsertOrderCartRowsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, rows []model.OrderCartRow) error
	GetOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderEntity, error)
	CompleteOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, transactionNo, successPaymentID string) error
	UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.OrderStatus) error

	Get(ctx context.Context, orderID uint64) (*model.OrderEntity, error)
	List(ctx context.Context, filter *model.OrderFilter) ([]model.OrderEntity, error)
	UpdateTracking(ctx context.Context, orderID uint64, trackingNo string) error
	UpdatePriority(ctx context.Context, orderID uint64, priority int) error
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const orderColumns = "id, order_no, user_id, cust_name, cust_email, cust_phone, shipping_address, shipment_method, payment_method, cart, price, shipping_fee, remark, status, tracking_no, transaction_no, success_payment_id, priority, created_at, updated_at"

// NextOrderNoTx allocates the next human-facing sequential order number. The
// lock serializes concurrent checkouts on the allocation.
func (r *SQL) NextOrderNoTx(ctx context.Context, tx *sqlx.Tx) (uint64, error) {
	var next uint64
	row := tx.QueryRowxContext(ctx, "SELECT COALESCE(MAX(order_no), 100000) + 1 FROM `order` FOR UPDATE")
	if err := row.Scan(&next); err != nil {
		return 0, err
	}
	return next, nil
}

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.OrderEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO `order` (order_no, user_id, cust_name, cust_email, cust_phone, shipping_address, shipment_method, payment_method, cart, price, shipping_fee, remark, status, priority, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())",
		req.OrderNo, req.UserID, req.CustName, req.CustEmail, req.CustPhone, req.ShippingAddress, req.ShipmentMethod, req.PaymentMethod, req.Cart, req.Price, req.ShippingFee, req.Remark, req.Status, req.Priority)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertOrderCartRowsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, rows []model.OrderCartRow) error {
	q := "INSERT INTO order_cart (order_id, unit_kind, institution_id, academic_year_id, course_id, album_id, photo_id, package_id, description, amount) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
	for _, row := range rows {
		if _, err := tx.ExecContext(ctx, q, orderID, row.UnitKind, row.InstitutionID, row.AcademicYearID, row.CourseID, row.AlbumID, row.PhotoID, row.PackageID, row.Description, row.Amount); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) GetOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderEntity, error) {
	var entity model.OrderEntity
	row := tx.QueryRowxContext(ctx, "SELECT "+orderColumns+" FROM `order` WHERE id = ? FOR UPDATE", orderID)
	if err := row.StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) CompleteOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, transactionNo, successPaymentID string) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE `order` SET status = ?, transaction_no = ?, success_payment_id = ?, updated_at = NOW() WHERE id = ?",
		constant.OrderStatusCompleted, transactionNo, successPaymentID, orderID)
	return err
}

func (r *SQL) UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.OrderStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE `order` SET status = ?, updated_at = NOW() WHERE id = ?", status, orderID)
	return err
}

func (r *SQL) Get(ctx context.Context, orderID uint64) (*model.OrderEntity, error) {
	var entity model.OrderEntity
	row := r.conn.QueryRowxContext(ctx, "SELECT "+orderColumns+" FROM `order` WHERE id = ?", orderID)
	if err := row.StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) List(ctx context.Context, filter *model.OrderFilter) ([]model.OrderEntity, error) {
	query := "SELECT " + orderColumns + " FROM `order` WHERE true"
	args := make([]any, 0, 4)

	if filter.Status != nil {
		query += " AND status = ?"
		args = append(args, *filter.Status)
	}
	if filter.UserID != 0 {
		query += " AND user_id = ?"
		args = append(args, filter.UserID)
	}
	query += " ORDER BY priority DESC, id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	}

	var out []model.OrderEntity
	if err := r.conn.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQL) UpdateTracking(ctx context.Context, orderID uint64, trackingNo string) error {
	_, err := r.conn.ExecContext(ctx, "UPDATE `order` SET tracking_no = ?, updated_at = NOW() WHERE id = ?", trackingNo, orderID)
	return err
}

func (r *SQL) UpdatePriority(ctx context.Context, orderID uint64, priority int) error {
	_, err := r.conn.ExecContext(ctx, "UPDATE `order` SET priority = ?, updated_at = NOW() WHERE id = ?", priority, orderID)
	return err
}
