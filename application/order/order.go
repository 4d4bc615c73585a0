package order

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kelasfoto/kelasfoto/cmd/config"
	"github.com/kelasfoto/kelasfoto/constant"
	"github.com/kelasfoto/kelasfoto/model"
	catalogrepo "github.com/kelasfoto/kelasfoto/repository/catalog"
	orderrepo "github.com/kelasfoto/kelasfoto/repository/order"
	paymentrepo "github.com/kelasfoto/kelasfoto/repository/payment"
	txrepo "github.com/kelasfoto/kelasfoto/repository/tx"
	"github.com/kelasfoto/kelasfoto/thirdparty/gateway"
	"github.com/kelasfoto/kelasfoto/thirdparty/ipecho"
	"github.com/kelasfoto/kelasfoto/utils/errors"
	"github.com/kelasfoto/kelasfoto/utils/logger"
	"go.uber.org/zap"
)

type OrderApp interface {
	CreateOrder(ctx context.Context, userID uint64, req *model.CheckoutRequest) (*model.CheckoutResponse, error)
	GetOrder(ctx context.Context, orderID uint64) (*model.OrderEntity, error)
	ListOrders(ctx context.Context, filter *model.OrderFilter) ([]model.OrderEntity, error)
	UpdateTracking(ctx context.Context, orderID uint64, trackingNo string) error
	UpdatePriority(ctx context.Context, orderID uint64, priority int) error
}

type orderAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	catalogRepo catalogrepo.CatalogRepository
	orderRepo   orderrepo.OrderRepository
	paymentRepo paymentrepo.PaymentRepository
	ipResolver  ipecho.Resolver
}

func NewOrderApp(config *config.Config, txRepo txrepo.TxRepository, catalogRepo catalogrepo.CatalogRepository, orderRepo orderrepo.OrderRepository, paymentRepo paymentrepo.PaymentRepository, ipResolver ipecho.Resolver) OrderApp {
	return &orderAppImpl{config: config, txRepo: txRepo, catalogRepo: catalogRepo, orderRepo: orderRepo, paymentRepo: paymentRepo, ipResolver: ipResolver}
}

// CreateOrder builds an order from the submitted cart: every referenced
// catalog entity must still exist and be enabled, then the order, its
// flattened cart rows, and the signed payment request are persisted in one
// transaction. The cart snapshot is frozen as submitted; prices are not
// re-derived later.
func (s *orderAppImpl) CreateOrder(ctx context.Context, userID uint64, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	if len(req.Cart) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if err := s.validateCartEntities(ctx, req.Cart); err != nil {
		return nil, err
	}

	// The gateway signature binds the caller's public IP, so resolve it
	// before opening the transaction rather than holding it across an
	// outbound call.
	callerIP, err := s.ipResolver.PublicIP(ctx)
	if err != nil {
		logger.Error("[CreateOrder] resolve caller ip", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	orderNo, err := s.orderRepo.NextOrderNoTx(ctx, tx)
	if err != nil {
		logger.Error("[CreateOrder] next order no", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	orderID, err := s.orderRepo.InsertOrderTx(ctx, tx, &model.OrderEntity{
		OrderNo:         orderNo,
		UserID:          userID,
		CustName:        req.CustName,
		CustEmail:       req.CustEmail,
		CustPhone:       req.CustPhone,
		ShippingAddress: req.ShippingAddress,
		ShipmentMethod:  req.ShipmentMethod,
		PaymentMethod:   req.PaymentMethod,
		Cart:            req.Cart,
		Price:           req.Price,
		ShippingFee:     req.ShippingFee,
		Remark:          req.Remark,
		Status:          constant.OrderStatusPending,
		Priority:        req.Priority,
	})
	if err != nil {
		logger.Error("[CreateOrder] insert order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.orderRepo.InsertOrderCartRowsTx(ctx, tx, orderID, flattenCart(req.Cart)); err != nil {
		logger.Error("[CreateOrder] insert cart rows", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	paymentID := formatPaymentID(orderNo, time.Now())
	payable := req.Price + req.ShippingFee

	gwReq := gateway.BuildRequest(&s.config.Gateway, paymentID, payable, callerIP, req.CustName, req.CustEmail, req.CustPhone)
	requestDetail, err := json.Marshal(gwReq)
	if err != nil {
		logger.Error("[CreateOrder] marshal gateway request", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if _, err := s.paymentRepo.InsertPaymentTx(ctx, tx, &model.PaymentEntity{
		OrderID:       orderID,
		PaymentID:     paymentID,
		Amount:        payable,
		CurrencyCode:  s.config.Gateway.CurrencyCode,
		RequestDetail: string(requestDetail),
	}); err != nil {
		logger.Error("[CreateOrder] insert payment", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.CheckoutResponse{
		OrderID:   orderID,
		OrderNo:   orderNo,
		PaymentID: paymentID,
		Gateway:   gwReq,
	}, nil
}

// validateCartEntities runs the existence+enablement check per de-duplicated
// id set. This is deliberately not a price or availability re-validation;
// stale carts referencing disabled entities are the failure mode it defends
// against.
func (s *orderAppImpl) validateCartEntities(ctx context.Context, cart model.Cart) error {
	checks := []struct {
		ids     []uint64
		count   func(context.Context, []uint64) (int64, error)
		errType constant.ErrorType
		name    string
	}{
		{cart.InstitutionIDs(), s.catalogRepo.CountEnabledInstitutions, constant.ErrInvalidInstitution, "institution"},
		{cart.AcademicYearIDs(), s.catalogRepo.CountEnabledAcademicYears, constant.ErrInvalidAcademicYear, "academic year"},
		{cart.CourseIDs(), s.catalogRepo.CountEnabledCourses, constant.ErrInvalidCourse, "course"},
		{cart.AlbumIDs(), s.catalogRepo.CountEnabledAlbums, constant.ErrInvalidAlbum, "album"},
	}

	for _, check := range checks {
		if len(check.ids) == 0 {
			continue
		}
		count, err := check.count(ctx, check.ids)
		if err != nil {
			logger.Error("[CreateOrder] count enabled "+check.name, zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if count < int64(len(check.ids)) {
			logger.Info("[CreateOrder] cart references missing or disabled "+check.name,
				zap.Int("referenced", len(check.ids)), zap.Int64("enabled", count))
			return errors.SetCustomError(check.errType)
		}
	}
	return nil
}

// flattenCart produces one denormalized reporting row per cart unit.
func flattenCart(cart model.Cart) []model.OrderCartRow {
	rows := make([]model.OrderCartRow, 0, len(cart))
	for i := range cart {
		unit := &cart[i]
		row := model.OrderCartRow{
			UnitKind: string(unit.Kind),
			Amount:   unit.Amount(),
		}
		switch unit.Kind {
		case model.CartUnitProduct:
			p := unit.Product
			row.InstitutionID = uint64Ptr(p.InstitutionID)
			row.AcademicYearID = uint64Ptr(p.AcademicYearID)
			row.CourseID = uint64Ptr(p.CourseID)
			row.AlbumID = uint64Ptr(p.AlbumID)
			row.PhotoID = uint64Ptr(p.PhotoID)
			row.Description = p.PhotoName
		case model.CartUnitPackage:
			pkg := unit.Package
			row.PackageID = uint64Ptr(pkg.PackageID)
			row.Description = pkg.Name
			if len(pkg.Items) > 0 {
				row.InstitutionID = uint64Ptr(pkg.Items[0].InstitutionID)
				row.AcademicYearID = uint64Ptr(pkg.Items[0].AcademicYearID)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// formatPaymentID builds the gateway payment id as
// {order_no}_{yyyyMMddHHmmssSS}, centisecond precision.
func formatPaymentID(orderNo uint64, t time.Time) string {
	return fmt.Sprintf("%d_%s%02d", orderNo, t.Format("20060102150405"), t.Nanosecond()/1e7)
}

func (s *orderAppImpl) GetOrder(ctx context.Context, orderID uint64) (*model.OrderEntity, error) {
	order, err := s.orderRepo.Get(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return order, nil
}

func (s *orderAppImpl) ListOrders(ctx context.Context, filter *model.OrderFilter) ([]model.OrderEntity, error) {
	orders, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListOrders] list orders", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return orders, nil
}

func (s *orderAppImpl) UpdateTracking(ctx context.Context, orderID uint64, trackingNo string) error {
	if _, err := s.GetOrder(ctx, orderID); err != nil {
		return err
	}
	if err := s.orderRepo.UpdateTracking(ctx, orderID, trackingNo); err != nil {
		logger.Error("[UpdateTracking] update tracking", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *orderAppImpl) UpdatePriority(ctx context.Context, orderID uint64, priority int) error {
	if _, err := s.GetOrder(ctx, orderID); err != nil {
		return err
	}
	if err := s.orderRepo.UpdatePriority(ctx, orderID, priority); err != nil {
		logger.Error("[UpdatePriority] update priority", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func uint64Ptr(v uint64) *uint64 {
	if v == 0 {
		return nil
	}
	return &v
}
