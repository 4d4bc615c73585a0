package payment

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kelasfoto/kelasfoto/cmd/config"
	"github.com/kelasfoto/kelasfoto/constant"
	"github.com/kelasfoto/kelasfoto/model"
	orderrepo "github.com/kelasfoto/kelasfoto/repository/order"
	paymentrepo "github.com/kelasfoto/kelasfoto/repository/payment"
	txrepo "github.com/kelasfoto/kelasfoto/repository/tx"
	userrepo "github.com/kelasfoto/kelasfoto/repository/user"
	"github.com/kelasfoto/kelasfoto/thirdparty/rabbitmq"
	"github.com/kelasfoto/kelasfoto/thirdparty/storage"
	"github.com/kelasfoto/kelasfoto/utils/errors"
	"github.com/kelasfoto/kelasfoto/utils/logger"
	"go.uber.org/zap"
)

type PaymentApp interface {
	HandleCallback(ctx context.Context, cb *model.GatewayCallback) (*model.CallbackResult, error)
}

type paymentAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	orderRepo   orderrepo.OrderRepository
	paymentRepo paymentrepo.PaymentRepository
	userRepo    userrepo.UserRepository
	storage     storage.ObjectStorage
	publisher   *rabbitmq.Publisher
}

func NewPaymentApp(config *config.Config, txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, paymentRepo paymentrepo.PaymentRepository, userRepo userrepo.UserRepository, store storage.ObjectStorage, publisher *rabbitmq.Publisher) PaymentApp {
	return &paymentAppImpl{config: config, txRepo: txRepo, orderRepo: orderRepo, paymentRepo: paymentRepo, userRepo: userRepo, storage: store, publisher: publisher}
}

// HandleCallback reconciles an asynchronous gateway result into order state
// and download entitlements. The payment row always records the raw callback
// body (latest write wins); the order only moves along the allowed-transition
// table, so a replayed success callback is acknowledged without re-applying
// the success path.
func (s *paymentAppImpl) HandleCallback(ctx context.Context, cb *model.GatewayCallback) (*model.CallbackResult, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[HandleCallback] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	payment, err := s.paymentRepo.GetByPaymentIDTx(ctx, tx, cb.PaymentID)
	if err != nil {
		logger.Error("[HandleCallback] get payment", zap.String("error", err.Error()), zap.String("payment_id", cb.PaymentID))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if payment == nil {
		logger.Warn("[HandleCallback] unknown payment id", zap.String("payment_id", cb.PaymentID))
		return nil, errors.SetCustomError(constant.ErrPaymentNotFound)
	}

	if err := s.paymentRepo.UpdatePaymentDetailTx(ctx, tx, payment.ID, cb.RawBody); err != nil {
		logger.Error("[HandleCallback] update payment detail", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	order, err := s.orderRepo.GetOrderTx(ctx, tx, payment.OrderID)
	if err != nil {
		logger.Error("[HandleCallback] get order", zap.String("error", err.Error()), zap.Uint64("order_id", payment.OrderID))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		logger.Error("[HandleCallback] payment without order", zap.Uint64("order_id", payment.OrderID))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	var result *model.CallbackResult
	switch cb.TxnStatus {
	case constant.TxnStatusSuccess:
		result, err = s.applySuccess(ctx, tx, order, cb)
		if err != nil {
			return nil, err
		}
	case constant.TxnStatusFailed:
		result = &model.CallbackResult{
			OrderID: order.ID,
			Status:  constant.CallbackResultFailed,
			Message: "payment was not successful",
		}
	default:
		// Not silently dropped: an unknown status code is an operator
		// signal, distinct from a known failure.
		logger.Warn("[HandleCallback] unrecognized gateway status",
			zap.String("txn_status", cb.TxnStatus), zap.String("payment_id", cb.PaymentID))
		result = &model.CallbackResult{
			OrderID: order.ID,
			Status:  constant.CallbackResultFailed,
			Message: "unrecognized payment status",
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[HandleCallback] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if result.Status == constant.CallbackResultSuccess && result.Message == "" {
		s.publishCompleted(order, cb)
	}

	return result, nil
}

// applySuccess finalizes the order and grants entitlements, guarded by the
// status transition table.
func (s *paymentAppImpl) applySuccess(ctx context.Context, tx *sqlx.Tx, order *model.OrderEntity, cb *model.GatewayCallback) (*model.CallbackResult, error) {
	if order.Status == constant.OrderStatusCompleted {
		logger.Info("[HandleCallback] duplicate success callback",
			zap.Uint64("order_id", order.ID), zap.String("payment_id", cb.PaymentID))
		return &model.CallbackResult{
			OrderID: order.ID,
			Status:  constant.CallbackResultSuccess,
			Message: "payment already processed",
		}, nil
	}
	if !order.Status.CanTransition(constant.OrderStatusCompleted) {
		logger.Warn("[HandleCallback] success callback for terminal order",
			zap.Uint64("order_id", order.ID), zap.String("status", order.Status.String()))
		return &model.CallbackResult{
			OrderID: order.ID,
			Status:  constant.CallbackResultFailed,
			Message: "order can no longer be completed",
		}, nil
	}

	if err := s.orderRepo.CompleteOrderTx(ctx, tx, order.ID, cb.TxnID, cb.PaymentID); err != nil {
		logger.Error("[HandleCallback] complete order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	entitlements := s.entitlementsFromCart(ctx, order.Cart)
	if len(entitlements) > 0 {
		existing, err := s.userRepo.GetDownloadImagesTx(ctx, tx, order.UserID)
		if err != nil {
			logger.Error("[HandleCallback] get download images", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		merged := existing.Merge(entitlements)
		if err := s.userRepo.UpdateDownloadImagesTx(ctx, tx, order.UserID, merged); err != nil {
			logger.Error("[HandleCallback] update download images", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	return &model.CallbackResult{
		OrderID: order.ID,
		Status:  constant.CallbackResultSuccess,
	}, nil
}

// entitlementsFromCart computes the downloadable photo set of a cart
// snapshot. A standalone product grants its photo iff any chosen option is
// downloadable; a downloadable package grants every photo of every item, a
// non-downloadable one falls back to per-photo option flags. The caller
// merges the result with id-based de-duplication.
func (s *paymentAppImpl) entitlementsFromCart(ctx context.Context, cart model.Cart) []model.DownloadImage {
	var out []model.DownloadImage
	for i := range cart {
		unit := &cart[i]
		switch unit.Kind {
		case model.CartUnitProduct:
			p := unit.Product
			if anyDownloadable(p.Options) {
				out = append(out, s.entitlement(ctx, p.PhotoID, p.PhotoURL, p.PhotoName, p.ObjectKey))
			}
		case model.CartUnitPackage:
			pkg := unit.Package
			for j := range pkg.Items {
				for k := range pkg.Items[j].Photos {
					photo := &pkg.Items[j].Photos[k]
					if pkg.IsDownloadable || anyDownloadable(photo.Options) {
						out = append(out, s.entitlement(ctx, photo.PhotoID, photo.PhotoURL, photo.PhotoName, photo.ObjectKey))
					}
				}
			}
		}
	}
	return out
}

func (s *paymentAppImpl) entitlement(ctx context.Context, photoID uint64, photoURL, photoName, objectKey string) model.DownloadImage {
	downloadURL := photoURL
	if objectKey != "" {
		signed, err := s.storage.SignedURL(ctx, objectKey, s.config.Storage.SignedURLTTL)
		if err != nil {
			logger.Error("[HandleCallback] sign download url",
				zap.String("error", err.Error()), zap.String("object_key", objectKey))
		} else {
			downloadURL = signed
		}
	}
	return model.DownloadImage{
		PhotoID:     photoID,
		PhotoURL:    photoURL,
		PhotoName:   photoName,
		DownloadURL: downloadURL,
	}
}

func anyDownloadable(options []model.VariationOption) bool {
	for _, opt := range options {
		if opt.Downloadable {
			return true
		}
	}
	return false
}

func (s *paymentAppImpl) publishCompleted(order *model.OrderEntity, cb *model.GatewayCallback) {
	if s.publisher == nil {
		return
	}
	msg := rabbitmq.OrderCompletedMessage{
		OrderID:       order.ID,
		OrderNo:       order.OrderNo,
		UserID:        order.UserID,
		CustEmail:     order.CustEmail,
		TransactionNo: cb.TxnID,
		CompletedAt:   time.Now(),
	}
	if err := s.publisher.PublishOrderCompleted(msg); err != nil {
		logger.Error("[HandleCallback] publish order completed", zap.String("error", err.Error()))
	}
}
