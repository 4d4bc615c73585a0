package payment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	apppayment "github.com/kelasfoto/kelasfoto/application/payment"
	"github.com/kelasfoto/kelasfoto/cmd/config"
	"github.com/kelasfoto/kelasfoto/constant"
	ordermocks "github.com/kelasfoto/kelasfoto/mocks/repository/order"
	paymentmocks "github.com/kelasfoto/kelasfoto/mocks/repository/payment"
	txmocks "github.com/kelasfoto/kelasfoto/mocks/repository/tx"
	usermocks "github.com/kelasfoto/kelasfoto/mocks/repository/user"
	storagemocks "github.com/kelasfoto/kelasfoto/mocks/thirdparty/storage"
	"github.com/kelasfoto/kelasfoto/model"
	cerr "github.com/kelasfoto/kelasfoto/utils/errors"
	"github.com/stretchr/testify/mock"
)

// downloadablePackageCart bundles three albums of two photos each, all
// downloadable through the package flag.
func downloadablePackageCart() model.Cart {
	items := make([]model.PackageItem, 0, 3)
	for album := uint64(0); album < 3; album++ {
		items = append(items, model.PackageItem{
			InstitutionID:  1,
			AcademicYearID: 2,
			CourseID:       3,
			AlbumID:        10 + album,
			Photos: []model.CartPhoto{
				{PhotoID: 101 + album*2, PhotoName: "a.jpg", ObjectKey: "originals/k1"},
				{PhotoID: 102 + album*2, PhotoName: "b.jpg", ObjectKey: "originals/k2"},
			},
		})
	}
	return model.Cart{
		{
			Kind: model.CartUnitPackage,
			Package: &model.PackageSelection{
				PackageID:      20,
				Name:           "Graduation bundle",
				Price:          9900,
				IsDownloadable: true,
				Items:          items,
			},
		},
	}
}

// printOnlyCart is a standalone product whose chosen options grant no
// download.
func printOnlyCart() model.Cart {
	return model.Cart{
		{
			Kind: model.CartUnitProduct,
			Product: &model.ProductSelection{
				InstitutionID:  1,
				AcademicYearID: 2,
				CourseID:       3,
				AlbumID:        4,
				PhotoID:        5,
				ProductTypeID:  6,
				UnitPrice:      1500,
				Options: []model.VariationOption{
					{VariationID: 7, Name: "8R print", Price: 500, Downloadable: false},
				},
			},
		},
	}
}

func TestPaymentApp_HandleCallback(t *testing.T) {
	type fields struct {
		config      *config.Config
		txRepo      *txmocks.TxRepository
		orderRepo   *ordermocks.OrderRepository
		paymentRepo *paymentmocks.PaymentRepository
		userRepo    *usermocks.UserRepository
		storage     *storagemocks.ObjectStorage
	}
	newFields := func(t *testing.T) fields {
		return fields{
			config: &config.Config{
				Storage: config.StorageConfig{SignedURLTTL: time.Hour},
			},
			txRepo:      txmocks.NewTxRepository(t),
			orderRepo:   ordermocks.NewOrderRepository(t),
			paymentRepo: paymentmocks.NewPaymentRepository(t),
			userRepo:    usermocks.NewUserRepository(t),
			storage:     storagemocks.NewObjectStorage(t),
		}
	}
	type args struct {
		cb *model.GatewayCallback
	}
	tests := []struct {
		name       string
		args       args
		mockCall   func(f fields)
		want       *model.CallbackResult
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name: "success: downloadable package grants all photos",
			args: args{
				cb: &model.GatewayCallback{
					OrderNumber: "100001",
					PaymentID:   "100001_2026083011302542",
					TxnStatus:   constant.TxnStatusSuccess,
					TxnID:       "GW-778",
					RawBody:     "OrderNumber=100001&PaymentID=100001_2026083011302542&TxnStatus=0",
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.paymentRepo.On("GetByPaymentIDTx", mock.Anything, tx, "100001_2026083011302542").Return(&model.PaymentEntity{
					ID:        77,
					OrderID:   55,
					PaymentID: "100001_2026083011302542",
					Amount:    9900,
				}, nil).Once()
				f.paymentRepo.On("UpdatePaymentDetailTx", mock.Anything, tx, uint64(77), "OrderNumber=100001&PaymentID=100001_2026083011302542&TxnStatus=0").Return(nil).Once()

				f.orderRepo.On("GetOrderTx", mock.Anything, tx, uint64(55)).Return(&model.OrderEntity{
					ID:      55,
					OrderNo: 100001,
					UserID:  9,
					Status:  constant.OrderStatusPending,
					Cart:    downloadablePackageCart(),
				}, nil).Once()
				f.orderRepo.On("CompleteOrderTx", mock.Anything, tx, uint64(55), "GW-778", "100001_2026083011302542").Return(nil).Once()

				f.storage.On("SignedURL", mock.Anything, mock.Anything, time.Hour).Return("https://signed.example.com/photo", nil).Times(6)

				// one photo already owned: merge must not duplicate it
				f.userRepo.On("GetDownloadImagesTx", mock.Anything, tx, uint64(9)).Return(model.DownloadImages{
					{PhotoID: 101, PhotoName: "a.jpg", DownloadURL: "https://signed.example.com/old"},
				}, nil).Once()
				f.userRepo.On("UpdateDownloadImagesTx", mock.Anything, tx, uint64(9), mock.MatchedBy(func(images model.DownloadImages) bool {
					return len(images) == 6
				})).Return(nil).Once()
			},
			want: &model.CallbackResult{OrderID: 55, Status: constant.CallbackResultSuccess},
		},
		{
			name: "success: print-only order grants no downloads",
			args: args{
				cb: &model.GatewayCallback{
					OrderNumber: "100002",
					PaymentID:   "100002_2026083011310001",
					TxnStatus:   constant.TxnStatusSuccess,
					TxnID:       "GW-779",
					RawBody:     "TxnStatus=0",
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.paymentRepo.On("GetByPaymentIDTx", mock.Anything, tx, "100002_2026083011310001").Return(&model.PaymentEntity{
					ID:      78,
					OrderID: 56,
				}, nil).Once()
				f.paymentRepo.On("UpdatePaymentDetailTx", mock.Anything, tx, uint64(78), "TxnStatus=0").Return(nil).Once()

				f.orderRepo.On("GetOrderTx", mock.Anything, tx, uint64(56)).Return(&model.OrderEntity{
					ID:     56,
					UserID: 9,
					Status: constant.OrderStatusPending,
					Cart:   printOnlyCart(),
				}, nil).Once()
				f.orderRepo.On("CompleteOrderTx", mock.Anything, tx, uint64(56), "GW-779", "100002_2026083011310001").Return(nil).Once()
			},
			want: &model.CallbackResult{OrderID: 56, Status: constant.CallbackResultSuccess},
		},
		{
			name: "failed: TxnStatus 1 records payment detail only",
			args: args{
				cb: &model.GatewayCallback{
					OrderNumber: "100003",
					PaymentID:   "100003_2026083011320001",
					TxnStatus:   constant.TxnStatusFailed,
					RawBody:     "TxnStatus=1",
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.paymentRepo.On("GetByPaymentIDTx", mock.Anything, tx, "100003_2026083011320001").Return(&model.PaymentEntity{
					ID:      79,
					OrderID: 57,
				}, nil).Once()
				f.paymentRepo.On("UpdatePaymentDetailTx", mock.Anything, tx, uint64(79), "TxnStatus=1").Return(nil).Once()

				f.orderRepo.On("GetOrderTx", mock.Anything, tx, uint64(57)).Return(&model.OrderEntity{
					ID:     57,
					UserID: 9,
					Status: constant.OrderStatusPending,
					Cart:   printOnlyCart(),
				}, nil).Once()
			},
			want: &model.CallbackResult{OrderID: 57, Status: constant.CallbackResultFailed, Message: "payment was not successful"},
		},
		{
			name: "idempotent: duplicate success callback does not re-grant",
			args: args{
				cb: &model.GatewayCallback{
					OrderNumber: "100001",
					PaymentID:   "100001_2026083011302542",
					TxnStatus:   constant.TxnStatusSuccess,
					TxnID:       "GW-778",
					RawBody:     "TxnStatus=0",
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.paymentRepo.On("GetByPaymentIDTx", mock.Anything, tx, "100001_2026083011302542").Return(&model.PaymentEntity{
					ID:      77,
					OrderID: 55,
				}, nil).Once()
				f.paymentRepo.On("UpdatePaymentDetailTx", mock.Anything, tx, uint64(77), "TxnStatus=0").Return(nil).Once()

				f.orderRepo.On("GetOrderTx", mock.Anything, tx, uint64(55)).Return(&model.OrderEntity{
					ID:     55,
					UserID: 9,
					Status: constant.OrderStatusCompleted,
					Cart:   downloadablePackageCart(),
				}, nil).Once()
			},
			want: &model.CallbackResult{OrderID: 55, Status: constant.CallbackResultSuccess, Message: "payment already processed"},
		},
		{
			name: "unknown status: logged and treated as failed",
			args: args{
				cb: &model.GatewayCallback{
					OrderNumber: "100004",
					PaymentID:   "100004_2026083011330001",
					TxnStatus:   "9",
					RawBody:     "TxnStatus=9",
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.paymentRepo.On("GetByPaymentIDTx", mock.Anything, tx, "100004_2026083011330001").Return(&model.PaymentEntity{
					ID:      80,
					OrderID: 58,
				}, nil).Once()
				f.paymentRepo.On("UpdatePaymentDetailTx", mock.Anything, tx, uint64(80), "TxnStatus=9").Return(nil).Once()

				f.orderRepo.On("GetOrderTx", mock.Anything, tx, uint64(58)).Return(&model.OrderEntity{
					ID:     58,
					UserID: 9,
					Status: constant.OrderStatusPending,
					Cart:   printOnlyCart(),
				}, nil).Once()
			},
			want: &model.CallbackResult{OrderID: 58, Status: constant.CallbackResultFailed, Message: "unrecognized payment status"},
		},
		{
			name: "error: unknown payment id",
			args: args{
				cb: &model.GatewayCallback{
					OrderNumber: "999999",
					PaymentID:   "999999_2026083011340001",
					TxnStatus:   constant.TxnStatusSuccess,
					RawBody:     "TxnStatus=0",
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.paymentRepo.On("GetByPaymentIDTx", mock.Anything, tx, "999999_2026083011340001").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrPaymentNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			// publisher is nil: completed orders simply skip the queue
			app := apppayment.NewPaymentApp(f.config, f.txRepo, f.orderRepo, f.paymentRepo, f.userRepo, f.storage, nil)

			got, err := app.HandleCallback(context.Background(), tt.args.cb)
			if (err != nil) != tt.wantErr {
				t.Fatalf("HandleCallback() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.OrderID != tt.want.OrderID {
				t.Fatalf("HandleCallback() OrderID = %v, want %v", got.OrderID, tt.want.OrderID)
			}
			if got.Status != tt.want.Status {
				t.Fatalf("HandleCallback() Status = %v, want %v", got.Status, tt.want.Status)
			}
			if got.Message != tt.want.Message {
				t.Fatalf("HandleCallback() Message = %q, want %q", got.Message, tt.want.Message)
			}
		})
	}
}
