package order_test

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	apporder "github.com/kelasfoto/kelasfoto/application/order"
	"github.com/kelasfoto/kelasfoto/cmd/config"
	"github.com/kelasfoto/kelasfoto/constant"
	catalogmocks "github.com/kelasfoto/kelasfoto/mocks/repository/catalog"
	ordermocks "github.com/kelasfoto/kelasfoto/mocks/repository/order"
	paymentmocks "github.com/kelasfoto/kelasfoto/mocks/repository/payment"
	txmocks "github.com/kelasfoto/kelasfoto/mocks/repository/tx"
	ipechomocks "github.com/kelasfoto/kelasfoto/mocks/thirdparty/ipecho"
	"github.com/kelasfoto/kelasfoto/model"
	cerr "github.com/kelasfoto/kelasfoto/utils/errors"
	"github.com/stretchr/testify/mock"
)

func gatewayConfig() config.GatewayConfig {
	return config.GatewayConfig{
		PaymentURL:       "https://pay.example.com/checkout",
		ServiceID:        "SVC001",
		MerchantPassword: "secret",
		ReturnURL:        "https://shop.example.com/return",
		CallbackURL:      "https://shop.example.com/payment/callback",
		CurrencyCode:     "MYR",
	}
}

func productCart() model.Cart {
	return model.Cart{
		{
			Kind: model.CartUnitProduct,
			Product: &model.ProductSelection{
				InstitutionID:  1,
				AcademicYearID: 2,
				CourseID:       3,
				AlbumID:        4,
				PhotoID:        5,
				PhotoName:      "class-group.jpg",
				ProductTypeID:  6,
				UnitPrice:      1500,
				Options: []model.VariationOption{
					{VariationID: 7, Name: "8R print", Price: 500},
				},
			},
		},
	}
}

func checkoutRequest() *model.CheckoutRequest {
	return &model.CheckoutRequest{
		ShippingAddress: "12 Jalan Sekolah",
		Cart:            productCart(),
		PaymentMethod:   "fpx",
		ShipmentMethod:  "courier",
		ShippingFee:     800,
		Price:           2000,
		CustName:        "Aina",
		CustEmail:       "aina@example.com",
		CustPhone:       "0123456789",
	}
}

func TestOrderApp_CreateOrder(t *testing.T) {
	type fields struct {
		config      *config.Config
		txRepo      *txmocks.TxRepository
		catalogRepo *catalogmocks.CatalogRepository
		orderRepo   *ordermocks.OrderRepository
		paymentRepo *paymentmocks.PaymentRepository
		ipResolver  *ipechomocks.Resolver
	}
	type args struct {
		ctx    context.Context
		userID uint64
		req    *model.CheckoutRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.CheckoutResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: checkout cart with single product",
			fields: fields{
				config:      &config.Config{Gateway: gatewayConfig()},
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				paymentRepo: paymentmocks.NewPaymentRepository(t),
				ipResolver:  ipechomocks.NewResolver(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 9,
				req:    checkoutRequest(),
			},
			mockCall: func(f fields) {
				f.catalogRepo.On("CountEnabledInstitutions", mock.Anything, []uint64{1}).Return(int64(1), nil).Once()
				f.catalogRepo.On("CountEnabledAcademicYears", mock.Anything, []uint64{2}).Return(int64(1), nil).Once()
				f.catalogRepo.On("CountEnabledCourses", mock.Anything, []uint64{3}).Return(int64(1), nil).Once()
				f.catalogRepo.On("CountEnabledAlbums", mock.Anything, []uint64{4}).Return(int64(1), nil).Once()

				f.ipResolver.On("PublicIP", mock.Anything).Return("203.0.113.7", nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("NextOrderNoTx", mock.Anything, tx).Return(uint64(100001), nil).Once()

				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.MatchedBy(func(req *model.OrderEntity) bool {
					return req.OrderNo == 100001 &&
						req.UserID == 9 &&
						req.Status == constant.OrderStatusPending &&
						req.Price == 2000 &&
						req.ShippingFee == 800 &&
						len(req.Cart) == 1
				})).Return(uint64(55), nil).Once()

				f.orderRepo.On("InsertOrderCartRowsTx", mock.Anything, tx, uint64(55), mock.MatchedBy(func(rows []model.OrderCartRow) bool {
					return len(rows) == 1 &&
						rows[0].UnitKind == "product" &&
						rows[0].PhotoID != nil && *rows[0].PhotoID == 5
				})).Return(nil).Once()

				f.paymentRepo.On("InsertPaymentTx", mock.Anything, tx, mock.MatchedBy(func(req *model.PaymentEntity) bool {
					return req.OrderID == 55 &&
						req.Amount == 2800 &&
						req.CurrencyCode == "MYR" &&
						strings.HasPrefix(req.PaymentID, "100001_") &&
						strings.Contains(req.RequestDetail, "203.0.113.7")
				})).Return(uint64(77), nil).Once()
			},
			want: &model.CheckoutResponse{
				OrderID: 55,
				OrderNo: 100001,
			},
		},
		{
			name: "error: empty cart",
			fields: fields{
				config:      &config.Config{Gateway: gatewayConfig()},
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				paymentRepo: paymentmocks.NewPaymentRepository(t),
				ipResolver:  ipechomocks.NewResolver(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 9,
				req: &model.CheckoutRequest{
					Cart:      model.Cart{},
					Price:     2000,
					CustName:  "Aina",
					CustEmail: "aina@example.com",
				},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: cart references disabled album",
			fields: fields{
				config:      &config.Config{Gateway: gatewayConfig()},
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				paymentRepo: paymentmocks.NewPaymentRepository(t),
				ipResolver:  ipechomocks.NewResolver(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 9,
				req:    checkoutRequest(),
			},
			mockCall: func(f fields) {
				f.catalogRepo.On("CountEnabledInstitutions", mock.Anything, []uint64{1}).Return(int64(1), nil).Once()
				f.catalogRepo.On("CountEnabledAcademicYears", mock.Anything, []uint64{2}).Return(int64(1), nil).Once()
				f.catalogRepo.On("CountEnabledCourses", mock.Anything, []uint64{3}).Return(int64(1), nil).Once()
				f.catalogRepo.On("CountEnabledAlbums", mock.Anything, []uint64{4}).Return(int64(0), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidAlbum,
		},
		{
			name: "error: ip echo unreachable",
			fields: fields{
				config:      &config.Config{Gateway: gatewayConfig()},
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				paymentRepo: paymentmocks.NewPaymentRepository(t),
				ipResolver:  ipechomocks.NewResolver(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 9,
				req:    checkoutRequest(),
			},
			mockCall: func(f fields) {
				f.catalogRepo.On("CountEnabledInstitutions", mock.Anything, []uint64{1}).Return(int64(1), nil).Once()
				f.catalogRepo.On("CountEnabledAcademicYears", mock.Anything, []uint64{2}).Return(int64(1), nil).Once()
				f.catalogRepo.On("CountEnabledCourses", mock.Anything, []uint64{3}).Return(int64(1), nil).Once()
				f.catalogRepo.On("CountEnabledAlbums", mock.Anything, []uint64{4}).Return(int64(1), nil).Once()

				f.ipResolver.On("PublicIP", mock.Anything).Return("", errors.New("timeout")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: payment insert fails and tx rolls back",
			fields: fields{
				config:      &config.Config{Gateway: gatewayConfig()},
				txRepo:      txmocks.NewTxRepository(t),
				catalogRepo: catalogmocks.NewCatalogRepository(t),
				orderRepo:   ordermocks.NewOrderRepository(t),
				paymentRepo: paymentmocks.NewPaymentRepository(t),
				ipResolver:  ipechomocks.NewResolver(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 9,
				req:    checkoutRequest(),
			},
			mockCall: func(f fields) {
				f.catalogRepo.On("CountEnabledInstitutions", mock.Anything, []uint64{1}).Return(int64(1), nil).Once()
				f.catalogRepo.On("CountEnabledAcademicYears", mock.Anything, []uint64{2}).Return(int64(1), nil).Once()
				f.catalogRepo.On("CountEnabledCourses", mock.Anything, []uint64{3}).Return(int64(1), nil).Once()
				f.catalogRepo.On("CountEnabledAlbums", mock.Anything, []uint64{4}).Return(int64(1), nil).Once()

				f.ipResolver.On("PublicIP", mock.Anything).Return("203.0.113.7", nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("NextOrderNoTx", mock.Anything, tx).Return(uint64(100001), nil).Once()
				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.Anything).Return(uint64(55), nil).Once()
				f.orderRepo.On("InsertOrderCartRowsTx", mock.Anything, tx, uint64(55), mock.Anything).Return(nil).Once()

				f.paymentRepo.On("InsertPaymentTx", mock.Anything, tx, mock.Anything).Return(uint64(0), errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apporder.NewOrderApp(tt.fields.config, tt.fields.txRepo, tt.fields.catalogRepo, tt.fields.orderRepo, tt.fields.paymentRepo, tt.fields.ipResolver)

			got, err := app.CreateOrder(tt.args.ctx, tt.args.userID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateOrder() error = %v, wantErr %v", err, tt.wantErr)
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
				t.Fatalf("CreateOrder() OrderID = %v, want %v", got.OrderID, tt.want.OrderID)
			}
			if got.OrderNo != tt.want.OrderNo {
				t.Fatalf("CreateOrder() OrderNo = %v, want %v", got.OrderNo, tt.want.OrderNo)
			}
			if !strings.HasPrefix(got.PaymentID, strconv.FormatUint(tt.want.OrderNo, 10)+"_") {
				t.Fatalf("CreateOrder() PaymentID = %q, want prefix %d_", got.PaymentID, tt.want.OrderNo)
			}
			// 14-digit timestamp plus 2 centisecond digits after the underscore
			suffix := got.PaymentID[strings.Index(got.PaymentID, "_")+1:]
			if len(suffix) != 16 {
				t.Fatalf("CreateOrder() PaymentID timestamp = %q, want 16 digits", suffix)
			}
			if got.Gateway.Amount != "28.00" {
				t.Fatalf("CreateOrder() gateway amount = %q, want 28.00", got.Gateway.Amount)
			}
			if got.Gateway.Signature == "" {
				t.Fatal("CreateOrder() gateway signature should not be empty")
			}
		})
	}
}

func TestOrderApp_UpdateTracking(t *testing.T) {
	type fields struct {
		orderRepo *ordermocks.OrderRepository
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: set tracking number",
			fields: fields{orderRepo: ordermocks.NewOrderRepository(t)},
			mockCall: func(f fields) {
				f.orderRepo.On("Get", mock.Anything, uint64(1)).Return(&model.OrderEntity{ID: 1}, nil).Once()
				f.orderRepo.On("UpdateTracking", mock.Anything, uint64(1), "TRK-9").Return(nil).Once()
			},
		},
		{
			name:   "error: order not found",
			fields: fields{orderRepo: ordermocks.NewOrderRepository(t)},
			mockCall: func(f fields) {
				f.orderRepo.On("Get", mock.Anything, uint64(1)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apporder.NewOrderApp(&config.Config{}, txmocks.NewTxRepository(t), catalogmocks.NewCatalogRepository(t), tt.fields.orderRepo, paymentmocks.NewPaymentRepository(t), ipechomocks.NewResolver(t))

			err := app.UpdateTracking(context.Background(), 1, "TRK-9")
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateTracking() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}
