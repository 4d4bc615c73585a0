package transport

import (
	"context"
	"encoding/json"
	"html/template"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	catalogapp "github.com/kelasfoto/kelasfoto/application/catalog"
	orderapp "github.com/kelasfoto/kelasfoto/application/order"
	paymentapp "github.com/kelasfoto/kelasfoto/application/payment"
	userapp "github.com/kelasfoto/kelasfoto/application/user"
	"github.com/kelasfoto/kelasfoto/constant"
	"github.com/kelasfoto/kelasfoto/model"
	utilsContext "github.com/kelasfoto/kelasfoto/utils/context"
	"github.com/kelasfoto/kelasfoto/utils/errors"
	"github.com/kelasfoto/kelasfoto/utils/logger"
	validatorx "github.com/kelasfoto/kelasfoto/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type RestHandler struct {
	UserApp    userapp.UserApp
	CatalogApp catalogapp.CatalogApp
	OrderApp   orderapp.OrderApp
	PaymentApp paymentapp.PaymentApp
}

func NewTransport(UserApp userapp.UserApp, CatalogApp catalogapp.CatalogApp, OrderApp orderapp.OrderApp, PaymentApp paymentapp.PaymentApp, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:    UserApp,
		CatalogApp: CatalogApp,
		OrderApp:   OrderApp,
		PaymentApp: PaymentApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/institutions", rh.ListInstitutions).Methods(http.MethodGet)
	mux.HandleFunc("/institutions/{id}/academic-years", rh.ListAcademicYears).Methods(http.MethodGet)
	mux.HandleFunc("/payment/callback", rh.PaymentCallback).Methods(http.MethodPost)

	// protected routes
	mux.HandleFunc("/academic-years/{id}/courses", rh.ListCourses).Methods(http.MethodGet)
	mux.HandleFunc("/courses/{id}/verify-access", rh.VerifyCourseAccess).Methods(http.MethodPost)
	mux.HandleFunc("/courses/{id}/albums", rh.ListAlbums).Methods(http.MethodGet)
	mux.HandleFunc("/albums/{id}/photos", rh.ListPhotos).Methods(http.MethodGet)
	mux.HandleFunc("/product-types", rh.ListProductTypes).Methods(http.MethodGet)
	mux.HandleFunc("/product-types/{id}/variations", rh.ListVariations).Methods(http.MethodGet)
	mux.HandleFunc("/packages", rh.ListPackages).Methods(http.MethodGet)
	mux.HandleFunc("/checkout", rh.Checkout).Methods(http.MethodPost)
	mux.HandleFunc("/downloads", rh.ListDownloads).Methods(http.MethodGet)

	// staff routes
	admin := mux.PathPrefix("/admin").Subrouter()
	admin.Use(AdminMiddleware())
	admin.HandleFunc("/institutions", rh.CreateInstitution).Methods(http.MethodPost)
	admin.HandleFunc("/institutions/{id}/enabled", rh.SetInstitutionEnabled).Methods(http.MethodPatch)
	admin.HandleFunc("/academic-years", rh.CreateAcademicYear).Methods(http.MethodPost)
	admin.HandleFunc("/academic-years/{id}/enabled", rh.SetAcademicYearEnabled).Methods(http.MethodPatch)
	admin.HandleFunc("/courses", rh.CreateCourse).Methods(http.MethodPost)
	admin.HandleFunc("/courses/{id}/enabled", rh.SetCourseEnabled).Methods(http.MethodPatch)
	admin.HandleFunc("/albums", rh.CreateAlbum).Methods(http.MethodPost)
	admin.HandleFunc("/albums/{id}/enabled", rh.SetAlbumEnabled).Methods(http.MethodPatch)
	admin.HandleFunc("/albums/{id}/photos", rh.UploadPhoto).Methods(http.MethodPost)
	admin.HandleFunc("/photos/{id}", rh.DeletePhoto).Methods(http.MethodDelete)
	admin.HandleFunc("/product-types", rh.CreateProductType).Methods(http.MethodPost)
	admin.HandleFunc("/variations", rh.CreateVariation).Methods(http.MethodPost)
	admin.HandleFunc("/packages", rh.CreatePackage).Methods(http.MethodPost)
	admin.HandleFunc("/packages/{id}/enabled", rh.SetPackageEnabled).Methods(http.MethodPatch)
	admin.HandleFunc("/orders", rh.ListOrders).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id}", rh.GetOrder).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id}/tracking", rh.UpdateTracking).Methods(http.MethodPut)
	admin.HandleFunc("/orders/{id}/priority", rh.UpdatePriority).Methods(http.MethodPut)

	// internal routes (service-to-service)
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/order/{id}/notify", rh.NotifyOrder).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(UserApp))

	return mux
}

func pathID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
}

// Register handler
// @Summary Register user
// @Description Register a new parent account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} errors.CustomError
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) ListInstitutions(w http.ResponseWriter, r *http.Request) {
	role, _ := utilsContext.GetUserRole(r.Context())
	res, err := s.CatalogApp.ListInstitutions(r.Context(), role == constant.RoleStaff)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ListAcademicYears(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	role, _ := utilsContext.GetUserRole(r.Context())
	res, err := s.CatalogApp.ListAcademicYears(r.Context(), id, role == constant.RoleStaff)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	res, err := s.CatalogApp.ListCourses(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// VerifyCourseAccess handler
// @Summary Verify course access code
// @Description Unlock a course's albums with its access code
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body model.VerifyCourseAccessRequest true "Access Code"
// @Success 200 {object} transport.responseEnvelope
// @Failure 400 {object} errors.CustomError
// @Router /courses/{id}/verify-access [post]
func (s *RestHandler) VerifyCourseAccess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.VerifyCourseAccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	userID, _ := utilsContext.GetUserID(ctx)
	if err := s.CatalogApp.VerifyCourseAccess(ctx, userID, id, req.AccessCode); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func (s *RestHandler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	userID, _ := utilsContext.GetUserID(ctx)
	role, _ := utilsContext.GetUserRole(ctx)
	res, err := s.CatalogApp.ListAlbums(ctx, userID, role, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	userID, _ := utilsContext.GetUserID(ctx)
	role, _ := utilsContext.GetUserRole(ctx)
	res, err := s.CatalogApp.ListPhotos(ctx, userID, role, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ListProductTypes(w http.ResponseWriter, r *http.Request) {
	res, err := s.CatalogApp.ListProductTypes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ListVariations(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	res, err := s.CatalogApp.ListVariations(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	institutionID, err := strconv.ParseUint(r.URL.Query().Get("institution_id"), 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	role, _ := utilsContext.GetUserRole(r.Context())
	res, err := s.CatalogApp.ListPackages(r.Context(), institutionID, role == constant.RoleStaff)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Checkout handler
// @Summary Checkout cart
// @Description Validate the cart, create an order and a signed payment request
// @Tags Order
// @Accept json
// @Produce json
// @Param request body model.CheckoutRequest true "Checkout Request"
// @Success 201 {object} model.CheckoutResponse
// @Failure 400 {object} errors.CustomError
// @Router /checkout [post]
func (s *RestHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	userID, _ := utilsContext.GetUserID(ctx)
	res, err := s.OrderApp.CreateOrder(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccessStatus(w, http.StatusCreated, res)
}

var callbackView = template.Must(template.New("callback").Parse(`<!DOCTYPE html>
<html>
<head><title>Payment {{.Status}}</title></head>
<body>
<h1>Payment {{.Status}}</h1>
{{if .Message}}<p>{{.Message}}</p>{{end}}
<p>Order #{{.OrderID}}</p>
</body>
</html>
`))

// PaymentCallback handler
// @Summary Payment gateway callback
// @Description Reconcile a form-encoded gateway callback and render a confirmation page
// @Tags Payment
// @Accept x-www-form-urlencoded
// @Produce html
// @Success 200 {string} string "confirmation page"
// @Failure 400 {object} errors.CustomError
// @Router /payment/callback [post]
func (s *RestHandler) PaymentCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	cb := model.GatewayCallback{
		OrderNumber: r.FormValue("OrderNumber"),
		PaymentID:   r.FormValue("PaymentID"),
		TxnStatus:   r.FormValue("TxnStatus"),
		TxnID:       r.FormValue("TxnID"),
		RawBody:     r.Form.Encode(),
	}
	if err := validatorx.ValidateStruct(&cb); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.PaymentApp.HandleCallback(ctx, &cb)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := callbackView.Execute(w, res); err != nil {
		logger.Error("[PaymentCallback] render view", zap.String("error", err.Error()))
	}
}

// ListDownloads handler
// @Summary List purchased downloads
// @Description List the caller's purchased photos with fresh signed URLs
// @Tags User
// @Produce json
// @Success 200 {object} model.DownloadsResponse
// @Failure 401 {object} errors.CustomError
// @Router /downloads [get]
func (s *RestHandler) ListDownloads(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, _ := utilsContext.GetUserID(ctx)
	res, err := s.UserApp.ListDownloads(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) CreateInstitution(w http.ResponseWriter, r *http.Request) {
	var req model.CreateInstitutionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	id, err := s.CatalogApp.CreateInstitution(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccessStatus(w, http.StatusCreated, map[string]uint64{"id": id})
}

func (s *RestHandler) SetInstitutionEnabled(w http.ResponseWriter, r *http.Request) {
	s.setEnabled(w, r, s.CatalogApp.SetInstitutionEnabled)
}

func (s *RestHandler) CreateAcademicYear(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAcademicYearRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	id, err := s.CatalogApp.CreateAcademicYear(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccessStatus(w, http.StatusCreated, map[string]uint64{"id": id})
}

func (s *RestHandler) SetAcademicYearEnabled(w http.ResponseWriter, r *http.Request) {
	s.setEnabled(w, r, s.CatalogApp.SetAcademicYearEnabled)
}

func (s *RestHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCourseRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	id, err := s.CatalogApp.CreateCourse(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccessStatus(w, http.StatusCreated, map[string]uint64{"id": id})
}

func (s *RestHandler) SetCourseEnabled(w http.ResponseWriter, r *http.Request) {
	s.setEnabled(w, r, s.CatalogApp.SetCourseEnabled)
}

func (s *RestHandler) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAlbumRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	id, err := s.CatalogApp.CreateAlbum(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccessStatus(w, http.StatusCreated, map[string]uint64{"id": id})
}

func (s *RestHandler) SetAlbumEnabled(w http.ResponseWriter, r *http.Request) {
	s.setEnabled(w, r, s.CatalogApp.SetAlbumEnabled)
}

// UploadPhoto handler
// @Summary Upload a photo
// @Description Upload a photo into an album; stores a private original and a public preview
// @Tags Catalog
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Album ID"
// @Param photo formData file true "Photo file"
// @Success 201 {object} map[string]uint64
// @Failure 400 {object} errors.CustomError
// @Router /admin/albums/{id}/photos [post]
func (s *RestHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	albumID, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	// 32 MB in-memory limit before spilling to disk
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	id, err := s.CatalogApp.UploadPhoto(ctx, albumID, header.Filename, header.Header.Get("Content-Type"), body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccessStatus(w, http.StatusCreated, map[string]uint64{"id": id})
}

func (s *RestHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := s.CatalogApp.DeletePhoto(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

func (s *RestHandler) CreateProductType(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProductTypeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	id, err := s.CatalogApp.CreateProductType(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccessStatus(w, http.StatusCreated, map[string]uint64{"id": id})
}

func (s *RestHandler) CreateVariation(w http.ResponseWriter, r *http.Request) {
	var req model.CreateVariationRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	id, err := s.CatalogApp.CreateVariation(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccessStatus(w, http.StatusCreated, map[string]uint64{"id": id})
}

func (s *RestHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePackageRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	id, err := s.CatalogApp.CreatePackage(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccessStatus(w, http.StatusCreated, map[string]uint64{"id": id})
}

func (s *RestHandler) SetPackageEnabled(w http.ResponseWriter, r *http.Request) {
	s.setEnabled(w, r, s.CatalogApp.SetPackageEnabled)
}

// ListOrders handler
// @Summary List orders
// @Description List orders for back-office review, newest and highest priority first
// @Tags Order
// @Produce json
// @Param status query int false "Order status (1 pending, 2 completed, 3 failed)"
// @Param user_id query int false "Filter by buyer"
// @Success 200 {array} model.OrderEntity
// @Failure 403 {object} errors.CustomError
// @Router /admin/orders [get]
func (s *RestHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	filter := &model.OrderFilter{Limit: 20}

	q := r.URL.Query()
	if raw := q.Get("status"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		status := constant.OrderStatus(v)
		filter.Status = &status
	}
	if raw := q.Get("user_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		filter.UserID = v
	}
	if raw := q.Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			filter.Limit = v
		}
	}
	if raw := q.Get("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			filter.Offset = v
		}
	}

	res, err := s.OrderApp.ListOrders(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	res, err := s.OrderApp.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) UpdateTracking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	var req model.UpdateTrackingRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.OrderApp.UpdateTracking(r.Context(), id, req.TrackingNo); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

func (s *RestHandler) UpdatePriority(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	var req model.UpdatePriorityRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.OrderApp.UpdatePriority(r.Context(), id, *req.Priority); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// NotifyOrder is hit by the queue consumer after an order completes. The
// actual customer email goes out from here so the consumer stays transport
// agnostic.
func (s *RestHandler) NotifyOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	order, err := s.OrderApp.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	logger.Info("order notification dispatched",
		zap.Uint64("order_id", order.ID),
		zap.Uint64("order_no", order.OrderNo),
		zap.String("cust_email", order.CustEmail),
	)
	writeSuccess(w, nil)
}

func (s *RestHandler) setEnabled(w http.ResponseWriter, r *http.Request, apply func(context.Context, uint64, bool) error) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	var req model.SetEnabledRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := apply(r.Context(), id, *req.Enabled); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

func decodeAndValidate(r *http.Request, req interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return nil
}
