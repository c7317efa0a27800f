package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/libress/lending-service/internal/errs"
	"github.com/libress/lending-service/internal/model"
	"github.com/libress/lending-service/pkg/auth"
	"github.com/libress/lending-service/pkg/validate"
	_ "github.com/libress/lending-service/swagger"
)

type Handler struct {
	loanSvc  LoanService
	fineSvc  FineService
	statsSvc StatsService
	authCfg  auth.Config
	log      *zap.Logger
}

func New(loanSvc LoanService, fineSvc FineService, statsSvc StatsService, authCfg auth.Config, log *zap.Logger) *Handler {
	return &Handler{
		loanSvc:  loanSvc,
		fineSvc:  fineSvc,
		statsSvc: statsSvc,
		authCfg:  authCfg,
		log:      log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig()),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
		auth.JwtAuthentication([]byte(h.authCfg.JWTKey)),
	)

	api.POST("/loans", h.Borrow)
	api.POST("/loans/return", h.Return)
	api.PUT("/loans/extend", h.Extend)
	api.GET("/loans/my-active", h.MyActiveLoans)
	api.GET("/loans/my-returned", h.MyReturnedLoans)

	api.POST("/fines/pay", h.PayFine)
	api.GET("/fines/my-active", h.MyActiveFines)
	api.GET("/fines/my-history", h.MyFineHistory)

	admin := api.Group("", adminOnly)
	admin.GET("/loans/overdue", h.OverdueLoans)
	admin.GET("/loans/returned", h.ReturnedLoans)
	admin.POST("/fines/issue", h.IssueFine)
	admin.POST("/fines/:fineUid/revoke", h.RevokeFine)
	admin.GET("/stats", h.Stats)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps business errors to transport status; anything unknown
// stays a 500 without leaking internals.
func (h *Handler) httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrCopyLent),
		errors.Is(err, errs.ErrFineNotPayable):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrActiveFine),
		errors.Is(err, errs.ErrLoanLimit),
		errors.Is(err, errs.ErrLoanDays),
		errors.Is(err, errs.ErrClosedLoan),
		errors.Is(err, errs.ErrDateBackward),
		errors.Is(err, errs.ErrFineAmount):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		h.log.Error("internal", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}

func userName(c echo.Context) (string, error) {
	name := auth.Username(c.Request().Context())
	if name == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "username is required")
	}
	return name, nil
}

func paging(c echo.Context) (page, size int, err error) {
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if page, err = strconv.Atoi(pageParam); err != nil || page < 1 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "page is invalid")
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil || size < 1 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "size is invalid")
		}
	}
	return page, size, nil
}

func (h *Handler) Borrow(c echo.Context) error {
	var req model.BorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	name, err := userName(c)
	if err != nil {
		return err
	}
	req.Username = name
	if err := c.Validate(req); err != nil {
		return err
	}

	loan, err := h.loanSvc.Borrow(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, loan)
}

func (h *Handler) Return(c echo.Context) error {
	var req model.ReturnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	name, err := userName(c)
	if err != nil {
		return err
	}
	req.Username = name
	if err := c.Validate(req); err != nil {
		return err
	}

	summary, err := h.loanSvc.Return(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *Handler) Extend(c echo.Context) error {
	var req model.ExtendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	name, err := userName(c)
	if err != nil {
		return err
	}
	req.Username = name
	if err := c.Validate(req); err != nil {
		return err
	}

	loan, err := h.loanSvc.Extend(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) listLoans(c echo.Context, f model.LoanFilter) error {
	page, size, err := paging(c)
	if err != nil {
		return err
	}
	f.Page, f.Size = page, size

	loans, err := h.loanSvc.ListLoans(c.Request().Context(), f)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) MyActiveLoans(c echo.Context) error {
	name, err := userName(c)
	if err != nil {
		return err
	}
	return h.listLoans(c, model.LoanFilter{Username: name, State: model.LoanStateOpen})
}

func (h *Handler) MyReturnedLoans(c echo.Context) error {
	name, err := userName(c)
	if err != nil {
		return err
	}
	return h.listLoans(c, model.LoanFilter{Username: name, State: model.LoanStateClosed})
}

func (h *Handler) OverdueLoans(c echo.Context) error {
	return h.listLoans(c, model.LoanFilter{OverdueOnly: true})
}

func (h *Handler) ReturnedLoans(c echo.Context) error {
	return h.listLoans(c, model.LoanFilter{State: model.LoanStateClosed})
}

func (h *Handler) IssueFine(c echo.Context) error {
	var req model.IssueFineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	fine, err := h.fineSvc.IssueFine(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, fine)
}

func (h *Handler) RevokeFine(c echo.Context) error {
	fineUid := c.Param("fineUid")
	if fineUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "fineUid is empty")
	}

	fine, err := h.fineSvc.RevokeFine(c.Request().Context(), fineUid)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, fine)
}

func (h *Handler) PayFine(c echo.Context) error {
	name, err := userName(c)
	if err != nil {
		return err
	}
	fineUid := c.QueryParam("fineUid")
	if fineUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "fineUid is empty")
	}

	fine, err := h.fineSvc.PayFine(c.Request().Context(), name, fineUid)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, fine)
}

func (h *Handler) listFines(c echo.Context, activeOnly bool) error {
	name, err := userName(c)
	if err != nil {
		return err
	}
	page, size, err := paging(c)
	if err != nil {
		return err
	}

	fines, err := h.fineSvc.ListFines(c.Request().Context(), name, activeOnly, page, size)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, fines)
}

func (h *Handler) MyActiveFines(c echo.Context) error {
	return h.listFines(c, true)
}

func (h *Handler) MyFineHistory(c echo.Context) error {
	return h.listFines(c, false)
}

func (h *Handler) Stats(c echo.Context) error {
	stats, err := h.statsSvc.GetStats(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
