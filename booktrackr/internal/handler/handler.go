package handler

import (
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/booktrackr/booktrackr/internal/errs"
	"github.com/Astemirdum/booktrackr/booktrackr/internal/model"
	md "github.com/Astemirdum/booktrackr/pkg/middleware"
	"github.com/Astemirdum/booktrackr/pkg/validate"
	_ "github.com/Astemirdum/booktrackr/swagger"
)

const (
	exportFilename = "booktrackr-export.json"
	maxImportSize  = 10 << 20 // 10 MB
)

type Handler struct {
	bookSvc BookService
	log     *zap.Logger
}

func New(bookSvc BookService, log *zap.Logger) *Handler {
	return &Handler{
		bookSvc: bookSvc,
		log:     log,
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
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		middleware.BodyLimit("10M"),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/books", h.GetBooks)
	api.POST("/books", h.CreateBook)
	api.GET("/books/:bookId", h.GetBook)
	api.PUT("/books/:bookId", h.UpdateBook)
	api.DELETE("/books/:bookId", h.DeleteBook)
	api.PATCH("/books/:bookId/position", h.MoveBook)

	api.GET("/stats", h.GetStats)
	api.GET("/export", h.Export)
	api.POST("/import", h.Import)
	api.GET("/suggestions", h.GetSuggestions)
	api.GET("/progress", h.GetProgress)

	api.GET("/theme", h.GetTheme)
	api.PUT("/theme", h.SetTheme)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps domain errors onto status codes.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrImportJSON),
		errors.Is(err, errs.ErrImportShape),
		errors.Is(err, errs.ErrTheme):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func (h *Handler) GetBooks(c echo.Context) error {
	ctx := c.Request().Context()

	q := model.Query{
		Text:   c.QueryParam("q"),
		Status: model.Status(c.QueryParam("status")),
		Sort:   model.SortKey(c.QueryParam("sort")),
	}
	var (
		err     error
		grouped bool
	)
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if q.Page, err = strconv.Atoi(pageParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "page is invalid")
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if q.PageSize, err = strconv.Atoi(sizeParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "size is invalid")
		}
	}
	if groupParam := c.QueryParam("group"); groupParam != "" {
		if grouped, err = strconv.ParseBool(groupParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "group is invalid")
		}
	}

	view, err := h.bookSvc.View(ctx, q, grouped)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) GetBook(c echo.Context) error {
	book, err := h.bookSvc.GetBook(c.Request().Context(), c.Param("bookId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.BookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.bookSvc.AddBook(c.Request().Context(), req.Book())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	var req model.BookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.bookSvc.UpdateBook(c.Request().Context(), c.Param("bookId"), req.Book())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	if err := h.bookSvc.DeleteBook(c.Request().Context(), c.Param("bookId")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) MoveBook(c echo.Context) error {
	type Req struct {
		Position *int `json:"position" validate:"required"`
	}
	var req Req
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.bookSvc.MoveBook(c.Request().Context(), c.Param("bookId"), *req.Position)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) GetStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.bookSvc.Stats(c.Request().Context()))
}

func (h *Handler) Export(c echo.Context) error {
	data, err := h.bookSvc.ExportBooks(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+exportFilename+`"`)
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, data)
}

// Import accepts the payload either as the raw request body or as the "file"
// field of a multipart form.
func (h *Handler) Import(c echo.Context) error {
	raw, err := readImport(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	books, err := h.bookSvc.ImportBooks(c.Request().Context(), raw)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func readImport(c echo.Context) ([]byte, error) {
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		fh, err := c.FormFile("file")
		if err != nil {
			return nil, errors.Wrap(err, "file")
		}
		f, err := fh.Open()
		if err != nil {
			return nil, errors.Wrap(err, "open file")
		}
		defer f.Close()
		return io.ReadAll(io.LimitReader(f, maxImportSize))
	}
	return io.ReadAll(io.LimitReader(c.Request().Body, maxImportSize))
}

func (h *Handler) GetSuggestions(c echo.Context) error {
	field := model.Field(c.QueryParam("field"))
	if field == "" {
		field = model.FieldTitle
	}
	values, err := h.bookSvc.Suggest(c.Request().Context(), field, c.QueryParam("prefix"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, values)
}

func (h *Handler) GetProgress(c echo.Context) error {
	percent, err := strconv.ParseFloat(c.QueryParam("percent"), 64)
	if err != nil || math.IsNaN(percent) || math.IsInf(percent, 0) {
		return echo.NewHTTPError(http.StatusBadRequest, "percent is invalid")
	}
	var total int
	if totalParam := c.QueryParam("total"); totalParam != "" {
		if total, err = strconv.Atoi(totalParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "total is invalid")
		}
	}
	return c.JSON(http.StatusOK, map[string]int{"pagesRead": h.bookSvc.Progress(percent, total)})
}

type themeBody struct {
	Theme model.Theme `json:"theme" validate:"required,oneof=light dark"`
}

func (h *Handler) GetTheme(c echo.Context) error {
	return c.JSON(http.StatusOK, themeBody{Theme: h.bookSvc.Theme(c.Request().Context())})
}

func (h *Handler) SetTheme(c echo.Context) error {
	var req themeBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.bookSvc.SetTheme(c.Request().Context(), req.Theme); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, req)
}
