package handler_test

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/booktrackr/booktrackr/internal/errs"
	"github.com/Astemirdum/booktrackr/booktrackr/internal/handler"
	"github.com/Astemirdum/booktrackr/booktrackr/internal/model"
	"github.com/Astemirdum/booktrackr/pkg/validate"

	service_mocks "github.com/Astemirdum/booktrackr/booktrackr/internal/handler/mocks"
)

var dateAdded = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

const duneJSON = `{"id":"b1","title":"Dune","author":"Frank Herbert","tags":["sf"],"pagesRead":10,"pagesTotal":412,"status":"Reading","dateAdded":"2024-01-02T03:04:05Z"}`

func dune() model.Book {
	return model.Book{
		ID:         "b1",
		Title:      "Dune",
		Author:     "Frank Herbert",
		Tags:       []string{"sf"},
		PagesRead:  10,
		PagesTotal: 412,
		Status:     model.StatusReading,
		DateAdded:  dateAdded,
	}
}

func newEcho(t *testing.T) (*echo.Echo, *service_mocks.MockBookService, *handler.Handler) {
	c := gomock.NewController(t)
	svc := service_mocks.NewMockBookService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	return e, svc, h
}

type response struct {
	expectedCode int
	expectedBody string
}

func TestHandler_GetBooks(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockBookService)

	var tests = []struct {
		name         string
		query        string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:  "ok",
			query: "?q=dune&status=Reading&sort=title&page=2&size=3",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					View(context.Background(), model.Query{
						Text:     "dune",
						Status:   model.StatusReading,
						Sort:     model.SortTitle,
						Page:     2,
						PageSize: 3,
					}, false).
					Return(model.View{
						Paging: model.Paging{Page: 1, PageSize: 3, TotalElements: 0, TotalPages: 0},
						Items:  []model.Card{},
						Chips:  []model.Chip{},
						Stats:  model.Stats{Genres: map[string]int{}},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"page":1,"pageSize":3,"totalElements":0,"totalPages":0,"items":[],"chips":[],"stats":{"status":{"toRead":0,"reading":0,"finished":0},"ratings":[0,0,0,0,0],"genres":{},"total":0}}`,
			},
		},
		{
			name:  "ok. grouped",
			query: "?group=true",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					View(context.Background(), model.Query{}, true).
					Return(model.View{
						Paging: model.Paging{Page: 1, PageSize: 6, TotalElements: 1, TotalPages: 1},
						Items:  []model.Card{{ID: "b1", Title: "Dune", Tags: []string{}, Status: model.StatusReading, Badge: "reading"}},
						Groups: []model.Group{{Status: model.StatusReading, Badge: "reading", Items: []model.Card{{ID: "b1"}}}},
						Chips:  []model.Chip{},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"page":1,"pageSize":6,"totalElements":1,"totalPages":1,"items":[{"id":"b1","title":"Dune","author":"","tags":[],"pagesLabel":"","progress":0,"stars":"","rating":0,"status":"Reading","badge":"reading","coverUrl":"","notes":"","dateAdded":"0001-01-01T00:00:00Z"}],"groups":[{"status":"Reading","badge":"reading","items":[{"id":"b1","title":"","author":"","tags":null,"pagesLabel":"","progress":0,"stars":"","rating":0,"status":"","badge":"","coverUrl":"","notes":"","dateAdded":"0001-01-01T00:00:00Z"}]}],"chips":[],"stats":{"status":{"toRead":0,"reading":0,"finished":0},"ratings":[0,0,0,0,0],"genres":null,"total":0}}`,
			},
		},
		{
			name:         "err. page invalid",
			query:        "?page=two",
			mockBehavior: func(r *service_mocks.MockBookService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"page is invalid"}`,
			},
		},
		{
			name:         "err. group invalid",
			query:        "?group=maybe",
			mockBehavior: func(r *service_mocks.MockBookService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"group is invalid"}`,
			},
		},
		{
			name:  "err. unknown sort",
			query: "?sort=color",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					View(context.Background(), model.Query{Sort: "color"}, false).
					Return(model.View{}, fmt.Errorf("%w: unknown sort key %q", errs.ErrValidation, "color"))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"validation failed: unknown sort key \"color\""}`,
			},
		},
		{
			name:  "err. internal",
			query: "",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					View(context.Background(), model.Query{}, false).
					Return(model.View{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc, h := newEcho(t)
			e.GET("/books", h.GetBooks)

			r := httptest.NewRequest(http.MethodGet, "/books"+tt.query, http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateBook(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockBookService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"title":"Dune","author":"Frank Herbert","tags":["sf"],"pagesRead":10,"pagesTotal":412,"status":"Reading"}`,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					AddBook(context.Background(), model.Book{
						Title:      "Dune",
						Author:     "Frank Herbert",
						Tags:       []string{"sf"},
						PagesRead:  10,
						PagesTotal: 412,
						Status:     model.StatusReading,
					}).
					Return(dune(), nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: duneJSON,
			},
		},
		{
			name:         "err. malformed body",
			body:         `{"title":`,
			mockBehavior: func(r *service_mocks.MockBookService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name:         "err. title required",
			body:         `{"author":"Frank Herbert","status":"Reading"}`,
			mockBehavior: func(r *service_mocks.MockBookService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: "'title' failed on the 'required' tag",
			},
		},
		{
			name:         "err. rating out of range",
			body:         `{"title":"Dune","author":"Frank Herbert","status":"Reading","rating":7}`,
			mockBehavior: func(r *service_mocks.MockBookService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: "'rating' failed on the 'max' tag",
			},
		},
		{
			name: "err. unknown status",
			body: `{"title":"Dune","author":"Frank Herbert","status":"Abandoned"}`,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					AddBook(context.Background(), model.Book{Title: "Dune", Author: "Frank Herbert", Status: "Abandoned"}).
					Return(model.Book{}, fmt.Errorf("%w: bad status", errs.ErrValidation))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"validation failed: bad status"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc, h := newEcho(t)
			e.POST("/books", h.CreateBook)

			r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Contains(t, strings.Trim(w.Body.String(), "\n"), tt.response.expectedBody)
		})
	}
}

func TestHandler_BookByID(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockBookService)

	var tests = []struct {
		name         string
		method       string
		path         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:   "get ok",
			method: http.MethodGet,
			path:   "/books/b1",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().GetBook(context.Background(), "b1").Return(dune(), nil)
			},
			response: response{expectedCode: http.StatusOK, expectedBody: duneJSON},
		},
		{
			name:   "get not found",
			method: http.MethodGet,
			path:   "/books/nope",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().GetBook(context.Background(), "nope").Return(model.Book{}, fmt.Errorf("book nope: %w", errs.ErrNotFound))
			},
			response: response{expectedCode: http.StatusNotFound, expectedBody: `{"message":"book nope: not found"}`},
		},
		{
			name:   "update ok",
			method: http.MethodPut,
			path:   "/books/b1",
			body:   `{"title":"Dune","author":"Frank Herbert","tags":["sf"],"pagesRead":10,"pagesTotal":412,"status":"Reading"}`,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					UpdateBook(context.Background(), "b1", model.Book{
						Title:      "Dune",
						Author:     "Frank Herbert",
						Tags:       []string{"sf"},
						PagesRead:  10,
						PagesTotal: 412,
						Status:     model.StatusReading,
					}).
					Return(dune(), nil)
			},
			response: response{expectedCode: http.StatusOK, expectedBody: duneJSON},
		},
		{
			name:   "update not found",
			method: http.MethodPut,
			path:   "/books/nope",
			body:   `{"title":"Dune","author":"Frank Herbert","status":"Reading"}`,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					UpdateBook(context.Background(), "nope", model.Book{Title: "Dune", Author: "Frank Herbert", Status: model.StatusReading}).
					Return(model.Book{}, fmt.Errorf("book nope: %w", errs.ErrNotFound))
			},
			response: response{expectedCode: http.StatusNotFound, expectedBody: `{"message":"book nope: not found"}`},
		},
		{
			name:   "delete ok",
			method: http.MethodDelete,
			path:   "/books/b1",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().DeleteBook(context.Background(), "b1").Return(nil)
			},
			response: response{expectedCode: http.StatusNoContent},
		},
		{
			name:   "delete not found",
			method: http.MethodDelete,
			path:   "/books/nope",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().DeleteBook(context.Background(), "nope").Return(fmt.Errorf("book nope: %w", errs.ErrNotFound))
			},
			response: response{expectedCode: http.StatusNotFound, expectedBody: `{"message":"book nope: not found"}`},
		},
		{
			name:   "move ok",
			method: http.MethodPatch,
			path:   "/books/b1/position",
			body:   `{"position":0}`,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().MoveBook(context.Background(), "b1", 0).Return(dune(), nil)
			},
			response: response{expectedCode: http.StatusOK, expectedBody: duneJSON},
		},
		{
			name:         "move without position",
			method:       http.MethodPatch,
			path:         "/books/b1/position",
			body:         `{}`,
			mockBehavior: func(r *service_mocks.MockBookService) {},
			response:     response{expectedCode: http.StatusBadRequest, expectedBody: `{"message":"Key: 'Req.position' Error:Field validation for 'position' failed on the 'required' tag"}`},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc, h := newEcho(t)
			e.GET("/books/:bookId", h.GetBook)
			e.PUT("/books/:bookId", h.UpdateBook)
			e.DELETE("/books/:bookId", h.DeleteBook)
			e.PATCH("/books/:bookId/position", h.MoveBook)

			var r *http.Request
			if tt.body != "" {
				r = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			} else {
				r = httptest.NewRequest(tt.method, tt.path, http.NoBody)
			}
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Export(t *testing.T) {
	t.Parallel()
	e, svc, h := newEcho(t)
	e.GET("/export", h.Export)

	data := []byte("[\n  {\n    \"id\": \"b1\"\n  }\n]")
	svc.EXPECT().ExportBooks(context.Background()).Return(data, nil)

	r := httptest.NewRequest(http.MethodGet, "/export", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `attachment; filename="booktrackr-export.json"`, w.Header().Get(echo.HeaderContentDisposition))
	require.Equal(t, echo.MIMEApplicationJSONCharsetUTF8, w.Header().Get(echo.HeaderContentType))
	require.Equal(t, string(data), w.Body.String())
}

func TestHandler_Import(t *testing.T) {
	t.Parallel()
	const payload = `[{"title":"Dune","author":"Frank Herbert","status":"Reading"}]`

	multipartBody := func(field string) (*bytes.Buffer, string) {
		buf := &bytes.Buffer{}
		mw := multipart.NewWriter(buf)
		fw, err := mw.CreateFormFile(field, "books.json")
		require.NoError(t, err)
		_, err = fw.Write([]byte(payload))
		require.NoError(t, err)
		require.NoError(t, mw.Close())
		return buf, mw.FormDataContentType()
	}

	t.Run("raw body", func(t *testing.T) {
		t.Parallel()
		e, svc, h := newEcho(t)
		e.POST("/import", h.Import)
		svc.EXPECT().ImportBooks(context.Background(), []byte(payload)).Return(model.Collection{dune()}, nil)

		r := httptest.NewRequest(http.MethodPost, "/import", strings.NewReader(payload))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "["+duneJSON+"]", strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("multipart file", func(t *testing.T) {
		t.Parallel()
		e, svc, h := newEcho(t)
		e.POST("/import", h.Import)
		svc.EXPECT().ImportBooks(context.Background(), []byte(payload)).Return(model.Collection{dune()}, nil)

		body, contentType := multipartBody("file")
		r := httptest.NewRequest(http.MethodPost, "/import", body)
		r.Header.Set(echo.HeaderContentType, contentType)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("multipart without file field", func(t *testing.T) {
		t.Parallel()
		e, _, h := newEcho(t)
		e.POST("/import", h.Import)

		body, contentType := multipartBody("upload")
		r := httptest.NewRequest(http.MethodPost, "/import", body)
		r.Header.Set(echo.HeaderContentType, contentType)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not an array", func(t *testing.T) {
		t.Parallel()
		e, svc, h := newEcho(t)
		e.POST("/import", h.Import)
		svc.EXPECT().ImportBooks(context.Background(), []byte(`{"title":"Dune"}`)).Return(nil, errs.ErrImportShape)

		r := httptest.NewRequest(http.MethodPost, "/import", strings.NewReader(`{"title":"Dune"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, `{"message":"import: expected a json array of book objects"}`, strings.Trim(w.Body.String(), "\n"))
	})
}

func TestHandler_Helpers(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockBookService)

	var tests = []struct {
		name         string
		method       string
		target       string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:   "stats",
			method: http.MethodGet,
			target: "/stats",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().Stats(context.Background()).Return(model.Stats{
					Status:  model.StatusCounts{ToRead: 1, Reading: 2, Finished: 3},
					Ratings: [5]int{0, 0, 1, 0, 2},
					Genres:  map[string]int{"SF": 3},
					Total:   6,
				})
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"status":{"toRead":1,"reading":2,"finished":3},"ratings":[0,0,1,0,2],"genres":{"SF":3},"total":6}`,
			},
		},
		{
			name:   "suggestions",
			method: http.MethodGet,
			target: "/suggestions?field=author&prefix=fr",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().Suggest(context.Background(), model.FieldAuthor, "fr").Return([]string{"Frank Herbert"}, nil)
			},
			response: response{expectedCode: http.StatusOK, expectedBody: `["Frank Herbert"]`},
		},
		{
			name:   "suggestions default field",
			method: http.MethodGet,
			target: "/suggestions?prefix=du",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().Suggest(context.Background(), model.FieldTitle, "du").Return([]string{}, nil)
			},
			response: response{expectedCode: http.StatusOK, expectedBody: `[]`},
		},
		{
			name:   "suggestions bad field",
			method: http.MethodGet,
			target: "/suggestions?field=notes&prefix=x",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().Suggest(context.Background(), model.FieldNotes, "x").Return(nil, fmt.Errorf("%w: title and author only", errs.ErrValidation))
			},
			response: response{expectedCode: http.StatusBadRequest, expectedBody: `{"message":"validation failed: title and author only"}`},
		},
		{
			name:   "progress",
			method: http.MethodGet,
			target: "/progress?percent=50&total=300",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().Progress(50.0, 300).Return(150)
			},
			response: response{expectedCode: http.StatusOK, expectedBody: `{"pagesRead":150}`},
		},
		{
			name:         "progress bad percent",
			method:       http.MethodGet,
			target:       "/progress?percent=half",
			mockBehavior: func(r *service_mocks.MockBookService) {},
			response:     response{expectedCode: http.StatusBadRequest, expectedBody: `{"message":"percent is invalid"}`},
		},
		{
			name:         "progress nan percent",
			method:       http.MethodGet,
			target:       "/progress?percent=NaN&total=100",
			mockBehavior: func(r *service_mocks.MockBookService) {},
			response:     response{expectedCode: http.StatusBadRequest, expectedBody: `{"message":"percent is invalid"}`},
		},
		{
			name:         "progress infinite percent",
			method:       http.MethodGet,
			target:       "/progress?percent=%2BInf&total=100",
			mockBehavior: func(r *service_mocks.MockBookService) {},
			response:     response{expectedCode: http.StatusBadRequest, expectedBody: `{"message":"percent is invalid"}`},
		},
		{
			name:   "get theme",
			method: http.MethodGet,
			target: "/theme",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().Theme(context.Background()).Return(model.ThemeLight)
			},
			response: response{expectedCode: http.StatusOK, expectedBody: `{"theme":"light"}`},
		},
		{
			name:   "set theme",
			method: http.MethodPut,
			target: "/theme",
			body:   `{"theme":"dark"}`,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().SetTheme(context.Background(), model.ThemeDark).Return(nil)
			},
			response: response{expectedCode: http.StatusOK, expectedBody: `{"theme":"dark"}`},
		},
		{
			name:         "set theme invalid",
			method:       http.MethodPut,
			target:       "/theme",
			body:         `{"theme":"neon"}`,
			mockBehavior: func(r *service_mocks.MockBookService) {},
			response:     response{expectedCode: http.StatusBadRequest, expectedBody: `{"message":"Key: 'themeBody.theme' Error:Field validation for 'theme' failed on the 'oneof' tag"}`},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc, h := newEcho(t)
			e.GET("/stats", h.GetStats)
			e.GET("/suggestions", h.GetSuggestions)
			e.GET("/progress", h.GetProgress)
			e.GET("/theme", h.GetTheme)
			e.PUT("/theme", h.SetTheme)

			var r *http.Request
			if tt.body != "" {
				r = httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			} else {
				r = httptest.NewRequest(tt.method, tt.target, http.NoBody)
			}
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Router(t *testing.T) {
	t.Parallel()
	_, _, h := newEcho(t)
	router := h.NewRouter()

	r := httptest.NewRequest(http.MethodGet, "/manage/health", http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())

	routes := map[string]bool{}
	for _, rt := range router.Routes() {
		routes[rt.Method+" "+rt.Path] = true
	}
	for _, want := range []string{
		"GET /api/v1/books",
		"POST /api/v1/books",
		"GET /api/v1/books/:bookId",
		"PUT /api/v1/books/:bookId",
		"DELETE /api/v1/books/:bookId",
		"PATCH /api/v1/books/:bookId/position",
		"GET /api/v1/stats",
		"GET /api/v1/export",
		"POST /api/v1/import",
		"GET /api/v1/suggestions",
		"GET /api/v1/progress",
		"GET /api/v1/theme",
		"PUT /api/v1/theme",
		"GET /swagger/*",
	} {
		require.True(t, routes[want], want)
	}
}
