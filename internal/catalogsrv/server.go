// Package catalogsrv serves a product catalog over HTTP in the same shape as
// the remote product API. It backs cmd/catalogd for offline development and
// acts as the fake remote in tests.
package catalogsrv

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/five82/storefront/internal/catalog"
	"github.com/five82/storefront/internal/catalogapi"
	"github.com/five82/storefront/internal/logging"
)

// Mode selects how the catalog endpoints answer.
type Mode string

const (
	ModeOK    Mode = "ok"    // serve the dataset
	ModeEmpty Mode = "empty" // serve []
	ModeError Mode = "error" // serve 503
)

// ParseMode validates a mode name.
func ParseMode(value string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(value))); m {
	case ModeOK, ModeEmpty, ModeError:
		return m, nil
	case "":
		return ModeOK, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want ok, empty or error)", value)
	}
}

// Server holds the dataset and the current answer mode.
type Server struct {
	mu         sync.RWMutex
	products   []catalogapi.Product
	categories []string
	mode       Mode
	log        logrus.FieldLogger
}

// New builds a Server for products. When categories is empty they are
// derived from the products.
func New(products []catalog.Product, categories []string, log logrus.FieldLogger) *Server {
	if len(categories) == 0 {
		categories = catalog.Categories(products)
	}
	if log == nil {
		log = logging.Discard()
	}
	cats := make([]string, len(categories))
	copy(cats, categories)
	return &Server{
		products:   catalogapi.FromCatalogList(products),
		categories: cats,
		mode:       ModeOK,
		log:        log,
	}
}

// LoadDataset reads a JSON array of products in the remote API shape.
func LoadDataset(path string) ([]catalog.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	var wire []catalogapi.Product
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	products := make([]catalog.Product, 0, len(wire))
	for _, p := range wire {
		products = append(products, p.ToCatalog())
	}
	return products, nil
}

// SetMode switches how subsequent requests are answered.
func (s *Server) SetMode(m Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = m
}

// Mode returns the current answer mode.
func (s *Server) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Router returns the HTTP handler with all routes registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/products", func(r chi.Router) {
		r.Get("/", s.handleProducts)
		r.Get("/categories", s.handleCategories)
		r.Get("/{id}", s.handleProduct)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok", "mode": string(s.Mode())})
}

func (s *Server) handleProducts(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	mode, products := s.mode, s.products
	s.mu.RUnlock()

	switch mode {
	case ModeError:
		respondWithError(w, http.StatusServiceUnavailable, "catalog unavailable")
	case ModeEmpty:
		respondWithJSON(w, http.StatusOK, []catalogapi.Product{})
	default:
		respondWithJSON(w, http.StatusOK, products)
	}
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	mode, categories := s.mode, s.categories
	s.mu.RUnlock()

	switch mode {
	case ModeError:
		respondWithError(w, http.StatusServiceUnavailable, "catalog unavailable")
	case ModeEmpty:
		respondWithJSON(w, http.StatusOK, []string{})
	default:
		respondWithJSON(w, http.StatusOK, categories)
	}
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	if s.Mode() == ModeError {
		respondWithError(w, http.StatusServiceUnavailable, "catalog unavailable")
		return
	}
	idParam := chi.URLParam(r, "id")
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if fmt.Sprint(p.ID) == idParam {
			respondWithJSON(w, http.StatusOK, p)
			return
		}
	}
	respondWithError(w, http.StatusNotFound, "product not found")
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			s.log.WithFields(logrus.Fields{
				"request_id": middleware.GetReqID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     ww.Status(),
				"bytes":      ww.BytesWritten(),
				"duration":   time.Since(start).String(),
			}).Info("request")
		}()
		next.ServeHTTP(ww, r)
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, errorResponse{Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}
