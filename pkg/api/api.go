// Package api binds the supply collections to HTTP routes.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	_ "octosupply/docs"
	"octosupply/pkg/logger"
	"octosupply/pkg/metrics"
	"octosupply/pkg/notify"
	"octosupply/pkg/resource"
	"octosupply/pkg/session"
	"octosupply/pkg/supply"
)

// Stores holds one repository per collection. Records are kept as the JSON
// documents callers submitted.
type Stores struct {
	Suppliers             resource.Repository[resource.Document[supply.Supplier]]
	Products              resource.Repository[resource.Document[supply.Product]]
	Headquarters          resource.Repository[resource.Document[supply.Headquarters]]
	Branches              resource.Repository[resource.Document[supply.Branch]]
	Orders                resource.Repository[resource.Document[supply.Order]]
	OrderDetails          resource.Repository[resource.Document[supply.OrderDetail]]
	Deliveries            resource.Repository[resource.Document[supply.Delivery]]
	OrderDetailDeliveries resource.Repository[resource.Document[supply.OrderDetailDelivery]]
}

// Config wires the router to its collaborators. Only Log and Stores are
// required.
type Config struct {
	Log    *logger.Logger
	Tracer trace.Tracer
	Stores Stores

	// Notifiers holds the actions the delivery status route may run.
	Notifiers *notify.Registry
	// Sessions guards write routes when set.
	Sessions session.Store
	Metrics  *metrics.ServerMetrics

	CORSOrigins    []string
	MaxBodySize    int64
	RateLimitRPS   float64
	RateLimitBurst int

	Now func() time.Time
}

type server struct {
	log       *logger.Logger
	notifiers *notify.Registry
	sessions  session.Store
	now       func() time.Time
}

// NewRouter builds the HTTP handler serving every collection.
func NewRouter(cfg Config) http.Handler {
	if cfg.Log == nil {
		cfg.Log = logger.Nop()
	}
	if cfg.Tracer == nil {
		cfg.Tracer = noop.NewTracerProvider().Tracer("octosupply")
	}
	if cfg.Notifiers == nil {
		cfg.Notifiers = notify.NewRegistry()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	// These wrap the whole router so unmatched requests are logged and
	// counted, and preflight requests never reach route matching.
	var h http.Handler = newMux(cfg)
	h = observeMiddleware(cfg.Log, cfg.Metrics)(h)
	h = traceMiddleware(cfg.Tracer)(h)
	h = requestIDMiddleware(h)
	return corsMiddleware(cfg.CORSOrigins)(h)
}

// newMux registers every route of cfg on a fresh router.
func newMux(cfg Config) *mux.Router {
	s := &server{log: cfg.Log, notifiers: cfg.Notifiers, sessions: cfg.Sessions, now: cfg.Now}

	r := mux.NewRouter()
	r.Use(captureRouteMiddleware)
	if cfg.RateLimitRPS > 0 {
		r.Use(rateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}
	if cfg.MaxBodySize > 0 {
		r.Use(bodyLimitMiddleware(cfg.MaxBodySize))
	}

	r.HandleFunc("/", helloHandler).Methods(http.MethodGet)
	r.HandleFunc("/healthz", healthHandler).Methods(http.MethodGet)
	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics.Handler()).Methods(http.MethodGet)
	}
	r.HandleFunc("/api-docs.json", docsJSONHandler).Methods(http.MethodGet)
	r.PathPrefix("/api-docs/").Handler(httpSwagger.Handler(httpSwagger.URL("/api-docs.json")))

	if s.sessions != nil {
		r.HandleFunc("/api/login", s.loginHandler).Methods(http.MethodPost)
	}
	api := r.PathPrefix("/api").Subrouter()
	if s.sessions != nil {
		api.Use(s.authMiddleware)
	}

	st, log := cfg.Stores, cfg.Log
	deliveries := mount(api, "/deliveries", deliveryRoutes(newCollection("Delivery", st.Deliveries, log)))
	deliveries.HandleFunc("/{id}/status", s.deliveryStatusHandler(st.Deliveries)).Methods(http.MethodPut)
	mount(api, "/order-detail-deliveries", orderDetailDeliveryRoutes(newCollection("Order detail delivery", st.OrderDetailDeliveries, log)))
	mount(api, "/products", productRoutes(newCollection("Product", st.Products, log)))
	mount(api, "/order-details", orderDetailRoutes(newCollection("Order detail", st.OrderDetails, log)))
	mount(api, "/orders", orderRoutes(newCollection("Order", st.Orders, log)))
	mount(api, "/branches", branchRoutes(newCollection("Branch", st.Branches, log)))
	mount(api, "/headquarters", headquartersRoutes(newCollection("Headquarters", st.Headquarters, log)))
	mount(api, "/suppliers", supplierRoutes(newCollection("Supplier", st.Suppliers, log)))
	return r
}

func helloHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Hello, world!"))
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func docsJSONHandler(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}

// errorResponse is the JSON error body of the delivery status route.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
