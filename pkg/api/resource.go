package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"

	"octosupply/pkg/logger"
	"octosupply/pkg/otel"
	"octosupply/pkg/resource"
)

// collection serves the five CRUD routes of one repository. Records are
// stored and echoed as the JSON documents callers submitted.
type collection[K resource.Keyed] struct {
	// entity names the record in "<entity> not found" replies.
	entity string
	repo   resource.Repository[resource.Document[K]]
	log    *logger.Logger
}

func newCollection[K resource.Keyed](entity string, repo resource.Repository[resource.Document[K]], log *logger.Logger) *collection[K] {
	return &collection[K]{entity: entity, repo: repo, log: log}
}

// routes holds the handlers of one collection.
type routes struct {
	list, get, create, update, remove http.HandlerFunc
}

// mount registers h under prefix and returns the subrouter so callers can
// add resource specific routes.
func mount(r *mux.Router, prefix string, h routes) *mux.Router {
	sub := r.PathPrefix(prefix).Subrouter()
	sub.HandleFunc("", h.list).Methods(http.MethodGet)
	sub.HandleFunc("", h.create).Methods(http.MethodPost)
	sub.HandleFunc("/{id}", h.get).Methods(http.MethodGet)
	sub.HandleFunc("/{id}", h.update).Methods(http.MethodPut)
	sub.HandleFunc("/{id}", h.remove).Methods(http.MethodDelete)
	return sub
}

func (c *collection[K]) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "list", attribute.String("entity", c.entity))
	defer span.End()

	items, err := c.repo.List(ctx)
	if err != nil {
		c.log.Error(ctx, "list records", "entity", c.entity, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []resource.Document[K]{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (c *collection[K]) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "get", attribute.String("entity", c.entity))
	defer span.End()

	id, ok := pathID(r)
	if !ok {
		c.notFound(w)
		return
	}
	v, err := c.repo.Get(ctx, id)
	if err != nil {
		c.fail(w, r, "get record", err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (c *collection[K]) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "create", attribute.String("entity", c.entity))
	defer span.End()

	var v resource.Document[K]
	if err := decodeBody(r, &v); err != nil {
		http.Error(w, err.Error(), bodyErrorStatus(err))
		return
	}
	created, err := c.repo.Create(ctx, v)
	if err != nil {
		c.fail(w, r, "create record", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (c *collection[K]) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "update", attribute.String("entity", c.entity))
	defer span.End()

	id, ok := pathID(r)
	if !ok {
		c.notFound(w)
		return
	}
	var v resource.Document[K]
	if err := decodeBody(r, &v); err != nil {
		http.Error(w, err.Error(), bodyErrorStatus(err))
		return
	}
	updated, err := c.repo.Update(ctx, id, v)
	if err != nil {
		c.fail(w, r, "update record", err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (c *collection[K]) remove(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "delete", attribute.String("entity", c.entity))
	defer span.End()

	id, ok := pathID(r)
	if !ok {
		c.notFound(w)
		return
	}
	if err := c.repo.Delete(ctx, id); err != nil {
		c.fail(w, r, "delete record", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *collection[K]) notFound(w http.ResponseWriter) {
	notFound(w, c.entity)
}

func (c *collection[K]) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, resource.ErrNotFound) {
		c.notFound(w)
		return
	}
	c.log.Error(r.Context(), op, "entity", c.entity, "error", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// notFound replies "<entity> not found" as plain text with no trailing
// newline.
func notFound(w http.ResponseWriter, entity string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusNotFound)
	io.WriteString(w, entity+" not found")
}

// pathID parses the {id} route variable. A value that is not an integer
// matches no record.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	return id, err == nil
}

func decodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func bodyErrorStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}
