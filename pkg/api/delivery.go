package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"octosupply/pkg/notify"
	"octosupply/pkg/otel"
	"octosupply/pkg/resource"
	"octosupply/pkg/supply"
)

// statusRequest changes the status of one delivery.
type statusRequest struct {
	// Status is written to the delivery as sent. Leaving it out removes the field.
	Status json.RawMessage `json:"status,omitempty" swaggertype:"string"`
	// NotifyAction names a registered notifier. Empty means none.
	NotifyAction string `json:"notifyAction"`
	// NotifyCommand is only decoded so requests still sending one can be refused.
	NotifyCommand json.RawMessage `json:"notifyCommand,omitempty" swaggerignore:"true"`
}

// statusResponse is returned when a notifier ran.
type statusResponse struct {
	Delivery      resource.Document[supply.Delivery] `json:"delivery" swaggertype:"object"`
	NotifyAction  string                             `json:"notifyAction"`
	CommandOutput string                             `json:"commandOutput"`
}

// deliveryStatusHandler updates a delivery status and optionally notifies.
// @Summary Update delivery status
// @Description Sets the delivery status and optionally runs one of the configured notify actions.
// @Tags Deliveries
// @Accept json
// @Produce json
// @Param id path int true "Delivery ID"
// @Param request body statusRequest true "Status change"
// @Success 200 {object} statusResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {string} string "Delivery not found"
// @Failure 500 {object} errorResponse
// @Router /api/deliveries/{id}/status [put]
func (s *server) deliveryStatusHandler(repo resource.Repository[resource.Document[supply.Delivery]]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := otel.AddSpan(r.Context(), "deliveryStatusHandler")
		defer span.End()

		id, ok := pathID(r)
		if !ok {
			notFound(w, "Delivery")
			return
		}
		var req statusRequest
		if err := decodeBody(r, &req); err != nil {
			http.Error(w, err.Error(), bodyErrorStatus(err))
			return
		}
		if truthy(req.NotifyCommand) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf(
				"notifyCommand is not supported, use notifyAction with one of: %s",
				strings.Join(s.notifiers.Names(), ", "))})
			return
		}

		var notifier notify.Notifier
		if req.NotifyAction != "" {
			n, err := s.notifiers.Lookup(req.NotifyAction)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
				return
			}
			notifier = n
		}
		span.SetAttributes(attribute.Int("delivery_id", id), attribute.String("notify_action", req.NotifyAction))

		var status json.RawMessage
		if len(req.Status) > 0 {
			status = req.Status
		}
		var previous string
		delivery, err := repo.UpdateFunc(ctx, id, func(d resource.Document[supply.Delivery]) (resource.Document[supply.Delivery], error) {
			prev, _ := d.Field("status")
			previous = statusText(prev)
			return d.With("status", status)
		})
		if err != nil {
			if errors.Is(err, resource.ErrNotFound) {
				notFound(w, "Delivery")
				return
			}
			s.log.Error(ctx, "update delivery status", "delivery_id", id, "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if notifier == nil {
			writeJSON(w, http.StatusOK, delivery)
			return
		}

		out, err := notifier.Notify(ctx, notify.Event{
			DeliveryID:     id,
			PreviousStatus: previous,
			Status:         statusText(status),
			Delivery:       delivery.Typed(),
			At:             s.now().UTC(),
		})
		if err != nil {
			s.log.Error(ctx, "notify delivery status", "delivery_id", id, "action", req.NotifyAction, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, statusResponse{Delivery: delivery, NotifyAction: req.NotifyAction, CommandOutput: out})
	}
}

// statusText renders a raw status value for notifiers. Strings are
// unquoted, other JSON values are kept as written.
func statusText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// truthy reports whether a JSON value counts as set: anything except null,
// false, 0 and the empty string.
func truthy(raw json.RawMessage) bool {
	switch v := strings.TrimSpace(string(raw)); v {
	case "", "null", "false", `""`:
		return false
	default:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f != 0
		}
		return true
	}
}
