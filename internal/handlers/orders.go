package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/threadcount/retailops/internal/documents"
	"github.com/threadcount/retailops/internal/fulfillment"
	"github.com/threadcount/retailops/internal/middleware"
	"github.com/threadcount/retailops/internal/models"
	"github.com/threadcount/retailops/internal/scope"
	"github.com/threadcount/retailops/internal/session"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// listOrders returns orders narrowed by the caller's role
func (r *Router) listOrders(w http.ResponseWriter, req *http.Request) {
	sess, _ := middleware.GetSession(req.Context())

	visibility := scope.ForOrders(sess)

	var orders []models.Order
	q := r.db.Scopes(visibility.Apply("pickup_location_id")).
		Preload("Items").Preload("PickupLocation").
		Order("created_at DESC")
	if err := q.Find(&orders).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

// listDriverTasks returns the driver-actionable view. Derived from the state
// machine on every call, never cached.
func (r *Router) listDriverTasks(w http.ResponseWriter, req *http.Request) {
	sess, _ := middleware.GetSession(req.Context())
	if !sess.Caps.IsDriver && !sess.Caps.IsAdmin {
		respondError(w, http.StatusForbidden, "Access denied")
		return
	}

	var orders []models.Order
	q := r.db.Scopes(scope.Visibility{DriverTasks: true}.Apply("pickup_location_id")).
		Preload("Items").Preload("PickupLocation").
		Order("created_at ASC")
	if err := q.Find(&orders).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch tasks")
		return
	}

	// Belt and braces: the SQL subset and the machine's predicate must agree.
	tasks := orders[:0]
	for i := range orders {
		if fulfillment.IsDriverTask(&orders[i]) {
			tasks = append(tasks, orders[i])
		}
	}
	respondJSON(w, http.StatusOK, tasks)
}

// getOrder returns a single order if the caller's scope covers it
func (r *Router) getOrder(w http.ResponseWriter, req *http.Request) {
	sess, _ := middleware.GetSession(req.Context())
	vars := mux.Vars(req)

	var order models.Order
	q := r.db.Scopes(scope.ForOrders(sess).Apply("pickup_location_id")).
		Preload("Items").Preload("Items.Product").Preload("PickupLocation")
	if err := q.First(&order, "orders.id = ?", vars["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}
	respondJSON(w, http.StatusOK, orderWithActions(sess.Caps, &order))
}

// CreateOrderRequest represents a new order
type CreateOrderRequest struct {
	FulfillmentType  models.FulfillmentType `json:"fulfillmentType"`
	CustomerID       *string                `json:"customerId"`
	PickupLocationID *string                `json:"pickupLocationId"`
	DeliveryAddress  string                 `json:"deliveryAddress"`
	Items            []models.OrderItem     `json:"items"`
}

// createOrder records a new order. POS orders complete at the terminal and
// are created terminal; everything else starts at paid.
func (r *Router) createOrder(w http.ResponseWriter, req *http.Request) {
	sess, _ := middleware.GetSession(req.Context())
	if !sess.Caps.Staff() {
		respondError(w, http.StatusForbidden, "Access denied")
		return
	}

	var createReq CreateOrderRequest
	if err := json.NewDecoder(req.Body).Decode(&createReq); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if len(createReq.Items) == 0 {
		respondError(w, http.StatusBadRequest, "Order needs at least one item")
		return
	}

	status := models.StatusPaid
	var cashierID *string
	if createReq.FulfillmentType == models.FulfillmentPOS {
		status = models.StatusPOSComplete
		cashierID = &sess.Profile.ID
	}

	order := models.Order{
		Status:           status,
		FulfillmentType:  createReq.FulfillmentType,
		CustomerID:       createReq.CustomerID,
		CashierID:        cashierID,
		PickupLocationID: createReq.PickupLocationID,
		DeliveryAddress:  createReq.DeliveryAddress,
		Items:            createReq.Items,
	}
	for _, item := range order.Items {
		order.TotalAmount += item.UnitPrice * float64(item.Quantity)
	}

	if err := r.db.Create(&order).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	r.hub.NotifyOrders("insert", order.ID)
	respondJSON(w, http.StatusCreated, order)
}

// StatusUpdateRequest asks for one state machine transition
type StatusUpdateRequest struct {
	Status models.OrderStatus `json:"status"`
}

// updateOrderStatus applies a fulfillment transition. The order row is
// re-read under a row lock and the transition re-validated inside the
// transaction, so a concurrent write cannot smuggle an illegal edge through.
// On rejection nothing is written and the caller gets a descriptive error to
// roll back its optimistic state.
func (r *Router) updateOrderStatus(w http.ResponseWriter, req *http.Request) {
	sess, _ := middleware.GetSession(req.Context())
	vars := mux.Vars(req)

	var updateReq StatusUpdateRequest
	if err := json.NewDecoder(req.Body).Decode(&updateReq); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	var order models.Order
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, "id = ?", vars["id"]).Error; err != nil {
			return err
		}
		if err := fulfillment.Validate(sess.Caps, &order, updateReq.Status); err != nil {
			return err
		}
		order.Status = updateReq.Status
		return tx.Model(&order).Update("status", order.Status).Error
	})

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		respondError(w, http.StatusNotFound, "Order not found")
		return
	case errors.Is(err, fulfillment.ErrIllegalTransition):
		respondError(w, http.StatusConflict, "Illegal status transition")
		return
	case errors.Is(err, fulfillment.ErrActorNotPermitted):
		respondError(w, http.StatusForbidden, "Role not permitted for this transition")
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "Failed to update status")
		return
	}

	r.hub.NotifyOrders("update", order.ID)
	respondJSON(w, http.StatusOK, orderWithActions(sess.Caps, &order))
}

// orderPackingSlip renders the packing slip PDF for staff
func (r *Router) orderPackingSlip(w http.ResponseWriter, req *http.Request) {
	sess, _ := middleware.GetSession(req.Context())
	if !sess.Caps.Staff() {
		respondError(w, http.StatusForbidden, "Access denied")
		return
	}
	vars := mux.Vars(req)

	var order models.Order
	if err := r.db.Preload("Items").Preload("Items.Product").
		First(&order, "id = ?", vars["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}

	lines := make([]documents.SlipLine, 0, len(order.Items))
	for _, item := range order.Items {
		line := documents.SlipLine{SizeName: item.SizeName, Quantity: item.Quantity}
		if item.Product != nil {
			line.ProductName = item.Product.Name
			line.SKU = item.Product.SKU
		}
		lines = append(lines, line)
	}

	pdf, err := documents.PackingSlipPDF(&order, lines)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to render packing slip")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

// orderCollectionQR renders the collection QR for pickup orders. Staff only,
// like the packing slip: drivers hand over, they never print collection codes.
func (r *Router) orderCollectionQR(w http.ResponseWriter, req *http.Request) {
	sess, _ := middleware.GetSession(req.Context())
	if !sess.Caps.Staff() {
		respondError(w, http.StatusForbidden, "Access denied")
		return
	}
	vars := mux.Vars(req)

	var order models.Order
	if err := r.db.First(&order, "id = ?", vars["id"]).Error; err != nil {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}

	png, err := documents.CollectionQR(&order)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to render QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// orderWithActions decorates an order with the single action (if any) the
// caller may take next, so the UI never derives transitions itself.
func orderWithActions(caps session.Capabilities, order *models.Order) map[string]interface{} {
	out := map[string]interface{}{"order": order}
	if tr, ok := fulfillment.Next(order.Status, order.FulfillmentType); ok {
		if fulfillment.Validate(caps, order, tr.To) == nil {
			out["nextAction"] = map[string]string{
				"label": tr.Action,
				"to":    string(tr.To),
			}
		}
	}
	return out
}
