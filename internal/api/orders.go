package api

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"shahabsang/internal/store"
)

// OrdersHandler handles order submissions. Orders are validated, priced and
// logged, never persisted.
type OrdersHandler struct {
	DB  *sql.DB
	Log *zap.Logger
}

type orderRequest struct {
	MeteoriteID   int64   `json:"meteorite_id"`
	Quantity      float64 `json:"quantity"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone"`
}

// Create handles POST /api/orders.
func (h *OrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonValidationError(w, "لطفاً تمام فیلدهای ضروری را پر کنید")
		return
	}

	// Zero values count as missing; the phone number is optional.
	if req.MeteoriteID == 0 || req.Quantity == 0 || req.CustomerName == "" || req.CustomerEmail == "" {
		jsonValidationError(w, "لطفاً تمام فیلدهای ضروری را پر کنید")
		return
	}

	meteorite, err := store.GetMeteorite(r.Context(), h.DB, req.MeteoriteID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if meteorite == nil {
		jsonError(w, http.StatusNotFound, msgNotFound)
		return
	}

	var totalPrice float64
	if meteorite.Price != nil {
		totalPrice = *meteorite.Price * req.Quantity
	}
	orderID := "ORD-" + strconv.FormatInt(time.Now().UnixMilli(), 10)

	h.Log.Info("new order",
		zap.String("order_id", orderID),
		zap.Int64("meteorite_id", req.MeteoriteID),
		zap.String("customer_name", req.CustomerName),
		zap.Float64("total_price", totalPrice),
	)

	jsonResponse(w, http.StatusOK, map[string]any{
		"success":       true,
		"message":       "سفارش با موفقیت ثبت شد",
		"order_id":      orderID,
		"total_price":   totalPrice,
		"customer_name": req.CustomerName,
	})
}
