package handler

import (
	"net/http"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-service/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// PlaceOrder оформляет заказ из корзины.
// @Summary      Оформить заказ
// @Description  Резервирует остатки по всем позициям корзины и создает заказ в статусе pending
// @Tags         checkout
// @Accept       json
// @Param        X-Actor-ID  header    string           true  "Идентификатор покупателя"
// @Param        request     body      CheckoutRequest  true  "Адреса и способ оплаты"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      409  {object}  UnavailableResponse "Товар недоступен или корзина пуста"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /checkout [post]
func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.checkout.PlaceOrder(r.Context(), actorFrom(r).ID, CheckoutJSONToEntity(req))
	if err != nil {
		h.writeError(w, r, "place order", err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// ListOrders возвращает заказы текущего покупателя.
// @Summary      Список заказов
// @Tags         orders
// @Param        X-Actor-ID  header    string  true  "Идентификатор покупателя"
// @Success      200  {array}   Order
// @Failure      401  {object}  utils.ErrorResponse "Не передан покупатель"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrders(r.Context(), actorFrom(r).ID)
	if err != nil {
		h.writeError(w, r, "list orders", err)
		return
	}
	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ
// @Tags         orders
// @Param        X-Actor-ID  header    string  true  "Идентификатор покупателя"
// @Param        order_id    path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      403  {object}  utils.ErrorResponse "Чужой заказ"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.GetOrder(r.Context(), chi.URLParam(r, "order_id"), actorFrom(r))
	if err != nil {
		h.writeError(w, r, "get order", err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// CancelOrder отменяет заказ и возвращает товар в продажу.
// @Summary      Отменить заказ
// @Tags         orders
// @Accept       json
// @Param        X-Actor-ID  header    string         true   "Идентификатор покупателя"
// @Param        order_id    path      string         true   "Идентификатор заказа"
// @Param        request     body      CancelRequest  false  "Причина отмены"
// @Success      200  {object}  Order
// @Failure      403  {object}  utils.ErrorResponse "Чужой заказ"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ уже нельзя отменить"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id}/cancel [post]
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	var req CancelRequest
	if r.ContentLength != 0 && !h.decode(w, r, &req) {
		return
	}

	order, err := h.orders.Cancel(r.Context(), chi.URLParam(r, "order_id"), actorFrom(r), req.Reason)
	if err != nil {
		h.writeError(w, r, "cancel order", err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// SetOrderStatus переводит заказ в новый статус.
// @Summary      Изменить статус заказа
// @Description  Доступно администраторам. Переход в shipped требует трек-номер
// @Tags         admin
// @Accept       json
// @Param        X-Actor-ID    header    string               true  "Идентификатор администратора"
// @Param        X-Actor-Role  header    string               true  "Роль (admin)"
// @Param        order_id      path      string               true  "Идентификатор заказа"
// @Param        request       body      StatusUpdateRequest  true  "Новый статус"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Недостаточно прав"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders/{order_id}/status [patch]
func (h *HTTPHandler) SetOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusUpdateRequest
	if !h.decode(w, r, &req) {
		return
	}

	order, err := h.orders.SetStatus(r.Context(), chi.URLParam(r, "order_id"), entities.StatusChange{
		To:       entities.Status(req.Status),
		Note:     req.Note,
		Reason:   req.Reason,
		Actor:    actorFrom(r),
		Tracking: TrackingJSONToEntity(req.Tracking),
	})
	if err != nil {
		h.writeError(w, r, "set order status", err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// GetProduct возвращает складские счетчики товара.
// @Summary      Остатки товара
// @Tags         admin
// @Param        X-Actor-ID    header    string  true  "Идентификатор администратора"
// @Param        X-Actor-Role  header    string  true  "Роль (admin)"
// @Param        product_id    path      string  true  "Идентификатор товара"
// @Success      200  {object}  Product
// @Failure      403  {object}  utils.ErrorResponse "Недостаточно прав"
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /inventory/{product_id} [get]
func (h *HTTPHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.inventory.GetProduct(r.Context(), chi.URLParam(r, "product_id"))
	if err != nil {
		h.writeError(w, r, "get product", err)
		return
	}
	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}
