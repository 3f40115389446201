package handler

import (
	"net/http"

	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-service/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// GetCart возвращает корзину текущего покупателя.
// @Summary      Получить корзину
// @Description  Возвращает корзину с пересчитанными итогами, создает пустую при первом обращении
// @Tags         cart
// @Param        X-Actor-ID  header    string  true  "Идентификатор покупателя"
// @Success      200  {object}  Cart
// @Failure      401  {object}  utils.ErrorResponse "Не передан покупатель"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /cart [get]
func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.GetOrCreate(r.Context(), actorFrom(r).ID)
	if err != nil {
		h.writeError(w, r, "get cart", err)
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// ClearCart удаляет все позиции и купоны.
// @Summary      Очистить корзину
// @Tags         cart
// @Param        X-Actor-ID  header    string  true  "Идентификатор покупателя"
// @Success      200  {object}  Cart
// @Failure      401  {object}  utils.ErrorResponse "Не передан покупатель"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /cart [delete]
func (h *HTTPHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.Clear(r.Context(), actorFrom(r).ID)
	if err != nil {
		h.writeError(w, r, "clear cart", err)
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// AddItem добавляет товар в корзину.
// @Summary      Добавить товар
// @Description  Повторное добавление того же товара и варианта увеличивает количество
// @Tags         cart
// @Accept       json
// @Param        X-Actor-ID  header    string          true  "Идентификатор покупателя"
// @Param        request     body      AddItemRequest  true  "Товар и количество"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      409  {object}  UnavailableResponse "Товар недоступен"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /cart/items [post]
func (h *HTTPHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if !h.decode(w, r, &req) {
		return
	}

	cart, err := h.carts.AddItem(r.Context(), actorFrom(r).ID, req.ProductID, req.Quantity, VariantJSONToEntity(req.Variant))
	if err != nil {
		h.writeError(w, r, "add item", err)
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// UpdateQuantity задает количество позиции.
// @Summary      Изменить количество
// @Description  Количество 0 удаляет позицию
// @Tags         cart
// @Accept       json
// @Param        X-Actor-ID  header    string                 true  "Идентификатор покупателя"
// @Param        product_id  path      string                 true  "Идентификатор товара"
// @Param        request     body      UpdateQuantityRequest  true  "Новое количество"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Позиция не найдена"
// @Failure      409  {object}  UnavailableResponse "Товар недоступен"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /cart/items/{product_id} [patch]
func (h *HTTPHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuantityRequest
	if !h.decode(w, r, &req) {
		return
	}

	productID := chi.URLParam(r, "product_id")
	cart, err := h.carts.UpdateQuantity(r.Context(), actorFrom(r).ID, productID, req.Quantity, VariantJSONToEntity(req.Variant))
	if err != nil {
		h.writeError(w, r, "update quantity", err)
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// RemoveItem удаляет позицию из корзины.
// @Summary      Удалить товар
// @Description  Без параметров варианта удаляются все варианты товара
// @Tags         cart
// @Param        X-Actor-ID     header    string  true   "Идентификатор покупателя"
// @Param        product_id     path      string  true   "Идентификатор товара"
// @Param        variant_name   query     string  false  "Название варианта"
// @Param        variant_value  query     string  false  "Значение варианта"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /cart/items/{product_id} [delete]
func (h *HTTPHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	var variant *entities.Variant
	name, value := r.URL.Query().Get("variant_name"), r.URL.Query().Get("variant_value")
	if name != "" || value != "" {
		if name == "" || value == "" {
			utils.WriteFieldError(w, "variant", "both variant_name and variant_value are required")
			return
		}
		variant = &entities.Variant{Name: name, Value: value}
	}

	cart, err := h.carts.RemoveItem(r.Context(), actorFrom(r).ID, productID, variant)
	if err != nil {
		h.writeError(w, r, "remove item", err)
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// ApplyCoupon применяет купон к корзине.
// @Summary      Применить купон
// @Tags         cart
// @Accept       json
// @Param        X-Actor-ID  header    string              true  "Идентификатор покупателя"
// @Param        request     body      ApplyCouponRequest  true  "Код купона"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      409  {object}  utils.ErrorResponse "Корзина пуста"
// @Failure      422  {object}  utils.ErrorResponse "Купон недействителен"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /cart/coupons [post]
func (h *HTTPHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req ApplyCouponRequest
	if !h.decode(w, r, &req) {
		return
	}

	cart, err := h.carts.ApplyCoupon(r.Context(), actorFrom(r).ID, req.Code)
	if err != nil {
		h.writeError(w, r, "apply coupon", err)
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// RemoveCoupon снимает купон с корзины.
// @Summary      Удалить купон
// @Tags         cart
// @Param        X-Actor-ID  header    string  true  "Идентификатор покупателя"
// @Param        code        path      string  true  "Код купона"
// @Success      200  {object}  Cart
// @Failure      404  {object}  utils.ErrorResponse "Купон не применен"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /cart/coupons/{code} [delete]
func (h *HTTPHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.RemoveCoupon(r.Context(), actorFrom(r).ID, chi.URLParam(r, "code"))
	if err != nil {
		h.writeError(w, r, "remove coupon", err)
		return
	}
	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}
