package controllers

import (
	"net/http"
	"strings"
	"time"

	"elara-server/models"
	"elara-server/repository"
	"elara-server/utils"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartController handles cart-related requests
type CartController struct {
	Cart     repository.CartRepository
	Products repository.ProductRepository
	Timeout  time.Duration
}

// NewCartController creates a new CartController
func NewCartController(cart repository.CartRepository, products repository.ProductRepository, timeout time.Duration) *CartController {
	return &CartController{
		Cart:     cart,
		Products: products,
		Timeout:  timeout,
	}
}

type addToCartResponse struct {
	Message    string              `json:"message"`
	InsertedID *primitive.ObjectID `json:"insertedId,omitempty"`
}

type bulkAddResponse struct {
	Message string                 `json:"message"`
	Results []models.BulkAddResult `json:"results"`
}

type clearCartResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

type quantityResponse struct {
	Message  string `json:"message"`
	Quantity int    `json:"quantity,omitempty"`
}

// GetCart lists the cart of the user in the path, newest first
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(mux.Vars(r)["email"])
	if email == "" {
		writeError(w, r, utils.Validationf("Email required"), "")
		return
	}

	ctx, cancel := storeContext(r, cc.Timeout)
	defer cancel()
	items, err := cc.Cart.ListByEmail(ctx, email)
	if err != nil {
		writeError(w, r, err, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// AddToCart puts one unit of a product in a user's cart
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req models.AddToCartRequest
	if err := decodeJSON(r, &req, "Email and productId are required"); err != nil {
		writeError(w, r, err, "")
		return
	}
	productID, err := parseObjectID(req.ProductID, "productId")
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	ctx, cancel := storeContext(r, cc.Timeout)
	defer cancel()
	product, err := cc.Products.Get(ctx, productID)
	if err != nil {
		writeError(w, r, err, "Server error")
		return
	}

	res, err := cc.Cart.AddProduct(ctx, req.Email, product)
	if err != nil {
		writeError(w, r, err, "Server error")
		return
	}
	if res.Inserted {
		writeJSON(w, http.StatusOK, addToCartResponse{Message: "Product added to cart", InsertedID: &res.InsertedID})
		return
	}
	writeJSON(w, http.StatusOK, addToCartResponse{Message: "Product quantity increased in cart"})
}

// BulkAddToCart adds each listed product to the cart. Entries whose product
// cannot be resolved are reported and skipped without aborting the batch.
func (cc *CartController) BulkAddToCart(w http.ResponseWriter, r *http.Request) {
	var req models.BulkAddRequest
	if err := decodeJSON(r, &req, "Invalid input"); err != nil {
		writeError(w, r, err, "")
		return
	}

	ctx, cancel := storeContext(r, cc.Timeout)
	defer cancel()

	results := make([]models.BulkAddResult, 0, len(req.Products))
	for _, ref := range req.Products {
		raw := ref.Ref()
		productID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			results = append(results, models.BulkAddResult{ProductID: raw, Status: models.CartStatusInvalidID})
			continue
		}

		product, err := cc.Products.Get(ctx, productID)
		if errors.Is(err, utils.ErrNotFound) {
			results = append(results, models.BulkAddResult{ProductID: raw, Status: models.CartStatusNotFound})
			continue
		}
		if err != nil {
			writeError(w, r, err, "Server error")
			return
		}

		res, err := cc.Cart.AddProduct(ctx, req.Email, product)
		if err != nil {
			writeError(w, r, err, "Server error")
			return
		}
		status := models.CartStatusIncremented
		if res.Inserted {
			status = models.CartStatusAdded
		}
		results = append(results, models.BulkAddResult{ProductID: raw, Status: status})
	}

	writeJSON(w, http.StatusOK, bulkAddResponse{Message: "Bulk add processed", Results: results})
}

// IncreaseQuantity adds one to a cart line
func (cc *CartController) IncreaseQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectID(mux.Vars(r)["id"], "cart item ID")
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	ctx, cancel := storeContext(r, cc.Timeout)
	defer cancel()
	if err := cc.Cart.Increase(ctx, id); err != nil {
		writeError(w, r, err, "Failed to increase quantity")
		return
	}
	writeJSON(w, http.StatusOK, quantityResponse{Message: "Quantity increased"})
}

// DecreaseQuantity subtracts one from a cart line, removing it at quantity 1
func (cc *CartController) DecreaseQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectID(mux.Vars(r)["id"], "cart item ID")
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	ctx, cancel := storeContext(r, cc.Timeout)
	defer cancel()
	res, err := cc.Cart.Decrease(ctx, id)
	if err != nil {
		writeError(w, r, err, "Failed to decrease quantity")
		return
	}
	if res.Removed {
		writeJSON(w, http.StatusOK, quantityResponse{Message: "Item removed from cart"})
		return
	}
	writeJSON(w, http.StatusOK, quantityResponse{Message: "Quantity decreased", Quantity: res.Quantity})
}

// RemoveFromCart deletes one cart line
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectID(mux.Vars(r)["id"], "cart item ID")
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	ctx, cancel := storeContext(r, cc.Timeout)
	defer cancel()
	if err := cc.Cart.Delete(ctx, id); err != nil {
		writeError(w, r, err, "Server error")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Item deleted successfully"})
}

// ClearCart removes every line in a user's cart, typically after an order
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(mux.Vars(r)["email"])
	if email == "" {
		writeError(w, r, utils.Validationf("Email is required"), "")
		return
	}

	ctx, cancel := storeContext(r, cc.Timeout)
	defer cancel()
	n, err := cc.Cart.ClearByEmail(ctx, email)
	if err != nil {
		writeError(w, r, err, "Server error while clearing cart")
		return
	}
	writeJSON(w, http.StatusOK, clearCartResponse{
		Success:      true,
		Message:      "User's cart cleared successfully",
		DeletedCount: n,
	})
}
