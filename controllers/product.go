package controllers

import (
	"net/http"
	"time"

	"elara-server/models"
	"elara-server/repository"

	"github.com/gorilla/mux"
)

// ProductController handles product-related requests
type ProductController struct {
	Products repository.ProductRepository
	Timeout  time.Duration
}

// NewProductController creates a new ProductController
func NewProductController(products repository.ProductRepository, timeout time.Duration) *ProductController {
	return &ProductController{
		Products: products,
		Timeout:  timeout,
	}
}

// CreateProduct inserts a new product
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := decodeJSON(r, &product, "productName is required"); err != nil {
		writeError(w, r, err, "Error creating product")
		return
	}

	ctx, cancel := storeContext(r, pc.Timeout)
	defer cancel()
	id, err := pc.Products.Create(ctx, &product)
	if err != nil {
		writeError(w, r, err, "Error creating product")
		return
	}

	writeJSON(w, http.StatusCreated, insertAck{Acknowledged: true, InsertedID: id})
}

// GetProducts lists products, optionally filtered by ?category=
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := storeContext(r, pc.Timeout)
	defer cancel()

	products, err := pc.Products.List(ctx, r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, r, err, "Server error. Try again later.")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// GetProductByID retrieves a single product by ID
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseObjectID(mux.Vars(r)["id"], "product ID")
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	ctx, cancel := storeContext(r, pc.Timeout)
	defer cancel()
	product, err := pc.Products.Get(ctx, id)
	if err != nil {
		writeError(w, r, err, "Error fetching product")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// GetCategories returns the distinct product categories
func (pc *ProductController) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := storeContext(r, pc.Timeout)
	defer cancel()

	categories, err := pc.Products.Categories(ctx)
	if err != nil {
		writeError(w, r, err, "Failed to fetch categories")
		return
	}
	writeJSON(w, http.StatusOK, categories)
}
