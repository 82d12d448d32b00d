// routes/routes.go
package routes

import (
	"elara-server/controllers"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, userController *controllers.UserController, productController *controllers.ProductController, cartController *controllers.CartController, orderController *controllers.OrderController) {
	router.HandleFunc("/", controllers.Home).Methods("GET")
	router.HandleFunc("/ping", controllers.Ping).Methods("GET")

	// Product routes
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products", productController.CreateProduct).Methods("POST")
	router.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")
	router.HandleFunc("/categories", productController.GetCategories).Methods("GET")

	// Cart routes
	cart := router.PathPrefix("/cartProducts").Subrouter()
	cart.HandleFunc("", cartController.AddToCart).Methods("POST")
	cart.HandleFunc("/bulk", cartController.BulkAddToCart).Methods("POST")
	cart.HandleFunc("/increase/{id}", cartController.IncreaseQuantity).Methods("PATCH")
	cart.HandleFunc("/decrease/{id}", cartController.DecreaseQuantity).Methods("PATCH")
	cart.HandleFunc("/clear/{email}", cartController.ClearCart).Methods("DELETE")
	cart.HandleFunc("/{email}", cartController.GetCart).Methods("GET")
	cart.HandleFunc("/{id}", cartController.RemoveFromCart).Methods("DELETE")

	// User routes
	router.HandleFunc("/users", userController.GetUsers).Methods("GET")
	router.HandleFunc("/users", userController.CreateUser).Methods("POST")

	// Order routes
	router.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
	router.HandleFunc("/orders", orderController.CreateOrder).Methods("POST")
	router.HandleFunc("/orders/{id}", orderController.GetOrderByID).Methods("GET")
	router.HandleFunc("/orders/{id}", orderController.UpdateOrder).Methods("PUT")
	router.HandleFunc("/orders/{id}", orderController.DeleteOrder).Methods("DELETE")
}
