package controllers_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"elara-server/controllers"
	"elara-server/models"
	"elara-server/repository"
	"elara-server/routes"
	"elara-server/utils"

	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type memProducts struct {
	mu       sync.Mutex
	products map[primitive.ObjectID]models.Product
	err      error
}

func newMemProducts(products ...models.Product) *memProducts {
	m := &memProducts{products: map[primitive.ObjectID]models.Product{}}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *memProducts) List(_ context.Context, category string) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []models.Product{}
	for _, p := range m.products {
		if category == "" || p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProducts) Get(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.products[id]
	if !ok {
		return nil, utils.NotFoundf("Product not found")
	}
	return &p, nil
}

func (m *memProducts) Categories(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := map[string]bool{}
	out := []string{}
	for _, p := range m.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (m *memProducts) Create(_ context.Context, p *models.Product) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = primitive.NewObjectID()
	m.products[p.ID] = *p
	return p.ID, nil
}

// memCart mirrors the upsert semantics of repository.CartRepo
type memCart struct {
	mu    sync.Mutex
	items map[primitive.ObjectID]*models.CartItem
	clock time.Time
}

func newMemCart() *memCart {
	return &memCart{
		items: map[primitive.ObjectID]*models.CartItem{},
		clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *memCart) ListByEmail(_ context.Context, email string) ([]models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.CartItem{}
	for _, it := range m.items {
		if it.Email == email {
			out = append(out, *it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AddedAt.After(out[j].AddedAt) })
	return out, nil
}

func (m *memCart) AddProduct(_ context.Context, email string, p *models.Product) (*repository.AddResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.items {
		if it.Email == email && it.ProductID == p.ID {
			it.Quantity++
			return &repository.AddResult{}, nil
		}
	}
	m.clock = m.clock.Add(time.Minute)
	item := &models.CartItem{
		ID:          primitive.NewObjectID(),
		Email:       email,
		ProductID:   p.ID,
		ProductName: p.ProductName,
		Price:       p.Price,
		Image:       p.Image,
		Quantity:    1,
		AddedAt:     m.clock,
	}
	m.items[item.ID] = item
	return &repository.AddResult{Inserted: true, InsertedID: item.ID}, nil
}

func (m *memCart) Increase(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[id]
	if !ok {
		return utils.NotFoundf("Cart item not found")
	}
	it.Quantity++
	return nil
}

func (m *memCart) Decrease(_ context.Context, id primitive.ObjectID) (*repository.DecreaseResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[id]
	if !ok {
		return nil, utils.NotFoundf("Cart item not found")
	}
	if it.Quantity > 1 {
		it.Quantity--
		return &repository.DecreaseResult{Quantity: it.Quantity}, nil
	}
	delete(m.items, id)
	return &repository.DecreaseResult{Removed: true}, nil
}

func (m *memCart) Delete(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return utils.NotFoundf("Item not found")
	}
	delete(m.items, id)
	return nil
}

func (m *memCart) ClearByEmail(_ context.Context, email string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, it := range m.items {
		if it.Email == email {
			delete(m.items, id)
			n++
		}
	}
	return n, nil
}

type memOrders struct {
	mu     sync.Mutex
	orders map[primitive.ObjectID]models.Order
}

func newMemOrders() *memOrders {
	return &memOrders{orders: map[primitive.ObjectID]models.Order{}}
}

func (m *memOrders) List(_ context.Context, status string) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Order{}
	for _, o := range m.orders {
		if status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOrders) Get(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, utils.NotFoundf("Order not found")
	}
	return &o, nil
}

func (m *memOrders) Create(_ context.Context, o *models.Order) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o.ID = primitive.NewObjectID()
	if o.Status == "" {
		o.Status = models.OrderStatusPending
	}
	m.orders[o.ID] = *o
	return o.ID, nil
}

func (m *memOrders) Upsert(_ context.Context, id primitive.ObjectID, u models.OrderUpdate) (*repository.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	note := u.Note
	if note == "" {
		note = u.Category
	}
	o, exists := m.orders[id]
	o.ID, o.Name, o.Email, o.Phone, o.Address, o.Note, o.Status, o.GrandTotal =
		id, u.Name, u.Email, u.Phone, u.Address, note, u.Status, u.GrandTotal
	m.orders[id] = o
	if exists {
		return &repository.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return &repository.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: id}, nil
}

func (m *memOrders) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[id]; !ok {
		return 0, nil
	}
	delete(m.orders, id)
	return 1, nil
}

type memUsers struct {
	mu    sync.Mutex
	users []models.User
}

func (m *memUsers) List(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.User{}, m.users...), nil
}

func (m *memUsers) Create(_ context.Context, u *models.User) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u.ID = primitive.NewObjectID()
	m.users = append(m.users, *u)
	return u.ID, nil
}

type chanNotifier chan models.Order

func (c chanNotifier) SendOrderConfirmation(o models.Order) error {
	c <- o
	return nil
}

type testServer struct {
	router   *mux.Router
	products *memProducts
	cart     *memCart
	orders   *memOrders
	users    *memUsers
	notified chanNotifier
}

func newTestServer(products ...models.Product) *testServer {
	ts := &testServer{
		router:   mux.NewRouter(),
		products: newMemProducts(products...),
		cart:     newMemCart(),
		orders:   newMemOrders(),
		users:    &memUsers{},
		notified: make(chanNotifier, 1),
	}
	routes.RegisterRoutes(ts.router,
		controllers.NewUserController(ts.users, time.Second),
		controllers.NewProductController(ts.products, time.Second),
		controllers.NewCartController(ts.cart, ts.products, time.Second),
		controllers.NewOrderController(ts.orders, ts.notified, time.Second),
	)
	return ts
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func product(name, category string, price float64) models.Product {
	return models.Product{
		ID:          primitive.NewObjectID(),
		ProductName: name,
		Category:    category,
		Price:       price,
		Image:       name + ".png",
	}
}
