package utils

import (
	"testing"

	"elara-server/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewEmailServiceDisabledWithoutToken(t *testing.T) {
	assert.Nil(t, NewEmailService("", "shop@example.com"))
	assert.NotNil(t, NewEmailService("token", "shop@example.com"))
}

func TestOrderConfirmationBody(t *testing.T) {
	id := primitive.NewObjectID()
	body := OrderConfirmationBody(models.Order{
		ID:         id,
		GrandTotal: 42.5,
		Status:     "pending",
		Items: []models.OrderItem{
			{ProductName: "Silk Scarf", Quantity: 2},
		},
	})

	assert.Contains(t, body, "Dear Customer")
	assert.Contains(t, body, id.Hex())
	assert.Contains(t, body, "<li>Silk Scarf x 2</li>")
	assert.Contains(t, body, "42.50")
	assert.Contains(t, body, "pending")
}

func TestOrderConfirmationBodyEscapesCustomerMarkup(t *testing.T) {
	body := OrderConfirmationBody(models.Order{
		Name:   `<a href="https://evil.example/login">Verify your account</a>`,
		Status: "<b>paid</b>",
		Items: []models.OrderItem{
			{ProductName: "<img src=x>", Quantity: 1},
		},
	})

	assert.NotContains(t, body, "<a href")
	assert.NotContains(t, body, "<img")
	assert.NotContains(t, body, "<b>paid</b>")
	assert.Contains(t, body, "Dear &lt;a href=&#34;https://evil.example/login&#34;&gt;Verify your account&lt;/a&gt;,")
	assert.Contains(t, body, "<li>&lt;img src=x&gt; x 1</li>")
	assert.Contains(t, body, "&lt;b&gt;paid&lt;/b&gt;")
}
