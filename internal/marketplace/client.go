// Package marketplace is a stand-in for the real Mercado Livre seller
// API. It produces synthetic but shape-accurate payloads so the
// dashboard frontend can be developed without marketplace credentials.
package marketplace

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/meli-labs/seller-dashboard/internal/domain"
)

const maxPageSize = 200

var categories = []string{"Eletrônicos", "Casa e Jardim", "Esportes", "Moda", "Automotivo"}

var orderStatuses = []string{"paid", "confirmed", "ready_to_ship", "shipped", "delivered"}

var sampleQuestions = []string{
	"Qual o prazo de entrega para São Paulo?",
	"Tem garantia? Por quanto tempo?",
	"Aceita cartão de crédito?",
	"Tem desconto para pagamento à vista?",
	"Qual a cor disponível?",
	"Tem nota fiscal?",
	"Faz entrega no mesmo dia?",
	"Qual o peso do produto?",
}

type Client struct {
	sellerID string
}

func NewClient(sellerID string) *Client {
	if sellerID == "" {
		sellerID = "123456789"
	}
	return &Client{sellerID: sellerID}
}

func (c *Client) UserInfo() domain.SellerInfo {
	return domain.SellerInfo{
		ID:        c.sellerID,
		Nickname:  "loja_exemplo",
		FirstName: "João",
		LastName:  "Silva",
		Email:     "joao.silva@exemplo.com",
		CountryID: "BR",
		Reputation: domain.SellerReputation{
			LevelID:           "5_green",
			PowerSellerStatus: "platinum",
			Transactions: domain.TransactionStats{
				Total:     15420,
				Completed: 15380,
				Canceled:  40,
			},
		},
	}
}

func (c *Client) Products(limit, offset int) domain.ProductPage {
	limit = clampLimit(limit, 50)
	if offset < 0 {
		offset = 0
	}

	products := make([]domain.Product, 0, limit)
	for i := range limit {
		id := itemID()
		products = append(products, domain.Product{
			ID:                id,
			Title:             fmt.Sprintf("Produto Exemplo %d", i+offset+1),
			CategoryID:        pick(categories),
			Price:             money(50, 2000),
			AvailableQuantity: rand.IntN(101),
			SoldQuantity:      rand.IntN(501),
			Condition:         pick([]string{"new", "used"}),
			ListingTypeID:     "gold_special",
			Status:            pick([]string{"active", "paused", "closed"}),
			Permalink:         "https://produto.mercadolivre.com.br/" + id,
			Thumbnail:         fmt.Sprintf("https://http2.mlstatic.com/D_NQ_NP_%d-O.jpg", 600000+rand.IntN(400000)),
		})
	}

	return domain.ProductPage{
		Results: products,
		Paging:  domain.Paging{Total: 1247, Offset: offset, Limit: limit},
	}
}

func (c *Client) Orders(limit, offset int) domain.OrderPage {
	limit = clampLimit(limit, 50)
	if offset < 0 {
		offset = 0
	}

	orders := make([]domain.Order, 0, limit)
	for i := range limit {
		orders = append(orders, domain.Order{
			ID:          2000000000 + rand.Int64N(8000000000),
			Status:      pick(orderStatuses),
			DateCreated: time.Now().AddDate(0, 0, -rand.IntN(31)),
			TotalAmount: money(50, 1000),
			CurrencyID:  "BRL",
			Buyer: domain.Buyer{
				ID:       100000000 + rand.Int64N(900000000),
				Nickname: fmt.Sprintf("comprador%d", 1+rand.IntN(1000)),
			},
			OrderItems: []domain.OrderItem{{
				Item: domain.OrderItemDetail{
					ID:         itemID(),
					Title:      fmt.Sprintf("Produto Vendido %d", i+1),
					CategoryID: pick([]string{"Eletrônicos", "Casa", "Moda"}),
					UnitPrice:  money(50, 500),
					Quantity:   1 + rand.IntN(3),
				},
			}},
		})
	}

	return domain.OrderPage{
		Results: orders,
		Paging:  domain.Paging{Total: 892, Offset: offset, Limit: limit},
	}
}

func (c *Client) SalesMetrics() domain.SalesMetrics {
	return domain.SalesMetrics{
		Today: domain.PeriodMetrics{
			SalesCount:    80 + rand.IntN(41),
			Revenue:       money(40000, 60000),
			OrdersPending: 15 + rand.IntN(21),
		},
		ThisMonth: domain.PeriodMetrics{
			SalesCount:    2000 + rand.IntN(1001),
			Revenue:       money(800000, 1200000),
			OrdersPending: 100 + rand.IntN(101),
		},
		Last30Days: domain.PeriodMetrics{
			SalesCount:     2500 + rand.IntN(1001),
			Revenue:        money(1000000, 1500000),
			ConversionRate: round2(3.5 + rand.Float64()*3.3),
		},
	}
}

func (c *Client) Questions(limit int) domain.QuestionPage {
	limit = clampLimit(limit, 20)

	questions := make([]domain.Question, 0, limit)
	for range limit {
		questions = append(questions, domain.Question{
			ID:          1000000 + rand.Int64N(9000000),
			Text:        pick(sampleQuestions),
			Status:      pick([]string{"UNANSWERED", "ANSWERED"}),
			DateCreated: time.Now().Add(-time.Duration(1+rand.IntN(72)) * time.Hour),
			From: domain.QuestionAuthor{
				ID:                100000000 + rand.Int64N(900000000),
				AnsweredQuestions: rand.IntN(51),
			},
			ItemID: itemID(),
		})
	}

	return domain.QuestionPage{Questions: questions, Total: len(questions)}
}

func (c *Client) Notifications() []domain.Notification {
	now := time.Now()
	return []domain.Notification{
		{
			ID:        1,
			Type:      "low_stock",
			Title:     "Estoque baixo",
			Message:   "5 produtos com estoque abaixo de 10 unidades",
			Priority:  "medium",
			CreatedAt: now,
		},
		{
			ID:        2,
			Type:      "new_question",
			Title:     "Nova pergunta",
			Message:   "Você tem 3 perguntas não respondidas",
			Priority:  "high",
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:        3,
			Type:      "payment_received",
			Title:     "Pagamento aprovado",
			Message:   "Pedido #2087654321 - R$ 299,90",
			Priority:  "low",
			CreatedAt: now.Add(-time.Hour),
		},
	}
}

func (c *Client) Analytics() domain.Analytics {
	return domain.Analytics{
		Visits: domain.VisitStats{
			Total:          15000 + rand.IntN(10001),
			Unique:         8000 + rand.IntN(7001),
			ConversionRate: round2(2.5 + rand.Float64()*3.3),
		},
		TopProducts: []domain.TopProduct{
			{ID: itemID(), Title: "Smartphone Samsung Galaxy", Sales: 50 + rand.IntN(101), Revenue: money(15000, 45000)},
			{ID: itemID(), Title: "Notebook Lenovo IdeaPad", Sales: 30 + rand.IntN(51), Revenue: money(25000, 60000)},
		},
		CategoriesPerformance: []domain.CategoryPerformance{
			{Category: "Eletrônicos", Sales: 45, Revenue: 89500},
			{Category: "Casa e Jardim", Sales: 32, Revenue: 15600},
			{Category: "Moda", Sales: 28, Revenue: 8900},
		},
	}
}

func (c *Client) ShippingInfo(orderID string) domain.ShippingInfo {
	return domain.ShippingInfo{
		OrderID:           orderID,
		ShipmentID:        20000000000 + rand.Int64N(10000000000),
		Status:            pick([]string{"ready_to_ship", "shipped", "delivered"}),
		TrackingNumber:    fmt.Sprintf("BR%dBR", 100000000+rand.IntN(900000000)),
		EstimatedDelivery: time.Now().AddDate(0, 0, 3+rand.IntN(8)),
		ShippingOption: domain.ShippingOption{
			Name:             "Mercado Envios",
			ShippingMethodID: 100 + rand.IntN(900),
			Cost:             money(15, 45),
		},
	}
}

func (c *Client) UpdateStock(productID string, quantity int) domain.StockUpdate {
	return domain.StockUpdate{
		ProductID:         productID,
		AvailableQuantity: quantity,
		Status:            "success",
		Message:           fmt.Sprintf("Estoque atualizado para %d unidades", quantity),
	}
}

func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}

func itemID() string {
	return fmt.Sprintf("MLB%d", 1000000000+rand.Int64N(9000000000))
}

func pick(options []string) string {
	return options[rand.IntN(len(options))]
}

func money(lo, hi float64) float64 {
	return round2(lo + rand.Float64()*(hi-lo))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
