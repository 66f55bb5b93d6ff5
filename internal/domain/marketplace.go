package domain

import "time"

// Synthetic marketplace payloads served by the dashboard's read-only
// endpoints. Field names follow the Mercado Livre API shapes the frontend
// already consumes.

type SellerInfo struct {
	ID         string           `json:"id"`
	Nickname   string           `json:"nickname"`
	FirstName  string           `json:"first_name"`
	LastName   string           `json:"last_name"`
	Email      string           `json:"email"`
	CountryID  string           `json:"country_id"`
	Reputation SellerReputation `json:"seller_reputation"`
}

type SellerReputation struct {
	LevelID           string           `json:"level_id"`
	PowerSellerStatus string           `json:"power_seller_status"`
	Transactions      TransactionStats `json:"transactions"`
}

type TransactionStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Canceled  int `json:"canceled"`
}

type Product struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	CategoryID        string  `json:"category_id"`
	Price             float64 `json:"price"`
	AvailableQuantity int     `json:"available_quantity"`
	SoldQuantity      int     `json:"sold_quantity"`
	Condition         string  `json:"condition"`
	ListingTypeID     string  `json:"listing_type_id"`
	Status            string  `json:"status"`
	Permalink         string  `json:"permalink"`
	Thumbnail         string  `json:"thumbnail"`
}

type Paging struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ProductPage struct {
	Results []Product `json:"results"`
	Paging  Paging    `json:"paging"`
}

type Buyer struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
}

type OrderItem struct {
	Item OrderItemDetail `json:"item"`
}

type OrderItemDetail struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	CategoryID string  `json:"category_id"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
}

type Order struct {
	ID          int64       `json:"id"`
	Status      string      `json:"status"`
	DateCreated time.Time   `json:"date_created"`
	TotalAmount float64     `json:"total_amount"`
	CurrencyID  string      `json:"currency_id"`
	Buyer       Buyer       `json:"buyer"`
	OrderItems  []OrderItem `json:"order_items"`
}

type OrderPage struct {
	Results []Order `json:"results"`
	Paging  Paging  `json:"paging"`
}

type PeriodMetrics struct {
	SalesCount     int     `json:"sales_count"`
	Revenue        float64 `json:"revenue"`
	OrdersPending  int     `json:"orders_pending,omitempty"`
	ConversionRate float64 `json:"conversion_rate,omitempty"`
}

type SalesMetrics struct {
	Today      PeriodMetrics `json:"today"`
	ThisMonth  PeriodMetrics `json:"this_month"`
	Last30Days PeriodMetrics `json:"last_30_days"`
}

type QuestionAuthor struct {
	ID                int64 `json:"id"`
	AnsweredQuestions int   `json:"answered_questions"`
}

type Question struct {
	ID          int64          `json:"id"`
	Text        string         `json:"text"`
	Status      string         `json:"status"`
	DateCreated time.Time      `json:"date_created"`
	From        QuestionAuthor `json:"from"`
	ItemID      string         `json:"item_id"`
}

type QuestionPage struct {
	Questions []Question `json:"questions"`
	Total     int        `json:"total"`
}

type Notification struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
}

type ShippingOption struct {
	Name             string  `json:"name"`
	ShippingMethodID int     `json:"shipping_method_id"`
	Cost             float64 `json:"cost"`
}

type ShippingInfo struct {
	OrderID           string         `json:"order_id"`
	ShipmentID        int64          `json:"shipment_id"`
	Status            string         `json:"status"`
	TrackingNumber    string         `json:"tracking_number"`
	EstimatedDelivery time.Time      `json:"estimated_delivery"`
	ShippingOption    ShippingOption `json:"shipping_option"`
}

type StockUpdate struct {
	ProductID         string `json:"product_id"`
	AvailableQuantity int    `json:"available_quantity"`
	Status            string `json:"status"`
	Message           string `json:"message"`
}

type VisitStats struct {
	Total          int     `json:"total"`
	Unique         int     `json:"unique"`
	ConversionRate float64 `json:"conversion_rate"`
}

type TopProduct struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
}

type CategoryPerformance struct {
	Category string  `json:"category"`
	Sales    int     `json:"sales"`
	Revenue  float64 `json:"revenue"`
}

type Analytics struct {
	Visits                VisitStats            `json:"visits"`
	TopProducts           []TopProduct          `json:"top_products"`
	CategoriesPerformance []CategoryPerformance `json:"categories_performance"`
}

// CrossDocking is the warehouse snapshot served verbatim on /api/cd-data.
type CrossDocking struct {
	Metrics  CrossDockingMetrics   `json:"metrics"`
	Products []CrossDockingProduct `json:"products"`
}

type CrossDockingMetrics struct {
	TotalProducts         int     `json:"total_produtos"`
	AwaitingShipment      int     `json:"aguardando_envio"`
	AvgTimeInWarehouse    float64 `json:"tempo_medio_permanencia"`
	OperationalEfficiency float64 `json:"eficiencia_operacional"`
}

type CrossDockingProduct struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	SKU      string  `json:"sku"`
	Quantity int     `json:"quantity"`
	Status   string  `json:"status"`
	HoursIn  float64 `json:"hours_in_cd"`
}
