package order

// SearchInput - order list filters. Status "all" or "" means no filter.
type SearchInput struct {
	Keyword  string
	Status   string
	Page     int
	PageSize int
}

// SearchOutput - one page of orders
type SearchOutput struct {
	Orders   []Order
	Total    int64
	Page     int
	PageSize int
	HasMore  bool
}

// Order - list row
type Order struct {
	OrderID      string
	OrderNo      string
	CustomerName string
	// OrderDate is formatted as YYYY-MM-DD when the server value parses.
	OrderDate  string
	Status     string
	StatusText string
	// Progress is the percentage of completed materials, 0 when none are listed.
	Progress  int
	Materials []Material
}

// Detail - order header with its delivery orders
type Detail struct {
	OrderID        string
	OrderNo        string
	CustomerName   string
	RMBAmount      float64
	OrderDate      string
	Status         string
	StatusText     string
	DeliveryOrders []DeliveryOrder
	Materials      []Material
}

// DeliveryOrder - one shipment of an order
type DeliveryOrder struct {
	DeliveryDate     string
	LogisticsCompany string
	LogisticsCode    string
	Address          string
	Remark           string
	// Attachments are cleaned of backticks and whitespace.
	Attachments []string
	Products    []DeliveryProduct
}

// DeliveryProduct - product line in a delivery order
type DeliveryProduct struct {
	ProductName string
	Spec        string
	Quantity    float64
}

// Material - production line of an order
type Material struct {
	MaterialID       string
	MaterialCode     string
	MaterialName     string
	Quantity         float64
	ProducedQuantity float64
	ShippedQuantity  float64
	Status           string
}

// MaterialProgress - production steps of one material
type MaterialProgress struct {
	MaterialID   string
	MaterialName string
	Status       string
	Percent      int
	Steps        []ProgressStep
}

// ProgressStep - one production step
type ProgressStep struct {
	Name      string
	Status    string
	UpdatedAt string
}
