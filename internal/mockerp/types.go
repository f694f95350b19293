package mockerp

import "time"

// User - a mini-program account known to the fake ERP
type User struct {
	ID       string
	OpenID   string
	UnionID  string
	NickName string
}

// Company - ERP customer reachable through an invite code
type Company struct {
	Code       string
	Name       string
	CustomerID string
}

// Binding - user to company link
type Binding struct {
	Company
	InviteCode string
	BoundAt    time.Time
}

// Order - sales order header with lines and shipments
type Order struct {
	ID             string
	No             string
	CustomerID     string
	CustomerName   string
	Date           time.Time
	Status         string
	RMBAmount      float64
	Materials      []Material
	DeliveryOrders []DeliveryOrder
}

// Material - order line
type Material struct {
	ID               string
	Code             string
	Name             string
	Quantity         float64
	ProducedQuantity float64
	ShippedQuantity  float64
	Status           string
	Steps            []Step
}

// Step - production step of a material
type Step struct {
	Name      string
	Status    string
	UpdatedAt time.Time
}

// DeliveryOrder - shipment of an order
type DeliveryOrder struct {
	Date             time.Time
	LogisticsCompany string
	LogisticsCode    string
	Address          string
	Remark           string
	Attachments      []string
	Products         []Product
}

// Product - shipped product line
type Product struct {
	Name     string
	Spec     string
	Quantity float64
}

// Message - feed entry addressed to one user
type Message struct {
	ID          string
	UserID      string
	Type        string
	Title       string
	Description string
	Data        map[string]string
	IsRead      bool
	CreatedAt   time.Time
	OrderNo     string
}

// Upload - stored file metadata
type Upload struct {
	ID   string
	Name string
	Size int64
}

// ErrorReport - client-side error sent to /api/logs/error
type ErrorReport struct {
	Error     string
	OpenID    string
	Timestamp time.Time
}

// CallLog - one served API call
type CallLog struct {
	Endpoint string
	Status   int
	Duration time.Duration
	At       time.Time
}

// EndpointStats - aggregated call figures
type EndpointStats struct {
	Label      string
	TotalCalls int64
	ErrorCalls int64
	AvgMs      float64
	MaxMs      float64
}

// ErrorRate is the share of failed calls in percent.
func (s EndpointStats) ErrorRate() float64 {
	if s.TotalCalls == 0 {
		return 0
	}
	return float64(s.ErrorCalls) / float64(s.TotalCalls) * 100
}

// StepCompleted is the status of a finished production step.
const StepCompleted = "completed"
