package payments

// PaymentStatus статусы платёжной записи в PaymentService
type PaymentStatus string

const (
	// StatusAwaitingCapture платёж ожидает подтверждения от платёжного шлюза
	StatusAwaitingCapture PaymentStatus = "awaiting_capture"
	// StatusCashOnVisit оплата наличными при визите
	StatusCashOnVisit PaymentStatus = "cash_on_visit"
)

// CreatePaymentRequest запрос на создание платёжной записи
type CreatePaymentRequest struct {
	AppointmentID int64         `json:"appointment_id"`
	Amount        float64       `json:"amount"`
	Method        string        `json:"method"`
	Status        PaymentStatus `json:"status"`
}

// PaymentRecord модель платёжной записи из PaymentService
type PaymentRecord struct {
	ID            int64   `json:"id"`
	AppointmentID int64   `json:"appointment_id"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	Status        string  `json:"status"`
	TransactionID string  `json:"transaction_id"`
}

// ErrorResponse модель ошибки от PaymentService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
