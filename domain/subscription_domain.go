package domain

import "errors"

const (
	SubscriptionPlanMonthly = "premium_monthly"
	SubscriptionPlanYearly  = "premium_yearly"

	TransactionStatusPending   = "pending"
	TransactionStatusSettled   = "settlement"
	TransactionStatusExpired   = "expire"
	TransactionStatusCancelled = "cancel"
)

var (
	MessageSuccessCreateTransaction = "transaction created successfully"
	MessageSuccessWebhook           = "webhook processed successfully"

	MessageFailedCreateTransaction = "failed to create transaction"
	MessageFailedWebhook           = "failed to process webhook"

	ErrTransactionNotFound = errors.New("transaction not found")
	ErrUnknownPlan         = errors.New("unknown subscription plan")
)

type (
	CreateTransactionRequest struct {
		Plan string `json:"plan" validate:"required,oneof=premium_monthly premium_yearly"`
	}

	CreateTransactionResponse struct {
		OrderID     string `json:"order_id"`
		SnapToken   string `json:"snap_token"`
		RedirectURL string `json:"redirect_url"`
		GrossAmount int64  `json:"gross_amount"`
	}

	MidtransNotificationRequest struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
		PaymentType       string `json:"payment_type"`
		SignatureKey      string `json:"signature_key"`
		StatusCode        string `json:"status_code"`
		GrossAmount       string `json:"gross_amount"`
	}
)
