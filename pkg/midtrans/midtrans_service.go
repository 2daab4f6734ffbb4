package midtrans

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"Technically-Fit-Backend/domain"
	"Technically-Fit-Backend/entities"
	"Technically-Fit-Backend/internal/utils"
	"Technically-Fit-Backend/pkg/user"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

var planPrices = map[string]int64{
	domain.SubscriptionPlanMonthly: 49000,
	domain.SubscriptionPlanYearly:  490000,
}

type (
	MidtransService interface {
		CreateTransaction(ctx context.Context, req domain.CreateTransactionRequest, userID string) (domain.CreateTransactionResponse, error)
		ProcessNotification(ctx context.Context, req domain.MidtransNotificationRequest) error
	}

	midtransService struct {
		midtransRepository MidtransRepository
		userRepository     user.UserRepository
	}
)

func NewMidtransService(midtransRepository MidtransRepository, userRepository user.UserRepository) MidtransService {
	return &midtransService{
		midtransRepository: midtransRepository,
		userRepository:     userRepository,
	}
}

func snapClient() snap.Client {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(utils.GetConfig("SERVER_KEY"), env)
	return client
}

func (s *midtransService) CreateTransaction(ctx context.Context, req domain.CreateTransactionRequest, userID string) (domain.CreateTransactionResponse, error) {
	price, ok := planPrices[req.Plan]
	if !ok {
		return domain.CreateTransactionResponse{}, domain.ErrUnknownPlan
	}

	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CreateTransactionResponse{}, domain.ErrUserNotFound
		}
		return domain.CreateTransactionResponse{}, err
	}

	orderID := fmt.Sprintf("techfit-%s-%d", uuid.New().String()[:8], time.Now().Unix())

	client := snapClient()
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: price,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: u.Name,
			Email: u.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    req.Plan,
				Name:  fmt.Sprintf("TechFit %s subscription", req.Plan),
				Price: price,
				Qty:   1,
			},
		},
	}

	snapResp, snapErr := client.CreateTransaction(snapReq)
	if snapErr != nil {
		return domain.CreateTransactionResponse{}, snapErr
	}

	transaction := &entities.Transaction{
		ID:          uuid.New(),
		UserID:      u.ID,
		OrderID:     orderID,
		Plan:        req.Plan,
		GrossAmount: price,
		Status:      domain.TransactionStatusPending,
		SnapToken:   snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}

	if err := s.midtransRepository.CreateTransaction(ctx, transaction); err != nil {
		return domain.CreateTransactionResponse{}, err
	}

	return domain.CreateTransactionResponse{
		OrderID:     orderID,
		SnapToken:   snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
		GrossAmount: price,
	}, nil
}

// ProcessNotification handles the payment webhook: verify the signature,
// record the status, and on settlement extend the user's premium window.
func (s *midtransService) ProcessNotification(ctx context.Context, req domain.MidtransNotificationRequest) error {
	if !validSignature(req) {
		return domain.ErrTokenInvalid
	}

	transaction, err := s.midtransRepository.GetTransactionByOrderID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	transaction.Status = req.TransactionStatus
	transaction.PaymentType = req.PaymentType
	if err := s.midtransRepository.UpdateTransaction(ctx, transaction); err != nil {
		return err
	}

	if req.TransactionStatus != domain.TransactionStatusSettled {
		return nil
	}

	u, err := s.userRepository.GetUserByID(ctx, transaction.UserID.String())
	if err != nil {
		return err
	}

	start := time.Now()
	if u.PremiumUntil != nil && u.PremiumUntil.After(start) {
		start = *u.PremiumUntil
	}

	var until time.Time
	switch transaction.Plan {
	case domain.SubscriptionPlanMonthly:
		until = start.AddDate(0, 1, 0)
	case domain.SubscriptionPlanYearly:
		until = start.AddDate(1, 0, 0)
	default:
		return domain.ErrUnknownPlan
	}

	u.IsPremium = true
	u.PremiumUntil = &until
	return s.userRepository.UpdateUser(ctx, u)
}

func validSignature(req domain.MidtransNotificationRequest) bool {
	payload := req.OrderID + req.StatusCode + req.GrossAmount + utils.GetConfig("SERVER_KEY")
	sum := sha512.Sum512([]byte(payload))
	return hex.EncodeToString(sum[:]) == req.SignatureKey
}
