package payment

import (
	"usana-backend/domain"
	"usana-backend/internal/utils"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type (
	// PaymentService creates gateway transactions for money donations.
	PaymentService interface {
		CreateDonationTransaction(orderID string, amount float64, donorName, donorEmail string) (*domain.PaymentInfo, error)
	}

	paymentService struct {
		client snap.Client
	}
)

func NewPaymentService() PaymentService {
	utils.LoadConfig()

	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(utils.GetConfig("SERVER_KEY"), env)

	return &paymentService{client: client}
}

func (s *paymentService) CreateDonationTransaction(orderID string, amount float64, donorName, donorEmail string) (*domain.PaymentInfo, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(amount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: donorName,
			Email: donorEmail,
		},
	}

	resp, snapErr := s.client.CreateTransaction(req)
	if snapErr != nil {
		return nil, snapErr
	}

	return &domain.PaymentInfo{
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}
