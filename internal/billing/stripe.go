package billing

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

//go:generate mockgen -source=stripe.go -destination=mock/provider_mock.go -package=mock

// CheckoutInput carries the plan the HR user is buying. Price is in
// major currency units, possibly fractional; the adapter converts to
// cents.
type CheckoutInput struct {
	PackageName   string
	Price         float64
	Email         string
	EmployeeLimit int
	SuccessURL    string
	CancelURL     string
}

// Session is the subset of the provider's checkout session the API
// exposes to clients.
type Session struct {
	ID            string            `json:"id"`
	Status        string            `json:"status"`
	PaymentStatus string            `json:"paymentStatus"`
	AmountTotal   int64             `json:"amountTotal"`
	CustomerEmail string            `json:"customerEmail"`
	TransactionID string            `json:"transactionId,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// Provider wraps checkout-session creation and retrieval against the
// external payment provider.
type Provider interface {
	CreateCheckoutSession(ctx context.Context, in CheckoutInput) (string, error)
	GetCheckoutSession(ctx context.Context, id string) (Session, error)
}

type stripeProvider struct {
	api *client.API
}

func NewStripeProvider(secretKey string) (Provider, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("stripe secret key is required")
	}
	return &stripeProvider{api: client.New(secretKey, nil)}, nil
}

func (p *stripeProvider) CreateCheckoutSession(ctx context.Context, in CheckoutInput) (string, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail:      stripe.String(in.Email),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("%s Plan", in.PackageName)),
					},
					UnitAmount: stripe.Int64(int64(math.Round(in.Price * 100))),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(in.SuccessURL),
		CancelURL:  stripe.String(in.CancelURL),
	}
	params.Context = ctx
	params.AddMetadata("plan", in.PackageName)
	params.AddMetadata("limit", strconv.Itoa(in.EmployeeLimit))
	params.AddMetadata("hrEmail", in.Email)

	session, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}

	return session.URL, nil
}

func (p *stripeProvider) GetCheckoutSession(ctx context.Context, id string) (Session, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	session, err := p.api.CheckoutSessions.Get(id, params)
	if err != nil {
		return Session{}, fmt.Errorf("retrieve checkout session: %w", err)
	}

	out := Session{
		ID:            session.ID,
		Status:        string(session.Status),
		PaymentStatus: string(session.PaymentStatus),
		AmountTotal:   session.AmountTotal,
		CustomerEmail: session.CustomerEmail,
		Metadata:      session.Metadata,
	}
	if session.PaymentIntent != nil {
		out.TransactionID = session.PaymentIntent.ID
	}

	return out, nil
}
