package payments

import (
	"context"
	"os"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/checkout/session"
)

const currency = "usd"

// StripeCreator creates hosted Checkout Sessions via the Stripe API.
type StripeCreator struct{}

func NewStripeCreator() *StripeCreator {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	return &StripeCreator{}
}

func (c *StripeCreator) CreateSession(ctx context.Context, cfg SessionConfig) (string, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(cfg.LineItems))
	for _, item := range cfg.LineItems {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Title),
		}
		if item.Image != "" {
			product.Images = []*string{stripe.String(item.Image)}
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(currency),
				ProductData: product,
				UnitAmount:  stripe.Int64(item.Amount),
			},
			Quantity: stripe.Int64(1),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(cfg.SuccessURL),
		CancelURL:  stripe.String(cfg.CancelURL),
	}
	for k, v := range cfg.Metadata {
		params.AddMetadata(k, v)
	}
	if cfg.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(cfg.CustomerEmail)
	}

	s, err := session.New(params)
	if err != nil {
		return "", err
	}
	return s.URL, nil
}
