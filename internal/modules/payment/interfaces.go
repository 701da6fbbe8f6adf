package payment

import "github.com/stripe/stripe-go/v82"

// intentCreator is the single gateway call the orchestrator makes. Tests
// substitute it; production wires Stripe's PaymentIntents client.
type intentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}
