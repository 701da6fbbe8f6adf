package pricing

import (
	"errors"

	"github.com/shopspring/decimal"

	"lawncare/internal/domain"
)

var (
	ErrUnknownServiceType = errors.New("unknown service type")
	ErrOutOfRange         = errors.New("property size out of range")
)

// Tariff defines a service type's pricing: a flat base fee plus a marginal
// per-acre rate applied to acreage above the included threshold.
type Tariff struct {
	Base      decimal.Decimal
	PerAcre   decimal.Decimal
	Threshold decimal.Decimal
}

type Quote struct {
	Base       decimal.Decimal
	Additional decimal.Decimal
	Total      decimal.Decimal
}

type Calculator struct {
	tariffs  map[domain.ServiceType]Tariff
	minAcres decimal.Decimal
	maxAcres decimal.Decimal
}

// NewCalculator returns a calculator with the default tariff table and the
// [0.1, 2.5] acre bounds the booking form accepts.
func NewCalculator() *Calculator {
	return &Calculator{
		tariffs: map[domain.ServiceType]Tariff{
			domain.ServiceMowing: {
				Base:      decimal.NewFromInt(30),
				PerAcre:   decimal.NewFromInt(70),
				Threshold: decimal.RequireFromString("0.1"),
			},
			domain.ServiceCleanup: {
				Base:      decimal.NewFromInt(125),
				PerAcre:   decimal.NewFromInt(75),
				Threshold: decimal.RequireFromString("0.5"),
			},
		},
		minAcres: decimal.RequireFromString("0.1"),
		maxAcres: decimal.RequireFromString("2.5"),
	}
}

func (c *Calculator) MinAcres() decimal.Decimal { return c.minAcres }
func (c *Calculator) MaxAcres() decimal.Decimal { return c.maxAcres }

// Price returns the quote for a service on a property of the given size.
// Pure and deterministic; amounts are rounded half-up to cents.
func (c *Calculator) Price(serviceType domain.ServiceType, acres decimal.Decimal) (Quote, error) {
	tariff, ok := c.tariffs[serviceType]
	if !ok {
		return Quote{}, ErrUnknownServiceType
	}
	if acres.LessThan(c.minAcres) || acres.GreaterThan(c.maxAcres) {
		return Quote{}, ErrOutOfRange
	}

	additional := decimal.Zero
	if over := acres.Sub(tariff.Threshold); over.IsPositive() {
		additional = over.Mul(tariff.PerAcre)
	}

	additional = roundHalfUp(additional)
	return Quote{
		Base:       roundHalfUp(tariff.Base),
		Additional: additional,
		Total:      roundHalfUp(tariff.Base.Add(additional)),
	}, nil
}

// decimal.Round rounds half away from zero; amounts here are never negative
// so it matches round-half-up.
func roundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
