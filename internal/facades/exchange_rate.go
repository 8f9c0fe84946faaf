package facades

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-currency-convert/internal/logger"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
)

// ErrInvalidRate is returned when the exchanger answers with a non-positive rate.
var ErrInvalidRate = errors.New("exchanger returned a non-positive rate")

// midRatePrecision is the number of decimal places kept from the float32 wire value.
const midRatePrecision = 6

// ExchangeRateClient is the part of the exchanger gRPC client the facade needs.
type ExchangeRateClient interface {
	GetExchangeRateForCurrency(ctx context.Context, in *pb.CurrencyRequest, opts ...grpc.CallOption) (*pb.ExchangeRateResponse, error)
}

// ExchangeRatesGRPCFacade reads mid market rates from the exchanger service.
type ExchangeRatesGRPCFacade struct {
	client ExchangeRateClient
}

func NewExchangeRatesGRPCFacade(client ExchangeRateClient) *ExchangeRatesGRPCFacade {
	return &ExchangeRatesGRPCFacade{client: client}
}

// GetMidRate returns how many units of buyCurrency one unit of sellCurrency buys.
func (f *ExchangeRatesGRPCFacade) GetMidRate(ctx context.Context, sellCurrency, buyCurrency string) (decimal.Decimal, error) {
	req := &pb.CurrencyRequest{
		FromCurrency: sellCurrency,
		ToCurrency:   buyCurrency,
	}

	resp, err := f.client.GetExchangeRateForCurrency(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rate for currency via gRPC",
			"from", sellCurrency, "to", buyCurrency, "error", err)
		return decimal.Zero, err
	}

	rate := decimal.NewFromFloat32(resp.GetRate()).Round(midRatePrecision)
	if !rate.IsPositive() {
		logger.Log.Errorw("exchanger returned invalid rate",
			"from", sellCurrency, "to", buyCurrency, "rate", resp.GetRate())
		return decimal.Zero, fmt.Errorf("%w: %s->%s", ErrInvalidRate, sellCurrency, buyCurrency)
	}

	return rate, nil
}
