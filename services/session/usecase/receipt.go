package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/piresc/lleva/internal/pkg/constants"
	"github.com/piresc/lleva/internal/pkg/models"
	"github.com/piresc/lleva/internal/pkg/simulation"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// buildReceipt derives the display receipt of a finished service. Amount,
// card digits and transaction suffix are simulated.
func buildReceipt(service models.ActiveService, now time.Time, rnd simulation.RandomSource, cfg models.ReceiptConfig, ratingPersisted bool) *models.Receipt {
	serviceType := service.ServiceType
	if service.VehicleType == models.VehicleTypeTaxi && service.TaxiTier != "" {
		serviceType += " " + string(service.TaxiTier)
	}

	currency := cfg.Currency
	if currency == "" {
		currency = "USD"
	}
	amount := simulation.FloatBetween(rnd, cfg.MinAmount, cfg.MaxAmount)

	return &models.Receipt{
		ServiceType:             serviceType,
		ProviderName:            service.ProviderDisplayName,
		MerchantName:            service.MerchantName,
		Timestamp:               now,
		Amount:                  fmt.Sprintf("$%.2f %s", amount, currency),
		PaymentMethodDescriptor: fmt.Sprintf(constants.PaymentCardDescriptor, simulation.IntBetween(rnd, 1000, 9999)),
		TransactionID:           fmt.Sprintf("TXN-%d-%s", now.UnixMilli(), randomSuffix(rnd, 6)),
		RatingPersisted:         ratingPersisted,
	}
}

func randomSuffix(rnd simulation.RandomSource, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(base36[rnd.Intn(len(base36))])
	}
	return strings.ToUpper(b.String())
}
