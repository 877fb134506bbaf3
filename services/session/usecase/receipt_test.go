package usecase

import (
	"testing"
	"time"

	"github.com/piresc/lleva/internal/pkg/models"
	"github.com/piresc/lleva/internal/pkg/simulation"
	"github.com/stretchr/testify/assert"
)

func TestBuildReceipt(t *testing.T) {
	now := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	cfg := models.ReceiptConfig{MinAmount: 3, MaxAmount: 30, Currency: "USD"}

	t.Run("taxi includes tier", func(t *testing.T) {
		service := models.ActiveService{
			ServiceType:         "Taxi",
			ProviderDisplayName: "Taxista Asignado",
			VehicleType:         models.VehicleTypeTaxi,
			TaxiTier:            models.TaxiTierBasic,
		}

		r := buildReceipt(service, now, simulation.FixedRandom{Fraction: 0}, cfg, true)
		assert.Equal(t, "Taxi básico", r.ServiceType)
		assert.Equal(t, "$3.00 USD", r.Amount)
		assert.Equal(t, "Tarjeta terminada en 1000", r.PaymentMethodDescriptor)
		assert.Equal(t, "TXN-1741082400000-000000", r.TransactionID)
		assert.Equal(t, now, r.Timestamp)
		assert.True(t, r.RatingPersisted)
	})

	t.Run("delivery keeps merchant", func(t *testing.T) {
		service := models.ActiveService{
			ServiceType:         "Entrega de Comercio",
			ProviderDisplayName: "Repartidor Asignado",
			MerchantName:        "Tienda de Regalos Detallitos",
		}

		r := buildReceipt(service, now, simulation.FixedRandom{Fraction: 0.99}, models.ReceiptConfig{MinAmount: 3, MaxAmount: 30}, false)
		assert.Equal(t, "Entrega de Comercio", r.ServiceType)
		assert.Equal(t, "Tienda de Regalos Detallitos", r.MerchantName)
		assert.Equal(t, "$29.73 USD", r.Amount)
		assert.Equal(t, "TXN-1741082400000-ZZZZZZ", r.TransactionID)
		assert.False(t, r.RatingPersisted)
	})

	t.Run("random amounts stay in range", func(t *testing.T) {
		rnd := simulation.NewRandomSource(42)
		service := models.ActiveService{ServiceType: "Moto-Taxi", VehicleType: models.VehicleTypeMotoTaxi}
		for i := 0; i < 100; i++ {
			r := buildReceipt(service, now, rnd, cfg, false)
			assert.Equal(t, "Moto-Taxi", r.ServiceType)
			assert.Regexp(t, `^\$(\d|[12]\d)\.\d{2} USD$`, r.Amount)
			assert.Regexp(t, `^Tarjeta terminada en \d{4}$`, r.PaymentMethodDescriptor)
			assert.Regexp(t, `^TXN-\d+-[0-9A-Z]{6}$`, r.TransactionID)
		}
	})
}
