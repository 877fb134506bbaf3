package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/lleva/internal/pkg/models"
	"github.com/piresc/lleva/services/session"
)

// MerchantDirectory is the merchant catalog as loaded at startup
type MerchantDirectory struct {
	merchants []models.Merchant
	byID      map[string]models.Merchant
}

// LoadMerchantDirectory reads the active merchants once
func LoadMerchantDirectory(ctx context.Context, catalog session.MerchantCatalog) (*MerchantDirectory, error) {
	merchants, err := catalog.ListActiveMerchants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load merchant catalog: %w", err)
	}
	return NewMerchantDirectory(merchants), nil
}

// NewMerchantDirectory indexes merchants by id
func NewMerchantDirectory(merchants []models.Merchant) *MerchantDirectory {
	d := &MerchantDirectory{
		merchants: append([]models.Merchant(nil), merchants...),
		byID:      make(map[string]models.Merchant, len(merchants)),
	}
	for _, m := range merchants {
		d.byID[m.ID] = m
	}
	return d
}

// Lookup returns the merchant with id
func (d *MerchantDirectory) Lookup(id string) (models.Merchant, bool) {
	m, ok := d.byID[id]
	return m, ok
}

// List returns every loaded merchant
func (d *MerchantDirectory) List() []models.Merchant {
	return append([]models.Merchant(nil), d.merchants...)
}
