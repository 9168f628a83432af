package services

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/crumbly/api/internal/models"
)

// CatalogService serves read-only product lookups from the static catalog
// document loaded at startup.
type CatalogService struct {
	products []models.Product
	byHandle map[string]*models.Product
	byID     map[int]*models.Product
}

func NewCatalogService(products []models.Product) *CatalogService {
	cs := &CatalogService{
		products: products,
		byHandle: make(map[string]*models.Product, len(products)),
		byID:     make(map[int]*models.Product, len(products)),
	}
	for i := range cs.products {
		p := &cs.products[i]
		cs.byHandle[p.Handle] = p
		cs.byID[p.ID] = p
	}
	return cs
}

// LoadCatalog reads the catalog document from disk.
func LoadCatalog(path string) (*CatalogService, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read product catalog: %w", err)
	}

	var doc models.CatalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse product catalog: %w", err)
	}
	return NewCatalogService(doc.Products), nil
}

// List returns every catalog product in document order.
func (cs *CatalogService) List() []models.Product {
	return cs.products
}

// FindByHandle looks a product up by its URL handle. Unknown handles are a
// not-found condition, not a fault.
func (cs *CatalogService) FindByHandle(handle string) (*models.Product, error) {
	p, ok := cs.byHandle[handle]
	if !ok {
		return nil, fmt.Errorf("product %q: %w", handle, ErrNotFound)
	}
	return p, nil
}

// FindByID looks a product up by numeric id.
func (cs *CatalogService) FindByID(id int) (*models.Product, error) {
	p, ok := cs.byID[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return p, nil
}
