// internal/domain/catalog/service.go
package catalog

import "fmt"

// Service is the read-only catalog provider. The commerce engines never mutate
// or validate products beyond reading their fields.
type Service struct {
	products []Product
	byID     map[string]*Product
}

// NewService creates a catalog provider over a fixed product list.
func NewService(products []Product) *Service {
	s := &Service{
		products: products,
		byID:     make(map[string]*Product, len(products)),
	}
	for i := range s.products {
		s.byID[s.products[i].ID] = &s.products[i]
	}
	return s
}

// Get retrieves a product by identifier.
func (s *Service) Get(id string) (*Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("product %q not found", id)
	}
	return p, nil
}

// List returns all products.
func (s *Service) List() []Product {
	return s.products
}

// SeedProducts is the development catalog for the Murki Bazar storefront.
func SeedProducts() []Product {
	return []Product{
		{ID: "p1", Name: "Fresh Tomatoes", Category: "fruits", Brand: "Local Farm", MRP: 40, DiscountedPrice: 32, WeightOrQuantity: "500g", Rating: 4.3, ReviewCount: 2341, IsVeg: true, InStock: true, Tags: []string{"fresh", "vegetables"}},
		{ID: "p2", Name: "Onions", Category: "fruits", Brand: "Local Farm", MRP: 35, DiscountedPrice: 28, WeightOrQuantity: "1kg", Rating: 4.1, ReviewCount: 1892, IsVeg: true, InStock: true, Tags: []string{"fresh", "vegetables"}},
		{ID: "p3", Name: "Bananas", Category: "fruits", Brand: "Local Farm", MRP: 50, DiscountedPrice: 42, WeightOrQuantity: "6 pcs", Rating: 4.5, ReviewCount: 3210, IsVeg: true, InStock: true, Tags: []string{"fresh", "fruits"}},
		{ID: "p6", Name: "Apples (Shimla)", Category: "fruits", Brand: "Himachal Fresh", MRP: 120, DiscountedPrice: 99, WeightOrQuantity: "4 pcs", Rating: 4.6, ReviewCount: 4521, IsVeg: true, InStock: true, Tags: []string{"fresh", "fruits", "premium"}},
		{ID: "p8", Name: "Amul Taza Milk", Category: "dairy", Brand: "Amul", MRP: 28, DiscountedPrice: 28, WeightOrQuantity: "500ml", Rating: 4.7, ReviewCount: 12453, IsVeg: true, InStock: true, Tags: []string{"dairy", "daily"}},
		{ID: "p9", Name: "Amul Butter", Category: "dairy", Brand: "Amul", MRP: 55, DiscountedPrice: 52, WeightOrQuantity: "100g", Rating: 4.8, ReviewCount: 8932, IsVeg: true, InStock: true, Tags: []string{"dairy", "daily"}},
		{ID: "p12", Name: "Britannia Bread", Category: "dairy", Brand: "Britannia", MRP: 40, DiscountedPrice: 36, WeightOrQuantity: "400g", Rating: 4.3, ReviewCount: 7890, IsVeg: true, InStock: true, Tags: []string{"breakfast", "daily"}},
		{ID: "p15", Name: "Parle-G Biscuits", Category: "snacks", Brand: "Parle", MRP: 10, DiscountedPrice: 10, WeightOrQuantity: "100g", Rating: 4.8, ReviewCount: 25678, IsVeg: true, InStock: true, Tags: []string{"biscuits", "classic", "tea-time"}},
		{ID: "p17", Name: "Maggi 2-Minute Noodles", Category: "snacks", Brand: "Maggi", MRP: 14, DiscountedPrice: 13, WeightOrQuantity: "70g", Rating: 4.7, ReviewCount: 32145, IsVeg: true, InStock: true, Tags: []string{"instant", "quick", "classic"}},
		{ID: "p19", Name: "Haldiram's Bhujia", Category: "snacks", Brand: "Haldiram's", MRP: 50, DiscountedPrice: 45, WeightOrQuantity: "200g", Rating: 4.6, ReviewCount: 12345, IsVeg: true, InStock: true, Tags: []string{"namkeen", "traditional"}},
		{ID: "p22", Name: "Dove Shampoo", Category: "personal-care", Brand: "Dove", MRP: 180, DiscountedPrice: 153, WeightOrQuantity: "180ml", Rating: 4.4, ReviewCount: 6543, IsVeg: false, InStock: true, Tags: []string{"hair", "shampoo"}},
		{ID: "p24", Name: "Colgate MaxFresh", Category: "personal-care", Brand: "Colgate", MRP: 95, DiscountedPrice: 85, WeightOrQuantity: "150g", Rating: 4.5, ReviewCount: 11234, IsVeg: true, InStock: true, Tags: []string{"dental", "toothpaste"}},
		{ID: "p27", Name: "Gillette Mach3 Razor", Category: "personal-care", Brand: "Gillette", MRP: 250, DiscountedPrice: 210, WeightOrQuantity: "1 pc", Rating: 4.5, ReviewCount: 4321, IsVeg: true, InStock: false, Tags: []string{"grooming", "shaving"}},
		{ID: "p28", Name: "Dolo 650 Paracetamol", Category: "pharmacy", Brand: "Micro Labs", MRP: 30, DiscountedPrice: 28, WeightOrQuantity: "15 tabs", Rating: 4.7, ReviewCount: 23456, IsVeg: true, InStock: true, Tags: []string{"fever", "pain", "medicine"}},
		{ID: "p33", Name: "Surf Excel Matic", Category: "household", Brand: "Surf Excel", MRP: 220, DiscountedPrice: 185, WeightOrQuantity: "1kg", Rating: 4.5, ReviewCount: 15678, IsVeg: true, InStock: true, Tags: []string{"laundry", "detergent"}},
		{ID: "p34", Name: "Vim Dishwash Bar", Category: "household", Brand: "Vim", MRP: 30, DiscountedPrice: 27, WeightOrQuantity: "200g", Rating: 4.4, ReviewCount: 9876, IsVeg: true, InStock: true, Tags: []string{"kitchen", "dishwash"}},
	}
}
