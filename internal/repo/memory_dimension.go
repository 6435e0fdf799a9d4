package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rogerio-castellano/retail-pos/internal/models"
)

func (s *InMemoryStore) CreateShop(_ context.Context, sh models.Shop) (models.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sh.ID == uuid.Nil {
		sh.ID = uuid.New()
	}
	for _, existing := range s.shops {
		if existing.ID == sh.ID {
			return models.Shop{}, ErrDuplicate
		}
	}
	sh.CreatedAt = time.Now().UTC()
	s.shops = append(s.shops, sh)
	return sh, nil
}

func (s *InMemoryStore) ListShops(_ context.Context, shopIDs []uuid.UUID) ([]models.Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Shop{}
	for _, sh := range s.shops {
		if containsShop(shopIDs, sh.ID) {
			out = append(out, sh)
		}
	}
	return out, nil
}

func (s *InMemoryStore) CreateBrand(_ context.Context, b models.Brand) (models.Brand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.brands {
		if existing.ShopID == b.ShopID && existing.Name == b.Name {
			return models.Brand{}, ErrDuplicate
		}
	}
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CreatedAt = time.Now().UTC()
	s.brands = append(s.brands, b)
	return b, nil
}

func (s *InMemoryStore) ListBrands(_ context.Context, shopIDs []uuid.UUID) ([]models.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Brand{}
	for _, b := range s.brands {
		if containsShop(shopIDs, b.ShopID) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *InMemoryStore) CreateCategory(_ context.Context, c models.Category) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.categories {
		if existing.ShopID == c.ShopID && existing.Name == c.Name {
			return models.Category{}, ErrDuplicate
		}
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now().UTC()
	s.categories = append(s.categories, c)
	return c, nil
}

func (s *InMemoryStore) ListCategories(_ context.Context, shopIDs []uuid.UUID) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Category{}
	for _, c := range s.categories {
		if containsShop(shopIDs, c.ShopID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *InMemoryStore) CreateProduct(_ context.Context, p models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now().UTC()
	s.products = append(s.products, p)
	return p, nil
}

func (s *InMemoryStore) GetProduct(_ context.Context, id uuid.UUID) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.findProduct(id); ok {
		return p, nil
	}
	return models.Product{}, ErrNotFound
}

func (s *InMemoryStore) ListProducts(_ context.Context, shopIDs []uuid.UUID) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Product{}
	for _, p := range s.products {
		if containsShop(shopIDs, p.ShopID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *InMemoryStore) CreateVariant(_ context.Context, v models.Variant) (models.Variant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findProduct(v.ProductID); !ok {
		return models.Variant{}, ErrForeignKey
	}
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	v.CreatedAt = time.Now().UTC()
	s.variants = append(s.variants, v)
	return v, nil
}

func (s *InMemoryStore) GetVariant(_ context.Context, id uuid.UUID) (models.Variant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.findVariant(id); ok {
		return v, nil
	}
	return models.Variant{}, ErrNotFound
}

func (s *InMemoryStore) ListVariants(_ context.Context, productID uuid.UUID) ([]models.Variant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Variant{}
	for _, v := range s.variants {
		if v.ProductID == productID {
			out = append(out, v)
		}
	}
	return out, nil
}

// DeleteVariant physically removes a variant row, leaving stock rows that
// reference it dangling.
func (s *InMemoryStore) DeleteVariant(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, v := range s.variants {
		if v.ID == id {
			s.variants = append(s.variants[:i], s.variants[i+1:]...)
			return
		}
	}
}

func (s *InMemoryStore) findVariant(id uuid.UUID) (models.Variant, bool) {
	for _, v := range s.variants {
		if v.ID == id {
			return v, true
		}
	}
	return models.Variant{}, false
}

func (s *InMemoryStore) findProduct(id uuid.UUID) (models.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
