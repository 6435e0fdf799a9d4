package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rogerio-castellano/retail-pos/internal/models"
)

type PostgresDimensionRepository struct {
	db *sqlx.DB
}

func NewPostgresDimensionRepository(db *sqlx.DB) *PostgresDimensionRepository {
	return &PostgresDimensionRepository{db: db}
}

func (r *PostgresDimensionRepository) CreateShop(ctx context.Context, sh models.Shop) (models.Shop, error) {
	if sh.ID == uuid.Nil {
		sh.ID = uuid.New()
	}
	sh.CreatedAt = time.Now().UTC()
	err := r.insert(ctx, `INSERT INTO shops (id, name, created_at) VALUES (:id, :name, :created_at)`, sh)
	return sh, err
}

func (r *PostgresDimensionRepository) ListShops(ctx context.Context, shopIDs []uuid.UUID) ([]models.Shop, error) {
	out := []models.Shop{}
	err := r.selectByShops(ctx, &out, `SELECT id, name, created_at FROM shops WHERE id IN (?) ORDER BY name`, shopIDs)
	return out, err
}

func (r *PostgresDimensionRepository) CreateBrand(ctx context.Context, b models.Brand) (models.Brand, error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CreatedAt = time.Now().UTC()
	err := r.insert(ctx, `INSERT INTO brands (id, shop_id, name, created_at) VALUES (:id, :shop_id, :name, :created_at)`, b)
	return b, err
}

func (r *PostgresDimensionRepository) ListBrands(ctx context.Context, shopIDs []uuid.UUID) ([]models.Brand, error) {
	out := []models.Brand{}
	err := r.selectByShops(ctx, &out, `SELECT id, shop_id, name, created_at FROM brands WHERE shop_id IN (?) ORDER BY name`, shopIDs)
	return out, err
}

func (r *PostgresDimensionRepository) CreateCategory(ctx context.Context, c models.Category) (models.Category, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now().UTC()
	err := r.insert(ctx, `INSERT INTO categories (id, shop_id, name, created_at) VALUES (:id, :shop_id, :name, :created_at)`, c)
	return c, err
}

func (r *PostgresDimensionRepository) ListCategories(ctx context.Context, shopIDs []uuid.UUID) ([]models.Category, error) {
	out := []models.Category{}
	err := r.selectByShops(ctx, &out, `SELECT id, shop_id, name, created_at FROM categories WHERE shop_id IN (?) ORDER BY name`, shopIDs)
	return out, err
}

func (r *PostgresDimensionRepository) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now().UTC()
	err := r.insert(ctx, `
		INSERT INTO products (id, shop_id, brand_id, category_id, name, created_at)
		VALUES (:id, :shop_id, :brand_id, :category_id, :name, :created_at)`, p)
	return p, err
}

func (r *PostgresDimensionRepository) GetProduct(ctx context.Context, id uuid.UUID) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var p models.Product
	err := r.db.GetContext(ctx, &p, `SELECT id, shop_id, brand_id, category_id, name, created_at FROM products WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrNotFound
	}
	return p, err
}

func (r *PostgresDimensionRepository) ListProducts(ctx context.Context, shopIDs []uuid.UUID) ([]models.Product, error) {
	out := []models.Product{}
	err := r.selectByShops(ctx, &out,
		`SELECT id, shop_id, brand_id, category_id, name, created_at FROM products WHERE shop_id IN (?) ORDER BY name`, shopIDs)
	return out, err
}

func (r *PostgresDimensionRepository) CreateVariant(ctx context.Context, v models.Variant) (models.Variant, error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	v.CreatedAt = time.Now().UTC()
	err := r.insert(ctx, `
		INSERT INTO variants (id, product_id, name, color, storage, sku, created_at)
		VALUES (:id, :product_id, :name, :color, :storage, :sku, :created_at)`, v)
	return v, err
}

func (r *PostgresDimensionRepository) GetVariant(ctx context.Context, id uuid.UUID) (models.Variant, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var v models.Variant
	err := r.db.GetContext(ctx, &v, `SELECT id, product_id, name, color, storage, sku, created_at FROM variants WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Variant{}, ErrNotFound
	}
	return v, err
}

func (r *PostgresDimensionRepository) ListVariants(ctx context.Context, productID uuid.UUID) ([]models.Variant, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	out := []models.Variant{}
	err := r.db.SelectContext(ctx, &out,
		`SELECT id, product_id, name, color, storage, sku, created_at FROM variants WHERE product_id = $1 ORDER BY name`, productID)
	return out, err
}

func (r *PostgresDimensionRepository) insert(ctx context.Context, query string, arg any) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.db.NamedExecContext(ctx, query, arg)
	return translatePgError(err)
}

func (r *PostgresDimensionRepository) selectByShops(ctx context.Context, dest any, query string, shopIDs []uuid.UUID) error {
	if len(shopIDs) == 0 {
		return nil
	}
	ids := make([]string, len(shopIDs))
	for i, id := range shopIDs {
		ids[i] = id.String()
	}
	query, args, err := sqlx.In(query, ids)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.db.SelectContext(ctx, dest, r.db.Rebind(query), args...)
}
