// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/zyra-app/zyra-api/infrastructure/database/postgres"
	"github.com/zyra-app/zyra-api/internal/domain"
)

//go:generate mockgen -source=product.go -destination=mocks/product.go -package=mocks

const (
	productsTable = "products p"
)

type ProductRepository interface {
	GetByID(productID string) (*domain.Product, error)
	List() ([]*domain.Product, error)
	CountOptimized() (int, error)
	Create(product *domain.Product) error
	Update(product *domain.UpdateProductRequest) error
	Delete(productID string) error
	SetShopifyID(productID string, shopifyID int64) error
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

var productColumns = []string{
	"p.id",
	"p.name",
	"p.category",
	"p.price",
	"p.status",
	"p.is_optimized",
	"p.shopify_id",
	"p.created_at",
	"p.updated_at",
}

func (r *productRepository) GetByID(productID string) (*domain.Product, error) {
	sqlQuery, args, err := squirrel.
		Select(productColumns...).
		From(productsTable).
		Where(squirrel.Eq{"p.id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.DB.QueryRow(sqlQuery, args...)

	product, err := r.scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return product, nil
}

func (r *productRepository) List() ([]*domain.Product, error) {
	sqlQuery, args, err := squirrel.
		Select(productColumns...).
		From(productsTable).
		OrderBy("p.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.DB.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)

	for rows.Next() {
		product, err := r.scanProductRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) CountOptimized() (int, error) {
	sqlQuery, args, err := squirrel.
		Select("COUNT(*)").
		From(productsTable).
		Where(squirrel.Eq{"p.is_optimized": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.DB.QueryRow(sqlQuery, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar produtos otimizados: %w", err)
	}

	return count, nil
}

func (r *productRepository) Create(product *domain.Product) error {
	now := time.Now()

	sqlQuery, args, err := squirrel.
		Insert("products").
		Columns("id", "name", "category", "price", "status", "is_optimized", "created_at", "updated_at").
		Values(
			product.ID,
			product.Name,
			product.Category,
			product.Price,
			product.Status,
			product.IsOptimized,
			now,
			now,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.DB.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao inserir produto: %w", err)
	}

	product.CreatedAt = now
	product.UpdatedAt = now

	return nil
}

func (r *productRepository) Update(product *domain.UpdateProductRequest) error {
	builder := squirrel.
		Update("products").
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": product.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if product.Name != nil {
		builder = builder.Set("name", *product.Name)
	}
	if product.Category != nil {
		builder = builder.Set("category", *product.Category)
	}
	if product.Price != nil {
		builder = builder.Set("price", *product.Price)
	}
	if product.Status != nil {
		builder = builder.Set("status", *product.Status)
	}
	if product.IsOptimized != nil {
		builder = builder.Set("is_optimized", *product.IsOptimized)
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.DB.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *productRepository) Delete(productID string) error {
	sqlQuery, args, err := squirrel.
		Delete("products").
		Where(squirrel.Eq{"id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.DB.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover produto: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *productRepository) SetShopifyID(productID string, shopifyID int64) error {
	sqlQuery, args, err := squirrel.
		Update("products").
		Set("shopify_id", shopifyID).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.DB.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao vincular produto ao Shopify: %w", err)
	}

	return nil
}

func (r *productRepository) scanProduct(row *sql.Row) (*domain.Product, error) {
	product := &domain.Product{}

	if err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Price,
		&product.Status,
		&product.IsOptimized,
		&product.ShopifyID,
		&product.CreatedAt,
		&product.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) scanProductRows(rows *sql.Rows) (*domain.Product, error) {
	product := &domain.Product{}

	if err := rows.Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Price,
		&product.Status,
		&product.IsOptimized,
		&product.ShopifyID,
		&product.CreatedAt,
		&product.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return product, nil
}
