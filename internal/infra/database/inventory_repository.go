package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DioGolang/StockFlow/internal/domain/entity"
)

type InventoryRepositoryImpl struct {
	session DBTX
}

func NewInventoryRepository(session DBTX) *InventoryRepositoryImpl {
	return &InventoryRepositoryImpl{session: session}
}

func (r *InventoryRepositoryImpl) Create(ctx context.Context, inv *entity.Inventory) (entity.ProductID, error) {
	var id int64
	err := r.session.QueryRowContext(ctx, `
		INSERT INTO inventory (product_name, stock, unit_price)
		VALUES ($1, $2, $3)
		RETURNING product_id`,
		inv.Name(), inv.Stock(), inv.UnitPrice(),
	).Scan(&id)
	if err != nil {
		return entity.ProductID{}, fmt.Errorf("insert inventory: %w", err)
	}
	return entity.RestoreProductID(id), nil
}

func (r *InventoryRepositoryImpl) GetAll(ctx context.Context) ([]*entity.Inventory, error) {
	rows, err := r.session.QueryContext(ctx, `
		SELECT product_id, product_name, stock, unit_price
		FROM inventory
		ORDER BY product_id`)
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}
	defer rows.Close()

	var out []*entity.Inventory
	for rows.Next() {
		var rec inventoryRecord
		if err := rows.Scan(&rec.ProductID, &rec.ProductName, &rec.Stock, &rec.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		out = append(out, rec.toEntity())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inventory: %w", err)
	}
	return out, nil
}

func (r *InventoryRepositoryImpl) GetByID(ctx context.Context, id entity.ProductID) (*entity.Inventory, error) {
	var rec inventoryRecord
	err := r.session.QueryRowContext(ctx, `
		SELECT product_id, product_name, stock, unit_price
		FROM inventory
		WHERE product_id = $1`, id.Int64(),
	).Scan(&rec.ProductID, &rec.ProductName, &rec.Stock, &rec.UnitPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query inventory %d: %w", id.Int64(), err)
	}
	return rec.toEntity(), nil
}

func (r *InventoryRepositoryImpl) Update(ctx context.Context, inv *entity.Inventory) error {
	_, err := r.session.ExecContext(ctx, `
		UPDATE inventory
		SET product_name = $1, stock = $2, unit_price = $3
		WHERE product_id = $4`,
		inv.Name(), inv.Stock(), inv.UnitPrice(), inv.ID().Int64(),
	)
	if err != nil {
		return fmt.Errorf("update inventory %d: %w", inv.ID().Int64(), err)
	}
	return nil
}

func (r *InventoryRepositoryImpl) Delete(ctx context.Context, id entity.ProductID) error {
	_, err := r.session.ExecContext(ctx, `
		DELETE FROM inventory
		WHERE product_id = $1`, id.Int64(),
	)
	if err != nil {
		return fmt.Errorf("delete inventory %d: %w", id.Int64(), err)
	}
	return nil
}
