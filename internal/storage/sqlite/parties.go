package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tkarolak/dinesplit/internal/models"
	"github.com/tkarolak/dinesplit/internal/storage"
)

// CreateParty persists a new party snapshot.
func (s *SQLiteStore) CreateParty(ctx context.Context, bill *models.Bill) error {
	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if bill.CreatedAt == 0 {
		bill.CreatedAt = now
	}
	bill.UpdatedAt = now

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO parties (id, name, restaurant_name, preset_name, total_cost, created_at, updated_at) VALUES (?, ?, ?, ?, 0, ?, ?)",
		bill.ID, bill.Name, bill.RestaurantName, bill.PresetName, bill.CreatedAt, bill.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert party: %w", err)
	}

	if err := insertSnapshot(ctx, tx, bill); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateParty replaces a saved party's snapshot. Participants, items and
// orders are rewritten wholesale; the party row keeps its created_at.
func (s *SQLiteStore) UpdateParty(ctx context.Context, bill *models.Bill, totalCost float64) error {
	bill.UpdatedAt = time.Now().Unix()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE parties SET name = ?, restaurant_name = ?, preset_name = ?, total_cost = ?, updated_at = ? WHERE id = ?",
		bill.Name, bill.RestaurantName, bill.PresetName, totalCost, bill.UpdatedAt, bill.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update party: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, bill.ID)
	}

	// party_items cascades into item_orders
	if _, err := tx.ExecContext(ctx, "DELETE FROM party_participants WHERE party_id = ?", bill.ID); err != nil {
		return fmt.Errorf("failed to clear participants: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM party_items WHERE party_id = ?", bill.ID); err != nil {
		return fmt.Errorf("failed to clear items: %w", err)
	}

	if err := insertSnapshot(ctx, tx, bill); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// insertSnapshot writes the bill's participants, items and per-item order
// quantities inside an open transaction.
func insertSnapshot(ctx context.Context, tx *sql.Tx, bill *models.Bill) error {
	for pos, name := range bill.Participants {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO party_participants (party_id, position, name) VALUES (?, ?, ?)",
			bill.ID, pos, name,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	for pos := range bill.Items {
		item := &bill.Items[pos]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}

		_, err := tx.ExecContext(ctx,
			"INSERT INTO party_items (id, party_id, position, name, category, unit_cost, course_item) VALUES (?, ?, ?, ?, ?, ?, ?)",
			item.ID, bill.ID, pos, item.Name, string(item.Category), item.UnitCost, item.IsCourseItem,
		)
		if err != nil {
			return fmt.Errorf("failed to insert item: %w", err)
		}

		for _, who := range bill.Participants {
			qty := item.Quantity(who)
			if qty == 0 {
				continue
			}
			_, err := tx.ExecContext(ctx,
				"INSERT INTO item_orders (item_id, participant, quantity) VALUES (?, ?, ?)",
				item.ID, who, qty,
			)
			if err != nil {
				return fmt.Errorf("failed to insert item order: %w", err)
			}
		}
	}
	return nil
}

// GetParty retrieves a party by ID, rebuilding each item's OrderedBy
// multiset from the normalized order rows. Order rows come back sorted by
// participant name; pricing only counts entries per name, so a saved and
// reloaded bill prices identically regardless of entry order.
func (s *SQLiteStore) GetParty(ctx context.Context, id string) (*models.Bill, error) {
	bill := &models.Bill{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, restaurant_name, preset_name, created_at, updated_at FROM parties WHERE id = ?",
		id,
	).Scan(&bill.ID, &bill.Name, &bill.RestaurantName, &bill.PresetName, &bill.CreatedAt, &bill.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get party: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT name FROM party_participants WHERE party_id = ? ORDER BY position",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		bill.Participants = append(bill.Participants, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	itemRows, err := s.db.QueryContext(ctx,
		"SELECT id, name, category, unit_cost, course_item FROM party_items WHERE party_id = ? ORDER BY position",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item models.MenuItem
		var category string
		if err := itemRows.Scan(&item.ID, &item.Name, &category, &item.UnitCost, &item.IsCourseItem); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		item.Category = models.Category(category)

		orderRows, err := s.db.QueryContext(ctx,
			"SELECT participant, quantity FROM item_orders WHERE item_id = ? ORDER BY participant",
			item.ID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to get item orders: %w", err)
		}

		for orderRows.Next() {
			var who string
			var qty int
			if err := orderRows.Scan(&who, &qty); err != nil {
				orderRows.Close()
				return nil, fmt.Errorf("failed to scan item order: %w", err)
			}
			for i := 0; i < qty; i++ {
				item.OrderedBy = append(item.OrderedBy, who)
			}
		}
		orderRows.Close()
		if err := orderRows.Err(); err != nil {
			return nil, fmt.Errorf("failed to iterate item orders: %w", err)
		}

		bill.Items = append(bill.Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	return bill, nil
}

// ListParties returns summaries of all saved parties, newest update first.
func (s *SQLiteStore) ListParties(ctx context.Context) ([]storage.PartySummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.restaurant_name, p.total_cost, p.updated_at,
		       (SELECT COUNT(*) FROM party_participants pp WHERE pp.party_id = p.id)
		FROM parties p
		ORDER BY p.updated_at DESC, p.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	defer rows.Close()

	var parties []storage.PartySummary
	for rows.Next() {
		var p storage.PartySummary
		if err := rows.Scan(&p.ID, &p.Name, &p.RestaurantName, &p.TotalCost, &p.UpdatedAt, &p.Participants); err != nil {
			return nil, fmt.Errorf("failed to scan party: %w", err)
		}
		parties = append(parties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate parties: %w", err)
	}
	return parties, nil
}

// DeleteParty removes a party and everything attached to it.
func (s *SQLiteStore) DeleteParty(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM parties WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete party: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	return nil
}
