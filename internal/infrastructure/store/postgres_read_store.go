package store

import (
	"database/sql"
	"log"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/example/sneakfits/internal/readmodel"
)

// PostgresReadStore implements ReadStoreInterface using PostgreSQL
type PostgresReadStore struct {
	db *sql.DB
	mu sync.RWMutex // for thread-safe operations
}

// NewPostgresReadStore creates a new PostgreSQL-based read store
func NewPostgresReadStore(db *sql.DB) *PostgresReadStore {
	return &PostgresReadStore{db: db}
}

// Set stores a read model
func (rs *PostgresReadStore) Set(collection, id string, data any) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	switch collection {
	case "shoes":
		rs.setShoeUnsafe(id, data.(*readmodel.ShoeReadModel))
	}
}

// Get retrieves a read model by id
func (rs *PostgresReadStore) Get(collection, id string) (any, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	switch collection {
	case "shoes":
		sh, ok := rs.getShoeUnsafe(id)
		if !ok {
			return nil, false
		}
		return sh, true
	}
	return nil, false
}

// GetAll retrieves all items in a collection
func (rs *PostgresReadStore) GetAll(collection string) []any {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	switch collection {
	case "shoes":
		return rs.getAllShoes()
	}
	return nil
}

// Delete removes a read model
func (rs *PostgresReadStore) Delete(collection, id string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	var tableName string
	switch collection {
	case "shoes":
		tableName = "read_shoes"
	default:
		return
	}

	_, err := rs.db.Exec("DELETE FROM "+tableName+" WHERE id = $1", id)
	if err != nil {
		log.Printf("[PostgresReadStore] Error deleting from %s: %v", collection, err)
	}
}

// Update modifies a read model using an update function
func (rs *PostgresReadStore) Update(collection, id string, updateFn func(current any) any) bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	var current any
	var found bool

	switch collection {
	case "shoes":
		current, found = rs.getShoeUnsafe(id)
	}

	if !found {
		return false
	}

	updated := updateFn(current)

	switch collection {
	case "shoes":
		rs.setShoeUnsafe(id, updated.(*readmodel.ShoeReadModel))
	}

	return true
}

// Shoe operations
func (rs *PostgresReadStore) setShoeUnsafe(id string, sh *readmodel.ShoeReadModel) {
	priceSale := decimal.NullDecimal{}
	if sh.PriceSale != nil {
		priceSale = decimal.NullDecimal{Decimal: *sh.PriceSale, Valid: true}
	}
	dateSold := sql.NullTime{}
	if sh.Commission.DateSold != nil {
		dateSold = sql.NullTime{Time: *sh.Commission.DateSold, Valid: true}
	}

	_, err := rs.db.Exec(`
		INSERT INTO read_shoes (
			id, code, sku, name, brand, size, image, price, price_sale,
			owner, location, availability, sold_to, sold_by, sold_at,
			commission_fitz, commission_bryan, commission_ashley,
			commission_sneakergram, commission_sneakfits, commission_profit,
			date_sold, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		        $16, $17, $18, $19, $20, $21, $22, $23, $24)
		ON CONFLICT (id) DO UPDATE SET
			code = EXCLUDED.code,
			sku = EXCLUDED.sku,
			name = EXCLUDED.name,
			brand = EXCLUDED.brand,
			size = EXCLUDED.size,
			image = EXCLUDED.image,
			price = EXCLUDED.price,
			price_sale = EXCLUDED.price_sale,
			owner = EXCLUDED.owner,
			location = EXCLUDED.location,
			availability = EXCLUDED.availability,
			sold_to = EXCLUDED.sold_to,
			sold_by = EXCLUDED.sold_by,
			sold_at = EXCLUDED.sold_at,
			commission_fitz = EXCLUDED.commission_fitz,
			commission_bryan = EXCLUDED.commission_bryan,
			commission_ashley = EXCLUDED.commission_ashley,
			commission_sneakergram = EXCLUDED.commission_sneakergram,
			commission_sneakfits = EXCLUDED.commission_sneakfits,
			commission_profit = EXCLUDED.commission_profit,
			date_sold = EXCLUDED.date_sold,
			updated_at = EXCLUDED.updated_at
	`, sh.ID, sh.Code, sh.SKU, sh.Name, sh.Brand, sh.Size, sh.Image, sh.Price, priceSale,
		sh.Owner, sh.Location, sh.Availability, sh.SoldTo, sh.SoldBy, sh.SoldAt,
		sh.Commission.Fitz, sh.Commission.Bryan, sh.Commission.Ashley,
		sh.Commission.Sneakergram, sh.Commission.Sneakfits, sh.Commission.Profit,
		dateSold, sh.CreatedAt, sh.UpdatedAt)
	if err != nil {
		log.Printf("[PostgresReadStore] Error setting shoe: %v", err)
	}
}

func (rs *PostgresReadStore) getShoeUnsafe(id string) (*readmodel.ShoeReadModel, bool) {
	row := rs.db.QueryRow(`
		SELECT id, code, sku, name, brand, size, image, price, price_sale,
		       owner, location, availability, sold_to, sold_by, sold_at,
		       commission_fitz, commission_bryan, commission_ashley,
		       commission_sneakergram, commission_sneakfits, commission_profit,
		       date_sold, created_at, updated_at
		FROM read_shoes WHERE id = $1
	`, id)

	sh, err := scanShoe(row)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("[PostgresReadStore] Error getting shoe: %v", err)
		}
		return nil, false
	}
	return sh, true
}

func (rs *PostgresReadStore) getAllShoes() []any {
	rows, err := rs.db.Query(`
		SELECT id, code, sku, name, brand, size, image, price, price_sale,
		       owner, location, availability, sold_to, sold_by, sold_at,
		       commission_fitz, commission_bryan, commission_ashley,
		       commission_sneakergram, commission_sneakfits, commission_profit,
		       date_sold, created_at, updated_at
		FROM read_shoes ORDER BY created_at DESC
	`)
	if err != nil {
		log.Printf("[PostgresReadStore] Error getting all shoes: %v", err)
		return nil
	}
	defer rows.Close()

	var shoes []any
	for rows.Next() {
		sh, err := scanShoe(rows)
		if err != nil {
			log.Printf("[PostgresReadStore] Error scanning shoe: %v", err)
			continue
		}
		shoes = append(shoes, sh)
	}
	return shoes
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShoe(row rowScanner) (*readmodel.ShoeReadModel, error) {
	var sh readmodel.ShoeReadModel
	var priceSale decimal.NullDecimal
	var dateSold sql.NullTime

	err := row.Scan(
		&sh.ID, &sh.Code, &sh.SKU, &sh.Name, &sh.Brand, &sh.Size, &sh.Image,
		&sh.Price, &priceSale,
		&sh.Owner, &sh.Location, &sh.Availability, &sh.SoldTo, &sh.SoldBy, &sh.SoldAt,
		&sh.Commission.Fitz, &sh.Commission.Bryan, &sh.Commission.Ashley,
		&sh.Commission.Sneakergram, &sh.Commission.Sneakfits, &sh.Commission.Profit,
		&dateSold, &sh.CreatedAt, &sh.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if priceSale.Valid {
		sh.PriceSale = &priceSale.Decimal
	}
	if dateSold.Valid {
		t := dateSold.Time
		sh.Commission.DateSold = &t
	}
	return &sh, nil
}

// Migrate creates the read model tables if they do not exist
func (rs *PostgresReadStore) Migrate() error {
	_, err := rs.db.Exec(`
		CREATE TABLE IF NOT EXISTS read_shoes (
			id TEXT PRIMARY KEY,
			code TEXT NOT NULL,
			sku TEXT NOT NULL,
			name TEXT NOT NULL,
			brand TEXT NOT NULL,
			size TEXT NOT NULL,
			image TEXT NOT NULL DEFAULT '',
			price NUMERIC(12,2) NOT NULL,
			price_sale NUMERIC(12,2),
			owner TEXT NOT NULL,
			location TEXT NOT NULL,
			availability TEXT NOT NULL,
			sold_to TEXT NOT NULL DEFAULT '',
			sold_by TEXT NOT NULL DEFAULT '',
			sold_at TEXT NOT NULL DEFAULT '',
			commission_fitz NUMERIC(12,2) NOT NULL DEFAULT 0,
			commission_bryan NUMERIC(12,2) NOT NULL DEFAULT 0,
			commission_ashley NUMERIC(12,2) NOT NULL DEFAULT 0,
			commission_sneakergram NUMERIC(12,2) NOT NULL DEFAULT 0,
			commission_sneakfits NUMERIC(12,2) NOT NULL DEFAULT 0,
			commission_profit NUMERIC(12,2) NOT NULL DEFAULT 0,
			date_sold TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_read_shoes_availability ON read_shoes (availability);
		CREATE INDEX IF NOT EXISTS idx_read_shoes_updated_at ON read_shoes (updated_at);
	`)
	return err
}
