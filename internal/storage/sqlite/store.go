// Package sqlite implements the storage contract on an embedded
// file-backed database via gorm.
package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/layarlegenda59/kasirku/internal/domain"
	"github.com/layarlegenda59/kasirku/internal/storage"
)

const settingsRowID = 1

type productRow struct {
	ID       string `gorm:"primarykey;size:64"`
	SKU      string `gorm:"size:64"`
	Name     string `gorm:"size:200"`
	Category string `gorm:"size:100"`
	Price    int64  `gorm:"not null"`
	Stock    int64  `gorm:"not null;default:0"`
	ImageURL string
}

func (productRow) TableName() string { return "products" }

type transactionRow struct {
	ID            string    `gorm:"primarykey;size:64"`
	Date          time.Time `gorm:"index"`
	Items         string    // line items as JSON text
	Total         int64     `gorm:"not null"`
	PaymentMethod string    `gorm:"size:32"`
	CashierName   string    `gorm:"size:100"`
}

func (transactionRow) TableName() string { return "transactions" }

type settingsRow struct {
	ID            int `gorm:"primarykey"`
	Name          string
	Address       string
	Phone         string
	LogoURL       string
	ReceiptFooter string
}

func (settingsRow) TableName() string { return "settings" }

// Store is the embedded sqlite backend.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the database file and migrates the schema.
// Use ":memory:" for an ephemeral database.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := db.AutoMigrate(&productRow{}, &transactionRow{}, &settingsRow{}); err != nil {
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var rows []productRow
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]domain.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Product{
			ID:       r.ID,
			SKU:      r.SKU,
			Name:     r.Name,
			Category: r.Category,
			Price:    r.Price,
			Stock:    r.Stock,
			ImageURL: r.ImageURL,
		})
	}
	return out, nil
}

func (s *Store) UpsertProduct(ctx context.Context, p domain.Product) error {
	row := productRow{
		ID:       p.ID,
		SKU:      p.SKU,
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
		Stock:    p.Stock,
		ImageURL: p.ImageURL,
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("upsert product %s: %w", p.ID, err)
	}
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	// Unknown ids delete zero rows and still succeed.
	if err := s.db.WithContext(ctx).Delete(&productRow{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}

func (s *Store) DecrementStock(ctx context.Context, productID string, qty int64) error {
	err := s.db.WithContext(ctx).
		Model(&productRow{}).
		Where("id = ?", productID).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty)).Error
	if err != nil {
		return fmt.Errorf("decrement stock %s: %w", productID, err)
	}
	return nil
}

func (s *Store) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var rows []transactionRow
	if err := s.db.WithContext(ctx).Order("date DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	out := make([]domain.Transaction, 0, len(rows))
	for _, r := range rows {
		var items []domain.TransactionItem
		if err := json.Unmarshal([]byte(r.Items), &items); err != nil {
			return nil, fmt.Errorf("decode items for %s: %w", r.ID, err)
		}
		out = append(out, domain.Transaction{
			ID:            r.ID,
			Date:          r.Date,
			Items:         items,
			Total:         r.Total,
			PaymentMethod: r.PaymentMethod,
			CashierName:   r.CashierName,
		})
	}
	return out, nil
}

func (s *Store) InsertTransaction(ctx context.Context, t domain.Transaction) error {
	items, err := json.Marshal(t.Items)
	if err != nil {
		return fmt.Errorf("encode items for %s: %w", t.ID, err)
	}
	row := transactionRow{
		ID:            t.ID,
		Date:          t.Date,
		Items:         string(items),
		Total:         t.Total,
		PaymentMethod: t.PaymentMethod,
		CashierName:   t.CashierName,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return storage.ErrDuplicateID
		}
		return fmt.Errorf("insert transaction %s: %w", t.ID, err)
	}
	return nil
}

func (s *Store) GetSettings(ctx context.Context) (*domain.StoreSettings, error) {
	var row settingsRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", settingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &domain.StoreSettings{
		Name:          row.Name,
		Address:       row.Address,
		Phone:         row.Phone,
		LogoURL:       row.LogoURL,
		ReceiptFooter: row.ReceiptFooter,
	}, nil
}

func (s *Store) UpsertSettings(ctx context.Context, set domain.StoreSettings) error {
	row := settingsRow{
		ID:            settingsRowID,
		Name:          set.Name,
		Address:       set.Address,
		Phone:         set.Phone,
		LogoURL:       set.LogoURL,
		ReceiptFooter: set.ReceiptFooter,
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
