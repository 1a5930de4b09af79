// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/your-org/stockmaster-backend/internal/domain/inventory"
	"github.com/your-org/stockmaster-backend/internal/domain/operations"
	"github.com/your-org/stockmaster-backend/internal/domain/product"
	"github.com/your-org/stockmaster-backend/internal/domain/user"
	"github.com/your-org/stockmaster-backend/internal/domain/warehouse"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// Models returns every persistent model in dependency order. Shared with
// the test database setup so both schemas stay in sync.
func Models() []interface{} {
	return []interface{}{
		// User domain - base tables
		&user.User{},

		// Catalog
		&product.Product{},

		// Topology
		&warehouse.Warehouse{},
		&warehouse.SubLocation{},

		// Ledger
		&inventory.Stock{},
		&inventory.MoveHistory{},

		// Operation documents
		&operations.Receipt{},
		&operations.ReceiptItem{},
		&operations.Delivery{},
		&operations.DeliveryItem{},
		&operations.InternalTransfer{},
		&operations.TransferItem{},
		&operations.StockAdjustment{},
		&operations.OperationSequence{},
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	for _, model := range Models() {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		// User indexes
		"CREATE INDEX IF NOT EXISTS idx_users_email_active ON users(email, is_active)",

		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",

		// Topology indexes
		"CREATE INDEX IF NOT EXISTS idx_sub_locations_warehouse ON sub_locations(warehouse_id)",

		// Stock and movement indexes
		"CREATE INDEX IF NOT EXISTS idx_stocks_product ON stocks(product_id)",
		"CREATE INDEX IF NOT EXISTS idx_stocks_location ON stocks(sub_location_id)",
		"CREATE INDEX IF NOT EXISTS idx_move_histories_product_date ON move_histories(product_id, date DESC)",
		"CREATE INDEX IF NOT EXISTS idx_move_histories_reference ON move_histories(operation_reference)",
		"CREATE INDEX IF NOT EXISTS idx_move_histories_type ON move_histories(move_type)",

		// Operation document indexes
		"CREATE INDEX IF NOT EXISTS idx_receipts_warehouse_validated ON receipts(warehouse_id, validated)",
		"CREATE INDEX IF NOT EXISTS idx_deliveries_warehouse_validated ON deliveries(warehouse_id, validated)",
		"CREATE INDEX IF NOT EXISTS idx_internal_transfers_from_warehouse ON internal_transfers(from_warehouse_id, validated)",
		"CREATE INDEX IF NOT EXISTS idx_stock_adjustments_product ON stock_adjustments(product_id)",
	}

	successCount := 0
	failCount := 0

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Failed to create index: %v", err)
			failCount++
		} else {
			successCount++
		}
	}

	log.Printf("✅ Created %d indexes successfully (%d failed)", successCount, failCount)
	return nil
}

// SeedInitialData inserts initial data into the database
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := m.seedWarehouses(); err != nil {
		return fmt.Errorf("failed to seed warehouses: %w", err)
	}

	if err := m.seedProducts(); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

func (m *Migration) seedAdminUser() error {
	log.Println("👤 Seeding admin user...")

	var existing user.User
	result := m.db.Where("email = ?", "admin@example.com").First(&existing)
	if result.Error != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		adminUser := user.User{
			Email:     "admin@example.com",
			Password:  string(hashedPassword),
			FirstName: "Admin",
			LastName:  "User",
			IsActive:  true,
			IsAdmin:   true,
		}

		if err := m.db.Create(&adminUser).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		log.Println("✅ Created admin user: admin@example.com (password: admin123)")
	} else {
		log.Printf("⏭️ Admin user already exists with ID: %d", existing.ID)
	}

	return nil
}

func (m *Migration) seedWarehouses() error {
	log.Println("🏭 Seeding warehouses...")

	lat1, lon1 := 48.8566, 2.3522
	lat2, lon2 := 45.7640, 4.8357
	code1, code2 := "PAR", "LYO"

	warehouses := []warehouse.Warehouse{
		{
			Name:      "Paris Central",
			Code:      &code1,
			Latitude:  &lat1,
			Longitude: &lon1,
			City:      "Paris",
			Country:   "France",
			IsActive:  true,
		},
		{
			Name:      "Lyon South",
			Code:      &code2,
			Latitude:  &lat2,
			Longitude: &lon2,
			City:      "Lyon",
			Country:   "France",
			IsActive:  true,
		},
	}

	for _, wh := range warehouses {
		var existing warehouse.Warehouse
		result := m.db.Where("code = ?", *wh.Code).First(&existing)
		if result.Error != nil {
			if err := m.db.Create(&wh).Error; err != nil {
				return err
			}
			location := warehouse.SubLocation{
				WarehouseID: wh.ID,
				Aisle:       "A1",
				Rack:        "R1",
				Bin:         "B1",
			}
			if err := m.db.Create(&location).Error; err != nil {
				return err
			}
			log.Printf("✅ Created warehouse: %s", wh.Name)
		} else {
			log.Printf("⏭️ Warehouse already exists: %s", wh.Name)
		}
	}

	return nil
}

func (m *Migration) seedProducts() error {
	log.Println("📦 Seeding products...")

	products := []product.Product{
		{
			SKU:      "RAW-STEEL-001",
			Name:     "Steel Sheet 2mm",
			Category: product.CategoryRawMaterial,
			Type:     "sheet",
			Weight:   12.5,
		},
		{
			SKU:      "FIN-CHAIR-001",
			Name:     "Office Chair Standard",
			Category: product.CategoryFinishedGood,
			Type:     "furniture",
			Weight:   8.2,
		},
		{
			SKU:      "PART-WHEEL-001",
			Name:     "Caster Wheel 50mm",
			Category: product.CategoryPart,
			Type:     "component",
			Weight:   0.3,
		},
	}

	for _, prod := range products {
		var existing product.Product
		result := m.db.Where("sku = ?", prod.SKU).First(&existing)
		if result.Error != nil {
			if err := m.db.Create(&prod).Error; err != nil {
				log.Printf("⚠️ Failed to create product %s: %v", prod.SKU, err)
			} else {
				log.Printf("✅ Created product: %s", prod.Name)
			}
		} else {
			log.Printf("⏭️ Product already exists: %s", prod.Name)
		}
	}

	return nil
}

// GetTableInfo returns information about database tables
func (m *Migration) GetTableInfo() error {
	var tables []string

	if err := m.db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename").Scan(&tables).Error; err != nil {
		return err
	}

	log.Println("📊 Database Tables Information:")
	log.Println("================================")

	totalRecords := int64(0)
	for _, table := range tables {
		var count int64
		m.db.Table(table).Count(&count)
		totalRecords += count

		status := "✅"
		if count == 0 {
			status = "📭"
		}

		log.Printf("%s %-25s | %d records", status, table, count)
	}

	log.Println("================================")
	log.Printf("📈 Total records across all tables: %d", totalRecords)
	log.Printf("🗂️ Total tables: %d", len(tables))

	return nil
}
