package infrastructure

import (
	"context"
	"fmt"
	"log"
	"time"

	"crane-parts-backend/internal/model"
	"crane-parts-backend/internal/service"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeedDataManager handles demo data initialization
type SeedDataManager struct {
	db          *gorm.DB
	userService service.UserService
}

// NewSeedDataManager creates a new seed data manager
func NewSeedDataManager(db *gorm.DB, userService service.UserService) *SeedDataManager {
	return &SeedDataManager{
		db:          db,
		userService: userService,
	}
}

// SeedAll initializes all sample data. Each step skips itself when its
// table is already populated, so repeated seeding is safe.
func (s *SeedDataManager) SeedAll() error {
	dealers, err := s.setupSampleDealers()
	if err != nil {
		return fmt.Errorf("failed to setup sample dealers: %w", err)
	}

	if err := s.setupSampleUsers(dealers); err != nil {
		return fmt.Errorf("failed to setup sample users: %w", err)
	}

	products, err := s.setupSampleProducts()
	if err != nil {
		return fmt.Errorf("failed to setup sample products: %w", err)
	}

	if err := s.setupSampleMachines(products); err != nil {
		return fmt.Errorf("failed to setup sample machines: %w", err)
	}

	if err := s.setupSampleOrders(dealers, products); err != nil {
		return fmt.Errorf("failed to setup sample orders: %w", err)
	}

	return nil
}

// setupSampleDealers はサンプルディーラーデータを設定
func (s *SeedDataManager) setupSampleDealers() ([]model.Dealer, error) {
	var count int64
	if err := s.db.Model(&model.Dealer{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing dealers: %w", err)
	}

	if count > 0 {
		log.Println("Sample dealers already exist, skipping creation")
		var dealers []model.Dealer
		if err := s.db.Order("code ASC").Find(&dealers).Error; err != nil {
			return nil, fmt.Errorf("failed to load existing dealers: %w", err)
		}
		return dealers, nil
	}

	dealers := []model.Dealer{
		{
			ID:           uuid.NewString(),
			Name:         "North Rigging Supply",
			Code:         "dealer-001",
			City:         "Hamburg",
			Region:       "North",
			ContactEmail: "sales@northrigging.example",
			ContactPhone: "+49-40-555-0101",
		},
		{
			ID:           uuid.NewString(),
			Name:         "Southern Crane Services",
			Code:         "dealer-002",
			City:         "Munich",
			Region:       "South",
			ContactEmail: "office@southerncrane.example",
			ContactPhone: "+49-89-555-0202",
		},
		{
			ID:           uuid.NewString(),
			Name:         "Harbor Lift Parts",
			Code:         "dealer-003",
			City:         "Rotterdam",
			Region:       "West",
			ContactEmail: "parts@harborlift.example",
			ContactPhone: "+31-10-555-0303",
		},
	}

	if err := s.db.Create(&dealers).Error; err != nil {
		return nil, fmt.Errorf("failed to create dealers: %w", err)
	}

	log.Printf("Created %d sample dealers", len(dealers))
	return dealers, nil
}

// setupSampleUsers はサンプルユーザーデータを設定
func (s *SeedDataManager) setupSampleUsers(dealers []model.Dealer) error {
	ctx := context.Background()

	var count int64
	if err := s.db.Model(&model.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}

	if count > 0 {
		log.Println("Sample users already exist, skipping creation")
		return nil
	}

	sampleUsers := []service.CreateUserRequest{
		{
			Name:     "Alice Admin",
			Email:    "alice@craneparts.example",
			Phone:    "+49-30-555-1001",
			Password: "password123",
			Role:     "admin",
		},
		{
			Name:     "Bruno Dealer",
			Email:    "bruno@northrigging.example",
			Phone:    "+49-40-555-1002",
			Password: "password123",
			Role:     "dealer",
			DealerID: &dealers[0].ID,
		},
		{
			Name:     "Sofia Dealer",
			Email:    "sofia@southerncrane.example",
			Phone:    "+49-89-555-1003",
			Password: "password123",
			Role:     "dealer",
			DealerID: &dealers[1].ID,
		},
		{
			Name:     "Carl Customer",
			Email:    "carl@example.com",
			Phone:    "+49-30-555-1004",
			Password: "password123",
			Role:     "customer",
		},
	}

	for _, req := range sampleUsers {
		req := req
		if _, err := s.userService.CreateUser(ctx, &req); err != nil {
			return fmt.Errorf("failed to create user %s: %w", req.Email, err)
		}
	}

	log.Printf("Created %d sample users", len(sampleUsers))
	return nil
}

// setupSampleProducts はサンプル商品データを設定
func (s *SeedDataManager) setupSampleProducts() ([]model.Product, error) {
	var count int64
	if err := s.db.Model(&model.Product{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing products: %w", err)
	}

	if count > 0 {
		log.Println("Sample products already exist, skipping creation")
		var products []model.Product
		if err := s.db.Order("part_number ASC").Find(&products).Error; err != nil {
			return nil, fmt.Errorf("failed to load existing products: %w", err)
		}
		return products, nil
	}

	now := time.Now()
	products := []model.Product{
		{
			ID:            uuid.NewString(),
			Name:          "Hydraulic Pump HP-220",
			PartNumber:    "HYD-220-A",
			Description:   "Main hydraulic pump for mid-range mobile cranes",
			Category:      "hydraulics",
			Price:         2890.00,
			StockQuantity: 14,
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            uuid.NewString(),
			Name:          "Wire Rope 19mm",
			PartNumber:    "WRP-019-6X36",
			Description:   "6x36 class hoist wire rope, per 100m drum",
			Category:      "rigging",
			Price:         640.00,
			StockQuantity: 32,
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            uuid.NewString(),
			Name:          "Hook Block 25t",
			PartNumber:    "HKB-025-3S",
			Description:   "Three-sheave hook block rated 25 tonnes",
			Category:      "rigging",
			Price:         1975.00,
			StockQuantity: 6,
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            uuid.NewString(),
			Name:          "Slew Bearing SB-1400",
			PartNumber:    "SLB-1400",
			Description:   "Single-row ball slew bearing, 1400mm raceway",
			Category:      "drivetrain",
			Price:         7420.00,
			StockQuantity: 2,
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            uuid.NewString(),
			Name:          "Boom Angle Sensor",
			PartNumber:    "SNS-BA-02",
			Description:   "Replacement boom angle sensor with CAN output",
			Category:      "electronics",
			Price:         385.00,
			StockQuantity: 21,
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            uuid.NewString(),
			Name:          "Counterweight Pin Set",
			PartNumber:    "CWP-SET-08",
			Description:   "Discontinued pin set for legacy counterweight frames",
			Category:      "structural",
			Price:         210.00,
			StockQuantity: 0,
			IsActive:      false,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}

	if err := s.db.Create(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to create products: %w", err)
	}

	log.Printf("Created %d sample products", len(products))
	return products, nil
}

// setupSampleMachines はサンプル機種と互換性データを設定
func (s *SeedDataManager) setupSampleMachines(products []model.Product) error {
	var count int64
	if err := s.db.Model(&model.Machine{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing machines: %w", err)
	}

	if count > 0 {
		log.Println("Sample machines already exist, skipping creation")
		return nil
	}

	machines := []model.Machine{
		{
			ID:           uuid.NewString(),
			Name:         "All-Terrain Crane AT-60",
			ModelNumber:  "AT-60",
			Series:       "AT",
			CapacityTons: 60,
		},
		{
			ID:           uuid.NewString(),
			Name:         "Crawler Crane CC-120",
			ModelNumber:  "CC-120",
			Series:       "CC",
			CapacityTons: 120,
		},
	}

	if err := s.db.Create(&machines).Error; err != nil {
		return fmt.Errorf("failed to create machines: %w", err)
	}

	// AT-60 takes the lighter rigging and hydraulics; CC-120 everything
	// except the discontinued pin set.
	var compat []model.MachineCompatibility
	for i, product := range products {
		if !product.IsActive {
			continue
		}
		if i < 3 {
			compat = append(compat, model.MachineCompatibility{
				ID:        uuid.NewString(),
				MachineID: machines[0].ID,
				ProductID: product.ID,
			})
		}
		compat = append(compat, model.MachineCompatibility{
			ID:        uuid.NewString(),
			MachineID: machines[1].ID,
			ProductID: product.ID,
		})
	}

	if err := s.db.Create(&compat).Error; err != nil {
		return fmt.Errorf("failed to create machine compatibility rows: %w", err)
	}

	log.Printf("Created %d sample machines with %d compatibility rows", len(machines), len(compat))
	return nil
}

// setupSampleOrders はサンプル注文データを設定
func (s *SeedDataManager) setupSampleOrders(dealers []model.Dealer, products []model.Product) error {
	var count int64
	if err := s.db.Model(&model.Order{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing orders: %w", err)
	}

	if count > 0 {
		log.Println("Sample orders already exist, skipping creation")
		return nil
	}

	var customer model.User
	if err := s.db.Where("role = ?", "customer").First(&customer).Error; err != nil {
		return fmt.Errorf("failed to find customer for sample orders: %w", err)
	}

	now := time.Now()
	orders := []model.Order{
		{
			ID:          uuid.NewString(),
			OrderNumber: "ORD-2024-0001",
			UserID:      customer.ID,
			Status:      model.OrderStatusProcessing,
			TotalAmount: 2890.00 + 2*640.00,
			Items: []model.OrderItem{
				{ID: uuid.NewString(), ProductID: products[0].ID, Quantity: 1, UnitPrice: 2890.00},
				{ID: uuid.NewString(), ProductID: products[1].ID, Quantity: 2, UnitPrice: 640.00},
			},
			Routings: []model.Routing{
				{ID: uuid.NewString(), DealerID: dealers[0].ID, Status: model.RoutingStatusAssigned, AssignedAt: now.Add(-46 * time.Hour)},
				{ID: uuid.NewString(), DealerID: dealers[1].ID, Status: model.RoutingStatusAccepted, AssignedAt: now.Add(-44 * time.Hour)},
			},
			CreatedAt: now.Add(-48 * time.Hour),
		},
		{
			ID:          uuid.NewString(),
			OrderNumber: "ORD-2024-0002",
			UserID:      customer.ID,
			Status:      model.OrderStatusShipped,
			TotalAmount: 1975.00,
			Items: []model.OrderItem{
				{ID: uuid.NewString(), ProductID: products[2].ID, Quantity: 1, UnitPrice: 1975.00},
			},
			Routings: []model.Routing{
				{ID: uuid.NewString(), DealerID: dealers[1].ID, Status: model.RoutingStatusFulfilled, AssignedAt: now.Add(-20 * time.Hour)},
			},
			CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID:          uuid.NewString(),
			OrderNumber: "ORD-2024-0003",
			UserID:      customer.ID,
			Status:      model.OrderStatusPending,
			TotalAmount: 385.00,
			Items: []model.OrderItem{
				{ID: uuid.NewString(), ProductID: products[4].ID, Quantity: 1, UnitPrice: 385.00},
			},
			CreatedAt: now.Add(-2 * time.Hour),
		},
	}

	if err := s.db.Create(&orders).Error; err != nil {
		return fmt.Errorf("failed to create orders: %w", err)
	}

	log.Printf("Created %d sample orders", len(orders))
	return nil
}
