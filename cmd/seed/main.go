package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"realty/internal/config"
	"realty/internal/domain"
	"realty/internal/repository"
)

// Seeds a small demo portfolio. Safe to run repeatedly: existing rows are
// matched by their natural keys and reused.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	cfg := config.Load()
	db, err := repository.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	log.Println("seeding demo data...")

	categoryIDs, err := seedCategories(ctx, repository.NewCategoryRepository(db.DB()))
	if err != nil {
		log.Fatalf("failed to seed categories: %v", err)
	}

	locationIDs, err := seedLocations(ctx, repository.NewLocationRepository(db.DB()))
	if err != nil {
		log.Fatalf("failed to seed locations: %v", err)
	}

	customerIDs, err := seedCustomers(ctx, repository.NewCustomerRepository(db.DB()))
	if err != nil {
		log.Fatalf("failed to seed customers: %v", err)
	}

	if err := seedProperties(ctx, repository.NewPropertyRepository(db.DB()), categoryIDs, locationIDs); err != nil {
		log.Fatalf("failed to seed properties: %v", err)
	}

	if err := seedInvoices(ctx, repository.NewInvoiceRepository(db.DB()), customerIDs); err != nil {
		log.Fatalf("failed to seed invoices: %v", err)
	}

	log.Println("seed completed")
}

func seedCategories(ctx context.Context, repo *repository.CategoryRepository) (map[string]int64, error) {
	categories := []domain.Category{
		{Name: "Office", Description: "Commercial office space"},
		{Name: "Residential", Description: "Apartments and houses"},
		{Name: "Land", Description: "Undeveloped parcels"},
	}

	ids := make(map[string]int64, len(categories))
	for _, category := range categories {
		existing, err := repo.Find(ctx, "name = $1", category.Name)
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			ids[category.Name] = existing[0].ID
			continue
		}

		if err := repo.Add(ctx, &category); err != nil {
			return nil, err
		}
		ids[category.Name] = category.ID
		log.Printf("created category %q", category.Name)
	}
	return ids, nil
}

func seedLocations(ctx context.Context, repo *repository.LocationRepository) (map[string]int64, error) {
	locations := []domain.Location{
		{CityName: "Ankara", PlateCode: "06"},
		{CityName: "Istanbul", PlateCode: "34"},
		{CityName: "Izmir", PlateCode: "35"},
	}

	ids := make(map[string]int64, len(locations))
	for _, location := range locations {
		existing, err := repo.Find(ctx, "city_name = $1", location.CityName)
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			ids[location.CityName] = existing[0].ID
			continue
		}

		if err := repo.Add(ctx, &location); err != nil {
			return nil, err
		}
		ids[location.CityName] = location.ID
		log.Printf("created location %q", location.CityName)
	}
	return ids, nil
}

func seedCustomers(ctx context.Context, repo *repository.CustomerRepository) ([]int64, error) {
	customers := []domain.Customer{
		{FirstName: "Ayse", LastName: "Yilmaz", Email: "ayse.yilmaz@example.com", IdentityNumber: "10000000146", Balance: 250000, PhoneNumber: "+90 555 111 2233"},
		{FirstName: "Mehmet", LastName: "Demir", Email: "mehmet.demir@example.com", IdentityNumber: "10000000278", Balance: 90000, PhoneNumber: "+90 555 444 5566"},
	}

	var ids []int64
	for _, customer := range customers {
		existing, err := repo.GetByEmail(ctx, customer.Email)
		if err == nil {
			ids = append(ids, existing.ID)
			continue
		}
		if err != repository.ErrNotFound {
			return nil, err
		}

		if err := repo.Add(ctx, &customer); err != nil {
			return nil, err
		}
		ids = append(ids, customer.ID)
		log.Printf("created customer %s", customer.FullName())
	}
	return ids, nil
}

func seedProperties(ctx context.Context, repo *repository.PropertyRepository, categoryIDs, locationIDs map[string]int64) error {
	properties := []domain.Property{
		{Title: "Kizilay Plaza Office 3A", BlockNumber: "128", ParcelNumber: "7", SquareMeters: 140, Price: 500000, CategoryID: categoryIDs["Office"], LocationID: locationIDs["Ankara"], IsAvailable: true},
		{Title: "Bornova Garden Flat", BlockNumber: "45", ParcelNumber: "12", SquareMeters: 95, Price: 320000, CategoryID: categoryIDs["Residential"], LocationID: locationIDs["Izmir"], IsAvailable: true},
		{Title: "Silivri Farmland", BlockNumber: "9", ParcelNumber: "301", SquareMeters: 5200, Price: 780000, CategoryID: categoryIDs["Land"], LocationID: locationIDs["Istanbul"], IsAvailable: false},
	}

	for _, property := range properties {
		existing, err := repo.Find(ctx, "title = $1", property.Title)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			continue
		}

		if err := repo.Add(ctx, &property); err != nil {
			return err
		}
		log.Printf("created property %q", property.Title)
	}
	return nil
}

func seedInvoices(ctx context.Context, repo *repository.InvoiceRepository, customerIDs []int64) error {
	if len(customerIDs) == 0 {
		return nil
	}

	invoices := []domain.Invoice{
		{SerialNumber: "INV-2026-0001", TotalAmount: 5000, InvoiceDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), CustomerID: customerIDs[0], Status: "Paid"},
		{SerialNumber: "INV-2026-0002", TotalAmount: 12500, InvoiceDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), CustomerID: customerIDs[len(customerIDs)-1], Status: "Pending"},
	}

	for _, invoice := range invoices {
		existing, err := repo.Find(ctx, "serial_number = $1", invoice.SerialNumber)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			continue
		}

		if err := repo.Add(ctx, &invoice); err != nil {
			return err
		}
		log.Printf("created invoice %s", invoice.SerialNumber)
	}
	return nil
}
