// Command simulate fills the database with a spread of demo orders across
// the current and previous month, in varied statuses, so the admin
// dashboard has something to show.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/dentalshop/config"
	"github.com/dentalshop/database"
	"github.com/dentalshop/models"
	"github.com/dentalshop/shop"
)

func main() {
	var (
		count = flag.Int("orders", 40, "Number of orders to generate")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := database.InitializeWithOptions(&cfg.Database, true); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	db := database.GetDB()

	var products []models.Product
	if err := db.Find(&products).Error; err != nil {
		log.Fatalf("Failed to load products: %v", err)
	}
	if len(products) == 0 {
		log.Fatal("No products found; run the seeder first")
	}

	var users []models.User
	if err := db.Where("role = ?", models.RoleCustomer).Find(&users).Error; err != nil {
		log.Fatalf("Failed to load users: %v", err)
	}
	if len(users) == 0 {
		log.Fatal("No customers found; run the seeder first")
	}

	productIndex := make(map[uint]models.Product, len(products))
	for _, p := range products {
		productIndex[p.ProductID] = p
	}

	statuses := []models.OrderStatus{
		models.StatusPending,
		models.StatusProcessing,
		models.StatusConfirmed,
		models.StatusDelivered,
		models.StatusCanceled,
	}

	now := time.Now()
	startOfLastMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	window := now.Sub(startOfLastMonth)

	created := 0
	for i := 0; i < *count; i++ {
		user := users[rand.Intn(len(users))]

		lines := make([]shop.CartLine, 0, 3)
		for _, p := range pickProducts(products, 1+rand.Intn(3)) {
			lines = append(lines, shop.CartLine{ProductID: p.ProductID, Quantity: 1 + rand.Intn(4)})
		}

		addr := "ул. Демонстрационная, 1"
		req := shop.CheckoutRequest{
			UserID:         user.UserID,
			DeliveryType:   models.DeliveryCourier,
			DeliveryAt:     now.AddDate(0, 0, 1+rand.Intn(5)),
			RecipientName:  user.FullName,
			RecipientPhone: user.Phone,
			Address:        &addr,
		}

		order, err := shop.BuildOrder(lines, productIndex, req, cfg.Shop.DeliveryFee)
		if err != nil {
			log.Fatalf("Failed to build order: %v", err)
		}

		order.Status = statuses[rand.Intn(len(statuses))]
		createdAt := startOfLastMonth.Add(time.Duration(rand.Int63n(int64(window))))
		order.CreatedAt = createdAt
		order.UpdatedAt = createdAt

		if err := db.Create(&order).Error; err != nil {
			log.Fatalf("Failed to create order: %v", err)
		}
		created++
	}

	fmt.Printf("Generated %d orders between %s and %s\n",
		created, startOfLastMonth.Format("2006-01-02"), now.Format("2006-01-02"))
}

func pickProducts(products []models.Product, n int) []models.Product {
	if n > len(products) {
		n = len(products)
	}
	perm := rand.Perm(len(products))
	picked := make([]models.Product, 0, n)
	for _, idx := range perm[:n] {
		picked = append(picked, products[idx])
	}
	return picked
}
