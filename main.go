package main

import (
	"context"
	"log"
	"os"

	"github.com/jaskaran778/grind-fuel/cache"
	"github.com/jaskaran778/grind-fuel/controller"
	kafkax "github.com/jaskaran778/grind-fuel/kafka"
	"github.com/jaskaran778/grind-fuel/middleware"
	"github.com/jaskaran778/grind-fuel/model"
	"github.com/jaskaran778/grind-fuel/payment"
	"github.com/jaskaran778/grind-fuel/routes"
	"github.com/jaskaran778/grind-fuel/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func initDB() *gorm.DB {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	pass := getEnv("DB_PASS", "postgres")
	name := getEnv("DB_NAME", "grindfuel")

	dsn := "host=" + host + " user=" + user + " password=" + pass + " dbname=" + name + " port=" + port + " sslmode=disable TimeZone=UTC"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect db:", err)
	}

	if err := db.AutoMigrate(&model.Order{}, &model.Cart{}, &model.User{}, &model.Product{}); err != nil {
		log.Fatal(err)
	}

	return db
}

func main() {
	db := initDB()

	orders := store.NewOrderStore(db)
	carts := store.NewCartStore(db)
	users := store.NewUserStore(db)
	products := store.NewProductStore(db)

	if err := products.Seed(context.Background(), store.DefaultCatalog()); err != nil {
		log.Fatal("failed to seed products:", err)
	}

	broker := getEnv("KAFKA_BROKER", "kafka:9092")
	producer := kafkax.NewProducer(broker)

	rdb, err := cache.Connect(getEnv("REDIS_ADDR", "redis:6379"))
	if err != nil {
		log.Fatal("failed to connect redis:", err)
	}

	payments := payment.NewClient(
		os.Getenv("STRIPE_SECRET_KEY"),
		os.Getenv("STRIPE_WEBHOOK_SECRET"),
		getEnv("BASE_URL", "http://localhost:3000"),
	)

	authCfg := middleware.AuthConfig{
		JWTSecret:   getEnv("JWT_SECRET", "verysecretkey"),
		AdminUserID: os.Getenv("ADMIN_USER_ID"),
	}
	authRequired := middleware.AuthRequired(authCfg)
	adminRequired := middleware.AdminRequired(authCfg)

	app := fiber.New()
	app.Use(logger.New())

	routes.RegisterProductRoutes(app, &controller.ProductController{Products: products})
	routes.RegisterCartRoutes(app, &controller.CartController{Carts: carts, Products: products}, authRequired)
	routes.RegisterCheckoutRoutes(app, &controller.CheckoutController{Orders: orders, Payments: payments}, authRequired)
	routes.RegisterWebhookRoutes(app, &controller.WebhookController{
		Orders:   orders,
		Payments: payments,
		Events:   cache.NewEventLog(rdb),
		Producer: producer,
	})
	routes.RegisterAdminRoutes(app, &controller.AdminController{Orders: orders, Users: users}, authRequired, adminRequired)
	routes.RegisterUserRoutes(app, &controller.UserController{
		Users:  users,
		Orders: orders,
		Carts:  carts,
		Auth:   authCfg,
	}, authRequired)

	consumer := kafkax.NewConsumer(broker)
	consumer.Consume("order.paid", kafkax.OrderPaidHandler(carts))

	port := getEnv("PORT", "3000")
	log.Println("HTTP server running on port " + port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("fiber error:", err)
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
