package main

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/IrfanulM/MyBNB/config"
	"github.com/IrfanulM/MyBNB/handlers"
	"github.com/IrfanulM/MyBNB/middleware"
	"github.com/IrfanulM/MyBNB/routes"
	"github.com/IrfanulM/MyBNB/services"
)

var (
	server      *gin.Engine
	ctx         context.Context
	mongoclient *mongo.Client
	cfg         *config.Config
	logger      *logrus.Logger

	listingCollection *mongo.Collection
	userCollection    *mongo.Collection

	listingService services.ListingService
	bookingService services.BookingService
	userService    services.UserService

	ListingHandler handlers.ListingHandler
	BookingHandler handlers.BookingHandler
	AuthHandler    handlers.AuthHandler
	UserHandler    handlers.UserHandler

	ListingRouteHandler routes.ListingRouteHandler
	BookingRouteHandler routes.BookingRouteHandler
	AuthRouteHandler    routes.AuthRouteHandler
	UserRouteHandler    routes.UserRouteHandler
)

func init() {
	ctx = context.TODO()
	cfg = config.LoadConfig()

	logger = logrus.New()
	if cfg.LogFile != "" {
		logger.SetOutput(&lumberjack.Logger{
			Filename:  cfg.LogFile,
			MaxSize:   1,
			LocalTime: true,
		})
	}

	mongoconn := options.Client().ApplyURI(cfg.MongoURI)
	var err error
	mongoclient, err = mongo.Connect(ctx, mongoconn)
	if err != nil {
		panic(err)
	}
	if err := mongoclient.Ping(ctx, readpref.Primary()); err != nil {
		panic(err)
	}
	logger.Info("MongoDB successfully connected...")

	// Collections
	listingCollection = mongoclient.Database(cfg.DatabaseName).Collection("listingsAndReviews")
	userCollection = mongoclient.Database(cfg.DatabaseName).Collection("users")

	listingService = services.NewListingServiceImpl(listingCollection)
	bookingService = services.NewBookingServiceImpl(listingCollection)
	userService = services.NewUserServiceImpl(userCollection)

	ListingHandler = handlers.NewListingHandler(listingService, logger)
	BookingHandler = handlers.NewBookingHandler(bookingService, logger)
	AuthHandler = handlers.NewAuthHandler(userService, cfg.JWTSecret, logger)
	UserHandler = handlers.NewUserHandler(userService, bookingService, logger)

	ListingRouteHandler = routes.NewListingRouteHandler(ListingHandler)
	BookingRouteHandler = routes.NewBookingRouteHandler(BookingHandler)
	AuthRouteHandler = routes.NewAuthRouteHandler(AuthHandler)
	UserRouteHandler = routes.NewUserRouteHandler(UserHandler)

	server = gin.Default()
}

func main() {
	defer mongoclient.Disconnect(ctx)

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.CorsOrigin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")

	server.Use(cors.New(corsConfig))
	server.Use(middleware.Authenticate(cfg.JWTSecret))

	router := server.Group("/api")
	router.GET("/healthchecker", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "success"})
	})

	ListingRouteHandler.ListingRoute(router)
	BookingRouteHandler.BookingRoute(router)
	AuthRouteHandler.AuthRoute(router)
	UserRouteHandler.UserRoute(router)

	if err := server.Run(":" + cfg.Port); err != nil {
		logger.Fatal(err)
	}
}
