package di

import (
	"github.com/Humayraurmi/event-management-server/internal/handler"
	"github.com/Humayraurmi/event-management-server/internal/repository"
	"github.com/Humayraurmi/event-management-server/internal/service"
	"github.com/Humayraurmi/event-management-server/pkg/mongodb"
	"github.com/Humayraurmi/event-management-server/pkg/redis"
)

// Container holds all dependencies for the service
type Container struct {
	// Infrastructure
	Mongo *mongodb.Client
	Redis *redis.Client

	// Repositories
	EventRepo   repository.EventRepository
	BookingRepo repository.BookingRepository

	// Services
	EventService   service.EventService
	BookingService service.BookingService

	// Handlers
	HealthHandler  *handler.HealthHandler
	EventHandler   *handler.EventHandler
	BookingHandler *handler.BookingHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	Mongo          *mongodb.Client
	Redis          *redis.Client
	EventPublisher service.EventPublisher
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		Mongo: cfg.Mongo,
		Redis: cfg.Redis,
	}

	// Initialize repositories
	mongoEventRepo := repository.NewMongoEventRepository(c.Mongo.Database())

	// Wrap with cache if Redis is available
	if c.Redis != nil {
		c.EventRepo = repository.NewCachedEventRepository(mongoEventRepo, c.Redis)
	} else {
		c.EventRepo = mongoEventRepo
	}
	c.BookingRepo = repository.NewMongoBookingRepository(c.Mongo.Database())

	// Initialize services
	c.EventService = service.NewEventService(c.EventRepo)
	c.BookingService = service.NewBookingService(c.BookingRepo, c.EventRepo, cfg.EventPublisher)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.Mongo, c.Redis)
	c.EventHandler = handler.NewEventHandler(c.EventService)
	c.BookingHandler = handler.NewBookingHandler(c.BookingService)

	return c
}
