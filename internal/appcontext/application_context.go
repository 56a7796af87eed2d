package appcontext

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/ordercenter/internal/config"
	"github.com/RoyceAzure/lab/ordercenter/internal/constants"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/cache/memory"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/producer"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/ordercenter/internal/service"
	kafka_config "github.com/RoyceAzure/lab/rj_kafka/kafka/config"
	kafka_producer "github.com/RoyceAzure/lab/rj_kafka/kafka/producer"
	"github.com/RoyceAzure/lab/rj_redis/pkg/cache"
	redis_cache "github.com/RoyceAzure/lab/rj_redis/pkg/cache/redis"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type ApplicationContext struct {
	Cf                 *config.Config
	Logger             zerolog.Logger
	DbDao              *db.DbDao
	Cache              cache.Cache
	KafkaProducer      kafka_producer.Producer
	OrderService       service.IOrderService
	ProductService     service.IProductService
	CustomerService    service.ICustomerService
	IdempotencyService service.IIdempotencyService

	redisClient *redis.Client
	memCache    *memory.MemoryCache
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	err := app.Init()
	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init() error {
	app.setUpLogger()

	err := app.setUpdbDao()
	if err != nil {
		return err
	}

	err = app.setUpCache()
	if err != nil {
		return err
	}

	err = app.setUpKafkaProducer()
	if err != nil {
		return err
	}

	app.setUpServices()

	if app.Cf.SeedData {
		log.Printf("Start seed data")
		if err := db.SeedData(context.Background(), app.DbDao); err != nil {
			return err
		}
		log.Printf("Finish seed data")
	}

	return nil
}

func (app *ApplicationContext) setUpLogger() {
	app.Logger = zerolog.New(os.Stdout).With().
		Timestamp().
		Str("module", app.Cf.ModulerName).
		Logger()
}

func (app *ApplicationContext) setUpdbDao() error {
	log.Printf("Start setup database DAO")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return err
	}
	app.DbDao = db.NewDbDao(conn)
	err = app.DbDao.InitMigrate()
	if err != nil {
		return err
	}
	log.Printf("Finish setup database DAO")
	return nil
}

// REDIS_ADDR沒設定就退回in-process cache, 單機跑也不用拉redis起來
func (app *ApplicationContext) setUpCache() error {
	log.Printf("Start setup cache")
	if app.Cf.RedisAddr != "" {
		app.redisClient = redis.NewClient(&redis.Options{
			Addr:     app.Cf.RedisAddr,
			Password: app.Cf.RedisPas,
		})
		if err := app.redisClient.Ping(context.Background()).Err(); err != nil {
			return fmt.Errorf("redis ping failed: %w", err)
		}
		app.Cache = redis_cache.NewRedisCache(app.redisClient, app.Cf.ModulerName)
		log.Printf("Finish setup cache (redis)")
		return nil
	}

	app.memCache = memory.NewMemoryCache()
	app.Cache = app.memCache
	log.Printf("Finish setup cache (memory)")
	return nil
}

// KAFKA_BROKERS沒設定就不發事件, producer維持nil
func (app *ApplicationContext) setUpKafkaProducer() error {
	if app.Cf.KafkaBrokers == "" {
		log.Printf("Kafka brokers not configured, order events disabled")
		return nil
	}

	log.Printf("Start setup kafka producer")
	topic := app.Cf.OrderEventTopic
	if topic == "" {
		topic = constants.DefaultOrderEventTopic
	}
	p, err := kafka_producer.New(&kafka_config.Config{
		Brokers:       strings.Split(app.Cf.KafkaBrokers, ","),
		Topic:         topic,
		RetryAttempts: 3,
		BatchTimeout:  time.Second,
		BatchSize:     100,
		RequiredAcks:  1,
		WriteTimeout:  5 * time.Second,
	})
	if err != nil {
		return err
	}
	app.KafkaProducer = p
	log.Printf("Finish setup kafka producer")
	return nil
}

func (app *ApplicationContext) setUpServices() {
	log.Printf("Start setup services")

	var eventProducer producer.IOrderEventProducer
	if app.KafkaProducer != nil {
		eventProducer = producer.NewOrderEventProducer(app.KafkaProducer)
	}

	app.OrderService = service.NewOrderService(app.DbDao, eventProducer, app.Logger)
	app.ProductService = service.NewProductService(db.NewProductRepo(app.DbDao))
	app.CustomerService = service.NewCustomerService(db.NewCustomerRepo(app.DbDao))
	app.IdempotencyService = service.NewIdempotencyService(app.Cache)

	log.Printf("Finish setup services")
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		if app.KafkaProducer != nil {
			log.Printf("Closing kafka producer...")
			if err := app.KafkaProducer.Close(); err != nil {
				//有錯誤不結束流程
				log.Printf("kafka producer shutdown error: %v", err)
			}
		}

		if app.redisClient != nil {
			log.Printf("Closing redis client...")
			if err := app.redisClient.Close(); err != nil {
				log.Printf("redis client shutdown error: %v", err)
			}
		}

		if app.memCache != nil {
			app.memCache.Close()
		}

		// 關閉 DB
		if app.DbDao != nil {
			log.Printf("Closing database connection...")
			if sqlDB, err := app.DbDao.DB.DB(); err == nil {
				sqlDB.Close()
			}
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
