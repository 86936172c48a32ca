package main

import (
	"flag"
	"fmt"

	bookingpb "github.com/RentLinkDrive/RentLinkDrive/internal/api/proto/booking"
	statspb "github.com/RentLinkDrive/RentLinkDrive/internal/api/proto/stats"
	"github.com/RentLinkDrive/RentLinkDrive/internal/booking"
	"github.com/RentLinkDrive/RentLinkDrive/internal/common/config"
	"github.com/RentLinkDrive/RentLinkDrive/internal/common/db"
	"github.com/RentLinkDrive/RentLinkDrive/internal/common/logger"
	"github.com/RentLinkDrive/RentLinkDrive/internal/common/server"
	"github.com/RentLinkDrive/RentLinkDrive/internal/common/tracing"
	"github.com/RentLinkDrive/RentLinkDrive/internal/events"
	"github.com/RentLinkDrive/RentLinkDrive/internal/stats"
	"github.com/RentLinkDrive/RentLinkDrive/internal/user"
	"github.com/RentLinkDrive/RentLinkDrive/internal/vehicle"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
)

var (
	configPath = flag.String("config", "configs/booking-service.json", "配置文件路径")
	consulHost = flag.String("consul-host", "", "从 Consul KV 拉取配置（可选）")
	consulPort = flag.Int("consul-port", 8500, "Consul 端口")
	consulKey  = flag.String("consul-key", "", "Consul KV 配置 key（为空则走本地文件）")
)

func main() {
	flag.Parse()

	// 加载配置：优先 Consul KV，其次本地文件
	var cfg *config.Config
	var err error
	if *consulKey != "" {
		cfg, err = config.LoadConfigFromConsulKV(*consulHost, *consulPort, *consulKey)
	} else {
		cfg, err = config.LoadConfig(*configPath)
	}
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// 初始化日志
	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.Path)
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	// 初始化链路追踪
	tracer, closer, err := tracing.InitTracer(
		cfg.Server.Name,
		cfg.Jaeger.Endpoint,
		cfg.Jaeger.Sampler,
	)
	if err != nil {
		log.Warnf("failed to init tracer: %v", err)
	} else {
		defer closer.Close()
	}
	_ = tracer

	// 初始化数据库
	gormDB, err := db.NewMySQL(
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Database,
		cfg.Database.MaxIdle,
		cfg.Database.MaxOpen,
	)
	if err != nil {
		log.Fatalf("failed to init mysql: %v", err)
	}
	if err := gormDB.AutoMigrate(&booking.Booking{}); err != nil {
		log.Fatalf("failed to migrate mysql schema: %v", err)
	}

	// Redis：看板快照缓存（连不上不影响启动，stats 侧会直接回源）
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	// Kafka：订单生命周期事件
	publisher := events.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	if publisher != nil {
		defer publisher.Close()
	}

	bookingSvc := booking.NewService(
		booking.NewRepo(gormDB),
		vehicle.NewRepo(gormDB),
		user.NewRepo(gormDB),
		&booking.StubGateway{},
		publisher,
		log,
	)
	statsSvc := stats.NewService(stats.NewRepo(gormDB), user.NewRepo(gormDB), rdb, log)

	// 启动统一的 gRPC 服务模板
	if err := server.RunGRPCServer(cfg, log, func(s *grpc.Server) error {
		bookingpb.RegisterBookingServiceServer(s, booking.NewGRPCServer(bookingSvc))
		statspb.RegisterStatsServiceServer(s, stats.NewGRPCServer(statsSvc))
		return nil
	}); err != nil {
		log.Fatalf("booking-service exited with error: %v", err)
	}
}
