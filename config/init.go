package config

import (
	"fmt"

	"sales/services/notification"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// InitApp tạo router gin với các middleware dùng chung
func InitApp(cfg *Config) (*gin.Engine, error) {
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("set trusted proxies: %w", err)
	}
	return router, nil
}

func corsConfig(origins []string) cors.Config {
	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("X-Request-ID")
	configCors.AddExposeHeaders("X-Request-ID")
	if len(origins) == 0 {
		configCors.AllowAllOrigins = true
		return configCors
	}
	configCors.AllowOrigins = origins
	return configCors
}

// NewNotifier trả về publisher AMQP khi có AMQP_URL, ngược lại là NoopService
func NewNotifier(cfg AMQPConfig) (notification.Service, error) {
	if cfg.URL == "" {
		return notification.NoopService{}, nil
	}
	service, err := notification.NewAMQPService(cfg.URL, cfg.Exchange)
	if err != nil {
		return nil, err
	}
	return service, nil
}
