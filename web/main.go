package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"simplisafe.com/falcon/core"
	"simplisafe.com/falcon/infrastructure/communication"
	"simplisafe.com/falcon/infrastructure/devops"
	"simplisafe.com/falcon/model"
	"simplisafe.com/falcon/web/handlers/camera"
	"simplisafe.com/falcon/web/handlers/location"
	"simplisafe.com/falcon/web/handlers/plan"
	"simplisafe.com/falcon/web/handlers/subscription"
	"simplisafe.com/falcon/web/middlewares"
)

func main() {
	ctx := context.Background()

	cfg, err := devops.LoadConfig(ctx)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := core.Connect(cfg.DatabaseDSN, cfg.MaxConnections)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	model.SetTransactionMode(cfg.CimTransactionMode)

	notifier := communication.NewSlack(cfg.Slack.Token, communication.SlackOption{
		InfoChannelID:  cfg.Slack.InfoChannel,
		ErrorChannelID: cfg.Slack.ErrorChannel,
	})

	// Unknown body fields are schema violations, not noise to ignore.
	binding.EnableDecoderDisallowUnknownFields = true

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(notifier))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	v1.Use(middlewares.Identity([]byte(cfg.JwtSecret)))
	{
		codes := model.NewCodeResolver(db)
		subscription.Register(v1, db, codes)
		location.Register(v1, db, codes)
		camera.Register(v1, db)
		plan.Register(v1, db)
	}

	if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
