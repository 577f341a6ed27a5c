package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/rpsgarage/servicecenter/internal/clock"
	"github.com/rpsgarage/servicecenter/internal/migration"
	"github.com/rpsgarage/servicecenter/internal/observability"
	"github.com/rpsgarage/servicecenter/internal/server"
	"github.com/rpsgarage/servicecenter/pkg/db"
)

func main() {
	app := fx.New(
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		server.Module,
		migration.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
