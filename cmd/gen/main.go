package main

import (
	"gorm.io/gen"

	"github.com/forcollegesake07/food-bridge/internal/infra/persistence/model"
)

func main() {
	models := []any{
		model.ProfileModel{},
		model.DonationModel{},
		model.RequestModel{},
		model.BroadcastModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
