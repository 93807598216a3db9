package main

import (
	"quitanda/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.AccountModel{},
		model.AddressModel{},
		model.StoreModel{},
		model.OpeningHoursModel{},
		model.SectionModel{},
		model.ProductModel{},
		model.ProductSectionModel{},
		model.OrderModel{},
		model.OrderItemModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
