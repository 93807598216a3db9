// Command seed populates a development database with a demo store,
// catalog and client account so the API can be exercised immediately.
package main

import (
	"log/slog"
	"os"

	"quitanda/config"
	"quitanda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.New()
	if err != nil {
		logger.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		logger.Error("failed to connect to PostgreSQL", slog.Any("error", err))
		os.Exit(1)
	}

	if err := seed(db); err != nil {
		logger.Error("seeding failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("seeding completed")
}

func seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		owner := &model.UserModel{
			ID:      uuid.New(),
			Name:    "Maria Quitandeira",
			Email:   "maria@quitanda.dev",
			IsStaff: true,
		}
		if err := tx.Create(owner).Error; err != nil {
			return err
		}

		ownerAccount := &model.AccountModel{
			ID:     uuid.New(),
			UserID: owner.ID,
			Type:   "admin",
			CPF:    "39053344705",
			Phone:  "5511999990001",
		}
		if err := tx.Create(ownerAccount).Error; err != nil {
			return err
		}

		client := &model.UserModel{
			ID:    uuid.New(),
			Name:  "João Comprador",
			Email: "joao@quitanda.dev",
		}
		if err := tx.Create(client).Error; err != nil {
			return err
		}

		clientAccount := &model.AccountModel{
			ID:     uuid.New(),
			UserID: client.ID,
			Type:   "client",
			CPF:    "52998224725",
			Phone:  "5511999990002",
		}
		if err := tx.Create(clientAccount).Error; err != nil {
			return err
		}

		store := &model.StoreModel{
			ID:            uuid.New(),
			OwnerID:       ownerAccount.ID,
			Name:          "Quitanda da Maria",
			CNPJ:          "11222333000181",
			MinOrderValue: decimal.RequireFromString("20.00"),
			DeliveryFee:   decimal.RequireFromString("5.00"),
		}
		if err := tx.Create(store).Error; err != nil {
			return err
		}

		for weekday := 1; weekday <= 6; weekday++ {
			hours := &model.OpeningHoursModel{
				ID:       uuid.New(),
				StoreID:  store.ID,
				Weekday:  weekday,
				FromHour: "08:00",
				ToHour:   "18:00",
			}
			if err := tx.Create(hours).Error; err != nil {
				return err
			}
		}

		storeAddress := &model.AddressModel{
			ID:        uuid.New(),
			OwnerID:   store.ID,
			OwnerType: "store",
			Label:     "Loja",
			ZipCode:   "01310100",
			Street:    "Avenida Paulista",
			Number:    "1000",
			City:      "São Paulo",
			State:     "SP",
			IsDefault: true,
		}
		if err := tx.Create(storeAddress).Error; err != nil {
			return err
		}

		section := &model.SectionModel{
			ID:       uuid.New(),
			StoreID:  store.ID,
			Title:    "Frutas",
			Type:     "grid",
			Position: 0,
			IsActive: true,
			Form:     "not_applicable",
		}
		if err := tx.Create(section).Error; err != nil {
			return err
		}

		products := []*model.ProductModel{
			{
				ID:        uuid.New(),
				StoreID:   store.ID,
				SectionID: section.ID,
				Name:      "Banana Prata (kg)",
				Price:     decimal.RequireFromString("7.90"),
				Position:  0,
				IsActive:  true,
			},
			{
				ID:                 uuid.New(),
				StoreID:            store.ID,
				SectionID:          section.ID,
				Name:               "Manga Palmer (kg)",
				Price:              decimal.RequireFromString("12.50"),
				DiscountPercentage: decimal.RequireFromString("10.00"),
				Position:           1,
				IsActive:           true,
			},
		}
		for _, product := range products {
			if err := tx.Create(product).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
