package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gezi/internal/infra"
	"gezi/internal/models/db_models"
	"gezi/pkg/utils"
)

type CityAliasRepositoryInterface interface {
	ListAliases(ctx context.Context) ([]db_models.CityAlias, error)
	// SeedAliases inserts aliases only when the table is empty and reports
	// how many rows were written.
	SeedAliases(ctx context.Context, aliases []db_models.CityAlias) (int, error)
}

func NewCityAliasRepository(db *gorm.DB) CityAliasRepositoryInterface {
	return &CityAliasRepository{db: db}
}

type CityAliasRepository struct {
	db *gorm.DB
}

func (r *CityAliasRepository) ListAliases(ctx context.Context) ([]db_models.CityAlias, error) {
	var aliases []db_models.CityAlias
	err := r.db.WithContext(ctx).Order("position ASC").Order("alias ASC").Find(&aliases).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list city aliases: %v", utils.ErrDatabaseError, err)
	}
	return aliases, nil
}

func (r *CityAliasRepository) SeedAliases(ctx context.Context, aliases []db_models.CityAlias) (n int, err error) {
	if len(aliases) == 0 {
		return 0, nil
	}

	tx, err := infra.StartTransaction(r.db.WithContext(ctx))
	if err != nil {
		return 0, err
	}
	defer func() {
		err = infra.ReleaseTransaction(tx, err)
		if err != nil {
			n = 0
		}
	}()

	var count int64
	if err = tx.Model(&db_models.CityAlias{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("%w: count city aliases: %v", utils.ErrDatabaseError, err)
	}
	if count > 0 {
		return 0, nil
	}

	if err = tx.Create(&aliases).Error; err != nil {
		return 0, fmt.Errorf("%w: seed city aliases: %v", utils.ErrDatabaseError, err)
	}
	return len(aliases), nil
}
