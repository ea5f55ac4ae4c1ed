package dao

import (
	"Learnhub/models"
	"context"

	"gorm.io/gorm"
)

type Discussion struct {
	Repo[models.Discussion]
}

func NewDiscussion(db *gorm.DB) *Discussion {
	return &Discussion{
		Repo: NewRepo[models.Discussion](db),
	}
}

func (d *Discussion) Exists(ctx context.Context, id uint64) (bool, error) {
	return d.IsExist(ctx, "id = ?", id)
}
