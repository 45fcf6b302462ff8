package repository

import (
	"context"
	"database/sql"

	"github.com/adcahya/cosmetic-shop/booking-service/internal/domain"
	pkgdto "github.com/adcahya/cosmetic-shop/booking-service/pkg/dto"
	"github.com/adcahya/cosmetic-shop/booking-service/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type CosmeticRepositoryImpl struct {
	db *sqlx.DB
}

func CreateCosmeticRepository(db *sqlx.DB) CosmeticRepository {
	return &CosmeticRepositoryImpl{db: db}
}

func (r *CosmeticRepositoryImpl) GetCosmeticsByIDs(ctx context.Context, ids []int64) (data []domain.Cosmetic, err error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In("SELECT id, name, slug, thumbnail, about, price, stock, is_popular, brand_id, category_id, created_at, updated_at, deleted_at FROM cosmetics WHERE id IN (?) AND deleted_at IS NULL", ids)
	if err != nil {
		log.Error().Err(err).Str("component", "GetCosmeticsByIDs").Msg("")
		return nil, errs.ErrInternalServer
	}

	query = r.db.Rebind(query)
	err = r.db.SelectContext(ctx, &data, query, args...)
	if err != nil {
		log.Error().Err(err).Str("component", "GetCosmeticsByIDs").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

func (r *CosmeticRepositoryImpl) GetCosmeticBySlug(ctx context.Context, slug string) (data domain.Cosmetic, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT id, name, slug, thumbnail, about, price, stock, is_popular, brand_id, category_id, created_at, updated_at, deleted_at FROM cosmetics WHERE slug = $1 AND deleted_at IS NULL", slug)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetCosmeticBySlug").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

// cosmeticFilter builds the WHERE clause shared by the listing and its count
// so pagination metadata reflects the same predicates.
func cosmeticFilter(filter pkgdto.Filter) (clause string, args map[string]interface{}) {
	clause = " WHERE c.deleted_at IS NULL"
	args = make(map[string]interface{})

	if filter.CategorySlug != "" {
		clause += " AND c.category_id = (SELECT id FROM categories WHERE slug = :category_slug)"
		args["category_slug"] = filter.CategorySlug
	}

	if filter.BrandSlug != "" {
		clause += " AND c.brand_id = (SELECT id FROM brands WHERE slug = :brand_slug)"
		args["brand_slug"] = filter.BrandSlug
	}

	if filter.IsPopular {
		clause += " AND c.is_popular = true"
	}

	if filter.Q != "" {
		clause += " AND c.name ILIKE :q"
		args["q"] = "%" + filter.Q + "%"
	}

	return clause, args
}

func (r *CosmeticRepositoryImpl) GetCosmetics(ctx context.Context, filter pkgdto.Filter) (data []domain.Cosmetic, err error) {
	clause, args := cosmeticFilter(filter)
	query := "SELECT c.id, c.name, c.slug, c.thumbnail, c.about, c.price, c.stock, c.is_popular, c.brand_id, c.category_id, c.created_at, c.updated_at, c.deleted_at FROM cosmetics c" + clause

	query += " ORDER BY c.id"

	if filter.Limit != 0 && filter.Page != 0 {
		offset := (filter.Page - 1) * filter.Limit
		query += " LIMIT :limit OFFSET :offset"
		args["limit"] = filter.Limit
		args["offset"] = offset
	}

	nstmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("component", "GetCosmetics").Msg("")
		return nil, err
	}

	err = nstmt.SelectContext(ctx, &data, args)
	if err != nil {
		log.Error().Err(err).Str("component", "GetCosmetics").Msg("")
		return nil, err
	}

	return
}

func (r *CosmeticRepositoryImpl) CountCosmetics(ctx context.Context, filter pkgdto.Filter) (count int64, err error) {
	clause, args := cosmeticFilter(filter)

	nstmt, err := r.db.PrepareNamedContext(ctx, "SELECT COUNT(*) FROM cosmetics c"+clause)
	if err != nil {
		log.Error().Err(err).Str("component", "CountCosmetics").Msg("")
		return 0, errs.ErrInternalServer
	}

	err = nstmt.GetContext(ctx, &count, args)
	if err != nil {
		log.Error().Err(err).Str("component", "CountCosmetics").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}

func (r *CosmeticRepositoryImpl) GetBenefitsByCosmeticID(ctx context.Context, cosmeticID int64) (data []domain.Benefit, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM benefits WHERE cosmetic_id = $1 AND deleted_at IS NULL ORDER BY id", cosmeticID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetBenefitsByCosmeticID").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

func (r *CosmeticRepositoryImpl) GetPhotosByCosmeticID(ctx context.Context, cosmeticID int64) (data []domain.Photo, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM photos WHERE cosmetic_id = $1 AND deleted_at IS NULL ORDER BY id", cosmeticID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetPhotosByCosmeticID").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

func (r *CosmeticRepositoryImpl) GetBrandsByIDs(ctx context.Context, ids []int64) (data []domain.Brand, err error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In("SELECT * FROM brands WHERE id IN (?) AND deleted_at IS NULL", ids)
	if err != nil {
		log.Error().Err(err).Str("component", "GetBrandsByIDs").Msg("")
		return nil, errs.ErrInternalServer
	}

	query = r.db.Rebind(query)
	err = r.db.SelectContext(ctx, &data, query, args...)
	if err != nil {
		log.Error().Err(err).Str("component", "GetBrandsByIDs").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

func (r *CosmeticRepositoryImpl) GetBrandByID(ctx context.Context, id int64) (data domain.Brand, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM brands WHERE id = $1 AND deleted_at IS NULL", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetBrandByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *CosmeticRepositoryImpl) GetCategoryByID(ctx context.Context, id int64) (data domain.Category, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM categories WHERE id = $1 AND deleted_at IS NULL", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetCategoryByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *CosmeticRepositoryImpl) GetBrands(ctx context.Context) (data []BrandWithCount, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT b.id, b.name, b.slug, b.photo, b.created_at, b.updated_at, b.deleted_at, COUNT(c.id) AS cosmetic_count FROM brands b LEFT JOIN cosmetics c ON c.brand_id = b.id AND c.deleted_at IS NULL WHERE b.deleted_at IS NULL GROUP BY b.id ORDER BY b.name")
	if err != nil {
		log.Error().Err(err).Str("component", "GetBrands").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

func (r *CosmeticRepositoryImpl) GetCategories(ctx context.Context) (data []CategoryWithCount, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT ct.id, ct.name, ct.slug, ct.photo, ct.created_at, ct.updated_at, ct.deleted_at, COUNT(c.id) AS cosmetics_count FROM categories ct LEFT JOIN cosmetics c ON c.category_id = ct.id AND c.deleted_at IS NULL WHERE ct.deleted_at IS NULL GROUP BY ct.id ORDER BY ct.name")
	if err != nil {
		log.Error().Err(err).Str("component", "GetCategories").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

func (r *CosmeticRepositoryImpl) CountBrands(ctx context.Context) (count int64, err error) {
	err = r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM brands WHERE deleted_at IS NULL")
	if err != nil {
		log.Error().Err(err).Str("component", "CountBrands").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}
