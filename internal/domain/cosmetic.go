package domain

type Cosmetic struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	Slug       string `db:"slug"`
	Thumbnail  string `db:"thumbnail"`
	About      string `db:"about"`
	Price      int64  `db:"price"`
	Stock      int64  `db:"stock"`
	IsPopular  bool   `db:"is_popular"`
	BrandID    int64  `db:"brand_id"`
	CategoryID int64  `db:"category_id"`
	CreatedAt  int64  `db:"created_at"`
	UpdatedAt  int64  `db:"updated_at"`
	DeletedAt  *int64 `db:"deleted_at"`
	Brand      Brand
	Category   Category
	Benefits   []Benefit
	Photos     []Photo
}

type Brand struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	Slug      string `db:"slug"`
	Photo     string `db:"photo"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
	DeletedAt *int64 `db:"deleted_at"`
}

type Category struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	Slug      string `db:"slug"`
	Photo     string `db:"photo"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
	DeletedAt *int64 `db:"deleted_at"`
}

type Benefit struct {
	ID         int64  `db:"id"`
	CosmeticID int64  `db:"cosmetic_id"`
	Name       string `db:"name"`
	CreatedAt  int64  `db:"created_at"`
	UpdatedAt  int64  `db:"updated_at"`
	DeletedAt  *int64 `db:"deleted_at"`
}

type Photo struct {
	ID         int64  `db:"id"`
	CosmeticID int64  `db:"cosmetic_id"`
	Photo      string `db:"photo"`
	CreatedAt  int64  `db:"created_at"`
	UpdatedAt  int64  `db:"updated_at"`
	DeletedAt  *int64 `db:"deleted_at"`
}
