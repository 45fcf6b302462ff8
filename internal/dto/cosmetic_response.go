package dto

type CosmeticResponse struct {
	ID        int64              `json:"id"`
	Name      string             `json:"name"`
	Slug      string             `json:"slug"`
	Thumbnail string             `json:"thumbnail"`
	About     string             `json:"about,omitempty"`
	Price     int64              `json:"price"`
	IsPopular bool               `json:"is_popular"`
	Brand     *BrandResponse     `json:"brand,omitempty"`
	Category  *CategoryResponse  `json:"category,omitempty"`
	Benefits  []BenefitResponse  `json:"benefits,omitempty"`
	Photos    []PhotoResponse    `json:"photos,omitempty"`
}

type BrandResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Photo         string `json:"photo"`
	CosmeticCount int64  `json:"cosmetic_count,omitempty"`
}

type CategoryResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	Photo          string `json:"photo"`
	CosmeticsCount int64  `json:"cosmetics_count,omitempty"`
}

type BenefitResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type PhotoResponse struct {
	ID    int64  `json:"id"`
	Photo string `json:"photo"`
}
