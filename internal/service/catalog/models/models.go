package models

import "github.com/m04kA/SMC-MarketplaceService/internal/domain"

// TownResponse ответ с данными города
type TownResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Region  string `json:"region,omitempty"`
	Enabled bool   `json:"enabled"`
}

// TownListResponse ответ со списком городов
type TownListResponse struct {
	Towns []TownResponse `json:"towns"`
}

// SubSectionResponse подраздел категории услуг
type SubSectionResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AddonResponse дополнительная услуга категории
type AddonResponse struct {
	ID    int64    `json:"id"`
	Name  string   `json:"name"`
	Price *float64 `json:"price,omitempty"`
}

// CategoryResponse ответ с данными категории услуг
type CategoryResponse struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	IconTag     string               `json:"iconTag,omitempty"`
	SubSections []SubSectionResponse `json:"subSections,omitempty"`
	Addons      []AddonResponse      `json:"addons,omitempty"`
}

// CategoryListResponse ответ со списком категорий
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// FromDomainTown конвертирует domain модель города в DTO
func FromDomainTown(t *domain.Town) *TownResponse {
	if t == nil {
		return nil
	}

	return &TownResponse{
		ID:      t.ID,
		Name:    t.Name,
		Region:  t.Region,
		Enabled: t.Enabled,
	}
}

// FromDomainTownList конвертирует список городов в DTO
func FromDomainTownList(towns []*domain.Town) *TownListResponse {
	resp := &TownListResponse{
		Towns: make([]TownResponse, 0, len(towns)),
	}

	for _, town := range towns {
		if townResp := FromDomainTown(town); townResp != nil {
			resp.Towns = append(resp.Towns, *townResp)
		}
	}

	return resp
}

// FromDomainCategory конвертирует domain модель категории в DTO
func FromDomainCategory(c *domain.ServiceCategory) *CategoryResponse {
	if c == nil {
		return nil
	}

	resp := &CategoryResponse{
		ID:      c.ID,
		Name:    c.Name,
		IconTag: c.IconTag,
	}

	for _, sub := range c.SubSections {
		resp.SubSections = append(resp.SubSections, SubSectionResponse{
			ID:   sub.ID,
			Name: sub.Name,
		})
	}

	for _, addon := range c.Addons {
		resp.Addons = append(resp.Addons, AddonResponse{
			ID:    addon.ID,
			Name:  addon.Name,
			Price: addon.Price,
		})
	}

	return resp
}

// FromDomainCategoryList конвертирует список категорий в DTO
func FromDomainCategoryList(categories []*domain.ServiceCategory) *CategoryListResponse {
	resp := &CategoryListResponse{
		Categories: make([]CategoryResponse, 0, len(categories)),
	}

	for _, category := range categories {
		if categoryResp := FromDomainCategory(category); categoryResp != nil {
			resp.Categories = append(resp.Categories, *categoryResp)
		}
	}

	return resp
}
