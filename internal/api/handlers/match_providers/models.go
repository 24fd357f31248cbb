package match_providers

import (
	matchProviders "github.com/m04kA/SMC-MarketplaceService/internal/usecase/match_providers"
)

// ProviderResponse HTTP модель исполнителя в выдаче подбора
type ProviderResponse struct {
	ID          int64   `json:"id"`
	DisplayName string  `json:"displayName"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	Status      string  `json:"status"`
	CategoryIDs []int64 `json:"categoryIds,omitempty"`
	TownIDs     []int64 `json:"townIds,omitempty"`
}

// MatchProvidersResponse HTTP модель ответа подбора
type MatchProvidersResponse struct {
	Providers []ProviderResponse `json:"providers"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *matchProviders.Response) *MatchProvidersResponse {
	result := &MatchProvidersResponse{
		Providers: make([]ProviderResponse, 0, len(resp.Providers)),
	}

	for _, p := range resp.Providers {
		result.Providers = append(result.Providers, ProviderResponse{
			ID:          p.ID,
			DisplayName: p.DisplayName,
			Rating:      p.Rating,
			ReviewCount: p.ReviewCount,
			Status:      p.Status,
			CategoryIDs: p.CategoryIDs,
			TownIDs:     p.TownIDs,
		})
	}

	return result
}
