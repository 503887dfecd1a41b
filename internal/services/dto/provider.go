package dto

// ProviderListRequest - фильтры выборки провайдеров.
// Пагинация limit/offset, по умолчанию 50/0.
type ProviderListRequest struct {
	City         string   `form:"city"`
	State        string   `form:"state"`
	Service      string   `form:"service"`
	MinRating    *float64 `form:"minRating" validate:"omitempty,gte=0,lte=5"`
	VerifiedOnly bool     `form:"verifiedOnly"`
	Limit        int      `form:"limit" validate:"omitempty,gte=1,lte=100"`
	Offset       int      `form:"offset" validate:"omitempty,gte=0"`
}

type ProviderListItem struct {
	Account *AccountResponse `json:"account"`
}

type ProviderListResponse struct {
	Providers []*AccountResponse `json:"providers"`
	Total     int64              `json:"total"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}
