package dto

// PortfolioImageResponse - добавленное изображение портфолио
type PortfolioImageResponse struct {
	ID       uint   `json:"id"`
	ImageURL string `json:"image_url"`
	Position int    `json:"position"`
}
