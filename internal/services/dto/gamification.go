package dto

import "homepro_backend/internal/gamification"

type GamificationStatusResponse struct {
	SevenReviews      gamification.Progress `json:"sevenReviews"`
	TenPerfectReviews gamification.Progress `json:"tenPerfectReviews"`
	ClaimableLeads    int                   `json:"claimableLeads"`
}

type ClaimBonusResponse struct {
	AwardedLeads int      `json:"awardedLeads"`
	Rewards      []string `json:"rewards"`
	BonusLeads   int      `json:"bonusLeads"`
}
