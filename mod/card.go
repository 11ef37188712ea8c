package mod

import "git.thinkinpower.net/cardcheck/card"

type CardRequest struct {
	Number string `json:"number"`
}

type CardResult struct {
	Normalized    string `json:"normalized"`
	ChecksumValid bool   `json:"checksum_valid"`
	Brand         string `json:"brand,omitempty"`         //Visa, MasterCard, Elo, etc
	BrandDisplay  string `json:"brand_display,omitempty"` //显示名称
	Status        string `json:"status"`                  //valid, checksum_failed, unknown_brand, invalid_format
	Message       string `json:"message"`
}

type BrandInfo struct {
	Name    string `json:"name"`
	Display string `json:"display"`
	Order   int    `json:"order"`
}

// NewCardResult converts a core result; display maps a brand to its label.
func NewCardResult(r card.Result, display func(string) string) CardResult {
	result := CardResult{
		Normalized:    r.Normalized,
		ChecksumValid: r.ChecksumValid,
		Brand:         r.Brand,
		Status:        r.Status.String(),
		Message:       r.Message,
	}
	if r.Identified() && display != nil {
		result.BrandDisplay = display(r.Brand)
	}
	return result
}
