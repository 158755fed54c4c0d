package dto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/polkiloo/mmtc/internal/domain/model"
)

// Age accepts a whole number sent either bare (30) or quoted ("30").
type Age int

func (a *Age) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	raw = strings.TrimSpace(strings.Trim(raw, `"`))
	if raw == "" {
		*a = 0
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("age must be a whole number: %w", err)
	}
	*a = Age(n)
	return nil
}

// HelperRequest is the create/update payload.
type HelperRequest struct {
	Name        string   `json:"name" binding:"required"`
	DOB         string   `json:"DOB" binding:"required"`
	Age         Age      `json:"age"`
	EthnicGroup string   `json:"ethicGroup" binding:"required"`
	Nationality string   `json:"Nationality" binding:"required"`
	Skills      []string `json:"Skills"`
}

func (r HelperRequest) ToModel() model.Helper {
	return model.Helper{
		Name:        r.Name,
		DOB:         r.DOB,
		Age:         int(r.Age),
		EthnicGroup: r.EthnicGroup,
		Nationality: r.Nationality,
		Skills:      r.Skills,
	}
}

type HelpersResponse struct {
	Helpers []model.Helper `json:"helpers"`
}
