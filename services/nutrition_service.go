package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/purushotham2628/fitness-diet-app/utils"
)

const nutritionixSearchURL = "https://trackapi.nutritionix.com/v2/search/instant"

// NutritionService looks up foods against the Nutritionix instant-search API.
// Without credentials, or when the upstream misbehaves, it degrades to a
// single synthesized record instead of failing — the food picker should keep
// working offline.
type NutritionService struct {
	appID     string
	appKey    string
	searchURL string
	client    *http.Client
}

func NewNutritionService(appID, appKey string) *NutritionService {
	return &NutritionService{
		appID:     appID,
		appKey:    appKey,
		searchURL: nutritionixSearchURL,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

type Food struct {
	FoodName            string  `json:"food_name"`
	NfCalories          float64 `json:"nf_calories"`
	NfProtein           float64 `json:"nf_protein"`
	NfTotalCarbohydrate float64 `json:"nf_total_carbohydrate"`
	NfTotalFat          float64 `json:"nf_total_fat"`
	NfDietaryFiber      float64 `json:"nf_dietary_fiber"`
}

type nutritionixResponse struct {
	Common []Food `json:"common"`
}

// Search never returns an error to callers: any upstream problem falls back
// to synthesized data with the same shape.
func (s *NutritionService) Search(ctx context.Context, query string) []Food {
	if s.appID == "" || s.appKey == "" {
		return s.synthesize(query)
	}

	foods, err := s.search(ctx, query)
	if err != nil {
		utils.L.Warn("nutritionix lookup failed, serving synthesized data",
			zap.String("query", query), zap.Error(err))
		return s.synthesize(query)
	}
	if foods == nil {
		foods = []Food{}
	}
	return foods
}

func (s *NutritionService) search(ctx context.Context, query string) ([]Food, error) {
	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.searchURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-app-id", s.appID)
	req.Header.Set("x-app-key", s.appKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call nutritionix: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read nutritionix response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nutritionix API error %d: %s", resp.StatusCode, string(body))
	}

	var nr nutritionixResponse
	if err := json.Unmarshal(body, &nr); err != nil {
		return nil, fmt.Errorf("failed to parse nutritionix JSON: %w", err)
	}
	return nr.Common, nil
}

// synthesize fabricates one plausible record labeled with the query itself.
func (s *NutritionService) synthesize(query string) []Food {
	return []Food{{
		FoodName:            strings.ToLower(query),
		NfCalories:          float64(rand.Intn(300) + 100),
		NfProtein:           float64(rand.Intn(20) + 5),
		NfTotalCarbohydrate: float64(rand.Intn(40) + 10),
		NfTotalFat:          float64(rand.Intn(15) + 2),
		NfDietaryFiber:      float64(rand.Intn(5) + 1),
	}}
}
