package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

type ReviewStatus struct {
	RestaurantReviewed FlexibleBool `json:"restaurantReviewed"`
	DeliveryReviewed   FlexibleBool `json:"deliveryReviewed"`
}

// NeedsRating reports whether the customer still has something left to rate.
func (rs ReviewStatus) NeedsRating() bool {
	return !bool(rs.RestaurantReviewed) || !bool(rs.DeliveryReviewed)
}

// FlexibleBool accepts booleans, numbers and strings. Non-zero numbers,
// "true" and "1" decode to true, everything else to false.
type FlexibleBool bool

func (b *FlexibleBool) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case bool:
		*b = FlexibleBool(v)
	case float64:
		*b = v != 0
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		if s == "true" {
			*b = true
			return nil
		}

		n, err := strconv.ParseFloat(s, 64)
		*b = FlexibleBool(err == nil && n != 0)
	default:
		*b = false
	}

	return nil
}
