package chatbot

import "strings"

// maxRecommendations caps the recommendation list.
const maxRecommendations = 5

// interestDestinations is the fixed interest-to-destinations table.
var interestDestinations = map[string][]string{
	"beach":      {"Goa", "Andaman", "Kovalam"},
	"mountains":  {"Manali", "Shimla", "Leh"},
	"mountain":   {"Manali", "Shimla", "Leh"},
	"heritage":   {"Jaipur", "Hampi", "Agra"},
	"adventure":  {"Rishikesh", "Ladakh", "Manali"},
	"wellness":   {"Kerala", "Rishikesh", "Goa"},
	"wildlife":   {"Jim Corbett", "Ranthambore", "Kaziranga"},
	"backwaters": {"Alleppey", "Kumarakom"},
	"desert":     {"Jaisalmer", "Bikaner"},
}

// defaultRecommendations is returned when the caller supplies no interests.
var defaultRecommendations = []string{"Goa", "Jaipur", "Kerala", "Manali", "Rishikesh"}

// Recommend unions the destination lists of the supplied interests,
// removes duplicates and returns at most five names in first-seen order.
// Unknown interests contribute nothing.
func Recommend(interests []string) []string {
	if len(interests) == 0 {
		out := make([]string, len(defaultRecommendations))
		copy(out, defaultRecommendations)
		return out
	}
	seen := make(map[string]bool)
	var out []string
	for _, interest := range interests {
		key := strings.ToLower(strings.TrimSpace(interest))
		for _, dest := range interestDestinations[key] {
			if seen[dest] {
				continue
			}
			seen[dest] = true
			out = append(out, dest)
			if len(out) == maxRecommendations {
				return out
			}
		}
	}
	if out == nil {
		out = []string{}
	}
	return out
}
