package chatbot

import (
	"strings"
)

// rule pairs a set of trigger words with a canned response. Rules are
// evaluated in declaration order and the first match wins.
type rule struct {
	keywords []string
	response string
}

// rules is the fixed priority order: greeting, thanks, contact, named
// destination (handled separately), cancellation before generic booking,
// then the interest branches.
var rules = []rule{
	{
		keywords: []string{"hello", "hi", "hey", "namaste", "greetings"},
		response: "Namaste! Welcome to the tourism desk. Ask me about destinations, bookings or travel ideas across India.",
	},
	{
		keywords: []string{"thank", "thanks", "thankyou"},
		response: "You're most welcome! Happy to help you plan your trip.",
	},
	{
		keywords: []string{"contact", "phone", "email", "support", "helpline"},
		response: "You can reach our support desk at support@tourism.example or call +91-1800-000-000 between 9am and 6pm IST.",
	},
	{
		keywords: []string{"cancel", "cancellation", "cancelled", "refund"},
		response: "Bookings can be cancelled up to 48 hours before check-in for a full refund. Cancellations within 48 hours are charged one night per room.",
	},
	{
		keywords: []string{"book", "booking", "bookings", "reserve", "reservation", "hotel", "stay"},
		response: "To book a hotel, open the booking page, pick your hotel and dates, and confirm. Your confirmation reference arrives immediately.",
	},
	{
		keywords: []string{"adventure", "trek", "trekking", "hiking", "rafting", "paragliding"},
		response: "For adventure, consider Rishikesh for rafting, Manali for paragliding, or Ladakh for high-altitude treks.",
	},
	{
		keywords: []string{"wellness", "spa", "yoga", "ayurveda", "retreat"},
		response: "For wellness, Kerala's Ayurvedic retreats and Rishikesh's yoga ashrams are the classic choices.",
	},
	{
		keywords: []string{"wildlife", "safari", "tiger", "elephant", "bird", "birds"},
		response: "For wildlife, try Jim Corbett or Ranthambore for tigers, and Kaziranga for the one-horned rhino.",
	},
}

// destinationNotes answers direct questions about a supported destination.
// Checked after contact and before the booking branches.
var destinationNotes = map[string]string{
	"goa":       "Goa is India's beach paradise: Portuguese heritage, vibrant nightlife and water sports. Best visited November to February.",
	"kerala":    "Kerala, God's Own Country, offers backwaters, lush greenery and Ayurvedic treatments. Best visited September to March.",
	"rajasthan": "Rajasthan is the land of kings: majestic forts, palaces and desert landscapes. Best visited October to March.",
	"himachal":  "Himachal offers hill stations, trekking routes and snow-capped peaks. Best from March to June and September to November.",
	"kashmir":   "Kashmir is paradise on earth: stunning valleys, Dal Lake houseboats and Mughal gardens. Best visited April to October.",
	"hyderabad": "Hyderabad, the City of Pearls, blends ancient heritage with modern development. Famous for biryani and the Charminar.",
	"andaman":   "The Andaman Islands offer clear waters, coral reefs and quiet beaches. Best visited October to May.",
}

const fallbackResponse = "I'm not sure I understood that. You can ask me about destinations, bookings, cancellations, or adventure, wellness and wildlife trips."

// destinationRank fixes where the named-destination branch sits in the
// priority order: after contact, before the booking branches.
const destinationRank = 3

// Classify lower-cases and trims the query, then matches it against the
// ordered keyword rules. The first matching branch wins; anything
// unrecognised gets a generic clarification.
func Classify(query string) string {
	words := tokenize(query)
	for i, r := range rules {
		if i == destinationRank {
			for name, note := range destinationNotes {
				if words[name] {
					return note
				}
			}
		}
		for _, kw := range r.keywords {
			if words[kw] {
				return r.response
			}
		}
	}
	return fallbackResponse
}

// tokenize splits the query into a lowercase word set, stripping anything
// that is not a letter or digit so that punctuation never hides a keyword.
func tokenize(query string) map[string]bool {
	cleaned := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return ' '
	}, strings.ToLower(strings.TrimSpace(query)))
	words := make(map[string]bool)
	for _, w := range strings.Fields(cleaned) {
		words[w] = true
	}
	return words
}
