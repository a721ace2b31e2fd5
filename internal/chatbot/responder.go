package chatbot

import (
	"strings"
)

// Greeting is the assistant's opening message
const Greeting = "Hello! I'm your AgriAssist AI. I can help you with farming questions, crop management, pest control, weather insights, and more. How can I assist you today?"

// rule maps trigger keywords to a canned response. Matching is
// case-insensitive substring matching; the first matching rule wins.
type rule struct {
	keywords []string
	response string
}

var rules = []rule{
	{
		keywords: []string{"weather", "rain"},
		response: "Weather is crucial for farming! I recommend checking the Weather widget on your dashboard for real-time updates. For rain predictions, monitor the forecast regularly and plan your irrigation accordingly. Would you like tips on rain-dependent crops?",
	},
	{
		keywords: []string{"pest", "insect"},
		response: "Pest management is vital! Here are some tips:\n\n1. Regular monitoring and early detection\n2. Use integrated pest management (IPM) strategies\n3. Rotate crops to break pest cycles\n4. Maintain healthy soil to strengthen plants\n5. Use natural predators when possible\n\nWhat specific pest are you dealing with?",
	},
	{
		keywords: []string{"soil", "fertilizer"},
		response: "Soil health is the foundation of good farming! Consider:\n\n1. Test soil pH regularly (ideal: 6.0-7.0 for most crops)\n2. Add organic matter like compost\n3. Use crop rotation to maintain nutrients\n4. Apply fertilizers based on soil test results\n5. Consider cover crops in off-season\n\nWould you like specific fertilizer recommendations?",
	},
	{
		keywords: []string{"water", "irrigation"},
		response: "Efficient water management saves resources! Tips:\n\n1. Use drip irrigation for water efficiency\n2. Water early morning or evening\n3. Monitor soil moisture levels\n4. Mulch to retain moisture\n5. Collect rainwater when possible\n\nTrack your water usage in the Inventory section!",
	},
	{
		keywords: []string{"crop", "plant"},
		response: "Crop selection depends on several factors:\n\n1. Local climate and season\n2. Soil type (check your Land Management section)\n3. Water availability\n4. Market demand\n5. Your experience level\n\nUse the Crops Management module to track planting dates and expected harvests. What crop are you interested in?",
	},
	{
		keywords: []string{"disease", "fungus"},
		response: "Plant diseases need quick action! General advice:\n\n1. Remove infected plants immediately\n2. Improve air circulation\n3. Avoid overhead watering\n4. Use disease-resistant varieties\n5. Apply appropriate fungicides if needed\n\nEarly detection is key. Describe the symptoms you're seeing?",
	},
	{
		keywords: []string{"harvest", "yield"},
		response: "Maximize your harvest with these tips:\n\n1. Harvest at the right maturity stage\n2. Use proper harvesting techniques\n3. Handle crops carefully to avoid damage\n4. Store in appropriate conditions\n5. Track yields in your Crops Management section\n\nYour dashboard shows upcoming harvests. What crop are you harvesting?",
	},
	{
		keywords: []string{"organic", "chemical-free"},
		response: "Organic farming is wonderful! Key practices:\n\n1. Use compost and natural fertilizers\n2. Implement crop rotation\n3. Use biological pest control\n4. Avoid synthetic chemicals\n5. Maintain soil health naturally\n\nTrack your organic inputs in the Inventory section. Need specific organic solutions?",
	},
	{
		keywords: []string{"profit", "money", "finance"},
		response: "Financial management is crucial! Use your Financial Tracking module to:\n\n1. Record all expenses and revenue\n2. Track profit margins per crop\n3. Identify cost-saving opportunities\n4. Plan budgets for next season\n5. Monitor ROI on equipment\n\nWould you like tips on reducing costs or increasing revenue?",
	},
	{
		keywords: []string{"equipment", "machinery", "tool"},
		response: "Proper equipment maintenance saves money! Remember to:\n\n1. Follow regular maintenance schedules\n2. Store equipment properly\n3. Clean after each use\n4. Check for wear and damage\n5. Track maintenance in Tools Management\n\nYour dashboard alerts you when maintenance is due. What equipment do you need help with?",
	},
}

const fallback = "That's a great question! As your farming assistant, I can help with:\n\n• Crop selection and planning\n• Pest and disease management\n• Soil health and fertilization\n• Irrigation and water management\n• Weather-related advice\n• Organic farming practices\n• Financial planning\n• Equipment maintenance\n\nPlease ask me anything specific about your farm operations!"

// Responder produces deterministic advisor replies
type Responder struct{}

// NewResponder creates a responder
func NewResponder() *Responder {
	return &Responder{}
}

// Reply returns the canned response for the first rule whose keyword appears
// in the message, or the fallback when nothing matches
func (r *Responder) Reply(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.response
			}
		}
	}
	return fallback
}
