package llm

import "fmt"

const defaultTone = "standard"

const systemPrompt = "You are a helpful assistant that generates restaurant menus in JSON format."

// BuildMenuPrompt describes the desired menu shape for the model.
func BuildMenuPrompt(cuisine, tone string) string {
	if tone == "" {
		tone = defaultTone
	}

	return fmt.Sprintf(`Generate a menu for a %s restaurant with about 15 items spread across categories (Appetizer, Main, Dessert, Drink).
The tone should be %s.
Return a JSON object with the following structure:
{
  "name": "Menu Name",
  "description": "Menu Description",
  "items": [
    {
      "name": "Item Name",
      "description": "Brief 1-line description",
      "price": "10.00",
      "category": "Appetizer" | "Main" | "Dessert" | "Drink",
      "isBestseller": true/false,
      "isChefsPick": true/false,
      "isTodaysSpecial": true/false
    }
  ]
}
Rules: Mark 2-3 items as bestseller, 2 as chef's pick, 1-2 as today's special. Generate around 15 items total. Keep descriptions short (one line).
Do not include any markdown formatting.`, cuisine, tone)
}
