package extract

import "fmt"

func BuildExtractionPrompt(text string, hint string) string {
	hintLine := ""
	if hint != "" {
		hintLine = fmt.Sprintf("\nThe caller believes this document is of type %q.\n", hint)
	}

	return `
You are a data extraction engine for restaurant back-of-house documents.

Your task:
- Classify the document text as one of: sales, par_sheet, recipe, menu_item.
- Convert it into STRICT JSON in the schema below.
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.
- NO comments.
- NO extra text.

If you cannot classify the document, return this exact JSON:
{
  "type": "unknown"
}

Required JSON schema, by type:
{
  "type": "sales",
  "sales": [
    { "item": "string", "date": "YYYY-MM-DD", "quantity": number, "gross": number }
  ]
}
{
  "type": "par_sheet",
  "par_sheet": [
    { "item": "string", "day_of_week": number, "quantity": number }
  ]
}
{
  "type": "recipe",
  "recipe": {
    "name": "string",
    "ingredients": [ { "name": "string", "quantity": number, "unit": "string" } ],
    "method": "string",
    "yield": "string"
  }
}
{
  "type": "menu_item",
  "menu_items": [
    { "name": "string", "category": "string", "price": number }
  ]
}
` + hintLine + `
DOCUMENT TEXT:
` + text
}
