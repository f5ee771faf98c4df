package repository

import (
	"fmt"
)

const analystSystemPrompt = `You are a financial analyst AI providing stock investment advice. Analyze the provided data and user query to give actionable investment insights. Be concise but thorough.`

// BuildAnalysisPrompt assembles the user prompt for an analysis request.
// Stock and news payloads are embedded verbatim as JSON; absent payloads
// are marked "Not provided" so the model doesn't invent data.
func BuildAnalysisPrompt(query string, stockData, newsData []byte) string {
	stockStr := "Not provided"
	if len(stockData) > 0 {
		stockStr = string(stockData)
	}
	newsStr := "Not provided"
	if len(newsData) > 0 {
		newsStr = string(newsData)
	}

	promptTemplate := `User Query: "%s"

Stock Data: %s

Recent News: %s

Please provide:
1. Direct answer to the user's question
2. Key reasoning based on the data
3. Risk assessment
4. Confidence level (High/Medium/Low)

Keep response under 500 words and be actionable.`

	return fmt.Sprintf(promptTemplate, query, stockStr, newsStr)
}
