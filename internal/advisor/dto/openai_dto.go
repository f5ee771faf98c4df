package dto

// Message is a single chat message in an OpenAI request or response.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OpenAIReq is the request payload for the OpenAI chat completion API.
type OpenAIReq struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

// OpenAIRes is the response from the OpenAI chat completion API.
type OpenAIRes struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int     `json:"index"`
		Message Message `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
