package course

type CreateCourseDTO struct {
	UserPrompt string `json:"userPrompt"`
}

// generatedPath is the shape the model returns for a learning path, already
// guaranteed by schema validation before unmarshalling.
type generatedPath struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Level       string           `json:"level"`
	Tags        []string         `json:"tags"`
	Topics      []generatedTopic `json:"topics"`
}

type generatedTopic struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}
