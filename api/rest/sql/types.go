package sql

// request payload for natural language to SQL generation
type Request struct {
	Query string `json:"query" example:"How many platinum users signed up last month?"`
}
