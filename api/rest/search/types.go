package search

// query parameters for /search
type Query struct {
	Query  string `form:"query"`
	Engine string `form:"engine"`
}
