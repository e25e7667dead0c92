package dto

// BlogRequest is the body of POST /api/blogs and PUT /api/blogs/:id.
// Likes is a pointer so an omitted value can default to zero on create.
type BlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes"`
}
