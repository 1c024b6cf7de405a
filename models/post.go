package models

// DefaultAuthor is recorded when a post is created without an author.
const DefaultAuthor = "Anonymous"

// Post is a single blog entry. The JSON keys match the on-disk layout;
// older files may omit author and likes, which readers must tolerate.
type Post struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
	Likes   int    `json:"likes"`
}

// Normalize fills in defaults for fields that may be absent on older
// records: an empty author becomes DefaultAuthor. Absent likes already
// unmarshal to 0.
func (p *Post) Normalize() {
	if p.Author == "" {
		p.Author = DefaultAuthor
	}
}
