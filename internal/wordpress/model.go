package wordpress

// Raw WordPress REST payloads. Only the fields this service reads are
// declared; everything else upstream sends is ignored on decode.

type wpRendered struct {
	Rendered string `json:"rendered"`
}

type wpPost struct {
	ID            int         `json:"id"`
	Date          string      `json:"date"`
	Modified      string      `json:"modified"`
	Slug          string      `json:"slug"`
	Status        string      `json:"status"`
	Title         wpRendered  `json:"title"`
	Content       wpRendered  `json:"content"`
	Excerpt       wpRendered  `json:"excerpt"`
	Author        int         `json:"author"`
	FeaturedMedia int         `json:"featured_media"`
	Categories    []int       `json:"categories"`
	Tags          []int       `json:"tags"`
	Embedded      *wpEmbedded `json:"_embedded"`
}

type wpEmbedded struct {
	Author        []wpAuthor `json:"author"`
	FeaturedMedia []wpMedia  `json:"wp:featuredmedia"`
	Terms         [][]wpTerm `json:"wp:term"`
}

type wpAuthor struct {
	ID         int               `json:"id"`
	Name       string            `json:"name"`
	Slug       string            `json:"slug"`
	AvatarURLs map[string]string `json:"avatar_urls"`
}

type wpMedia struct {
	ID           int    `json:"id"`
	SourceURL    string `json:"source_url"`
	AltText      string `json:"alt_text"`
	MediaDetails struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"media_details"`
}

type wpTerm struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Taxonomy string `json:"taxonomy"`
}

// Stable internal shapes, recomputed from upstream on every request.

type Author struct {
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Avatar string `json:"avatar"`
}

type Image struct {
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type Term struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Post struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Content       string `json:"content"`
	Excerpt       string `json:"excerpt"`
	Author        Author `json:"author"`
	PublishedAt   string `json:"publishedAt"`
	UpdatedAt     string `json:"updatedAt"`
	FeaturedImage *Image `json:"featuredImage,omitempty"`
	Categories    []Term `json:"categories"`
	Tags          []Term `json:"tags"`
	ReadingTime   int    `json:"readingTime"`
}

type PostPage struct {
	Posts      []Post `json:"posts"`
	TotalPages int    `json:"totalPages"`
	Total      int    `json:"total"`
}

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

type Tag struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}
