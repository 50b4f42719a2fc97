package models

// DateLayout is the calendar-date format used for page dates.
// Dates are kept as zero-padded ISO strings so they compare
// lexicographically in both Go and SQL.
const DateLayout = "2006-01-02"

// BlockKind identifies the type of a content block
type BlockKind string

const (
	BlockHeader    BlockKind = "header"
	BlockParagraph BlockKind = "paragraph"
	BlockImage     BlockKind = "image"
)

// ValidBlockKinds defines allowed block kinds
var ValidBlockKinds = map[BlockKind]bool{
	BlockHeader:    true,
	BlockParagraph: true,
	BlockImage:     true,
}

// ValidImages is the closed set of image identifiers an image block may
// reference. Images are bundled with the front end; there is no upload.
var ValidImages = map[string]bool{
	"img1.png": true,
	"img2.png": true,
	"img3.png": true,
	"img4.png": true,
}

// Block is a typed unit of page content. For header and paragraph
// blocks the content is free text; for image blocks it is one of the
// identifiers in ValidImages.
type Block struct {
	Kind    BlockKind `json:"type"`
	Content string    `json:"content"`
}

// BlockList is the ordered block sequence of a page. The wrapping
// object matches the wire and storage encoding: {"blocks":[...]}.
// Order is render order and is preserved end-to-end.
type BlockList struct {
	Blocks []Block `json:"blocks"`
}

// Page represents a CMS page in the system
type Page struct {
	ID              int       `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Author          string    `json:"author" db:"author"` // a User.Name
	CreationDate    string    `json:"creationDate" db:"creation_date"`
	PublicationDate string    `json:"publicationDate,omitempty" db:"publication_date"` // empty = draft
	Blocks          BlockList `json:"blocks" db:"-"`                                   // stored as JSON string in DB
}

// IsDraft reports whether the page has no publication date.
func (p *Page) IsDraft() bool {
	return p.PublicationDate == ""
}

// MaxTitleLen bounds page titles, author names and the website name.
const MaxTitleLen = 160
