package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// BlockType discriminates the block union
type BlockType string

// Block kinds understood by the editor and renderer
const (
	BlockHeading      BlockType = "heading"
	BlockParagraph    BlockType = "paragraph"
	BlockImage        BlockType = "image"
	BlockCode         BlockType = "code"
	BlockQuote        BlockType = "blockquote"
	BlockKeyTakeaways BlockType = "keytakeaways"
	BlockTOC          BlockType = "toc"
	BlockSponsored    BlockType = "sponsored"
)

// ValidBlockType reports whether t is one of the known block kinds
func ValidBlockType(t BlockType) bool {
	switch t {
	case BlockHeading, BlockParagraph, BlockImage, BlockCode,
		BlockQuote, BlockKeyTakeaways, BlockTOC, BlockSponsored:
		return true
	}
	return false
}

// SponsoredData is the nested payload of a sponsored block.
// Absent fields default to empty strings; the renderer omits any
// sub-element whose source field is empty.
type SponsoredData struct {
	Heading    string `json:"heading"`
	Paragraph  string `json:"paragraph"`
	ImageURL   string `json:"imageUrl"`
	ButtonText string `json:"buttonText"`
	ButtonLink string `json:"buttonLink"`
}

// Block is one unit of content within a post. The id is unique within
// a post's block list and stable across reorders. List order is display
// order.
type Block struct {
	ID      string    `json:"id"`
	Type    BlockType `json:"type"`
	Content string    `json:"content"`
	// Level is 1..3, headings only
	Level     int            `json:"level,omitempty"`
	Sponsored *SponsoredData `json:"sponsoredData,omitempty"`
}

// BlockList is the whole ordered block sequence of a post, stored as
// one jsonb value (never normalized into rows).
type BlockList []Block

// Value implements driver.Valuer for jsonb storage
func (b BlockList) Value() (driver.Value, error) {
	if b == nil {
		b = BlockList{}
	}
	return json.Marshal(b)
}

// Scan implements sql.Scanner for jsonb storage
func (b *BlockList) Scan(value interface{}) error {
	if value == nil {
		*b = BlockList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for BlockList")
	}

	return json.Unmarshal(data, b)
}

// Post is one blog post: metadata plus an ordered block sequence
type Post struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(255)" json:"title"`
	Slug        string    `gorm:"column:slug;type:varchar(255);uniqueIndex" json:"slug"`
	Category    string    `gorm:"column:category;type:varchar(100)" json:"category"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Date        string    `gorm:"column:date;type:varchar(32)" json:"date"`
	ReadTime    string    `gorm:"column:read_time;type:varchar(32)" json:"read_time"`
	HeaderImage string    `gorm:"column:header_image;type:varchar(500)" json:"header_image"`
	Blocks      BlockList `gorm:"column:blocks;type:jsonb" json:"blocks"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName returns the table name for Post
func (Post) TableName() string {
	return "posts"
}

// PostListItem is a post without its block sequence, for list views
type PostListItem struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Date        string `json:"date"`
	ReadTime    string `json:"read_time"`
	HeaderImage string `json:"header_image"`
}

// ToListItem strips the block sequence for list responses
func (p *Post) ToListItem() *PostListItem {
	return &PostListItem{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Category:    p.Category,
		Description: p.Description,
		Date:        p.Date,
		ReadTime:    p.ReadTime,
		HeaderImage: p.HeaderImage,
	}
}

// SavePostRequest is the admin editor save payload. ID zero means
// insert; non-zero replaces the stored record wholesale.
type SavePostRequest struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	ReadTime    string    `json:"read_time"`
	HeaderImage string    `json:"header_image"`
	Blocks      BlockList `json:"blocks"`
}

// ToPost converts the save payload into a Post record
func (r *SavePostRequest) ToPost() *Post {
	blocks := r.Blocks
	if blocks == nil {
		blocks = BlockList{}
	}
	return &Post{
		ID:          r.ID,
		Title:       r.Title,
		Slug:        r.Slug,
		Category:    r.Category,
		Description: r.Description,
		Date:        r.Date,
		ReadTime:    r.ReadTime,
		HeaderImage: r.HeaderImage,
		Blocks:      blocks,
	}
}
