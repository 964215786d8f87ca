package models

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Category là danh mục sản phẩm của một giao dịch.
// Mỗi giá trị có hai dạng hiển thị: slug dùng trên URL và nhãn chuẩn lưu trong DB.
type Category int

const (
	CategoryClothing Category = iota + 1
	CategoryShoes
	CategoryAccessories
	CategoryJewellery
	CategoryBags
	CategoryDesignAndDecoration
	CategoryBoys
	CategoryGirls
	CategorySportAndLeisure
	CategoryHighTech
	CategoryArtAndCulture
	CategoryPetAccessories
)

type categoryForms struct {
	slug  string
	label string
}

// Bảng duy nhất giữ cả hai dạng của mỗi danh mục, theo thứ tự khai báo.
var categoryTable = map[Category]categoryForms{
	CategoryClothing:            {"clothing", "clothing"},
	CategoryShoes:               {"shoes", "shoes"},
	CategoryAccessories:         {"accessories", "accessories"},
	CategoryJewellery:           {"jewellery", "jewellery"},
	CategoryBags:                {"bags", "bags"},
	CategoryDesignAndDecoration: {"design_and_decoration", "design & decoration"},
	CategoryBoys:                {"boys", "boys"},
	CategoryGirls:               {"girls", "girls"},
	CategorySportAndLeisure:     {"sport_and_leisure", "sport & leisure"},
	CategoryHighTech:            {"high_tech", "high-tech"},
	CategoryArtAndCulture:       {"art_and_culture", "art & culture"},
	CategoryPetAccessories:      {"pet_accessories", "pet accessories"},
}

var (
	categoriesBySlug  = make(map[string]Category, len(categoryTable))
	categoriesByLabel = make(map[string]Category, len(categoryTable))
)

func init() {
	for c, f := range categoryTable {
		categoriesBySlug[f.slug] = c
		categoriesByLabel[f.label] = c
	}
}

// ErrUnknownCategory được trả về khi chuỗi không khớp danh mục nào
type ErrUnknownCategory struct {
	Value string
}

func (e *ErrUnknownCategory) Error() string {
	return fmt.Sprintf("unknown category %q", e.Value)
}

// AllCategories trả về toàn bộ danh mục theo thứ tự khai báo
func AllCategories() []Category {
	all := make([]Category, 0, len(categoryTable))
	for c := CategoryClothing; c <= CategoryPetAccessories; c++ {
		all = append(all, c)
	}
	return all
}

// AllCategorySlugs trả về slug của toàn bộ danh mục
func AllCategorySlugs() []string {
	slugs := make([]string, 0, len(categoryTable))
	for _, c := range AllCategories() {
		slugs = append(slugs, c.Slug())
	}
	return slugs
}

func (c Category) Valid() bool {
	_, ok := categoryTable[c]
	return ok
}

// Slug là dạng dùng trong query string, ví dụ "high_tech"
func (c Category) Slug() string {
	return categoryTable[c].slug
}

// Label là dạng chuẩn lưu trong cột CATEGORY, ví dụ "high-tech"
func (c Category) Label() string {
	return categoryTable[c].label
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return c.Label()
}

func CategoryFromSlug(slug string) (Category, bool) {
	c, ok := categoriesBySlug[slug]
	return c, ok
}

func CategoryFromLabel(label string) (Category, bool) {
	c, ok := categoriesByLabel[label]
	return c, ok
}

// ParseCategory chấp nhận cả slug lẫn nhãn chuẩn, không phân biệt hoa thường
func ParseCategory(value string) (Category, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if c, ok := CategoryFromSlug(v); ok {
		return c, nil
	}
	if c, ok := CategoryFromLabel(v); ok {
		return c, nil
	}
	return 0, &ErrUnknownCategory{Value: value}
}

// Value lưu nhãn chuẩn xuống DB
func (c Category) Value() (driver.Value, error) {
	if !c.Valid() {
		return nil, &ErrUnknownCategory{Value: c.String()}
	}
	return c.Label(), nil
}

// Scan đọc nhãn chuẩn từ DB
func (c *Category) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*c = 0
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Category", src)
	}

	parsed, err := ParseCategory(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Category) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, &ErrUnknownCategory{Value: c.String()}
	}
	return json.Marshal(c.Label())
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseCategory(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
