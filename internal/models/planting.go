package models

const (
	PeriodBeginning = "Beginning"
	PeriodMiddle    = "Middle"
	PeriodEnd       = "End"
)

// Planting is one calendar entry: a seed or plant assigned to a
// year/month/period slot. Date holds the period label ("Beginning of March"),
// not a calendar date. CreatedAt is kept as the ISO-8601 string written at
// creation so archives round-trip byte-for-byte.
type Planting struct {
	ID          int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null;default:''" json:"description"`
	Image       string `gorm:"not null;default:''" json:"image"`
	Emoji       string `gorm:"not null;default:''" json:"emoji"`
	Date        string `gorm:"not null;index" json:"date"`
	Year        int    `gorm:"not null;index" json:"year"`
	CreatedAt   string `gorm:"not null;autoCreateTime:false" json:"createdAt"`

	// Position is the slot in the collection's insertion order. IDs are
	// normally monotonic, but an imported archive keeps its array order even
	// when its ids are not sorted, so order cannot be derived from ID alone.
	Position int64 `gorm:"not null;index" json:"-"`
}

func PeriodNames() []string {
	return []string{PeriodBeginning, PeriodMiddle, PeriodEnd}
}

func MonthNames() []string {
	return []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
}

// PlantEmojiPalette returns the fixed set of decoration glyphs, in palette
// order. Glyphs are distinct; the picker relies on that.
func PlantEmojiPalette() []string {
	return []string{
		"🌱", "🌿", "🌺", "🌸", "🌼", "🌻", "🌹", "🪴", "🌵",
		"🌴", "🌳", "🌲", "🍀", "🍁", "🍂", "🍃", "🌾", "🌷",
		"🪷", "🥀", "🌞", "🌝", "🍄", "🌰", "🥜", "🥕", "🥬",
		"🥦", "🧄", "🧅", "🌽",
	}
}
