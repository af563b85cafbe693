package db_models

// CityAlias is one row of the city image lookup table. Rows are matched in
// ascending Position order.
type CityAlias struct {
	BaseModel
	Alias    string `gorm:"not null;uniqueIndex"`
	AssetKey string `gorm:"not null;index"`
	Position int    `gorm:"not null;default:0;index"`
}

func (CityAlias) TableName() string {
	return "city_aliases"
}
