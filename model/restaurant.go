package model

import "time"

type Category string

const (
	CategoryCafe       Category = "CAFE"
	CategoryBar        Category = "BAR"
	CategoryChinese    Category = "CHINESE_RESTAURANT"
	CategoryJapanese   Category = "JAPANESE_RESTAURANT"
	CategorySouthAsian Category = "SOUTH_ASIAN_RESTAURANT"
	CategoryWestern    Category = "WESTERN_RESTAURANT"
	CategoryVegetarian Category = "VEGETARIAN_RESTAURANT"
	CategoryHalal      Category = "HALAL_RESTAURANT"
	CategoryHealthy    Category = "HEALTHY_RESTAURANT"
	CategoryThai       Category = "THAI_RESTAURANT"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryCafe, CategoryBar, CategoryChinese, CategoryJapanese,
		CategorySouthAsian, CategoryWestern, CategoryVegetarian,
		CategoryHalal, CategoryHealthy, CategoryThai:
		return true
	}
	return false
}

type SubDistrict string

const (
	SubDistrictMahaPhruettharam SubDistrict = "MAHA_PHRUETTHARAM"
	SubDistrictSilom            SubDistrict = "SILOM"
	SubDistrictSuriyawong       SubDistrict = "SURIYAWONG"
	SubDistrictBangRak          SubDistrict = "BANG_RAK"
	SubDistrictSiPhraya         SubDistrict = "SI_PHRAYA"
)

func (s SubDistrict) Valid() bool {
	switch s {
	case SubDistrictMahaPhruettharam, SubDistrictSilom, SubDistrictSuriyawong,
		SubDistrictBangRak, SubDistrictSiPhraya:
		return true
	}
	return false
}

// Restaurant is the single persistent entity of the directory. PinX/PinY
// locate the marker on the map overlay image; they are not geographic
// coordinates and carry no range check.
type Restaurant struct {
	ID                 uint        `json:"id" gorm:"primaryKey"`
	NameTh             string      `json:"nameTh" gorm:"not null"`
	NameEn             string      `json:"nameEn"`
	DescriptionTh      string      `json:"descriptionTh" gorm:"type:text;not null"`
	DescriptionEn      string      `json:"descriptionEn" gorm:"type:text"`
	Category           Category    `json:"category" gorm:"not null"`
	SubDistrict        SubDistrict `json:"subDistrict" gorm:"not null"`
	Address            string      `json:"address"`
	GoogleMapsUrl      string      `json:"googleMapsUrl" gorm:"not null"`
	Latitude           *float64    `json:"latitude"`
	Longitude          *float64    `json:"longitude"`
	PinX               float64     `json:"pinX" gorm:"column:pin_x;not null"`
	PinY               float64     `json:"pinY" gorm:"column:pin_y;not null"`
	ImageUrl           string      `json:"imageUrl"`
	ImageUrls          StringList  `json:"imageUrls" gorm:"type:text"`
	HealthFriendly     bool        `json:"healthFriendly" gorm:"not null;default:false"`
	HeritageRestaurant bool        `json:"heritageRestaurant" gorm:"not null;default:false"`
	LicenseVolume      string      `json:"licenseVolume"`
	LicenseNumber      string      `json:"licenseNumber"`
	LicenseYear        string      `json:"licenseYear"`
	LicenseHolder      string      `json:"licenseHolder"`
	CreatedAt          time.Time   `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt          time.Time   `json:"updatedAt" gorm:"autoUpdateTime"`
}
