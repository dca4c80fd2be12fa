package importer

import (
	"strings"

	"bangrak/model"
)

type matchScope int

const (
	scopeType matchScope = iota
	scopeNotes
	scopeBoth
)

// categoryRule maps keywords found in the source's type/notes columns to a
// category. Rules are evaluated top to bottom and the first match wins, so
// the order of this table is the tie-break policy: a row carrying both a
// cafe marker and a halal marker is a CAFE.
type categoryRule struct {
	scope    matchScope
	keywords []string
	category model.Category
}

var categoryRules = []categoryRule{
	{scopeBoth, []string{"คาเฟ่", "cafe", "เบเกอรี่", "เครื่องดื่ม"}, model.CategoryCafe},
	{scopeType, []string{"บาร์", "bar"}, model.CategoryBar},
	{scopeNotes, []string{"ฮาลาล", "halal"}, model.CategoryHalal},
	{scopeNotes, []string{"มังสวิรัติ", "เพื่อสุขภาพ", "vegan", "vegetarian"}, model.CategoryVegetarian},
	{scopeNotes, []string{"สุขภาพ", "ออร์แกนิค", "organic", "healthy"}, model.CategoryHealthy},
	{scopeBoth, []string{"อิตาเลี่ยน", "ฝรั่งเศส", "ยุโรป", "european", "italian", "french", "western"}, model.CategoryWestern},
	{scopeType, []string{"ญี่ปุ่น", "japanese"}, model.CategoryJapanese},
	{scopeType, []string{"จีน", "เกี๊ยว", "chinese"}, model.CategoryChinese},
	{scopeType, []string{"อินเดีย", "เลบานอน", "indian", "lebanese"}, model.CategorySouthAsian},
}

func classifyCategory(restaurantType, notes string) model.Category {
	typeLower := strings.ToLower(restaurantType)
	notesLower := strings.ToLower(notes)

	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if rule.scope != scopeNotes && strings.Contains(typeLower, kw) {
				return rule.category
			}
			if rule.scope != scopeType && strings.Contains(notesLower, kw) {
				return rule.category
			}
		}
	}
	return model.CategoryThai
}

var subDistrictRules = []struct {
	keyword     string
	subDistrict model.SubDistrict
}{
	{"มหาพฤฒาราม", model.SubDistrictMahaPhruettharam},
	{"สีลม", model.SubDistrictSilom},
	{"สุริยวงศ์", model.SubDistrictSuriyawong},
	{"บางรัก", model.SubDistrictBangRak},
	{"สี่พระยา", model.SubDistrictSiPhraya},
}

func classifySubDistrict(zone string) model.SubDistrict {
	zoneLower := strings.ToLower(zone)
	for _, rule := range subDistrictRules {
		if strings.Contains(zoneLower, rule.keyword) {
			return rule.subDistrict
		}
	}
	return model.SubDistrictSilom
}

// Free-text markers in the notes column that flag a long-established shop
// or a health-oriented one. Matched against the raw text, not lowercased:
// the Thai markers have no case and the one English marker appears
// lowercase in the source data.
var (
	heritageMarkers = []string{"เก่าแก่", "ร้านเก่า", "ตำนาน", "เปิดมานาน"}
	healthMarkers   = []string{"เพื่อสุขภาพ", "สุขภาพ", "ออร์แกนิค", "organic"}
)

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
