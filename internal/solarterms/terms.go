package solarterms

import "github.com/pders01/solarterms/internal/models"

// Term keys
const (
	XiaoHan     = "xiaoHan"
	DaHan       = "daHan"
	LiChun      = "liChun"
	YuShui      = "yuShui"
	JingZhe     = "jingZhe"
	ChunFen     = "chunFen"
	QingMing    = "qingMing"
	GuYu        = "guYu"
	LiXia       = "liXia"
	XiaoMan     = "xiaoMan"
	MangZhong   = "mangZhong"
	XiaZhi      = "xiaZhi"
	XiaoShu     = "xiaoShu"
	DaShu       = "daShu"
	LiQiu       = "liQiu"
	ChuShu      = "chuShu"
	BaiLu       = "baiLu"
	QiuFen      = "qiuFen"
	HanLu       = "hanLu"
	ShuangJiang = "shuangJiang"
	LiDong      = "liDong"
	XiaoXue     = "xiaoXue"
	DaXue       = "daXue"
	DongZhi     = "dongZhi"
)

// TermCount is the number of solar terms in a year
const TermCount = 24

// januaryTerms open every year record. They belong to the cycle that
// started with the previous year's Li Chun.
var januaryTerms = []models.TermDefinition{
	{
		Key:                XiaoHan,
		Name:               "Xiao Han (小寒)",
		EnglishName:        "Slight Cold",
		Typical:            "January 5-6",
		MarksMonthBoundary: true,
		SolarMonthNumber:   12,
		Description:        "Cold intensifies",
		Month:              1,
		Day:                6,
		Category:           models.CategoryMajor,
	},
	{
		Key:         DaHan,
		Name:        "Da Han (大寒)",
		EnglishName: "Major Cold",
		Typical:     "January 20-21",
		Description: "Coldest period of the year",
		Month:       1,
		Day:         20,
		Category:    models.CategoryMinor,
	},
}

// yearTerms are the remaining 22 terms in calendar order
var yearTerms = []models.TermDefinition{
	{
		Key:                LiChun,
		Name:               "Li Chun (立春)",
		EnglishName:        "Start of Spring",
		Typical:            "February 4-5",
		MarksMonthBoundary: true,
		SolarMonthNumber:   1,
		Description:        "Beginning of spring and the solar new year",
		Month:              2,
		Day:                4,
		Category:           models.CategoryMajor,
	},
	{
		Key:         YuShui,
		Name:        "Yu Shui (雨水)",
		EnglishName: "Rain Water",
		Typical:     "February 18-19",
		Description: "Snow melts into rain",
		Month:       2,
		Day:         19,
		Category:    models.CategoryMinor,
	},
	{
		Key:                JingZhe,
		Name:               "Jing Zhe (惊蛰)",
		EnglishName:        "Awakening of Insects",
		Typical:            "March 5-6",
		MarksMonthBoundary: true,
		SolarMonthNumber:   2,
		Description:        "Insects awaken from hibernation",
		Month:              3,
		Day:                6,
		Category:           models.CategoryMajor,
	},
	{
		Key:         ChunFen,
		Name:        "Chun Fen (春分)",
		EnglishName: "Spring Equinox",
		Typical:     "March 20-21",
		Description: "Day and night are equal length",
		Month:       3,
		Day:         21,
		Category:    models.CategoryMinor,
	},
	{
		Key:                QingMing,
		Name:               "Qing Ming (清明)",
		EnglishName:        "Pure Brightness",
		Typical:            "April 4-5",
		MarksMonthBoundary: true,
		SolarMonthNumber:   3,
		Description:        "Clear and bright weather arrives",
		Month:              4,
		Day:                5,
		Category:           models.CategoryMajor,
	},
	{
		Key:         GuYu,
		Name:        "Gu Yu (谷雨)",
		EnglishName: "Grain Rain",
		Typical:     "April 19-20",
		Description: "Rain nourishes grain crops",
		Month:       4,
		Day:         20,
		Category:    models.CategoryMinor,
	},
	{
		Key:                LiXia,
		Name:               "Li Xia (立夏)",
		EnglishName:        "Start of Summer",
		Typical:            "May 5-6",
		MarksMonthBoundary: true,
		SolarMonthNumber:   4,
		Description:        "Beginning of summer",
		Month:              5,
		Day:                6,
		Category:           models.CategoryMajor,
	},
	{
		Key:         XiaoMan,
		Name:        "Xiao Man (小满)",
		EnglishName: "Grain Buds",
		Typical:     "May 20-21",
		Description: "Grains begin to ripen",
		Month:       5,
		Day:         21,
		Category:    models.CategoryMinor,
	},
	{
		Key:                MangZhong,
		Name:               "Mang Zhong (芒种)",
		EnglishName:        "Grain in Ear",
		Typical:            "June 5-6",
		MarksMonthBoundary: true,
		SolarMonthNumber:   5,
		Description:        "Wheat ripens and grains are planted",
		Month:              6,
		Day:                6,
		Category:           models.CategoryMajor,
	},
	{
		Key:         XiaZhi,
		Name:        "Xia Zhi (夏至)",
		EnglishName: "Summer Solstice",
		Typical:     "June 21-22",
		Description: "Longest day of the year",
		Month:       6,
		Day:         22,
		Category:    models.CategoryMinor,
	},
	{
		Key:                XiaoShu,
		Name:               "Xiao Shu (小暑)",
		EnglishName:        "Slight Heat",
		Typical:            "July 7-8",
		MarksMonthBoundary: true,
		SolarMonthNumber:   6,
		Description:        "Temperature rises significantly",
		Month:              7,
		Day:                7,
		Category:           models.CategoryMajor,
	},
	{
		Key:         DaShu,
		Name:        "Da Shu (大暑)",
		EnglishName: "Major Heat",
		Typical:     "July 22-23",
		Description: "Hottest period of the year",
		Month:       7,
		Day:         23,
		Category:    models.CategoryMinor,
	},
	{
		Key:                LiQiu,
		Name:               "Li Qiu (立秋)",
		EnglishName:        "Start of Autumn",
		Typical:            "August 7-8",
		MarksMonthBoundary: true,
		SolarMonthNumber:   7,
		Description:        "Beginning of autumn",
		Month:              8,
		Day:                8,
		Category:           models.CategoryMajor,
	},
	{
		Key:         ChuShu,
		Name:        "Chu Shu (处暑)",
		EnglishName: "End of Heat",
		Typical:     "August 22-23",
		Description: "Hot period comes to an end",
		Month:       8,
		Day:         23,
		Category:    models.CategoryMinor,
	},
	{
		Key:                BaiLu,
		Name:               "Bai Lu (白露)",
		EnglishName:        "White Dew",
		Typical:            "September 7-8",
		MarksMonthBoundary: true,
		SolarMonthNumber:   8,
		Description:        "Dew forms on grass",
		Month:              9,
		Day:                8,
		Category:           models.CategoryMajor,
	},
	{
		Key:         QiuFen,
		Name:        "Qiu Fen (秋分)",
		EnglishName: "Autumn Equinox",
		Typical:     "September 22-23",
		Description: "Day and night are equal length",
		Month:       9,
		Day:         23,
		Category:    models.CategoryMinor,
	},
	{
		Key:                HanLu,
		Name:               "Han Lu (寒露)",
		EnglishName:        "Cold Dew",
		Typical:            "October 8-9",
		MarksMonthBoundary: true,
		SolarMonthNumber:   9,
		Description:        "Dew becomes cold",
		Month:              10,
		Day:                8,
		Category:           models.CategoryMajor,
	},
	{
		Key:         ShuangJiang,
		Name:        "Shuang Jiang (霜降)",
		EnglishName: "Descent of Frost",
		Typical:     "October 23-24",
		Description: "First frost appears",
		Month:       10,
		Day:         24,
		Category:    models.CategoryMinor,
	},
	{
		Key:                LiDong,
		Name:               "Li Dong (立冬)",
		EnglishName:        "Start of Winter",
		Typical:            "November 7-8",
		MarksMonthBoundary: true,
		SolarMonthNumber:   10,
		Description:        "Beginning of winter",
		Month:              11,
		Day:                8,
		Category:           models.CategoryMajor,
	},
	{
		Key:         XiaoXue,
		Name:        "Xiao Xue (小雪)",
		EnglishName: "Slight Snow",
		Typical:     "November 22-23",
		Description: "First snow begins to fall",
		Month:       11,
		Day:         23,
		Category:    models.CategoryMinor,
	},
	{
		Key:                DaXue,
		Name:               "Da Xue (大雪)",
		EnglishName:        "Major Snow",
		Typical:            "December 7-8",
		MarksMonthBoundary: true,
		SolarMonthNumber:   11,
		Description:        "Heavy snowfall begins",
		Month:              12,
		Day:                7,
		Category:           models.CategoryMajor,
	},
	{
		Key:         DongZhi,
		Name:        "Dong Zhi (冬至)",
		EnglishName: "Winter Solstice",
		Typical:     "December 21-22",
		Description: "Shortest day of the year",
		Month:       12,
		Day:         22,
		Category:    models.CategoryMinor,
	},
}

// Terms returns all 24 definitions in year record order: the two
// January terms, then the rest in calendar order
func Terms() []models.TermDefinition {
	terms := make([]models.TermDefinition, 0, TermCount)
	terms = append(terms, januaryTerms...)
	terms = append(terms, yearTerms...)
	return terms
}

// TermKeys returns the 24 keys in year record order
func TermKeys() []string {
	keys := make([]string, 0, TermCount)
	for _, t := range Terms() {
		keys = append(keys, t.Key)
	}
	return keys
}

// Lookup finds a term definition by key
func Lookup(key string) (models.TermDefinition, bool) {
	for _, t := range Terms() {
		if t.Key == key {
			return t, true
		}
	}
	return models.TermDefinition{}, false
}

// MajorTerms returns the 12 month-boundary terms ordered by solar month,
// Li Chun first and Xiao Han last
func MajorTerms() []models.TermDefinition {
	var major []models.TermDefinition
	for _, t := range yearTerms {
		if t.IsMajor() {
			major = append(major, t)
		}
	}
	for _, t := range januaryTerms {
		if t.IsMajor() {
			major = append(major, t)
		}
	}
	return major
}

// MinorTerms returns the 12 in-between terms, Yu Shui first and Da Han last
func MinorTerms() []models.TermDefinition {
	var minor []models.TermDefinition
	for _, t := range yearTerms {
		if !t.IsMajor() {
			minor = append(minor, t)
		}
	}
	for _, t := range januaryTerms {
		if !t.IsMajor() {
			minor = append(minor, t)
		}
	}
	return minor
}
