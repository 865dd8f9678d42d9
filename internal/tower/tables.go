package tower

// House is one of the twelve celestial houses.
type House struct {
	Name    string `json:"name"`
	Meaning string `json:"meaning"`
	Element string `json:"element"`
}

// houses is keyed by house number 1–12.
var houses = map[int]House{
	1:  {Name: "بيت الذات والحياة", Meaning: "الشخصية والمظهر والحيوية العامة", Element: "نار"},
	2:  {Name: "بيت المال والممتلكات", Meaning: "الثروة والموارد والقيم المادية", Element: "أرض"},
	3:  {Name: "بيت الإخوة والتواصل", Meaning: "الأشقاء والتعلم والرسائل", Element: "هواء"},
	4:  {Name: "بيت البيت والجذور", Meaning: "العائلة والوطن والأصول", Element: "ماء"},
	5:  {Name: "بيت الحب والإبداع", Meaning: "الرومانسية والأطفال والفنون", Element: "نار"},
	6:  {Name: "بيت الصحة والعمل", Meaning: "الخدمة والصحة والروتين اليومي", Element: "أرض"},
	7:  {Name: "بيت الشراكة والزواج", Meaning: "العلاقات والشراكات والأعداء المكشوفين", Element: "هواء"},
	8:  {Name: "بيت التحول والأسرار", Meaning: "الموت والولادة الجديدة والميراث", Element: "ماء"},
	9:  {Name: "بيت الفلسفة والسفر", Meaning: "التعليم العالي والسفر البعيد والدين", Element: "نار"},
	10: {Name: "بيت المهنة والسمعة", Meaning: "المكانة الاجتماعية والمهنة والشهرة", Element: "أرض"},
	11: {Name: "بيت الأصدقاء والأماني", Meaning: "الأصدقاء والآمال والمجموعات", Element: "هواء"},
	12: {Name: "بيت الأسرار والروحانية", Meaning: "الأعداء الخفيين والروحانية والتضحية", Element: "ماء"},
}

// Zodiac is one of the twelve signs.
type Zodiac struct {
	Name    string `json:"name"`
	Element string `json:"element"`
	Quality string `json:"quality"`
	Ruler   string `json:"ruler"`
}

// zodiacSigns is keyed by sign number 1–12.
var zodiacSigns = map[int]Zodiac{
	1:  {Name: "الحمل", Element: "نار", Quality: "كاردينال", Ruler: "المريخ"},
	2:  {Name: "الثور", Element: "أرض", Quality: "ثابت", Ruler: "الزهرة"},
	3:  {Name: "الجوزاء", Element: "هواء", Quality: "متحول", Ruler: "عطارد"},
	4:  {Name: "السرطان", Element: "ماء", Quality: "كاردينال", Ruler: "القمر"},
	5:  {Name: "الأسد", Element: "نار", Quality: "ثابت", Ruler: "الشمس"},
	6:  {Name: "العذراء", Element: "أرض", Quality: "متحول", Ruler: "عطارد"},
	7:  {Name: "الميزان", Element: "هواء", Quality: "كاردينال", Ruler: "الزهرة"},
	8:  {Name: "العقرب", Element: "ماء", Quality: "ثابت", Ruler: "المريخ"},
	9:  {Name: "القوس", Element: "نار", Quality: "متحول", Ruler: "المشتري"},
	10: {Name: "الجدي", Element: "أرض", Quality: "كاردينال", Ruler: "زحل"},
	11: {Name: "الدلو", Element: "هواء", Quality: "ثابت", Ruler: "زحل"},
	12: {Name: "الحوت", Element: "ماء", Quality: "متحول", Ruler: "المشتري"},
}

// Planet describes one of the seven classical planets.
type Planet struct {
	Number    int    `json:"number"`
	Element   string `json:"element"`
	Quality   string `json:"quality"`
	Day       string `json:"day"`
	Metal     string `json:"metal"`
	Stone     string `json:"stone"`
	Influence string `json:"influence"`
}

// planets is keyed by the planet's Arabic name.
var planets = map[string]Planet{
	"الشمس": {
		Number: 1, Element: "نار", Quality: "قيادة وإشراق وحيوية",
		Day: "الأحد", Metal: "ذهب", Stone: "ياقوت أصفر",
		Influence: "القوة والسلطة والكرامة والنجاح",
	},
	"القمر": {
		Number: 2, Element: "ماء", Quality: "حدس وعاطفة وتقلب",
		Day: "الاثنين", Metal: "فضة", Stone: "لؤلؤ",
		Influence: "العواطف والحدس والأمومة والذاكرة",
	},
	"المريخ": {
		Number: 3, Element: "نار", Quality: "قوة وشجاعة وحرب",
		Day: "الثلاثاء", Metal: "حديد", Stone: "ياقوت أحمر",
		Influence: "الشجاعة والقتال والطاقة والغضب",
	},
	"عطارد": {
		Number: 4, Element: "هواء", Quality: "ذكاء وتواصل وتجارة",
		Day: "الأربعاء", Metal: "زئبق", Stone: "زمرد",
		Influence: "الذكاء والتواصل والتجارة والكتابة",
	},
	"المشتري": {
		Number: 5, Element: "نار", Quality: "حكمة وتوسع وعدالة",
		Day: "الخميس", Metal: "قصدير", Stone: "ياقوت أزرق",
		Influence: "الحكمة والعدالة والتوسع والحظ",
	},
	"الزهرة": {
		Number: 6, Element: "أرض", Quality: "جمال وحب وفن",
		Day: "الجمعة", Metal: "نحاس", Stone: "زمرد",
		Influence: "الحب والجمال والفن والمتعة",
	},
	"زحل": {
		Number: 7, Element: "أرض", Quality: "انضباط وصبر وحكمة",
		Day: "السبت", Metal: "رصاص", Stone: "عقيق أسود",
		Influence: "الانضباط والصبر والحكمة والقيود",
	},
}

// weekdayPlanets maps the Monday=0 weekday index to the day's ruling planet.
var weekdayPlanets = []string{"القمر", "المريخ", "عطارد", "المشتري", "الزهرة", "زحل", "الشمس"}

// weekdayNames maps the Monday=0 weekday index to the Arabic day name.
var weekdayNames = []string{"الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت", "الأحد"}
