package jafr

// referenceSequence is one of the fixed integer sequences the combined value
// is matched against. Declaration order is part of the contract: matches are
// reported in this order and ties within a sequence go to the earlier element.
type referenceSequence struct {
	name    string
	values  []int
	baseSig string
}

var referenceSequences = []referenceSequence{
	{
		name:    "fibonacci_spiritual",
		values:  []int{1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144, 233, 377, 610},
		baseSig: "اتصال بالتسلسل الروحي الذهبي - طاقة النمو الطبيعي",
	},
	{
		name:    "sacred_numbers",
		values:  []int{3, 7, 12, 19, 28, 40, 72, 99, 114, 786, 1001},
		baseSig: "رنين مع الأرقام المقدسة - بركة روحانية",
	},
	{
		name:    "prophetic_numbers",
		values:  []int{1, 4, 7, 10, 13, 16, 19, 22, 25, 28, 31, 34},
		baseSig: "اتصال بالأرقام النبوية - هداية إلهية",
	},
	{
		name:    "divine_attributes",
		values:  []int{99, 786, 1001, 1111, 1313, 1414, 1515, 1616, 1717, 1818, 1919},
		baseSig: "تجلي الأسماء الحسنى - رحمة إلهية",
	},
	{
		name:    "quranic_numbers",
		values:  []int{1, 6, 19, 74, 114, 286, 6236, 6348},
		baseSig: "ارتباط بالأرقام القرآنية - نور إلهي",
	},
}

func sequenceByName(name string) referenceSequence {
	for _, s := range referenceSequences {
		if s.name == name {
			return s
		}
	}
	return referenceSequence{}
}

// destinyPaths is indexed by combined value mod 9.
var destinyPaths = []string{
	"طريق العلم والحكمة - مسار العلماء والحكماء",
	"طريق القوة والسلطان - مسار القادة والحكام",
	"طريق الحب والجمال - مسار الفنانين والعشاق",
	"طريق الصبر والتحمل - مسار المجاهدين والصابرين",
	"طريق الإبداع والفن - مسار المبدعين والشعراء",
	"طريق الخدمة والعطاء - مسار الخادمين والمتصدقين",
	"طريق الروحانية والتصوف - مسار الأولياء والصوفية",
	"طريق التجارة والمال - مسار التجار والاقتصاديين",
	"طريق القيادة والريادة - مسار الرواد والمصلحين",
}

// lifeChallenges is indexed by the name value mod 8.
var lifeChallenges = []string{
	"تحدي الصبر والثبات - اختبار الإرادة والعزيمة",
	"تحدي الحكمة والتمييز - اختبار الفهم والبصيرة",
	"تحدي القوة والشجاعة - اختبار الجرأة والإقدام",
	"تحدي الحب والتسامح - اختبار القلب والرحمة",
	"تحدي الإبداع والابتكار - اختبار الخيال والإبداع",
	"تحدي العدالة والإنصاف - اختبار الضمير والأخلاق",
	"تحدي الروحانية والتطهر - اختبار النفس والروح",
	"تحدي المسؤولية والأمانة - اختبار الالتزام والوفاء",
}

// spiritualGifts is indexed by the mother's name value mod 8.
var spiritualGifts = []string{
	"هبة البصيرة والحدس - القدرة على رؤية الخفايا",
	"هبة الشفاء والطاقة - القدرة على العلاج والتأثير",
	"هبة الحكمة والفهم - القدرة على الإدراك العميق",
	"هبة القيادة والتأثير - القدرة على الإرشاد والتوجيه",
	"هبة الإبداع والفن - القدرة على الخلق والإبداع",
	"هبة التواصل والإقناع - القدرة على التأثير بالكلمة",
	"هبة الصبر والتحمل - القدرة على المقاومة والثبات",
	"هبة الحب والرحمة - القدرة على العطاء والحنان",
}

// strengthTypes is indexed by (combined mod 1000) mod 10.
var strengthTypes = []string{
	"قوة الحكمة والمعرفة",
	"قوة الشفاء والطاقة",
	"قوة البصيرة والحدس",
	"قوة التأثير والقيادة",
	"قوة الحماية والدفاع",
	"قوة الإبداع والخلق",
	"قوة الحب والرحمة",
	"قوة التطهير والتنقية",
	"قوة التحول والتغيير",
	"قوة الاتصال الإلهي",
}

// divineName pairs one of the beautiful names with its Kabir letter value.
// Scan order is the declared order.
type divineName struct {
	name  string
	value int
}

var divineNames = []divineName{
	{"الله", 66},
	{"الرحمن", 329},
	{"الرحيم", 289},
	{"الملك", 90},
	{"القدوس", 170},
	{"السلام", 131},
	{"المؤمن", 136},
	{"المهيمن", 145},
	{"العزيز", 94},
	{"الجبار", 206},
}

// PlanetaryDay describes the planetary energy of a weekday (Monday=1).
type PlanetaryDay struct {
	Planet  string `json:"planet"`
	Energy  string `json:"energy"`
	Element string `json:"element"`
}

// planetaryDays is keyed by ISO weekday 1–7 (Monday through Sunday).
var planetaryDays = map[int]PlanetaryDay{
	1: {Planet: "القمر", Energy: "طاقة العواطف والحدس", Element: "ماء"},
	2: {Planet: "المريخ", Energy: "طاقة القوة والشجاعة", Element: "نار"},
	3: {Planet: "عطارد", Energy: "طاقة الذكاء والتواصل", Element: "هواء"},
	4: {Planet: "المشتري", Energy: "طاقة الحكمة والتوسع", Element: "نار"},
	5: {Planet: "الزهرة", Energy: "طاقة الحب والجمال", Element: "أرض"},
	6: {Planet: "زحل", Energy: "طاقة الانضباط والحكمة", Element: "أرض"},
	7: {Planet: "الشمس", Energy: "طاقة القيادة والإشراق", Element: "نار"},
}

// ElementInfo is the elemental association selected by combined mod 4.
type ElementInfo struct {
	Name      string   `json:"name"`
	Qualities []string `json:"qualities"`
	Influence string   `json:"influence"`
	Season    string   `json:"season"`
	Direction string   `json:"direction"`
}

var elementalAssociations = []ElementInfo{
	{
		Name:      "النار",
		Qualities: []string{"الحماس", "القيادة", "الإبداع", "الطاقة"},
		Influence: "طاقة الفعل والحماس والقيادة الروحية",
		Season:    "الصيف",
		Direction: "الجنوب",
	},
	{
		Name:      "الماء",
		Qualities: []string{"العاطفة", "الحدس", "التدفق", "التكيف"},
		Influence: "طاقة العاطفة والحدس والشفاء الروحي",
		Season:    "الشتاء",
		Direction: "الغرب",
	},
	{
		Name:      "الهواء",
		Qualities: []string{"الفكر", "التواصل", "الحرية", "التغيير"},
		Influence: "طاقة الفكر والتواصل والحرية الروحية",
		Season:    "الربيع",
		Direction: "الشرق",
	},
	{
		Name:      "الأرض",
		Qualities: []string{"الاستقرار", "العملية", "الصبر", "البناء"},
		Influence: "طاقة الاستقرار والعملية والبناء الروحي",
		Season:    "الخريف",
		Direction: "الشمال",
	},
}

// TemporalInfluence is the weekday influence selected by combined mod 7.
type TemporalInfluence struct {
	Day    string `json:"day"`
	Planet string `json:"planet"`
	Energy string `json:"energy"`
	Color  string `json:"color"`
}

var temporalInfluences = []TemporalInfluence{
	{Day: "السبت", Planet: "زحل", Energy: "طاقة الحكمة والانضباط", Color: "أسود"},
	{Day: "الأحد", Planet: "الشمس", Energy: "طاقة القيادة والإشراق", Color: "ذهبي"},
	{Day: "الاثنين", Planet: "القمر", Energy: "طاقة العاطفة والحدس", Color: "فضي"},
	{Day: "الثلاثاء", Planet: "المريخ", Energy: "طاقة القوة والشجاعة", Color: "أحمر"},
	{Day: "الأربعاء", Planet: "عطارد", Energy: "طاقة الذكاء والتواصل", Color: "أخضر"},
	{Day: "الخميس", Planet: "المشتري", Energy: "طاقة الحكمة والتوسع", Color: "أزرق"},
	{Day: "الجمعة", Planet: "الزهرة", Energy: "طاقة الحب والجمال", Color: "وردي"},
}

// SpiritualLevel is selected by combined mod 9.
type SpiritualLevel struct {
	Level       string `json:"level"`
	Description string `json:"description"`
	Chakra      string `json:"chakra"`
}

var spiritualLevels = []SpiritualLevel{
	{Level: "المستوى المادي", Description: "التركيز على الأمور الدنيوية والمادية", Chakra: "الجذر"},
	{Level: "المستوى العاطفي", Description: "التركيز على المشاعر والعلاقات", Chakra: "العجز"},
	{Level: "المستوى الذهني", Description: "التركيز على الفكر والمنطق", Chakra: "الضفيرة الشمسية"},
	{Level: "المستوى الحدسي", Description: "التركيز على الحدس والبصيرة", Chakra: "القلب"},
	{Level: "المستوى الروحي", Description: "التركيز على الروحانية والتطور", Chakra: "الحلق"},
	{Level: "المستوى الكوني", Description: "التركيز على الوعي الكوني", Chakra: "العين الثالثة"},
	{Level: "المستوى الإلهي", Description: "التركيز على الاتصال الإلهي", Chakra: "التاج"},
	{Level: "المستوى المطلق", Description: "التركيز على الوحدة المطلقة", Chakra: "فوق التاج"},
	{Level: "المستوى الوحداني", Description: "التركيز على الفناء في الله", Chakra: "الوحدة الكاملة"},
}
