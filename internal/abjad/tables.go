package abjad

// Interpretation is the static descriptive record for a reduced value 1–9.
type Interpretation struct {
	Meaning   string   `json:"meaning"`
	Traits    []string `json:"traits"`
	Spiritual string   `json:"spiritual"`
	Element   string   `json:"element"`
	Planet    string   `json:"planet"`
}

// interpretations maps each reduced value 1–9 to its record. Indexed only
// with values produced by numerology.Reduce, so every lookup hits.
var interpretations = map[int]Interpretation{
	1: {
		Meaning:   "الوحدة والقيادة - رقم الله الواحد",
		Traits:    []string{"قيادي", "مبدع", "مستقل", "رائد"},
		Spiritual: "طاقة الخلق والبداية، اتصال بالوحدانية الإلهية",
		Element:   "نار",
		Planet:    "الشمس",
	},
	2: {
		Meaning:   "التعاون والشراكة - رقم التوازن",
		Traits:    []string{"متعاون", "دبلوماسي", "حساس", "متوازن"},
		Spiritual: "طاقة التوازن والانسجام، الثنائية في الخلق",
		Element:   "ماء",
		Planet:    "القمر",
	},
	3: {
		Meaning:   "الإبداع والتعبير - رقم التثليث المقدس",
		Traits:    []string{"مبدع", "فني", "متواصل", "متفائل"},
		Spiritual: "طاقة الإبداع والتجلي، الثالوث الكوني",
		Element:   "هواء",
		Planet:    "المشتري",
	},
	4: {
		Meaning:   "الاستقرار والعمل - رقم الأركان الأربعة",
		Traits:    []string{"منظم", "عملي", "مثابر", "موثوق"},
		Spiritual: "طاقة البناء والاستقرار، الأركان الأربعة للكون",
		Element:   "أرض",
		Planet:    "عطارد",
	},
	5: {
		Meaning:   "الحرية والتغيير - رقم الحواس الخمس",
		Traits:    []string{"حر", "مغامر", "فضولي", "متحرر"},
		Spiritual: "طاقة التحرر والاستكشاف، الحواس الخمس",
		Element:   "نار",
		Planet:    "المريخ",
	},
	6: {
		Meaning:   "المسؤولية والحب - رقم الكمال",
		Traits:    []string{"مسؤول", "محب", "خدوم", "عائلي"},
		Spiritual: "طاقة الحب والخدمة، الكمال في الخلق",
		Element:   "أرض",
		Planet:    "الزهرة",
	},
	7: {
		Meaning:   "الروحانية والحكمة - الرقم المقدس",
		Traits:    []string{"روحاني", "حكيم", "باحث", "متأمل"},
		Spiritual: "طاقة الروحانية والمعرفة، الرقم المقدس في الأديان",
		Element:   "ماء",
		Planet:    "زحل",
	},
	8: {
		Meaning:   "القوة والنجاح - رقم اللانهاية",
		Traits:    []string{"قوي", "ناجح", "طموح", "مادي"},
		Spiritual: "طاقة القوة والإنجاز، اللانهاية الأفقية",
		Element:   "أرض",
		Planet:    "زحل",
	},
	9: {
		Meaning:   "الإنسانية والكمال - رقم الكمال الروحي",
		Traits:    []string{"إنساني", "عطوف", "حكيم", "مكتمل"},
		Spiritual: "طاقة الكمال والعطاء، نهاية الدورة الرقمية",
		Element:   "نار",
		Planet:    "المريخ",
	},
}

// chakras maps the seven chakras 1–7 to their descriptions. Reduced values
// 8 and 9 wrap into this range via ((reduced-1) mod 7) + 1.
var chakras = map[int]string{
	1: "شاكرا الجذر (مولادهارا) - الأمان والاستقرار - أحمر",
	2: "شاكرا العجز (سفاديشتانا) - الإبداع والجنسانية - برتقالي",
	3: "شاكرا الضفيرة الشمسية (مانيبورا) - القوة الشخصية - أصفر",
	4: "شاكرا القلب (أناهاتا) - الحب والرحمة - أخضر",
	5: "شاكرا الحلق (فيشودا) - التعبير والتواصل - أزرق",
	6: "شاكرا العين الثالثة (أجنا) - الحدس والبصيرة - نيلي",
	7: "شاكرا التاج (ساهاسرارا) - الروحانية والوعي - بنفسجي",
}

// sacredNumbers is the curated reference list for the divine-connection
// check. Scan order matters: the first number that matches a divisibility or
// near-miss test wins.
var sacredNumbers = []int{99, 786, 1001, 1111, 1313, 1414, 1515, 1616, 1717, 1818, 1919}

// primaryEnergies is keyed by (reduced mod 4) + 1.
var primaryEnergies = map[int]string{
	1: "طاقة النار - الخلق والقيادة",
	2: "طاقة الماء - التدفق والتكيف",
	3: "طاقة الهواء - التواصل والحركة",
	4: "طاقة الأرض - الاستقرار والبناء",
}

// secondaryEnergies is keyed by reduced mod 3.
var secondaryEnergies = map[int]string{
	0: "طاقة الخلق - البداية والإبداع",
	1: "طاقة الحفظ - الاستمرارية والحماية",
	2: "طاقة التحول - التغيير والتطور",
}

// harmonicFrequency pairs a solfeggio-style frequency with its label.
type harmonicFrequency struct {
	hz    int
	label string
}

// harmonics is scanned front to back; the first nearest frequency to
// (total mod 1000) wins ties.
var harmonics = []harmonicFrequency{
	{432, "تردد الكون - الرنين الطبيعي"},
	{528, "تردد الحب - طاقة الشفاء"},
	{639, "تردد العلاقات - الانسجام الاجتماعي"},
	{741, "تردد التطهير - التنظيف الطاقي"},
	{852, "تردد الحدس - البصيرة الروحية"},
	{963, "تردد الوحدة - الاتصال الإلهي"},
}

// compatibility maps a reduced value to its set of compatible digits.
var compatibility = map[int][]int{
	1: {1, 5, 7, 9},
	2: {2, 4, 6, 8},
	3: {3, 6, 9},
	4: {2, 4, 6, 8},
	5: {1, 5, 7, 9},
	6: {2, 3, 6, 9},
	7: {1, 5, 7, 9},
	8: {2, 4, 6, 8},
	9: {1, 3, 6, 9},
}
