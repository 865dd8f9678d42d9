package jafr

import "fmt"

// computeIndicators derives the traditional spiritual indicators from the
// name values, the date values, and the combined value.
func computeIndicators(nameValue, motherValue int, dates DateValues, combined int) Indicators {
	return Indicators{
		DestinyPath:       destinyPaths[combined%len(destinyPaths)],
		LifeChallenge:     lifeChallenges[nameValue%len(lifeChallenges)],
		SpiritualGift:     spiritualGifts[motherValue%len(spiritualGifts)],
		SpiritualStrength: spiritualStrength(combined),
		SacredAlignment:   sacredAlignment(combined),
		PlanetaryEnergy:   planetaryDays[dates.Weekday],
		SpiritualSeason:   spiritualSeason(dates.DayOfYear),
	}
}

// spiritualStrength bands combined mod 1000 into five levels and selects a
// strength type from the trailing digit.
func spiritualStrength(combined int) Strength {
	sv := combined % 1000

	var level string
	switch {
	case sv >= 800:
		level = "قوة روحانية عالية جداً - اتصال مباشر بالعوالم العلوية"
	case sv >= 600:
		level = "قوة روحانية عالية - تأثير قوي في العالم الروحي"
	case sv >= 400:
		level = "قوة روحانية متوسطة عالية - قدرات روحية واضحة"
	case sv >= 200:
		level = "قوة روحانية متوسطة - إمكانيات روحية جيدة"
	default:
		level = "قوة روحانية كامنة - تحتاج إلى تطوير وتنمية"
	}

	return Strength{
		Level:          level,
		Type:           strengthTypes[sv%10],
		NumericalValue: sv,
		Percentage:     float64(sv) / 10,
	}
}

// sacredAlignment tests the combined value against every sacred and divine
// number, reporting all that land in the exact/10%/20%/30% remainder bands.
// A number appearing in both source lists is tested once.
func sacredAlignment(combined int) []Alignment {
	sacred := sequenceByName("sacred_numbers").values
	divine := sequenceByName("divine_attributes").values

	seen := make(map[int]bool)
	var alignments []Alignment
	for _, s := range append(append([]int{}, sacred...), divine...) {
		if seen[s] {
			continue
		}
		seen[s] = true

		rem := combined % s
		var grade string
		switch {
		case rem == 0:
			grade = "محاذاة كاملة - تأثير مباشر"
		case float64(rem) <= float64(s)*0.1:
			grade = "محاذاة قوية جداً - تأثير واضح"
		case float64(rem) <= float64(s)*0.2:
			grade = "محاذاة قوية - تأثير ملحوظ"
		case float64(rem) <= float64(s)*0.3:
			grade = "محاذاة متوسطة - تأثير معتدل"
		default:
			continue
		}
		alignments = append(alignments, Alignment{Number: s, Grade: grade})
	}

	if len(alignments) == 0 {
		alignments = []Alignment{{Number: 0, Grade: "محاذاة عامة مع الطيف الكوني"}}
	}
	return alignments
}

// spiritualSeason bands the day of year into the four spiritual seasons.
func spiritualSeason(dayOfYear int) string {
	switch {
	case dayOfYear >= 80 && dayOfYear <= 171:
		return "موسم النمو الروحي - طاقة التجديد والبداية"
	case dayOfYear >= 172 && dayOfYear <= 263:
		return "موسم القوة الروحية - طاقة الازدهار والنشاط"
	case dayOfYear >= 264 && dayOfYear <= 354:
		return "موسم الحصاد الروحي - طاقة الحكمة والنضج"
	default:
		return "موسم التأمل الروحي - طاقة التطهير والتنقية"
	}
}

// traditionalMeanings selects the classical associations of the combined value.
func traditionalMeanings(combined int) TraditionalMeanings {
	return TraditionalMeanings{
		NumericalSignificance: fmt.Sprintf("الرقم %d يحمل طاقة خاصة في علم الجفر الشريف", combined),
		ElementalAssociation:  elementalAssociations[combined%len(elementalAssociations)],
		TemporalInfluence:     temporalInfluences[combined%len(temporalInfluences)],
		SpiritualLevel:        spiritualLevels[combined%len(spiritualLevels)],
		CosmicConnection:      cosmicConnection(combined),
	}
}

// cosmicConnection maps the combined value onto the 2160-year precession
// cycle, banded into six 360-year ages.
func cosmicConnection(combined int) string {
	v := combined % 2160
	switch {
	case v < 360:
		return "اتصال بعصر الحمل - طاقة القيادة والريادة"
	case v < 720:
		return "اتصال بعصر الثور - طاقة الاستقرار والبناء"
	case v < 1080:
		return "اتصال بعصر الجوزاء - طاقة التواصل والمعرفة"
	case v < 1440:
		return "اتصال بعصر السرطان - طاقة العاطفة والحماية"
	case v < 1800:
		return "اتصال بعصر الأسد - طاقة الإبداع والقيادة"
	default:
		return "اتصال بعصر العذراء - طاقة الخدمة والكمال"
	}
}

// divineConnections scans the beautiful-names table and the quranic numbers
// for exact-divisibility or near (within 10) matches. If nothing matches, a
// single generic connection is reported.
func divineConnections(combined int) []Connection {
	var conns []Connection
	for _, dn := range divineNames {
		switch {
		case combined%dn.value == 0:
			conns = append(conns, Connection{
				Name: dn.name,
				Note: fmt.Sprintf("اتصال مباشر - مضاعف لقيمة اسم %s", dn.name),
			})
		case abs(combined-dn.value) <= 10:
			conns = append(conns, Connection{
				Name: dn.name,
				Note: fmt.Sprintf("اتصال قريب - قريب من قيمة اسم %s", dn.name),
			})
		}
	}

	for _, q := range sequenceByName("quranic_numbers").values {
		if combined%q == 0 {
			conns = append(conns, Connection{
				Name: fmt.Sprintf("قرآني_%d", q),
				Note: fmt.Sprintf("اتصال قرآني - مضاعف للرقم %d", q),
			})
		}
	}

	if len(conns) == 0 {
		conns = []Connection{{Name: "عام", Note: "اتصال عام بالطيف الإلهي"}}
	}
	return conns
}
