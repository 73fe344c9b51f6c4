package saju

import "fmt"

// =============================================================================
// FUN FACTS & EVIDENCE - Generated copy for profile pages
// =============================================================================

const maxFunFacts = 6

var constitutionFacts = map[ConstitutionType][]string{
	Taeyang: {
		"%s의 추진력은 강한 화(火) 기운에서 나온다",
		"카리스마가 넘치지만 가끔 너무 앞서나갈 때가 있음",
		"더운 거 잘 참지만 추위에는 약할 수 있음",
		"일단 시작하면 끝을 봐야 직성이 풀리는 스타일",
	},
	Soyang: {
		"%s은(는) 활발한 소양인 에너지의 소유자",
		"사교적이고 순발력이 뛰어남",
		"매운 음식보다 시원한 음식이 잘 맞음",
		"열정적이지만 꾸준함이 과제",
	},
	Taeeum: {
		"%s의 든든한 존재감은 토(土) 기운 덕분",
		"인내심과 끈기로 큰 일을 이뤄내는 타입",
		"먹는 걸 좋아하고 체중 관리가 과제일 수 있음",
		"한번 마음 먹으면 뚝심 있게 밀고 나감",
	},
	Soeum: {
		"%s은(는) 섬세한 감성의 소음인",
		"디테일에 강하고 분석력이 뛰어남",
		"따뜻한 음식과 환경이 잘 맞음",
		"내면의 에너지를 잘 관리하면 큰 힘을 발휘함",
	},
}

func dominantFact(e Element) string {
	switch e {
	case Wood:
		return "🌳 나무 기운이 강해서 성장과 도전을 즐김"
	case Fire:
		return "🔥 불 기운이 강해서 에너지가 넘침!"
	case Earth:
		return "⛰️ 흙 기운이 강해서 안정감과 포용력이 큼"
	case Metal:
		return "⚔️ 금 기운이 강해서 결단력이 있음"
	case Water:
		return "💧 물 기운이 강해서 지혜롭고 유연함"
	}
	return ""
}

func weakTip(e Element) string {
	switch e {
	case Wood:
		return "🌳 간 건강과 스트레칭을 신경쓰면 좋아요"
	case Fire:
		return "🔥 체온 관리와 심장 건강 체크 추천"
	case Earth:
		return "⛰️ 소화기 건강과 규칙적 식사가 중요해요"
	case Metal:
		return "⚔️ 호흡기 건강과 피부 관리 추천"
	case Water:
		return "💧 수분 섭취와 신장 건강에 신경쓰면 좋아요"
	}
	return ""
}

// FunFacts returns up to six short facts for a named profile: four per
// constitution, one for a dominant element holding at least 30, and one
// care tip for the weakest element. Here the weakest element is the first
// minimum in element order.
func FunFacts(c ConstitutionType, b ElementBalance, name string) []string {
	var facts []string
	for i, f := range constitutionFacts[c] {
		if i == 0 {
			f = fmt.Sprintf(f, name)
		}
		facts = append(facts, f)
	}

	if dominant := b.Dominant(); b[dominant] >= 30 {
		facts = append(facts, dominantFact(dominant))
	}
	facts = append(facts, weakTip(firstMin(b)))

	if len(facts) > maxFunFacts {
		facts = facts[:maxFunFacts]
	}
	return facts
}

func firstMin(b ElementBalance) Element {
	worst := Wood
	for _, e := range Elements[1:] {
		if b[e] < b[worst] {
			worst = e
		}
	}
	return worst
}

var constitutionEvidence = map[ConstitutionType][5]string{
	Taeyang: {
		"오행에서 화(火)·목(木)이 강하게 나타남",
		"진취적이고 창의적인 에너지가 사주에 드러남",
		"외향적이고 리더십이 강한 기질",
		"뜨거운 열정과 추진력의 소유자",
		"상체가 발달하고 하체 관리가 필요한 체질",
	},
	Soyang: {
		"오행에서 화(火)·토(土)가 고르게 분포",
		"활발하고 사교적인 기운이 강함",
		"순발력과 재치가 뛰어난 기질",
		"가슴이 넓고 엉덩이가 좁은 체형 경향",
		"비장과 위장이 강하고 신장 관리 필요",
	},
	Taeeum: {
		"오행에서 토(土)·금(金)이 두드러짐",
		"든든하고 안정적인 에너지가 사주 전체에 흐름",
		"인내심과 끈기가 강한 기질",
		"체격이 좋고 식욕이 왕성한 경향",
		"간과 폐가 강하고 심장 관리가 필요",
	},
	Soeum: {
		"오행에서 수(水)·금(金)이 강하게 나타남",
		"섬세하고 분석적인 에너지가 사주에 드러남",
		"내성적이지만 깊은 사고력의 소유자",
		"체격이 작고 소화기가 약한 경향",
		"신장이 강하고 비장·위장 관리가 필요",
	},
}

// ConstitutionEvidence returns the reasoning lines for a constitution,
// each prefixed with "name: ".
func ConstitutionEvidence(c ConstitutionType, name string) []string {
	lines, ok := constitutionEvidence[c]
	if !ok {
		return nil
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = name + ": " + l
	}
	return out
}
