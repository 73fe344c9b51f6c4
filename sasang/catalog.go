/*
catalog.go - Sasang constitution reference catalog (사상체질)

PURPOSE:
  Static descriptive data for the four constitutions the engine can infer:
  temperament, organs, food and exercise advice, and pairing preferences.
  The engine decides WHICH constitution a chart has; this package says
  what that constitution means.

ORDER:
  All() returns entries in the engine's tie-break order
  (taeyang, soyang, taeeum, soeum).

SEE ALSO:
  - pairing.go: constitution-level pair commentary
  - saju/constitution.go: how a balance maps to a constitution
*/
package sasang

import (
	"errors"
	"fmt"

	"github.com/warp/saju-engine/saju"
)

// Pairing ranks the other constitutions for a given one.
type Pairing struct {
	Best    saju.ConstitutionType `json:"best"`
	Good    saju.ConstitutionType `json:"good"`
	Caution saju.ConstitutionType `json:"caution"`
}

// Info describes one constitution.
type Info struct {
	Type          saju.ConstitutionType `json:"type"`
	Code          saju.ConstitutionCode `json:"code"`
	Name          string                `json:"name"`
	NameHanja     string                `json:"name_hanja"`
	Nickname      string                `json:"nickname"`
	Emoji         string                `json:"emoji"`
	Color         string                `json:"color"`
	Background    string                `json:"bg_color"`
	GradientFrom  string                `json:"gradient_from"`
	GradientTo    string                `json:"gradient_to"`
	Description   string                `json:"description"`
	Personality   []string              `json:"personality"`
	Strengths     []string              `json:"strengths"`
	Weaknesses    []string              `json:"weaknesses"`
	StrongOrgan   string                `json:"strong_organ"`
	WeakOrgan     string                `json:"weak_organ"`
	GoodFoods     []string              `json:"good_foods"`
	BadFoods      []string              `json:"bad_foods"`
	Exercises     []string              `json:"exercises"`
	HealthTips    []string              `json:"health_tips"`
	Compatibility Pairing               `json:"compatibility"`
	Percentage    string                `json:"percentage"`
	Keywords      []string              `json:"keywords"`
}

// =============================================================================
// LOOKUP
// =============================================================================

// ErrUnknownType is returned by Lookup for strings that name no constitution.
var ErrUnknownType = errors.New("unknown constitution type")

// Get returns the catalog entry for c.
func Get(c saju.ConstitutionType) (Info, bool) {
	info, ok := catalog[c]
	return info, ok
}

// Lookup accepts a type name ("soeum") or roster code ("U").
func Lookup(s string) (Info, error) {
	c, err := saju.ParseConstitution(s)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
	return catalog[c], nil
}

// All returns every entry in tie-break order.
func All() []Info {
	out := make([]Info, 0, len(saju.ConstitutionTypes))
	for _, c := range saju.ConstitutionTypes {
		out = append(out, catalog[c])
	}
	return out
}

// =============================================================================
// DATA
// =============================================================================

var catalog = map[saju.ConstitutionType]Info{
	saju.Taeyang: {
		Type:         saju.Taeyang,
		Code:         saju.CodeTaeyang,
		Name:         "태양인",
		NameHanja:    "太陽人",
		Nickname:     "불꽃 리더",
		Emoji:        "🌞",
		Color:        "#dc2626",
		Background:   "#fef2f2",
		GradientFrom: "#ef4444",
		GradientTo:   "#f97316",
		Description:  "태양인은 진취적이고 창의적인 리더형입니다. 강한 카리스마와 추진력으로 주변을 이끄는 타입이에요. 폐의 기운이 강하고 간의 기운이 약합니다.",
		Personality: []string{
			"강한 카리스마와 리더십",
			"진취적이고 창의적",
			"자존심이 강하고 독립적",
			"결단력이 빠르고 추진력 있음",
			"남에게 지기 싫어하는 승부욕",
		},
		Strengths:   []string{"리더십", "창의력", "추진력", "카리스마", "결단력"},
		Weaknesses:  []string{"고집", "독선적", "타인 의견 무시", "과욕"},
		StrongOrgan: "폐(肺)",
		WeakOrgan:   "간(肝)",
		GoodFoods: []string{
			"모과", "포도", "다래", "앵두", "감",
			"메밀", "냉면", "새우", "조개", "굴",
			"솔잎", "오가피",
		},
		BadFoods:  []string{"맵고 뜨거운 음식", "기름진 음식", "인삼", "꿀", "땅콩", "잣"},
		Exercises: []string{"수영", "요가", "산책", "스트레칭", "태극권"},
		HealthTips: []string{
			"간 기능 강화에 신경 쓸 것",
			"화를 다스리고 마음을 편안히",
			"시원한 음식이 체질에 맞음",
			"하체 운동을 꾸준히 할 것",
		},
		Compatibility: Pairing{Best: saju.Soeum, Good: saju.Taeeum, Caution: saju.Soyang},
		Percentage:    "약 5%",
		Keywords:      []string{"리더", "카리스마", "추진력", "독립적", "불꽃"},
	},

	saju.Soyang: {
		Type:         saju.Soyang,
		Code:         saju.CodeSoyang,
		Name:         "소양인",
		NameHanja:    "少陽人",
		Nickname:     "열정 파이터",
		Emoji:        "⚡",
		Color:        "#059669",
		Background:   "#ecfdf5",
		GradientFrom: "#10b981",
		GradientTo:   "#06b6d4",
		Description:  "소양인은 활발하고 사교적인 행동파입니다. 순발력과 재치로 어디서든 분위기 메이커가 되는 타입이에요. 비장의 기운이 강하고 신장의 기운이 약합니다.",
		Personality: []string{
			"밝고 활발한 성격",
			"사교적이고 친화력이 뛰어남",
			"순발력과 재치가 넘침",
			"정의감이 강하고 봉사정신이 있음",
			"급한 성격, 끈기가 부족할 수 있음",
		},
		Strengths:   []string{"사교성", "순발력", "재치", "열정", "행동력"},
		Weaknesses:  []string{"성급함", "끈기 부족", "감정 기복", "산만"},
		StrongOrgan: "비장(脾)",
		WeakOrgan:   "신장(腎)",
		GoodFoods: []string{
			"보리", "팥", "녹두", "오이", "배추",
			"수박", "참외", "딸기", "해삼", "전복",
			"돼지고기", "굴",
		},
		BadFoods:  []string{"닭고기", "인삼", "꿀", "고추", "마늘", "생강", "카레"},
		Exercises: []string{"수영", "산책", "요가", "필라테스", "볼링"},
		HealthTips: []string{
			"신장 기능 강화에 신경 쓸 것",
			"찬 성질의 음식이 체질에 맞음",
			"과로를 피하고 충분히 쉬기",
			"명상으로 마음 안정시키기",
		},
		Compatibility: Pairing{Best: saju.Taeeum, Good: saju.Soeum, Caution: saju.Taeyang},
		Percentage:    "약 25%",
		Keywords:      []string{"활발", "사교적", "순발력", "열정", "행동파"},
	},

	saju.Taeeum: {
		Type:         saju.Taeeum,
		Code:         saju.CodeTaeeum,
		Name:         "태음인",
		NameHanja:    "太陰人",
		Nickname:     "듬직한 산",
		Emoji:        "⛰️",
		Color:        "#ca8a04",
		Background:   "#fefce8",
		GradientFrom: "#eab308",
		GradientTo:   "#84cc16",
		Description:  "태음인은 인내심이 강하고 듬직한 노력형입니다. 끈기와 포용력으로 큰 일을 해내는 타입이에요. 간의 기운이 강하고 폐의 기운이 약합니다.",
		Personality: []string{
			"듬직하고 포용력이 큼",
			"인내심과 끈기가 강함",
			"꼼꼼하고 계획적",
			"한번 시작하면 끝까지 밀어붙임",
			"겉으로는 무뚝뚝하지만 속정이 깊음",
		},
		Strengths:   []string{"인내심", "끈기", "포용력", "실행력", "안정감"},
		Weaknesses:  []string{"우유부단", "게으름", "고집", "변화 거부"},
		StrongOrgan: "간(肝)",
		WeakOrgan:   "폐(肺)",
		GoodFoods: []string{
			"소고기", "콩", "밤", "호두", "은행",
			"무", "도라지", "율무", "들깨", "배",
			"잣", "녹두",
		},
		BadFoods:  []string{"닭고기", "삼겹살", "맥주", "라면", "밀가루 음식", "계란 노른자"},
		Exercises: []string{"등산", "달리기", "웨이트", "줄넘기", "자전거"},
		HealthTips: []string{
			"폐 건강과 호흡기 관리 중요",
			"땀을 많이 흘리는 운동이 좋음",
			"과식 주의, 체중 관리 필수",
			"규칙적인 운동 습관 만들기",
		},
		Compatibility: Pairing{Best: saju.Soyang, Good: saju.Taeyang, Caution: saju.Soeum},
		Percentage:    "약 40%",
		Keywords:      []string{"듬직", "인내", "끈기", "포용", "노력형"},
	},

	saju.Soeum: {
		Type:         saju.Soeum,
		Code:         saju.CodeSoeum,
		Name:         "소음인",
		NameHanja:    "少陰人",
		Nickname:     "감성 분석가",
		Emoji:        "🌊",
		Color:        "#2563eb",
		Background:   "#eff6ff",
		GradientFrom: "#3b82f6",
		GradientTo:   "#8b5cf6",
		Description:  "소음인은 섬세하고 분석적인 감성파입니다. 깊은 사고력과 꼼꼼함으로 디테일에 강한 타입이에요. 신장의 기운이 강하고 비장의 기운이 약합니다.",
		Personality: []string{
			"섬세하고 감성적",
			"분석력이 뛰어남",
			"꼼꼼하고 정리정돈을 잘함",
			"내성적이지만 친한 사람에게는 다정",
			"걱정이 많고 소심한 면이 있음",
		},
		Strengths:   []string{"분석력", "섬세함", "성실함", "감수성", "꼼꼼함"},
		Weaknesses:  []string{"소심함", "걱정 과다", "내성적", "소화 불량"},
		StrongOrgan: "신장(腎)",
		WeakOrgan:   "비장(脾)",
		GoodFoods: []string{
			"인삼", "꿀", "대추", "생강", "계피",
			"닭고기", "양고기", "찹쌀", "감자",
			"시금치", "미역", "부추",
		},
		BadFoods:  []string{"차가운 음식", "냉면", "수박", "빙과류", "보리", "팥", "돼지고기"},
		Exercises: []string{"산책", "가벼운 조깅", "스트레칭", "필라테스", "탁구"},
		HealthTips: []string{
			"비장(소화기) 건강 관리 중요",
			"따뜻한 음식이 체질에 맞음",
			"스트레스 관리 필수",
			"과도한 걱정을 줄이는 연습",
		},
		Compatibility: Pairing{Best: saju.Taeyang, Good: saju.Soyang, Caution: saju.Taeeum},
		Percentage:    "약 30%",
		Keywords:      []string{"섬세", "감성", "분석적", "꼼꼼", "다정"},
	},
}
