package saju

// =============================================================================
// STEMS & BRANCHES
// =============================================================================

var stemNames = [NumStems]string{"갑", "을", "병", "정", "무", "기", "경", "신", "임", "계"}
var stemHanja = [NumStems]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

var branchNames = [NumBranches]string{"자", "축", "인", "묘", "진", "사", "오", "미", "신", "유", "술", "해"}
var branchHanja = [NumBranches]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

var zodiacAnimals = [NumBranches]string{"쥐", "소", "호랑이", "토끼", "용", "뱀", "말", "양", "원숭이", "닭", "개", "돼지"}
var zodiacEmoji = [NumBranches]string{"🐭", "🐮", "🐯", "🐰", "🐲", "🐍", "🐴", "🐑", "🐵", "🐔", "🐶", "🐷"}

// Stems pair up per element: 갑을 목, 병정 화, 무기 토, 경신 금, 임계 수.
var stemElements = [NumStems]Element{Wood, Wood, Fire, Fire, Earth, Earth, Metal, Metal, Water, Water}

var branchElements = [NumBranches]Element{
	Water, // 자
	Earth, // 축
	Wood,  // 인
	Wood,  // 묘
	Earth, // 진
	Fire,  // 사
	Fire,  // 오
	Earth, // 미
	Metal, // 신
	Metal, // 유
	Earth, // 술
	Water, // 해
}

// Element returns the stem's element.
func (s Stem) Element() Element { return stemElements[s] }

// String returns the Korean stem name.
func (s Stem) String() string { return stemNames[s] }

// Hanja returns the stem's Chinese character.
func (s Stem) Hanja() string { return stemHanja[s] }

// Valid reports whether s is in [0,10).
func (s Stem) Valid() bool { return s >= 0 && s < NumStems }

// Element returns the branch's element.
func (b Branch) Element() Element { return branchElements[b] }

// String returns the Korean branch name.
func (b Branch) String() string { return branchNames[b] }

// Hanja returns the branch's Chinese character.
func (b Branch) Hanja() string { return branchHanja[b] }

// Zodiac returns the branch's zodiac animal (띠).
func (b Branch) Zodiac() string { return zodiacAnimals[b] }

// ZodiacEmoji returns the branch's zodiac emoji.
func (b Branch) ZodiacEmoji() string { return zodiacEmoji[b] }

// Valid reports whether b is in [0,12).
func (b Branch) Valid() bool { return b >= 0 && b < NumBranches }

// =============================================================================
// SOLAR TERMS & OFFSETS
// =============================================================================

type monthDay struct {
	month int
	day   int
}

// Approximate start dates of the twelve solar months. Index 0 is 인월
// (입춘); index 11 is 축월 (소한), whose segment wraps into January.
var solarTermStarts = [12]monthDay{
	{2, 4},   // 입춘
	{3, 6},   // 경칩
	{4, 5},   // 청명
	{5, 6},   // 입하
	{6, 6},   // 망종
	{7, 7},   // 소서
	{8, 8},   // 입추
	{9, 8},   // 백로
	{10, 8},  // 한로
	{11, 7},  // 입동
	{12, 7},  // 대설
	{1, 5},   // 소한
}

// 오호연원법: year stem group → first month stem.
var monthStemOffset = [5]Stem{2, 4, 6, 8, 0}

// 오자연원법: day stem group → first hour stem.
var hourStemOffset = [5]Stem{0, 2, 4, 6, 8}

// =============================================================================
// ORGANS
// =============================================================================

// Organ is the paired organ set (장부) governed by an element.
type Organ struct {
	Primary string `json:"primary"`
	Paired  string `json:"paired"`
}

// Organ returns the organs governed by e.
func (e Element) Organ() Organ {
	switch e {
	case Wood:
		return Organ{Primary: "간(肝)", Paired: "담(膽)"}
	case Fire:
		return Organ{Primary: "심장(心)", Paired: "소장(小腸)"}
	case Earth:
		return Organ{Primary: "비장(脾)", Paired: "위(胃)"}
	case Metal:
		return Organ{Primary: "폐(肺)", Paired: "대장(大腸)"}
	case Water:
		return Organ{Primary: "신장(腎)", Paired: "방광(膀胱)"}
	}
	return Organ{}
}
