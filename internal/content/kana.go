package content

// Kana tables carried over from the study sheets: the 46 base syllables,
// dakuon/handakuon rows and yoon digraphs for both scripts. Row grouping
// mirrors the gojuon chart so drills can be limited to one row.

// Script distinguishes the two phonetic syllabaries. Both share the
// "kana" progress namespace (models.ItemTypeKana); ItemID is the only
// place where that namespace is partitioned, so callers never apply
// numeric offsets themselves.
type Script string

const (
	Hiragana Script = "hiragana"
	Katakana Script = "katakana"
)

// katakanaIDOffset keeps katakana progress ids clear of the hiragana
// range. It must stay above len(flatten(hiraganaRows)).
const katakanaIDOffset = 1000

// KanaChar is one syllable of a script together with its romaji reading
type KanaChar struct {
	Glyph  string
	Romaji string
}

// ItemID maps a position in the script's flattened table onto the shared
// kana progress namespace
func (s Script) ItemID(index int) int {
	if s == Katakana {
		return katakanaIDOffset + index
	}
	return index
}

// Chars returns the script's characters flattened in chart order. The
// slice index of a character is its stable drill position.
func (s Script) Chars() []KanaChar {
	rows := s.Rows()
	var out []KanaChar
	for _, row := range rows {
		out = append(out, row...)
	}
	return out
}

// Rows returns the script's characters grouped by gojuon row
func (s Script) Rows() [][]KanaChar {
	if s == Katakana {
		return katakanaRows
	}
	return hiraganaRows
}

var hiraganaRows = [][]KanaChar{
	{{"あ", "a"}, {"い", "i"}, {"う", "u"}, {"え", "e"}, {"お", "o"}},
	{{"か", "ka"}, {"き", "ki"}, {"く", "ku"}, {"け", "ke"}, {"こ", "ko"}},
	{{"さ", "sa"}, {"し", "shi"}, {"す", "su"}, {"せ", "se"}, {"そ", "so"}},
	{{"た", "ta"}, {"ち", "chi"}, {"つ", "tsu"}, {"て", "te"}, {"と", "to"}},
	{{"な", "na"}, {"に", "ni"}, {"ぬ", "nu"}, {"ね", "ne"}, {"の", "no"}},
	{{"は", "ha"}, {"ひ", "hi"}, {"ふ", "fu"}, {"へ", "he"}, {"ほ", "ho"}},
	{{"ま", "ma"}, {"み", "mi"}, {"む", "mu"}, {"め", "me"}, {"も", "mo"}},
	{{"や", "ya"}, {"ゆ", "yu"}, {"よ", "yo"}},
	{{"ら", "ra"}, {"り", "ri"}, {"る", "ru"}, {"れ", "re"}, {"ろ", "ro"}},
	{{"わ", "wa"}, {"を", "wo"}, {"ん", "n"}},
	{{"が", "ga"}, {"ぎ", "gi"}, {"ぐ", "gu"}, {"げ", "ge"}, {"ご", "go"}},
	{{"ざ", "za"}, {"じ", "ji"}, {"ず", "zu"}, {"ぜ", "ze"}, {"ぞ", "zo"}},
	{{"だ", "da"}, {"ぢ", "ji"}, {"づ", "zu"}, {"で", "de"}, {"ど", "do"}},
	{{"ば", "ba"}, {"び", "bi"}, {"ぶ", "bu"}, {"べ", "be"}, {"ぼ", "bo"}},
	{{"ぱ", "pa"}, {"ぴ", "pi"}, {"ぷ", "pu"}, {"ぺ", "pe"}, {"ぽ", "po"}},
	{{"きゃ", "kya"}, {"きゅ", "kyu"}, {"きょ", "kyo"}},
	{{"しゃ", "sha"}, {"しゅ", "shu"}, {"しょ", "sho"}},
	{{"ちゃ", "cha"}, {"ちゅ", "chu"}, {"ちょ", "cho"}},
	{{"にゃ", "nya"}, {"にゅ", "nyu"}, {"にょ", "nyo"}},
	{{"ひゃ", "hya"}, {"ひゅ", "hyu"}, {"ひょ", "hyo"}},
	{{"みゃ", "mya"}, {"みゅ", "myu"}, {"みょ", "myo"}},
	{{"りゃ", "rya"}, {"りゅ", "ryu"}, {"りょ", "ryo"}},
	{{"ぎゃ", "gya"}, {"ぎゅ", "gyu"}, {"ぎょ", "gyo"}},
	{{"じゃ", "ja"}, {"じゅ", "ju"}, {"じょ", "jo"}},
	{{"びゃ", "bya"}, {"びゅ", "byu"}, {"びょ", "byo"}},
	{{"ぴゃ", "pya"}, {"ぴゅ", "pyu"}, {"ぴょ", "pyo"}},
}

var katakanaRows = [][]KanaChar{
	{{"ア", "a"}, {"イ", "i"}, {"ウ", "u"}, {"エ", "e"}, {"オ", "o"}},
	{{"カ", "ka"}, {"キ", "ki"}, {"ク", "ku"}, {"ケ", "ke"}, {"コ", "ko"}},
	{{"サ", "sa"}, {"シ", "shi"}, {"ス", "su"}, {"セ", "se"}, {"ソ", "so"}},
	{{"タ", "ta"}, {"チ", "chi"}, {"ツ", "tsu"}, {"テ", "te"}, {"ト", "to"}},
	{{"ナ", "na"}, {"ニ", "ni"}, {"ヌ", "nu"}, {"ネ", "ne"}, {"ノ", "no"}},
	{{"ハ", "ha"}, {"ヒ", "hi"}, {"フ", "fu"}, {"ヘ", "he"}, {"ホ", "ho"}},
	{{"マ", "ma"}, {"ミ", "mi"}, {"ム", "mu"}, {"メ", "me"}, {"モ", "mo"}},
	{{"ヤ", "ya"}, {"ユ", "yu"}, {"ヨ", "yo"}},
	{{"ラ", "ra"}, {"リ", "ri"}, {"ル", "ru"}, {"レ", "re"}, {"ロ", "ro"}},
	{{"ワ", "wa"}, {"ヲ", "wo"}, {"ン", "n"}},
	{{"ガ", "ga"}, {"ギ", "gi"}, {"グ", "gu"}, {"ゲ", "ge"}, {"ゴ", "go"}},
	{{"ザ", "za"}, {"ジ", "ji"}, {"ズ", "zu"}, {"ゼ", "ze"}, {"ゾ", "zo"}},
	{{"ダ", "da"}, {"ヂ", "ji"}, {"ヅ", "zu"}, {"デ", "de"}, {"ド", "do"}},
	{{"バ", "ba"}, {"ビ", "bi"}, {"ブ", "bu"}, {"ベ", "be"}, {"ボ", "bo"}},
	{{"パ", "pa"}, {"ピ", "pi"}, {"プ", "pu"}, {"ペ", "pe"}, {"ポ", "po"}},
	{{"キャ", "kya"}, {"キュ", "kyu"}, {"キョ", "kyo"}},
	{{"シャ", "sha"}, {"シュ", "shu"}, {"ショ", "sho"}},
	{{"チャ", "cha"}, {"チュ", "chu"}, {"チョ", "cho"}},
	{{"ニャ", "nya"}, {"ニュ", "nyu"}, {"ニョ", "nyo"}},
	{{"ヒャ", "hya"}, {"ヒュ", "hyu"}, {"ヒョ", "hyo"}},
	{{"ミャ", "mya"}, {"ミュ", "myu"}, {"ミョ", "myo"}},
	{{"リャ", "rya"}, {"リュ", "ryu"}, {"リョ", "ryo"}},
	{{"ギャ", "gya"}, {"ギュ", "gyu"}, {"ギョ", "gyo"}},
	{{"ジャ", "ja"}, {"ジュ", "ju"}, {"ジョ", "jo"}},
	{{"ビャ", "bya"}, {"ビュ", "byu"}, {"ビョ", "byo"}},
	{{"ピャ", "pya"}, {"ピュ", "pyu"}, {"ピョ", "pyo"}},
}
