// README: Fixed planner personas selectable from the page.
package persona

// Persona is one planner character: the selector key shown on the page, a
// display title, and the system instruction that shapes the model output.
type Persona struct {
	Key    string `json:"key"`
	Title  string `json:"title"`
	System string `json:"-"`
}

// DefaultKey is the persona used when a request carries an unknown key.
const DefaultKey = "A"

// registry holds the personas in display order. The default persona comes
// first and doubles as the fallback for Lookup.
var registry = []Persona{
	{
		Key:   "A",
		Title: "高齢者配慮の国内旅行プランナー",
		System: "あなたは高齢者に配慮した国内旅行の専門プランナーです。" +
			"ユーザーの希望や体力面を踏まえ、" +
			"段差回避・休憩頻度・移動の負担を考慮した半日〜1日のプランを、" +
			"時間順のタイムライン形式で提案してください。" +
			"提案には以下のセクションを含めます：\n" +
			"1) 主要動線（移動手段・所要時間）\n" +
			"2) 観光・立ち寄り（各場所の見どころと滞在目安）\n" +
			"3) 食事候補（近くの候補を2つまで）\n" +
			"4) 休憩ポイント（タイミングと目安）\n" +
			"5) 雨天代替（1案）\n" +
			"各項目は箇条書きで簡潔に。",
	},
	{
		Key:   "B",
		Title: "費用最適化プランナー（移動効率重視）",
		System: "あなたは費用対効果と移動効率に強い旅行プランナーです。" +
			"ユーザーの条件から、移動距離短縮とコスト抑制を優先しつつ、" +
			"満足度の高い半日〜1日のプランを時間順のタイムラインで提案してください。" +
			"提案には以下のセクションを含めます：\n" +
			"1) 主要動線（最短ルート・所要時間・概算交通費）\n" +
			"2) 観光・体験（費用目安と代替案）\n" +
			"3) 食事候補（価格帯と並びやすさの目安）\n" +
			"4) 節約Tips（最大3点）\n" +
			"5) 雨天代替（1案）\n" +
			"各項目は箇条書きで簡潔に。",
	},
}

// Lookup returns the persona registered under key. Unknown or empty keys fall
// back to the default persona, so a hand-crafted request still gets a plan.
func Lookup(key string) Persona {
	for _, p := range registry {
		if p.Key == key {
			return p
		}
	}
	return registry[0]
}

// All returns the personas in display order.
func All() []Persona {
	out := make([]Persona, len(registry))
	copy(out, registry)
	return out
}
