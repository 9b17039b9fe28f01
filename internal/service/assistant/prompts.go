package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/m04kA/PetHotelService/internal/domain"
)

// Тексты на случай недоступности генерации
const (
	FallbackCareTips = "無法生成照顧建議，請稍後再試。"
	FallbackWelcome  = "歡迎入住我們的寵物旅館！"
)

func careTipsPrompt(p *domain.Pet) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "名字：%s\n", p.Name)
	fmt.Fprintf(&sb, "品種：%s\n", p.Breed)
	fmt.Fprintf(&sb, "年齡：%d\n", p.Age)
	fmt.Fprintf(&sb, "醫療備註：%s\n", p.MedicalNotes)
	fmt.Fprintf(&sb, "飲食需求：%s\n", p.DietaryNeeds)
	fmt.Fprintf(&sb, "過敏原：%s\n", p.Allergens)
	fmt.Fprintf(&sb, "餵食習慣：%s\n", p.FeedingHabit)
	return "請根據以下寵物資訊，提供專業的住宿照顧建議（繁體中文）：\n" + sb.String()
}

func welcomePrompt(p *domain.Pet) string {
	return fmt.Sprintf("身為寵物旅館經理，請寫一段親切、專業、充滿關懷的歡迎訊息給家長 %s，歡迎他們的毛孩 %s 入住。請使用繁體中文，語氣溫馨。",
		p.OwnerName, p.Name)
}

func preCheckPrompt(p *domain.Pet, r *domain.PreCheckRecord) string {
	return fmt.Sprintf(`你是寵物旅館專業管家。請根據以下檢查數據，為家長 %s 寫一段溫馨且專業的入館確認訊息，告訴家長毛孩 %s 已經順利接手並完成檢查。
體重：%.1f kg
精神：%s
皮膚：%s
耳朵：%s
眼鼻：%s
牙齒：%s
四肢：%s
攜帶物品：%s
繁體中文，語氣要讓家長感到安心與專業。請針對「異常項」給予溫馨提醒。150字內。`,
		p.OwnerName, p.Name, r.Weight, r.MentalStatus, r.SkinStatus, r.EarStatus,
		r.EyeNoseStatus, r.TeethStatus, r.LimbStatus, r.Belongings)
}

func careNotePrompt(p *domain.Pet, l *domain.DailyCareLog) string {
	return fmt.Sprintf(`你是寵物旅館的管家，正在用親切、溫馨、像是在聊天分享趣聞的口氣跟 %s 的家長回報今日狀況。
數據：食慾 %s, 精神活力 %s, 排便狀況 %s。
請寫一段約 60 字的生活化訊息，包含這孩子今天在旅館的小細節或情緒，讓家長聽了會覺得心暖暖的。繁體中文。`,
		p.Name, l.FeedingStatus, l.MentalStatus, l.LitterStatus)
}

type petContext struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Breed     string `json:"breed"`
	Gender    string `json:"gender"`
	Medical   string `json:"medical"`
	Allergens string `json:"allergens"`
	Diet      string `json:"diet"`
}

func searchPrompt(query string, pets []*domain.Pet) (string, error) {
	ctx := make([]petContext, 0, len(pets))
	for _, p := range pets {
		ctx = append(ctx, petContext{
			ID:        p.ID,
			Name:      p.Name,
			Breed:     p.Breed,
			Gender:    string(p.Gender),
			Medical:   p.MedicalNotes,
			Allergens: p.Allergens,
			Diet:      p.DietaryNeeds,
		})
	}
	data, err := json.Marshal(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`你是一個專業的寵物管理助手。請根據以下毛孩清單，找出符合描述「%s」的所有毛孩 ID。

毛孩數據：%s

請僅返回一個包含符合條件 ID 的 JSON 陣列，例如：["p1", "p3"]。如果沒有符合條件的，請返回空陣列 []。不要包含任何解釋文字。`, query, data), nil
}

// parseIDList разбирает JSON массив строк, допускает обертку ```json ... ```
func parseIDList(text string) ([]string, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var ids []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
