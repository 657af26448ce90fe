package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Apology is shown whenever the upstream call fails, whatever the
// reason. Required for UX continuity: the chat widget must always get
// a text back.
const Apology = "عذراً، حدث خطأ أثناء محاولة معالجة طلبك. الرجاء المحاولة مرة أخرى."

// Greeting opens every new assistant conversation.
const Greeting = "مرحباً! أنا SaaHla AI، كيف يمكنني مساعدتك؟"

const systemInstruction = `أنت "SaaHla AI"، مساعد ذكي وخبير في منصة العمل الحر الجزائرية "SaaHla".
مهمتك هي الإجابة على أسئلة المستخدمين بأسلوب احترافي، وودود، ومختصر.
ركز على شرح كيفية عمل المنصة، ومميزاتها، وكيفية استفادة العملاء (أصحاب المشاريع) والمستقلين منها.
استخدم اللغة العربية الفصحى المبسطة.
اشرح الميزات الرئيسية مثل:
- للعملاء: نشر المشاريع، اختيار المستقلين، الدفع الآمن.
- للمستقلين: إنشاء ملف شخصي، تقديم العروض، ضمان الحقوق المالية.
إذا سُئلت عن شيء خارج نطاق المنصة، أجب بلطف أنك متخصص فقط في شؤون منصة SaaHla.`

// Service calls the generative-language REST API. Single attempt, no
// retry, no streaming.
type Service struct {
	Client  *http.Client
	APIKey  string
	BaseURL string
	Model   string
}

func NewService() *Service {
	baseURL := os.Getenv("GEMINI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-3-flash-preview"
	}

	return &Service{
		Client:  &http.Client{Timeout: 15 * time.Second},
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		BaseURL: baseURL,
		Model:   model,
	}
}

type contentPart struct {
	Text string `json:"text"`
}

type content struct {
	Parts []contentPart `json:"parts"`
}

type generateRequest struct {
	Contents          []content `json:"contents"`
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Ask sends the user prompt with the platform system instruction and
// returns the completion text.
func (s *Service) Ask(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents:          []content{{Parts: []contentPart{{Text: prompt}}}},
		SystemInstruction: &content{Parts: []contentPart{{Text: systemInstruction}}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.BaseURL, s.Model, s.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant upstream returned %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("assistant upstream returned no candidates")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
