package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"reserva-eva/models"
)

// FallbackMessage is returned whenever the remote call fails for any reason
const FallbackMessage = "Desculpe, tive um contratempo. Como a EVA pode te ajudar de outra forma?"

const conciergeTemperature = 0.7

var conciergeClient = &http.Client{Timeout: 30 * time.Second}

// buildSystemInstruction creates the EVA persona prompt with the catalog
func buildSystemInstruction() string {
	type catalogEntry struct {
		ID       string   `json:"id"`
		Name     string   `json:"name"`
		Location string   `json:"location"`
		Price    float64  `json:"price"`
		Features []string `json:"features"`
	}

	entries := make([]catalogEntry, len(models.Properties))
	for i, p := range models.Properties {
		entries[i] = catalogEntry{
			ID:       p.ID,
			Name:     p.Name,
			Location: p.Location,
			Price:    p.PricePerNight,
			Features: p.Amenities,
		}
	}
	catalog, _ := json.Marshal(entries)

	return fmt.Sprintf(`Você é a 'EVA', uma Concierge de luxo e assistente pessoal da plataforma EVA RESERVA.
Sua plataforma agora é especializada em 'Day Use' (reservas para um único dia).

Catálogo: %s

Regras:
1. Seja extremamente profissional, calorosa e eficiente.
2. Sempre que sugerir algo, mencione os benefícios exclusivos de um Day Use com a EVA.
3. Informe que o usuário deve selecionar exatamente um dia no calendário da tela inicial para prosseguir.
4. Não trabalhamos com pernoite no momento, apenas experiências de dia inteiro.
5. Responda no idioma do usuário.`, catalog)
}

// AskConcierge forwards a user message to the text-generation endpoint and
// relays the reply. Every failure mode maps to the fixed fallback sentence;
// the surrounding flow never sees an error.
func AskConcierge(req models.ChatRequest) models.ChatResponse {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	text, err := callGemini(req)
	if err != nil {
		log.Printf("Gemini API error (session %s): %v", sessionID, err)
		return models.ChatResponse{
			Success:   false,
			SessionID: sessionID,
			Message:   FallbackMessage,
		}
	}

	return models.ChatResponse{
		Success:   true,
		SessionID: sessionID,
		Message:   text,
	}
}

// callGemini calls the generateContent endpoint with the persona
// instruction, the replayed history and the new user message
func callGemini(req models.ChatRequest) (string, error) {
	contents := []map[string]interface{}{}
	for _, turn := range req.History {
		role := "user"
		if turn.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, map[string]interface{}{
			"role":  role,
			"parts": []map[string]interface{}{{"text": turn.Text}},
		})
	}
	contents = append(contents, map[string]interface{}{
		"role":  "user",
		"parts": []map[string]interface{}{{"text": req.Message}},
	})

	reqBody := map[string]interface{}{
		"system_instruction": map[string]interface{}{
			"parts": []map[string]interface{}{{"text": buildSystemInstruction()}},
		},
		"contents": contents,
		"generationConfig": map[string]interface{}{
			"temperature": conciergeTemperature,
		},
	}

	body, _ := json.Marshal(reqBody)
	apiURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent", cfg.GeminiBaseURL, cfg.GeminiModel)

	httpReq, err := http.NewRequest("POST", apiURL, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", cfg.GeminiAPIKey)

	resp, err := conciergeClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: %s", string(bodyBytes))
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response candidates")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
