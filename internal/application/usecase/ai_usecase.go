package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/outletaseo/outlet-api/internal/application/dto"
	"github.com/outletaseo/outlet-api/internal/application/ports"
)

// llamadas a LLMs pueden demorar varios segundos; el timeout evita que las
// latencias externas bloqueen los goroutines del servidor.
const llmTimeout = 10 * time.Second

// summaryProvider entrega el resumen de inventario en texto plano que se
// inyecta en el prompt de análisis.
type summaryProvider interface {
	PlainSummary(now time.Time) string
}

// AIUseCase orquesta el colaborador de IA: descripciones de producto y
// diagnóstico de salud del inventario.
type AIUseCase struct {
	llm     ports.LLMService
	summary summaryProvider
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAIUseCase(llm ports.LLMService, summary summaryProvider) *AIUseCase {
	return &AIUseCase{llm: llm, summary: summary}
}

// GenerateDescription valida la entrada y delega al servicio de LLM.
func (uc *AIUseCase) GenerateDescription(ctx context.Context, req dto.AIDescriptionRequest) (*dto.AITextResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name es obligatorio")
	}

	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	text, err := uc.llm.GenerateProductDescription(ctx, req.Name, req.Category)
	if err != nil {
		return nil, fmt.Errorf("descripción IA: %w", err)
	}
	return &dto.AITextResponse{Text: text}, nil
}

// AnalyzeHealth arma el resumen actual del inventario y pide el diagnóstico.
func (uc *AIUseCase) AnalyzeHealth(ctx context.Context) (*dto.AITextResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	text, err := uc.llm.AnalyzeInventoryHealth(ctx, uc.summary.PlainSummary(time.Now()))
	if err != nil {
		return nil, fmt.Errorf("análisis IA: %w", err)
	}
	return &dto.AITextResponse{Text: text}, nil
}
