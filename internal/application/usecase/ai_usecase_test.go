package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outletaseo/outlet-api/internal/application/dto"
	"github.com/outletaseo/outlet-api/internal/application/usecase"
)

// stubLLM implementa ports.LLMService para los tests.
type stubLLM struct {
	text       string
	err        error
	gotName    string
	gotSummary string
	sawTimeout bool
}

func (s *stubLLM) GenerateProductDescription(ctx context.Context, name, category string) (string, error) {
	s.gotName = name
	_, s.sawTimeout = ctx.Deadline()
	return s.text, s.err
}

func (s *stubLLM) AnalyzeInventoryHealth(ctx context.Context, summary string) (string, error) {
	s.gotSummary = summary
	return s.text, s.err
}

// stubSummary entrega un resumen fijo.
type stubSummary struct{}

func (stubSummary) PlainSummary(time.Time) string { return "Total Productos: 3" }

func TestGenerateDescription_DelegaConTimeout(t *testing.T) {
	llm := &stubLLM{text: "Cloro concentrado ideal para..."}
	uc := usecase.NewAIUseCase(llm, stubSummary{})

	out, err := uc.GenerateDescription(context.Background(), dto.AIDescriptionRequest{
		Name: "Cloro 2L", Category: "Limpieza",
	})
	require.NoError(t, err)
	assert.Equal(t, llm.text, out.Text)
	assert.Equal(t, "Cloro 2L", llm.gotName)
	assert.True(t, llm.sawTimeout, "la llamada al LLM debe llevar deadline")
}

func TestGenerateDescription_NombreVacio(t *testing.T) {
	uc := usecase.NewAIUseCase(&stubLLM{}, stubSummary{})
	_, err := uc.GenerateDescription(context.Background(), dto.AIDescriptionRequest{})
	assert.Error(t, err)
}

func TestGenerateDescription_PropagaError(t *testing.T) {
	falla := errors.New("gemini caído")
	uc := usecase.NewAIUseCase(&stubLLM{err: falla}, stubSummary{})
	_, err := uc.GenerateDescription(context.Background(), dto.AIDescriptionRequest{Name: "Cloro"})
	assert.ErrorIs(t, err, falla)
}

func TestAnalyzeHealth_InyectaResumen(t *testing.T) {
	llm := &stubLLM{text: "Reponer bolsas de basura."}
	uc := usecase.NewAIUseCase(llm, stubSummary{})

	out, err := uc.AnalyzeHealth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, llm.text, out.Text)
	assert.Equal(t, "Total Productos: 3", llm.gotSummary)
}
