package ports

import "context"

// LLMService define el puerto de salida para los servicios de inteligencia artificial.
// Cualquier adaptador (Gemini, OpenAI, Ollama, mock) debe implementar esta interfaz.
// La capa de aplicación solo conoce este contrato, no la implementación concreta.
type LLMService interface {
	// GenerateProductDescription redacta una descripción comercial breve a
	// partir del nombre y la categoría de un producto.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	GenerateProductDescription(ctx context.Context, name, category string) (string, error)

	// AnalyzeInventoryHealth recibe el resumen de inventario en texto plano y
	// devuelve un diagnóstico con recomendaciones de reposición.
	AnalyzeInventoryHealth(ctx context.Context, summary string) (string, error)
}
