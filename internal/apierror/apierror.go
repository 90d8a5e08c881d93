// Package apierror provides the error envelopes returned to API clients.
// Handlers never serialize store errors directly; internals go to the log.
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError lists the failing validator tag per field.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Erro de validação", Fields: fields}
}

// PartialWriteError tells the client which recipe was left half written and
// where the write stopped, so it can re-issue an update.
type PartialWriteError struct {
	Detail   string `json:"detail"`
	RecipeID string `json:"recipe_id"`
	Stage    string `json:"stage"`
}

func NewPartialWrite(recipeID, stage string) *PartialWriteError {
	return &PartialWriteError{
		Detail:   "A receita foi gravada parcialmente; reenvie a atualização",
		RecipeID: recipeID,
		Stage:    stage,
	}
}
