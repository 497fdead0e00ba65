package analyzing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de análise de contas
var (
	// Erros de validação do payload
	ErrInvalidPayload    = errors.New("payload de análise inválido")
	ErrMissingRankings   = errors.New("payload sem dados de ranking")
	ErrMissingConversion = errors.New("payload sem dados de conversão")
)

// AnalysisError é um erro com contexto adicional para análises
type AnalysisError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	AccountID string // ID da conta envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AnalysisError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError cria um novo AnalysisError
func NewAnalysisError(err error, code string, details string) *AnalysisError {
	return &AnalysisError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
