package snapshotting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de snapshots de dashboard
var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrNoAccountData    = errors.New("no account data available")
	ErrComposeDashboard = errors.New("error composing dashboard")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrSaveSnapshot      = errors.New("error saving dashboard snapshot")
)

// SnapshotError é um erro com contexto adicional para snapshots
type SnapshotError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	AccountID string // ID da conta envolvida
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *SnapshotError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *SnapshotError) Unwrap() error {
	return e.Err
}

// NewSnapshotError cria um novo SnapshotError
func NewSnapshotError(err error, code string, accountID string, details string) *SnapshotError {
	return &SnapshotError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}
