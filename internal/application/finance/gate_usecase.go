// Package finance implementa el candado del panel financiero: una clave
// estática compartida que, al validarse, emite un token de alcance acotado.
package finance

import (
	"fmt"

	"github.com/outletaseo/outlet-api/internal/application/dto"
	"github.com/outletaseo/outlet-api/internal/domain"
	"github.com/outletaseo/outlet-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// GateUseCase valida la clave del panel financiero y emite el token de acceso.
// La clave se hashea una sola vez al construirse; nunca se guarda en claro.
type GateUseCase struct {
	passwordHash []byte
	jwtSecret    string
	jwtIssuer    string
	expMinutes   int
}

// NewGateUseCase hashea la clave configurada y prepara el emisor de tokens.
func NewGateUseCase(password, jwtSecret, jwtIssuer string, expMinutes int) (*GateUseCase, error) {
	if password == "" {
		return nil, fmt.Errorf("finance: FINANCE_PASSWORD no configurado")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("finance: hashear clave: %w", err)
	}
	return &GateUseCase{
		passwordHash: hash,
		jwtSecret:    jwtSecret,
		jwtIssuer:    jwtIssuer,
		expMinutes:   expMinutes,
	}, nil
}

// Unlock compara la clave recibida contra el hash y, si coincide, emite un
// token con scope "finance". Una clave incorrecta devuelve ErrUnauthorized.
func (uc *GateUseCase) Unlock(req dto.UnlockRequest) (*dto.UnlockResponse, error) {
	if err := bcrypt.CompareHashAndPassword(uc.passwordHash, []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtSecret, jwt.ScopeFinance, uc.jwtIssuer, uc.expMinutes)
	if err != nil {
		return nil, fmt.Errorf("finance: emitir token: %w", err)
	}
	return &dto.UnlockResponse{
		Token:     token,
		ExpiresIn: uc.expMinutes * 60,
	}, nil
}
