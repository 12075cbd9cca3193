package inventory

import (
	"github.com/outletaseo/outlet-api/internal/application/dto"
	"github.com/outletaseo/outlet-api/internal/domain/entity"
)

// RegisterMovementFromRequest adapta el request HTTP al caso de uso
// RegisterMovement(MovementInput). Usar desde los handlers HTTP.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	mov, err := uc.RegisterMovement(MovementInput{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
	})
	if err != nil {
		return nil, err
	}
	resp := ToMovementResponse(*mov)
	return &resp, nil
}

// ToMovementResponse mapea la entidad al DTO HTTP.
func ToMovementResponse(m entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Date:        m.Date,
		Reason:      m.Reason,
	}
}
